package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"appointment-scheduler/internal/usecase/shared"
)

// AsyncDispatcher sends each notice on its own goroutine so a slow provider
// never holds up the request that removed the appointment.
type AsyncDispatcher struct {
	notifier shared.Notifier
	timeout  time.Duration
	logger   *slog.Logger

	wg     sync.WaitGroup
	mu     sync.Mutex
	closed bool
}

var _ shared.NoticeDispatcher = (*AsyncDispatcher)(nil)

func NewAsyncDispatcher(notifier shared.Notifier, timeout time.Duration, logger *slog.Logger) *AsyncDispatcher {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &AsyncDispatcher{notifier: notifier, timeout: timeout, logger: logger}
}

func (d *AsyncDispatcher) Dispatch(ctx context.Context, n shared.Notice) {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		d.logger.Warn("notice dropped after shutdown", "appointment_id", n.AppointmentID, "outcome", n.Outcome)
		return
	}
	d.wg.Add(1)
	d.mu.Unlock()

	// Detach from the request so the send outlives the response.
	sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), d.timeout)
	go func() {
		defer d.wg.Done()
		defer cancel()
		if err := d.notifier.Notify(sendCtx, n); err != nil {
			d.logger.Error("failed to deliver notice",
				"appointment_id", n.AppointmentID,
				"outcome", n.Outcome,
				"error", err)
			return
		}
		d.logger.Info("notice delivered", "appointment_id", n.AppointmentID, "outcome", n.Outcome)
	}()
}

// Close stops accepting notices and waits for in-flight sends or ctx expiry.
func (d *AsyncDispatcher) Close(ctx context.Context) error {
	d.mu.Lock()
	d.closed = true
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
