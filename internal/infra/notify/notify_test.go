//go:build unit

package notify

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"appointment-scheduler/internal/domain/appointment"
	"appointment-scheduler/internal/pkg/config"
	"appointment-scheduler/internal/pkg/errs"
	"appointment-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func sampleNotice(outcome appointment.Outcome) shared.Notice {
	return shared.Notice{
		Outcome:       outcome,
		AppointmentID: uuid.New(),
		OwnerEmail:    "ana@example.com",
		OwnerName:     "Ana",
		ServiceName:   "Haircut",
		StartAt:       time.Date(2024, 3, 15, 13, 0, 0, 0, time.UTC),
		Date:          "2024-03-15",
		Time:          "10:00",
	}
}

type recordingNotifier struct {
	mu      sync.Mutex
	got     []shared.Notice
	err     error
	block   chan struct{}
	ctxErrs []error
}

func (r *recordingNotifier) Notify(ctx context.Context, n shared.Notice) error {
	if r.block != nil {
		<-r.block
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.got = append(r.got, n)
	r.ctxErrs = append(r.ctxErrs, ctx.Err())
	return r.err
}

func TestAsyncDispatcher_DeliversDetachedFromRequest(t *testing.T) {
	rec := &recordingNotifier{}
	d := NewAsyncDispatcher(rec, time.Second, discard)

	reqCtx, cancel := context.WithCancel(context.Background())
	n := sampleNotice(appointment.OutcomeCancelled)
	d.Dispatch(reqCtx, n)
	cancel()

	require.NoError(t, d.Close(context.Background()))
	require.Len(t, rec.got, 1)
	assert.Equal(t, n.AppointmentID, rec.got[0].AppointmentID)
	assert.NoError(t, rec.ctxErrs[0])
}

func TestAsyncDispatcher_FailureIsSwallowed(t *testing.T) {
	rec := &recordingNotifier{err: errors.New("smtp down")}
	d := NewAsyncDispatcher(rec, time.Second, discard)

	assert.NotPanics(t, func() { d.Dispatch(context.Background(), sampleNotice(appointment.OutcomeCompleted)) })
	require.NoError(t, d.Close(context.Background()))
	assert.Len(t, rec.got, 1)
}

func TestAsyncDispatcher_CloseHonoursDeadlineAndDropsLateNotices(t *testing.T) {
	rec := &recordingNotifier{block: make(chan struct{})}
	d := NewAsyncDispatcher(rec, time.Second, discard)
	d.Dispatch(context.Background(), sampleNotice(appointment.OutcomeCancelled))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, d.Close(ctx), context.DeadlineExceeded)

	d.Dispatch(context.Background(), sampleNotice(appointment.OutcomeCancelled))
	close(rec.block)
	require.NoError(t, d.Close(context.Background()))
	assert.Len(t, rec.got, 1)
}

type fakeMailClient struct {
	sent   *mail.SGMailV3
	status int
	err    error
}

func (f *fakeMailClient) SendWithContext(_ context.Context, email *mail.SGMailV3) (*rest.Response, error) {
	f.sent = email
	if f.err != nil {
		return nil, f.err
	}
	return &rest.Response{StatusCode: f.status}, nil
}

func TestSendGridNotifier(t *testing.T) {
	cfg := config.NotifyConfig{FromEmail: "agenda@example.com", FromName: "Agenda"}

	testCases := []struct {
		name      string
		client    *fakeMailClient
		notice    shared.Notice
		expectErr bool
	}{
		{name: "accepted", client: &fakeMailClient{status: 202}, notice: sampleNotice(appointment.OutcomeCancelled)},
		{name: "provider rejects", client: &fakeMailClient{status: 401}, notice: sampleNotice(appointment.OutcomeCancelled), expectErr: true},
		{name: "transport error", client: &fakeMailClient{err: errors.New("timeout")}, notice: sampleNotice(appointment.OutcomeCompleted), expectErr: true},
		{
			name:   "owner without email",
			client: &fakeMailClient{status: 202},
			notice: func() shared.Notice {
				n := sampleNotice(appointment.OutcomeCancelled)
				n.OwnerEmail = ""
				return n
			}(),
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := newSendGridNotifier(tc.client, cfg, discard).Notify(context.Background(), tc.notice)
			if tc.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, tc.client.sent)
			assert.Equal(t, "Your Haircut appointment was cancelled", tc.client.sent.Subject)
			assert.Equal(t, "agenda@example.com", tc.client.sent.From.Address)
		})
	}
}

type fakeWriter struct {
	msgs []kafka.Message
	err  error
}

func (f *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	f.msgs = append(f.msgs, msgs...)
	return f.err
}

func (f *fakeWriter) Close() error { return nil }

func TestKafkaNotifier_PublishesEvent(t *testing.T) {
	w := &fakeWriter{}
	n := sampleNotice(appointment.OutcomeCompleted)

	require.NoError(t, newKafkaNotifier(w).Notify(context.Background(), n))

	require.Len(t, w.msgs, 1)
	assert.Equal(t, n.AppointmentID.String(), string(w.msgs[0].Key))

	var event AppointmentEvent
	require.NoError(t, json.Unmarshal(w.msgs[0].Value, &event))
	assert.Equal(t, "appointment.completed", event.Type)
	assert.Equal(t, "10:00", event.Time)
	assert.Contains(t, event.Body, "marked as completed")
}

func TestKafkaNotifier_WriteError(t *testing.T) {
	w := &fakeWriter{err: errors.New("leader not available")}
	err := newKafkaNotifier(w).Notify(context.Background(), sampleNotice(appointment.OutcomeCancelled))
	assert.ErrorContains(t, err, "kafka publish failed")
}

func TestNewNotifier(t *testing.T) {
	_, closeFn, err := NewNotifier(config.NotifyConfig{Driver: DriverLog}, discard)
	require.NoError(t, err)
	assert.NoError(t, closeFn())

	_, _, err = NewNotifier(config.NotifyConfig{Driver: DriverSendGrid}, discard)
	assert.Error(t, err)

	_, _, err = NewNotifier(config.NotifyConfig{Driver: "pigeon"}, discard)
	assert.ErrorContains(t, err, `unknown driver "pigeon"`)
}

func TestNewNotifier_ErrorsCarryStack(t *testing.T) {
	_, _, err := NewNotifier(config.NotifyConfig{Driver: DriverKafka}, discard)
	require.Error(t, err)

	stack := strings.Join(errs.ExtractStackLines(err, 0), "\n")
	assert.Contains(t, stack, "NewNotifier")
}

func TestBody(t *testing.T) {
	n := sampleNotice(appointment.OutcomeCancelled)
	assert.Contains(t, Body(n), "Hello Ana")
	assert.Contains(t, Body(n), "2024-03-15 at 10:00")

	n.OwnerName = ""
	assert.Contains(t, Body(n), "Hello,")
}
