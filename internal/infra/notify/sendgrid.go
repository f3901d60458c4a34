package notify

import (
	"context"
	"log/slog"

	"appointment-scheduler/internal/pkg/config"
	"appointment-scheduler/internal/pkg/errs"
	"appointment-scheduler/internal/usecase/shared"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type mailClient interface {
	SendWithContext(ctx context.Context, email *mail.SGMailV3) (*rest.Response, error)
}

type SendGridNotifier struct {
	client    mailClient
	fromEmail string
	fromName  string
	logger    *slog.Logger
}

func NewSendGridNotifier(cfg config.NotifyConfig, logger *slog.Logger) *SendGridNotifier {
	return newSendGridNotifier(sendgrid.NewSendClient(cfg.SendGridAPIKey), cfg, logger)
}

func newSendGridNotifier(client mailClient, cfg config.NotifyConfig, logger *slog.Logger) *SendGridNotifier {
	return &SendGridNotifier{
		client:    client,
		fromEmail: cfg.FromEmail,
		fromName:  cfg.FromName,
		logger:    logger,
	}
}

func (s *SendGridNotifier) Notify(ctx context.Context, n shared.Notice) error {
	if n.OwnerEmail == "" {
		return errs.Newf("notify: owner of appointment %s has no email", n.AppointmentID)
	}

	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail(n.OwnerName, n.OwnerEmail)
	body := Body(n)
	message := mail.NewSingleEmail(from, Subject(n), to, body, body)

	response, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		return errs.Wrap(err, "notify: sendgrid send failed")
	}
	if response.StatusCode >= 400 {
		s.logger.Error("sendgrid returned error status", "status", response.StatusCode, "body", response.Body)
		return errs.Newf("notify: sendgrid returned status %d", response.StatusCode)
	}
	return nil
}
