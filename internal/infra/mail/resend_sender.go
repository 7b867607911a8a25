// Package mail sends transactional email through Resend.
package mail

import (
	"context"
	"log/slog"
	"strings"

	"gallery/config"
	"gallery/internal/domain/service"
	"gallery/internal/errors"

	"github.com/resend/resend-go/v2"
)

type resendSender struct {
	client *resend.Client
	from   string
	logger *slog.Logger
}

// NewResendSender requires mail.resendApiKey and mail.from.
func NewResendSender(cfg *config.Config, logger *slog.Logger) (service.MailSender, error) {
	if cfg.Mail == nil || cfg.Mail.ResendAPIKey == "" {
		return nil, errors.New("mail.resendApiKey is required")
	}
	if cfg.Mail.From == "" {
		return nil, errors.New("mail.from is required")
	}

	return &resendSender{
		client: resend.NewClient(cfg.Mail.ResendAPIKey),
		from:   cfg.Mail.From,
		logger: logger,
	}, nil
}

// Send reports every provider failure as temporary; only a message that can
// never be delivered is rejected outright.
func (s *resendSender) Send(ctx context.Context, msg *service.MailMessage) (string, error) {
	to := strings.TrimSpace(msg.To)
	if to == "" {
		return "", errors.New("mail recipient is empty")
	}

	req := &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{to},
		Subject: msg.Subject,
		Text:    msg.Text,
		Html:    msg.HTML,
	}
	for _, att := range msg.Attachments {
		req.Attachments = append(req.Attachments, &resend.Attachment{
			Filename: att.Filename,
			Content:  att.Content,
		})
	}

	sent, err := s.client.Emails.SendWithContext(ctx, req)
	if err != nil {
		return "", errors.Wrapf(service.ErrMailTemporary, "resend: %v", err)
	}

	s.logger.InfoContext(ctx, "Email sent",
		slog.String("message_id", sent.Id),
		slog.String("subject", msg.Subject),
	)

	return sent.Id, nil
}
