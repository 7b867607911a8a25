package service

import (
	"context"

	"gallery/internal/errors"
)

// ErrMailTemporary marks delivery failures that may succeed on a later attempt.
var ErrMailTemporary = errors.New("temporary mail delivery failure")

// MailAttachment is an inline file sent with a message.
type MailAttachment struct {
	Filename    string
	ContentType string
	Content     []byte
}

// MailMessage is a plain confirmation email.
type MailMessage struct {
	To          string
	Subject     string
	Text        string
	HTML        string
	Attachments []MailAttachment
}

// MailSender delivers transactional email. Failures worth retrying wrap ErrMailTemporary.
type MailSender interface {
	Send(ctx context.Context, msg *MailMessage) (messageID string, err error)
}
