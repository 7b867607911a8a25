package impl

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"net/url"
	"strings"

	"gallery/config"
	deliverycontext "gallery/internal/delivery/context"
	"gallery/internal/domain/pricing"
	"gallery/internal/domain/service"
	"gallery/internal/errors"
	"gallery/internal/usecase"

	"go.uber.org/fx"
)

const unlockQRFilename = "prompt-unlock.png"

type notificationService struct {
	mailer  service.MailSender
	qrcode  service.QRCodeService
	siteURL string
	logger  *slog.Logger
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	Mailer service.MailSender
	QRCode service.QRCodeService
	Config *config.Config
	Logger *slog.Logger
}

// NewNotificationService creates the purchase confirmation mailer.
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	return &notificationService{
		mailer:  params.Mailer,
		qrcode:  params.QRCode,
		siteURL: strings.TrimRight(params.Config.Stripe.SiteURL, "/"),
		logger:  params.Logger,
	}
}

func (srv *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SendPurchaseConfirmation emails the unlock confirmation with a QR code of the unlock link.
func (srv *notificationService) SendPurchaseConfirmation(ctx context.Context, event *service.PurchaseConfirmedEvent) error {
	if event == nil || strings.TrimSpace(event.PayerEmail) == "" || event.ArtworkID == "" {
		return errors.Wrap(usecase.ErrInvalidConfirmation, "missing payer email or artwork")
	}

	title := event.ArtworkTitle
	if title == "" {
		title = event.ArtworkID
	}
	unlockURL := fmt.Sprintf("%s/gallery?prompt_unlocked=%s", srv.siteURL, url.QueryEscape(event.ArtworkID))

	msg := &service.MailMessage{
		To:      event.PayerEmail,
		Subject: "Prompt Unlocked: " + title,
		Text:    confirmationText(title, event.AmountPaid, unlockURL),
		HTML:    confirmationHTML(title, event.AmountPaid, unlockURL),
	}

	png, err := srv.qrcode.GeneratePNG(unlockURL)
	if err != nil {
		// The link is in the body too.
		srv.log(ctx).Warn("Failed to render unlock QR code", slog.Any("error", err))
	} else {
		msg.Attachments = []service.MailAttachment{{
			Filename:    unlockQRFilename,
			ContentType: "image/png",
			Content:     png,
		}}
	}

	messageID, err := srv.mailer.Send(ctx, msg)
	if err != nil {
		return errors.Wrapf(err, "failed to send confirmation for entitlement %s", event.EntitlementID)
	}

	srv.log(ctx).Info("Purchase confirmation sent",
		slog.String("entitlement_id", event.EntitlementID),
		slog.String("artwork_id", event.ArtworkID),
		slog.String("message_id", messageID),
	)

	return nil
}

func confirmationText(title string, amount int64, unlockURL string) string {
	return fmt.Sprintf(
		"Prompt Unlocked\n\nYou now have full access to the prompt for %q (%s).\n\nView your prompt: %s\n\nThank you for supporting the art.\n",
		title, pricing.Format(amount), unlockURL,
	)
}

func confirmationHTML(title string, amount int64, unlockURL string) string {
	return fmt.Sprintf(
		`<p><strong>Prompt Unlocked</strong></p><p>You now have full access to the prompt for <em>%s</em> (%s).</p><p><a href="%s">View your prompt</a></p><p>Thank you for supporting the art.</p>`,
		html.EscapeString(title), pricing.Format(amount), html.EscapeString(unlockURL),
	)
}
