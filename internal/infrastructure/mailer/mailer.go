package mailer

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"time"

	mail "github.com/wneessen/go-mail"

	"github.com/splashbrothers/ordering/internal/domain/services"
	"github.com/splashbrothers/ordering/internal/infrastructure/config"
	"github.com/splashbrothers/ordering/internal/pkg/logger"
)

//go:embed templates/*.html.tmpl
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html.tmpl"))

// Mailer sends the notification mails over SMTP
type Mailer struct {
	client *mail.Client
	cfg    config.SMTPConfig
	log    *logger.Logger
}

// New builds an SMTP mailer from configuration
func New(cfg config.SMTPConfig, log *logger.Logger) (*Mailer, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTimeout(30 * time.Second),
	}
	if cfg.User != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.User),
			mail.WithPassword(cfg.Password),
		)
	}
	if cfg.Secure {
		opts = append(opts, mail.WithSSLPort(false))
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSOpportunistic))
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("smtp client: %w", err)
	}
	return &Mailer{client: client, cfg: cfg, log: log}, nil
}

func (m *Mailer) send(ctx context.Context, to, cc, subject, templateName string, data any) error {
	var body bytes.Buffer
	if err := templates.ExecuteTemplate(&body, templateName, data); err != nil {
		return fmt.Errorf("render %s: %w", templateName, err)
	}

	msg := mail.NewMsg()
	if err := msg.From(m.cfg.From); err != nil {
		return fmt.Errorf("from address: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("to address: %w", err)
	}
	if cc != "" {
		if err := msg.Cc(cc); err != nil {
			return fmt.Errorf("cc address: %w", err)
		}
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, body.String())

	return m.client.DialAndSendWithContext(ctx, msg)
}

// SendOrderConfirmation mails the buying store its checkout summary
func (m *Mailer) SendOrderConfirmation(ctx context.Context, email services.OrderConfirmationEmail) error {
	subject := email.Subject
	if subject == "" {
		subject = fmt.Sprintf("【SPLASH'N'GO!】発注確認 (%s)", email.OrderNumber)
	}
	return m.send(ctx, email.To, "", subject, "order_confirmation.html.tmpl", newOrderConfirmationView(email))
}

// SendPartnerNotification mails a supplier partner its share of an order
func (m *Mailer) SendPartnerNotification(ctx context.Context, email services.PartnerNotificationEmail) error {
	subject := email.Subject
	if subject == "" {
		subject = fmt.Sprintf("【SPLASH'N'GO!】発注通知 (%s)", email.OrderNumber)
	}
	return m.send(ctx, email.To, "", subject, "partner_notification.html.tmpl", newPartnerNotificationView(email))
}

// SendShippingNotification tells a store its order shipped
func (m *Mailer) SendShippingNotification(ctx context.Context, email services.ShippingNotificationEmail) error {
	subject := fmt.Sprintf("【SPLASH'N'GO!】出荷通知 (%s)", email.OrderNumber)
	return m.send(ctx, email.To, "", subject, "shipping_notification.html.tmpl", newShippingNotificationView(email))
}

// SendPartsConfirmation confirms a parts order to the store with the head
// office in CC
func (m *Mailer) SendPartsConfirmation(ctx context.Context, email services.PartsConfirmationEmail) error {
	subject := fmt.Sprintf("【SPLASH'N'GO!】部品発注確認 (%s)", email.OrderNumber)
	return m.send(ctx, email.To, m.cfg.HeadOfficeCC, subject, "parts_confirmation.html.tmpl", newPartsConfirmationView(email))
}

var _ services.Mailer = (*Mailer)(nil)
