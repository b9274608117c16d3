package services

import (
	"fmt"
	"sync"

	"vdeck_server/structs"
	"vdeck_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/resend/resend-go/v3"
)

var (
	client     *resend.Client
	clientOnce = sync.Once{}
)

// EmailService notifies the shop when orders come in. Orders carry no
// customer email address, so everything goes to the configured admin inbox.
type EmailService struct {
	logger *gecho.Logger
	cfg    *structs.Config
	client *resend.Client
}

func NewEmailService(logger *gecho.Logger, cfg *structs.Config) *EmailService {
	return &EmailService{
		logger: logger,
		cfg:    cfg,
		client: getEmailClient(cfg.Email.ApiKey),
	}
}

func getEmailClient(apiKey string) *resend.Client {
	clientOnce.Do(func() {
		client = resend.NewClient(apiKey)
	})
	return client
}

func (es *EmailService) SendEmail(to []string, subject string, body string) error {
	params := &resend.SendEmailRequest{
		From:    es.cfg.Email.From,
		To:      to,
		Html:    body,
		Subject: subject,
	}

	_, err := es.client.Emails.Send(params)
	if err != nil {
		es.logger.Error("Failed to send email", gecho.Field("error", err), gecho.Field("to", to))
		return err
	}

	return nil
}

// SendOrderNotification mails the shop admin about a freshly placed order.
// Failures are logged and swallowed; the order is already persisted.
func (es *EmailService) SendOrderNotification(order *tables.Order) {
	if !es.cfg.Email.Enabled || es.cfg.Email.AdminTo == "" {
		return
	}

	subject := fmt.Sprintf("New order from %s", order.Fullname)
	body := fmt.Sprintf(`
		<h2>New order received</h2>
		<p><strong>Order:</strong> %s</p>
		<p><strong>Customer:</strong> %s</p>
		<p><strong>Address:</strong> %s</p>
		<p><strong>GCash reference:</strong> %s</p>
		<p><strong>Items:</strong> %d</p>
		<p><strong>Total:</strong> %.2f</p>
		<p><a href="%s">Proof of payment</a></p>`,
		order.ID, order.Fullname, order.Address, order.Gcash,
		len(order.Items), order.Total, order.PaymentProof,
	)

	if err := es.SendEmail([]string{es.cfg.Email.AdminTo}, subject, body); err != nil {
		es.logger.Warn("Order notification email failed", gecho.Field("order_id", order.ID))
	}
}
