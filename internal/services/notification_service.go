// internal/services/notification_service.go
package services

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"net/smtp"

	"github.com/atelier-lumen/jewelry-backend/internal/config"
	"github.com/atelier-lumen/jewelry-backend/internal/models"
)

type NotificationService struct {
	cfg *config.Config
}

func NewNotificationService(cfg *config.Config) *NotificationService {
	return &NotificationService{cfg: cfg}
}

var orderConfirmationTemplate = template.Must(template.New("order_confirmation").Parse(`
<html>
<body>
	<h2>Thank you for your order, {{.Name}}!</h2>
	<p>Your order #{{.OrderID}} has been received.</p>
	<p>Total: {{printf "%.2f" .Total}}</p>
	{{if .Delivery}}
	<p>We will ship it to the address you provided.</p>
	{{else}}
	<p>Your order will be ready for pickup at the showroom.</p>
	{{end}}
</body>
</html>
`))

func (s *NotificationService) SendOrderConfirmation(user *models.User, order *models.Order) error {
	data := map[string]interface{}{
		"Name":     user.Name,
		"OrderID":  order.ID,
		"Total":    order.TotalAmount,
		"Delivery": order.Location == models.LocationDelivery,
	}

	var body bytes.Buffer
	if err := orderConfirmationTemplate.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	subject := fmt.Sprintf("Order #%d confirmed", order.ID)
	return s.sendEmail(user.Email, subject, body.String())
}

func (s *NotificationService) sendEmail(to, subject, htmlBody string) error {
	if s.cfg.Email.SMTPUsername == "" {
		return errors.New("smtp is not configured")
	}

	from := fmt.Sprintf("%s <%s>", s.cfg.Email.FromName, s.cfg.Email.FromEmail)
	msg := []byte("From: " + from + "\r\n" +
		"To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"MIME-Version: 1.0\r\n" +
		"Content-Type: text/html; charset=UTF-8\r\n" +
		"\r\n" +
		htmlBody)

	addr := s.cfg.Email.SMTPHost + ":" + s.cfg.Email.SMTPPort
	auth := smtp.PlainAuth("", s.cfg.Email.SMTPUsername, s.cfg.Email.SMTPPassword, s.cfg.Email.SMTPHost)

	return smtp.SendMail(addr, auth, s.cfg.Email.FromEmail, []string{to}, msg)
}
