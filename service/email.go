package service

import (
	"errors"
	"fmt"
	"html"

	"bluedock/config"
	"bluedock/models"

	"gopkg.in/gomail.v2"
)

// ErrEmailDisabled email sending is switched off in the configuration
var ErrEmailDisabled = errors.New("email service disabled, set email.enabled=true")

// EmailService customer email notifications
type EmailService struct {
	cfg *config.EmailConfig
	// send delivers a composed message; replaced in tests
	send func(m *gomail.Message) error
}

// NewEmailService creates the email service
func NewEmailService(cfg *config.EmailConfig) *EmailService {
	s := &EmailService{cfg: cfg}
	s.send = s.dialAndSend
	return s
}

// Enabled reports whether emails are sent at all
func (s *EmailService) Enabled() bool {
	return s != nil && s.cfg != nil && s.cfg.Enabled
}

// SendOrderReadyEmail tells the customer the item can be picked up
func (s *EmailService) SendOrderReadyEmail(n models.StatusNotification) error {
	if !s.Enabled() {
		return ErrEmailDisabled
	}
	if n.CustomerEmail == nil || *n.CustomerEmail == "" {
		return fmt.Errorf("order %s has no customer email", n.ReceiptNumber)
	}

	subject := fmt.Sprintf("[BlueDock] Seu equipamento está pronto - OS %s", n.ReceiptNumber)
	return s.sendEmail(*n.CustomerEmail, subject, s.generateReadyEmailBody(n))
}

// generateReadyEmailBody renders the "order ready" email
func (s *EmailService) generateReadyEmailBody(n models.StatusNotification) string {
	return fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <style>
        body { font-family: Arial, sans-serif; background: #f5f5f5; margin: 0; padding: 20px; }
        .container { max-width: 600px; margin: 0 auto; background: #fff; border-radius: 12px; overflow: hidden; box-shadow: 0 4px 20px rgba(0,0,0,0.1); }
        .header { background: linear-gradient(135deg, #0e7490, #155e75); color: white; padding: 30px; text-align: center; }
        .header h1 { margin: 0; font-size: 24px; }
        .content { padding: 40px 30px; }
        .content p { color: #333; line-height: 1.8; margin: 0 0 20px; }
        .receipt { background: #ecfeff; border: 2px dashed #0e7490; border-radius: 12px; padding: 20px; text-align: center; margin: 30px 0; }
        .receipt span { font-size: 28px; font-weight: bold; color: #155e75; letter-spacing: 4px; font-family: 'Courier New', monospace; }
        .footer { background: #f8f9fa; padding: 20px 30px; text-align: center; color: #6c757d; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>BlueDock</h1>
        </div>
        <div class="content">
            <p>Olá, <strong>%s</strong>!</p>
            <p>O serviço no seu equipamento <strong>%s</strong> foi concluído e ele já está disponível para retirada.</p>
            <div class="receipt">
                <span>%s</span>
            </div>
            <p>Apresente o número da ordem de serviço acima na retirada.</p>
        </div>
        <div class="footer">
            <p>Este e-mail foi enviado automaticamente, não responda.</p>
        </div>
    </div>
</body>
</html>
`, html.EscapeString(n.CustomerName), html.EscapeString(n.ItemDescription), html.EscapeString(n.ReceiptNumber))
}

// sendEmail composes and delivers one HTML email
func (s *EmailService) sendEmail(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.cfg.Username, s.cfg.From))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	if err := s.send(m); err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	return nil
}

func (s *EmailService) dialAndSend(m *gomail.Message) error {
	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.Username, s.cfg.Password)
	return d.DialAndSend(m)
}
