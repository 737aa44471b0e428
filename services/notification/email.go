package notification

import (
	"fmt"
	"net/smtp"

	"farmmarket/config"
	"farmmarket/utils"

	"go.uber.org/zap"
)

// EmailProvider hands an email to the SMTP transport. True means the
// message was accepted by the server, not that it reached the inbox.
type EmailProvider interface {
	Send(to, subject, body string) bool
}

// SMTPEmailProvider sends HTML mail over authenticated SMTP with STARTTLS.
type SMTPEmailProvider struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

// NewSMTPEmailProvider builds an email provider from the loaded config.
func NewSMTPEmailProvider() *SMTPEmailProvider {
	return &SMTPEmailProvider{
		Host:     config.AppConfig.SMTPHost,
		Port:     config.AppConfig.SMTPPort,
		Username: config.AppConfig.SMTPUsername,
		Password: config.AppConfig.SMTPPassword,
		From:     config.AppConfig.FromEmail,
	}
}

// Send delivers one message to one recipient. Transport errors are logged
// and reported as false, never raised.
func (p *SMTPEmailProvider) Send(to, subject, body string) bool {
	logger := utils.GetLogger()

	msg := []byte(
		fmt.Sprintf("From: %s\r\n", p.From) +
			fmt.Sprintf("To: %s\r\n", to) +
			fmt.Sprintf("Subject: %s\r\n", subject) +
			"MIME-Version: 1.0\r\n" +
			"Content-Type: text/html; charset=\"utf-8\"\r\n" +
			"\r\n" +
			body,
	)

	addr := p.Host + ":" + p.Port
	var auth smtp.Auth
	if p.Username != "" && p.Password != "" {
		auth = smtp.PlainAuth("", p.Username, p.Password, p.Host)
	}

	// smtp.SendMail upgrades to TLS via STARTTLS when the server offers it.
	if err := smtp.SendMail(addr, auth, p.From, []string{to}, msg); err != nil {
		logger.Error("Failed to send email",
			zap.String("to", to), zap.Error(err))
		return false
	}
	return true
}
