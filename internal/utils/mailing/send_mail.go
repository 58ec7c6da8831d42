package mailing

import (
	"strconv"

	"gopkg.in/gomail.v2"

	"myfridge-backend/internal/utils"
)

type (
	Mailer interface {
		SendMail(toEmail string, subject string, body string) error
	}

	mailer struct {
		cfg *utils.Config
	}
)

func NewMailer(cfg *utils.Config) Mailer {
	return &mailer{cfg: cfg}
}

func (m *mailer) SendMail(toEmail string, subject string, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.SMTPAuthEmail)
	msg.SetHeader("To", toEmail)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	port, err := strconv.Atoi(m.cfg.SMTPPort)
	if err != nil {
		return err
	}

	dialer := gomail.NewDialer(
		m.cfg.SMTPHost,
		port,
		m.cfg.SMTPAuthEmail,
		m.cfg.SMTPAuthPassword,
	)

	return dialer.DialAndSend(msg)
}
