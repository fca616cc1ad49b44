package service

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/securinets-fst/securiquiz/config"
)

// MailSender delivers transactional mail best-effort. Sends run in their own
// goroutine and never gate the caller's response; failures are logged only.
type MailSender interface {
	SendVerificationCode(to, fullName, code string)
}

type smtpMailSender struct {
	cfg config.SMTP
}

func NewMailSender(cfg *config.Config) MailSender {
	return &smtpMailSender{cfg: cfg.SMTP}
}

func (s *smtpMailSender) SendVerificationCode(to, fullName, code string) {
	subject := "Your SecuriQuiz verification code"
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>Your verification code is:</p>
		<h2 style="letter-spacing:4px">%s</h2>
		<p>It expires in 10 minutes. If you did not request this, ignore this email.</p>
	`, fullName, code)

	go func() {
		if err := s.send([]string{to}, subject, body); err != nil {
			log.Error().Err(err).Str("to", to).Msg("Failed to send verification email")
		}
	}()
}

func (s *smtpMailSender) send(to []string, subject, htmlBody string) error {
	if s.cfg.Host == "" {
		// no SMTP configured (dev): log instead of failing signups
		log.Warn().Strs("to", to).Str("subject", subject).Msg("SMTP not configured, skipping mail delivery")
		return nil
	}

	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: SecuriQuiz <%s>\r\n", s.cfg.Sender)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", s.cfg.Sender, s.cfg.Password, s.cfg.Host)
	return smtp.SendMail(s.cfg.Host+":"+s.cfg.Port, auth, s.cfg.Sender, to, []byte(msg))
}
