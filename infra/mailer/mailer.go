package mailer

import (
	"fmt"
	"net/smtp"

	"github.com/labstack/gommon/log"
	"github.com/renttrack/renttrack/infra/db/dao"
	"github.com/renttrack/renttrack/infra/db/model"
)

// Sender delivers one message. Split out so tests and dev mode can bypass SMTP.
type Sender interface {
	Send(recipient, subject, htmlBody string) error
}

type Config struct {
	SMTPHost    string
	SMTPPort    string
	SenderEmail string
	Password    string
	DevMode     bool
}

// Mailer dispatches notification emails and appends every attempt to the
// email_logs audit table. Send failures are logged and recorded, never
// propagated: the reconciliation run must not stall on a mail outage.
type Mailer struct {
	sender  Sender
	dao     dao.DaoMethod
	devMode bool
}

func New(cfg Config, d dao.DaoMethod) *Mailer {
	devMode := cfg.DevMode
	if cfg.SenderEmail == "" || cfg.Password == "" {
		// No credentials configured: only dev mode can pretend-send.
		log.Warn("[Mailer] Email credentials not configured")
	}
	return &Mailer{
		sender: &smtpSender{
			host:     cfg.SMTPHost,
			port:     cfg.SMTPPort,
			sender:   cfg.SenderEmail,
			password: cfg.Password,
		},
		dao:     d,
		devMode: devMode && (cfg.SenderEmail == "" || cfg.Password == ""),
	}
}

// NewWithSender wires an explicit Sender. Used by tests.
func NewWithSender(s Sender, d dao.DaoMethod) *Mailer {
	return &Mailer{sender: s, dao: d}
}

func (m *Mailer) send(recipient, subject, htmlBody, emailType string) bool {
	if m.devMode {
		log.Infof("[Mailer] DEV MODE: would send %q to %s", subject, recipient)
		m.logEmail(recipient, subject, emailType, true, "")
		return true
	}

	if err := m.sender.Send(recipient, subject, htmlBody); err != nil {
		log.Errorf("[Mailer] Failed to send email to %s: %v", recipient, err)
		m.logEmail(recipient, subject, emailType, false, err.Error())
		return false
	}

	log.Infof("[Mailer] Email sent to %s: %s", recipient, subject)
	m.logEmail(recipient, subject, emailType, true, "")
	return true
}

func (m *Mailer) logEmail(recipient, subject, emailType string, ok bool, errDetail string) {
	entry := &model.EmailLog{
		RecipientEmail:   recipient,
		Subject:          subject,
		EmailType:        emailType,
		SentSuccessfully: ok,
		ErrorMessage:     errDetail,
	}
	if err := m.dao.CreateEmailLog(entry); err != nil {
		log.Errorf("[Mailer] Failed to log email: %v", err)
	}
}

type smtpSender struct {
	host     string
	port     string
	sender   string
	password string
}

func (s *smtpSender) Send(recipient, subject, htmlBody string) error {
	if s.sender == "" || s.password == "" {
		return fmt.Errorf("email credentials not configured")
	}

	msg := "From: " + s.sender + "\r\n" +
		"To: " + recipient + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"MIME-Version: 1.0\r\n" +
		"Content-Type: text/html; charset=\"UTF-8\"\r\n" +
		"\r\n" + htmlBody

	auth := smtp.PlainAuth("", s.sender, s.password, s.host)
	return smtp.SendMail(s.host+":"+s.port, auth, s.sender, []string{recipient}, []byte(msg))
}
