package mailer

import (
	"errors"

	"gopkg.in/gomail.v2"

	"github.com/quantumbitsystems/backend/cliparse"
)

// ErrDisabled is returned by Send when no SMTP relay is configured.
var ErrDisabled = errors.New("mailer disabled: EMAIL_HOST not set")

// Message is a single outbound notification email.
type Message struct {
	To      string
	Subject string
	HTML    string
}

// Mailer sends notification emails. Handlers depend on this interface so
// tests can substitute a recording implementation.
type Mailer interface {
	Send(msg Message) error
}

// SMTP sends mail through the relay configured in cliparse.Config.
type SMTP struct {
	cfg cliparse.Config
}

func New(cfg cliparse.Config) *SMTP {
	return &SMTP{cfg: cfg}
}

// Enabled reports whether an SMTP relay is configured.
func (s *SMTP) Enabled() bool {
	return s.cfg.EmailHost != ""
}

// Send dials the relay and delivers the message. Callers on the request
// path that treat notifications as best-effort run this in a goroutine
// and log the error; the contact form awaits it.
func (s *SMTP) Send(msg Message) error {
	if !s.Enabled() {
		return ErrDisabled
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.EmailUser)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/html", msg.HTML)

	d := gomail.NewDialer(s.cfg.EmailHost, s.cfg.EmailPort, s.cfg.EmailUser, s.cfg.EmailPass)
	return d.DialAndSend(m)
}
