package mail

import (
	"errors"

	gomail "gopkg.in/gomail.v2"
)

// ErrNotConfigured is returned when SMTP credentials are missing. Callers
// treat send failures as non-fatal, so a misconfigured relay degrades to
// logged warnings rather than failed transactions.
var ErrNotConfigured = errors.New("mail credentials not configured")

// Sink delivers a message best-effort. Implementations block until delivery
// is accepted or fails; callers decide whether a failure matters.
type Sink interface {
	Send(to, subject, body string) error
}

// SMTP sends plain-text mail through an SMTP relay.
type SMTP struct {
	host     string
	port     int
	username string
	password string
	from     string
}

// NewSMTP creates an SMTP sink. Missing credentials are reported on Send,
// not at construction, so the app can start without a mail relay.
func NewSMTP(host string, port int, username, password, from string) *SMTP {
	return &SMTP{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
	}
}

// Send delivers one message. Implements Sink.
func (s *SMTP) Send(to, subject, body string) error {
	if s.username == "" || s.password == "" {
		return ErrNotConfigured
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.host, s.port, s.username, s.password)
	return d.DialAndSend(m)
}
