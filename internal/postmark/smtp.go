package postmark

import (
	"fmt"
	"net/smtp"

	"github.com/domodwyer/mailyak/v3"
)

// SMTPMailer delivers message batches over plain SMTP. A batch fails as a
// whole: the first delivery error aborts the run and is returned to the
// caller, there is no per-message retry.
type SMTPMailer struct {
	addr string
	auth smtp.Auth
}

func NewSMTPMailer(host, port, username, password string) *SMTPMailer {
	var auth smtp.Auth
	if username != "" {
		auth = smtp.PlainAuth("", username, password, host)
	}
	return &SMTPMailer{
		addr: fmt.Sprintf("%s:%s", host, port),
		auth: auth,
	}
}

func (m *SMTPMailer) Send(batch []Message) error {
	for _, msg := range batch {
		mail := mailyak.New(m.addr, m.auth)
		mail.To(msg.To.Email)
		mail.From(msg.From.Email)
		mail.FromName(msg.From.Name)
		mail.Subject(msg.Subject)
		mail.HTML().Set(msg.HTML)

		if err := mail.Send(); err != nil {
			return fmt.Errorf("sending to %s: %w", msg.To.Email, err)
		}
	}
	return nil
}
