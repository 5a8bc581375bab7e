// Package mailer dispatches transactional notifications. Sends are
// fire-and-forget: a failed mail is logged and never fails the operation
// that triggered it.
package mailer

import (
	"context"
	"fmt"
	"log"
	"net/smtp"
	"strings"
	"time"
)

type Kind string

const (
	KindNewAdminWelcome Kind = "new-admin-welcome"
	KindProfileUpdated  Kind = "profile-updated"
	KindNewQuote        Kind = "new-quote"
)

// Notification is the structured payload handed to the mail collaborator.
type Notification struct {
	Kind          Kind
	To            string
	Name          string
	EnquiryNumber string
}

type Mailer interface {
	Send(ctx context.Context, n Notification) error
}

// Dispatch sends asynchronously. The caller never waits; failures are
// logged only.
func Dispatch(m Mailer, n Notification) {
	if m == nil || n.To == "" {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := m.Send(ctx, n); err != nil {
			log.Printf("mail %s to %s failed: %v", n.Kind, n.To, err)
		}
	}()
}

// SMTPMailer sends through a plain SMTP relay.
type SMTPMailer struct {
	addr string
	from string
	auth smtp.Auth
}

func NewSMTPMailer(addr, username, password, from string) *SMTPMailer {
	var auth smtp.Auth
	if username != "" {
		host := addr
		if i := strings.IndexByte(addr, ':'); i >= 0 {
			host = addr[:i]
		}
		auth = smtp.PlainAuth("", username, password, host)
	}
	return &SMTPMailer{addr: addr, from: from, auth: auth}
}

func (m *SMTPMailer) Send(_ context.Context, n Notification) error {
	subject, body := render(n)
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n", m.from, n.To, subject, body)
	return smtp.SendMail(m.addr, m.auth, m.from, []string{n.To}, []byte(msg))
}

func render(n Notification) (subject, body string) {
	switch n.Kind {
	case KindNewAdminWelcome:
		return "Welcome to the Sensokart admin panel",
			fmt.Sprintf("Hi %s,\n\nAn administrator account has been created for this address. Sign in to get started.", n.Name)
	case KindProfileUpdated:
		return "Your profile was updated",
			fmt.Sprintf("Hi %s,\n\nYour account details were just changed. If this wasn't you, contact support.", n.Name)
	case KindNewQuote:
		return fmt.Sprintf("New quote request %s", n.EnquiryNumber),
			fmt.Sprintf("A new enquiry %s was submitted by %s.", n.EnquiryNumber, n.Name)
	}
	return string(n.Kind), ""
}
