package mailer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeMailer struct {
	sent chan Notification
	err  error
}

func (f *fakeMailer) Send(_ context.Context, n Notification) error {
	f.sent <- n
	return f.err
}

func TestDispatchDeliversAsync(t *testing.T) {
	f := &fakeMailer{sent: make(chan Notification, 1)}
	Dispatch(f, Notification{Kind: KindNewQuote, To: "ops@example.com", EnquiryNumber: "Enquiry_9"})

	select {
	case n := <-f.sent:
		assert.Equal(t, KindNewQuote, n.Kind)
	case <-time.After(time.Second):
		t.Fatal("notification was never dispatched")
	}
}

func TestDispatchSwallowsFailures(t *testing.T) {
	f := &fakeMailer{sent: make(chan Notification, 1), err: errors.New("relay down")}
	// must not panic or propagate
	Dispatch(f, Notification{Kind: KindProfileUpdated, To: "user@example.com"})
	<-f.sent
}

func TestDispatchSkipsEmptyRecipient(t *testing.T) {
	f := &fakeMailer{sent: make(chan Notification, 1)}
	Dispatch(f, Notification{Kind: KindNewQuote})
	select {
	case <-f.sent:
		t.Fatal("should not send without a recipient")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestRenderSubjects(t *testing.T) {
	subject, _ := render(Notification{Kind: KindNewQuote, EnquiryNumber: "Enquiry_12"})
	assert.Contains(t, subject, "Enquiry_12")

	subject, body := render(Notification{Kind: KindNewAdminWelcome, Name: "Priya"})
	assert.Contains(t, subject, "admin")
	assert.Contains(t, body, "Priya")
}
