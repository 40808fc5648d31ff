package services

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nkr-tech/nkr-tech-api/models"
)

// recordingSender captures outbound mail for assertions
type recordingSender struct {
	mu   sync.Mutex
	sent []sentMail
	fail bool
}

type sentMail struct {
	recipient string
	subject   string
	body      string
}

func (r *recordingSender) SendEmail(recipient, subject, body string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail {
		return errors.New("gateway down")
	}
	r.sent = append(r.sent, sentMail{recipient: recipient, subject: subject, body: body})
	return nil
}

func TestNotifierOrderSubmitted(t *testing.T) {
	sender := &recordingSender{}
	notifier := NewNotifier(sender, "admin@nkrtech.com")

	notifier.OrderSubmitted(models.Order{
		ClientName: "Anita Desai",
		Email:      "anita@example.com",
		Service:    "E-commerce Platform",
		Budget:     "50000",
		Timeline:   "3 months",
	})

	assert.Len(t, sender.sent, 2)
	assert.Equal(t, "anita@example.com", sender.sent[0].recipient)
	assert.Contains(t, sender.sent[0].body, "Anita Desai")
	assert.Contains(t, sender.sent[0].body, "E-commerce Platform")
	assert.Equal(t, "admin@nkrtech.com", sender.sent[1].recipient)
	assert.Equal(t, "New Order Placed", sender.sent[1].subject)
}

func TestNotifierDemoRequested(t *testing.T) {
	sender := &recordingSender{}
	notifier := NewNotifier(sender, "admin@nkrtech.com")

	notifier.DemoRequested(models.DemoRequest{
		Name:    "Ravi Kumar",
		Email:   "ravi@example.com",
		Service: "Web Development",
	})

	assert.Len(t, sender.sent, 2)
	assert.Equal(t, "ravi@example.com", sender.sent[0].recipient)
	assert.Equal(t, "admin@nkrtech.com", sender.sent[1].recipient)
}

func TestNotifierPasswordReset(t *testing.T) {
	sender := &recordingSender{}
	notifier := NewNotifier(sender, "admin@nkrtech.com")

	notifier.PasswordReset("anita@example.com", "Anita", "http://localhost:3000/reset-password/abc123")

	// Reset mail has a single recipient; the operator is not copied
	assert.Len(t, sender.sent, 1)
	assert.Equal(t, "anita@example.com", sender.sent[0].recipient)
	assert.Contains(t, sender.sent[0].body, "http://localhost:3000/reset-password/abc123")
	assert.Contains(t, sender.sent[0].body, "1 hour")
}

func TestNotifierSwallowsDeliveryFailures(t *testing.T) {
	sender := &recordingSender{fail: true}
	notifier := NewNotifier(sender, "admin@nkrtech.com")

	// Must not panic or propagate the error
	notifier.ContactReceived(models.Contact{
		Name:    "Priya",
		Email:   "priya@example.com",
		Message: "Hello",
	})
	notifier.FeedbackReceived(models.Feedback{
		Name:    "Vikram",
		Email:   "vikram@example.com",
		Rating:  5,
		Message: "Great",
	})
}

func TestNotifierSkipsEmptyRecipients(t *testing.T) {
	sender := &recordingSender{}
	notifier := NewNotifier(sender, "admin@nkrtech.com")

	notifier.PasswordReset("", "Nobody", "http://localhost:3000/reset-password/abc")
	assert.Empty(t, sender.sent)
}
