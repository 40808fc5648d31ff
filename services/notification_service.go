package services

import (
	"fmt"
	"log"

	"github.com/nkr-tech/nkr-tech-api/models"
)

// Notifier composes and dispatches the best-effort emails that follow
// a public submission: one confirmation to the submitter and one alert
// to the operator address. Every method is synchronous and swallows
// delivery failures after logging them; controllers invoke the methods
// on a goroutine so the HTTP response never waits on delivery.
type Notifier struct {
	mailer     EmailSender
	adminEmail string
}

// NewNotifier builds a Notifier around an EmailSender and the fixed
// operator address
func NewNotifier(mailer EmailSender, adminEmail string) *Notifier {
	return &Notifier{mailer: mailer, adminEmail: adminEmail}
}

// OrderSubmitted sends the order confirmation and operator alert
func (n *Notifier) OrderSubmitted(order models.Order) {
	clientBody := fmt.Sprintf(
		"<h2>Order Received Successfully!</h2>"+
			"<p>Dear %s,</p>"+
			"<p>Thank you for placing an order with NKR Tech Solutions.</p>"+
			"<p><strong>Order Details:</strong></p>"+
			"<ul><li>Service: %s</li><li>Budget: %s</li><li>Timeline: %s</li></ul>"+
			"<p>Our team will review your requirements and contact you shortly.</p>"+
			"<br><p>Best regards,<br>NKR Tech Solutions Team</p>",
		order.ClientName, order.Service, order.Budget, order.Timeline,
	)
	n.deliver(order.Email, "Order Confirmation - NKR Tech Solutions", clientBody)

	adminBody := fmt.Sprintf(
		"<h2>New Order Received</h2>"+
			"<p><strong>Client:</strong> %s</p>"+
			"<p><strong>Company:</strong> %s</p>"+
			"<p><strong>Email:</strong> %s</p>"+
			"<p><strong>Phone:</strong> %s</p>"+
			"<p><strong>Service:</strong> %s</p>"+
			"<p><strong>Budget:</strong> %s</p>"+
			"<p><strong>Timeline:</strong> %s</p>"+
			"<p><strong>Requirements:</strong> %s</p>",
		order.ClientName, order.Company, order.Email, order.Phone,
		order.Service, order.Budget, order.Timeline, order.Requirements,
	)
	n.deliver(n.adminEmail, "New Order Placed", adminBody)
}

// DemoRequested sends the demo request confirmation and operator alert
func (n *Notifier) DemoRequested(demo models.DemoRequest) {
	clientBody := fmt.Sprintf(
		"<h2>Demo Request Received!</h2>"+
			"<p>Dear %s,</p>"+
			"<p>Thank you for your interest in %s. Our team will reach out to schedule your demo.</p>"+
			"<br><p>Best regards,<br>NKR Tech Solutions Team</p>",
		demo.Name, demo.Service,
	)
	n.deliver(demo.Email, "Demo Request Received - NKR Tech Solutions", clientBody)

	adminBody := fmt.Sprintf(
		"<h2>New Demo Request</h2>"+
			"<p><strong>Name:</strong> %s</p>"+
			"<p><strong>Company:</strong> %s</p>"+
			"<p><strong>Email:</strong> %s</p>"+
			"<p><strong>Phone:</strong> %s</p>"+
			"<p><strong>Service:</strong> %s</p>"+
			"<p><strong>Message:</strong> %s</p>",
		demo.Name, demo.Company, demo.Email, demo.Phone, demo.Service, demo.Message,
	)
	n.deliver(n.adminEmail, "New Demo Request", adminBody)
}

// ContactReceived sends the contact acknowledgement and operator alert
func (n *Notifier) ContactReceived(contact models.Contact) {
	clientBody := fmt.Sprintf(
		"<h2>Thank you for contacting us!</h2>"+
			"<p>Dear %s,</p>"+
			"<p>We have received your message and will get back to you as soon as possible.</p>"+
			"<p><strong>Your message:</strong></p><p>%s</p>"+
			"<br><p>Best regards,<br>NKR Tech Solutions Team</p>",
		contact.Name, contact.Message,
	)
	n.deliver(contact.Email, "Message Received - NKR Tech Solutions", clientBody)

	adminBody := fmt.Sprintf(
		"<h2>New Contact Message</h2>"+
			"<p><strong>Name:</strong> %s</p>"+
			"<p><strong>Email:</strong> %s</p>"+
			"<p><strong>Message:</strong></p><p>%s</p>",
		contact.Name, contact.Email, contact.Message,
	)
	n.deliver(n.adminEmail, "New Contact Message", adminBody)
}

// FeedbackReceived sends the feedback acknowledgement and operator alert
func (n *Notifier) FeedbackReceived(feedback models.Feedback) {
	clientBody := fmt.Sprintf(
		"<h2>Thank you for your feedback!</h2>"+
			"<p>Dear %s,</p>"+
			"<p>We have received your feedback and appreciate you taking the time to share your thoughts.</p>"+
			"<p><strong>Your Rating:</strong> %d/5 stars</p>"+
			"<p><strong>Your Message:</strong></p><p>%s</p>"+
			"<br><p>Best regards,<br>NKR Tech Solutions Team</p>",
		feedback.Name, feedback.Rating, feedback.Message,
	)
	n.deliver(feedback.Email, "Feedback Received - NKR Tech Solutions", clientBody)

	adminBody := fmt.Sprintf(
		"<h2>New Feedback Submission</h2>"+
			"<p><strong>Name:</strong> %s</p>"+
			"<p><strong>Email:</strong> %s</p>"+
			"<p><strong>Company:</strong> %s</p>"+
			"<p><strong>Rating:</strong> %d/5 stars</p>"+
			"<p><strong>Message:</strong></p><p>%s</p>",
		feedback.Name, feedback.Email, feedback.Company, feedback.Rating, feedback.Message,
	)
	n.deliver(n.adminEmail, "New Feedback Received", adminBody)
}

// PasswordReset sends the reset link. Unlike the submission emails
// this one goes to a single recipient.
func (n *Notifier) PasswordReset(email, name, resetLink string) {
	body := fmt.Sprintf(
		"<h2>Password Reset</h2>"+
			"<p>Hello %s!</p>"+
			"<p>We received a request to reset your password for your NKR Tech Solutions account.</p>"+
			"<p><a href=\"%s\">Reset Password</a></p>"+
			"<p><strong>Note:</strong> This link will expire in 1 hour.</p>"+
			"<p>If you didn't request a password reset, please ignore this email.</p>",
		name, resetLink,
	)
	n.deliver(email, "Password Reset Request - NKR Tech Solutions", body)
}

// deliver sends one email, logging and swallowing any failure. Delivery
// problems must never surface to the request that triggered them.
func (n *Notifier) deliver(recipient, subject, body string) {
	if recipient == "" {
		return
	}
	if err := n.mailer.SendEmail(recipient, subject, body); err != nil {
		log.Printf("Email error: %v", err)
	}
}
