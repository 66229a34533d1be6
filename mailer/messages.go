package mailer

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// OrderConfirmation is sent to the customer after a successful order.
func OrderConfirmation(to, customerName, brand, model string, quantity int, total float64) Message {
	return Message{
		To:      to,
		Subject: "Order Confirmation - QuantumBit Systems",
		HTML: fmt.Sprintf(`
			<h2>Order Confirmation</h2>
			<p>Dear %s,</p>
			<p>Your order has been received:</p>
			<ul>
				<li>Product: %s %s</li>
				<li>Quantity: %d</li>
				<li>Total: KSh %s</li>
			</ul>
			<p>We'll contact you shortly to arrange delivery.</p>
			<p>Best regards,<br>QuantumBit Systems</p>
		`, customerName, brand, model, quantity, humanize.Commaf(total)),
	}
}

// OrderNotification is sent to the shop's admin address for every new order.
func OrderNotification(to string, orderID int64, customerName, email, phone, brand, model string, quantity int, total float64) Message {
	return Message{
		To:      to,
		Subject: "New Order Received - QuantumBit Systems",
		HTML: fmt.Sprintf(`
			<h2>New Order Received</h2>
			<p><strong>Customer:</strong> %s</p>
			<p><strong>Email:</strong> %s</p>
			<p><strong>Phone:</strong> %s</p>
			<p><strong>Product:</strong> %s %s</p>
			<p><strong>Quantity:</strong> %d</p>
			<p><strong>Total:</strong> KSh %s</p>
			<p><strong>Order ID:</strong> %d</p>
		`, customerName, email, phone, brand, model, quantity, humanize.Commaf(total), orderID),
	}
}

// ContactSubmission forwards a contact-form submission to the admin address.
func ContactSubmission(to, firstName, lastName, email, phone, service, message string) Message {
	return Message{
		To:      to,
		Subject: fmt.Sprintf("New Contact Form Submission - QuantumBit - %s", service),
		HTML: fmt.Sprintf(`
			<h2>New Contact Form Submission</h2>
			<p><strong>Name:</strong> %s %s</p>
			<p><strong>Email:</strong> %s</p>
			<p><strong>Phone:</strong> %s</p>
			<p><strong>Service:</strong> %s</p>
			<p><strong>Message:</strong></p>
			<p>%s</p>
		`, firstName, lastName, email, phone, service, message),
	}
}

// TestimonialNotification tells the admin a testimonial awaits moderation.
func TestimonialNotification(to, customerName, company string, rating int, message string) Message {
	if company == "" {
		company = "N/A"
	}
	return Message{
		To:      to,
		Subject: "New Testimonial Submitted",
		HTML: fmt.Sprintf(`
			<h2>New Testimonial Submitted</h2>
			<p><strong>Name:</strong> %s</p>
			<p><strong>Company:</strong> %s</p>
			<p><strong>Rating:</strong> %d/5 stars</p>
			<p><strong>Message:</strong> %s</p>
		`, customerName, company, rating, message),
	}
}

// SubscriberNotification tells the admin about a new newsletter subscriber.
func SubscriberNotification(to, email string) Message {
	return Message{
		To:      to,
		Subject: "New Newsletter Subscriber",
		HTML:    fmt.Sprintf(`<p>New subscriber: %s</p>`, email),
	}
}
