/*
Package mailer sends transactional notification emails over SMTP.

# Sending

The Mailer interface has a single Send method; the SMTP implementation
uses the relay from cliparse.Config:

	mail := mailer.New(cfg)
	err := mail.Send(mailer.SubscriberNotification(cfg.AdminEmail, email))

Send returns ErrDisabled when EMAIL_HOST is unset.

# Delivery Semantics

Order, testimonial, and newsletter notifications are fire-and-forget:
handlers send them in a goroutine and only log failures, so the primary
operation succeeds even when the relay is down. The contact form is the
exception - it has nothing to persist, so its handler awaits Send and
fails the request on error.

# Messages

Constructors in messages.go build each notification body. Order amounts
are formatted with thousands separators (KSh 8,500).
*/
package mailer
