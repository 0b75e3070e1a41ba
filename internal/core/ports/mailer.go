package ports

import "context"

// OutboundMail is a single message queued for asynchronous delivery.
type OutboundMail struct {
	To      string
	Subject string
	Body    string
}

// MailSender performs the actual delivery. Implementations talk to an SMTP
// relay or a transactional-mail provider; failures are logged by the
// dispatcher, never surfaced to the request that queued the mail.
type MailSender interface {
	Send(ctx context.Context, mail OutboundMail) error
}

// MailDispatcher accepts mail for background delivery.
type MailDispatcher interface {
	Enqueue(mail OutboundMail)
}
