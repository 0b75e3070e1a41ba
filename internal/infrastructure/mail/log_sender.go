// Package mail holds MailSender implementations. Production deploys plug in
// a transactional-mail provider; development uses the log sender so the
// confirmation link is visible in the console.
package mail

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/lifebit/platform/internal/core/ports"
)

// LogSender writes outbound mail to the log instead of delivering it.
type LogSender struct {
	log zerolog.Logger
}

func NewLogSender(log zerolog.Logger) *LogSender {
	return &LogSender{log: log}
}

func (s *LogSender) Send(_ context.Context, mail ports.OutboundMail) error {
	s.log.Info().
		Str("to", mail.To).
		Str("subject", mail.Subject).
		Str("body", mail.Body).
		Msg("outbound mail")
	return nil
}
