package service

import (
	"context"
	"log"
	"time"
)

// Mailer delivers one-time codes to users. The real transport is out of
// scope; the default implementation only logs.
type Mailer interface {
	SendOtpEmail(ctx context.Context, email, code string, validity time.Duration) error
}

// LogMailer writes the code to the server log instead of sending email.
type LogMailer struct{}

// NewLogMailer creates a Mailer that logs instead of sending
func NewLogMailer() *LogMailer {
	return &LogMailer{}
}

func (m *LogMailer) SendOtpEmail(_ context.Context, email, code string, validity time.Duration) error {
	log.Printf("OTP for %s: %s (valid for %s)", email, code, validity)
	return nil
}
