package service

import (
	"context"
	"log"
)

// SMSSender delivers one-time codes out of band. Transport is a collaborator
// concern; the portal only needs the send call.
type SMSSender interface {
	Send(ctx context.Context, phone, message string) error
}

// LogSMSSender writes messages to the process log instead of a gateway.
// Used in development and as the default wiring.
type LogSMSSender struct{}

// NewLogSMSSender creates a logging SMS sender.
func NewLogSMSSender() *LogSMSSender {
	return &LogSMSSender{}
}

// Send logs the message.
func (s *LogSMSSender) Send(ctx context.Context, phone, message string) error {
	log.Printf("sms to %s: %s", phone, message)
	return nil
}
