package notification

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Message is email to be sent
type Message struct {
	To      string
	ToName  string
	Subject string
	Text    string
	HTML    string
}

// Result is outcome of send attempt, Error holds provider message on failure
type Result struct {
	Success   bool
	MessageID string
	Error     string
}

// Sender delivers messages, delivery failures are reported via Result and never returned as error
type Sender interface {
	Send(context.Context, *Message) Result
}

type logSender struct {
	logger logrus.FieldLogger
}

// NewLogSender builds sender which only logs messages, used when no email provider is configured
func NewLogSender(logger logrus.FieldLogger) Sender {
	return &logSender{logger: logger}
}

func (s *logSender) Send(_ context.Context, m *Message) Result {
	id := "log-" + uuid.NewString()
	s.logger.WithFields(logrus.Fields{
		"to":        m.To,
		"subject":   m.Subject,
		"messageId": id,
	}).Info("email provider is not configured, message is logged instead of being sent")
	return Result{Success: true, MessageID: id}
}
