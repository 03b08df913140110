package notification

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/sirupsen/logrus"
)

const (
	sendGridMailEndpoint = "/v3/mail/send"
	sendGridMessageIDHdr = "X-Message-Id"
)

// From is sender identity
type From struct {
	Name  string
	Email string
}

type sendGridSender struct {
	apiKey string
	host   string
	from   From
	logger logrus.FieldLogger
}

// NewSendGridSender builds Sender on top of SendGrid v3 API, empty host means default SendGrid host
func NewSendGridSender(apiKey, host string, from From, logger logrus.FieldLogger) Sender {
	return &sendGridSender{
		apiKey: apiKey,
		host:   host,
		from:   from,
		logger: logger,
	}
}

func (s *sendGridSender) Send(ctx context.Context, m *Message) Result {
	email := mail.NewSingleEmail(
		mail.NewEmail(s.from.Name, s.from.Email),
		m.Subject,
		mail.NewEmail(m.ToName, m.To),
		m.Text,
		m.HTML,
	)

	req := sendgrid.GetRequest(s.apiKey, sendGridMailEndpoint, s.host)
	req.Method = rest.Post
	req.Body = mail.GetRequestBody(email)

	resp, err := sendgrid.MakeRequestWithContext(ctx, req)
	if err != nil {
		s.logger.WithError(err).WithField("to", m.To).Warn("failed to send email via sendgrid")
		return Result{Error: err.Error()}
	}

	if resp.StatusCode >= http.StatusMultipleChoices {
		msg := fmt.Sprintf("sendgrid responded with status %d - %s", resp.StatusCode, resp.Body)
		s.logger.WithField("to", m.To).Warn(msg)
		return Result{Error: msg}
	}

	var id string
	if ids := resp.Headers[sendGridMessageIDHdr]; len(ids) > 0 {
		id = ids[0]
	}

	s.logger.WithFields(logrus.Fields{"to": m.To, "messageId": id}).Debug("email sent via sendgrid")
	return Result{Success: true, MessageID: id}
}
