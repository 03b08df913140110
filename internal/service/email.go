package service

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/umalmyha/crm/internal/metrics"
	"github.com/umalmyha/crm/internal/model"
	"github.com/umalmyha/crm/internal/notification"
)

// ConfirmationRequest holds complaint details for confirmation email which is sent outside of submission
type ConfirmationRequest struct {
	To        string
	Name      string
	Reference string
	Contact   *string
	Company   *string
	Category  model.Category
	Complaint string
}

// EmailService sends emails on demand, provider failures are returned as 502 errors
type EmailService interface {
	Send(ctx context.Context, to string, subject string, body string) (string, error)
	SendConfirmation(context.Context, *ConfirmationRequest) (string, error)
}

type emailService struct {
	sender   notification.Sender
	composer *notification.Composer
	logger   logrus.FieldLogger
}

// NewEmailService builds EmailService
func NewEmailService(sender notification.Sender, composer *notification.Composer, logger logrus.FieldLogger) EmailService {
	return &emailService{sender: sender, composer: composer, logger: logger}
}

func (s *emailService) Send(ctx context.Context, to string, subject string, body string) (string, error) {
	msg, err := s.composer.PlainMessage(strings.TrimSpace(to), subject, body)
	if err != nil {
		return "", err
	}
	return s.deliver(ctx, msg, "email")
}

func (s *emailService) SendConfirmation(ctx context.Context, req *ConfirmationRequest) (string, error) {
	c := &model.Complaint{
		Name:      req.Name,
		Email:     strings.ToLower(strings.TrimSpace(req.To)),
		Contact:   req.Contact,
		Company:   req.Company,
		Category:  req.Category,
		Text:      req.Complaint,
		Reference: req.Reference,
		Status:    model.StatusPending,
	}

	msg, err := s.composer.ComplaintMessage(model.EmailTypeConfirmation, c)
	if err != nil {
		return "", err
	}

	id, err := s.deliver(ctx, msg, "confirmation email")
	status := model.EmailStatusSent
	if err != nil {
		status = model.EmailStatusFailed
	}
	metrics.EmailAttempted(model.EmailTypeConfirmation, status)
	return id, err
}

func (s *emailService) deliver(ctx context.Context, msg *notification.Message, what string) (string, error) {
	res := s.sender.Send(ctx, msg)
	if !res.Success {
		s.logger.WithFields(logrus.Fields{"to": msg.To, "error": res.Error}).Warnf("failed to send %s", what)
		return "", echo.NewHTTPError(http.StatusBadGateway, fmt.Sprintf("failed to send %s - %s", what, res.Error))
	}
	return res.MessageID, nil
}
