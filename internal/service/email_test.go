package service

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/umalmyha/crm/internal/model"
	"github.com/umalmyha/crm/internal/notification"
	notificationMocks "github.com/umalmyha/crm/internal/notification/mocks"
)

func TestEmailService(t *testing.T) {
	ctx := context.Background()
	sender := notificationMocks.NewSender(t)
	composer, err := notification.NewComposer(notification.From{Name: "CRM Support", Email: "support@crm.com"}, "")
	require.NoError(t, err)

	logger, _ := test.NewNullLogger()
	svc := NewEmailService(sender, composer, logger)

	sender.On("Send", ctx, mock.MatchedBy(func(m *notification.Message) bool {
		return m.To == "jane@x.com" && m.Subject == "Hello" && strings.Contains(m.HTML, "<br>")
	})).Return(notification.Result{Success: true, MessageID: "msg-7"}).Once()

	t.Log("plain email is sent and message id is returned")
	{
		id, err := svc.Send(ctx, "jane@x.com", "Hello", "first line\nsecond line")
		require.NoError(t, err)
		require.Equal(t, "msg-7", id)
	}

	sender.On("Send", ctx, mock.MatchedBy(func(m *notification.Message) bool {
		return strings.Contains(m.Text, "CMP-1710072000000-042")
	})).Return(notification.Result{Error: "Bad Request: invalid from"}).Once()

	t.Log("provider failure is bad gateway with provider message")
	{
		_, err := svc.SendConfirmation(ctx, &ConfirmationRequest{
			To:        "Jane@X.com",
			Name:      "Jane Doe",
			Reference: "CMP-1710072000000-042",
			Category:  model.CategoryCCTV,
		})

		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		require.Equal(t, http.StatusBadGateway, httpErr.Code)
		require.Contains(t, httpErr.Message, "invalid from")
	}
}
