package notification

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/umalmyha/crm/internal/model"
)

var testFrom = From{Name: "Customer Support Team", Email: "support@crm.com"}

func testComplaint() *model.Complaint {
	company := "Acme <Corp>"
	return &model.Complaint{
		Name:      "Jane Doe",
		Email:     "jane@x.com",
		Company:   &company,
		Category:  model.CategoryCCTV,
		Text:      "Camera offline since Monday",
		Reference: "CMP-1710072000000-042",
		Status:    model.StatusPending,
		CreatedAt: time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC),
	}
}

func TestComposer(t *testing.T) {
	composer, err := NewComposer(testFrom, "+1-800-123-4567")
	require.NoError(t, err, "templates must be parsed")

	t.Log("confirmation contains reference and submission details")
	{
		msg, err := composer.ComplaintMessage(model.EmailTypeConfirmation, testComplaint())
		require.NoError(t, err)
		require.Equal(t, "jane@x.com", msg.To)
		require.Equal(t, "Complaint Received - Thank You for Reaching Out", msg.Subject)
		require.Contains(t, msg.Text, "#CMP-1710072000000-042")
		require.Contains(t, msg.Text, "Contact: N/A", "missing contact is rendered as not provided")
		require.Contains(t, msg.Text, "+1-800-123-4567")
		require.Contains(t, msg.HTML, "Acme &lt;Corp&gt;", "html part must be escaped")
		require.Contains(t, msg.Text, "Acme <Corp>", "text part is not escaped")
	}

	t.Log("resolution email contains resolution text")
	{
		c := testComplaint()
		resolution := "Camera replaced"
		c.Status = model.StatusResolved
		c.Resolution = &resolution

		msg, err := composer.ComplaintMessage(model.EmailTypeResolution, c)
		require.NoError(t, err)
		require.Equal(t, "Complaint CMP-1710072000000-042 - Resolved", msg.Subject)
		require.Contains(t, msg.Text, "Resolution: Camera replaced")
	}

	t.Log("update email contains new status")
	{
		c := testComplaint()
		c.Status = model.StatusInProgress

		msg, err := composer.ComplaintMessage(model.EmailTypeUpdate, c)
		require.NoError(t, err)
		require.Contains(t, msg.HTML, "in-progress")
	}

	t.Log("unknown email type is rejected")
	{
		_, err := composer.ComplaintMessage(model.EmailType("newsletter"), testComplaint())
		require.Error(t, err)
	}

	t.Log("plain message keeps line breaks in html")
	{
		msg, err := composer.PlainMessage("jane@x.com", "Hello", "line one\nline <two>")
		require.NoError(t, err)
		require.Equal(t, "line one\nline <two>", msg.Text)
		require.Equal(t, "<div>line one<br>line &lt;two&gt;</div>", strings.TrimSpace(msg.HTML))
	}
}

func TestSendGridSender(t *testing.T) {
	logger, _ := test.NewNullLogger()

	var received map[string]any
	status := http.StatusAccepted

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, sendGridMailEndpoint, r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		assert.NoError(t, json.Unmarshal(body, &received))

		if status == http.StatusAccepted {
			w.Header().Set(sendGridMessageIDHdr, "sg-message-1")
		}
		w.WriteHeader(status)
		if status != http.StatusAccepted {
			_, _ = w.Write([]byte(`{"errors":[{"message":"invalid to"}]}`))
		}
	}))
	defer srv.Close()

	sender := NewSendGridSender("test-key", srv.URL, testFrom, logger)
	msg := &Message{To: "jane@x.com", ToName: "Jane Doe", Subject: "Hello", Text: "text", HTML: "<p>html</p>"}

	t.Log("accepted email returns message id")
	{
		res := sender.Send(context.Background(), msg)
		require.True(t, res.Success)
		require.Equal(t, "sg-message-1", res.MessageID)
		require.Equal(t, "Hello", received["subject"])
	}

	t.Log("rejected email is reported as failed result")
	{
		status = http.StatusBadRequest
		res := sender.Send(context.Background(), msg)
		require.False(t, res.Success)
		require.Contains(t, res.Error, "invalid to")
	}

	t.Log("unreachable provider is reported as failed result")
	{
		unreachable := NewSendGridSender("test-key", "http://127.0.0.1:1", testFrom, logger)
		res := unreachable.Send(context.Background(), msg)
		require.False(t, res.Success)
		require.NotEmpty(t, res.Error)
	}
}

func TestLogSender(t *testing.T) {
	logger, hook := test.NewNullLogger()

	res := NewLogSender(logger).Send(context.Background(), &Message{To: "jane@x.com", Subject: "Hello"})
	require.True(t, res.Success)
	require.True(t, strings.HasPrefix(res.MessageID, "log-"))
	require.Equal(t, logrus.InfoLevel, hook.LastEntry().Level)
	require.Equal(t, "jane@x.com", hook.LastEntry().Data["to"])
}
