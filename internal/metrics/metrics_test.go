package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"github.com/umalmyha/crm/internal/model"
)

func TestRegister(t *testing.T) {
	reg := prometheus.NewRegistry()
	require.NoError(t, Register(reg), "collectors must be registered")
	require.Error(t, Register(reg), "second registration must fail")
}

func TestMiddleware(t *testing.T) {
	e := echo.New()
	e.Use(Middleware())
	e.GET("/api/complaints/:id", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.POST("/api/complaints", func(echo.Context) error { return echo.NewHTTPError(http.StatusBadRequest, "bad") })
	e.GET("/api/complaints/stats", func(echo.Context) error { return errors.New("db is down") })

	serve := func(method, target string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
		return rec
	}

	t.Log("successful request is counted with route template")
	{
		before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "/api/complaints/:id", "200"))
		rec := serve(http.MethodGet, "/api/complaints/42")
		require.Equal(t, http.StatusOK, rec.Code)

		after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "/api/complaints/:id", "200"))
		require.Equal(t, before+1, after)
	}

	t.Log("echo error is counted with its code")
	{
		before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodPost, "/api/complaints", "400"))
		rec := serve(http.MethodPost, "/api/complaints")
		require.Equal(t, http.StatusBadRequest, rec.Code)

		after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodPost, "/api/complaints", "400"))
		require.Equal(t, before+1, after)
	}

	t.Log("unknown error is counted as internal")
	{
		before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "/api/complaints/stats", "500"))
		rec := serve(http.MethodGet, "/api/complaints/stats")
		require.Equal(t, http.StatusInternalServerError, rec.Code)

		after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "/api/complaints/stats", "500"))
		require.Equal(t, before+1, after)
	}

	t.Log("unknown error on fresh context without status is counted as internal")
	{
		c := e.NewContext(httptest.NewRequest(http.MethodDelete, "/api/tasks/1", nil), httptest.NewRecorder())
		c.SetPath("/api/tasks/:id")

		before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodDelete, "/api/tasks/:id", "500"))
		err := Middleware()(func(echo.Context) error { return errors.New("db is down") })(c)
		require.Error(t, err)

		after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodDelete, "/api/tasks/:id", "500"))
		require.Equal(t, before+1, after)
	}
}

func TestDomainCounters(t *testing.T) {
	before := testutil.ToFloat64(complaintTransitions.WithLabelValues("pending", "in-progress"))
	StatusChanged(model.StatusPending, model.StatusInProgress)
	require.Equal(t, before+1, testutil.ToFloat64(complaintTransitions.WithLabelValues("pending", "in-progress")))

	before = testutil.ToFloat64(emailsSent.WithLabelValues("confirmation", "failed"))
	EmailAttempted(model.EmailTypeConfirmation, model.EmailStatusFailed)
	require.Equal(t, before+1, testutil.ToFloat64(emailsSent.WithLabelValues("confirmation", "failed")))
}
