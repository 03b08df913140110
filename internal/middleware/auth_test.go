package middleware

import (
	"crypto/ed25519"
	"crypto/rand"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	logrustest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
	"github.com/umalmyha/crm/internal/auth"
	"github.com/umalmyha/crm/internal/model"
)

func TestAuthorizeAndRequireRole(t *testing.T) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err, "failed to generate key pair")

	method := jwt.GetSigningMethod("EdDSA")
	issuer := auth.NewJwtIssuer("crm-test", method, time.Minute, priv)
	authorize := Authorize(auth.NewJwtValidator(method, pub))
	adminOnly := RequireRole(model.RoleAdmin)

	sign := func(role model.Role) string {
		token, err := issuer.Sign(&model.User{ID: "e7be204e-b693-4b99-b067-2eae1610b3ee", Role: role}, time.Now())
		require.NoError(t, err, "failed to sign token")
		return token.Signed
	}

	var claims *auth.JwtClaims
	handler := func(c echo.Context) error {
		claims = auth.ClaimsFromContext(c.Request().Context())
		return c.NoContent(http.StatusOK)
	}

	app := echo.New()
	serve := func(authHdr string, mws ...echo.MiddlewareFunc) error {
		claims = nil
		req := httptest.NewRequest(http.MethodGet, "/api/employees", nil)
		if authHdr != "" {
			req.Header.Set(echo.HeaderAuthorization, authHdr)
		}

		h := handler
		for i := len(mws) - 1; i >= 0; i-- {
			h = mws[i](h)
		}
		return h(app.NewContext(req, httptest.NewRecorder()))
	}

	t.Log("missing header")
	{
		err := serve("", authorize)
		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		require.Equal(t, http.StatusUnauthorized, httpErr.Code)
	}

	t.Log("wrong scheme")
	{
		err := serve("Basic "+sign(model.RoleAdmin), authorize)
		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		require.Equal(t, http.StatusUnauthorized, httpErr.Code)
	}

	t.Log("invalid token")
	{
		err := serve("Bearer not.a.token", authorize)
		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		require.Equal(t, http.StatusUnauthorized, httpErr.Code)
	}

	t.Log("valid token, scheme is case insensitive")
	{
		err := serve("bearer "+sign(model.RoleEmployee), authorize)
		require.NoError(t, err)
		require.NotNil(t, claims, "claims must be put to request context")
		require.Equal(t, model.RoleEmployee, claims.Role)
	}

	t.Log("role is required without authorization")
	{
		err := serve("", adminOnly)
		require.ErrorIs(t, err, echo.ErrUnauthorized)
	}

	t.Log("employee is denied admin resource")
	{
		err := serve("Bearer "+sign(model.RoleEmployee), authorize, adminOnly)
		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		require.Equal(t, http.StatusForbidden, httpErr.Code)
		require.Nil(t, claims, "handler must not be called")
	}

	t.Log("admin is let through")
	{
		err := serve("Bearer "+sign(model.RoleAdmin), authorize, adminOnly)
		require.NoError(t, err)
		require.True(t, claims.IsAdmin())
	}
}

func TestRequestLogger(t *testing.T) {
	logger, hook := logrustest.NewNullLogger()

	app := echo.New()
	app.HTTPErrorHandler = func(err error, c echo.Context) {
		_ = c.NoContent(http.StatusTeapot)
	}

	h := RequestLogger(logger)(func(c echo.Context) error {
		return echo.ErrNotFound
	})

	req := httptest.NewRequest(http.MethodGet, "/api/complaints/track/CMP-0-000", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h(app.NewContext(req, rec)), "error must be handled by error handler")

	require.Equal(t, http.StatusTeapot, rec.Code)
	require.Len(t, hook.AllEntries(), 1)
	require.Equal(t, http.StatusTeapot, hook.LastEntry().Data["status"], "committed status must be logged")
	require.Equal(t, http.MethodGet, hook.LastEntry().Data["method"])
}
