package auth

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/require"
	"github.com/umalmyha/crm/internal/model"
)

func TestJwtSignAndVerify(t *testing.T) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err, "failed to generate key pair")

	method := jwt.GetSigningMethod("EdDSA")
	issuer := NewJwtIssuer("crm-test", method, 3*time.Minute, priv)
	validator := NewJwtValidator(method, pub)

	u := &model.User{
		ID:       "e1f7e1fa-9a8e-4a8c-8a86-18cbb9d0cd11",
		Username: "jsmith",
		Email:    "jsmith@crm.com",
		Role:     model.RoleEmployee,
	}

	t.Log("signed token is verified and carries user claims")
	{
		now := time.Now().UTC()
		token, err := issuer.Sign(u, now)
		require.NoError(t, err, "failed to sign token")
		require.Equal(t, now.Add(3*time.Minute).Unix(), token.ExpiresAt)

		claims, err := validator.Verify(token.Signed)
		require.NoError(t, err, "token must be valid")
		require.Equal(t, u.ID, claims.Subject)
		require.Equal(t, u.Username, claims.Username)
		require.Equal(t, u.Email, claims.Email)
		require.False(t, claims.IsAdmin(), "employee is not admin")
	}

	t.Log("expired token is rejected")
	{
		token, err := issuer.Sign(u, time.Now().Add(-time.Hour))
		require.NoError(t, err, "failed to sign token")

		_, err = validator.Verify(token.Signed)
		require.Error(t, err, "expired token must be rejected")
	}

	t.Log("token signed by another key is rejected")
	{
		_, otherPriv, err := ed25519.GenerateKey(rand.Reader)
		require.NoError(t, err)

		token, err := NewJwtIssuer("crm-test", method, time.Minute, otherPriv).Sign(u, time.Now())
		require.NoError(t, err)

		_, err = validator.Verify(token.Signed)
		require.Error(t, err, "foreign signature must be rejected")
	}
}

func TestPasswordHash(t *testing.T) {
	hash, err := GeneratePasswordHash("secret_password")
	require.NoError(t, err)
	require.NotEqual(t, "secret_password", hash, "password must not be stored as is")

	require.NoError(t, VerifyPassword(hash, "secret_password"))
	require.Error(t, VerifyPassword(hash, "wrong_password"))
}

func TestClaimsContext(t *testing.T) {
	ctx := context.Background()
	require.Nil(t, ClaimsFromContext(ctx), "anonymous context has no claims")

	claims := &JwtClaims{Username: "admin", Role: model.RoleAdmin}
	ctx = WithClaims(ctx, claims)
	require.Same(t, claims, ClaimsFromContext(ctx))
	require.True(t, ClaimsFromContext(ctx).IsAdmin())
}
