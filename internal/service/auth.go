package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/umalmyha/crm/internal/auth"
	"github.com/umalmyha/crm/internal/config"
	"github.com/umalmyha/crm/internal/model"
	"github.com/umalmyha/crm/internal/repository"
	"github.com/umalmyha/crm/pkg/db/transactor"
)

// AuthService authenticates users and manages their sessions
type AuthService interface {
	Login(ctx context.Context, login string, password string, fingerprint string, now time.Time) (*auth.Jwt, *model.RefreshToken, error)
	Refresh(ctx context.Context, token string, fingerprint string, now time.Time) (*auth.Jwt, *model.RefreshToken, error)
	Logout(context.Context, string) error
	Verify(context.Context, string) (*auth.JwtClaims, error)
	EnsureAdmin(ctx context.Context, username string, email string, password string) error
}

type authService struct {
	jwtIssuer    *auth.JwtIssuer
	jwtValidator *auth.JwtValidator
	rfrTokenCfg  *config.RefreshTokenCfg
	trx          transactor.Transactor
	userRepo     repository.UserRepository
	rfrTokenRepo repository.RefreshTokenRepository
	logger       logrus.FieldLogger
}

// NewAuthService builds AuthService
func NewAuthService(
	jwtIssuer *auth.JwtIssuer,
	jwtValidator *auth.JwtValidator,
	rfrTokenCfg *config.RefreshTokenCfg,
	trx transactor.Transactor,
	userRepo repository.UserRepository,
	rfrTokenRepo repository.RefreshTokenRepository,
	logger logrus.FieldLogger,
) AuthService {
	return &authService{
		jwtIssuer:    jwtIssuer,
		jwtValidator: jwtValidator,
		rfrTokenCfg:  rfrTokenCfg,
		trx:          trx,
		userRepo:     userRepo,
		rfrTokenRepo: rfrTokenRepo,
		logger:       logger,
	}
}

func (s *authService) Login(ctx context.Context, login string, password string, fingerprint string, now time.Time) (*auth.Jwt, *model.RefreshToken, error) {
	login = strings.TrimSpace(login)

	var jwt *auth.Jwt
	var rfrToken *model.RefreshToken

	err := s.trx.WithinTransaction(ctx, func(ctx context.Context) error {
		u, err := s.userRepo.FindByUsernameOrEmail(ctx, login, strings.ToLower(login))
		if err != nil {
			return err
		}

		if u == nil {
			return echo.ErrUnauthorized
		}

		if err := auth.VerifyPassword(u.PasswordHash, password); err != nil {
			return echo.ErrUnauthorized
		}

		jwt, err = s.jwtIssuer.Sign(u, now)
		if err != nil {
			return err
		}

		userTkns, err := s.rfrTokenRepo.FindTokensByUserID(ctx, u.ID)
		if err != nil {
			return err
		}

		if len(userTkns) >= s.rfrTokenCfg.MaxCount {
			if err := s.rfrTokenRepo.DeleteByUserID(ctx, u.ID); err != nil {
				return err
			}
		}

		rfrToken = s.newRefreshToken(u.ID, fingerprint, now)
		return s.rfrTokenRepo.Create(ctx, rfrToken)
	})
	if err != nil {
		return nil, nil, err
	}

	s.logger.WithField("login", login).Info("user logged in")
	return jwt, rfrToken, nil
}

func (s *authService) Refresh(ctx context.Context, token string, fingerprint string, now time.Time) (*auth.Jwt, *model.RefreshToken, error) {
	var jwt *auth.Jwt
	var rfrToken *model.RefreshToken
	var rejectErr error

	err := s.trx.WithinTransaction(ctx, func(ctx context.Context) error {
		existing, err := s.rfrTokenRepo.FindByID(ctx, token)
		if err != nil {
			return err
		}

		if existing == nil {
			return echo.NewHTTPError(http.StatusBadRequest, "refresh token doesn't exist")
		}

		if err := s.rfrTokenRepo.DeleteByID(ctx, existing.ID); err != nil {
			return err
		}

		// rejected token must stay deleted, so transaction is committed
		if existing.Fingerprint != fingerprint {
			rejectErr = echo.NewHTTPError(http.StatusBadRequest, "invalid fingerprint for refresh token provided")
			return nil
		}

		if existing.IsExpired(now) {
			rejectErr = echo.NewHTTPError(http.StatusBadRequest, "refresh token expired")
			return nil
		}

		u, err := s.userRepo.FindByID(ctx, existing.UserID)
		if err != nil {
			return err
		}

		if u == nil {
			return echo.ErrUnauthorized
		}

		jwt, err = s.jwtIssuer.Sign(u, now)
		if err != nil {
			return err
		}

		rfrToken = s.newRefreshToken(u.ID, fingerprint, now)
		return s.rfrTokenRepo.Create(ctx, rfrToken)
	})
	if err != nil {
		return nil, nil, err
	}

	if rejectErr != nil {
		return nil, nil, rejectErr
	}
	return jwt, rfrToken, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	return s.rfrTokenRepo.DeleteByID(ctx, token)
}

func (s *authService) Verify(_ context.Context, raw string) (*auth.JwtClaims, error) {
	claims, err := s.jwtValidator.Verify(raw)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, fmt.Sprintf("invalid access token provided - %v", err))
	}
	return claims, nil
}

func (s *authService) EnsureAdmin(ctx context.Context, username string, email string, password string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	u, err := s.userRepo.FindByUsernameOrEmail(ctx, username, email)
	if err != nil {
		return fmt.Errorf("failed to look up admin user - %w", err)
	}

	if u != nil {
		return nil
	}

	hash, err := auth.GeneratePasswordHash(password)
	if err != nil {
		return err
	}

	admin := &model.User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         model.RoleAdmin,
	}

	if err := s.userRepo.Create(ctx, admin); err != nil {
		// started concurrently by another instance
		if errors.Is(err, repository.ErrDuplicate) {
			return nil
		}
		return fmt.Errorf("failed to create admin user - %w", err)
	}

	s.logger.WithField("username", username).Info("admin user created")
	return nil
}

func (s *authService) newRefreshToken(userID string, fingerprint string, now time.Time) *model.RefreshToken {
	return &model.RefreshToken{
		ID:          uuid.NewString(),
		UserID:      userID,
		Fingerprint: fingerprint,
		ExpiresIn:   int(s.rfrTokenCfg.TimeToLive.Seconds()),
		CreatedAt:   now,
	}
}
