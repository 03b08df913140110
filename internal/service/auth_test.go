package service

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/umalmyha/crm/internal/auth"
	"github.com/umalmyha/crm/internal/config"
	"github.com/umalmyha/crm/internal/model"
	"github.com/umalmyha/crm/internal/repository"
	"github.com/umalmyha/crm/internal/repository/mocks"
)

const (
	jwtAlgoEd25519 = "EdDSA"
	jwtIssuerClaim = "test-issuer"
	jwtTimeToLive  = 3 * time.Minute
)

const (
	refreshTokenMaxCount   = 2
	refreshTokenTimeToLive = 720 * time.Hour
)

var testAuthCtx = context.Background()
var testNow = time.Now().UTC()
var testPassword = "secret_password"
var testFingerprint = "87c37298-2f3d-40a1-9438-f45d2d819206"

var rfrTokenCfg = &config.RefreshTokenCfg{MaxCount: refreshTokenMaxCount, TimeToLive: refreshTokenTimeToLive}

type authServiceTestSuite struct {
	suite.Suite
	authSvc         AuthService
	jwtIssuer       *auth.JwtIssuer
	jwtValidator    *auth.JwtValidator
	testUser        *model.User
	testRfrToken    *model.RefreshToken
	transactorMock  *mocks.Transactor
	userRpsMock     *mocks.UserRepository
	rfrTokenRpsMock *mocks.RefreshTokenRepository
}

func (s *authServiceTestSuite) SetupSuite() {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	s.Require().NoError(err, "failed to generate key pair")

	method := jwt.GetSigningMethod(jwtAlgoEd25519)
	s.jwtIssuer = auth.NewJwtIssuer(jwtIssuerClaim, method, jwtTimeToLive, priv)
	s.jwtValidator = auth.NewJwtValidator(method, pub)

	hash, err := auth.GeneratePasswordHash(testPassword)
	s.Require().NoError(err, "failed to hash password")

	s.testUser = &model.User{
		ID:           "bdf2f837-75f6-462a-b9ec-5dfb2e8f8792",
		Username:     "tester",
		Email:        "test@email.com",
		PasswordHash: hash,
		Role:         model.RoleEmployee,
	}

	s.testRfrToken = &model.RefreshToken{
		ID:          "1165dfc0-2dd0-4bea-ac69-4462f1cacacf",
		UserID:      s.testUser.ID,
		Fingerprint: testFingerprint,
		ExpiresIn:   int(refreshTokenTimeToLive.Seconds()),
		CreatedAt:   testNow,
	}
}

func (s *authServiceTestSuite) SetupTest() {
	t := s.T()
	s.transactorMock = mocks.NewTransactor(t)
	s.transactorMock.On(
		"WithinTransaction",
		mock.Anything,
		mock.AnythingOfType("func(context.Context) error"),
	).Return(func(ctx context.Context, txFunc func(ctx context.Context) error) error {
		return txFunc(ctx)
	}).Maybe()

	s.userRpsMock = mocks.NewUserRepository(t)
	s.rfrTokenRpsMock = mocks.NewRefreshTokenRepository(t)

	logger, _ := test.NewNullLogger()
	s.authSvc = NewAuthService(s.jwtIssuer, s.jwtValidator, rfrTokenCfg, s.transactorMock, s.userRpsMock, s.rfrTokenRpsMock, logger)
}

func (s *authServiceTestSuite) TestLoginBadUsername() {
	email := s.testUser.Email

	s.userRpsMock.On("FindByUsernameOrEmail", testAuthCtx, email, email).Return(nil, nil).Once()

	s.T().Logf("login user %s but email is not registered", email)
	{
		_, _, err := s.authSvc.Login(testAuthCtx, email, testPassword, testFingerprint, testNow)
		s.Assert().Error(err, "user with email %s is not registered, but no error raised", email)
		s.Assert().ErrorIs(err, echo.ErrUnauthorized, "it must be unauthorized error")
	}
}

func (s *authServiceTestSuite) TestLoginBadPassword() {
	email := s.testUser.Email
	invalidPassword := "invalid_password"

	s.userRpsMock.On("FindByUsernameOrEmail", testAuthCtx, email, email).Return(s.testUser, nil).Once()

	s.T().Logf("login user %s but password is incorrect", email)
	{
		_, _, err := s.authSvc.Login(testAuthCtx, email, invalidPassword, testFingerprint, testNow)
		s.Assert().Error(err, "wrong password is provided but no error raised")
		s.Assert().ErrorIs(err, echo.ErrUnauthorized, "it must be unauthorized error")
		s.rfrTokenRpsMock.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
	}
}

func (s *authServiceTestSuite) TestLoginByUsername() {
	username := s.testUser.Username

	s.userRpsMock.On("FindByUsernameOrEmail", testAuthCtx, username, username).Return(s.testUser, nil).Once()
	s.rfrTokenRpsMock.On("FindTokensByUserID", testAuthCtx, s.testUser.ID).Return([]*model.RefreshToken{}, nil).Once()
	s.rfrTokenRpsMock.On("Create", testAuthCtx, mock.AnythingOfType("*model.RefreshToken")).Return(nil).Once()

	s.T().Logf("login user by username %s", username)
	{
		jwToken, rfrToken, err := s.authSvc.Login(testAuthCtx, username, testPassword, testFingerprint, testNow)
		s.Require().NoError(err, "username login must be accepted")
		s.Assert().Equal(testFingerprint, rfrToken.Fingerprint)

		claims, err := s.jwtValidator.Verify(jwToken.Signed)
		s.Require().NoError(err, "issued token must be valid")
		s.Assert().Equal(s.testUser.ID, claims.Subject)
		s.Assert().Equal(model.RoleEmployee, claims.Role)
	}
}

func (s *authServiceTestSuite) TestLoginSuccessAndPreviousTokensRemoved() {
	email := s.testUser.Email

	dbTokens := []*model.RefreshToken{
		{
			ID:          "af1adce5-51a4-4d2e-a6ba-da0e7009a1bf",
			UserID:      s.testUser.ID,
			Fingerprint: "86d36dcb-512b-402d-bec4-ae8922677cd7",
			ExpiresIn:   1000,
			CreatedAt:   testNow,
		},
		{
			ID:          "c0e3f0d9-1f5b-4f5e-b0ad-7f3c3aa1f2b0",
			UserID:      s.testUser.ID,
			Fingerprint: "88a6a8ac-1104-41ae-b13c-c33deb5af5c2",
			ExpiresIn:   2000,
			CreatedAt:   testNow,
		},
	}

	s.userRpsMock.On("FindByUsernameOrEmail", testAuthCtx, email, email).Return(s.testUser, nil).Once()
	s.rfrTokenRpsMock.On("FindTokensByUserID", testAuthCtx, s.testUser.ID).Return(dbTokens, nil).Once()
	s.rfrTokenRpsMock.On("DeleteByUserID", testAuthCtx, s.testUser.ID).Return(nil).Once()
	s.rfrTokenRpsMock.On("Create", testAuthCtx, mock.AnythingOfType("*model.RefreshToken")).Return(nil).Once()

	s.T().Logf("login user %s successfully, but all previous tokens will be removed", email)
	{
		jwToken, rfrToken, err := s.authSvc.Login(testAuthCtx, email, testPassword, testFingerprint, testNow)
		s.Assert().NoError(err, "user login is correct but error was raised")
		s.Assert().Equal(testNow.Add(jwtTimeToLive).Unix(), jwToken.ExpiresAt, "incorrect time to live was set for jwt")
		s.Assert().Equal(int(refreshTokenTimeToLive.Seconds()), rfrToken.ExpiresIn, "expires in is set incorrectly")
		s.rfrTokenRpsMock.AssertCalled(s.T(), "DeleteByUserID", testAuthCtx, s.testUser.ID)
	}
}

func (s *authServiceTestSuite) TestRefreshInvalidToken() {
	s.rfrTokenRpsMock.On("FindByID", testAuthCtx, s.testRfrToken.ID).Return(nil, nil).Once()

	s.T().Log("refresh with invalid token")
	{
		_, _, err := s.authSvc.Refresh(testAuthCtx, s.testRfrToken.ID, testFingerprint, testNow)
		s.Assert().Error(err, "invalid refresh token id was provided but no error raised")
		s.Assert().IsType(&echo.HTTPError{}, err, "error must be echo error")
	}
}

func (s *authServiceTestSuite) TestRefreshInvalidFingerprint() {
	invalidFingerprint := "461b07b5-3373-495d-b26b-d689a0c8a557"

	s.rfrTokenRpsMock.On("FindByID", testAuthCtx, s.testRfrToken.ID).Return(s.testRfrToken, nil).Once()
	s.rfrTokenRpsMock.On("DeleteByID", testAuthCtx, s.testRfrToken.ID).Return(nil).Once()

	s.T().Log("refresh with invalid fingerprint")
	{
		_, _, err := s.authSvc.Refresh(testAuthCtx, s.testRfrToken.ID, invalidFingerprint, testNow)
		s.Assert().Error(err, "invalid refresh token fingerprint was provided but no error raised")
		s.Assert().IsType(&echo.HTTPError{}, err, "error must be echo error")
	}
}

func (s *authServiceTestSuite) TestRefreshExpiredToken() {
	futureNow := testNow.Add(725 * time.Hour)

	s.rfrTokenRpsMock.On("FindByID", testAuthCtx, s.testRfrToken.ID).Return(s.testRfrToken, nil).Once()
	s.rfrTokenRpsMock.On("DeleteByID", testAuthCtx, s.testRfrToken.ID).Return(nil).Once()

	s.T().Log("refresh with already expired token")
	{
		_, _, err := s.authSvc.Refresh(testAuthCtx, s.testRfrToken.ID, testFingerprint, futureNow)
		s.Assert().Error(err, "refresh for expired refresh token was provided but no error raised")
		s.Assert().IsType(&echo.HTTPError{}, err, "error must be echo error")
	}
}

func (s *authServiceTestSuite) TestRefreshRejectedTokenStaysDeleted() {
	trxMock := mocks.NewTransactor(s.T())
	var txErr error
	trxMock.On(
		"WithinTransaction",
		mock.Anything,
		mock.AnythingOfType("func(context.Context) error"),
	).Return(func(ctx context.Context, txFunc func(ctx context.Context) error) error {
		txErr = txFunc(ctx)
		return txErr
	}).Twice()

	logger, _ := test.NewNullLogger()
	authSvc := NewAuthService(s.jwtIssuer, s.jwtValidator, rfrTokenCfg, trxMock, s.userRpsMock, s.rfrTokenRpsMock, logger)

	s.rfrTokenRpsMock.On("FindByID", testAuthCtx, s.testRfrToken.ID).Return(s.testRfrToken, nil).Twice()
	s.rfrTokenRpsMock.On("DeleteByID", testAuthCtx, s.testRfrToken.ID).Return(nil).Twice()

	s.T().Log("token with wrong fingerprint is deleted in committed transaction")
	{
		_, _, err := authSvc.Refresh(testAuthCtx, s.testRfrToken.ID, "461b07b5-3373-495d-b26b-d689a0c8a557", testNow)
		s.Require().Error(err, "wrong fingerprint was provided but no error raised")
		s.Assert().IsType(&echo.HTTPError{}, err, "error must be echo error")
		s.Assert().NoError(txErr, "transaction must be committed to keep token deleted")
	}

	s.T().Log("expired token is deleted in committed transaction")
	{
		_, _, err := authSvc.Refresh(testAuthCtx, s.testRfrToken.ID, testFingerprint, testNow.Add(725*time.Hour))
		s.Require().Error(err, "expired token was provided but no error raised")
		s.Assert().NoError(txErr, "transaction must be committed to keep token deleted")
	}
	s.rfrTokenRpsMock.AssertNumberOfCalls(s.T(), "DeleteByID", 2)
	s.rfrTokenRpsMock.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *authServiceTestSuite) TestRefreshSuccessful() {
	s.rfrTokenRpsMock.On("FindByID", testAuthCtx, s.testRfrToken.ID).Return(s.testRfrToken, nil).Once()
	s.rfrTokenRpsMock.On("DeleteByID", testAuthCtx, s.testRfrToken.ID).Return(nil).Once()
	s.userRpsMock.On("FindByID", testAuthCtx, s.testRfrToken.UserID).Return(s.testUser, nil).Once()
	s.rfrTokenRpsMock.On("Create", testAuthCtx, mock.AnythingOfType("*model.RefreshToken")).Return(nil).Once()

	s.T().Log("refresh with valid token")
	{
		jwToken, rfrToken, err := s.authSvc.Refresh(testAuthCtx, s.testRfrToken.ID, testFingerprint, testNow)
		s.Assert().NoError(err, "refresh request is correctly sent but error raised")
		s.Assert().Equal(testNow.Add(jwtTimeToLive).Unix(), jwToken.ExpiresAt, "incorrect time to live was set for jwt")
		s.Assert().Equal(int(refreshTokenTimeToLive.Seconds()), rfrToken.ExpiresIn, "expires in is set incorrectly")
		s.Assert().NotEqual(s.testRfrToken.ID, rfrToken.ID, "refresh token must be rotated")
	}
}

func (s *authServiceTestSuite) TestLogout() {
	s.rfrTokenRpsMock.On("DeleteByID", testAuthCtx, s.testRfrToken.ID).Return(nil).Once()

	s.T().Log("logout removes refresh token")
	{
		err := s.authSvc.Logout(testAuthCtx, s.testRfrToken.ID)
		s.Assert().NoError(err, "logout request is correct but error was raised")
	}
}

func (s *authServiceTestSuite) TestVerify() {
	token, err := s.jwtIssuer.Sign(s.testUser, time.Now())
	s.Require().NoError(err)

	s.T().Log("valid token gives user claims")
	{
		claims, err := s.authSvc.Verify(testAuthCtx, token.Signed)
		s.Require().NoError(err)
		s.Assert().Equal(s.testUser.Username, claims.Username)
	}

	s.T().Log("garbage token is unauthorized")
	{
		_, err := s.authSvc.Verify(testAuthCtx, "not-a-token")
		var httpErr *echo.HTTPError
		s.Require().ErrorAs(err, &httpErr)
		s.Assert().Equal(401, httpErr.Code)
	}
}

func (s *authServiceTestSuite) TestEnsureAdmin() {
	s.userRpsMock.On("FindByUsernameOrEmail", testAuthCtx, "admin", "admin@crm.com").Return(nil, nil).Once()
	s.userRpsMock.On("Create", testAuthCtx, mock.MatchedBy(func(u *model.User) bool {
		return u.Role == model.RoleAdmin && u.PasswordHash != "admin_password" && auth.VerifyPassword(u.PasswordHash, "admin_password") == nil
	})).Return(nil).Once()

	s.T().Log("missing admin is created with hashed password")
	{
		err := s.authSvc.EnsureAdmin(testAuthCtx, "admin", "Admin@CRM.com", "admin_password")
		s.Require().NoError(err)
	}

	s.userRpsMock.On("FindByUsernameOrEmail", testAuthCtx, "admin", "admin@crm.com").Return(nil, nil).Once()
	s.userRpsMock.On("Create", testAuthCtx, mock.AnythingOfType("*model.User")).Return(repository.ErrDuplicate).Once()

	s.T().Log("admin created concurrently is not an error")
	{
		err := s.authSvc.EnsureAdmin(testAuthCtx, "admin", "admin@crm.com", "admin_password")
		s.Require().NoError(err)
	}

	s.userRpsMock.On("FindByUsernameOrEmail", testAuthCtx, "admin", "admin@crm.com").Return(&model.User{ID: "1"}, nil).Once()

	s.T().Log("existing admin is kept")
	{
		err := s.authSvc.EnsureAdmin(testAuthCtx, "admin", "admin@crm.com", "admin_password")
		s.Require().NoError(err)
	}
}

// start auth service test suite
func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(authServiceTestSuite))
}
