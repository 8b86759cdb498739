package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/nexproctor/proctor-server/internal/dependencies/mocks"
	"github.com/nexproctor/proctor-server/internal/model"
	"github.com/nexproctor/proctor-server/internal/storage/memory"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	clock   *mocks.MockClock
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.service = New(s.storage, s.clock, DefaultConfig())
	s.ctx = context.Background()

	s.Require().NoError(s.service.ProvisionAccount(s.ctx, "admin", "admin123"))
}

// Authenticate tests

func (s *ServiceSuite) TestAuthenticateSucceeds() {
	session, err := s.service.Authenticate(s.ctx, "admin", "admin123")
	s.Require().NoError(err)

	s.NotEmpty(session.Token)
	s.Equal("admin", session.Username)
	s.Equal(model.RoleProctor, session.Role)
}

func (s *ServiceSuite) TestAuthenticateFailsWithWrongPassword() {
	_, err := s.service.Authenticate(s.ctx, "admin", "wrongpassword")
	s.ErrorIs(err, ErrInvalidCredentials)
}

func (s *ServiceSuite) TestAuthenticateFailsWithUnknownUsername() {
	_, err := s.service.Authenticate(s.ctx, "nobody", "admin123")
	s.ErrorIs(err, ErrInvalidCredentials)
}

func (s *ServiceSuite) TestAuthenticateIsCaseSensitive() {
	_, err := s.service.Authenticate(s.ctx, "admin", "ADMIN123")
	s.ErrorIs(err, ErrInvalidCredentials)
}

// ProvisionAccount tests

func (s *ServiceSuite) TestProvisionAccountHashesPassword() {
	account, err := s.storage.GetProctorAccountByUsername(s.ctx, "admin")
	s.Require().NoError(err)
	s.NotEqual("admin123", account.PasswordHash)
	s.NotEmpty(account.PasswordHash)
}

func (s *ServiceSuite) TestProvisionAccountWithHash() {
	// A hash of "secret" computed elsewhere still authenticates
	other := New(s.storage, s.clock, DefaultConfig())
	s.Require().NoError(other.ProvisionAccount(s.ctx, "second", "secret"))

	account, err := s.storage.GetProctorAccountByUsername(s.ctx, "second")
	s.Require().NoError(err)

	fresh := memory.New()
	svc := New(fresh, s.clock, DefaultConfig())
	s.Require().NoError(svc.ProvisionAccountWithHash(s.ctx, "second", account.PasswordHash))

	_, err = svc.Authenticate(s.ctx, "second", "secret")
	s.NoError(err)
}

// ValidateToken tests

func (s *ServiceSuite) TestValidateTokenSucceeds() {
	session, _ := s.service.Authenticate(s.ctx, "admin", "admin123")

	claims, err := s.service.ValidateToken(session.Token)
	s.Require().NoError(err)
	s.Equal("admin", claims.Subject)
	s.Equal(model.RoleProctor, claims.Role)
}

func (s *ServiceSuite) TestValidateTokenFailsWithGarbage() {
	_, err := s.service.ValidateToken("not-a-token")
	s.ErrorIs(err, ErrInvalidToken)
}

func (s *ServiceSuite) TestValidateTokenFailsWhenExpired() {
	session, _ := s.service.Authenticate(s.ctx, "admin", "admin123")

	s.clock.Advance(25 * time.Hour)

	_, err := s.service.ValidateToken(session.Token)
	s.ErrorIs(err, ErrInvalidToken)
}

func (s *ServiceSuite) TestValidateTokenFailsWithWrongKey() {
	session, _ := s.service.Authenticate(s.ctx, "admin", "admin123")

	cfg := DefaultConfig()
	cfg.SigningKey = "a-different-secret"
	other := New(s.storage, s.clock, cfg)

	_, err := other.ValidateToken(session.Token)
	s.ErrorIs(err, ErrInvalidToken)
}
