package auth

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/nexproctor/proctor-server/internal/dependencies/clock"
	"github.com/nexproctor/proctor-server/internal/model"
	"github.com/nexproctor/proctor-server/internal/storage"
)

// Errors
var (
	ErrInvalidCredentials = errors.New("invalid proctor credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// Session represents an authenticated proctor session
type Session struct {
	Token     string
	Username  string
	Role      string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Claims is the JWT payload for proctor sessions
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Config holds configuration for the auth service
type Config struct {
	SigningKey string
	Issuer     string
	TokenTTL   time.Duration
}

// DefaultConfig returns default auth configuration
func DefaultConfig() Config {
	return Config{
		SigningKey: "dev-signing-secret-change",
		Issuer:     "proctor-server",
		TokenTTL:   24 * time.Hour,
	}
}

// Service validates proctor credentials and issues session tokens.
//
// Tokens are issued on login but no boundary operation currently
// requires one; proctor endpoints are not access-controlled. That is a
// known limitation of the current design, kept deliberately.
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	cfg     Config
}

// New creates a new auth service
func New(storage storage.Storage, clk clock.Clock, cfg Config) *Service {
	if cfg.TokenTTL == 0 {
		cfg.TokenTTL = DefaultConfig().TokenTTL
	}
	if cfg.Issuer == "" {
		cfg.Issuer = DefaultConfig().Issuer
	}
	return &Service{
		storage: storage,
		clock:   clk,
		cfg:     cfg,
	}
}

// ProvisionAccount stores a proctor account. Passwords are hashed with
// bcrypt before storage; plaintext never reaches the storage layer.
func (s *Service) ProvisionAccount(ctx context.Context, username, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.ProvisionAccountWithHash(ctx, username, string(hash))
}

// ProvisionAccountWithHash stores a proctor account with a pre-computed
// bcrypt hash.
func (s *Service) ProvisionAccountWithHash(ctx context.Context, username, passwordHash string) error {
	account := &model.ProctorAccount{
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    s.clock.Now(),
	}
	return s.storage.SaveProctorAccount(ctx, account)
}

// Authenticate checks proctor credentials and returns a session with a
// signed token on success.
func (s *Service) Authenticate(ctx context.Context, username, password string) (*Session, error) {
	account, err := s.storage.GetProctorAccountByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, model.ErrAccountNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.createSession(account.Username)
}

// ValidateToken parses and verifies a session token
func (s *Service) ValidateToken(token string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, ErrInvalidToken
		}
		return []byte(s.cfg.SigningKey), nil
	}, jwt.WithTimeFunc(s.clock.Now))
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Issuer != s.cfg.Issuer {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// createSession signs a JWT for the given proctor
func (s *Service) createSession(username string) (*Session, error) {
	now := s.clock.Now()
	expiresAt := now.Add(s.cfg.TokenTTL)

	claims := Claims{
		Role: model.RoleProctor,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.cfg.Issuer,
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.SigningKey))
	if err != nil {
		return nil, err
	}

	return &Session{
		Token:     token,
		Username:  username,
		Role:      model.RoleProctor,
		IssuedAt:  now,
		ExpiresAt: expiresAt,
	}, nil
}
