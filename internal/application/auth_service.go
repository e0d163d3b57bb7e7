package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/avisoslab/avisos-api/internal/domain/entity"
	"github.com/avisoslab/avisos-api/internal/domain/repository"
	"github.com/avisoslab/avisos-api/pkg/helpers"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// dummyHash is compared against when login hits an unknown email, so both
// failure paths cost one bcrypt verification.
var dummyHash string

func init() {
	h, err := helpers.HashPassword("credential-padding")
	if err != nil {
		panic(err)
	}
	dummyHash = h
}

// AuthService orchestrates registration and login: existence checks,
// password hashing, and token issuance.
type AuthService struct {
	Users  repository.UserRepository
	JWT    *helpers.JWTManager
	Logger *logrus.Logger
}

func NewAuthService(users repository.UserRepository, jwt *helpers.JWTManager, logger *logrus.Logger) *AuthService {
	return &AuthService{Users: users, JWT: jwt, Logger: logger}
}

// AuthResult carries the authenticated user and their freshly issued token.
type AuthResult struct {
	User        *entity.User
	Token       string
	TokenExpiry time.Time
}

// Register creates a new account and issues its first token. The existence
// check gives a friendly error on the common path; the unique index on
// users.email decides the outcome under concurrent registrations.
func (s *AuthService) Register(ctx context.Context, email, password string) (*AuthResult, error) {
	exists, err := s.Users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailTaken
	}

	hash, err := helpers.HashPassword(password)
	if err != nil {
		return nil, err
	}

	u := &entity.User{Email: email, PasswordHash: hash}
	if err := s.Users.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	return s.issue(u)
}

// Login authenticates an existing account. Unknown email and wrong
// password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			helpers.CheckPassword(dummyHash, password)
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !helpers.CheckPassword(u.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	return s.issue(u)
}

func (s *AuthService) issue(u *entity.User) (*AuthResult, error) {
	token, exp, err := s.JWT.Generate(u.ID, u.Email)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("generate access token failed")
		}
		return nil, err
	}
	return &AuthResult{User: u, Token: token, TokenExpiry: exp}, nil
}
