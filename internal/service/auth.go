// Package service provides business logic for the application.
package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"golang.org/x/crypto/bcrypt"

	"github.com/climaplus/climaplus/internal/metrics"
	"github.com/climaplus/climaplus/internal/model"
	"github.com/climaplus/climaplus/internal/repository"
)

// Service errors.
var (
	ErrMissingFields      = errors.New("all fields required")
	ErrInvalidEmail       = errors.New("invalid email format")
	ErrPasswordTooShort   = errors.New("password too short")
	ErrEmailExists        = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Email shape check: a local part, an @, a domain, and a dot-separated
// suffix. Deliberately not full RFC 5322 validation.
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const minPasswordLength = 6

// DefaultBcryptCost is the hashing cost used when none is configured.
const DefaultBcryptCost = 10

// UserStore defines the persistence operations required by AuthService.
type UserStore interface {
	// CreateUser inserts a user and fills the generated id. Returns
	// repository.ErrEmailExists when the email unique constraint fires.
	CreateUser(ctx context.Context, user *model.User) error
	// GetUserByEmail returns repository.ErrUserNotFound on no match.
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
}

// AuthService handles registration and credential verification.
type AuthService struct {
	store      UserStore
	bcryptCost int
	metrics    metrics.Recorder
}

// NewAuthService creates a new AuthService.
func NewAuthService(store UserStore, bcryptCost int, recorder metrics.Recorder) *AuthService {
	if bcryptCost == 0 {
		bcryptCost = DefaultBcryptCost
	}
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &AuthService{
		store:      store,
		bcryptCost: bcryptCost,
		metrics:    recorder,
	}
}

// RegisterInput defines input for registering a user.
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// Register validates the input, hashes the password, and inserts the
// user. Validation failures are reported before any store call. The
// store's email unique constraint is the authority on duplicates; there
// is no pre-check, so two concurrent registrations of the same email
// race on the insert and the loser gets ErrEmailExists.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*model.User, error) {
	if input.FirstName == "" || input.LastName == "" || input.Email == "" || input.Password == "" {
		s.metrics.IncRegistrationRejected()
		return nil, ErrMissingFields
	}

	if !emailRegex.MatchString(input.Email) {
		s.metrics.IncRegistrationRejected()
		return nil, ErrInvalidEmail
	}

	if len(input.Password) < minPasswordLength {
		s.metrics.IncRegistrationRejected()
		return nil, ErrPasswordTooShort
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		PasswordHash: string(hash),
	}

	if err := s.store.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			s.metrics.IncRegistrationRejected()
			return nil, ErrEmailExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.metrics.IncUserRegistered()

	return user, nil
}

// SessionInfo is returned on successful login. No token or expiry:
// the client keeps the user fields for subsequent requests.
type SessionInfo struct {
	UserID    int64  `json:"userId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// Login verifies credentials by exact email lookup and bcrypt compare.
// An unknown email and a wrong password both return
// ErrInvalidCredentials: the caller must not be able to tell which
// failed.
func (s *AuthService) Login(ctx context.Context, email, password string) (*SessionInfo, error) {
	if email == "" || password == "" {
		s.metrics.IncLoginFailed()
		return nil, ErrInvalidCredentials
	}

	user, err := s.store.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			s.metrics.IncLoginFailed()
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.metrics.IncLoginFailed()
		return nil, ErrInvalidCredentials
	}

	s.metrics.IncLoginSucceeded()

	return &SessionInfo{
		UserID:    user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
	}, nil
}
