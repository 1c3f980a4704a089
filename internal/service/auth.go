package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/smartcards/backend/internal/db"
	"github.com/smartcards/backend/internal/model"
)

const maxPasswordLength = 128

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrConflict      = errors.New("conflict")
	ErrNotFound      = errors.New("not found")
	ErrMisconfigured = errors.New("auth config invalid")
)

// UserStore is the credential-store contract the auth layer depends on.
// Satisfied by both db.Postgres and db.Memory.
type UserStore interface {
	CreateUser(ctx context.Context, id, email, passwordHash, fullName string) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
}

type AuthService struct {
	store  UserStore
	tokens *TokenService
}

func NewAuthService(store UserStore, tokens *TokenService) *AuthService {
	return &AuthService{store: store, tokens: tokens}
}

// Register hashes the password, mints an id and inserts the user. A taken
// email surfaces as ErrConflict whichever request wins the race; the store's
// uniqueness guarantee decides, not a read-then-write here.
func (s *AuthService) Register(ctx context.Context, email, password, fullName string) (*model.User, error) {
	if err := validateCredentials(email, password); err != nil {
		return nil, err
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	user, err := s.store.CreateUser(ctx, uuid.NewString(), email, hash, fullName)
	if err != nil {
		if errors.Is(err, db.ErrEmailTaken) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return user, nil
}

// Login verifies credentials and returns a bearer token with the configured
// access TTL. Unknown email and wrong password are deliberately collapsed
// into the same ErrUnauthorized.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return "", ErrUnauthorized
	}

	user, err := s.store.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return "", ErrUnauthorized
		}
		return "", err
	}

	if !CheckPassword(password, user.PasswordHash) {
		return "", ErrUnauthorized
	}

	return s.tokens.Issue(user.Email, s.tokens.AccessTTL())
}

// ResolveUser turns a raw bearer token into the current user. The token is
// verified first; only then is the subject looked up, fresh, in the store.
// A valid token whose user has since vanished fails exactly like a bad
// token so the two cases cannot be told apart from outside.
func (s *AuthService) ResolveUser(ctx context.Context, token string) (*model.User, error) {
	subject, err := s.tokens.Verify(token)
	if err != nil {
		return nil, ErrUnauthorized
	}

	user, err := s.store.GetUserByEmail(ctx, subject)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, err
	}
	return user, nil
}

func validateCredentials(email, password string) error {
	email = strings.TrimSpace(email)
	if email == "" || !strings.Contains(email, "@") {
		return ErrInvalidInput
	}
	if password == "" || len(password) > maxPasswordLength {
		return ErrInvalidInput
	}
	return nil
}
