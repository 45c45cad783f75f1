package auth

import (
	"context"
	"errors"
	"time"
	"volley/database"
	"volley/utils"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials covers both an unknown email and a wrong password,
// so login responses never reveal which accounts exist.
var ErrInvalidCredentials = errors.New("invalid credentials")

// LoginResult is what a successful login hands back to the client.
type LoginResult struct {
	Token string    `json:"token"`
	User  LoginUser `json:"user"`
}

type LoginUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Service checks credentials against the account store and issues bearer
// tokens.
type Service struct {
	store  database.Store
	secret string
	ttl    time.Duration
}

func New(store database.Store, secret string, ttl time.Duration) *Service {
	return &Service{store: store, secret: secret, ttl: ttl}
}

// Login verifies the password for the account and signs a token. Every
// failure mode surfaces as ErrInvalidCredentials except store errors, which
// pass through.
func (s *Service) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	account, err := s.store.AccountByEmail(ctx, email)
	if errors.Is(err, database.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.CreateJWT(account.Email, s.secret, s.ttl)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		Token: token,
		User:  LoginUser{ID: account.ID, Email: account.Email},
	}, nil
}

// HashPassword wraps bcrypt for account creation and seeding tools.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
