// Package user handles accounts: persistence, password hashing and the
// session tokens consumed by the HTTP middleware.
package user

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/mcastellanos/storefront/internal/apperr"
)

type Service struct {
	repo   Repository
	tokens *TokenIssuer
}

func NewService(repo Repository, tokens *TokenIssuer) *Service {
	return &Service{repo: repo, tokens: tokens}
}

func (s *Service) Register(ctx context.Context, name, email, password string) (*User, string, error) {
	if name == "" || email == "" || password == "" {
		return nil, "", apperr.New(apperr.InvalidArgument, "name, email and password are required")
	}
	hash, err := HashPassword(password)
	if err != nil {
		return nil, "", err
	}
	u := &User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         RoleCustomer,
		CreatedAt:    time.Now().UTC(),
	}
	u.UpdatedAt = u.CreatedAt
	if err := s.repo.Create(ctx, u); err != nil {
		if errors.Is(err, ErrAlreadyExist) {
			return nil, "", apperr.New(apperr.InvalidArgument, "email already registered")
		}
		return nil, "", apperr.Wrap(apperr.StoreUnavailable, "cannot create user", err)
	}
	token, err := s.tokens.Issue(u)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

func (s *Service) Login(ctx context.Context, email, password string) (*User, string, error) {
	if email == "" || password == "" {
		return nil, "", apperr.New(apperr.InvalidArgument, "email and password are required")
	}
	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		// same message for unknown email and wrong password
		return nil, "", apperr.New(apperr.Unauthorized, "invalid credentials")
	}
	if !CheckPassword(u.PasswordHash, password) {
		return nil, "", apperr.New(apperr.Unauthorized, "invalid credentials")
	}
	token, err := s.tokens.Issue(u)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

func (s *Service) Me(ctx context.Context, id string) (*User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.New(apperr.NotFound, "user not found")
	}
	return u, nil
}

// Authenticate resolves a bearer token into its claims.
func (s *Service) Authenticate(tokenString string) (*Claims, error) {
	return s.tokens.Parse(tokenString)
}
