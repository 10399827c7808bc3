package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/arcadia/zoo-api/internal/core/domain"
	"github.com/arcadia/zoo-api/internal/core/ports"
)

// AuthService implements login and administrator-driven registration.
type AuthService struct {
	repo   ports.AccountRepository
	hasher ports.PasswordHasher
	tokens ports.TokenService
	log    zerolog.Logger
}

func NewAuthService(repo ports.AccountRepository, hasher ports.PasswordHasher, tokens ports.TokenService, log zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, hasher: hasher, tokens: tokens, log: log}
}

// Login returns a fresh token. Unknown email and wrong password produce the
// same domain.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	account, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", fmt.Errorf("login: find account: %w", err)
	}

	if !s.hasher.Verify(password, account.PasswordHash) {
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(account.ID, account.Role)
	if err != nil {
		return "", fmt.Errorf("login: %w", err)
	}

	s.log.Info().Int64("account_id", account.ID).Stringer("role", account.Role).Msg("login succeeded")
	return token, nil
}

// Register creates a veterinarian or employee account. The caller must
// already be authorized as an administrator.
func (s *AuthService) Register(ctx context.Context, email, password string, roleID int) (int64, error) {
	role, err := domain.ParseRole(roleID)
	if err != nil || !domain.RegistrableRoles.Contains(role) {
		return 0, domain.ErrInvalidRole
	}

	// Query-then-insert; the store's unique constraint closes the race when present.
	_, err = s.repo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return 0, domain.ErrDuplicateEmail
	case !errors.Is(err, domain.ErrAccountNotFound):
		return 0, fmt.Errorf("register: check email: %w", err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return 0, fmt.Errorf("register: hash password: %w", err)
	}

	id, err := s.repo.Insert(ctx, email, hash, role)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return 0, err
		}
		return 0, fmt.Errorf("register: insert account: %w", err)
	}

	s.log.Info().Int64("account_id", id).Stringer("role", role).Msg("account registered")
	return id, nil
}
