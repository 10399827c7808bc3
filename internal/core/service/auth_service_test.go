package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/arcadia/zoo-api/internal/core/domain"
)

type stubAccountRepo struct {
	accounts  map[string]*domain.Account
	nextID    int64
	findErr   error
	insertErr error
	inserts   int
}

func newStubAccountRepo() *stubAccountRepo {
	return &stubAccountRepo{accounts: make(map[string]*domain.Account), nextID: 1}
}

func (r *stubAccountRepo) FindByEmail(_ context.Context, email string) (*domain.Account, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	a, ok := r.accounts[email]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	clone := *a
	return &clone, nil
}

func (r *stubAccountRepo) Insert(_ context.Context, email, passwordHash string, role domain.Role) (int64, error) {
	r.inserts++
	if r.insertErr != nil {
		return 0, r.insertErr
	}
	if _, exists := r.accounts[email]; exists {
		return 0, domain.ErrDuplicateEmail
	}
	id := r.nextID
	r.nextID++
	r.accounts[email] = &domain.Account{ID: id, Email: email, PasswordHash: passwordHash, Role: role}
	return id, nil
}

// seed stores an account directly, bypassing Register's role restriction.
func (r *stubAccountRepo) seed(t *testing.T, email, password string, role domain.Role) int64 {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	id, err := r.Insert(context.Background(), email, string(hash), role)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	return id
}

type failingHasher struct{}

func (failingHasher) Hash(string) (string, error) { return "", errors.New("out of memory") }
func (failingHasher) Verify(string, string) bool  { return false }

func newTestAuthService(t *testing.T, repo *stubAccountRepo) (*AuthService, *TokenService) {
	t.Helper()
	tokens, err := NewTokenService("secret", time.Hour)
	if err != nil {
		t.Fatalf("token service: %v", err)
	}
	return NewAuthService(repo, NewBcryptHasher(bcrypt.MinCost), tokens, zerolog.Nop()), tokens
}

func TestAuthService_RegisterThenLogin(t *testing.T) {
	repo := newStubAccountRepo()
	svc, tokens := newTestAuthService(t, repo)

	id, err := svc.Register(context.Background(), "vet@zoo.test", "s3cret", int(domain.RoleVeterinarian))
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	stored := repo.accounts["vet@zoo.test"]
	if stored.PasswordHash == "s3cret" {
		t.Fatalf("expected password to be hashed")
	}

	token, err := svc.Login(context.Background(), "vet@zoo.test", "s3cret")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}

	identity, err := tokens.Verify(token)
	if err != nil {
		t.Fatalf("token does not verify: %v", err)
	}
	if identity.AccountID != id || identity.Role != domain.RoleVeterinarian {
		t.Fatalf("unexpected identity: %+v", identity)
	}
}

func TestAuthService_Register_RejectsRoles(t *testing.T) {
	repo := newStubAccountRepo()
	svc, _ := newTestAuthService(t, repo)

	for _, roleID := range []int{int(domain.RoleAdministrator), 0, 4, 99} {
		_, err := svc.Register(context.Background(), "x@zoo.test", "pass", roleID)
		if !errors.Is(err, domain.ErrInvalidRole) {
			t.Fatalf("role %d: expected ErrInvalidRole, got %v", roleID, err)
		}
	}
	if repo.inserts != 0 {
		t.Fatalf("no account should have been inserted, got %d inserts", repo.inserts)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	repo := newStubAccountRepo()
	svc, _ := newTestAuthService(t, repo)

	if _, err := svc.Register(context.Background(), "emp@zoo.test", "pass", int(domain.RoleEmployee)); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	_, err := svc.Register(context.Background(), "emp@zoo.test", "other", int(domain.RoleEmployee))
	if !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
	if repo.inserts != 1 {
		t.Fatalf("expected a single insert, got %d", repo.inserts)
	}
}

func TestAuthService_Register_StoreRaceMapsToDuplicate(t *testing.T) {
	repo := newStubAccountRepo()
	repo.insertErr = domain.ErrDuplicateEmail
	svc, _ := newTestAuthService(t, repo)

	_, err := svc.Register(context.Background(), "race@zoo.test", "pass", int(domain.RoleEmployee))
	if !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestAuthService_Register_HashFailure(t *testing.T) {
	repo := newStubAccountRepo()
	tokens, _ := NewTokenService("secret", time.Hour)
	svc := NewAuthService(repo, failingHasher{}, tokens, zerolog.Nop())

	_, err := svc.Register(context.Background(), "emp@zoo.test", "pass", int(domain.RoleEmployee))
	if err == nil {
		t.Fatalf("expected error")
	}
	if errors.Is(err, domain.ErrInvalidRole) || errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("hash failure must not look like a client error: %v", err)
	}
	if repo.inserts != 0 {
		t.Fatalf("nothing should be inserted on hash failure")
	}
}

func TestAuthService_Login_SameErrorForUnknownEmailAndWrongPassword(t *testing.T) {
	repo := newStubAccountRepo()
	repo.seed(t, "a@z.com", "right", domain.RoleAdministrator)
	svc, _ := newTestAuthService(t, repo)

	_, wrongPassword := svc.Login(context.Background(), "a@z.com", "wrong")
	_, unknownEmail := svc.Login(context.Background(), "ghost@z.com", "wrong")

	if wrongPassword != domain.ErrInvalidCredentials {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", wrongPassword)
	}
	if unknownEmail != domain.ErrInvalidCredentials {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", unknownEmail)
	}
}

func TestAuthService_Login_StoreFailure(t *testing.T) {
	repo := newStubAccountRepo()
	repo.findErr = errors.New("connection refused")
	svc, _ := newTestAuthService(t, repo)

	_, err := svc.Login(context.Background(), "a@z.com", "pass")
	if err == nil || errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected an internal error, got %v", err)
	}
}
