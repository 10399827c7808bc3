package service

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/arcadia/zoo-api/internal/core/domain"
)

// DefaultTokenTTL is the lifetime of an issued token. Tokens are not renewable.
const DefaultTokenTTL = time.Hour

type tokenClaims struct {
	AccountID int64       `json:"account_id"`
	Role      domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenService issues HS256 tokens carrying an account id and role.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(secret string, ttl time.Duration) (*TokenService, error) {
	if secret == "" {
		return nil, errors.New("token service: signing secret is required")
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

// WithClock returns a copy of s that reads the current time from now.
func (s *TokenService) WithClock(now func() time.Time) *TokenService {
	clone := *s
	clone.now = now
	return &clone
}

func (s *TokenService) Issue(accountID int64, role domain.Role) (string, error) {
	if !role.Valid() {
		return "", domain.ErrInvalidRole
	}

	// JWT dates have whole-second precision; truncate once so exp is exactly
	// iat plus the TTL.
	now := s.now().Truncate(time.Second)
	claims := tokenClaims{
		AccountID: accountID,
		Role:      role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   strconv.FormatInt(accountID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks signature and expiry with no leeway. It returns
// domain.ErrTokenExpired past expiry and domain.ErrTokenInvalid otherwise.
func (s *TokenService) Verify(token string) (domain.Identity, error) {
	claims := &tokenClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return domain.Identity{}, domain.ErrTokenExpired
		}
		return domain.Identity{}, fmt.Errorf("%w: %v", domain.ErrTokenInvalid, err)
	}

	if !claims.Role.Valid() {
		return domain.Identity{}, fmt.Errorf("%w: unknown role %d", domain.ErrTokenInvalid, claims.Role)
	}

	return domain.Identity{AccountID: claims.AccountID, Role: claims.Role}, nil
}
