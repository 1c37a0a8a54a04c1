package adapter

import (
	"context"
	"time"

	"github.com/luismonroy1971/actividad-sub000/internal/domain/entity"
)

// TokenClaims represents the validated claims of an access token. The auth
// layer issuing tokens is external; this service only validates them and
// resolves the caller identity.
type TokenClaims struct {
	Caller    entity.Caller
	ExpiresAt time.Time
}

// TokenService defines the interface for access token operations.
type TokenService interface {
	// ValidateAccessToken validates an access token and returns its claims.
	ValidateAccessToken(ctx context.Context, token string) (*TokenClaims, error)

	// GenerateAccessToken issues a token for the given caller. Used by
	// operational tooling and the test suites; production tokens come from
	// the external auth service sharing the signing secret.
	GenerateAccessToken(ctx context.Context, caller entity.Caller, expiry time.Duration) (string, error)
}
