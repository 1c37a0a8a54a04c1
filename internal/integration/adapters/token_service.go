// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/luismonroy1971/actividad-sub000/internal/application/adapter"
	"github.com/luismonroy1971/actividad-sub000/internal/domain/entity"
	domainerror "github.com/luismonroy1971/actividad-sub000/internal/domain/error"
)

const tokenIssuer = "actividad-sub000"

// CustomClaims represents the custom claims for access tokens. Tokens are
// issued by the external auth service sharing the signing secret, so the
// claim layout here is a wire contract.
type CustomClaims struct {
	Role               string   `json:"role"`
	ClientID           string   `json:"client_id,omitempty"`
	AllowedActivityIDs []string `json:"allowed_activity_ids,omitempty"`
	jwt.RegisteredClaims
}

// tokenService implements the adapter.TokenService interface.
type tokenService struct {
	secret []byte
}

// NewTokenService creates a new token service instance.
func NewTokenService(secret string) adapter.TokenService {
	return &tokenService{
		secret: []byte(secret),
	}
}

// ValidateAccessToken validates an access token and resolves the caller.
func (s *tokenService) ValidateAccessToken(ctx context.Context, token string) (*adapter.TokenClaims, error) {
	claims, err := s.parseJWT(token)
	if err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidToken,
			"invalid access token",
			err,
		)
	}

	caller := entity.Caller{Role: entity.CallerRole(claims.Role)}
	if !entity.IsValidCallerRole(caller.Role) {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidToken,
			"unknown role in token",
			domainerror.ErrInvalidToken,
		)
	}

	if claims.ClientID != "" {
		clientID, err := uuid.Parse(claims.ClientID)
		if err != nil {
			return nil, domainerror.NewAuthError(
				domainerror.ErrCodeInvalidToken,
				"invalid client ID in token",
				err,
			)
		}
		caller.ClientID = &clientID
	}

	for _, raw := range claims.AllowedActivityIDs {
		activityID, err := uuid.Parse(raw)
		if err != nil {
			return nil, domainerror.NewAuthError(
				domainerror.ErrCodeInvalidToken,
				"invalid activity ID in token",
				err,
			)
		}
		caller.AllowedActivityIDs = append(caller.AllowedActivityIDs, activityID)
	}

	return &adapter.TokenClaims{
		Caller:    caller,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// GenerateAccessToken issues a signed token for the given caller.
func (s *tokenService) GenerateAccessToken(ctx context.Context, caller entity.Caller, expiry time.Duration) (string, error) {
	now := time.Now().UTC()

	allowed := make([]string, len(caller.AllowedActivityIDs))
	for i, id := range caller.AllowedActivityIDs {
		allowed[i] = id.String()
	}

	claims := CustomClaims{
		Role:               string(caller.Role),
		AllowedActivityIDs: allowed,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
		},
	}
	if caller.ClientID != nil {
		claims.ClientID = caller.ClientID.String()
		claims.Subject = caller.ClientID.String()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// parseJWT parses and validates a JWT token.
func (s *tokenService) parseJWT(tokenString string) (*CustomClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	return claims, nil
}
