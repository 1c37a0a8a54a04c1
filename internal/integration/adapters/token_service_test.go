package adapters

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/luismonroy1971/actividad-sub000/internal/domain/entity"
	domainerror "github.com/luismonroy1971/actividad-sub000/internal/domain/error"
)

func TestTokenService(t *testing.T) {
	ctx := context.Background()
	service := NewTokenService("test-secret")

	t.Run("round-trips caller identity through a token", func(t *testing.T) {
		clientID := uuid.New()
		activityID := uuid.New()
		caller := entity.Caller{
			Role:               entity.RoleActivityAdmin,
			ClientID:           &clientID,
			AllowedActivityIDs: []uuid.UUID{activityID},
		}

		token, err := service.GenerateAccessToken(ctx, caller, time.Hour)
		if err != nil {
			t.Fatalf("failed to generate token: %v", err)
		}

		claims, err := service.ValidateAccessToken(ctx, token)
		if err != nil {
			t.Fatalf("failed to validate token: %v", err)
		}

		if claims.Caller.Role != entity.RoleActivityAdmin {
			t.Errorf("expected role activity_admin, got %s", claims.Caller.Role)
		}
		if claims.Caller.ClientID == nil || *claims.Caller.ClientID != clientID {
			t.Error("client ID should survive the round trip")
		}
		if len(claims.Caller.AllowedActivityIDs) != 1 || claims.Caller.AllowedActivityIDs[0] != activityID {
			t.Error("allowed activity IDs should survive the round trip")
		}
		if claims.ExpiresAt.Before(time.Now().UTC()) {
			t.Error("fresh token should not be expired")
		}
	})

	t.Run("admin tokens carry no client identity", func(t *testing.T) {
		token, err := service.GenerateAccessToken(ctx, entity.Caller{Role: entity.RoleAdmin}, time.Hour)
		if err != nil {
			t.Fatalf("failed to generate token: %v", err)
		}

		claims, err := service.ValidateAccessToken(ctx, token)
		if err != nil {
			t.Fatalf("failed to validate token: %v", err)
		}
		if claims.Caller.ClientID != nil {
			t.Error("admin caller should carry no client ID")
		}
	})

	t.Run("rejects a token signed with another secret", func(t *testing.T) {
		other := NewTokenService("other-secret")
		token, err := other.GenerateAccessToken(ctx, entity.Caller{Role: entity.RoleAdmin}, time.Hour)
		if err != nil {
			t.Fatalf("failed to generate token: %v", err)
		}

		_, err = service.ValidateAccessToken(ctx, token)
		var authErr *domainerror.AuthError
		if !errors.As(err, &authErr) || authErr.Code != domainerror.ErrCodeInvalidToken {
			t.Errorf("expected invalid token error, got %v", err)
		}
	})

	t.Run("rejects an expired token", func(t *testing.T) {
		token, err := service.GenerateAccessToken(ctx, entity.Caller{Role: entity.RoleAdmin}, -time.Minute)
		if err != nil {
			t.Fatalf("failed to generate token: %v", err)
		}

		_, err = service.ValidateAccessToken(ctx, token)
		var authErr *domainerror.AuthError
		if !errors.As(err, &authErr) || authErr.Code != domainerror.ErrCodeInvalidToken {
			t.Errorf("expected invalid token error, got %v", err)
		}
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := service.ValidateAccessToken(ctx, "not-a-token")
		var authErr *domainerror.AuthError
		if !errors.As(err, &authErr) || authErr.Code != domainerror.ErrCodeInvalidToken {
			t.Errorf("expected invalid token error, got %v", err)
		}
	})

	t.Run("rejects an unknown role", func(t *testing.T) {
		token, err := service.GenerateAccessToken(ctx, entity.Caller{Role: "superuser"}, time.Hour)
		if err != nil {
			t.Fatalf("failed to generate token: %v", err)
		}

		_, err = service.ValidateAccessToken(ctx, token)
		var authErr *domainerror.AuthError
		if !errors.As(err, &authErr) || authErr.Code != domainerror.ErrCodeInvalidToken {
			t.Errorf("expected invalid token error, got %v", err)
		}
	})
}
