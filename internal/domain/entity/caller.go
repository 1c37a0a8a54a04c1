package entity

import "github.com/google/uuid"

// CallerRole represents the role of an authenticated caller.
type CallerRole string

const (
	// RoleAdmin may act on every activity, client and order.
	RoleAdmin CallerRole = "admin"
	// RoleActivityAdmin may manage expenses and financials for a
	// restricted set of activities.
	RoleActivityAdmin CallerRole = "activity_admin"
	// RoleClient may place and read orders for their own client record only.
	RoleClient CallerRole = "client"
)

// Caller is the identity and permission set resolved by the auth layer.
// Role checks in the use cases operate on this value exclusively.
type Caller struct {
	Role               CallerRole
	ClientID           *uuid.UUID
	AllowedActivityIDs []uuid.UUID
}

// IsAdmin reports whether the caller has the global admin role.
func (c Caller) IsAdmin() bool {
	return c.Role == RoleAdmin
}

// CanManageActivity reports whether the caller may manage the given
// activity: admins always, activity-scoped admins only when the activity
// is in their allowed set.
func (c Caller) CanManageActivity(activityID uuid.UUID) bool {
	if c.Role == RoleAdmin {
		return true
	}
	if c.Role != RoleActivityAdmin {
		return false
	}
	for _, id := range c.AllowedActivityIDs {
		if id == activityID {
			return true
		}
	}
	return false
}

// IsClient reports whether the caller is the client identified by clientID.
func (c Caller) IsClient(clientID uuid.UUID) bool {
	return c.Role == RoleClient && c.ClientID != nil && *c.ClientID == clientID
}

// IsValidCallerRole validates a caller role value.
func IsValidCallerRole(role CallerRole) bool {
	switch role {
	case RoleAdmin, RoleActivityAdmin, RoleClient:
		return true
	}
	return false
}
