package auth

import (
	"errors"

	"portfolio_backend/internal/models"
)

// IsAdmin reports whether the claims belong to an administrator.
func IsAdmin(claims *Claims) bool {
	return claims.Role == models.UserRoleAdmin
}

// ValidateRole checks that a role value is one this application knows.
func ValidateRole(role models.UserRole) error {
	switch role {
	case models.UserRoleAdmin, models.UserRoleUser:
		return nil
	default:
		return errors.New("invalid role")
	}
}
