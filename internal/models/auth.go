package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// JWTClaims represents the payload of identity tokens issued by the host.
type JWTClaims struct {
	UserID     string   `json:"user_id"`
	EmployeeID string   `json:"employee_id,omitempty"`
	Role       UserRole `json:"role"`
	Email      string   `json:"email"`
	FullName   string   `json:"full_name"`
	jwt.RegisteredClaims
}

// ActorID identifies the caller in logs and the case event log.
func (c *JWTClaims) ActorID() string {
	if c == nil {
		return ""
	}
	return c.UserID
}

// HasRole reports whether the claims carry any of roles.
func (c *JWTClaims) HasRole(roles ...UserRole) bool {
	if c == nil {
		return false
	}
	for _, r := range roles {
		if c.Role == r {
			return true
		}
	}
	return false
}

// IssueTokenRequest asks for a signed token for a known identity. Used by
// local tooling only; production tokens come from the identity host.
type IssueTokenRequest struct {
	UserID     string   `json:"user_id" validate:"required"`
	EmployeeID string   `json:"employee_id"`
	Role       UserRole `json:"role" validate:"required,oneof=ADMIN HR_MANAGER HR_OFFICER EXECUTIVE EMPLOYEE"`
	Email      string   `json:"email" validate:"omitempty,email"`
	FullName   string   `json:"full_name"`
}
