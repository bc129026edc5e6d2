package models

import "github.com/golang-jwt/jwt/v5"

// Member roles carried in token claims. Members are managed by an
// external identity service; this API only reads the role.
const (
	RoleMember  = "member"
	RoleManager = "manager"
)

// CustomClaims represents the custom claims in our JWT tokens
type CustomClaims struct {
	jwt.RegisteredClaims
	UserID    string `json:"user_id"`
	Role      string `json:"role,omitempty"`
	TokenType string `json:"token_type"`
}
