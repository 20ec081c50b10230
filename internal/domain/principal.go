package domain

import (
	"strings"
	"time"
)

// Role classifies a user for authorization decisions. Comparisons against the
// role values live in the access service; everything else treats Role as
// opaque.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleStandard Role = "standard"
)

// ParseRole normalizes a role string. Unknown or empty values default to
// standard.
func ParseRole(s string) Role {
	if strings.EqualFold(strings.TrimSpace(s), string(RoleAdmin)) {
		return RoleAdmin
	}
	return RoleStandard
}

// Principal is the authenticated identity for a single request. It is built
// by the auth middleware from a verified token and passed explicitly into
// every service call.
type Principal struct {
	UserID int64
	Email  string
	Role   Role
}

// User is a stored account. PasswordHash never leaves the repository layer
// except for credential verification.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}

// Principal converts a stored user into a request identity.
func (u *User) Principal() Principal {
	return Principal{UserID: u.ID, Email: u.Email, Role: u.Role}
}

// CreateUserRequest holds parameters for registering a new user.
type CreateUserRequest struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// Validate checks that the request is well-formed.
func (r *CreateUserRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return ErrValidation("name is required")
	}
	if strings.TrimSpace(r.Email) == "" {
		return ErrValidation("email is required")
	}
	if !strings.Contains(r.Email, "@") {
		return ErrValidation("email %q is not valid", r.Email)
	}
	if len(r.Password) < 8 {
		return ErrValidation("password must be at least 8 characters")
	}
	return nil
}
