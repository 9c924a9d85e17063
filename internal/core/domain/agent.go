package domain

import (
	"errors"
	"time"
)

// Role is the closed set of account roles. Tokens carrying any other value
// are rejected at decode time.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleAgent Role = "agent"
)

// Valid reports whether r is one of the recognised roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleAgent
}

var (
	// ErrInvalidCredentials covers both unknown username and wrong password;
	// callers must not be able to tell the two apart.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAgentExists        = errors.New("agent already exists")
	ErrAgentNotFound      = errors.New("agent not found")
)

// Agent models an authenticated actor: a real-estate agent or an admin.
type Agent struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Phone        string    `json:"phone"`
	Role         Role      `json:"role"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Principal is the per-request identity derived from a verified token.
// An empty Role carries no elevated privilege.
type Principal struct {
	ID       string
	Username string
	Role     Role
}

// IsAdmin reports whether the principal holds the admin role.
func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}
