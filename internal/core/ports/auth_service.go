package ports

import (
	"context"

	"github.com/mikelm2020/estatehub/internal/core/domain"
)

// RegisterAgentInput carries the fields of the registration flow.
type RegisterAgentInput struct {
	Name     string
	Email    string
	Username string
	Password string
	Phone    string
	Role     string
}

// LoginResult is the login endpoint contract: an opaque access token plus
// the bearer discriminator.
type LoginResult struct {
	AccessToken string
	TokenType   string
}

// AuthService covers registration, credential verification, token issuance,
// and password rotation.
type AuthService interface {
	Register(ctx context.Context, input RegisterAgentInput) (*domain.Agent, error)
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	CurrentAgent(ctx context.Context, principal domain.Principal) (*domain.Agent, error)
	ChangePassword(ctx context.Context, principal domain.Principal, current, updated string) error
}
