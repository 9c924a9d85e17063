package ports

import (
	"context"

	"github.com/mikelm2020/estatehub/internal/core/domain"
)

// AgentRepository defines the credential-store capability the auth core
// consumes. Username lookups are case-sensitive exact matches.
type AgentRepository interface {
	Create(ctx context.Context, agent *domain.Agent) (*domain.Agent, error)
	FindByUsername(ctx context.Context, username string) (*domain.Agent, error)
	FindByID(ctx context.Context, id string) (*domain.Agent, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) error
}
