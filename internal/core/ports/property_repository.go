package ports

import (
	"context"

	"github.com/mikelm2020/estatehub/internal/core/domain"
)

// ListPropertiesFilter carries the query parameters for listing properties.
type ListPropertiesFilter struct {
	AgentID string // empty = all agents
	Status  string // optional: filter by listing status
	Type    string // optional: filter by property type
	Page    int    // 1-based
	Limit   int    // max rows per page (capped at 100 by the service)
}

// PropertyRepository defines persistence operations for listings.
type PropertyRepository interface {
	Create(ctx context.Context, p *domain.Property) error
	FindByID(ctx context.Context, id string) (*domain.Property, error)
	// List returns a page of listings matching filter and the total count.
	List(ctx context.Context, filter ListPropertiesFilter) ([]*domain.Property, int64, error)
	Update(ctx context.Context, p *domain.Property) error
	Delete(ctx context.Context, id string) error
}
