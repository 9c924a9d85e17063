package ports

import (
	"context"
	"time"

	"github.com/mikelm2020/estatehub/internal/core/domain"
)

// InteractionInput is a raw interaction event as received from the HTTP layer.
type InteractionInput struct {
	PropertyID string
	Type       string
	Stage      string
	Timestamp  time.Time
	Source     string
	Notes      string
}

// InteractionRepository defines persistence operations for interaction events.
type InteractionRepository interface {
	Insert(ctx context.Context, e *domain.InteractionEvent) error
	FindByProperty(ctx context.Context, propertyID string) ([]*domain.InteractionEvent, error)
}

// InteractionService processes a single interaction event: dedup check,
// listing existence check, persistence.
type InteractionService interface {
	Process(ctx context.Context, input InteractionInput) error
	ListByProperty(ctx context.Context, propertyID string) ([]*domain.InteractionEvent, error)
}
