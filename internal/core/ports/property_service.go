package ports

import (
	"context"

	"github.com/mikelm2020/estatehub/internal/core/domain"
)

// PropertyInput carries all writable listing fields. On create the owning
// agent is taken from the caller's principal, never from the payload.
type PropertyInput struct {
	AddressID   string
	Type        string
	Status      string
	Price       float64
	Title       string
	Subtitle    string
	Size        float64
	Bedrooms    int
	Rooms       int
	Bathrooms   int
	Description string
	Video       string
	Map         string
}

// ListPropertiesResult is returned by ListProperties.
type ListPropertiesResult struct {
	Items      []*domain.Property
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// PropertyService defines use-case operations for listings. Mutations take
// the caller's principal so the ownership policy can be enforced.
type PropertyService interface {
	CreateProperty(ctx context.Context, principal domain.Principal, input PropertyInput) (*domain.Property, error)
	GetProperty(ctx context.Context, id string) (*domain.Property, error)
	ListProperties(ctx context.Context, filter ListPropertiesFilter) (*ListPropertiesResult, error)
	UpdateProperty(ctx context.Context, principal domain.Principal, id string, input PropertyInput) (*domain.Property, error)
	DeleteProperty(ctx context.Context, principal domain.Principal, id string) error
	// AdminDeleteProperty removes any listing regardless of owner. The role
	// gate lives in the HTTP layer.
	AdminDeleteProperty(ctx context.Context, id string) error
}
