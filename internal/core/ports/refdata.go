package ports

import (
	"context"

	"github.com/mikelm2020/estatehub/internal/core/domain"
)

// StateRepository defines persistence operations for states.
type StateRepository interface {
	Create(ctx context.Context, s *domain.State) error
	FindByID(ctx context.Context, id string) (*domain.State, error)
	FindAll(ctx context.Context) ([]*domain.State, error)
	Update(ctx context.Context, s *domain.State) error
	Delete(ctx context.Context, id string) error
}

// CityRepository defines persistence operations for cities.
type CityRepository interface {
	Create(ctx context.Context, c *domain.City) error
	FindByID(ctx context.Context, id string) (*domain.City, error)
	FindAll(ctx context.Context) ([]*domain.City, error)
	Update(ctx context.Context, c *domain.City) error
	Delete(ctx context.Context, id string) error
}

// AddressRepository defines persistence operations for addresses.
type AddressRepository interface {
	Create(ctx context.Context, a *domain.Address) error
	FindByID(ctx context.Context, id string) (*domain.Address, error)
	FindAll(ctx context.Context) ([]*domain.Address, error)
	Update(ctx context.Context, a *domain.Address) error
	Delete(ctx context.Context, id string) error
}

// RefDataService exposes reference-data CRUD to the HTTP layer. List reads
// are served through a cache; every mutation invalidates it.
type RefDataService interface {
	ListStates(ctx context.Context) ([]*domain.State, error)
	GetState(ctx context.Context, id string) (*domain.State, error)
	CreateState(ctx context.Context, name string) (*domain.State, error)
	UpdateState(ctx context.Context, id, name string) (*domain.State, error)
	DeleteState(ctx context.Context, id string) error

	ListCities(ctx context.Context) ([]*domain.City, error)
	GetCity(ctx context.Context, id string) (*domain.City, error)
	CreateCity(ctx context.Context, name, stateID string) (*domain.City, error)
	UpdateCity(ctx context.Context, id, name, stateID string) (*domain.City, error)
	DeleteCity(ctx context.Context, id string) error

	ListAddresses(ctx context.Context) ([]*domain.Address, error)
	GetAddress(ctx context.Context, id string) (*domain.Address, error)
	CreateAddress(ctx context.Context, stateID, cityID, address string) (*domain.Address, error)
	UpdateAddress(ctx context.Context, id, stateID, cityID, address string) (*domain.Address, error)
	DeleteAddress(ctx context.Context, id string) error
}
