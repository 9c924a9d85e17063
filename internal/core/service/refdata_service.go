package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mikelm2020/estatehub/internal/core/domain"
	"github.com/mikelm2020/estatehub/internal/core/ports"
)

// Cache keys for reference-data list reads.
const (
	cacheKeyStates    = "refdata:states"
	cacheKeyCities    = "refdata:cities"
	cacheKeyAddresses = "refdata:addresses"
)

// RefDataCache abstracts the read-through cache (Redis). A Get miss returns
// found=false with no error; cache failures must never fail a read.
type RefDataCache interface {
	Get(ctx context.Context, key string, v any) (bool, error)
	Set(ctx context.Context, key string, v any) error
	Invalidate(ctx context.Context, keys ...string) error
}

// RefDataService implements CRUD for states, cities, and addresses, serving
// list reads through the cache.
type RefDataService struct {
	states    ports.StateRepository
	cities    ports.CityRepository
	addresses ports.AddressRepository
	cache     RefDataCache
	log       zerolog.Logger
}

func NewRefDataService(
	states ports.StateRepository,
	cities ports.CityRepository,
	addresses ports.AddressRepository,
	cache RefDataCache,
	log zerolog.Logger,
) *RefDataService {
	return &RefDataService{states: states, cities: cities, addresses: addresses, cache: cache, log: log}
}

// ── States ──

func (s *RefDataService) ListStates(ctx context.Context) ([]*domain.State, error) {
	var cached []*domain.State
	if found, err := s.cache.Get(ctx, cacheKeyStates, &cached); err != nil {
		s.log.Warn().Err(err).Msg("state cache read failed, falling back to store")
	} else if found {
		return cached, nil
	}

	states, err := s.states.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, cacheKeyStates, states); err != nil {
		s.log.Warn().Err(err).Msg("state cache write failed")
	}
	return states, nil
}

func (s *RefDataService) GetState(ctx context.Context, id string) (*domain.State, error) {
	return s.states.FindByID(ctx, id)
}

func (s *RefDataService) CreateState(ctx context.Context, name string) (*domain.State, error) {
	now := time.Now().UTC()
	state := &domain.State{
		ID:        uuid.NewString(),
		State:     name,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.states.Create(ctx, state); err != nil {
		return nil, err
	}
	s.invalidate(ctx, cacheKeyStates)
	return state, nil
}

func (s *RefDataService) UpdateState(ctx context.Context, id, name string) (*domain.State, error) {
	state, err := s.states.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	state.State = name
	state.UpdatedAt = time.Now().UTC()
	if err := s.states.Update(ctx, state); err != nil {
		return nil, err
	}
	s.invalidate(ctx, cacheKeyStates)
	return state, nil
}

func (s *RefDataService) DeleteState(ctx context.Context, id string) error {
	if _, err := s.states.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.states.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, cacheKeyStates)
	return nil
}

// ── Cities ──

func (s *RefDataService) ListCities(ctx context.Context) ([]*domain.City, error) {
	var cached []*domain.City
	if found, err := s.cache.Get(ctx, cacheKeyCities, &cached); err != nil {
		s.log.Warn().Err(err).Msg("city cache read failed, falling back to store")
	} else if found {
		return cached, nil
	}

	cities, err := s.cities.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, cacheKeyCities, cities); err != nil {
		s.log.Warn().Err(err).Msg("city cache write failed")
	}
	return cities, nil
}

func (s *RefDataService) GetCity(ctx context.Context, id string) (*domain.City, error) {
	return s.cities.FindByID(ctx, id)
}

func (s *RefDataService) CreateCity(ctx context.Context, name, stateID string) (*domain.City, error) {
	now := time.Now().UTC()
	city := &domain.City{
		ID:        uuid.NewString(),
		City:      name,
		StateID:   stateID,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.cities.Create(ctx, city); err != nil {
		return nil, err
	}
	s.invalidate(ctx, cacheKeyCities)
	return city, nil
}

func (s *RefDataService) UpdateCity(ctx context.Context, id, name, stateID string) (*domain.City, error) {
	city, err := s.cities.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	city.City = name
	if stateID != "" {
		city.StateID = stateID
	}
	city.UpdatedAt = time.Now().UTC()
	if err := s.cities.Update(ctx, city); err != nil {
		return nil, err
	}
	s.invalidate(ctx, cacheKeyCities)
	return city, nil
}

func (s *RefDataService) DeleteCity(ctx context.Context, id string) error {
	if _, err := s.cities.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.cities.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, cacheKeyCities)
	return nil
}

// ── Addresses ──

func (s *RefDataService) ListAddresses(ctx context.Context) ([]*domain.Address, error) {
	var cached []*domain.Address
	if found, err := s.cache.Get(ctx, cacheKeyAddresses, &cached); err != nil {
		s.log.Warn().Err(err).Msg("address cache read failed, falling back to store")
	} else if found {
		return cached, nil
	}

	addresses, err := s.addresses.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, cacheKeyAddresses, addresses); err != nil {
		s.log.Warn().Err(err).Msg("address cache write failed")
	}
	return addresses, nil
}

func (s *RefDataService) GetAddress(ctx context.Context, id string) (*domain.Address, error) {
	return s.addresses.FindByID(ctx, id)
}

func (s *RefDataService) CreateAddress(ctx context.Context, stateID, cityID, address string) (*domain.Address, error) {
	a := &domain.Address{
		ID:      uuid.NewString(),
		StateID: stateID,
		CityID:  cityID,
		Address: address,
	}
	if err := s.addresses.Create(ctx, a); err != nil {
		return nil, err
	}
	s.invalidate(ctx, cacheKeyAddresses)
	return a, nil
}

func (s *RefDataService) UpdateAddress(ctx context.Context, id, stateID, cityID, address string) (*domain.Address, error) {
	a, err := s.addresses.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if stateID != "" {
		a.StateID = stateID
	}
	if cityID != "" {
		a.CityID = cityID
	}
	a.Address = address
	if err := s.addresses.Update(ctx, a); err != nil {
		return nil, err
	}
	s.invalidate(ctx, cacheKeyAddresses)
	return a, nil
}

func (s *RefDataService) DeleteAddress(ctx context.Context, id string) error {
	if _, err := s.addresses.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.addresses.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, cacheKeyAddresses)
	return nil
}

func (s *RefDataService) invalidate(ctx context.Context, key string) {
	if err := s.cache.Invalidate(ctx, key); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("cache invalidation failed")
	}
}
