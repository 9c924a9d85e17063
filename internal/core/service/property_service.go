package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mikelm2020/estatehub/internal/core/domain"
	"github.com/mikelm2020/estatehub/internal/core/ports"
)

const maxPageLimit = 100

// PropertyService implements listing CRUD with the ownership policy.
type PropertyService struct {
	repo ports.PropertyRepository
	log  zerolog.Logger
}

func NewPropertyService(repo ports.PropertyRepository, log zerolog.Logger) *PropertyService {
	return &PropertyService{repo: repo, log: log}
}

// CreateProperty creates a listing owned by the calling principal.
func (s *PropertyService) CreateProperty(ctx context.Context, principal domain.Principal, input ports.PropertyInput) (*domain.Property, error) {
	p := fromInput(input)
	p.ID = uuid.NewString()
	p.AgentID = principal.ID

	if err := s.repo.Create(ctx, p); err != nil {
		s.log.Error().Err(err).Str("agent_id", principal.ID).Msg("failed to create property")
		return nil, err
	}

	s.log.Info().Str("property_id", p.ID).Str("agent_id", p.AgentID).Str("type", string(p.Type)).Msg("property created")
	return p, nil
}

func (s *PropertyService) GetProperty(ctx context.Context, id string) (*domain.Property, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *PropertyService) ListProperties(ctx context.Context, filter ports.ListPropertiesFilter) (*ports.ListPropertiesResult, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > maxPageLimit {
		filter.Limit = maxPageLimit
	}

	items, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	pages := int(total) / filter.Limit
	if int(total)%filter.Limit > 0 {
		pages++
	}

	return &ports.ListPropertiesResult{
		Items:      items,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: pages,
	}, nil
}

// UpdateProperty replaces the writable fields of a listing. Only the owning
// agent or an admin may update; everyone else sees ErrPropertyNotFound.
func (s *PropertyService) UpdateProperty(ctx context.Context, principal domain.Principal, id string, input ports.PropertyInput) (*domain.Property, error) {
	existing, err := s.ownedProperty(ctx, principal, id)
	if err != nil {
		return nil, err
	}

	p := fromInput(input)
	p.ID = existing.ID
	p.AgentID = existing.AgentID

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}

	s.log.Info().Str("property_id", p.ID).Str("agent_id", principal.ID).Msg("property updated")
	return p, nil
}

// DeleteProperty removes a listing, subject to the same ownership policy as
// UpdateProperty.
func (s *PropertyService) DeleteProperty(ctx context.Context, principal domain.Principal, id string) error {
	if _, err := s.ownedProperty(ctx, principal, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info().Str("property_id", id).Str("agent_id", principal.ID).Msg("property deleted")
	return nil
}

// AdminDeleteProperty removes any listing. Role enforcement happens at the
// HTTP layer; a missing listing is a plain not-found here.
func (s *PropertyService) AdminDeleteProperty(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info().Str("property_id", id).Msg("property deleted by admin")
	return nil
}

// ownedProperty loads a listing and checks the ownership policy. An ownership
// mismatch is reported as ErrPropertyNotFound, never as a forbidden error, so
// the response does not reveal whether the listing exists.
func (s *PropertyService) ownedProperty(ctx context.Context, principal domain.Principal, id string) (*domain.Property, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !principal.IsAdmin() && p.AgentID != principal.ID {
		s.log.Warn().Str("property_id", id).Str("agent_id", principal.ID).Msg("ownership mismatch on property mutation")
		return nil, domain.ErrPropertyNotFound
	}
	return p, nil
}

func fromInput(input ports.PropertyInput) *domain.Property {
	return &domain.Property{
		AddressID:   input.AddressID,
		Type:        domain.PropertyType(input.Type),
		Status:      domain.PropertyStatus(input.Status),
		Price:       input.Price,
		Title:       input.Title,
		Subtitle:    input.Subtitle,
		Size:        input.Size,
		Bedrooms:    input.Bedrooms,
		Rooms:       input.Rooms,
		Bathrooms:   input.Bathrooms,
		Description: input.Description,
		Video:       input.Video,
		Map:         input.Map,
	}
}
