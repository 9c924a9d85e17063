package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mikelm2020/estatehub/internal/core/domain"
	"github.com/mikelm2020/estatehub/internal/core/ports"
)

// DedupChecker abstracts the idempotency store (Redis) for interaction events.
type DedupChecker interface {
	IsDuplicate(ctx context.Context, propertyID, interactionType string, ts time.Time) (bool, error)
	Mark(ctx context.Context, propertyID, interactionType string, ts time.Time) error
}

type interactionService struct {
	properties   ports.PropertyRepository
	interactions ports.InteractionRepository
	dedup        DedupChecker
	log          zerolog.Logger
}

// NewInteractionService returns an InteractionService implementation.
func NewInteractionService(
	properties ports.PropertyRepository,
	interactions ports.InteractionRepository,
	dedup DedupChecker,
	log zerolog.Logger,
) ports.InteractionService {
	return &interactionService{
		properties:   properties,
		interactions: interactions,
		dedup:        dedup,
		log:          log,
	}
}

// Process deduplicates and persists a single interaction event.
func (s *interactionService) Process(ctx context.Context, in ports.InteractionInput) error {
	isDup, err := s.dedup.IsDuplicate(ctx, in.PropertyID, in.Type, in.Timestamp)
	if err != nil {
		s.log.Warn().Err(err).Str("property_id", in.PropertyID).Msg("dedup check failed, processing anyway")
	} else if isDup {
		s.log.Debug().Str("property_id", in.PropertyID).Str("type", in.Type).Msg("duplicate interaction skipped")
		return nil
	}

	// The listing must exist; events for unknown listings are dropped loudly.
	if _, err := s.properties.FindByID(ctx, in.PropertyID); err != nil {
		return fmt.Errorf("process interaction: %w", err)
	}

	if markErr := s.dedup.Mark(ctx, in.PropertyID, in.Type, in.Timestamp); markErr != nil {
		s.log.Warn().Err(markErr).Str("property_id", in.PropertyID).Msg("failed to set dedup key")
	}

	event := &domain.InteractionEvent{
		ID:         uuid.NewString(),
		PropertyID: in.PropertyID,
		Type:       domain.InteractionType(in.Type),
		Stage:      domain.InteractionStage(in.Stage),
		Timestamp:  in.Timestamp,
		Source:     in.Source,
		Notes:      in.Notes,
	}
	if err := s.interactions.Insert(ctx, event); err != nil {
		return fmt.Errorf("process interaction: insert: %w", err)
	}

	s.log.Info().
		Str("property_id", in.PropertyID).
		Str("type", in.Type).
		Str("source", in.Source).
		Msg("interaction processed")

	return nil
}

func (s *interactionService) ListByProperty(ctx context.Context, propertyID string) ([]*domain.InteractionEvent, error) {
	return s.interactions.FindByProperty(ctx, propertyID)
}
