package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/mikelm2020/estatehub/internal/core/domain"
	"github.com/mikelm2020/estatehub/internal/core/ports"
)

type stubInteractionRepository struct {
	events []*domain.InteractionEvent
}

func (r *stubInteractionRepository) Insert(_ context.Context, e *domain.InteractionEvent) error {
	r.events = append(r.events, e)
	return nil
}

func (r *stubInteractionRepository) FindByProperty(_ context.Context, propertyID string) ([]*domain.InteractionEvent, error) {
	var out []*domain.InteractionEvent
	for _, e := range r.events {
		if e.PropertyID == propertyID {
			out = append(out, e)
		}
	}
	return out, nil
}

type stubDedup struct {
	seen    map[string]bool
	failing bool
}

func newStubDedup() *stubDedup {
	return &stubDedup{seen: make(map[string]bool)}
}

func (d *stubDedup) key(propertyID, interactionType string, ts time.Time) string {
	return propertyID + "|" + interactionType + "|" + ts.UTC().Format(time.RFC3339)
}

func (d *stubDedup) IsDuplicate(_ context.Context, propertyID, interactionType string, ts time.Time) (bool, error) {
	if d.failing {
		return false, errors.New("dedup store unavailable")
	}
	return d.seen[d.key(propertyID, interactionType, ts)], nil
}

func (d *stubDedup) Mark(_ context.Context, propertyID, interactionType string, ts time.Time) error {
	if d.failing {
		return errors.New("dedup store unavailable")
	}
	d.seen[d.key(propertyID, interactionType, ts)] = true
	return nil
}

func visitEvent(propertyID string, ts time.Time) ports.InteractionInput {
	return ports.InteractionInput{
		PropertyID: propertyID,
		Type:       "visit",
		Stage:      "completed",
		Timestamp:  ts,
		Source:     "web",
	}
}

func TestInteractionService_Process(t *testing.T) {
	properties := newStubPropertyRepository()
	properties.properties["prop-1"] = &domain.Property{ID: "prop-1", AgentID: "agent-1"}
	interactions := &stubInteractionRepository{}
	svc := NewInteractionService(properties, interactions, newStubDedup(), zerolog.Nop())

	ts := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	if err := svc.Process(context.Background(), visitEvent("prop-1", ts)); err != nil {
		t.Fatalf("Process returned error: %v", err)
	}

	events, err := svc.ListByProperty(context.Background(), "prop-1")
	if err != nil {
		t.Fatalf("ListByProperty returned error: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected one event, got %d", len(events))
	}
	e := events[0]
	if e.ID == "" || e.Type != domain.InteractionVisit || e.Stage != domain.StageCompleted {
		t.Fatalf("unexpected event: %+v", e)
	}
}

func TestInteractionService_DuplicateSkipped(t *testing.T) {
	properties := newStubPropertyRepository()
	properties.properties["prop-1"] = &domain.Property{ID: "prop-1"}
	interactions := &stubInteractionRepository{}
	svc := NewInteractionService(properties, interactions, newStubDedup(), zerolog.Nop())

	ts := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	event := visitEvent("prop-1", ts)

	if err := svc.Process(context.Background(), event); err != nil {
		t.Fatalf("first Process returned error: %v", err)
	}
	if err := svc.Process(context.Background(), event); err != nil {
		t.Fatalf("duplicate Process must succeed silently: %v", err)
	}
	if len(interactions.events) != 1 {
		t.Fatalf("duplicate must not be persisted, got %d events", len(interactions.events))
	}
}

func TestInteractionService_UnknownListing(t *testing.T) {
	svc := NewInteractionService(newStubPropertyRepository(), &stubInteractionRepository{}, newStubDedup(), zerolog.Nop())

	err := svc.Process(context.Background(), visitEvent("no-such-property", time.Now()))
	if !errors.Is(err, domain.ErrPropertyNotFound) {
		t.Fatalf("expected ErrPropertyNotFound, got %v", err)
	}
}

func TestInteractionService_DedupFailureProcessesAnyway(t *testing.T) {
	properties := newStubPropertyRepository()
	properties.properties["prop-1"] = &domain.Property{ID: "prop-1"}
	interactions := &stubInteractionRepository{}
	dedup := newStubDedup()
	dedup.failing = true
	svc := NewInteractionService(properties, interactions, dedup, zerolog.Nop())

	if err := svc.Process(context.Background(), visitEvent("prop-1", time.Now())); err != nil {
		t.Fatalf("a broken dedup store must not block processing: %v", err)
	}
	if len(interactions.events) != 1 {
		t.Fatalf("expected the event to be persisted, got %d", len(interactions.events))
	}
}
