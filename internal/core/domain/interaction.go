package domain

import "time"

// InteractionType classifies how a prospect engaged with a listing.
type InteractionType string

const (
	InteractionInquiry InteractionType = "inquiry"
	InteractionContact InteractionType = "contact"
	InteractionRequest InteractionType = "request"
	InteractionCall    InteractionType = "call"
	InteractionEmail   InteractionType = "email"
	InteractionVisit   InteractionType = "visit"
	InteractionMeeting InteractionType = "meeting"
	InteractionOther   InteractionType = "other"
)

// InteractionStage tracks how far an interaction has progressed.
type InteractionStage string

const (
	StageStarted   InteractionStage = "started"
	StageCompleted InteractionStage = "completed"
	StageCanceled  InteractionStage = "canceled"
	StagePending   InteractionStage = "pending"
	StageFollowUp  InteractionStage = "follow up"
)

// InteractionEvent records a single prospect interaction with a listing.
// Events arrive asynchronously and are deduplicated before persistence.
type InteractionEvent struct {
	ID         string           `json:"id" bson:"_id,omitempty"`
	PropertyID string           `json:"property_id" bson:"property_id"`
	Type       InteractionType  `json:"type" bson:"type"`
	Stage      InteractionStage `json:"stage" bson:"stage"`
	Timestamp  time.Time        `json:"timestamp" bson:"timestamp"`
	Source     string           `json:"source" bson:"source"`
	Notes      string           `json:"notes,omitempty" bson:"notes,omitempty"`
}
