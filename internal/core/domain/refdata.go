package domain

import (
	"errors"
	"time"
)

var (
	ErrStateNotFound   = errors.New("state not found")
	ErrCityNotFound    = errors.New("city not found")
	ErrAddressNotFound = errors.New("address not found")
)

// State is a top-level geographic division.
type State struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	State     string    `json:"state" bson:"state"`
	IsActive  bool      `json:"is_active" bson:"is_active"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// City belongs to a State.
type City struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	City      string    `json:"city" bson:"city"`
	StateID   string    `json:"state_id" bson:"state_id"`
	IsActive  bool      `json:"is_active" bson:"is_active"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// Address is a street address within a state and city, referenced by listings.
type Address struct {
	ID      string `json:"id" bson:"_id,omitempty"`
	StateID string `json:"state_id" bson:"state_id"`
	CityID  string `json:"city_id" bson:"city_id"`
	Address string `json:"address" bson:"address"`
}
