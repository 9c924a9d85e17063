package domain

import "errors"

// PropertyType classifies a listing.
type PropertyType string

const (
	TypeHouse      PropertyType = "house"
	TypeApartment  PropertyType = "apartment"
	TypeLand       PropertyType = "land"
	TypeLocal      PropertyType = "local"
	TypeCommercial PropertyType = "commercial"
	TypeOther      PropertyType = "other"
)

// PropertyStatus is the commercial state of a listing.
type PropertyStatus string

const (
	StatusSold    PropertyStatus = "sold"
	StatusRented  PropertyStatus = "rented"
	StatusForSale PropertyStatus = "for sale"
	StatusForRent PropertyStatus = "for rent"
)

// ErrPropertyNotFound is returned both when a listing does not exist and
// when the caller does not own it. The two cases are intentionally
// indistinguishable so non-owners cannot probe for listing existence.
var ErrPropertyNotFound = errors.New("property not found")

// Property is the listing aggregate root.
type Property struct {
	ID          string         `json:"id" bson:"_id,omitempty"`
	AddressID   string         `json:"address_id" bson:"address_id"`
	AgentID     string         `json:"agent_id" bson:"agent_id"`
	Type        PropertyType   `json:"type" bson:"type"`
	Status      PropertyStatus `json:"status" bson:"status"`
	Price       float64        `json:"price" bson:"price"`
	Title       string         `json:"title" bson:"title"`
	Subtitle    string         `json:"subtitle" bson:"subtitle"`
	Size        float64        `json:"size" bson:"size"`
	Bedrooms    int            `json:"bedrooms" bson:"bedrooms"`
	Rooms       int            `json:"rooms" bson:"rooms"`
	Bathrooms   int            `json:"bathrooms" bson:"bathrooms"`
	Description string         `json:"description" bson:"description"`
	Video       string         `json:"video,omitempty" bson:"video,omitempty"`
	Map         string         `json:"map,omitempty" bson:"map,omitempty"`
}
