package handler

import "github.com/mikelm2020/estatehub/internal/core/ports"

// propertyRequest is the payload for creating or replacing a listing.
// The owning agent is never taken from the payload.
type propertyRequest struct {
	AddressID   string  `json:"address_id" validate:"required"`
	Type        string  `json:"type" validate:"required,oneof=house apartment land local commercial other"`
	Status      string  `json:"status" validate:"required,oneof=sold rented 'for sale' 'for rent'"`
	Price       float64 `json:"price" validate:"gte=0"`
	Title       string  `json:"title" validate:"required,min=1,max=100"`
	Subtitle    string  `json:"subtitle" validate:"required,min=1,max=100"`
	Size        float64 `json:"size" validate:"gte=0"`
	Bedrooms    int     `json:"bedrooms" validate:"gte=0"`
	Rooms       int     `json:"rooms" validate:"gte=0"`
	Bathrooms   int     `json:"bathrooms" validate:"gte=0"`
	Description string  `json:"description" validate:"required,min=1"`
	Video       string  `json:"video"`
	Map         string  `json:"map"`
}

func (r propertyRequest) toInput() ports.PropertyInput {
	return ports.PropertyInput{
		AddressID:   r.AddressID,
		Type:        r.Type,
		Status:      r.Status,
		Price:       r.Price,
		Title:       r.Title,
		Subtitle:    r.Subtitle,
		Size:        r.Size,
		Bedrooms:    r.Bedrooms,
		Rooms:       r.Rooms,
		Bathrooms:   r.Bathrooms,
		Description: r.Description,
		Video:       r.Video,
		Map:         r.Map,
	}
}

// listPropertiesResponse is the paginated list envelope.
type listPropertiesResponse struct {
	Items      any   `json:"items"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}
