package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mikelm2020/estatehub/internal/api/metrics"
	"github.com/mikelm2020/estatehub/internal/core/ports"
)

// InteractionDispatcher is the interface the handler uses to enqueue
// interaction events for async processing.
type InteractionDispatcher interface {
	Enqueue(event ports.InteractionInput)
	EnqueueBatch(events []ports.InteractionInput)
}

// InteractionHandler handles interaction-event ingestion and listing.
type InteractionHandler struct {
	dispatcher InteractionDispatcher
	service    ports.InteractionService
}

func NewInteractionHandler(dispatcher InteractionDispatcher, service ports.InteractionService) *InteractionHandler {
	return &InteractionHandler{dispatcher: dispatcher, service: service}
}

type interactionRequest struct {
	Type      string    `json:"type" validate:"required,oneof=inquiry contact request call email visit meeting other"`
	Stage     string    `json:"stage" validate:"required,oneof=started completed canceled pending 'follow up'"`
	Timestamp time.Time `json:"timestamp" validate:"required"`
	Source    string    `json:"source" validate:"required"`
	Notes     string    `json:"notes"`
}

type acceptedResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count,omitempty"`
}

// Receive handles POST /properties/:id/interactions — enqueues one event.
//
// @Summary      Record a prospect interaction
// @Tags         interactions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Property id"
// @Param        body  body      interactionRequest  true  "Interaction event"
// @Success      202   {object}  acceptedResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /properties/{id}/interactions [post]
func (h *InteractionHandler) Receive(c echo.Context) error {
	var req interactionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	h.dispatcher.Enqueue(toInteractionInput(c.Param("id"), req))
	metrics.InteractionsAcceptedTotal.WithLabelValues(req.Type).Inc()
	return c.JSON(http.StatusAccepted, acceptedResponse{Message: "interaction accepted"})
}

// ReceiveBatch handles POST /properties/:id/interactions/batch.
//
// @Summary      Record a batch of prospect interactions
// @Tags         interactions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Property id"
// @Param        body  body      []interactionRequest  true  "Interaction events"
// @Success      202   {object}  acceptedResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /properties/{id}/interactions/batch [post]
func (h *InteractionHandler) ReceiveBatch(c echo.Context) error {
	var reqs []interactionRequest
	if err := c.Bind(&reqs); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if len(reqs) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "batch cannot be empty")
	}

	propertyID := c.Param("id")
	inputs := make([]ports.InteractionInput, 0, len(reqs))
	for i, req := range reqs {
		if err := c.Validate(&req); err != nil {
			return echo.NewHTTPError(http.StatusUnprocessableEntity,
				fmt.Sprintf("interaction[%d]: %s", i, err.Error()))
		}
		metrics.InteractionsAcceptedTotal.WithLabelValues(req.Type).Inc()
		inputs = append(inputs, toInteractionInput(propertyID, req))
	}

	h.dispatcher.EnqueueBatch(inputs)
	return c.JSON(http.StatusAccepted, acceptedResponse{
		Message: "interactions accepted",
		Count:   len(inputs),
	})
}

// List handles GET /properties/:id/interactions.
//
// @Summary      List interactions for a property
// @Tags         interactions
// @Produce      json
// @Security     BearerAuth
// @Param        id   path     string  true  "Property id"
// @Success      200  {array}  domain.InteractionEvent
// @Failure      401  {object}  map[string]string
// @Router       /properties/{id}/interactions [get]
func (h *InteractionHandler) List(c echo.Context) error {
	events, err := h.service.ListByProperty(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, events)
}

// toInteractionInput maps the HTTP request to the service DTO.
func toInteractionInput(propertyID string, r interactionRequest) ports.InteractionInput {
	return ports.InteractionInput{
		PropertyID: propertyID,
		Type:       r.Type,
		Stage:      r.Stage,
		Timestamp:  r.Timestamp,
		Source:     r.Source,
		Notes:      r.Notes,
	}
}
