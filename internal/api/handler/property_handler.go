package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/mikelm2020/estatehub/internal/api/metrics"
	"github.com/mikelm2020/estatehub/internal/core/ports"
)

type PropertyHandler struct {
	service ports.PropertyService
}

func NewPropertyHandler(service ports.PropertyService) *PropertyHandler {
	return &PropertyHandler{service: service}
}

// List returns a page of listings.
//
// @Summary      List properties
// @Tags         properties
// @Produce      json
// @Param        status    query  string  false  "Filter by listing status"
// @Param        type      query  string  false  "Filter by property type"
// @Param        agent_id  query  string  false  "Filter by owning agent"
// @Param        page      query  int     false  "Page (1-based)"
// @Param        limit     query  int     false  "Page size (max 100)"
// @Success      200  {object}  listPropertiesResponse
// @Router       /properties [get]
func (h *PropertyHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	result, err := h.service.ListProperties(c.Request().Context(), ports.ListPropertiesFilter{
		AgentID: c.QueryParam("agent_id"),
		Status:  c.QueryParam("status"),
		Type:    c.QueryParam("type"),
		Page:    page,
		Limit:   limit,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, listPropertiesResponse{
		Items:      result.Items,
		Total:      result.Total,
		Page:       result.Page,
		Limit:      result.Limit,
		TotalPages: result.TotalPages,
	})
}

// Get returns a single listing.
//
// @Summary      Get a property
// @Tags         properties
// @Produce      json
// @Param        id   path      string  true  "Property id"
// @Success      200  {object}  domain.Property
// @Failure      404  {object}  map[string]string
// @Router       /properties/{id} [get]
func (h *PropertyHandler) Get(c echo.Context) error {
	p, err := h.service.GetProperty(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

// Create registers a new listing owned by the calling agent.
//
// @Summary      Create a property
// @Tags         properties
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      propertyRequest  true  "Listing details"
// @Success      201   {object}  domain.Property
// @Failure      401   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /properties [post]
func (h *PropertyHandler) Create(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req propertyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	p, err := h.service.CreateProperty(c.Request().Context(), principal, req.toInput())
	if err != nil {
		return err
	}

	metrics.PropertiesCreatedTotal.WithLabelValues(req.Type).Inc()
	return c.JSON(http.StatusCreated, p)
}

// Update replaces the writable fields of a listing the caller owns.
// Non-owners receive a 404, indistinguishable from a missing listing.
//
// @Summary      Update a property
// @Tags         properties
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string           true  "Property id"
// @Param        body  body      propertyRequest  true  "Listing details"
// @Success      200   {object}  domain.Property
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /properties/{id} [put]
func (h *PropertyHandler) Update(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req propertyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	p, err := h.service.UpdateProperty(c.Request().Context(), principal, c.Param("id"), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

// Delete removes a listing the caller owns, with the same 404 policy as
// Update.
//
// @Summary      Delete a property
// @Tags         properties
// @Security     BearerAuth
// @Param        id  path  string  true  "Property id"
// @Success      204
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /properties/{id} [delete]
func (h *PropertyHandler) Delete(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteProperty(c.Request().Context(), principal, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// AdminDelete removes any listing. The route is guarded by the admin role
// gate in the router.
//
// @Summary      Delete any property (admin)
// @Tags         admin
// @Security     BearerAuth
// @Param        id  path  string  true  "Property id"
// @Success      204
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /admin/property/{id} [delete]
func (h *PropertyHandler) AdminDelete(c echo.Context) error {
	if err := h.service.AdminDeleteProperty(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
