package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mikelm2020/estatehub/internal/core/ports"
)

// RefDataHandler serves the states/cities/addresses CRUD surface. Reads are
// public; mutations sit behind the Auth middleware.
type RefDataHandler struct {
	service ports.RefDataService
}

func NewRefDataHandler(service ports.RefDataService) *RefDataHandler {
	return &RefDataHandler{service: service}
}

type stateRequest struct {
	State string `json:"state" validate:"required,min=1"`
}

type cityRequest struct {
	City    string `json:"city" validate:"required,min=1"`
	StateID string `json:"state_id" validate:"required"`
}

type addressRequest struct {
	StateID string `json:"state_id" validate:"required"`
	CityID  string `json:"city_id" validate:"required"`
	Address string `json:"address" validate:"required,min=1"`
}

// ── States ──

// @Summary  List states
// @Tags     states
// @Produce  json
// @Success  200  {array}  domain.State
// @Router   /states [get]
func (h *RefDataHandler) ListStates(c echo.Context) error {
	states, err := h.service.ListStates(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, states)
}

// @Summary  Get a state
// @Tags     states
// @Produce  json
// @Param    id   path      string  true  "State id"
// @Success  200  {object}  domain.State
// @Failure  404  {object}  map[string]string
// @Router   /states/{id} [get]
func (h *RefDataHandler) GetState(c echo.Context) error {
	state, err := h.service.GetState(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, state)
}

// @Summary   Create a state
// @Tags      states
// @Accept    json
// @Security  BearerAuth
// @Param     body  body  stateRequest  true  "State"
// @Success   201   {object}  domain.State
// @Router    /states [post]
func (h *RefDataHandler) CreateState(c echo.Context) error {
	var req stateRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	state, err := h.service.CreateState(c.Request().Context(), req.State)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, state)
}

// @Summary   Update a state
// @Tags      states
// @Accept    json
// @Security  BearerAuth
// @Param     id    path  string        true  "State id"
// @Param     body  body  stateRequest  true  "State"
// @Success   204
// @Failure   404  {object}  map[string]string
// @Router    /states/{id} [put]
func (h *RefDataHandler) UpdateState(c echo.Context) error {
	var req stateRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if _, err := h.service.UpdateState(c.Request().Context(), c.Param("id"), req.State); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// @Summary   Delete a state
// @Tags      states
// @Security  BearerAuth
// @Param     id  path  string  true  "State id"
// @Success   204
// @Failure   404  {object}  map[string]string
// @Router    /states/{id} [delete]
func (h *RefDataHandler) DeleteState(c echo.Context) error {
	if err := h.service.DeleteState(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ── Cities ──

// @Summary  List cities
// @Tags     cities
// @Produce  json
// @Success  200  {array}  domain.City
// @Router   /cities [get]
func (h *RefDataHandler) ListCities(c echo.Context) error {
	cities, err := h.service.ListCities(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cities)
}

// @Summary  Get a city
// @Tags     cities
// @Produce  json
// @Param    id   path      string  true  "City id"
// @Success  200  {object}  domain.City
// @Failure  404  {object}  map[string]string
// @Router   /cities/{id} [get]
func (h *RefDataHandler) GetCity(c echo.Context) error {
	city, err := h.service.GetCity(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, city)
}

// @Summary   Create a city
// @Tags      cities
// @Accept    json
// @Security  BearerAuth
// @Param     body  body  cityRequest  true  "City"
// @Success   201   {object}  domain.City
// @Router    /cities [post]
func (h *RefDataHandler) CreateCity(c echo.Context) error {
	var req cityRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	city, err := h.service.CreateCity(c.Request().Context(), req.City, req.StateID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, city)
}

// @Summary   Update a city
// @Tags      cities
// @Accept    json
// @Security  BearerAuth
// @Param     id    path  string       true  "City id"
// @Param     body  body  cityRequest  true  "City"
// @Success   204
// @Failure   404  {object}  map[string]string
// @Router    /cities/{id} [put]
func (h *RefDataHandler) UpdateCity(c echo.Context) error {
	var req cityRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if _, err := h.service.UpdateCity(c.Request().Context(), c.Param("id"), req.City, req.StateID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// @Summary   Delete a city
// @Tags      cities
// @Security  BearerAuth
// @Param     id  path  string  true  "City id"
// @Success   204
// @Failure   404  {object}  map[string]string
// @Router    /cities/{id} [delete]
func (h *RefDataHandler) DeleteCity(c echo.Context) error {
	if err := h.service.DeleteCity(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ── Addresses ──

// @Summary  List addresses
// @Tags     addresses
// @Produce  json
// @Success  200  {array}  domain.Address
// @Router   /addresses [get]
func (h *RefDataHandler) ListAddresses(c echo.Context) error {
	addresses, err := h.service.ListAddresses(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, addresses)
}

// @Summary  Get an address
// @Tags     addresses
// @Produce  json
// @Param    id   path      string  true  "Address id"
// @Success  200  {object}  domain.Address
// @Failure  404  {object}  map[string]string
// @Router   /addresses/{id} [get]
func (h *RefDataHandler) GetAddress(c echo.Context) error {
	address, err := h.service.GetAddress(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, address)
}

// @Summary   Create an address
// @Tags      addresses
// @Accept    json
// @Security  BearerAuth
// @Param     body  body  addressRequest  true  "Address"
// @Success   201   {object}  domain.Address
// @Router    /addresses [post]
func (h *RefDataHandler) CreateAddress(c echo.Context) error {
	var req addressRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	address, err := h.service.CreateAddress(c.Request().Context(), req.StateID, req.CityID, req.Address)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, address)
}

// @Summary   Update an address
// @Tags      addresses
// @Accept    json
// @Security  BearerAuth
// @Param     id    path  string          true  "Address id"
// @Param     body  body  addressRequest  true  "Address"
// @Success   204
// @Failure   404  {object}  map[string]string
// @Router    /addresses/{id} [put]
func (h *RefDataHandler) UpdateAddress(c echo.Context) error {
	var req addressRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if _, err := h.service.UpdateAddress(c.Request().Context(), c.Param("id"), req.StateID, req.CityID, req.Address); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// @Summary   Delete an address
// @Tags      addresses
// @Security  BearerAuth
// @Param     id  path  string  true  "Address id"
// @Success   204
// @Failure   404  {object}  map[string]string
// @Router    /addresses/{id} [delete]
func (h *RefDataHandler) DeleteAddress(c echo.Context) error {
	if err := h.service.DeleteAddress(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// bindAndValidate decodes the JSON payload and runs struct validation.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	return nil
}
