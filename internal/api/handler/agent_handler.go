package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mikelm2020/estatehub/internal/core/ports"
)

type AgentHandler struct {
	authService ports.AuthService
}

func NewAgentHandler(authService ports.AuthService) *AgentHandler {
	return &AgentHandler{authService: authService}
}

type changePasswordRequest struct {
	Password    string `json:"password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

// Me returns the account record of the calling agent.
//
// @Summary      Current agent
// @Tags         agents
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.Agent
// @Failure      401  {object}  map[string]string
// @Router       /agents [get]
func (h *AgentHandler) Me(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	agent, err := h.authService.CurrentAgent(c.Request().Context(), principal)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, agent)
}

// ChangePassword rotates the calling agent's password after verifying the
// current one. A wrong current password is a 401, same as a failed login.
//
// @Summary      Change password
// @Tags         agents
// @Accept       json
// @Security     BearerAuth
// @Param        body  body  changePasswordRequest  true  "Current and new password"
// @Success      204
// @Failure      401  {object}  map[string]string
// @Failure      422  {object}  map[string]string
// @Router       /agents/password [put]
func (h *AgentHandler) ChangePassword(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	if err := h.authService.ChangePassword(c.Request().Context(), principal, req.Password, req.NewPassword); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
