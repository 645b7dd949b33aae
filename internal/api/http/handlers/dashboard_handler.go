package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk-dashboard/internal/auth"
	"github.com/spec-kit/helpdesk-dashboard/internal/service"
	apperrors "github.com/spec-kit/helpdesk-dashboard/pkg/util"
)

// DashboardHandler serves the aggregated ticket snapshot.
type DashboardHandler struct {
	dashboard *service.DashboardService
}

// NewDashboardHandler constructs handler.
func NewDashboardHandler(dashboard *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

// Tickets handles GET /api/tickets. The team comes from the authenticated
// account; an optional owner query narrows the view to one assignee.
func (h *DashboardHandler) Tickets(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("not authenticated")
	}
	if principal.User.Team == "" {
		return apperrors.NewValidationError("account has no team assigned", nil)
	}

	owner := c.Query("owner")
	snapshot := h.dashboard.Snapshot(c.UserContext(), principal.User.Team, owner)
	return c.JSON(snapshot)
}
