package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk-dashboard/internal/service"
	apperrors "github.com/spec-kit/helpdesk-dashboard/pkg/util"
)

// SLAHandler serves per-ticket team time reports.
type SLAHandler struct {
	sla *service.SLAService
}

// NewSLAHandler constructs handler.
func NewSLAHandler(slaService *service.SLAService) *SLAHandler {
	return &SLAHandler{sla: slaService}
}

// Breakdown handles GET /api/tickets/:id/sla.
func (h *SLAHandler) Breakdown(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return apperrors.NewValidationError("ticket id required", nil)
	}

	report, err := h.sla.Breakdown(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": report})
}
