package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/GaganNGowda/Invoice-Generator/internal/i18n"
)

// HealthHandler handles health check requests
type HealthHandler struct {
	Version string
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(version string) *HealthHandler {
	return &HealthHandler{
		Version: version,
	}
}

// Check returns the health status of the service
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "OK",
		"service": "Invoice Generator Backend",
		"version": h.Version,
	})
}

// Root is the bare liveness endpoint.
func (h *HealthHandler) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": i18n.T("backend_running", i18n.DefaultLanguage, nil),
	})
}
