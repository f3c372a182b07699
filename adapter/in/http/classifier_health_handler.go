package http

import "github.com/gofiber/fiber/v2"

// HealthHandler answers liveness probes.
type HealthHandler struct{}

// NewHealthHandler creates the handler.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Register mounts the health route.
func (h *HealthHandler) Register(app fiber.Router) {
	app.Get("/health", h.Health)
}

// Health reports service status.
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "healthy",
		"message": "Email Classifier AI is running",
	})
}
