package api

import (
	"kucukaslan/nodeapp/domain"

	"github.com/gofiber/fiber/v2"
)

var _ HealthHandler = &healthHandler{}

type healthHandler struct {
	healthService domain.HealthService
}

// HealthCheck handles the /health endpoint
// @Summary Health check endpoint
// @Description Check the health status of the service and its dependencies
// @Tags Health
// @Produce json
// @Success 200 {object} domain.HealthResponse "Service is healthy"
// @Failure 503 {object} domain.HealthResponse "Service is unhealthy"
// @Router /health [get]
func (h healthHandler) HealthCheck(ctx *fiber.Ctx) error {
	response := h.healthService.Check(ctx.UserContext())

	if response.Status == domain.StatusHealthy {
		return ctx.Status(fiber.StatusOK).JSON(response)
	}
	return ctx.Status(fiber.StatusServiceUnavailable).JSON(response)
}

func NewHealthHandler(healthService domain.HealthService) HealthHandler {
	return &healthHandler{healthService: healthService}
}
