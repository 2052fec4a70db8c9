package handlers

import (
	"time"

	"github.com/ahmetcoskunkizilkaya/review-analyzer/internal/dto"
	"github.com/ahmetcoskunkizilkaya/review-analyzer/internal/services"
	"github.com/gofiber/fiber/v2"
)

type HealthHandler struct {
	service     *services.ReviewService
	storeDriver string
	ping        func() error
}

// NewHealthHandler builds the health check. ping may be nil when the store
// has no database behind it.
func NewHealthHandler(service *services.ReviewService, storeDriver string, ping func() error) *HealthHandler {
	return &HealthHandler{service: service, storeDriver: storeDriver, ping: ping}
}

func (h *HealthHandler) Check(c *fiber.Ctx) error {
	resp := dto.HealthResponse{
		Status:      "ok",
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		Store:       h.storeDriver,
		ReviewCount: h.service.Count(),
	}
	if h.ping != nil {
		resp.DB = "ok"
		if err := h.ping(); err != nil {
			resp.DB = "unhealthy: " + err.Error()
		}
	}
	return c.JSON(resp)
}
