package dashboard

import (
	"net/http"

	"parkspot/internal/api"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// GetStats godoc
// @Summary      Dashboard statistics
// @Description  Admin-only: user counts, active bookings, occupied spots, today's revenue, hourly occupancy and recent bookings.
// @Tags         admin,dashboard
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  dashboard.Stats
// @Failure      500  {object}  api.ErrorResponse
// @Router       /admin/dashboard [get]
func (h *Handler) GetStats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to compute dashboard stats"})
		return
	}

	c.JSON(http.StatusOK, stats)
}
