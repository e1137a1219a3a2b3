package spot

import (
	"errors"
	"net/http"
	"strconv"

	"parkspot/internal/api"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// CreateSpot godoc
// @Summary      Create a parking spot
// @Description  Admin-only: registers a new parking spot.
// @Tags         admin,spots
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      spot.CreateSpotRequest  true  "Spot payload"
// @Success      201      {object}  spot.Spot
// @Failure      400      {object}  api.ErrorResponse
// @Failure      409      {object}  api.ErrorResponse
// @Failure      500      {object}  api.ErrorResponse
// @Router       /admin/spots [post]
func (h *Handler) CreateSpot(c *gin.Context) {
	var req CreateSpotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	sp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidSpotType):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid spot type"})
		case errors.Is(err, ErrDuplicateSpotNumber):
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: "Spot number already exists"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create spot"})
		}
		return
	}

	c.JSON(http.StatusCreated, sp)
}

// ListSpots godoc
// @Summary      List parking spots
// @Tags         spots
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   spot.Spot
// @Failure      500  {object}  api.ErrorResponse
// @Router       /spots [get]
func (h *Handler) ListSpots(c *gin.Context) {
	spots, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch spots"})
		return
	}

	c.JSON(http.StatusOK, spots)
}

// GetSpot godoc
// @Summary      Get a parking spot
// @Tags         spots
// @Produce      json
// @Security     BearerAuth
// @Param        spotID  path      int  true  "Spot ID"
// @Success      200     {object}  spot.Spot
// @Failure      400     {object}  api.ErrorResponse
// @Failure      404     {object}  api.ErrorResponse
// @Router       /spots/{spotID} [get]
func (h *Handler) GetSpot(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("spotID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid spot ID"})
		return
	}

	sp, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrSpotNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Spot not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch spot"})
		return
	}

	c.JSON(http.StatusOK, sp)
}

// UpdateSpot godoc
// @Summary      Update a parking spot
// @Description  Admin-only: updates spot number, level, type or price.
// @Tags         admin,spots
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        spotID   path      int                     true  "Spot ID"
// @Param        request  body      spot.UpdateSpotRequest  true  "Fields to update"
// @Success      200      {object}  spot.Spot
// @Failure      400      {object}  api.ErrorResponse
// @Failure      404      {object}  api.ErrorResponse
// @Failure      409      {object}  api.ErrorResponse
// @Router       /admin/spots/{spotID} [put]
func (h *Handler) UpdateSpot(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("spotID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid spot ID"})
		return
	}

	var req UpdateSpotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	sp, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrSpotNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Spot not found"})
		case errors.Is(err, ErrInvalidSpotType):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid spot type"})
		case errors.Is(err, ErrDuplicateSpotNumber):
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: "Spot number already exists"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to update spot"})
		}
		return
	}

	c.JSON(http.StatusOK, sp)
}

// DeleteSpot godoc
// @Summary      Delete a parking spot
// @Description  Admin-only: removes a spot. Fails while any booking references it.
// @Tags         admin,spots
// @Produce      json
// @Security     BearerAuth
// @Param        spotID  path      int  true  "Spot ID"
// @Success      200     {object}  api.MessageResponse
// @Failure      400     {object}  api.ErrorResponse
// @Failure      404     {object}  api.ErrorResponse
// @Failure      409     {object}  api.ErrorResponse
// @Router       /admin/spots/{spotID} [delete]
func (h *Handler) DeleteSpot(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("spotID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid spot ID"})
		return
	}

	err = h.service.Delete(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrSpotNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Spot not found"})
		case errors.Is(err, ErrSpotHasBookings):
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: "Spot has bookings and cannot be deleted"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to delete spot"})
		}
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Spot deleted"})
}

// SetAvailability godoc
// @Summary      Toggle administrative availability
// @Description  Admin-only: flips the manual availability flag. A disabled spot is excluded from every availability search regardless of bookings.
// @Tags         admin,spots
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        spotID   path      int                          true  "Spot ID"
// @Param        request  body      spot.SetAvailabilityRequest  true  "Availability flag"
// @Success      200      {object}  spot.Spot
// @Failure      400      {object}  api.ErrorResponse
// @Failure      404      {object}  api.ErrorResponse
// @Router       /admin/spots/{spotID}/availability [patch]
func (h *Handler) SetAvailability(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("spotID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid spot ID"})
		return
	}

	var req SetAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	sp, err := h.service.SetAvailability(c.Request.Context(), id, *req.IsAvailable)
	if err != nil {
		if errors.Is(err, ErrSpotNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Spot not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to update availability"})
		return
	}

	c.JSON(http.StatusOK, sp)
}
