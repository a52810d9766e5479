package seats

import (
	"net/http"

	"cricverse/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

// CreateSeats handles POST /api/v1/seats (admin)
func (c *Controller) CreateSeats(ctx *gin.Context) {
	var req CreateSeatsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	stadiumID, err := uuid.Parse(req.StadiumID)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid stadium ID", nil, nil)
		return
	}

	created, err := c.service.CreateSeats(ctx.Request.Context(), stadiumID, req.Seats)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to create seats", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Seats created", created, nil)
}

// GetSeat handles GET /api/v1/seats/:id
func (c *Controller) GetSeat(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid seat ID", nil, nil)
		return
	}

	seat, err := c.service.GetSeat(ctx.Request.Context(), id)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusNotFound, "Seat not found", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Seat details", seat, nil)
}

// UpdateSeat handles PATCH /api/v1/seats/:id (admin)
func (c *Controller) UpdateSeat(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid seat ID", nil, nil)
		return
	}

	var req UpdateSeatRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	if err := c.service.UpdateSeat(ctx.Request.Context(), id, req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to update seat", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Seat updated", nil, nil)
}

// GetEventAvailability handles GET /api/v1/events/:id/availability
func (c *Controller) GetEventAvailability(ctx *gin.Context) {
	eventID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid event ID", nil, nil)
		return
	}

	availability, err := c.service.GetEventAvailability(ctx.Request.Context(), eventID)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusNotFound, "Failed to load availability", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Seat availability", availability, nil)
}
