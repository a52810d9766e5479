package events

import (
	"net/http"
	"strconv"

	"cricverse/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Controller struct {
	repo Reader
}

func NewController(repo Reader) *Controller {
	return &Controller{repo: repo}
}

// ListUpcoming handles GET /api/v1/events
func (c *Controller) ListUpcoming(ctx *gin.Context) {
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))

	evts, err := c.repo.ListUpcomingEvents(ctx.Request.Context(), limit)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to list events", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Upcoming events", evts, nil)
}

// GetEvent handles GET /api/v1/events/:id
func (c *Controller) GetEvent(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid event ID", nil, nil)
		return
	}

	event, err := c.repo.GetEventWithStadium(ctx.Request.Context(), id)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusNotFound, "Event not found", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Event details", event, nil)
}
