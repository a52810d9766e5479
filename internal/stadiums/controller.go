package stadiums

import (
	"net/http"

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

// ListStadiums handles GET /api/v1/stadiums
func (c *Controller) ListStadiums(ctx *gin.Context) {
	list, err := c.repo.ListStadiums(ctx.Request.Context())
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to load stadiums", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Stadiums", list, nil)
}

// GetStadium handles GET /api/v1/stadiums/:id
func (c *Controller) GetStadium(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid stadium ID", nil, nil)
		return
	}

	stadium, err := c.repo.GetStadiumByID(ctx.Request.Context(), id)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusNotFound, "Stadium not found", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Stadium details", stadium, nil)
}
