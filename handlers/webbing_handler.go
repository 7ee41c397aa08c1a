package handlers

import (
	"errors"
	"fmt"

	"github.com/International-Slackline-Association/SlackData/models"
	"github.com/International-Slackline-Association/SlackData/services"
	"github.com/International-Slackline-Association/SlackData/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// WebbingHandler maps HTTP requests onto the webbing service.
type WebbingHandler struct {
	webbingService *services.WebbingService
}

func NewWebbingHandler() *WebbingHandler {
	return &WebbingHandler{
		webbingService: services.NewWebbingService(),
	}
}

func (h *WebbingHandler) GetWebbings(c *gin.Context) {
	offset, limit := parsePagination(c)
	webbings, err := h.webbingService.GetWebbings(offset, limit)
	if err != nil {
		utils.InternalServerError(c, "failed to list webbings")
		return
	}
	utils.Success(c, gin.H{"data": webbings, "total": len(webbings)}, "webbings retrieved")
}

func (h *WebbingHandler) GetWebbing(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		utils.BadRequest(c, "invalid webbing id")
		return
	}

	webbing, err := h.webbingService.GetWebbingByID(id)
	if err != nil {
		utils.NotFound(c, fmt.Sprintf("webbing %d not found", id))
		return
	}
	utils.Success(c, gin.H{"data": webbing}, "webbing retrieved")
}

func (h *WebbingHandler) CreateWebbing(c *gin.Context) {
	var req models.WebbingCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.UnprocessableEntity(c, "invalid request body: "+err.Error())
		return
	}

	webbing, err := h.webbingService.CreateWebbing(&req)
	if err != nil {
		if errors.Is(err, services.ErrBrandNotFound) {
			utils.UnprocessableEntity(c, err.Error())
			return
		}
		utils.InternalServerError(c, "failed to create webbing")
		return
	}
	utils.Created(c, gin.H{"data": webbing}, "webbing created")
}

func (h *WebbingHandler) UpdateWebbing(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		utils.BadRequest(c, "invalid webbing id")
		return
	}

	var req models.WebbingUpdate
	if err := bindStrict(c, &req); err != nil {
		utils.UnprocessableEntity(c, "invalid request body: "+err.Error())
		return
	}

	webbing, err := h.webbingService.UpdateWebbing(id, &req)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			utils.NotFound(c, fmt.Sprintf("webbing %d not found", id))
		case errors.Is(err, services.ErrBrandNotFound):
			utils.UnprocessableEntity(c, err.Error())
		default:
			utils.InternalServerError(c, "failed to update webbing")
		}
		return
	}
	utils.Success(c, gin.H{"data": webbing}, "webbing updated")
}

func (h *WebbingHandler) DeleteWebbing(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		utils.BadRequest(c, "invalid webbing id")
		return
	}

	if err := h.webbingService.DeleteWebbing(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, fmt.Sprintf("webbing %d not found", id))
			return
		}
		utils.InternalServerError(c, "failed to delete webbing")
		return
	}
	utils.Success(c, nil, "webbing deleted")
}
