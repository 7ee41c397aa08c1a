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

// WeblockHandler maps HTTP requests onto the weblock service.
type WeblockHandler struct {
	weblockService *services.WeblockService
}

func NewWeblockHandler() *WeblockHandler {
	return &WeblockHandler{
		weblockService: services.NewWeblockService(),
	}
}

func (h *WeblockHandler) GetWeblocks(c *gin.Context) {
	offset, limit := parsePagination(c)
	weblocks, err := h.weblockService.GetWeblocks(offset, limit)
	if err != nil {
		utils.InternalServerError(c, "failed to list weblocks")
		return
	}
	utils.Success(c, gin.H{"data": weblocks, "total": len(weblocks)}, "weblocks retrieved")
}

func (h *WeblockHandler) GetWeblock(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		utils.BadRequest(c, "invalid weblock id")
		return
	}

	weblock, err := h.weblockService.GetWeblockByID(id)
	if err != nil {
		utils.NotFound(c, fmt.Sprintf("weblock %d not found", id))
		return
	}
	utils.Success(c, gin.H{"data": weblock}, "weblock retrieved")
}

func (h *WeblockHandler) CreateWeblock(c *gin.Context) {
	var req models.WeblockCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.UnprocessableEntity(c, "invalid request body: "+err.Error())
		return
	}

	weblock, err := h.weblockService.CreateWeblock(&req)
	if err != nil {
		if errors.Is(err, services.ErrBrandNotFound) {
			utils.UnprocessableEntity(c, err.Error())
			return
		}
		utils.InternalServerError(c, "failed to create weblock")
		return
	}
	utils.Created(c, gin.H{"data": weblock}, "weblock created")
}

func (h *WeblockHandler) UpdateWeblock(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		utils.BadRequest(c, "invalid weblock id")
		return
	}

	var req models.WeblockUpdate
	if err := bindStrict(c, &req); err != nil {
		utils.UnprocessableEntity(c, "invalid request body: "+err.Error())
		return
	}

	weblock, err := h.weblockService.UpdateWeblock(id, &req)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			utils.NotFound(c, fmt.Sprintf("weblock %d not found", id))
		case errors.Is(err, services.ErrBrandNotFound):
			utils.UnprocessableEntity(c, err.Error())
		default:
			utils.InternalServerError(c, "failed to update weblock")
		}
		return
	}
	utils.Success(c, gin.H{"data": weblock}, "weblock updated")
}

func (h *WeblockHandler) DeleteWeblock(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		utils.BadRequest(c, "invalid weblock id")
		return
	}

	if err := h.weblockService.DeleteWeblock(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, fmt.Sprintf("weblock %d not found", id))
			return
		}
		utils.InternalServerError(c, "failed to delete weblock")
		return
	}
	utils.Success(c, nil, "weblock deleted")
}
