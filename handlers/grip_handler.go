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

// GripHandler maps HTTP requests onto the grip service.
type GripHandler struct {
	gripService *services.GripService
}

func NewGripHandler() *GripHandler {
	return &GripHandler{
		gripService: services.NewGripService(),
	}
}

func (h *GripHandler) GetGrips(c *gin.Context) {
	offset, limit := parsePagination(c)
	grips, err := h.gripService.GetGrips(offset, limit)
	if err != nil {
		utils.InternalServerError(c, "failed to list grips")
		return
	}
	utils.Success(c, gin.H{"data": grips, "total": len(grips)}, "grips retrieved")
}

func (h *GripHandler) GetGrip(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		utils.BadRequest(c, "invalid grip id")
		return
	}

	grip, err := h.gripService.GetGripByID(id)
	if err != nil {
		utils.NotFound(c, fmt.Sprintf("grip %d not found", id))
		return
	}
	utils.Success(c, gin.H{"data": grip}, "grip retrieved")
}

func (h *GripHandler) CreateGrip(c *gin.Context) {
	var req models.GripCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.UnprocessableEntity(c, "invalid request body: "+err.Error())
		return
	}

	grip, err := h.gripService.CreateGrip(&req)
	if err != nil {
		if errors.Is(err, services.ErrBrandNotFound) {
			utils.UnprocessableEntity(c, err.Error())
			return
		}
		utils.InternalServerError(c, "failed to create grip")
		return
	}
	utils.Created(c, gin.H{"data": grip}, "grip created")
}

func (h *GripHandler) UpdateGrip(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		utils.BadRequest(c, "invalid grip id")
		return
	}

	var req models.GripUpdate
	if err := bindStrict(c, &req); err != nil {
		utils.UnprocessableEntity(c, "invalid request body: "+err.Error())
		return
	}

	grip, err := h.gripService.UpdateGrip(id, &req)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			utils.NotFound(c, fmt.Sprintf("grip %d not found", id))
		case errors.Is(err, services.ErrBrandNotFound):
			utils.UnprocessableEntity(c, err.Error())
		default:
			utils.InternalServerError(c, "failed to update grip")
		}
		return
	}
	utils.Success(c, gin.H{"data": grip}, "grip updated")
}

func (h *GripHandler) DeleteGrip(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		utils.BadRequest(c, "invalid grip id")
		return
	}

	if err := h.gripService.DeleteGrip(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, fmt.Sprintf("grip %d not found", id))
			return
		}
		utils.InternalServerError(c, "failed to delete grip")
		return
	}
	utils.Success(c, nil, "grip deleted")
}
