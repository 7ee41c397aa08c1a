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

// RollerHandler maps HTTP requests onto the roller service.
type RollerHandler struct {
	rollerService *services.RollerService
}

func NewRollerHandler() *RollerHandler {
	return &RollerHandler{
		rollerService: services.NewRollerService(),
	}
}

func (h *RollerHandler) GetRollers(c *gin.Context) {
	offset, limit := parsePagination(c)
	rollers, err := h.rollerService.GetRollers(offset, limit)
	if err != nil {
		utils.InternalServerError(c, "failed to list rollers")
		return
	}
	utils.Success(c, gin.H{"data": rollers, "total": len(rollers)}, "rollers retrieved")
}

func (h *RollerHandler) GetRoller(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		utils.BadRequest(c, "invalid roller id")
		return
	}

	roller, err := h.rollerService.GetRollerByID(id)
	if err != nil {
		utils.NotFound(c, fmt.Sprintf("roller %d not found", id))
		return
	}
	utils.Success(c, gin.H{"data": roller}, "roller retrieved")
}

func (h *RollerHandler) CreateRoller(c *gin.Context) {
	var req models.RollerCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.UnprocessableEntity(c, "invalid request body: "+err.Error())
		return
	}

	roller, err := h.rollerService.CreateRoller(&req)
	if err != nil {
		if errors.Is(err, services.ErrBrandNotFound) {
			utils.UnprocessableEntity(c, err.Error())
			return
		}
		utils.InternalServerError(c, "failed to create roller")
		return
	}
	utils.Created(c, gin.H{"data": roller}, "roller created")
}

func (h *RollerHandler) UpdateRoller(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		utils.BadRequest(c, "invalid roller id")
		return
	}

	var req models.RollerUpdate
	if err := bindStrict(c, &req); err != nil {
		utils.UnprocessableEntity(c, "invalid request body: "+err.Error())
		return
	}

	roller, err := h.rollerService.UpdateRoller(id, &req)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			utils.NotFound(c, fmt.Sprintf("roller %d not found", id))
		case errors.Is(err, services.ErrBrandNotFound):
			utils.UnprocessableEntity(c, err.Error())
		default:
			utils.InternalServerError(c, "failed to update roller")
		}
		return
	}
	utils.Success(c, gin.H{"data": roller}, "roller updated")
}

func (h *RollerHandler) DeleteRoller(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		utils.BadRequest(c, "invalid roller id")
		return
	}

	if err := h.rollerService.DeleteRoller(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, fmt.Sprintf("roller %d not found", id))
			return
		}
		utils.InternalServerError(c, "failed to delete roller")
		return
	}
	utils.Success(c, nil, "roller deleted")
}
