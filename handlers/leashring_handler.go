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

// LeashRingHandler maps HTTP requests onto the leash ring service.
type LeashRingHandler struct {
	leashRingService *services.LeashRingService
}

func NewLeashRingHandler() *LeashRingHandler {
	return &LeashRingHandler{
		leashRingService: services.NewLeashRingService(),
	}
}

func (h *LeashRingHandler) GetLeashRings(c *gin.Context) {
	offset, limit := parsePagination(c)
	leashRings, err := h.leashRingService.GetLeashRings(offset, limit)
	if err != nil {
		utils.InternalServerError(c, "failed to list leash rings")
		return
	}
	utils.Success(c, gin.H{"data": leashRings, "total": len(leashRings)}, "leash rings retrieved")
}

func (h *LeashRingHandler) GetLeashRing(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		utils.BadRequest(c, "invalid leash ring id")
		return
	}

	leashRing, err := h.leashRingService.GetLeashRingByID(id)
	if err != nil {
		utils.NotFound(c, fmt.Sprintf("leash ring %d not found", id))
		return
	}
	utils.Success(c, gin.H{"data": leashRing}, "leash ring retrieved")
}

func (h *LeashRingHandler) CreateLeashRing(c *gin.Context) {
	var req models.LeashRingCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.UnprocessableEntity(c, "invalid request body: "+err.Error())
		return
	}

	leashRing, err := h.leashRingService.CreateLeashRing(&req)
	if err != nil {
		if errors.Is(err, services.ErrBrandNotFound) {
			utils.UnprocessableEntity(c, err.Error())
			return
		}
		utils.InternalServerError(c, "failed to create leash ring")
		return
	}
	utils.Created(c, gin.H{"data": leashRing}, "leash ring created")
}

func (h *LeashRingHandler) UpdateLeashRing(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		utils.BadRequest(c, "invalid leash ring id")
		return
	}

	var req models.LeashRingUpdate
	if err := bindStrict(c, &req); err != nil {
		utils.UnprocessableEntity(c, "invalid request body: "+err.Error())
		return
	}

	leashRing, err := h.leashRingService.UpdateLeashRing(id, &req)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			utils.NotFound(c, fmt.Sprintf("leash ring %d not found", id))
		case errors.Is(err, services.ErrBrandNotFound):
			utils.UnprocessableEntity(c, err.Error())
		default:
			utils.InternalServerError(c, "failed to update leash ring")
		}
		return
	}
	utils.Success(c, gin.H{"data": leashRing}, "leash ring updated")
}

func (h *LeashRingHandler) DeleteLeashRing(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		utils.BadRequest(c, "invalid leash ring id")
		return
	}

	if err := h.leashRingService.DeleteLeashRing(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, fmt.Sprintf("leash ring %d not found", id))
			return
		}
		utils.InternalServerError(c, "failed to delete leash ring")
		return
	}
	utils.Success(c, nil, "leash ring deleted")
}
