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

// TricklineKitHandler maps HTTP requests onto the trickline kit service.
type TricklineKitHandler struct {
	tricklineKitService *services.TricklineKitService
}

func NewTricklineKitHandler() *TricklineKitHandler {
	return &TricklineKitHandler{
		tricklineKitService: services.NewTricklineKitService(),
	}
}

func (h *TricklineKitHandler) GetTricklineKits(c *gin.Context) {
	offset, limit := parsePagination(c)
	tricklineKits, err := h.tricklineKitService.GetTricklineKits(offset, limit)
	if err != nil {
		utils.InternalServerError(c, "failed to list trickline kits")
		return
	}
	utils.Success(c, gin.H{"data": tricklineKits, "total": len(tricklineKits)}, "trickline kits retrieved")
}

func (h *TricklineKitHandler) GetTricklineKit(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		utils.BadRequest(c, "invalid trickline kit id")
		return
	}

	tricklineKit, err := h.tricklineKitService.GetTricklineKitByID(id)
	if err != nil {
		utils.NotFound(c, fmt.Sprintf("trickline kit %d not found", id))
		return
	}
	utils.Success(c, gin.H{"data": tricklineKit}, "trickline kit retrieved")
}

func (h *TricklineKitHandler) CreateTricklineKit(c *gin.Context) {
	var req models.TricklineKitCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.UnprocessableEntity(c, "invalid request body: "+err.Error())
		return
	}

	tricklineKit, err := h.tricklineKitService.CreateTricklineKit(&req)
	if err != nil {
		if errors.Is(err, services.ErrBrandNotFound) {
			utils.UnprocessableEntity(c, err.Error())
			return
		}
		utils.InternalServerError(c, "failed to create trickline kit")
		return
	}
	utils.Created(c, gin.H{"data": tricklineKit}, "trickline kit created")
}

func (h *TricklineKitHandler) UpdateTricklineKit(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		utils.BadRequest(c, "invalid trickline kit id")
		return
	}

	var req models.TricklineKitUpdate
	if err := bindStrict(c, &req); err != nil {
		utils.UnprocessableEntity(c, "invalid request body: "+err.Error())
		return
	}

	tricklineKit, err := h.tricklineKitService.UpdateTricklineKit(id, &req)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			utils.NotFound(c, fmt.Sprintf("trickline kit %d not found", id))
		case errors.Is(err, services.ErrBrandNotFound):
			utils.UnprocessableEntity(c, err.Error())
		default:
			utils.InternalServerError(c, "failed to update trickline kit")
		}
		return
	}
	utils.Success(c, gin.H{"data": tricklineKit}, "trickline kit updated")
}

func (h *TricklineKitHandler) DeleteTricklineKit(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		utils.BadRequest(c, "invalid trickline kit id")
		return
	}

	if err := h.tricklineKitService.DeleteTricklineKit(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, fmt.Sprintf("trickline kit %d not found", id))
			return
		}
		utils.InternalServerError(c, "failed to delete trickline kit")
		return
	}
	utils.Success(c, nil, "trickline kit deleted")
}
