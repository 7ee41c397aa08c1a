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

// StarterKitHandler maps HTTP requests onto the starter kit service.
type StarterKitHandler struct {
	starterKitService *services.StarterKitService
}

func NewStarterKitHandler() *StarterKitHandler {
	return &StarterKitHandler{
		starterKitService: services.NewStarterKitService(),
	}
}

func (h *StarterKitHandler) GetStarterKits(c *gin.Context) {
	offset, limit := parsePagination(c)
	starterKits, err := h.starterKitService.GetStarterKits(offset, limit)
	if err != nil {
		utils.InternalServerError(c, "failed to list starter kits")
		return
	}
	utils.Success(c, gin.H{"data": starterKits, "total": len(starterKits)}, "starter kits retrieved")
}

func (h *StarterKitHandler) GetStarterKit(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		utils.BadRequest(c, "invalid starter kit id")
		return
	}

	starterKit, err := h.starterKitService.GetStarterKitByID(id)
	if err != nil {
		utils.NotFound(c, fmt.Sprintf("starter kit %d not found", id))
		return
	}
	utils.Success(c, gin.H{"data": starterKit}, "starter kit retrieved")
}

func (h *StarterKitHandler) CreateStarterKit(c *gin.Context) {
	var req models.StarterKitCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.UnprocessableEntity(c, "invalid request body: "+err.Error())
		return
	}

	starterKit, err := h.starterKitService.CreateStarterKit(&req)
	if err != nil {
		if errors.Is(err, services.ErrBrandNotFound) {
			utils.UnprocessableEntity(c, err.Error())
			return
		}
		utils.InternalServerError(c, "failed to create starter kit")
		return
	}
	utils.Created(c, gin.H{"data": starterKit}, "starter kit created")
}

func (h *StarterKitHandler) UpdateStarterKit(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		utils.BadRequest(c, "invalid starter kit id")
		return
	}

	var req models.StarterKitUpdate
	if err := bindStrict(c, &req); err != nil {
		utils.UnprocessableEntity(c, "invalid request body: "+err.Error())
		return
	}

	starterKit, err := h.starterKitService.UpdateStarterKit(id, &req)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			utils.NotFound(c, fmt.Sprintf("starter kit %d not found", id))
		case errors.Is(err, services.ErrBrandNotFound):
			utils.UnprocessableEntity(c, err.Error())
		default:
			utils.InternalServerError(c, "failed to update starter kit")
		}
		return
	}
	utils.Success(c, gin.H{"data": starterKit}, "starter kit updated")
}

func (h *StarterKitHandler) DeleteStarterKit(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		utils.BadRequest(c, "invalid starter kit id")
		return
	}

	if err := h.starterKitService.DeleteStarterKit(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, fmt.Sprintf("starter kit %d not found", id))
			return
		}
		utils.InternalServerError(c, "failed to delete starter kit")
		return
	}
	utils.Success(c, nil, "starter kit deleted")
}
