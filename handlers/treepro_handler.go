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

// TreeProHandler maps HTTP requests onto the tree protector service.
type TreeProHandler struct {
	treeProService *services.TreeProService
}

func NewTreeProHandler() *TreeProHandler {
	return &TreeProHandler{
		treeProService: services.NewTreeProService(),
	}
}

func (h *TreeProHandler) GetTreePros(c *gin.Context) {
	offset, limit := parsePagination(c)
	treePros, err := h.treeProService.GetTreePros(offset, limit)
	if err != nil {
		utils.InternalServerError(c, "failed to list tree protectors")
		return
	}
	utils.Success(c, gin.H{"data": treePros, "total": len(treePros)}, "tree protectors retrieved")
}

func (h *TreeProHandler) GetTreePro(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		utils.BadRequest(c, "invalid tree protector id")
		return
	}

	treePro, err := h.treeProService.GetTreeProByID(id)
	if err != nil {
		utils.NotFound(c, fmt.Sprintf("tree protector %d not found", id))
		return
	}
	utils.Success(c, gin.H{"data": treePro}, "tree protector retrieved")
}

func (h *TreeProHandler) CreateTreePro(c *gin.Context) {
	var req models.TreeProCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.UnprocessableEntity(c, "invalid request body: "+err.Error())
		return
	}

	treePro, err := h.treeProService.CreateTreePro(&req)
	if err != nil {
		if errors.Is(err, services.ErrBrandNotFound) {
			utils.UnprocessableEntity(c, err.Error())
			return
		}
		utils.InternalServerError(c, "failed to create tree protector")
		return
	}
	utils.Created(c, gin.H{"data": treePro}, "tree protector created")
}

func (h *TreeProHandler) UpdateTreePro(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		utils.BadRequest(c, "invalid tree protector id")
		return
	}

	var req models.TreeProUpdate
	if err := bindStrict(c, &req); err != nil {
		utils.UnprocessableEntity(c, "invalid request body: "+err.Error())
		return
	}

	treePro, err := h.treeProService.UpdateTreePro(id, &req)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			utils.NotFound(c, fmt.Sprintf("tree protector %d not found", id))
		case errors.Is(err, services.ErrBrandNotFound):
			utils.UnprocessableEntity(c, err.Error())
		default:
			utils.InternalServerError(c, "failed to update tree protector")
		}
		return
	}
	utils.Success(c, gin.H{"data": treePro}, "tree protector updated")
}

func (h *TreeProHandler) DeleteTreePro(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		utils.BadRequest(c, "invalid tree protector id")
		return
	}

	if err := h.treeProService.DeleteTreePro(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, fmt.Sprintf("tree protector %d not found", id))
			return
		}
		utils.InternalServerError(c, "failed to delete tree protector")
		return
	}
	utils.Success(c, nil, "tree protector deleted")
}
