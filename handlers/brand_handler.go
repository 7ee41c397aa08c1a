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

// BrandHandler maps HTTP requests onto the brand service.
type BrandHandler struct {
	brandService *services.BrandService
}

func NewBrandHandler() *BrandHandler {
	return &BrandHandler{
		brandService: services.NewBrandService(),
	}
}

func (h *BrandHandler) GetBrands(c *gin.Context) {
	offset, limit := parsePagination(c)
	brands, err := h.brandService.GetBrands(offset, limit)
	if err != nil {
		utils.InternalServerError(c, "failed to list brands")
		return
	}
	utils.Success(c, gin.H{"data": brands, "total": len(brands)}, "brands retrieved")
}

func (h *BrandHandler) GetBrand(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		utils.BadRequest(c, "invalid brand id")
		return
	}

	brand, err := h.brandService.GetBrandByID(id)
	if err != nil {
		utils.NotFound(c, fmt.Sprintf("brand %d not found", id))
		return
	}
	utils.Success(c, gin.H{"data": brand}, "brand retrieved")
}

func (h *BrandHandler) CreateBrand(c *gin.Context) {
	var req models.BrandCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.UnprocessableEntity(c, "invalid request body: "+err.Error())
		return
	}

	brand, err := h.brandService.CreateBrand(&req)
	if err != nil {
		utils.Conflict(c, err.Error())
		return
	}
	utils.Created(c, gin.H{"data": brand}, "brand created")
}

func (h *BrandHandler) UpdateBrand(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		utils.BadRequest(c, "invalid brand id")
		return
	}

	var req models.BrandUpdate
	if err := bindStrict(c, &req); err != nil {
		utils.UnprocessableEntity(c, "invalid request body: "+err.Error())
		return
	}

	brand, err := h.brandService.UpdateBrand(id, &req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, fmt.Sprintf("brand %d not found", id))
			return
		}
		utils.Conflict(c, err.Error())
		return
	}
	utils.Success(c, gin.H{"data": brand}, "brand updated")
}

func (h *BrandHandler) DeleteBrand(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		utils.BadRequest(c, "invalid brand id")
		return
	}

	if err := h.brandService.DeleteBrand(id); err != nil {
		switch {
		case errors.Is(err, services.ErrBrandInUse):
			utils.Conflict(c, err.Error())
		case errors.Is(err, gorm.ErrRecordNotFound):
			utils.NotFound(c, fmt.Sprintf("brand %d not found", id))
		default:
			utils.InternalServerError(c, "failed to delete brand")
		}
		return
	}
	utils.Success(c, nil, "brand deleted")
}
