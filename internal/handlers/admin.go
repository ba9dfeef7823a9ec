// internal/handlers/admin.go
package handlers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/atelier-lumen/jewelry-backend/internal/services"
	"github.com/atelier-lumen/jewelry-backend/internal/utils"
)

// AdminHandler covers catalog management. Item create and update accept
// multipart forms so the storefront can send an image alongside the fields.
type AdminHandler struct {
	catalogService *services.CatalogService
	storageService *services.StorageService
}

func NewAdminHandler(catalogService *services.CatalogService, storageService *services.StorageService) *AdminHandler {
	return &AdminHandler{
		catalogService: catalogService,
		storageService: storageService,
	}
}

// POST /admin/jewelry
func (h *AdminHandler) CreateItem(c *gin.Context) {
	price, err := strconv.ParseFloat(c.PostForm("price"), 64)
	if err != nil {
		utils.BadRequestResponse(c, "Valid price required", nil)
		return
	}

	req := services.CreateItemRequest{
		Name:        strings.TrimSpace(c.PostForm("name")),
		Description: c.PostForm("description"),
		Price:       price,
	}

	if stockStr := c.PostForm("stock"); stockStr != "" {
		stock, err := strconv.Atoi(stockStr)
		if err != nil || stock < 0 {
			utils.BadRequestResponse(c, "Stock must be a non-negative number", nil)
			return
		}
		req.Stock = stock
	}

	if categoryIDStr := c.PostForm("category_id"); categoryIDStr != "" {
		categoryID, err := strconv.ParseUint(categoryIDStr, 10, 32)
		if err != nil {
			utils.BadRequestResponse(c, "Invalid category ID", nil)
			return
		}
		id := uint(categoryID)
		req.CategoryID = &id
	}

	if imageURL, ok := h.uploadImageField(c); ok {
		req.ImageURL = imageURL
	} else if c.IsAborted() {
		return
	}

	item, err := h.catalogService.CreateItem(&req)
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": "Item created",
		"item":    item,
	})
}

// PUT /admin/jewelry/:id
func (h *AdminHandler) UpdateItem(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid item ID", nil)
		return
	}

	var req services.UpdateItemRequest
	req.Name = strings.TrimSpace(c.PostForm("name"))

	if description, ok := c.GetPostForm("description"); ok {
		req.Description = &description
	}

	if priceStr := c.PostForm("price"); priceStr != "" {
		price, err := strconv.ParseFloat(priceStr, 64)
		if err != nil {
			utils.BadRequestResponse(c, "Invalid price", nil)
			return
		}
		req.Price = &price
	}

	if stockStr := c.PostForm("stock"); stockStr != "" {
		stock, err := strconv.Atoi(stockStr)
		if err != nil || stock < 0 {
			utils.BadRequestResponse(c, "Stock must be a non-negative number", nil)
			return
		}
		req.Stock = &stock
	}

	if categoryIDStr := c.PostForm("category_id"); categoryIDStr != "" {
		categoryID, err := strconv.ParseUint(categoryIDStr, 10, 32)
		if err != nil {
			utils.BadRequestResponse(c, "Invalid category ID", nil)
			return
		}
		cid := uint(categoryID)
		req.CategoryID = &cid
	}

	if imageURL, ok := h.uploadImageField(c); ok {
		req.ImageURL = imageURL
	} else if c.IsAborted() {
		return
	}

	item, err := h.catalogService.UpdateItem(id, &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.NotFoundResponse(c, "Item not found")
			return
		}
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": "Item updated",
		"item":    item,
	})
}

// DELETE /admin/jewelry/:id
func (h *AdminHandler) DeleteItem(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid item ID", nil)
		return
	}

	if err := h.catalogService.DeleteItem(id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.NotFoundResponse(c, "Item not found")
			return
		}
		utils.InternalErrorResponse(c, "Failed to delete item")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": "Item deleted",
	})
}

// uploadImageField stores the optional "image" form file and returns its
// public URL. A rejected upload aborts the request with a 400.
func (h *AdminHandler) uploadImageField(c *gin.Context) (string, bool) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return "", false
	}

	if h.storageService == nil {
		c.Abort()
		utils.BadRequestResponse(c, "Image uploads are not available", nil)
		return "", false
	}

	file, err := fileHeader.Open()
	if err != nil {
		logrus.WithError(err).Warn("Failed to open uploaded image")
		c.Abort()
		utils.BadRequestResponse(c, "Could not read uploaded image", nil)
		return "", false
	}
	defer file.Close()

	result, err := h.storageService.UploadImage(file, fileHeader)
	if err != nil {
		c.Abort()
		utils.BadRequestResponse(c, err.Error(), nil)
		return "", false
	}

	return result.URL, true
}
