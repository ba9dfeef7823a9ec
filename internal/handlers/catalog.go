// internal/handlers/catalog.go
package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/atelier-lumen/jewelry-backend/internal/services"
	"github.com/atelier-lumen/jewelry-backend/internal/utils"
)

type CatalogHandler struct {
	catalogService *services.CatalogService
}

func NewCatalogHandler(catalogService *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

// GET /jewelry
func (h *CatalogHandler) ListItems(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	searchParams := services.ItemSearchParams{
		PaginationParams: params,
	}

	if categoryIDStr := c.Query("category_id"); categoryIDStr != "" {
		if categoryID, err := strconv.ParseUint(categoryIDStr, 10, 32); err == nil {
			id := uint(categoryID)
			searchParams.CategoryID = &id
		}
	}

	if priceMinStr := c.Query("price_min"); priceMinStr != "" {
		if priceMin, err := strconv.ParseFloat(priceMinStr, 64); err == nil {
			searchParams.PriceMin = &priceMin
		}
	}

	if priceMaxStr := c.Query("price_max"); priceMaxStr != "" {
		if priceMax, err := strconv.ParseFloat(priceMaxStr, 64); err == nil {
			searchParams.PriceMax = &priceMax
		}
	}

	if inStockStr := c.Query("in_stock"); inStockStr != "" {
		if inStock, err := strconv.ParseBool(inStockStr); err == nil {
			searchParams.InStock = &inStock
		}
	}

	items, total, err := h.catalogService.ListItems(searchParams)
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to fetch jewelry")
		return
	}

	result := utils.CreatePaginationResult(items, total, params)
	utils.PaginatedResponse(c, result)
}

// GET /jewelry/:id
func (h *CatalogHandler) GetItem(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid item ID", nil)
		return
	}

	item, err := h.catalogService.GetItem(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.NotFoundResponse(c, "Product not found")
			return
		}
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"item": item,
	})
}

// GET /categories
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := h.catalogService.ListCategories()
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to fetch categories")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"categories": categories,
	})
}

func parseIDParam(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.New("invalid id")
	}
	return uint(id), nil
}
