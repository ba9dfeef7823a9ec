// internal/services/catalog_service.go
package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/atelier-lumen/jewelry-backend/internal/models"
	"github.com/atelier-lumen/jewelry-backend/internal/utils"
)

type CatalogService struct {
	db      *gorm.DB
	storage *StorageService
}

type CreateItemRequest struct {
	Name        string  `json:"name" validate:"required,min=2,max=255"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Stock       int     `json:"stock" validate:"min=0"`
	CategoryID  *uint   `json:"category_id"`
	ImageURL    string  `json:"-"`
}

type UpdateItemRequest struct {
	Name        string   `json:"name,omitempty" validate:"omitempty,min=2,max=255"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,gt=0"`
	Stock       *int     `json:"stock,omitempty" validate:"omitempty,min=0"`
	CategoryID  *uint    `json:"category_id,omitempty"`
	ImageURL    string   `json:"-"`
}

type ItemSearchParams struct {
	utils.PaginationParams
	CategoryID *uint    `json:"category_id,omitempty"`
	PriceMin   *float64 `json:"price_min,omitempty"`
	PriceMax   *float64 `json:"price_max,omitempty"`
	InStock    *bool    `json:"in_stock,omitempty"`
}

func NewCatalogService(db *gorm.DB, storage *StorageService) *CatalogService {
	return &CatalogService{
		db:      db,
		storage: storage,
	}
}

func (s *CatalogService) ListItems(params ItemSearchParams) ([]models.JewelryItem, int64, error) {
	query := s.db.Model(&models.JewelryItem{}).Preload("Category")

	if params.CategoryID != nil {
		query = query.Where("category_id = ?", *params.CategoryID)
	}

	if params.Search != "" {
		searchTerm := "%" + strings.ToLower(params.Search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", searchTerm, searchTerm)
	}

	if params.PriceMin != nil {
		query = query.Where("price >= ?", *params.PriceMin)
	}

	if params.PriceMax != nil {
		query = query.Where("price <= ?", *params.PriceMax)
	}

	if params.InStock != nil && *params.InStock {
		query = query.Where("stock > 0")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count items: %w", err)
	}

	allowedSortFields := []string{"created_at", "updated_at", "name", "price", "stock"}
	query = utils.ApplySort(query, params.PaginationParams, allowedSortFields)
	query = utils.ApplyPagination(query, params.PaginationParams)

	var items []models.JewelryItem
	if err := query.Find(&items).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch items: %w", err)
	}

	return items, total, nil
}

func (s *CatalogService) GetItem(id uint) (*models.JewelryItem, error) {
	var item models.JewelryItem
	if err := s.db.Preload("Category").First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &item, nil
}

func (s *CatalogService) ListCategories() ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.Order("name").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}
	return categories, nil
}

func (s *CatalogService) CreateItem(req *CreateItemRequest) (*models.JewelryItem, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	item := &models.JewelryItem{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		CategoryID:  req.CategoryID,
		ImageURL:    req.ImageURL,
	}

	if err := s.db.Create(item).Error; err != nil {
		return nil, fmt.Errorf("failed to create item: %w", err)
	}

	return item, nil
}

func (s *CatalogService) UpdateItem(id uint, req *UpdateItemRequest) (*models.JewelryItem, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var item models.JewelryItem
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	updates := make(map[string]interface{})
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.Stock != nil {
		updates["stock"] = *req.Stock
	}
	if req.CategoryID != nil {
		updates["category_id"] = *req.CategoryID
	}
	if req.ImageURL != "" {
		updates["image_url"] = req.ImageURL
	}

	if len(updates) > 0 {
		if err := s.db.Model(&item).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update item: %w", err)
		}
	}

	s.db.Preload("Category").First(&item, id)
	return &item, nil
}

func (s *CatalogService) DeleteItem(id uint) error {
	var item models.JewelryItem
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("database error: %w", err)
	}

	if err := s.db.Delete(&item).Error; err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}

	// Stored image removal is best-effort; the catalog row is already gone.
	if item.ImageURL != "" && s.storage != nil {
		s.storage.DeleteFile(item.ImageURL)
	}

	return nil
}
