package service

import (
	"fmt"
	"time"

	"sheweds-backend/internal/models"
	"sheweds-backend/internal/repository"
	"sheweds-backend/pkg/cache"
	"sheweds-backend/pkg/logger"
)

// BackupService exports and restores the editable content as one JSON
// document.
type BackupService struct {
	pageRepo    repository.PageRepository
	productRepo repository.ProductRepository
	cache       *cache.Cache
}

func NewBackupService(pageRepo repository.PageRepository, productRepo repository.ProductRepository, cache *cache.Cache) *BackupService {
	return &BackupService{pageRepo: pageRepo, productRepo: productRepo, cache: cache}
}

// Export bundles every page and product with a timestamp.
func (s *BackupService) Export() (*models.BackupData, error) {
	pages, err := s.pageRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to export pages: %w", err)
	}
	products, err := s.productRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to export products: %w", err)
	}

	pageMap := make(map[string]models.PageConfig, len(pages))
	for _, page := range pages {
		pageMap[page.ID] = page
	}

	return &models.BackupData{
		Pages:     pageMap,
		Products:  products,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// Import restores a backup. Each present collection replaces the stored one
// wholesale; an absent collection leaves the current data untouched.
func (s *BackupService) Import(data models.BackupData) error {
	if data.Pages != nil {
		if err := s.pageRepo.ReplaceAll(data.Pages); err != nil {
			return fmt.Errorf("failed to restore pages: %w", err)
		}
	}
	if data.Products != nil {
		if err := s.productRepo.SaveAll(data.Products); err != nil {
			return fmt.Errorf("failed to restore products: %w", err)
		}
	}

	if err := s.cache.FlushAll(); err != nil {
		logger.Warn("Failed to flush cache after import", map[string]interface{}{"error": err.Error()})
	}
	logger.Info("Backup imported", map[string]interface{}{
		"pages":    len(data.Pages),
		"products": len(data.Products),
	})
	return nil
}
