package service

import (
	"errors"
	"fmt"
	"strings"

	"sheweds-backend/internal/models"
	"sheweds-backend/internal/repository"
	"sheweds-backend/pkg/cache"
	"sheweds-backend/pkg/logger"
	"sheweds-backend/pkg/utils"
)

var (
	ErrPageNotFound = errors.New("page not found")
	ErrPageExists   = errors.New("page with this slug already exists")
)

type PageService struct {
	pageRepo repository.PageRepository
	cache    *cache.Cache
}

func NewPageService(pageRepo repository.PageRepository, cache *cache.Cache) *PageService {
	return &PageService{pageRepo: pageRepo, cache: cache}
}

func (s *PageService) GetAll() ([]models.PageConfig, error) {
	return s.pageRepo.GetAll()
}

func (s *PageService) GetBySlug(slug string) (*models.PageConfig, error) {
	var cached models.PageConfig
	if err := s.cache.GetCachedPage(slug, &cached); err == nil {
		return &cached, nil
	}

	page, err := s.pageRepo.GetBySlug(slug)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPageNotFound
		}
		return nil, err
	}

	if err := s.cache.CachePage(slug, page); err != nil {
		logger.Warn("Failed to cache page", map[string]interface{}{"slug": slug, "error": err.Error()})
	}
	return page, nil
}

// Create adds a new empty page. The slug defaults to a normalized form of
// the name; the id is the slug reduced to lowercase alphanumerics.
func (s *PageService) Create(name, slug string) (*models.PageConfig, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("page name is required")
	}

	if strings.TrimSpace(slug) == "" {
		slug = utils.GenerateSlug(name)
	}
	if slug == "" {
		return nil, fmt.Errorf("page slug is required")
	}

	if _, err := s.pageRepo.GetBySlug(slug); err == nil {
		return nil, ErrPageExists
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	page := models.PageConfig{
		ID:       utils.GenerateSlug(slug),
		Slug:     slug,
		Name:     name,
		Sections: []models.Section{},
	}

	if err := s.pageRepo.Save(page); err != nil {
		return nil, err
	}

	logger.Info("Page created", map[string]interface{}{"slug": page.Slug})
	return &page, nil
}

// Save persists a full page config. The whole document is replaced; when two
// editors save concurrently the later write wins.
func (s *PageService) Save(config models.PageConfig) error {
	if strings.TrimSpace(config.ID) == "" || strings.TrimSpace(config.Slug) == "" {
		return fmt.Errorf("page id and slug are required")
	}
	if config.Sections == nil {
		config.Sections = []models.Section{}
	}

	if err := s.pageRepo.Save(config); err != nil {
		return err
	}

	if err := s.cache.InvalidatePage(config.Slug); err != nil {
		logger.Warn("Failed to invalidate page cache", map[string]interface{}{"slug": config.Slug, "error": err.Error()})
	}
	return nil
}

func (s *PageService) Delete(id string) error {
	if err := s.pageRepo.Delete(id); err != nil {
		return err
	}

	if err := s.cache.InvalidatePagesCache(); err != nil {
		logger.Warn("Failed to invalidate pages cache", map[string]interface{}{"error": err.Error()})
	}
	logger.Info("Page deleted", map[string]interface{}{"id": id})
	return nil
}
