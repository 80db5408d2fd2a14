package service

import (
	"sheweds-backend/internal/models"
	"sheweds-backend/internal/repository"
	"sheweds-backend/pkg/cache"
	"sheweds-backend/pkg/logger"
)

// HomeService serves the home-page document and the site-wide hero slides.
type HomeService struct {
	homeRepo repository.HomeRepository
	heroRepo repository.HeroRepository
	cache    *cache.Cache
}

func NewHomeService(homeRepo repository.HomeRepository, heroRepo repository.HeroRepository, cache *cache.Cache) *HomeService {
	return &HomeService{homeRepo: homeRepo, heroRepo: heroRepo, cache: cache}
}

func (s *HomeService) Get() (*models.HomePageData, error) {
	var cached models.HomePageData
	if err := s.cache.GetCachedHome(&cached); err == nil {
		return &cached, nil
	}

	data, err := s.homeRepo.Get()
	if err != nil {
		return nil, err
	}

	if err := s.cache.CacheHome(data); err != nil {
		logger.Warn("Failed to cache home data", map[string]interface{}{"error": err.Error()})
	}
	return data, nil
}

func (s *HomeService) Save(data models.HomePageData) error {
	if err := s.homeRepo.Save(data); err != nil {
		return err
	}

	if err := s.cache.InvalidateHome(); err != nil {
		logger.Warn("Failed to invalidate home cache", map[string]interface{}{"error": err.Error()})
	}
	return nil
}

// HeroSlides returns the standalone hero document. An absent file yields an
// empty slide list, never an error.
func (s *HomeService) HeroSlides() (*models.HeroSlidesDoc, error) {
	return s.heroRepo.Get()
}

// SaveHeroSlides replaces the hero document wholesale.
func (s *HomeService) SaveHeroSlides(doc models.HeroSlidesDoc) error {
	if doc.Slides == nil {
		doc.Slides = []models.HeroSlide{}
	}

	if err := s.heroRepo.Save(doc); err != nil {
		return err
	}

	if err := s.cache.InvalidateHome(); err != nil {
		logger.Warn("Failed to invalidate home cache", map[string]interface{}{"error": err.Error()})
	}
	logger.Info("Hero slides saved", map[string]interface{}{"count": len(doc.Slides)})
	return nil
}
