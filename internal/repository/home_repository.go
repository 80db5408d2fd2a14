package repository

import (
	"errors"
	"os"

	"sheweds-backend/internal/models"
)

const (
	homepageFile   = "homepage.json"
	heroSlidesFile = "hero-slides.json"
)

type HomeRepository interface {
	Get() (*models.HomePageData, error)
	Save(data models.HomePageData) error
}

type homeRepository struct {
	store *DocStore
}

func NewHomeRepository(store *DocStore) HomeRepository {
	return &homeRepository{store: store}
}

// Get reads the home-page document, migrating the legacy single-video hero
// fields into a slide and falling back to a built-in default document when
// the file is absent.
func (r *homeRepository) Get() (*models.HomePageData, error) {
	var data models.HomePageData
	if err := r.store.Load(homepageFile, &data); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return defaultHomePageData(), nil
		}
		return nil, err
	}

	if len(data.HeroSlides) == 0 && data.HeroVideoURL != "" {
		data.HeroSlides = []models.HeroSlide{
			{
				ID:       "1",
				Type:     "video",
				URL:      data.HeroVideoURL,
				Title:    data.HeroTitle,
				Subtitle: data.HeroSubtitle,
				CTAText:  "DISCOVER COLLECTION",
				CTALink:  "/shop",
			},
		}
	}

	if data.FeaturedCategories == nil {
		data.FeaturedCategories = []models.HomeLink{}
	}
	if data.BridalJourney == nil {
		data.BridalJourney = []models.HomeLink{}
	}

	return &data, nil
}

func (r *homeRepository) Save(data models.HomePageData) error {
	return r.store.Save(homepageFile, data)
}

func defaultHomePageData() *models.HomePageData {
	return &models.HomePageData{
		HeroSlides: []models.HeroSlide{
			{
				ID:       "1",
				Type:     "video",
				URL:      "https://videos.pexels.com/video-files/3926946/3926946-uhd_2560_1440_25fps.mp4",
				Title:    "Mohey Rang Do\nBurnt Caramel",
				Subtitle: "Because beige is never just beige",
				CTAText:  "DISCOVER 250+ SHADES",
				CTALink:  "/shop",
			},
		},
		FeaturedCategories: []models.HomeLink{},
		BridalJourney:      []models.HomeLink{},
	}
}

type HeroRepository interface {
	Get() (*models.HeroSlidesDoc, error)
	Save(doc models.HeroSlidesDoc) error
}

type heroRepository struct {
	store *DocStore
}

func NewHeroRepository(store *DocStore) HeroRepository {
	return &heroRepository{store: store}
}

func (r *heroRepository) Get() (*models.HeroSlidesDoc, error) {
	var doc models.HeroSlidesDoc
	if err := r.store.Load(heroSlidesFile, &doc); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &models.HeroSlidesDoc{Slides: []models.HeroSlide{}}, nil
		}
		return nil, err
	}

	if doc.Slides == nil {
		doc.Slides = []models.HeroSlide{}
	}
	return &doc, nil
}

func (r *heroRepository) Save(doc models.HeroSlidesDoc) error {
	return r.store.Save(heroSlidesFile, doc)
}
