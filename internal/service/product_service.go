package service

import (
	"errors"
	"fmt"
	"mime/multipart"
	"strconv"
	"strings"
	"time"

	"sheweds-backend/internal/models"
	"sheweds-backend/internal/repository"
	"sheweds-backend/pkg/cache"
	"sheweds-backend/pkg/logger"
)

var ErrProductNotFound = errors.New("product not found")

// ProductInput carries the scalar fields of a product create or update
// request. Media arrives separately as multipart files.
type ProductInput struct {
	Name        string
	Price       float64
	Category    string
	Description string
	Sizes       []string
	Material    string
	Work        string
	WashCare    string
	SKU         string
	// ImageURL is the legacy single-image fallback used when no files are
	// attached on create.
	ImageURL string
	// ExistingImages and ExistingVideos list the media kept during an
	// update; removed entries are simply absent.
	ExistingImages []string
	ExistingVideos []string
}

type ProductService struct {
	productRepo repository.ProductRepository
	uploads     *UploadService
	cache       *cache.Cache
}

func NewProductService(productRepo repository.ProductRepository, uploads *UploadService, cache *cache.Cache) *ProductService {
	return &ProductService{productRepo: productRepo, uploads: uploads, cache: cache}
}

func (s *ProductService) GetAll() ([]models.Product, error) {
	var cached []models.Product
	if err := s.cache.GetCachedProducts(&cached); err == nil {
		return cached, nil
	}

	products, err := s.productRepo.GetAll()
	if err != nil {
		return nil, err
	}

	if err := s.cache.CacheProducts(products); err != nil {
		logger.Warn("Failed to cache products", map[string]interface{}{"error": err.Error()})
	}
	return products, nil
}

func (s *ProductService) GetByID(id string) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

// GetRelated returns up to four other products from the same category.
func (s *ProductService) GetRelated(category, excludeID string) ([]models.Product, error) {
	products, err := s.GetAll()
	if err != nil {
		return nil, err
	}

	related := make([]models.Product, 0, 4)
	for _, p := range products {
		if p.Category == category && p.ID != excludeID {
			related = append(related, p)
			if len(related) == 4 {
				break
			}
		}
	}
	return related, nil
}

// Create stores the uploaded media and appends the new product. When no
// image uploads arrive the legacy image URL field seeds the gallery.
func (s *ProductService) Create(input ProductInput, imageFiles, videoFiles []*multipart.FileHeader) (*models.Product, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("product name is required")
	}

	images, videos, err := s.storeMedia(imageFiles, videoFiles)
	if err != nil {
		return nil, err
	}
	if len(images) == 0 && strings.TrimSpace(input.ImageURL) != "" {
		images = append(images, input.ImageURL)
	}

	id, err := s.nextID()
	if err != nil {
		return nil, err
	}

	product := models.Product{
		ID:          id,
		Name:        input.Name,
		Price:       input.Price,
		Category:    input.Category,
		Images:      images,
		Videos:      videos,
		Description: input.Description,
		Sizes:       input.Sizes,
		Material:    input.Material,
		Work:        input.Work,
		WashCare:    input.WashCare,
		SKU:         input.SKU,
	}
	product.Normalize()

	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}

	s.invalidate()
	logger.Info("Product created", map[string]interface{}{"id": product.ID, "name": product.Name})
	return &product, nil
}

// Update replaces the product's fields, keeping the listed existing media
// and appending any new uploads.
func (s *ProductService) Update(id string, input ProductInput, imageFiles, videoFiles []*multipart.FileHeader) (*models.Product, error) {
	newImages, newVideos, err := s.storeMedia(imageFiles, videoFiles)
	if err != nil {
		return nil, err
	}

	images := append(append([]string{}, input.ExistingImages...), newImages...)
	videos := append(append([]string{}, input.ExistingVideos...), newVideos...)

	var updated models.Product
	err = s.productRepo.Update(id, func(p *models.Product) {
		p.Name = input.Name
		p.Price = input.Price
		p.Category = input.Category
		p.Images = images
		p.Videos = videos
		p.Description = input.Description
		p.Sizes = input.Sizes
		p.Material = input.Material
		p.Work = input.Work
		p.WashCare = input.WashCare
		p.SKU = input.SKU
		p.Normalize()
		updated = *p
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	s.invalidate()
	return &updated, nil
}

func (s *ProductService) Delete(id string) error {
	if err := s.productRepo.Delete(id); err != nil {
		return err
	}

	s.invalidate()
	logger.Info("Product deleted", map[string]interface{}{"id": id})
	return nil
}

// nextID derives a millisecond timestamp id, bumping past any collision
// from rapid successive creates.
func (s *ProductService) nextID() (string, error) {
	candidate := time.Now().UnixMilli()
	for {
		id := strconv.FormatInt(candidate, 10)
		_, err := s.productRepo.GetByID(id)
		if errors.Is(err, repository.ErrNotFound) {
			return id, nil
		}
		if err != nil {
			return "", err
		}
		candidate++
	}
}

func (s *ProductService) storeMedia(imageFiles, videoFiles []*multipart.FileHeader) ([]string, []string, error) {
	var images, videos []string
	for _, file := range imageFiles {
		if file.Size == 0 {
			continue
		}
		path, err := s.uploads.SaveImage(file)
		if err != nil {
			return nil, nil, err
		}
		images = append(images, path)
	}
	for _, file := range videoFiles {
		if file.Size == 0 {
			continue
		}
		path, err := s.uploads.SaveVideo(file)
		if err != nil {
			return nil, nil, err
		}
		videos = append(videos, path)
	}
	return images, videos, nil
}

func (s *ProductService) invalidate() {
	if err := s.cache.InvalidateProducts(); err != nil {
		logger.Warn("Failed to invalidate product cache", map[string]interface{}{"error": err.Error()})
	}
}
