package repository

import (
	"errors"
	"os"
	"sort"

	"sheweds-backend/internal/models"
)

const pagesFile = "pages.json"

type PageRepository interface {
	GetAll() ([]models.PageConfig, error)
	GetBySlug(slug string) (*models.PageConfig, error)
	Save(config models.PageConfig) error
	ReplaceAll(pages map[string]models.PageConfig) error
	Delete(id string) error
}

type pageRepository struct {
	store *DocStore
}

func NewPageRepository(store *DocStore) PageRepository {
	return &pageRepository{store: store}
}

func (r *pageRepository) loadAll() (map[string]models.PageConfig, error) {
	pages := make(map[string]models.PageConfig)
	if err := r.store.Load(pagesFile, &pages); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return pages, nil
		}
		return nil, err
	}
	return pages, nil
}

func (r *pageRepository) GetAll() ([]models.PageConfig, error) {
	pages, err := r.loadAll()
	if err != nil {
		return nil, err
	}

	result := make([]models.PageConfig, 0, len(pages))
	for _, page := range pages {
		result = append(result, page)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Slug < result[j].Slug
	})
	return result, nil
}

func (r *pageRepository) GetBySlug(slug string) (*models.PageConfig, error) {
	pages, err := r.loadAll()
	if err != nil {
		return nil, err
	}

	for _, page := range pages {
		if page.Slug == slug {
			found := page
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

// Save overwrites the page keyed by its id. The read-modify-write sequence
// has no concurrency control: if two editors save at once, the later rename
// wins the whole document.
func (r *pageRepository) Save(config models.PageConfig) error {
	pages, err := r.loadAll()
	if err != nil {
		return err
	}

	pages[config.ID] = config
	return r.store.Save(pagesFile, pages)
}

// ReplaceAll swaps the entire pages document, used by backup restore.
func (r *pageRepository) ReplaceAll(pages map[string]models.PageConfig) error {
	if pages == nil {
		pages = map[string]models.PageConfig{}
	}
	return r.store.Save(pagesFile, pages)
}

func (r *pageRepository) Delete(id string) error {
	pages, err := r.loadAll()
	if err != nil {
		return err
	}

	delete(pages, id)
	return r.store.Save(pagesFile, pages)
}
