package repository

import (
	"errors"
	"os"

	"sheweds-backend/internal/models"
)

const productsFile = "products.json"

type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	SaveAll(products []models.Product) error
	Create(product models.Product) error
	Update(id string, update func(*models.Product)) error
	Delete(id string) error
}

type productRepository struct {
	store *DocStore
}

func NewProductRepository(store *DocStore) ProductRepository {
	return &productRepository{store: store}
}

func (r *productRepository) GetAll() ([]models.Product, error) {
	var products []models.Product
	if err := r.store.Load(productsFile, &products); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []models.Product{}, nil
		}
		return nil, err
	}

	for i := range products {
		products[i].Normalize()
	}
	return products, nil
}

func (r *productRepository) GetByID(id string) (*models.Product, error) {
	products, err := r.GetAll()
	if err != nil {
		return nil, err
	}

	for i := range products {
		if products[i].ID == id {
			return &products[i], nil
		}
	}
	return nil, ErrNotFound
}

func (r *productRepository) SaveAll(products []models.Product) error {
	return r.store.Save(productsFile, products)
}

func (r *productRepository) Create(product models.Product) error {
	products, err := r.GetAll()
	if err != nil {
		return err
	}

	products = append(products, product)
	return r.SaveAll(products)
}

func (r *productRepository) Update(id string, update func(*models.Product)) error {
	products, err := r.GetAll()
	if err != nil {
		return err
	}

	for i := range products {
		if products[i].ID == id {
			update(&products[i])
			return r.SaveAll(products)
		}
	}
	return ErrNotFound
}

func (r *productRepository) Delete(id string) error {
	products, err := r.GetAll()
	if err != nil {
		return err
	}

	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if p.ID != id {
			filtered = append(filtered, p)
		}
	}
	return r.SaveAll(filtered)
}
