package service

import (
	"context"
	"fmt"
	"time"

	"prodrec-tf/internal/models"
	"prodrec-tf/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
)

type ProductService struct {
	products *repository.ProductRepository
}

func NewProductService(p *repository.ProductRepository) *ProductService {
	return &ProductService{products: p}
}

func (s *ProductService) Get(ctx context.Context, productID string) (*models.ProductDoc, error) {
	return s.products.GetByID(ctx, productID)
}

func (s *ProductService) List(ctx context.Context, limit, offset int) ([]models.ProductDoc, error) {
	return s.products.List(ctx, limit, offset)
}

func (s *ProductService) Create(ctx context.Context, req models.ProductCreateRequest) (*models.ProductDoc, error) {
	if req.ProductID == "" || req.Name == "" {
		return nil, fmt.Errorf("productId y name requeridos")
	}

	existing, err := s.products.GetByID(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("producto %s ya existe", req.ProductID)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	p := &models.ProductDoc{
		ProductID: req.ProductID,
		Name:      req.Name,
		ImageURL:  req.ImageURL,
		Category:  req.Category,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.products.Insert(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *ProductService) Update(ctx context.Context, productID string, req models.ProductUpdateRequest) error {
	update := bson.M{}
	if req.Name != nil {
		if *req.Name == "" {
			return fmt.Errorf("name no puede ser vacío")
		}
		update["name"] = *req.Name
	}
	if req.ImageURL != nil {
		update["imageUrl"] = *req.ImageURL
	}
	if req.Category != nil {
		update["category"] = *req.Category
	}
	if len(update) == 0 {
		return fmt.Errorf("no fields to update")
	}
	return s.products.UpdateByID(ctx, productID, update)
}
