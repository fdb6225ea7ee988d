package service

import (
	"context"
	"fmt"

	"prodrec-tf/internal/models"
	"prodrec-tf/internal/repository"
)

type InteractionService struct {
	interactions *repository.InteractionRepository
	products     *repository.ProductRepository
}

func NewInteractionService(
	i *repository.InteractionRepository,
	p *repository.ProductRepository,
) *InteractionService {
	return &InteractionService{interactions: i, products: p}
}

// AddOrUpdate guarda el rating del usuario sobre un producto. No toca el
// modelo en memoria: las interacciones nuevas entran recién en el próximo
// rebuild (/admin/model/rebuild), el modelo no es incremental.
func (s *InteractionService) AddOrUpdate(ctx context.Context, userID, productID string, rating float64) error {
	if rating < 1 || rating > 5 {
		return fmt.Errorf("rating fuera de rango [1,5]: %v", rating)
	}

	// el producto tiene que existir en el catálogo
	p, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return err
	}
	if p == nil {
		return fmt.Errorf("producto %s no encontrado", productID)
	}

	return s.interactions.Upsert(ctx, userID, productID, rating)
}

func (s *InteractionService) GetByUser(ctx context.Context, userID string, limit, offset int) ([]models.Interaction, error) {
	return s.interactions.GetByUser(ctx, userID, limit, offset)
}
