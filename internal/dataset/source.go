// Package dataset abstrae el origen de las interacciones crudas.
// Al recomendador no le importa de dónde salen: solo necesita el slice
// de (user, product, rating, timestamp).
package dataset

import (
	"context"

	"prodrec-tf/internal/models"
)

// Source es cualquier origen de interacciones (CSV local, Mongo, etc.).
type Source interface {
	Load(ctx context.Context) ([]models.Interaction, error)
}
