package recommender

import "prodrec-tf/internal/models"

// FilterSparse descarta usuarios y productos con pocas interacciones para
// controlar la dispersión del dataset. Los conteos se toman UNA sola vez
// sobre el conjunto sin filtrar (una pasada, sin re-filtrado iterativo):
// un producto que solo llega al umbral gracias a usuarios luego excluidos
// igual sobrevive. Es el mismo criterio que usamos al limpiar el CSV.
func FilterSparse(interactions []models.Interaction, minUser, minProduct int) []models.Interaction {
	if len(interactions) == 0 {
		return nil
	}

	userCounts := make(map[string]int)
	productCounts := make(map[string]int)
	for _, it := range interactions {
		userCounts[it.UserID]++
		productCounts[it.ProductID]++
	}

	out := make([]models.Interaction, 0, len(interactions))
	for _, it := range interactions {
		if userCounts[it.UserID] >= minUser && productCounts[it.ProductID] >= minProduct {
			out = append(out, it)
		}
	}
	return out
}
