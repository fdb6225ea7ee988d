package recommender

import "prodrec-tf/internal/models"

// RatingMatrix es la matriz densa producto × usuario. 0.0 significa
// "sin rating" (el agregador interpreta rating > 0 como "lo valoró").
// El orden de filas/columnas es el de primera aparición en el slice de
// interacciones; no tiene significado semántico.
type RatingMatrix struct {
	ProductIDs []string
	UserIDs    []string

	productIdx map[string]int
	userIdx    map[string]int

	// Rows[i][j] = rating del producto i por el usuario j
	Rows [][]float64
}

// BuildRatingMatrix pivotea las interacciones filtradas a la matriz densa.
// Si hay varias interacciones para la misma celda (producto, usuario) se
// promedian: regla determinista, en vez de depender del orden de iteración.
func BuildRatingMatrix(interactions []models.Interaction) *RatingMatrix {
	m := &RatingMatrix{
		productIdx: make(map[string]int),
		userIdx:    make(map[string]int),
	}

	for _, it := range interactions {
		if _, ok := m.productIdx[it.ProductID]; !ok {
			m.productIdx[it.ProductID] = len(m.ProductIDs)
			m.ProductIDs = append(m.ProductIDs, it.ProductID)
		}
		if _, ok := m.userIdx[it.UserID]; !ok {
			m.userIdx[it.UserID] = len(m.UserIDs)
			m.UserIDs = append(m.UserIDs, it.UserID)
		}
	}

	p, u := len(m.ProductIDs), len(m.UserIDs)
	m.Rows = make([][]float64, p)
	counts := make([][]int, p)
	for i := 0; i < p; i++ {
		m.Rows[i] = make([]float64, u)
		counts[i] = make([]int, u)
	}

	// acumular y luego dividir por el conteo de cada celda
	for _, it := range interactions {
		i := m.productIdx[it.ProductID]
		j := m.userIdx[it.UserID]
		m.Rows[i][j] += it.Rating
		counts[i][j]++
	}
	for i := 0; i < p; i++ {
		for j := 0; j < u; j++ {
			if counts[i][j] > 1 {
				m.Rows[i][j] /= float64(counts[i][j])
			}
		}
	}

	return m
}

// UserIndex devuelve la columna de un usuario, si existe.
func (m *RatingMatrix) UserIndex(userID string) (int, bool) {
	j, ok := m.userIdx[userID]
	return j, ok
}

// ProductIndex devuelve la fila de un producto, si existe.
func (m *RatingMatrix) ProductIndex(productID string) (int, bool) {
	i, ok := m.productIdx[productID]
	return i, ok
}

func (m *RatingMatrix) NumProducts() int { return len(m.ProductIDs) }
func (m *RatingMatrix) NumUsers() int    { return len(m.UserIDs) }
