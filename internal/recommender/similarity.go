package recommender

import (
	"math"
	"runtime"
	"sync"
)

// SimilarityMatrix es la matriz cuadrada producto × producto de similitud
// coseno. Simétrica; comparte el orden de productos con la RatingMatrix
// de la que se construyó.
type SimilarityMatrix struct {
	ProductIDs []string
	productIdx map[string]int
	Rows       [][]float64
}

// Row devuelve la fila de similitudes de un producto, si existe.
func (s *SimilarityMatrix) Row(productID string) ([]float64, bool) {
	i, ok := s.productIdx[productID]
	if !ok {
		return nil, false
	}
	return s.Rows[i], true
}

// CosineSimilarity calcula la similitud coseno entre todas las filas de la
// matriz de ratings: se normaliza cada fila y después cada par es un producto
// punto (equivalente a u·v/(|u||v|), pero sin recalcular normas por par).
// Una fila toda en cero (producto sin ratings) da similitud 0 contra todo,
// incluida su propia diagonal, para no dividir por cero.
//
// Solo se computa el triángulo superior; la mitad espejo se copia. Las filas
// se reparten entre NumCPU workers con goroutines + WaitGroup.
func CosineSimilarity(m *RatingMatrix) *SimilarityMatrix {
	p := m.NumProducts()

	sim := &SimilarityMatrix{
		ProductIDs: m.ProductIDs,
		productIdx: m.productIdx,
		Rows:       make([][]float64, p),
	}
	for i := 0; i < p; i++ {
		sim.Rows[i] = make([]float64, p)
	}
	if p == 0 {
		return sim
	}

	normalized := make([][]float64, p)
	for i := 0; i < p; i++ {
		normalized[i] = normalizeRow(m.Rows[i])
	}

	workers := runtime.NumCPU()
	if workers > p {
		workers = p
	}

	rowCh := make(chan int)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range rowCh {
				for j := i; j < p; j++ {
					d := dot(normalized[i], normalized[j])
					sim.Rows[i][j] = d
					sim.Rows[j][i] = d
				}
			}
		}()
	}

	for i := 0; i < p; i++ {
		rowCh <- i
	}
	close(rowCh)
	wg.Wait()

	return sim
}

// normalizeRow devuelve una copia de v con norma 1 (o toda en cero si |v|=0).
func normalizeRow(v []float64) []float64 {
	var s float64
	for _, x := range v {
		s += x * x
	}
	out := make([]float64, len(v))
	if s == 0 {
		return out
	}
	inv := 1.0 / math.Sqrt(s)
	for i, x := range v {
		out[i] = x * inv
	}
	return out
}

func dot(a, b []float64) float64 {
	var s float64
	for i := 0; i < len(a); i++ {
		s += a[i] * b[i]
	}
	return s
}
