package recommender

import (
	"math/rand"
	"sort"
	"time"

	"prodrec-tf/internal/models"
)

const (
	DefaultK = 5
	MaxK     = 50 // por seguridad, no deja pedir 1000 ítems
)

// BuildOptions son los parámetros del pipeline de construcción.
type BuildOptions struct {
	MinInteractionsUser    int
	MinInteractionsProduct int

	// SampleSize > 0: muestra aleatoria (con semilla) antes de filtrar,
	// para acotar memoria. 0 = usar todo el dataset.
	SampleSize int
	SampleSeed int64

	// MaxMatrixCells > 0: límite de productos × usuarios de la matriz densa.
	MaxMatrixCells int
}

// Model contiene las dos matrices en memoria. Es inmutable después de
// Build: Recommend es una lectura pura y puede llamarse concurrentemente
// sin locks. Nada de estado global: el Model se construye una vez y se
// pasa explícito a la capa de servicio.
type Model struct {
	ratings *RatingMatrix
	sims    *SimilarityMatrix
	opts    BuildOptions
	builtAt time.Time
}

// Build corre el pipeline completo: muestreo → filtrado → matriz de
// ratings → matriz de similitud. Devuelve error (no un modelo a medias)
// si no queda ninguna interacción o si la matriz excede el límite.
func Build(interactions []models.Interaction, opts BuildOptions) (*Model, error) {
	if len(interactions) == 0 {
		return nil, ErrEmptyDataset
	}

	if opts.SampleSize > 0 && len(interactions) > opts.SampleSize {
		interactions = sampleInteractions(interactions, opts.SampleSize, opts.SampleSeed)
	}

	filtered := FilterSparse(interactions, opts.MinInteractionsUser, opts.MinInteractionsProduct)
	if len(filtered) == 0 {
		return nil, ErrEmptyDataset
	}

	ratings := BuildRatingMatrix(filtered)
	if opts.MaxMatrixCells > 0 && ratings.NumProducts()*ratings.NumUsers() > opts.MaxMatrixCells {
		return nil, &MatrixTooLargeError{
			Products: ratings.NumProducts(),
			Users:    ratings.NumUsers(),
			MaxCells: opts.MaxMatrixCells,
		}
	}

	sims := CosineSimilarity(ratings)

	return &Model{
		ratings: ratings,
		sims:    sims,
		opts:    opts,
		builtAt: time.Now(),
	}, nil
}

// sampleInteractions toma n elementos al azar con semilla fija, y los
// devuelve en el orden original del slice para que el resultado sea
// reproducible de punta a punta.
func sampleInteractions(interactions []models.Interaction, n int, seed int64) []models.Interaction {
	rnd := rand.New(rand.NewSource(seed))
	picked := rnd.Perm(len(interactions))[:n]
	sort.Ints(picked)

	out := make([]models.Interaction, 0, n)
	for _, i := range picked {
		out = append(out, interactions[i])
	}
	return out
}

// Recommend genera el top-K para un usuario: cada producto valorado "vota"
// por sus similares con peso sim * rating, se excluye lo ya valorado y se
// ordena por score descendente (empates por productId ascendente, para que
// el orden sea un orden total determinista).
func (m *Model) Recommend(userID string, k int) ([]models.RecItem, error) {
	if m == nil || m.ratings == nil || m.sims == nil {
		return nil, ErrModelNotReady
	}

	if k <= 0 {
		k = DefaultK
	} else if k > MaxK {
		k = MaxK
	}

	uIdx, ok := m.ratings.UserIndex(userID)
	if !ok {
		return nil, ErrUnknownUser
	}

	// productos valorados por el usuario, en orden de fila (determinista:
	// el orden de acumulación en float64 afecta los últimos bits del score)
	type ratedProduct struct {
		row    int
		rating float64
	}
	var rated []ratedProduct
	ratedIDs := make(map[string]bool)
	for i, row := range m.ratings.Rows {
		if row[uIdx] > 0 {
			rated = append(rated, ratedProduct{row: i, rating: row[uIdx]})
			ratedIDs[m.ratings.ProductIDs[i]] = true
		}
	}

	scores := make(map[string]float64)
	for _, rp := range rated {
		simRow, ok := m.sims.Row(m.ratings.ProductIDs[rp.row])
		if !ok {
			// producto sin fila de similitud: se salta, no es fatal
			continue
		}
		for qIdx, s := range simRow {
			scores[m.sims.ProductIDs[qIdx]] += s * rp.rating
		}
	}

	// excluir lo que el usuario ya valoró
	for id := range ratedIDs {
		delete(scores, id)
	}

	items := make([]models.RecItem, 0, len(scores))
	for id, sc := range scores {
		items = append(items, models.RecItem{ProductID: id, Score: sc})
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].Score != items[j].Score {
			return items[i].Score > items[j].Score
		}
		return items[i].ProductID < items[j].ProductID
	})

	if len(items) > k {
		items = items[:k]
	}
	return items, nil
}

// HasUser indica si el usuario tiene columna en la matriz.
func (m *Model) HasUser(userID string) bool {
	if m == nil || m.ratings == nil {
		return false
	}
	_, ok := m.ratings.UserIndex(userID)
	return ok
}

// UserIDs devuelve los ids de usuario presentes en el modelo.
func (m *Model) UserIDs() []string {
	if m == nil || m.ratings == nil {
		return nil
	}
	return m.ratings.UserIDs
}

// Dimensions devuelve (productos, usuarios) de la matriz de ratings.
func (m *Model) Dimensions() (int, int) {
	if m == nil || m.ratings == nil {
		return 0, 0
	}
	return m.ratings.NumProducts(), m.ratings.NumUsers()
}

func (m *Model) BuiltAt() time.Time {
	if m == nil {
		return time.Time{}
	}
	return m.builtAt
}

func (m *Model) Options() BuildOptions {
	if m == nil {
		return BuildOptions{}
	}
	return m.opts
}
