package recommender

import (
	"math"
	"testing"
)

const simTol = 1e-9

func TestCosineSimilarity(t *testing.T) {
	// pA=[1,0], pB=[1,1] → sim = 1/√2
	in := ints(
		[3]any{"u1", "pA", 1.0},
		[3]any{"u1", "pB", 1.0},
		[3]any{"u2", "pB", 1.0},
	)
	m := BuildRatingMatrix(in)
	sim := CosineSimilarity(m)

	row, ok := sim.Row("pA")
	if !ok {
		t.Fatal("pA sin fila de similitud")
	}
	j, _ := m.ProductIndex("pB")
	want := 1.0 / math.Sqrt2
	if math.Abs(row[j]-want) > simTol {
		t.Errorf("sim(pA,pB) = %v, esperaba %v", row[j], want)
	}
}

func TestCosineSimilaritySimetriaYDiagonal(t *testing.T) {
	in := ints(
		[3]any{"u1", "pA", 5.0},
		[3]any{"u1", "pB", 4.0},
		[3]any{"u2", "pA", 5.0},
		[3]any{"u2", "pC", 5.0},
		[3]any{"u3", "pB", 5.0},
		[3]any{"u3", "pC", 4.0},
	)
	m := BuildRatingMatrix(in)
	sim := CosineSimilarity(m)

	p := m.NumProducts()
	for i := 0; i < p; i++ {
		// diagonal == 1 para vectores no nulos
		if math.Abs(sim.Rows[i][i]-1.0) > simTol {
			t.Errorf("sim(%s,%s) = %v, esperaba 1.0", sim.ProductIDs[i], sim.ProductIDs[i], sim.Rows[i][i])
		}
		for j := 0; j < p; j++ {
			if math.Abs(sim.Rows[i][j]-sim.Rows[j][i]) > simTol {
				t.Errorf("asimetría: sim[%d][%d]=%v != sim[%d][%d]=%v",
					i, j, sim.Rows[i][j], j, i, sim.Rows[j][i])
			}
			if sim.Rows[i][j] < -simTol || sim.Rows[i][j] > 1+simTol {
				t.Errorf("sim[%d][%d]=%v fuera de [0,1] para ratings no negativos", i, j, sim.Rows[i][j])
			}
		}
	}
}

func TestCosineSimilarityFilaCero(t *testing.T) {
	// una fila toda en cero no puede romper con división por cero:
	// similitud 0 contra todo, incluida la diagonal
	m := &RatingMatrix{
		ProductIDs: []string{"pA", "pZ"},
		UserIDs:    []string{"u1"},
		productIdx: map[string]int{"pA": 0, "pZ": 1},
		userIdx:    map[string]int{"u1": 0},
		Rows:       [][]float64{{5.0}, {0.0}},
	}

	sim := CosineSimilarity(m)
	row, _ := sim.Row("pZ")
	for j, v := range row {
		if v != 0.0 {
			t.Errorf("fila cero: sim[pZ][%d]=%v, esperaba 0", j, v)
		}
	}
}

func TestCosineSimilarityMatrizVacia(t *testing.T) {
	sim := CosineSimilarity(BuildRatingMatrix(nil))
	if len(sim.Rows) != 0 {
		t.Errorf("matriz vacía produjo %d filas", len(sim.Rows))
	}
}
