package recommender

import "testing"

func TestBuildRatingMatrix(t *testing.T) {
	in := ints(
		[3]any{"u1", "pA", 5.0},
		[3]any{"u1", "pB", 4.0},
		[3]any{"u2", "pA", 3.0},
	)

	m := BuildRatingMatrix(in)

	if m.NumProducts() != 2 || m.NumUsers() != 2 {
		t.Fatalf("dimensiones %dx%d, esperaba 2x2", m.NumProducts(), m.NumUsers())
	}

	get := func(p, u string) float64 {
		i, ok := m.ProductIndex(p)
		if !ok {
			t.Fatalf("producto %s sin fila", p)
		}
		j, ok := m.UserIndex(u)
		if !ok {
			t.Fatalf("usuario %s sin columna", u)
		}
		return m.Rows[i][j]
	}

	if got := get("pA", "u1"); got != 5.0 {
		t.Errorf("pA/u1 = %v, esperaba 5", got)
	}
	if got := get("pA", "u2"); got != 3.0 {
		t.Errorf("pA/u2 = %v, esperaba 3", got)
	}
	// celda sin rating es exactamente 0.0
	if got := get("pB", "u2"); got != 0.0 {
		t.Errorf("pB/u2 = %v, esperaba 0 (sin rating)", got)
	}
}

func TestBuildRatingMatrixDuplicadosPromedian(t *testing.T) {
	// dos ratings del mismo usuario sobre el mismo producto → promedio,
	// no "gana el último"
	in := ints(
		[3]any{"u1", "pA", 2.0},
		[3]any{"u1", "pA", 4.0},
	)

	m := BuildRatingMatrix(in)
	if m.NumProducts() != 1 || m.NumUsers() != 1 {
		t.Fatalf("dimensiones %dx%d, esperaba 1x1", m.NumProducts(), m.NumUsers())
	}
	if got := m.Rows[0][0]; got != 3.0 {
		t.Errorf("celda duplicada = %v, esperaba el promedio 3.0", got)
	}
}

func TestBuildRatingMatrixVacia(t *testing.T) {
	m := BuildRatingMatrix(nil)
	if m.NumProducts() != 0 || m.NumUsers() != 0 {
		t.Errorf("matriz de entrada vacía con dimensiones %dx%d", m.NumProducts(), m.NumUsers())
	}
}
