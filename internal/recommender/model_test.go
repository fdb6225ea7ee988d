package recommender

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"prodrec-tf/internal/models"
)

// escenario de referencia: u1 y u2 comparten pA, u1 y u3 comparten pB,
// y pC está bien valorado por u2 y u3 → pC es el candidato natural para u1
func scenario() []models.Interaction {
	return ints(
		[3]any{"u1", "pA", 5.0},
		[3]any{"u1", "pB", 4.0},
		[3]any{"u2", "pA", 5.0},
		[3]any{"u2", "pC", 5.0},
		[3]any{"u3", "pB", 5.0},
		[3]any{"u3", "pC", 4.0},
	)
}

func buildScenario(t *testing.T) *Model {
	t.Helper()
	m, err := Build(scenario(), BuildOptions{
		MinInteractionsUser:    1,
		MinInteractionsProduct: 1,
	})
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	return m
}

func TestRecommendEscenarioCompleto(t *testing.T) {
	m := buildScenario(t)

	items, err := m.Recommend("u1", 2)
	if err != nil {
		t.Fatalf("Recommend() error: %v", err)
	}

	if len(items) != 1 {
		t.Fatalf("esperaba 1 item (solo pC es candidato), hay %d: %v", len(items), items)
	}
	if items[0].ProductID != "pC" {
		t.Fatalf("recomendó %s, esperaba pC", items[0].ProductID)
	}

	// score a mano: con columnas (u1,u2,u3) las filas son
	//   pA=[5,5,0], pB=[4,0,5], pC=[0,5,4]
	// sim(pA,pC) = 25/√2050, sim(pB,pC) = 20/41
	// score(pC) = 5·sim(pA,pC) + 4·sim(pB,pC)
	want := 125.0/math.Sqrt(2050.0) + 80.0/41.0
	if math.Abs(items[0].Score-want) > 1e-9 {
		t.Errorf("score(pC) = %v, esperaba %v", items[0].Score, want)
	}
}

func TestRecommendExcluyeValorados(t *testing.T) {
	m := buildScenario(t)

	for _, user := range []string{"u1", "u2", "u3"} {
		items, err := m.Recommend(user, 10)
		if err != nil {
			t.Fatalf("Recommend(%s) error: %v", user, err)
		}
		rated := map[string]bool{}
		for _, it := range scenario() {
			if it.UserID == user {
				rated[it.ProductID] = true
			}
		}
		for _, rec := range items {
			if rated[rec.ProductID] {
				t.Errorf("usuario %s: %s ya estaba valorado y fue recomendado", user, rec.ProductID)
			}
		}
	}
}

func TestRecommendTopKAcotado(t *testing.T) {
	m := buildScenario(t)

	for _, k := range []int{1, 2, 5} {
		items, err := m.Recommend("u1", k)
		if err != nil {
			t.Fatalf("Recommend(k=%d) error: %v", k, err)
		}
		if len(items) > k {
			t.Errorf("k=%d pero devolvió %d items", k, len(items))
		}
	}

	// k fuera de rango se normaliza, no explota
	if _, err := m.Recommend("u1", 0); err != nil {
		t.Errorf("k=0 debería usar el default, error: %v", err)
	}
	if _, err := m.Recommend("u1", 1000); err != nil {
		t.Errorf("k=1000 debería truncarse a MaxK, error: %v", err)
	}
}

func TestRecommendDeterminista(t *testing.T) {
	m := buildScenario(t)

	a, err := m.Recommend("u2", 5)
	if err != nil {
		t.Fatal(err)
	}
	b, err := m.Recommend("u2", 5)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Errorf("dos llamadas sobre el mismo modelo difieren:\n%v\n%v", a, b)
	}
}

func TestRecommendUsuarioFrio(t *testing.T) {
	m := buildScenario(t)

	items, err := m.Recommend("no-existe", 5)
	if !errors.Is(err, ErrUnknownUser) {
		t.Errorf("esperaba ErrUnknownUser, err=%v", err)
	}
	if len(items) != 0 {
		t.Errorf("usuario frío con items: %v", items)
	}
}

func TestRecommendModeloNil(t *testing.T) {
	var m *Model
	if _, err := m.Recommend("u1", 5); !errors.Is(err, ErrModelNotReady) {
		t.Errorf("esperaba ErrModelNotReady, err=%v", err)
	}
}

func TestBuildDatasetVacio(t *testing.T) {
	if _, err := Build(nil, BuildOptions{}); !errors.Is(err, ErrEmptyDataset) {
		t.Errorf("Build(nil): esperaba ErrEmptyDataset, err=%v", err)
	}

	// umbrales que eliminan todo también son ErrEmptyDataset, no un
	// modelo "listo" pero vacío
	_, err := Build(scenario(), BuildOptions{
		MinInteractionsUser:    100,
		MinInteractionsProduct: 100,
	})
	if !errors.Is(err, ErrEmptyDataset) {
		t.Errorf("umbrales imposibles: esperaba ErrEmptyDataset, err=%v", err)
	}
}

func TestBuildMatrizMuyGrande(t *testing.T) {
	_, err := Build(scenario(), BuildOptions{
		MinInteractionsUser:    1,
		MinInteractionsProduct: 1,
		MaxMatrixCells:         2, // 3x3 = 9 celdas > 2
	})

	var tooLarge *MatrixTooLargeError
	if !errors.As(err, &tooLarge) {
		t.Fatalf("esperaba MatrixTooLargeError, err=%v", err)
	}
	if tooLarge.Products != 3 || tooLarge.Users != 3 {
		t.Errorf("dimensiones reportadas %dx%d, esperaba 3x3", tooLarge.Products, tooLarge.Users)
	}
}

func TestBuildMuestreoReproducible(t *testing.T) {
	// dataset más grande que el sample: con la misma semilla el modelo
	// (y por lo tanto las recomendaciones) tiene que ser idéntico
	var in []models.Interaction
	in = append(in, scenario()...)
	in = append(in, scenario()...)
	in = append(in, scenario()...)

	opts := BuildOptions{
		MinInteractionsUser:    1,
		MinInteractionsProduct: 1,
		SampleSize:             12,
		SampleSeed:             42,
	}

	m1, err := Build(in, opts)
	if err != nil {
		t.Fatal(err)
	}
	m2, err := Build(in, opts)
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(m1.UserIDs(), m2.UserIDs()) {
		t.Fatalf("misma semilla, usuarios distintos: %v vs %v", m1.UserIDs(), m2.UserIDs())
	}
	for _, u := range m1.UserIDs() {
		a, err1 := m1.Recommend(u, 5)
		b, err2 := m2.Recommend(u, 5)
		if err1 != nil || err2 != nil {
			t.Fatalf("usuario %s: errores %v / %v", u, err1, err2)
		}
		if !reflect.DeepEqual(a, b) {
			t.Errorf("misma semilla produjo modelos distintos para %s:\n%v\n%v", u, a, b)
		}
	}
}

func TestModelUserIDs(t *testing.T) {
	m := buildScenario(t)

	users := m.UserIDs()
	if len(users) != 3 {
		t.Fatalf("UserIDs() = %v, esperaba 3 usuarios", users)
	}
	for _, u := range []string{"u1", "u2", "u3"} {
		if !m.HasUser(u) {
			t.Errorf("HasUser(%s) = false", u)
		}
	}
	if m.HasUser("otro") {
		t.Error("HasUser(otro) = true para un usuario inexistente")
	}
}
