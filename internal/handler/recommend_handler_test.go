package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"prodrec-tf/internal/models"
	"prodrec-tf/internal/recommender"
	"prodrec-tf/internal/service"

	"github.com/go-chi/chi/v5"
)

type memorySource struct {
	interactions []models.Interaction
}

func (s *memorySource) Load(ctx context.Context) ([]models.Interaction, error) {
	return s.interactions, nil
}

func newTestRouter(t *testing.T, build bool) *chi.Mux {
	t.Helper()

	src := &memorySource{interactions: []models.Interaction{
		{UserID: "u1", ProductID: "pA", Rating: 5},
		{UserID: "u1", ProductID: "pB", Rating: 4},
		{UserID: "u2", ProductID: "pA", Rating: 5},
		{UserID: "u2", ProductID: "pC", Rating: 5},
		{UserID: "u3", ProductID: "pB", Rating: 5},
		{UserID: "u3", ProductID: "pC", Rating: 4},
	}}
	opts := recommender.BuildOptions{MinInteractionsUser: 1, MinInteractionsProduct: 1}
	svc := service.NewRecommendService(src, "test", opts, nil, nil)

	if build {
		if err := svc.BuildModel(context.Background()); err != nil {
			t.Fatalf("BuildModel: %v", err)
		}
	}

	h := NewRecommendHandler(svc)
	r := chi.NewRouter()
	r.Get("/recommendations/{id}", h.GetRecommendations)
	r.Get("/users", h.GetModelUsers)
	return r
}

func doGet(t *testing.T, r http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGetRecommendationsModeloNoListo(t *testing.T) {
	r := newTestRouter(t, false)

	w := doGet(t, r, "/recommendations/u1")
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, esperaba 503", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("respuesta no es JSON: %v", err)
	}
	if body["message"] != "model not ready" {
		t.Errorf("message = %q", body["message"])
	}
}

func TestGetRecommendationsUsuarioDesconocido(t *testing.T) {
	r := newTestRouter(t, true)

	w := doGet(t, r, "/recommendations/fantasma")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, esperaba 404", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(body["message"], "fantasma") {
		t.Errorf("el mensaje debería nombrar al usuario: %q", body["message"])
	}
}

func TestGetRecommendationsOK(t *testing.T) {
	r := newTestRouter(t, true)

	w := doGet(t, r, "/recommendations/u1?k=5")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Errorf("Content-Type = %q", ct)
	}

	var items []models.RecommendedProduct
	if err := json.Unmarshal(w.Body.Bytes(), &items); err != nil {
		t.Fatalf("respuesta no parsea: %v\n%s", err, w.Body.String())
	}
	if len(items) != 1 || items[0].ProductID != "pC" {
		t.Fatalf("items = %v, esperaba solo pC", items)
	}
	// sin catálogo Mongo el nombre viene del fallback
	if items[0].Name != "Product pC" {
		t.Errorf("Name = %q", items[0].Name)
	}
	if items[0].Score <= 0 {
		t.Errorf("Score = %v, esperaba positivo", items[0].Score)
	}
}

func TestGetRecommendationsKInvalido(t *testing.T) {
	r := newTestRouter(t, true)

	// k no numérico y k gigante no rompen: se normalizan
	for _, path := range []string{
		"/recommendations/u1?k=abc",
		"/recommendations/u1?k=99999",
	} {
		if w := doGet(t, r, path); w.Code != http.StatusOK {
			t.Errorf("%s: status = %d, esperaba 200", path, w.Code)
		}
	}
}

func TestGetModelUsers(t *testing.T) {
	r := newTestRouter(t, true)

	w := doGet(t, r, "/users")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var users []string
	if err := json.Unmarshal(w.Body.Bytes(), &users); err != nil {
		t.Fatal(err)
	}
	if len(users) != 3 {
		t.Errorf("users = %v, esperaba 3", users)
	}
}

func TestGetModelUsersSinModelo(t *testing.T) {
	r := newTestRouter(t, false)

	if w := doGet(t, r, "/users"); w.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, esperaba 503", w.Code)
	}
}
