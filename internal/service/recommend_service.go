package service

import (
	"context"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"prodrec-tf/internal/cache"
	"prodrec-tf/internal/dataset"
	"prodrec-tf/internal/models"
	"prodrec-tf/internal/recommender"
	"prodrec-tf/internal/repository"
)

// RecommendService es el dueño del modelo en memoria. El modelo se publica
// con un swap atómico de puntero: un rebuild nunca deja ver a las requests
// en vuelo una mezcla de matrices viejas y nuevas.
type RecommendService struct {
	model atomic.Pointer[recommender.Model]

	source     dataset.Source
	sourceName string
	buildOpts  recommender.BuildOptions

	products *repository.ProductRepository
	recRepo  *repository.RecommendationRepository
}

func NewRecommendService(
	source dataset.Source,
	sourceName string,
	opts recommender.BuildOptions,
	products *repository.ProductRepository,
	recRepo *repository.RecommendationRepository,
) *RecommendService {
	return &RecommendService{
		source:     source,
		sourceName: sourceName,
		buildOpts:  opts,
		products:   products,
		recRepo:    recRepo,
	}
}

// BuildModel carga las interacciones del origen, construye las dos matrices
// y publica el modelo. Se llama una vez al arranque (fatal si falla) y
// desde /admin/model/rebuild (ahí el error se devuelve al admin).
func (s *RecommendService) BuildModel(ctx context.Context) error {
	start := time.Now()

	interactions, err := s.source.Load(ctx)
	if err != nil {
		return fmt.Errorf("cargando interacciones (%s): %w", s.sourceName, err)
	}

	m, err := recommender.Build(interactions, s.buildOpts)
	if err != nil {
		return fmt.Errorf("construyendo modelo: %w", err)
	}

	s.model.Store(m)

	p, u := m.Dimensions()
	log.Printf("[recommend] modelo publicado: %d productos x %d usuarios (en %s)\n",
		p, u, time.Since(start).Round(time.Millisecond))
	return nil
}

type RecRequest struct {
	UserID  string
	K       int
	Refresh bool
}

func cacheKey(req RecRequest) string {
	// cachea por usuario + k (refresh solo decide si se usa el cache)
	return fmt.Sprintf("rec:user:%s:k:%d", req.UserID, req.K)
}

// Recommend devuelve el top-K crudo para un usuario. Propaga
// recommender.ErrModelNotReady y recommender.ErrUnknownUser para que el
// handler los traduzca a 503 / 404.
func (s *RecommendService) Recommend(ctx context.Context, req RecRequest) ([]models.RecItem, error) {
	if req.K <= 0 {
		req.K = recommender.DefaultK
	} else if req.K > recommender.MaxK {
		req.K = recommender.MaxK
	}

	m := s.model.Load()
	if m == nil {
		return nil, recommender.ErrModelNotReady
	}

	// 1) cache Redis (solo si refresh = false)
	var cached []models.RecItem
	if !req.Refresh {
		if ok, err := cache.GetJSON(ctx, cacheKey(req), &cached); err == nil && ok {
			return cached, nil
		}
	}

	// 2) agregación item-based sobre el modelo inmutable
	items, err := m.Recommend(req.UserID, req.K)
	if err != nil {
		return nil, err
	}

	// 3) historial en Mongo (best-effort, no rompe la respuesta)
	if s.recRepo != nil {
		hist := &models.Recommendation{
			UserID:           req.UserID,
			Algo:             "item-based",
			SimilarityMetric: "cosine",
			Params: map[string]any{
				"k":       req.K,
				"refresh": req.Refresh,
			},
			Items:     items,
			CreatedAt: time.Now(),
		}
		if err := s.recRepo.Insert(ctx, hist); err != nil {
			log.Printf("[recommend] error guardando historial en Mongo: %v", err)
		}
	}

	// 4) cachear en Redis (1 hora)
	if err := cache.SetJSON(ctx, cacheKey(req), items, 60*60); err != nil {
		log.Printf("[recommend] error cacheando en Redis: %v", err)
	}

	return items, nil
}

// Format enriquece los items con nombre/imagen del catálogo. Si el
// producto no está (o no hay catálogo), se usa el fallback documentado:
// "Product <id>" y una imagen placeholder.
func (s *RecommendService) Format(ctx context.Context, items []models.RecItem) []models.RecommendedProduct {
	out := make([]models.RecommendedProduct, 0, len(items))
	for _, it := range items {
		rp := models.RecommendedProduct{
			ProductID: it.ProductID,
			Name:      "Product " + it.ProductID,
			ImageURL:  "https://via.placeholder.com/150",
			Score:     it.Score,
		}
		if s.products != nil {
			if p, err := s.products.GetByID(ctx, it.ProductID); err == nil && p != nil {
				rp.Name = p.Name
				if p.ImageURL != "" {
					rp.ImageURL = p.ImageURL
				}
			}
		}
		out = append(out, rp)
	}
	return out
}

// ModelUsers lista los userIds presentes en el modelo (para el selector
// del frontend). ErrModelNotReady si todavía no hay modelo.
func (s *RecommendService) ModelUsers() ([]string, error) {
	m := s.model.Load()
	if m == nil {
		return nil, recommender.ErrModelNotReady
	}
	return m.UserIDs(), nil
}

// Status resume el modelo publicado.
func (s *RecommendService) Status() models.ModelStatus {
	m := s.model.Load()
	if m == nil {
		return models.ModelStatus{Ready: false, DataSource: s.sourceName}
	}
	p, u := m.Dimensions()
	opts := m.Options()
	return models.ModelStatus{
		Ready:      true,
		Products:   p,
		Users:      u,
		BuiltAt:    m.BuiltAt(),
		DataSource: s.sourceName,
		Params: map[string]any{
			"minInteractionsUser":    opts.MinInteractionsUser,
			"minInteractionsProduct": opts.MinInteractionsProduct,
			"sampleSize":             opts.SampleSize,
			"sampleSeed":             opts.SampleSeed,
		},
	}
}
