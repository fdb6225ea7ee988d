package models

import "time"

// RecItem es el par (producto, score) que produce el agregador.
type RecItem struct {
	ProductID string  `bson:"productId" json:"productId"`
	Score     float64 `bson:"score"     json:"score"`
}

// RecommendedProduct es lo que devolvemos por API: RecItem formateado
// con los metadatos del catálogo (o el fallback si no está).
type RecommendedProduct struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	ImageURL  string  `json:"imageUrl"`
	Score     float64 `json:"score"`
}

// Recommendation es el historial que guardamos en Mongo cada vez
// que servimos una lista (best-effort, no bloquea la respuesta).
type Recommendation struct {
	ID               string    `bson:"_id,omitempty"    json:"id"`
	UserID           string    `bson:"userId"           json:"userId"`
	Algo             string    `bson:"algo"             json:"algo"`
	SimilarityMetric string    `bson:"similarityMetric" json:"similarityMetric"`
	Params           any       `bson:"params"           json:"params"`
	Items            []RecItem `bson:"items"            json:"items"`
	CreatedAt        time.Time `bson:"createdAt"        json:"createdAt"`
}

// ModelStatus resume el estado del modelo en memoria (para /admin/model/status).
type ModelStatus struct {
	Ready      bool      `json:"ready"`
	Products   int       `json:"products"`
	Users      int       `json:"users"`
	BuiltAt    time.Time `json:"builtAt,omitempty"`
	DataSource string    `json:"dataSource"`
	Params     any       `json:"params,omitempty"`
}
