package models

// Interaction es una fila limpia del dataset de Amazon Electronics:
// (user_id, product_id, rating, timestamp). Es lo que está en Mongo
// y también lo que produce el parser CSV.
type Interaction struct {
	UserID    string  `json:"userId" bson:"userId"`
	ProductID string  `json:"productId" bson:"productId"`
	Rating    float64 `json:"rating" bson:"rating"`
	Timestamp int64   `json:"timestamp" bson:"timestamp"`
}
