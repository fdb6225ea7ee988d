package repository

import (
	"context"
	"time"

	"prodrec-tf/internal/db"
	"prodrec-tf/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type InteractionRepository struct {
	col *mongo.Collection
}

func NewInteractionRepository() *InteractionRepository {
	return &InteractionRepository{col: db.DB().Collection("interactions")}
}

// Load trae TODAS las interacciones; implementa dataset.Source para que
// el modelo pueda construirse desde Mongo en vez del CSV.
func (r *InteractionRepository) Load(ctx context.Context) ([]models.Interaction, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Interaction
	for cur.Next(ctx) {
		var it models.Interaction
		if err := cur.Decode(&it); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, cur.Err()
}

// InsertBatch inserta un lote (lo usa cmd/ingest).
func (r *InteractionRepository) InsertBatch(ctx context.Context, batch []models.Interaction) error {
	if len(batch) == 0 {
		return nil
	}
	docs := make([]any, len(batch))
	for i, it := range batch {
		docs[i] = it
	}
	_, err := r.col.InsertMany(ctx, docs, options.InsertMany().SetOrdered(false))
	return err
}

// Upsert guarda el rating de un usuario sobre un producto; pisa el
// anterior si existía. Entra al modelo recién en el próximo rebuild.
func (r *InteractionRepository) Upsert(ctx context.Context, userID, productID string, rating float64) error {
	_, err := r.col.UpdateOne(ctx,
		bson.M{"userId": userID, "productId": productID},
		bson.M{"$set": bson.M{
			"rating":    rating,
			"timestamp": time.Now().Unix(),
		}},
		options.Update().SetUpsert(true),
	)
	return err
}

func (r *InteractionRepository) GetByUser(ctx context.Context, userID string, limit, offset int) ([]models.Interaction, error) {
	cur, err := r.col.Find(ctx,
		bson.M{"userId": userID},
		options.Find().SetLimit(int64(limit)).SetSkip(int64(offset)),
	)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Interaction
	for cur.Next(ctx) {
		var it models.Interaction
		if err := cur.Decode(&it); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, cur.Err()
}

func (r *InteractionRepository) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}
