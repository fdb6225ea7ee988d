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

type ProductRepository struct {
	col *mongo.Collection
}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{col: db.DB().Collection("products")}
}

func (r *ProductRepository) GetByID(ctx context.Context, productID string) (*models.ProductDoc, error) {
	var p models.ProductDoc
	err := r.col.FindOne(ctx, bson.M{"productId": productID}).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &p, err
}

func (r *ProductRepository) Insert(ctx context.Context, p *models.ProductDoc) error {
	_, err := r.col.InsertOne(ctx, p)
	return err
}

// Upsert crea o pisa la entrada del catálogo (lo usa el seed del ingest).
func (r *ProductRepository) Upsert(ctx context.Context, p *models.ProductDoc) error {
	_, err := r.col.UpdateOne(ctx,
		bson.M{"productId": p.ProductID},
		bson.M{"$set": p},
		options.Update().SetUpsert(true),
	)
	return err
}

// UpdateByID aplica un $set parcial sobre el producto.
func (r *ProductRepository) UpdateByID(ctx context.Context, productID string, update bson.M) error {
	update["updatedAt"] = time.Now().UTC().Format(time.RFC3339)
	res, err := r.col.UpdateOne(ctx,
		bson.M{"productId": productID},
		bson.M{"$set": update},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *ProductRepository) List(ctx context.Context, limit, offset int) ([]models.ProductDoc, error) {
	cur, err := r.col.Find(ctx, bson.M{},
		options.Find().SetLimit(int64(limit)).SetSkip(int64(offset)),
	)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.ProductDoc
	for cur.Next(ctx) {
		var p models.ProductDoc
		if err := cur.Decode(&p); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, cur.Err()
}
