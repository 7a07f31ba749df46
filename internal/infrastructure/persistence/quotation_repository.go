package persistence

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/prodsheet/backend/internal/domain/quotation"
	"github.com/prodsheet/backend/internal/domain/shared"
)

// MongoQuotationRepository implements quotation.QuotationRepository
type MongoQuotationRepository struct {
	coll *mongo.Collection
}

// NewMongoQuotationRepository creates a new quotation repository
func NewMongoQuotationRepository(db *Database) *MongoQuotationRepository {
	return &MongoQuotationRepository{coll: db.Collection("quotations")}
}

func (r *MongoQuotationRepository) FindAll(ctx context.Context) ([]quotation.Quotation, error) {
	opts := options.Find().
		SetProjection(bson.M{"_id": 0}).
		SetLimit(listCap)
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find quotations: %w", err)
	}
	defer cursor.Close(ctx)

	quotations := make([]quotation.Quotation, 0)
	if err := cursor.All(ctx, &quotations); err != nil {
		return nil, fmt.Errorf("failed to decode quotations: %w", err)
	}
	return quotations, nil
}

func (r *MongoQuotationRepository) FindByID(ctx context.Context, id string) (*quotation.Quotation, error) {
	opts := options.FindOne().SetProjection(bson.M{"_id": 0})
	var q quotation.Quotation
	err := r.coll.FindOne(ctx, bson.M{"id": id}, opts).Decode(&q)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, shared.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find quotation: %w", err)
	}
	return &q, nil
}

func (r *MongoQuotationRepository) Insert(ctx context.Context, q *quotation.Quotation) error {
	if _, err := r.coll.InsertOne(ctx, q); err != nil {
		return fmt.Errorf("failed to insert quotation: %w", err)
	}
	return nil
}

func (r *MongoQuotationRepository) UpdateFields(ctx context.Context, id string, fields map[string]any) error {
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("failed to update quotation: %w", err)
	}
	if result.MatchedCount == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *MongoQuotationRepository) Delete(ctx context.Context, id string) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete quotation: %w", err)
	}
	if result.DeletedCount == 0 {
		return shared.ErrNotFound
	}
	return nil
}
