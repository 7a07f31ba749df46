package persistence

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/prodsheet/backend/internal/domain/library"
	"github.com/prodsheet/backend/internal/domain/shared"
)

// MongoMaterialRepository implements library.MaterialRepository on a
// single swatch collection. Two instances exist, one for leather_library
// and one for finish_library.
type MongoMaterialRepository struct {
	coll *mongo.Collection
}

// NewMongoLeatherRepository creates a repository over the leather library
func NewMongoLeatherRepository(db *Database) *MongoMaterialRepository {
	return &MongoMaterialRepository{coll: db.Collection("leather_library")}
}

// NewMongoFinishRepository creates a repository over the finish library
func NewMongoFinishRepository(db *Database) *MongoMaterialRepository {
	return &MongoMaterialRepository{coll: db.Collection("finish_library")}
}

func (r *MongoMaterialRepository) FindAll(ctx context.Context) ([]library.MaterialItem, error) {
	opts := options.Find().
		SetProjection(bson.M{"_id": 0}).
		SetLimit(listCap)
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find materials: %w", err)
	}
	defer cursor.Close(ctx)

	items := make([]library.MaterialItem, 0)
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("failed to decode materials: %w", err)
	}
	return items, nil
}

func (r *MongoMaterialRepository) FindByID(ctx context.Context, id string) (*library.MaterialItem, error) {
	opts := options.FindOne().SetProjection(bson.M{"_id": 0})
	var item library.MaterialItem
	err := r.coll.FindOne(ctx, bson.M{"id": id}, opts).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, shared.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find material: %w", err)
	}
	return &item, nil
}

func (r *MongoMaterialRepository) Insert(ctx context.Context, item *library.MaterialItem) error {
	if _, err := r.coll.InsertOne(ctx, item); err != nil {
		return fmt.Errorf("failed to insert material: %w", err)
	}
	return nil
}

func (r *MongoMaterialRepository) UpdateFields(ctx context.Context, id string, fields map[string]any) error {
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("failed to update material: %w", err)
	}
	if result.MatchedCount == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *MongoMaterialRepository) Delete(ctx context.Context, id string) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete material: %w", err)
	}
	if result.DeletedCount == 0 {
		return shared.ErrNotFound
	}
	return nil
}
