package persistence

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/prodsheet/backend/internal/domain/catalog"
	"github.com/prodsheet/backend/internal/domain/shared"
)

// MongoFactoryRepository implements catalog.FactoryRepository
type MongoFactoryRepository struct {
	coll *mongo.Collection
}

// NewMongoFactoryRepository creates a new factory repository
func NewMongoFactoryRepository(db *Database) *MongoFactoryRepository {
	return &MongoFactoryRepository{coll: db.Collection("factories")}
}

func (r *MongoFactoryRepository) FindAll(ctx context.Context) ([]catalog.Factory, error) {
	opts := options.Find().
		SetProjection(bson.M{"_id": 0}).
		SetLimit(listCap)
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find factories: %w", err)
	}
	defer cursor.Close(ctx)

	factories := make([]catalog.Factory, 0)
	if err := cursor.All(ctx, &factories); err != nil {
		return nil, fmt.Errorf("failed to decode factories: %w", err)
	}
	return factories, nil
}

func (r *MongoFactoryRepository) Insert(ctx context.Context, factory *catalog.Factory) error {
	if _, err := r.coll.InsertOne(ctx, factory); err != nil {
		return fmt.Errorf("failed to insert factory: %w", err)
	}
	return nil
}

func (r *MongoFactoryRepository) Delete(ctx context.Context, id string) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete factory: %w", err)
	}
	if result.DeletedCount == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *MongoFactoryRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count factories: %w", err)
	}
	return count, nil
}

// MongoCategoryRepository implements catalog.CategoryRepository
type MongoCategoryRepository struct {
	coll *mongo.Collection
}

// NewMongoCategoryRepository creates a new category repository
func NewMongoCategoryRepository(db *Database) *MongoCategoryRepository {
	return &MongoCategoryRepository{coll: db.Collection("categories")}
}

func (r *MongoCategoryRepository) FindAll(ctx context.Context) ([]catalog.Category, error) {
	opts := options.Find().
		SetProjection(bson.M{"_id": 0}).
		SetLimit(listCap)
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find categories: %w", err)
	}
	defer cursor.Close(ctx)

	categories := make([]catalog.Category, 0)
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, fmt.Errorf("failed to decode categories: %w", err)
	}
	return categories, nil
}

func (r *MongoCategoryRepository) Insert(ctx context.Context, category *catalog.Category) error {
	if _, err := r.coll.InsertOne(ctx, category); err != nil {
		return fmt.Errorf("failed to insert category: %w", err)
	}
	return nil
}

func (r *MongoCategoryRepository) Delete(ctx context.Context, id string) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	if result.DeletedCount == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *MongoCategoryRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count categories: %w", err)
	}
	return count, nil
}

// MongoProductRepository implements catalog.ProductRepository
type MongoProductRepository struct {
	coll *mongo.Collection
}

// NewMongoProductRepository creates a new product repository
func NewMongoProductRepository(db *Database) *MongoProductRepository {
	return &MongoProductRepository{coll: db.Collection("products")}
}

func (r *MongoProductRepository) FindAll(ctx context.Context) ([]catalog.Product, error) {
	opts := options.Find().
		SetProjection(bson.M{"_id": 0}).
		SetLimit(listCap)
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find products: %w", err)
	}
	defer cursor.Close(ctx)

	products := make([]catalog.Product, 0)
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("failed to decode products: %w", err)
	}
	return products, nil
}

func (r *MongoProductRepository) FindByID(ctx context.Context, id string) (*catalog.Product, error) {
	opts := options.FindOne().SetProjection(bson.M{"_id": 0})
	var product catalog.Product
	err := r.coll.FindOne(ctx, bson.M{"id": id}, opts).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, shared.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find product: %w", err)
	}
	return &product, nil
}

func (r *MongoProductRepository) Insert(ctx context.Context, product *catalog.Product) error {
	if _, err := r.coll.InsertOne(ctx, product); err != nil {
		return fmt.Errorf("failed to insert product: %w", err)
	}
	return nil
}

func (r *MongoProductRepository) UpdateFields(ctx context.Context, id string, fields map[string]any) error {
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	if result.MatchedCount == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *MongoProductRepository) Delete(ctx context.Context, id string) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if result.DeletedCount == 0 {
		return shared.ErrNotFound
	}
	return nil
}
