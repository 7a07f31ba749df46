package persistence

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/prodsheet/backend/internal/domain/rendering"
	"github.com/prodsheet/backend/internal/domain/shared"
)

// MongoSettingsRepository implements rendering.SettingsRepository on the
// singleton template_settings document.
type MongoSettingsRepository struct {
	coll *mongo.Collection
}

// NewMongoSettingsRepository creates a new settings repository
func NewMongoSettingsRepository(db *Database) *MongoSettingsRepository {
	return &MongoSettingsRepository{coll: db.Collection("template_settings")}
}

func (r *MongoSettingsRepository) Find(ctx context.Context) (*rendering.TemplateSettings, error) {
	opts := options.FindOne().SetProjection(bson.M{"_id": 0})
	var settings rendering.TemplateSettings
	err := r.coll.FindOne(ctx, bson.M{"id": rendering.SettingsID}, opts).Decode(&settings)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, shared.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find template settings: %w", err)
	}
	return &settings, nil
}

func (r *MongoSettingsRepository) Upsert(ctx context.Context, settings *rendering.TemplateSettings) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.coll.ReplaceOne(ctx, bson.M{"id": rendering.SettingsID}, settings, opts)
	if err != nil {
		return fmt.Errorf("failed to upsert template settings: %w", err)
	}
	return nil
}

// MongoExportRepository implements rendering.ExportRepository on an
// append-only export ledger.
type MongoExportRepository struct {
	coll *mongo.Collection
}

// NewMongoExportRepository creates a new export ledger repository
func NewMongoExportRepository(db *Database) *MongoExportRepository {
	return &MongoExportRepository{coll: db.Collection("exports")}
}

func (r *MongoExportRepository) Insert(ctx context.Context, record *rendering.ExportRecord) error {
	if _, err := r.coll.InsertOne(ctx, record); err != nil {
		return fmt.Errorf("failed to insert export record: %w", err)
	}
	return nil
}

func (r *MongoExportRepository) FindAll(ctx context.Context) ([]rendering.ExportRecord, error) {
	opts := options.Find().
		SetProjection(bson.M{"_id": 0}).
		SetSort(bson.M{"created_at": -1}).
		SetLimit(listCap)
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find export records: %w", err)
	}
	defer cursor.Close(ctx)

	records := make([]rendering.ExportRecord, 0)
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode export records: %w", err)
	}
	return records, nil
}

func (r *MongoExportRepository) FindByOrderID(ctx context.Context, orderID string) ([]rendering.ExportRecord, error) {
	opts := options.Find().
		SetProjection(bson.M{"_id": 0}).
		SetSort(bson.M{"created_at": -1}).
		SetLimit(listCap)
	cursor, err := r.coll.Find(ctx, bson.M{"order_id": orderID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find export records: %w", err)
	}
	defer cursor.Close(ctx)

	records := make([]rendering.ExportRecord, 0)
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode export records: %w", err)
	}
	return records, nil
}
