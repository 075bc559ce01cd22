package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/mtlprog/goodwill/internal/database"
	"github.com/mtlprog/goodwill/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ValuationRepository handles database operations for valuations.
type ValuationRepository struct {
	db *database.DB
}

// NewValuationRepository creates a new ValuationRepository.
func NewValuationRepository(db *database.DB) *ValuationRepository {
	return &ValuationRepository{
		db: db,
	}
}

// collection waits for the database and returns the valuations collection.
func (r *ValuationRepository) collection(ctx context.Context) (*mongo.Collection, error) {
	db, err := r.db.Wait(ctx)
	if err != nil {
		return nil, err
	}
	return db.Collection(database.ValuationsCollection), nil
}

// Create inserts a new valuation.
func (r *ValuationRepository) Create(ctx context.Context, valuation *domain.Valuation) error {
	coll, err := r.collection(ctx)
	if err != nil {
		return err
	}

	if _, err := coll.InsertOne(ctx, valuation); err != nil {
		return fmt.Errorf("insert valuation: %w", err)
	}

	return nil
}

// GetByID retrieves a valuation by ID.
func (r *ValuationRepository) GetByID(ctx context.Context, id string) (*domain.Valuation, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}

	var valuation domain.Valuation
	err = coll.FindOne(ctx, bson.M{"_id": id}).Decode(&valuation)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrValuationNotFound
		}
		return nil, fmt.Errorf("query valuation: %w", err)
	}

	return &valuation, nil
}

// List returns valuations matching the filter, newest first, together with the
// total number of matching documents.
func (r *ValuationRepository) List(ctx context.Context, filter domain.ValuationFilter) ([]*domain.Valuation, int64, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return nil, 0, err
	}

	query := bson.M{}
	if filter.Kind != nil {
		query["kind"] = *filter.Kind
	}

	total, err := coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count valuations: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: 1}}).
		SetSkip(int64(filter.Offset)).
		SetLimit(int64(filter.Limit))

	cursor, err := coll.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("find valuations: %w", err)
	}
	defer cursor.Close(ctx)

	valuations := make([]*domain.Valuation, 0, filter.Limit)
	for cursor.Next(ctx) {
		var valuation domain.Valuation
		if err := cursor.Decode(&valuation); err != nil {
			return nil, 0, fmt.Errorf("decode valuation: %w", err)
		}
		valuations = append(valuations, &valuation)
	}

	if err := cursor.Err(); err != nil {
		return nil, 0, fmt.Errorf("cursor error: %w", err)
	}

	return valuations, total, nil
}

// Delete removes a valuation by ID.
func (r *ValuationRepository) Delete(ctx context.Context, id string) error {
	coll, err := r.collection(ctx)
	if err != nil {
		return err
	}

	result, err := coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete valuation: %w", err)
	}
	if result.DeletedCount == 0 {
		return domain.ErrValuationNotFound
	}

	return nil
}
