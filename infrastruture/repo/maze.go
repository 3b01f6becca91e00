// Package repo persists maze records in MongoDB.
package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/beka-birhanu/maze-engine/domain"
	"github.com/beka-birhanu/maze-engine/service/i"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MazeRepo handles the persistence of maze records.
type MazeRepo struct {
	collection *mongo.Collection
}

// NewMazeRepo creates a MazeRepo over the given MongoDB client, database
// name and collection name.
func NewMazeRepo(client *mongo.Client, dbName, collectionName string) *MazeRepo {
	return &MazeRepo{
		collection: client.Database(dbName).Collection(collectionName),
	}
}

// Save inserts or updates a maze record.
func (r *MazeRepo) Save(ctx context.Context, record *domain.MazeRecord) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	filter := bson.M{"_id": record.ID}
	update := bson.M{
		"$set": bson.M{
			"width":     record.Width,
			"height":    record.Height,
			"algorithm": record.Algorithm,
			"encoded":   record.Encoded,
			"createdAt": record.CreatedAt,
		},
	}

	opts := options.Update().SetUpsert(true)
	if _, err := r.collection.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("saving maze record: %w", err)
	}

	return nil
}

// ByID retrieves a maze record by id. Returns i.ErrMazeNotFound when no
// record exists.
func (r *MazeRepo) ByID(ctx context.Context, id uuid.UUID) (*domain.MazeRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	var record domain.MazeRecord
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&record); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, i.ErrMazeNotFound
		}
		return nil, fmt.Errorf("loading maze record: %w", err)
	}

	return &record, nil
}
