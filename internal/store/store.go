// Package store persists completed allotment and duty runs as immutable
// audit documents. A run is never updated after it is written — there is no
// transaction to roll back, only a record of what the engine produced.
package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Run is one completed invocation of the room-allotment or staff-duty
// engine, kept for audit: what ran, when, and which diagnostics it raised.
type Run struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Kind        string             `bson:"kind"` // "room_allotment" or "staff_duty"
	Mode        string             `bson:"mode,omitempty"`
	Diagnostics []string           `bson:"diagnostics"`
	CreatedAt   time.Time          `bson:"created_at"`
}

// RunRepository stores completed runs in Mongo.
type RunRepository struct {
	collection *mongo.Collection
}

func NewRunRepository(db *mongo.Database) *RunRepository {
	return &RunRepository{collection: db.Collection("runs")}
}

// Save assigns an ID and timestamp and inserts the run. Runs are append-only.
func (r *RunRepository) Save(ctx context.Context, run *Run) error {
	run.ID = primitive.NewObjectID()
	run.CreatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, run)
	return err
}

// FindByID retrieves a previously completed run.
func (r *RunRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*Run, error) {
	var run Run
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&run)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &run, nil
}

// ListByKind returns the most recent runs of a given kind, newest first.
func (r *RunRepository) ListByKind(ctx context.Context, kind string, limit int64) ([]*Run, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}).SetLimit(limit)
	cursor, err := r.collection.Find(ctx, bson.M{"kind": kind}, opts)
	if err != nil {
		return nil, err
	}
	var runs []*Run
	if err := cursor.All(ctx, &runs); err != nil {
		return nil, err
	}
	return runs, nil
}
