// FILE: database/repository/booking/indexes.go
package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the bookings collection.
func (repo *MongoBookingRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		// Unique index on booking ID
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// Compound index backing the slot allocator's per-day count
		{
			Keys:    bson.D{{Key: "practitioner_id", Value: 1}, {Key: "therapy_id", Value: 1}, {Key: "assigned_date", Value: 1}},
			Options: options.Index().SetName("practitioner_therapy_date_idx"),
		},
		// Index for the reschedule sweep's status scan
		{
			Keys:    bson.D{{Key: "status", Value: 1}},
			Options: options.Index().SetName("status_idx"),
		},
		// Index for the reminder sweep's session-date window scan
		{
			Keys:    bson.D{{Key: "sessions.date", Value: 1}},
			Options: options.Index().SetName("session_date_idx"),
		},
	}

	_, err := repo.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create booking indexes: %w", err)
	}
	return nil
}
