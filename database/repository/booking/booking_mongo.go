package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"ayursutra/database"
	"ayursutra/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a new instance of MongoBookingRepo.
func NewMongoBookingRepo() BookingRepository {
	return &MongoBookingRepo{
		coll: database.DB().Collection("bookings"),
	}
}

func (repo *MongoBookingRepo) Create(booking *models.Booking) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctx, booking); err != nil {
		return fmt.Errorf("error creating booking: %w", err)
	}
	return nil
}

func (repo *MongoBookingRepo) GetByID(id string) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var booking models.Booking
	if err := repo.coll.FindOne(ctx, bson.M{"id": id}).Decode(&booking); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching booking %s: %w", id, err)
	}
	return &booking, nil
}

func (repo *MongoBookingRepo) GetByStatus(status string) ([]models.Booking, error) {
	return repo.find(bson.M{"status": status})
}

func (repo *MongoBookingRepo) GetByPatient(patientID string) ([]models.Booking, error) {
	return repo.find(bson.M{"patient_id": patientID})
}

func (repo *MongoBookingRepo) GetByPractitioner(practitionerID string) ([]models.Booking, error) {
	return repo.find(bson.M{"practitioner_id": practitionerID})
}

func (repo *MongoBookingRepo) find(filter bson.M) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := repo.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error finding bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	for cursor.Next(ctx) {
		var b models.Booking
		if err := cursor.Decode(&b); err != nil {
			return nil, fmt.Errorf("error decoding booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return bookings, nil
}

func (repo *MongoBookingRepo) CountForDay(practitionerID, therapyID string, day time.Time) (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{
		"practitioner_id": practitionerID,
		"therapy_id":      therapyID,
		"assigned_date":   day,
	}
	count, err := repo.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("error counting bookings for day: %w", err)
	}
	return count, nil
}

func (repo *MongoBookingRepo) ReplaceSessions(bookingID string, sessions []models.Session) error {
	update := bson.M{"$set": bson.M{"sessions": sessions, "updated_at": time.Now()}}
	return repo.updateOne(bookingID, update)
}

func (repo *MongoBookingRepo) UpdateSessionStatus(bookingID string, sessionIndex int, status string) error {
	field := fmt.Sprintf("sessions.%d.status", sessionIndex)
	update := bson.M{"$set": bson.M{field: status, "updated_at": time.Now()}}
	return repo.updateOne(bookingID, update)
}

func (repo *MongoBookingRepo) UpdateProgress(bookingID string, progress models.Progress) error {
	update := bson.M{"$set": bson.M{"progress": progress, "updated_at": time.Now()}}
	return repo.updateOne(bookingID, update)
}

func (repo *MongoBookingRepo) UpdateStatus(bookingID string, status string) error {
	update := bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}}
	return repo.updateOne(bookingID, update)
}

func (repo *MongoBookingRepo) AppendSessionNotification(bookingID string, sessionIndex int, n models.Notification) error {
	field := fmt.Sprintf("sessions.%d.notifications", sessionIndex)
	update := bson.M{"$push": bson.M{field: n}}
	return repo.updateOne(bookingID, update)
}

func (repo *MongoBookingRepo) MarkNotificationSent(bookingID string, sessionIndex int, kind string, at time.Time) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	field := fmt.Sprintf("sessions.%d.notifications.$[n]", sessionIndex)
	update := bson.M{"$set": bson.M{
		field + ".sent":    true,
		field + ".sent_at": at,
	}}
	opts := options.Update().SetArrayFilters(options.ArrayFilters{
		Filters: []interface{}{bson.M{"n.kind": kind}},
	})
	res, err := repo.coll.UpdateOne(ctx, bson.M{"id": bookingID}, update, opts)
	if err != nil {
		return fmt.Errorf("error marking notification sent: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (repo *MongoBookingRepo) GetWithSessionsBetween(from, to time.Time) ([]models.Booking, error) {
	filter := bson.M{"sessions.date": bson.M{"$gte": from, "$lte": to}}
	return repo.find(filter)
}

func (repo *MongoBookingRepo) updateOne(bookingID string, update bson.M) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := repo.coll.UpdateOne(ctx, bson.M{"id": bookingID}, update)
	if err != nil {
		return fmt.Errorf("error updating booking %s: %w", bookingID, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
