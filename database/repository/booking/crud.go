package bookingRepo

import (
	"context"
	"time"

	"bookwise/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts a new booking record and returns its ID.
func (r *mongoBookingRepo) Create(ctx context.Context, booking models.Booking) (string, error) {
	if booking.ID == "" {
		booking.ID = uuid.New().String()
	}
	if booking.Status == "" {
		booking.Status = "confirmed"
	}
	booking.CreatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, booking)
	if err != nil {
		return "", err
	}
	return booking.ID, nil
}

// GetByID returns a booking record by its ID.
func (r *mongoBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	var booking models.Booking
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&booking)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// GetByDateRange fetches confirmed bookings starting within [start, end).
func (r *mongoBookingRepo) GetByDateRange(ctx context.Context, start, end time.Time) ([]models.Booking, error) {
	filter := bson.M{
		"status": "confirmed",
		"start":  bson.M{"$gte": start, "$lt": end},
	}
	opts := options.Find().SetSort(bson.M{"start": 1})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// Recent returns the latest confirmed bookings, newest start first.
func (r *mongoBookingRepo) Recent(ctx context.Context, limit int64) ([]models.Booking, error) {
	opts := options.Find().SetSort(bson.M{"start": -1}).SetLimit(limit)
	cursor, err := r.coll.Find(ctx, bson.M{"status": "confirmed"}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}
