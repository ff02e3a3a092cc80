package bookingRepo

import (
	"context"

	"labline/database"
	"labline/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BookingRepository persists confirmed booking records.
type BookingRepository interface {
	Create(ctx context.Context, booking models.Booking) (string, error)
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	GetByUserID(ctx context.Context, userID string) ([]models.Booking, error)
	List(ctx context.Context, limit int64) ([]models.Booking, error)
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo returns a new BookingRepository instance using MongoDB.
func NewMongoBookingRepo() BookingRepository {
	db := database.MongoClient.Database("labline")
	return &mongoBookingRepo{
		coll: db.Collection("bookings"),
	}
}
