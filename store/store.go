package store

import (
	"context"
	"time"

	"arone/db"
	"arone/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Typed reads over the shared collections, newest-first. Each call returns
// a point-in-time copy; failures surface as the raw driver error.

const readTimeout = 5 * time.Second

// listOptions is the shared read contract: every listing comes back sorted
// on createdAt descending so callers never depend on Mongo natural order.
func listOptions() *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
}

func findAll[T any](ctx context.Context, coll *mongo.Collection, filter bson.M) ([]T, error) {
	ctx, cancel := context.WithTimeout(ctx, readTimeout)
	defer cancel()

	cur, err := coll.Find(ctx, filter, listOptions())
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []T
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func GetAllUsers(ctx context.Context) ([]models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, readTimeout)
	defer cancel()

	// users are sorted on created_at; the collection predates the camelCase
	// field convention used everywhere else
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := db.UserCollection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var users []models.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func GetAllBookings(ctx context.Context) ([]models.Booking, error) {
	return findAll[models.Booking](ctx, db.BookingsCollection, bson.M{})
}

// GetBookingsForUser lists one user's bookings under the same newest-first
// contract as the full listings.
func GetBookingsForUser(ctx context.Context, userID string) ([]models.Booking, error) {
	return findAll[models.Booking](ctx, db.BookingsCollection, bson.M{"userId": userID})
}

func GetAllPackages(ctx context.Context) ([]models.TourPackage, error) {
	return findAll[models.TourPackage](ctx, db.PackagesCollection, bson.M{})
}

func GetAllGuides(ctx context.Context) ([]models.Guide, error) {
	return findAll[models.Guide](ctx, db.GuidesCollection, bson.M{})
}

func GetAllContacts(ctx context.Context) ([]models.Contact, error) {
	return findAll[models.Contact](ctx, db.ContactsCollection, bson.M{})
}

func GetAllReviews(ctx context.Context) ([]models.Review, error) {
	return findAll[models.Review](ctx, db.ReviewsCollection, bson.M{})
}
