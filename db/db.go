package db

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names, shared with the seeding engine.
const (
	UsersColl    = "users"
	BookingsColl = "bookings"
	PackagesColl = "packages"
	GuidesColl   = "guides"
	ContactsColl = "contacts"
	ReviewsColl  = "reviews"
)

var (
	UserCollection     *mongo.Collection
	BookingsCollection *mongo.Collection
	PackagesCollection *mongo.Collection
	GuidesCollection   *mongo.Collection
	ContactsCollection *mongo.Collection
	ReviewsCollection  *mongo.Collection
	Client             *mongo.Client
	Database           *mongo.Database
)

// Initialize MongoDB connection
func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	clientOptions := options.Client().ApplyURI(uri)
	var err error
	Client, err = mongo.Connect(context.TODO(), clientOptions)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	Database = Client.Database("aronedb")
	UserCollection = Database.Collection(UsersColl)
	BookingsCollection = Database.Collection(BookingsColl)
	PackagesCollection = Database.Collection(PackagesColl)
	GuidesCollection = Database.Collection(GuidesColl)
	ContactsCollection = Database.Collection(ContactsColl)
	ReviewsCollection = Database.Collection(ReviewsColl)
}
