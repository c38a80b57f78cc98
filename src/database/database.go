package database

import (
	"context"
	"log"
	"os"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const DatabaseName = "survey"

var (
	client     *mongo.Client
	once       sync.Once
	connectErr error

	SubmissionCollection *mongo.Collection
	AdminCollection      *mongo.Collection
)

// ConnectMongoDB connects to MongoDB once and initializes the collections
// plus the indexes the intake pipeline relies on.
func ConnectMongoDB() error {

	err := godotenv.Load()
	if err != nil {
		log.Println("⚠️ Warning: No .env file found")
	}

	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		log.Fatal("❌ MONGO_URI environment variable not set. Please create a .env file and set it.")
	}

	once.Do(func() {
		clientOptions := options.Client().ApplyURI(mongoURI)

		client, connectErr = mongo.Connect(context.TODO(), clientOptions)
		if connectErr != nil {
			log.Fatal("❌ Failed to connect to MongoDB:", connectErr)
			return
		}

		connectErr = client.Ping(context.TODO(), readpref.Primary())
		if connectErr != nil {
			log.Fatal("❌ MongoDB ping failed:", connectErr)
			return
		}

		db := client.Database(DatabaseName)
		SubmissionCollection = db.Collection("submissions")
		AdminCollection = db.Collection("admins")

		connectErr = EnsureIndexes()
		if connectErr != nil {
			log.Fatal("❌ Failed to create indexes:", connectErr)
			return
		}

		log.Println("✅ MongoDB connected successfully")
	})

	return connectErr
}

// EnsureIndexes creates the unique reference-number index that backs the
// store's uniqueness guarantee, plus secondary indexes on createdAt and email.
func EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := SubmissionCollection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "referenceNumber", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "createdAt", Value: 1}}},
		{Keys: bson.D{{Key: "email", Value: 1}}},
	})
	if err != nil {
		return err
	}

	_, err = AdminCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// GetDatabase returns the application database handle for services that are
// constructed with an explicit *mongo.Database.
func GetDatabase() *mongo.Database {
	if client == nil {
		log.Fatal("❌ MongoDB client is nil")
	}
	return client.Database(DatabaseName)
}

// GetCollection returns a collection from the application database.
func GetCollection(collectionName string) *mongo.Collection {
	if client == nil {
		log.Fatal("❌ MongoDB client is nil")
	}
	return client.Database(DatabaseName).Collection(collectionName)
}

// Disconnect closes the MongoDB connection on shutdown.
func Disconnect(ctx context.Context) error {
	if client == nil {
		return nil
	}
	return client.Disconnect(ctx)
}
