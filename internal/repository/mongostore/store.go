package mongostore

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	apperrors "cloudstay/internal/errors"
	"cloudstay/internal/repository"
)

const (
	usersCollection    = "users"
	roomsCollection    = "rooms"
	bookingsCollection = "bookings"
)

// New builds a store over the users, rooms and bookings collections of dbName.
func New(client *mongo.Client, dbName string) *repository.Store {
	db := client.Database(dbName)
	indexes := repository.NewSchemaGuard(func(ctx context.Context) error {
		return EnsureIndexes(ctx, client, dbName)
	})
	return repository.NewStore(
		&userRepository{coll: db.Collection(usersCollection)},
		&roomRepository{coll: db.Collection(roomsCollection)},
		&bookingRepository{coll: db.Collection(bookingsCollection)},
		func(ctx context.Context) error {
			if err := client.Ping(ctx, readpref.Primary()); err != nil {
				return err
			}
			return indexes.Ensure(ctx)
		},
		client.Disconnect,
	)
}

// EnsureIndexes creates the unique email index on users and the lookup indexes
// the listing queries filter on.
func EnsureIndexes(ctx context.Context, client *mongo.Client, dbName string) error {
	db := client.Database(dbName)

	if _, err := db.Collection(usersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return fmt.Errorf("users index: %w", err)
	}
	if _, err := db.Collection(roomsCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "category", Value: 1}}},
		{Keys: bson.D{{Key: "host.email", Value: 1}}},
	}); err != nil {
		return fmt.Errorf("rooms indexes: %w", err)
	}
	if _, err := db.Collection(bookingsCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "guest.email", Value: 1}}},
		{Keys: bson.D{{Key: "host.email", Value: 1}}},
	}); err != nil {
		return fmt.Errorf("bookings indexes: %w", err)
	}
	return nil
}

func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, apperrors.ErrInvalidID
	}
	return oid, nil
}

func hexID(v any) string {
	if oid, ok := v.(primitive.ObjectID); ok {
		return oid.Hex()
	}
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}
