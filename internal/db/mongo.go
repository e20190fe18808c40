package db

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/bsoncodec"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// NewMongo returns a client for uri. The driver connects in the background.
func NewMongo(ctx context.Context, uri string, reg *bsoncodec.Registry) (*mongo.Client, error) {
	opts := options.Client().ApplyURI(uri)
	if reg != nil {
		opts.SetRegistry(reg)
	}
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	return client, nil
}
