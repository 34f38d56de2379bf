// Package mongo implements the pkg/store contracts on top of the official
// MongoDB driver. One collection per resource kind.
package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	collSkills      = "skill"
	collExperiences = "experience"
	collBlogPosts   = "blogpost"
)

type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// New connects to the MongoDB at uri and pings the primary before returning.
func New(ctx context.Context, uri, dbName string) (*Store, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	return &Store{client: client, db: client.Database(dbName)}, nil
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

func (s *Store) CollectionNames(ctx context.Context) ([]string, error) {
	return s.db.ListCollectionNames(ctx, bson.D{})
}

func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("parse id %q: %w", id, err)
	}

	return oid, nil
}

// setByID applies a full-replace $set of fields (plus a fresh updated_at) to
// the document with the given id, reporting whether a document matched.
func (s *Store) setByID(ctx context.Context, coll, id string, fields bson.M) (bool, error) {
	oid, err := parseID(id)
	if err != nil {
		return false, err
	}

	fields["updated_at"] = time.Now().UTC()
	res, err := s.db.Collection(coll).UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": fields})
	if err != nil {
		return false, fmt.Errorf("update %s: %w", coll, err)
	}

	return res.MatchedCount > 0, nil
}

func (s *Store) deleteByID(ctx context.Context, coll, id string) (int64, error) {
	oid, err := parseID(id)
	if err != nil {
		return 0, err
	}

	res, err := s.db.Collection(coll).DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, fmt.Errorf("delete from %s: %w", coll, err)
	}

	return res.DeletedCount, nil
}

func (s *Store) insert(ctx context.Context, coll string, doc any) (string, error) {
	res, err := s.db.Collection(coll).InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert into %s: %w", coll, err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("insert into %s: unexpected id type %T", coll, res.InsertedID)
	}

	return oid.Hex(), nil
}
