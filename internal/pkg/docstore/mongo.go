package docstore

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore implements Store on top of a MongoDB database
type MongoStore struct {
	db *mongo.Database
}

// NewMongoStore creates a document store backed by the given database
func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{db: db}
}

func toBSONFilter(filter Filter) bson.M {
	m := bson.M{}
	for field, value := range filter {
		if cond, ok := value.(Cond); ok {
			m[field] = bson.M{string(cond.Op): cond.Value}
			continue
		}
		m[field] = value
	}
	return m
}

// Add inserts a new document
func (s *MongoStore) Add(ctx context.Context, collection string, doc interface{}) error {
	if _, err := s.db.Collection(collection).InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("failed to insert into %s: %w", collection, err)
	}
	return nil
}

// FindOne decodes the first document matching field == value
func (s *MongoStore) FindOne(ctx context.Context, collection, field string, value interface{}, out interface{}) error {
	err := s.db.Collection(collection).FindOne(ctx, bson.M{field: value}).Decode(out)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to query %s: %w", collection, err)
	}
	return nil
}

// Query decodes all documents matching field == value into out
func (s *MongoStore) Query(ctx context.Context, collection, field string, value interface{}, out interface{}) error {
	cursor, err := s.db.Collection(collection).Find(ctx, bson.M{field: value})
	if err != nil {
		return fmt.Errorf("failed to query %s: %w", collection, err)
	}
	defer cursor.Close(ctx)

	if err := cursor.All(ctx, out); err != nil {
		return fmt.Errorf("failed to decode %s documents: %w", collection, err)
	}
	return nil
}

// Update applies field changes to the single document matching the
// filter. The filtered UpdateOne is atomic per document, so a filter on
// a flag value acts as a compare-and-swap.
func (s *MongoStore) Update(ctx context.Context, collection string, filter Filter, fields map[string]interface{}) error {
	res, err := s.db.Collection(collection).UpdateOne(ctx, toBSONFilter(filter), bson.M{"$set": bson.M(fields)})
	if err != nil {
		return fmt.Errorf("failed to update %s: %w", collection, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Upsert replaces the matching document or inserts doc when absent
func (s *MongoStore) Upsert(ctx context.Context, collection string, filter Filter, doc interface{}) error {
	opts := options.Replace().SetUpsert(true)
	if _, err := s.db.Collection(collection).ReplaceOne(ctx, toBSONFilter(filter), doc, opts); err != nil {
		return fmt.Errorf("failed to upsert into %s: %w", collection, err)
	}
	return nil
}

// Delete removes the single document matching the filter
func (s *MongoStore) Delete(ctx context.Context, collection string, filter Filter) error {
	if _, err := s.db.Collection(collection).DeleteOne(ctx, toBSONFilter(filter)); err != nil {
		return fmt.Errorf("failed to delete from %s: %w", collection, err)
	}
	return nil
}

// DeleteMany removes all documents matching the filter
func (s *MongoStore) DeleteMany(ctx context.Context, collection string, filter Filter) (int64, error) {
	res, err := s.db.Collection(collection).DeleteMany(ctx, toBSONFilter(filter))
	if err != nil {
		return 0, fmt.Errorf("failed to delete from %s: %w", collection, err)
	}
	return res.DeletedCount, nil
}
