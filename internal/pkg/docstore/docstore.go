package docstore

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no document matches a lookup or a
// conditional update matched nothing
var ErrNotFound = errors.New("document not found")

// Op is a filter comparison operator
type Op string

const (
	OpEq Op = "$eq"
	OpLt Op = "$lt"
)

// Cond expresses a non-equality comparison in a filter. Plain filter
// values are treated as equality matches.
type Cond struct {
	Op    Op
	Value interface{}
}

// Lt builds a less-than condition
func Lt(value interface{}) Cond {
	return Cond{Op: OpLt, Value: value}
}

// Filter selects documents by field. Values are matched by equality
// unless wrapped in a Cond.
type Filter map[string]interface{}

// Store is the narrow surface this application needs from a document
// database: add, get/query by field, conditional update, upsert and
// delete on named collections. Two implementations exist, one backed by
// MongoDB and one in-memory, selected once at startup.
//
// Timestamps cross this boundary as time.Time; both implementations
// normalize them to UTC with millisecond precision so domain logic
// never sees a store-native representation.
type Store interface {
	// Add inserts a new document into the collection.
	Add(ctx context.Context, collection string, doc interface{}) error

	// FindOne decodes the first document matching field == value into
	// out. Returns ErrNotFound when nothing matches.
	FindOne(ctx context.Context, collection, field string, value interface{}, out interface{}) error

	// Query decodes all documents matching field == value into out,
	// which must be a pointer to a slice.
	Query(ctx context.Context, collection, field string, value interface{}, out interface{}) error

	// Update applies the given field changes to the single document
	// matching the filter. Returns ErrNotFound when the filter matches
	// nothing; the filter-then-write is atomic per document, which is
	// what makes conditional updates on a flag safe under races.
	Update(ctx context.Context, collection string, filter Filter, fields map[string]interface{}) error

	// Upsert atomically replaces the document matching the filter, or
	// inserts doc when no match exists.
	Upsert(ctx context.Context, collection string, filter Filter, doc interface{}) error

	// Delete removes the single document matching the filter. Deleting
	// a missing document is not an error.
	Delete(ctx context.Context, collection string, filter Filter) error

	// DeleteMany removes every document matching the filter and
	// returns the number removed.
	DeleteMany(ctx context.Context, collection string, filter Filter) (int64, error)
}
