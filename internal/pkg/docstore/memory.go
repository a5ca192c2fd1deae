package docstore

import (
	"context"
	"fmt"
	"reflect"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryStore implements Store with in-process maps. It mirrors the
// Mongo implementation's field naming by round-tripping documents
// through bson, so the two backends are interchangeable at startup and
// in tests.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string][]bson.M
}

// NewMemoryStore creates an empty in-memory document store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		collections: make(map[string][]bson.M),
	}
}

func toDoc(doc interface{}) (bson.M, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}
	var m bson.M
	if err := bson.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("failed to decode document: %w", err)
	}
	return m, nil
}

func decodeDoc(m bson.M, out interface{}) error {
	raw, err := bson.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}
	if err := bson.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode document: %w", err)
	}
	return nil
}

// normalizeValue collapses store-native and Go-native representations
// of the same value so filters behave identically to the Mongo backend
func normalizeValue(v interface{}) interface{} {
	switch t := v.(type) {
	case primitive.DateTime:
		return t.Time().UTC()
	case time.Time:
		return t.UTC().Truncate(time.Millisecond)
	case int:
		return int64(t)
	case int32:
		return int64(t)
	case float32:
		return float64(t)
	default:
		return v
	}
}

func valuesEqual(a, b interface{}) bool {
	na, nb := normalizeValue(a), normalizeValue(b)
	if ta, ok := na.(time.Time); ok {
		if tb, ok := nb.(time.Time); ok {
			return ta.Equal(tb)
		}
		return false
	}
	return reflect.DeepEqual(na, nb)
}

func valueLess(a, b interface{}) bool {
	na, nb := normalizeValue(a), normalizeValue(b)
	switch ta := na.(type) {
	case time.Time:
		tb, ok := nb.(time.Time)
		return ok && ta.Before(tb)
	case int64:
		tb, ok := nb.(int64)
		return ok && ta < tb
	case float64:
		tb, ok := nb.(float64)
		return ok && ta < tb
	case string:
		tb, ok := nb.(string)
		return ok && ta < tb
	}
	return false
}

func matches(doc bson.M, filter Filter) bool {
	for field, want := range filter {
		got, ok := doc[field]
		if !ok {
			return false
		}
		if cond, isCond := want.(Cond); isCond {
			switch cond.Op {
			case OpLt:
				if !valueLess(got, cond.Value) {
					return false
				}
			default:
				if !valuesEqual(got, cond.Value) {
					return false
				}
			}
			continue
		}
		if !valuesEqual(got, want) {
			return false
		}
	}
	return true
}

// Add inserts a new document
func (s *MemoryStore) Add(ctx context.Context, collection string, doc interface{}) error {
	m, err := toDoc(doc)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.collections[collection] = append(s.collections[collection], m)
	return nil
}

// FindOne decodes the first document matching field == value
func (s *MemoryStore) FindOne(ctx context.Context, collection, field string, value interface{}, out interface{}) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, doc := range s.collections[collection] {
		if matches(doc, Filter{field: value}) {
			return decodeDoc(doc, out)
		}
	}
	return ErrNotFound
}

// Query decodes all documents matching field == value into out
func (s *MemoryStore) Query(ctx context.Context, collection, field string, value interface{}, out interface{}) error {
	outv := reflect.ValueOf(out)
	if outv.Kind() != reflect.Ptr || outv.Elem().Kind() != reflect.Slice {
		return fmt.Errorf("query output must be a pointer to a slice, got %T", out)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	slice := reflect.MakeSlice(outv.Elem().Type(), 0, 0)
	for _, doc := range s.collections[collection] {
		if !matches(doc, Filter{field: value}) {
			continue
		}
		elem := reflect.New(outv.Elem().Type().Elem())
		if err := decodeDoc(doc, elem.Interface()); err != nil {
			return err
		}
		slice = reflect.Append(slice, elem.Elem())
	}
	outv.Elem().Set(slice)
	return nil
}

// Update applies field changes to the first document matching the
// filter, under the store lock so the match-then-write is atomic
func (s *MemoryStore) Update(ctx context.Context, collection string, filter Filter, fields map[string]interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, doc := range s.collections[collection] {
		if !matches(doc, filter) {
			continue
		}
		for field, value := range fields {
			doc[field] = value
		}
		normalized, err := toDoc(doc)
		if err != nil {
			return err
		}
		s.collections[collection][i] = normalized
		return nil
	}
	return ErrNotFound
}

// Upsert replaces the matching document or inserts doc when absent
func (s *MemoryStore) Upsert(ctx context.Context, collection string, filter Filter, doc interface{}) error {
	m, err := toDoc(doc)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.collections[collection] {
		if matches(existing, filter) {
			s.collections[collection][i] = m
			return nil
		}
	}
	s.collections[collection] = append(s.collections[collection], m)
	return nil
}

// Delete removes the first document matching the filter
func (s *MemoryStore) Delete(ctx context.Context, collection string, filter Filter) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	docs := s.collections[collection]
	for i, doc := range docs {
		if matches(doc, filter) {
			s.collections[collection] = append(docs[:i:i], docs[i+1:]...)
			return nil
		}
	}
	return nil
}

// DeleteMany removes all documents matching the filter
func (s *MemoryStore) DeleteMany(ctx context.Context, collection string, filter Filter) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var kept []bson.M
	var deleted int64
	for _, doc := range s.collections[collection] {
		if matches(doc, filter) {
			deleted++
			continue
		}
		kept = append(kept, doc)
	}
	s.collections[collection] = kept
	return deleted, nil
}
