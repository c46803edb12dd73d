package store

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/carzone/spareparts-shop/shared/models"
)

// MemoryStore keeps documents in process memory, in insertion order. It
// backs tests and the STORE_BACKEND=memory development mode.
type MemoryStore struct {
	mu     sync.RWMutex
	parts  []models.SparePart
	orders []models.Order
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) CreatePart(ctx context.Context, part models.SparePart) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	part.Id = primitive.NewObjectID()
	s.parts = append(s.parts, part)
	return part.Id.Hex(), nil
}

func (s *MemoryStore) FindParts(ctx context.Context, filter PartFilter) ([]models.SparePart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	limit := filter.EffectiveLimit()
	matched := []models.SparePart{}
	for _, part := range s.parts {
		if int64(len(matched)) >= limit {
			break
		}
		if filter.Matches(part) {
			matched = append(matched, part)
		}
	}
	return matched, nil
}

func (s *MemoryStore) GetPart(ctx context.Context, id string) (*models.SparePart, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, part := range s.parts {
		if part.Id == oid {
			found := part
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) CreateOrder(ctx context.Context, order models.Order) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	order.Id = primitive.NewObjectID()
	s.orders = append(s.orders, order)
	return order.Id.Hex(), nil
}

func (s *MemoryStore) Collections(ctx context.Context) ([]string, error) {
	return models.Collections(), nil
}

func (s *MemoryStore) Ping(ctx context.Context) error {
	return nil
}

func (s *MemoryStore) Close(ctx context.Context) error {
	return nil
}
