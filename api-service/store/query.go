package store

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/carzone/spareparts-shop/shared/models"
)

const (
	// DefaultLimit applies when the caller sends no limit or a non-positive one.
	DefaultLimit = 50
	// MaxLimit caps caller-supplied limits.
	MaxLimit = 500
)

// PartFilter holds the optional spare-part search parameters. Q is matched
// case-insensitively as a substring against name, sku, brand and category;
// Category and Brand are exact-equality conditions ANDed with the Q group.
type PartFilter struct {
	Q        string
	Category string
	Brand    string
	Limit    int64
}

// EffectiveLimit clamps the requested limit into [1, MaxLimit], falling back
// to DefaultLimit for absent or non-positive values.
func (f PartFilter) EffectiveLimit() int64 {
	if f.Limit <= 0 {
		return DefaultLimit
	}
	if f.Limit > MaxLimit {
		return MaxLimit
	}
	return f.Limit
}

// BSON builds the native MongoDB filter document. An empty filter matches
// all documents. Q is handed to the regex engine as-is; regex metacharacters
// keep their pattern meaning.
func (f PartFilter) BSON() bson.M {
	filter := bson.M{}
	if f.Q != "" {
		regex := bson.M{"$regex": f.Q, "$options": "i"}
		filter["$or"] = bson.A{
			bson.M{"name": regex},
			bson.M{"sku": regex},
			bson.M{"brand": regex},
			bson.M{"category": regex},
		}
	}
	if f.Category != "" {
		filter["category"] = f.Category
	}
	if f.Brand != "" {
		filter["brand"] = f.Brand
	}
	return filter
}

// Matches reports whether a part satisfies the filter. It mirrors BSON for
// queries without regex metacharacters and backs the memory store.
func (f PartFilter) Matches(part models.SparePart) bool {
	if f.Q != "" {
		q := strings.ToLower(f.Q)
		if !strings.Contains(strings.ToLower(part.Name), q) &&
			!strings.Contains(strings.ToLower(part.SKU), q) &&
			!strings.Contains(strings.ToLower(part.Brand), q) &&
			!strings.Contains(strings.ToLower(part.Category), q) {
			return false
		}
	}
	if f.Category != "" && part.Category != f.Category {
		return false
	}
	if f.Brand != "" && part.Brand != f.Brand {
		return false
	}
	return true
}
