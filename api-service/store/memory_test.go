package store

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/carzone/spareparts-shop/shared/models"
)

func TestMemoryStorePartRoundTrip(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	part := models.SparePart{
		Name:          "Brake Pad",
		SKU:           "BP-100",
		Brand:         "Bosch",
		Category:      "Brakes",
		Price:         29.99,
		Stock:         10,
		Compatibility: []string{"Toyota Corolla"},
	}

	id, err := s.CreatePart(ctx, part)
	require.NoError(t, err)

	oid, err := primitive.ObjectIDFromHex(id)
	require.NoError(t, err, "returned id must be hex text")

	got, err := s.GetPart(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, oid, got.Id)
	assert.Equal(t, part.Name, got.Name)
	assert.Equal(t, part.SKU, got.SKU)
	assert.Equal(t, part.Price, got.Price)
	assert.Equal(t, part.Compatibility, got.Compatibility)
}

func TestMemoryStoreGetPartErrors(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	_, err := s.GetPart(ctx, "not-an-id")
	assert.ErrorIs(t, err, ErrInvalidID)

	_, err = s.GetPart(ctx, primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreFindPartsFilterAndLimit(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := s.CreatePart(ctx, models.SparePart{
			Name:     fmt.Sprintf("Oil Filter %d", i),
			SKU:      fmt.Sprintf("OF-%d", i),
			Brand:    "Mann",
			Category: "Filters",
		})
		require.NoError(t, err)
	}
	_, err := s.CreatePart(ctx, models.SparePart{
		Name:     "Brake Pad",
		SKU:      "BP-100",
		Brand:    "Bosch",
		Category: "Brakes",
	})
	require.NoError(t, err)

	all, err := s.FindParts(ctx, PartFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 6)

	filters, err := s.FindParts(ctx, PartFilter{Category: "Filters"})
	require.NoError(t, err)
	assert.Len(t, filters, 5)

	capped, err := s.FindParts(ctx, PartFilter{Category: "Filters", Limit: 2})
	require.NoError(t, err)
	assert.Len(t, capped, 2)
	// natural (insertion) order
	assert.Equal(t, "Oil Filter 0", capped[0].Name)
	assert.Equal(t, "Oil Filter 1", capped[1].Name)

	none, err := s.FindParts(ctx, PartFilter{Q: "brake", Category: "Filters"})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestMemoryStoreCreateOrder(t *testing.T) {
	s := NewMemoryStore()

	id, err := s.CreateOrder(context.Background(), models.Order{
		CustomerName: "Jane Doe",
		Email:        "jane@example.com",
		Items: []models.OrderItem{
			{ProductId: primitive.NewObjectID().Hex(), Name: "Brake Pad", Price: 29.99, Quantity: 1},
		},
		Subtotal: 29.99,
		Total:    29.99,
	})
	require.NoError(t, err)

	_, err = primitive.ObjectIDFromHex(id)
	assert.NoError(t, err)
}
