package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCollections(t *testing.T) {
	assert.Equal(t, []string{"user", "sparepart", "order"}, Collections())
}

func TestSparePartIdSerializesAsHexText(t *testing.T) {
	oid := primitive.NewObjectID()
	part := SparePart{Id: oid, Name: "Brake Pad"}

	data, err := json.Marshal(part)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, oid.Hex(), decoded["id"])
}
