package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Collection names, one per entity type.
const (
	CollectionSparePart = "sparepart"
	CollectionOrder     = "order"
	CollectionUser      = "user"
)

// Collections returns the collection names exposed by the /schema endpoint,
// in the order external viewers expect them.
func Collections() []string {
	return []string{CollectionUser, CollectionSparePart, CollectionOrder}
}

type SparePart struct {
	Id            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name          string             `bson:"name" json:"name"`
	SKU           string             `bson:"sku" json:"sku"`
	Brand         string             `bson:"brand" json:"brand"`
	Category      string             `bson:"category" json:"category"`
	Price         float64            `bson:"price" json:"price"`
	Stock         int                `bson:"stock" json:"stock"`
	Compatibility []string           `bson:"compatibility" json:"compatibility"`
	ImageURL      string             `bson:"image_url,omitempty" json:"image_url,omitempty"`
	Description   string             `bson:"description,omitempty" json:"description,omitempty"`
}

type OrderItem struct {
	ProductId string  `bson:"product_id" json:"product_id"`
	Name      string  `bson:"name" json:"name"`
	Price     float64 `bson:"price" json:"price"`
	Quantity  int     `bson:"quantity" json:"quantity"`
}

type Order struct {
	Id           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	CustomerName string             `bson:"customer_name" json:"customer_name"`
	Email        string             `bson:"email" json:"email"`
	Phone        string             `bson:"phone" json:"phone"`
	Address      string             `bson:"address" json:"address"`
	Items        []OrderItem        `bson:"items" json:"items"`
	Subtotal     float64            `bson:"subtotal" json:"subtotal"`
	DeliveryFee  float64            `bson:"delivery_fee" json:"delivery_fee"`
	Total        float64            `bson:"total" json:"total"`
}

type User struct {
	Id       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name     string             `bson:"name" json:"name"`
	Email    string             `bson:"email" json:"email"`
	Address  string             `bson:"address" json:"address"`
	Age      *int               `bson:"age,omitempty" json:"age,omitempty"`
	IsActive bool               `bson:"is_active" json:"is_active"`
}
