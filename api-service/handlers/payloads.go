package handlers

import (
	"github.com/carzone/spareparts-shop/shared/models"
)

// Creation payloads carry pointer numerics so that legitimate zero values
// (price 0, stock 0) still pass the required check.

type sparePartPayload struct {
	Name          string   `json:"name" validate:"required"`
	SKU           string   `json:"sku" validate:"required"`
	Brand         string   `json:"brand" validate:"required"`
	Category      string   `json:"category" validate:"required"`
	Price         *float64 `json:"price" validate:"required,gte=0"`
	Stock         *int     `json:"stock" validate:"required,gte=0"`
	Compatibility []string `json:"compatibility"`
	ImageURL      string   `json:"image_url"`
	Description   string   `json:"description"`
}

func (p sparePartPayload) toModel() models.SparePart {
	compatibility := p.Compatibility
	if compatibility == nil {
		compatibility = []string{}
	}
	return models.SparePart{
		Name:          p.Name,
		SKU:           p.SKU,
		Brand:         p.Brand,
		Category:      p.Category,
		Price:         *p.Price,
		Stock:         *p.Stock,
		Compatibility: compatibility,
		ImageURL:      p.ImageURL,
		Description:   p.Description,
	}
}

type orderItemPayload struct {
	ProductId string   `json:"product_id" validate:"required"`
	Name      string   `json:"name" validate:"required"`
	Price     *float64 `json:"price" validate:"required,gte=0"`
	Quantity  *int     `json:"quantity" validate:"required,gte=1"`
}

type orderPayload struct {
	CustomerName string             `json:"customer_name" validate:"required"`
	Email        string             `json:"email" validate:"required,email"`
	Phone        string             `json:"phone" validate:"required"`
	Address      string             `json:"address" validate:"required"`
	Items        []orderItemPayload `json:"items" validate:"required,min=1,dive"`
	Subtotal     *float64           `json:"subtotal" validate:"required,gte=0"`
	DeliveryFee  *float64           `json:"delivery_fee" validate:"omitempty,gte=0"`
	Total        *float64           `json:"total" validate:"required,gte=0"`
}

func (p orderPayload) toModel() models.Order {
	items := make([]models.OrderItem, 0, len(p.Items))
	for _, item := range p.Items {
		items = append(items, models.OrderItem{
			ProductId: item.ProductId,
			Name:      item.Name,
			Price:     *item.Price,
			Quantity:  *item.Quantity,
		})
	}
	deliveryFee := 0.0
	if p.DeliveryFee != nil {
		deliveryFee = *p.DeliveryFee
	}
	// Total is stored as the client sent it, no server-side recomputation
	// against items and delivery fee.
	return models.Order{
		CustomerName: p.CustomerName,
		Email:        p.Email,
		Phone:        p.Phone,
		Address:      p.Address,
		Items:        items,
		Subtotal:     *p.Subtotal,
		DeliveryFee:  deliveryFee,
		Total:        *p.Total,
	}
}
