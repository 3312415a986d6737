package models

import "time"

// ProductStatus is the availability of a product, projected from its stock.
type ProductStatus string

const (
	StatusInStock    ProductStatus = "IN_STOCK"
	StatusOutOfStock ProductStatus = "OUT_OF_STOCK"
)

// SizeEntry is one line of a product's inventory breakdown.
type SizeEntry struct {
	Size     string `json:"size" validate:"required,oneof=S M L XL XXL XXXL"`
	Quantity int    `json:"quantity" validate:"gte=0"`
}

// Product represents a catalog entry owned by a single user.
//
// Stock and Status are derived from Sizes; they are recomputed on every write
// that touches the breakdown and are never accepted as input.
type Product struct {
	ID          string        `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name        string        `json:"name" gorm:"type:varchar(100)"`
	Description string        `json:"description" gorm:"type:varchar(500)"`
	Price       float64       `json:"price"`
	Sizes       []SizeEntry   `json:"sizes" gorm:"serializer:json"`
	Stock       int           `json:"stock"`
	Status      ProductStatus `json:"status" gorm:"type:varchar(16);index"`
	OwnerID     string        `json:"owner_id" gorm:"type:varchar(36);index"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}
