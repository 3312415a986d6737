package repositories

import (
	"errors"

	"catalog/internal/models"
)

// ErrProductNotFound is returned when no product matches the given ID.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the interface for product data access.
//
// Implementations generate IDs for new products and maintain the
// created_at/updated_at timestamps. Ownership checks are NOT performed
// here; the service layer is responsible for them.
type ProductRepository interface {
	Create(product *models.Product) error
	GetByID(id string) (*models.Product, error)
	// FindByOwner returns the owner's products, optionally narrowed by a
	// case-insensitive substring match on name or description and by an
	// exact status match. Both filters combine with AND. The result order
	// is deterministic for identical inputs.
	FindByOwner(ownerID, search string, status models.ProductStatus) ([]models.Product, error)
	Update(product *models.Product) error
	Delete(product *models.Product) error
}
