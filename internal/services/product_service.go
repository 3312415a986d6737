package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"catalog/internal/inventory"
	"catalog/internal/models"
	"catalog/internal/repositories"

	"github.com/go-playground/validator/v10"
)

// EventPublisher publishes catalog events to a message broker.
type EventPublisher interface {
	Publish(routingKey string, body []byte) error
}

// CreateProductInput carries the caller-supplied fields for a new product.
// Stock and status are not accepted; they are derived from Sizes.
type CreateProductInput struct {
	Name        string             `json:"name" validate:"required,max=100"`
	Description string             `json:"description" validate:"max=500"`
	Price       float64            `json:"price" validate:"gte=0"`
	Sizes       []models.SizeEntry `json:"sizes" validate:"required,min=1,dive"`
}

// UpdateProductInput carries a partial update: only non-nil fields change.
// A supplied Sizes list fully replaces the existing breakdown.
type UpdateProductInput struct {
	Name        *string            `json:"name" validate:"omitempty,max=100"`
	Description *string            `json:"description" validate:"omitempty,max=500"`
	Price       *float64           `json:"price" validate:"omitempty,gte=0"`
	Sizes       []models.SizeEntry `json:"sizes" validate:"omitempty,min=1,dive"`
}

// GetProductsFilter narrows a product listing. Both fields are optional and
// combine with AND.
type GetProductsFilter struct {
	Search string               `json:"search" validate:"omitempty,max=100"`
	Status models.ProductStatus `json:"status" validate:"omitempty,oneof=IN_STOCK OUT_OF_STOCK"`
}

// ProductService handles catalog business logic: ownership enforcement,
// input validation and derived stock/status maintenance.
type ProductService struct {
	repo     repositories.ProductRepository
	logger   *slog.Logger
	validate *validator.Validate
	events   EventPublisher // may be nil; publishing is best-effort
}

// NewProductService creates a new ProductService. A nil logger falls back to
// slog.Default; a nil publisher disables event publishing.
func NewProductService(repo repositories.ProductRepository, logger *slog.Logger, events EventPublisher) *ProductService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProductService{
		repo:     repo,
		logger:   logger,
		validate: validator.New(),
		events:   events,
	}
}

// CreateProduct validates the input, derives stock and status from the size
// breakdown and persists a new product owned by ownerID.
func (s *ProductService) CreateProduct(ownerID string, in CreateProductInput) (*models.Product, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, newValidationError(err)
	}

	stock := inventory.ComputeStock(in.Sizes)
	product := &models.Product{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Sizes:       in.Sizes,
		Stock:       stock,
		Status:      inventory.DeriveStatus(stock),
		OwnerID:     ownerID,
	}

	if err := s.repo.Create(product); err != nil {
		s.logger.Error("failed to create product", "owner_id", ownerID, "error", err)
		return nil, ErrStorage
	}

	s.publishEvent("product.created", product)
	return product, nil
}

// GetProductByID returns the product with the given ID if it is owned by
// callerID. A missing product and an ownership mismatch are reported
// identically as ErrNotFound.
func (s *ProductService) GetProductByID(id, callerID string) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			return nil, ErrNotFound
		}
		s.logger.Error("failed to get product", "product_id", id, "error", err)
		return nil, ErrStorage
	}
	if product.OwnerID != callerID {
		return nil, ErrNotFound
	}
	return product, nil
}

// GetProducts lists the caller's products, narrowed by the optional filter.
func (s *ProductService) GetProducts(callerID string, filter GetProductsFilter) ([]models.Product, error) {
	if err := s.validate.Struct(filter); err != nil {
		return nil, newValidationError(err)
	}

	products, err := s.repo.FindByOwner(callerID, filter.Search, filter.Status)
	if err != nil {
		s.logger.Error("failed to list products",
			"owner_id", callerID,
			"search", filter.Search,
			"status", filter.Status,
			"error", err)
		return nil, ErrStorage
	}
	return products, nil
}

// UpdateProduct applies a partial update to a product owned by callerID.
// When Sizes is supplied the breakdown is replaced wholesale and stock and
// status are recomputed from it; otherwise both are left untouched.
func (s *ProductService) UpdateProduct(id, callerID string, in UpdateProductInput) (*models.Product, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, newValidationError(err)
	}
	// An empty (but present) breakdown slips past omitempty; a product must
	// always keep at least one size entry.
	if in.Sizes != nil && len(in.Sizes) == 0 {
		return nil, &ValidationError{Fields: map[string]string{
			"Sizes": "field 'Sizes' failed on the 'min' tag",
		}}
	}

	product, err := s.GetProductByID(id, callerID)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.Sizes != nil {
		product.Sizes = in.Sizes
		product.Stock = inventory.ComputeStock(in.Sizes)
		product.Status = inventory.DeriveStatus(product.Stock)
	}

	if err := s.repo.Update(product); err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			return nil, ErrNotFound
		}
		s.logger.Error("failed to update product", "product_id", id, "error", err)
		return nil, ErrStorage
	}

	s.publishEvent("product.updated", product)
	return product, nil
}

// DeleteProduct removes a product owned by callerID and returns the removed
// record for confirmation.
func (s *ProductService) DeleteProduct(id, callerID string) (*models.Product, error) {
	product, err := s.GetProductByID(id, callerID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Delete(product); err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			return nil, ErrNotFound
		}
		s.logger.Error("failed to delete product", "product_id", id, "error", err)
		return nil, ErrStorage
	}

	s.publishEvent("product.deleted", product)
	return product, nil
}

// publishEvent emits a catalog event. Failures are logged and dropped; the
// catalog operation itself has already succeeded.
func (s *ProductService) publishEvent(routingKey string, product *models.Product) {
	if s.events == nil {
		return
	}

	body, err := json.Marshal(map[string]interface{}{
		"product_id": product.ID,
		"owner_id":   product.OwnerID,
		"status":     product.Status,
		"stock":      product.Stock,
	})
	if err != nil {
		s.logger.Warn("failed to marshal catalog event", "routing_key", routingKey, "error", err)
		return
	}

	if err := s.events.Publish(routingKey, body); err != nil {
		s.logger.Warn("failed to publish catalog event",
			"routing_key", routingKey,
			"product_id", product.ID,
			"error", err)
	}
}

// newValidationError converts validator output into a ValidationError with
// one message per failing field.
func newValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return &ValidationError{Fields: map[string]string{"input": err.Error()}}
	}

	fields := make(map[string]string, len(verrs))
	for _, e := range verrs {
		fields[e.Field()] = fmt.Sprintf("field '%s' failed on the '%s' tag", e.Field(), e.Tag())
	}
	return &ValidationError{Fields: fields}
}
