// Package inventory derives a product's stock and availability status from
// its per-size breakdown. Both functions are pure and total; callers must
// never set a status without recomputing stock first.
package inventory

import "catalog/internal/models"

// ComputeStock returns the total quantity across all size entries.
// An empty breakdown yields 0.
func ComputeStock(sizes []models.SizeEntry) int {
	total := 0
	for _, entry := range sizes {
		total += entry.Quantity
	}
	return total
}

// DeriveStatus projects an availability status from a stock count.
func DeriveStatus(stock int) models.ProductStatus {
	if stock > 0 {
		return models.StatusInStock
	}
	return models.StatusOutOfStock
}
