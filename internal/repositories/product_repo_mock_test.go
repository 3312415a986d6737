package repositories_test

import (
	"testing"
	"time"

	"catalog/internal/models"
	"catalog/internal/repositories"

	"github.com/stretchr/testify/assert"
)

func seedCatalog(t *testing.T, repo *repositories.MockProductRepository) {
	t.Helper()
	products := []models.Product{
		{Name: "iPhone 13 Pro", Description: "Latest iPhone model", OwnerID: "user-a", Status: models.StatusInStock, Stock: 6},
		{Name: "Pixel 9", Description: "Android phone", OwnerID: "user-a", Status: models.StatusOutOfStock, Stock: 0},
		{Name: "Desk Lamp", Description: "LED lamp", OwnerID: "user-a", Status: models.StatusInStock, Stock: 3},
		{Name: "iPhone 13 Pro", Description: "Same name, other owner", OwnerID: "user-b", Status: models.StatusInStock, Stock: 2},
	}
	for i := range products {
		assert.NoError(t, repo.Create(&products[i]))
		// Keep creation times distinct so the result order is stable.
		time.Sleep(time.Millisecond)
	}
}

func TestMockProductRepository_FindByOwner_Scoping(t *testing.T) {
	repo := repositories.NewMockProductRepository()
	seedCatalog(t, repo)

	products, err := repo.FindByOwner("user-a", "", "")
	assert.NoError(t, err)
	assert.Len(t, products, 3)
	for _, p := range products {
		assert.Equal(t, "user-a", p.OwnerID)
	}

	// An owner with no products gets an empty result, not an error.
	products, err = repo.FindByOwner("user-c", "", "")
	assert.NoError(t, err)
	assert.Empty(t, products)
}

func TestMockProductRepository_FindByOwner_Search(t *testing.T) {
	repo := repositories.NewMockProductRepository()
	seedCatalog(t, repo)

	// Case-insensitive substring over name
	products, err := repo.FindByOwner("user-a", "phone", "")
	assert.NoError(t, err)
	assert.Len(t, products, 2) // iPhone (name) and Pixel (description "Android phone")

	// Substring over description only
	products, err = repo.FindByOwner("user-a", "LED", "")
	assert.NoError(t, err)
	assert.Len(t, products, 1)
	assert.Equal(t, "Desk Lamp", products[0].Name)

	// No match
	products, err = repo.FindByOwner("user-a", "tablet", "")
	assert.NoError(t, err)
	assert.Empty(t, products)
}

func TestMockProductRepository_FindByOwner_StatusAndConjunction(t *testing.T) {
	repo := repositories.NewMockProductRepository()
	seedCatalog(t, repo)

	products, err := repo.FindByOwner("user-a", "", models.StatusOutOfStock)
	assert.NoError(t, err)
	assert.Len(t, products, 1)
	assert.Equal(t, "Pixel 9", products[0].Name)

	// Both filters combine with AND
	products, err = repo.FindByOwner("user-a", "phone", models.StatusInStock)
	assert.NoError(t, err)
	assert.Len(t, products, 1)
	assert.Equal(t, "iPhone 13 Pro", products[0].Name)
}

func TestMockProductRepository_FindByOwner_DeterministicOrder(t *testing.T) {
	repo := repositories.NewMockProductRepository()
	seedCatalog(t, repo)

	first, err := repo.FindByOwner("user-a", "", "")
	assert.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := repo.FindByOwner("user-a", "", "")
		assert.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestMockProductRepository_Lifecycle(t *testing.T) {
	repo := repositories.NewMockProductRepository()

	product := &models.Product{Name: "Test Product", OwnerID: "user-a"}
	assert.NoError(t, repo.Create(product))
	assert.NotEmpty(t, product.ID)
	assert.False(t, product.CreatedAt.IsZero())

	loaded, err := repo.GetByID(product.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Test Product", loaded.Name)

	loaded.Name = "Renamed"
	assert.NoError(t, repo.Update(loaded))
	reloaded, err := repo.GetByID(product.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Renamed", reloaded.Name)
	assert.Equal(t, product.CreatedAt.Unix(), reloaded.CreatedAt.Unix())

	assert.NoError(t, repo.Delete(reloaded))
	_, err = repo.GetByID(product.ID)
	assert.ErrorIs(t, err, repositories.ErrProductNotFound)

	// Deleting again reports not found
	assert.ErrorIs(t, repo.Delete(reloaded), repositories.ErrProductNotFound)
}

func TestMockProductRepository_UpdateMissing(t *testing.T) {
	repo := repositories.NewMockProductRepository()
	err := repo.Update(&models.Product{ID: "ghost"})
	assert.ErrorIs(t, err, repositories.ErrProductNotFound)
}
