package repositories

import (
	"github.com/splashbrothers/ordering/internal/domain/repositories"
	"github.com/splashbrothers/ordering/internal/infrastructure/sheets"
)

// Provider holds all repository instances
type Provider struct {
	Catalog repositories.CatalogRepository
	Order   repositories.OrderRepository
	Store   repositories.StoreRepository
	Machine repositories.MachineRepository
}

// NewProvider creates all repositories over the given spreadsheet values API
func NewProvider(values sheets.ValuesAPI) *Provider {
	return &Provider{
		Catalog: NewCatalogRepository(values),
		Order:   NewOrderRepository(values),
		Store:   NewStoreRepository(values),
		Machine: NewMachineRepository(values),
	}
}
