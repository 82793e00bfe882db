package repositories

import (
	"context"

	"github.com/splashbrothers/ordering/internal/domain/models"
)

// CatalogRepository reads the Available_items sheet
type CatalogRepository interface {
	// Rows returns the raw data rows (header excluded)
	Rows(ctx context.Context) ([][]string, error)
	// AvailableItems returns the flat per-row view used for partner routing
	AvailableItems(ctx context.Context) ([]models.AvailableItem, error)
}

// OrderRepository reads and writes the two order history sheets. The sheet
// argument is one of sheets.SheetOrderHistory / sheets.SheetHirockItemHistory.
type OrderRepository interface {
	AppendRow(ctx context.Context, sheet string, row []string) error
	HistoryRows(ctx context.Context, sheet string) ([][]string, error)
	// FindRowByOrderNumber scans column A and returns the 1-indexed sheet row
	// of the first match, or 0 when the order number is absent.
	FindRowByOrderNumber(ctx context.Context, sheet, orderNumber string) (int, error)
	UpdateStatus(ctx context.Context, sheet string, row int, status string) error
	UpdateShippingDate(ctx context.Context, sheet string, row int, shippingDate string) error
}

// StoreRepository reads the store_info sheet
type StoreRepository interface {
	Rows(ctx context.Context) ([][]string, error)
}

// MachineRepository reads the spare-parts catalog and appends parts orders
type MachineRepository interface {
	ItemRows(ctx context.Context) ([][]string, error)
	AppendHistoryRow(ctx context.Context, row []string) error
}
