package repositories

import (
	"context"

	"github.com/splashbrothers/ordering/internal/domain/models"
	"github.com/splashbrothers/ordering/internal/domain/repositories"
	"github.com/splashbrothers/ordering/internal/infrastructure/sheets"
)

// Column offsets within Available_items!A2:K
const (
	availColCategory     = 0  // A
	availColName         = 2  // C
	availColColor        = 3  // D
	availColSize         = 4  // E
	availColAmount       = 5  // F
	availColPrice        = 6  // G
	availColPricePerUnit = 7  // H
	availColPartnerName  = 8  // I
	availColPartnerEmail = 9  // J
	availColImageURL     = 10 // K
)

type catalogRepository struct {
	values sheets.ValuesAPI
}

func NewCatalogRepository(values sheets.ValuesAPI) repositories.CatalogRepository {
	return &catalogRepository{values: values}
}

func (r *catalogRepository) Rows(ctx context.Context) ([][]string, error) {
	return r.values.Get(ctx, sheets.RangeAvailableItems)
}

func (r *catalogRepository) AvailableItems(ctx context.Context) ([]models.AvailableItem, error) {
	rows, err := r.Rows(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]models.AvailableItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, models.AvailableItem{
			Category:     cell(row, availColCategory),
			Name:         cell(row, availColName),
			PartnerName:  cell(row, availColPartnerName),
			PartnerEmail: cell(row, availColPartnerEmail),
		})
	}
	return items, nil
}

// cell returns row[i] or "" when the row is too short. Sheet rows are ragged:
// trailing blank cells are simply absent.
func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}
