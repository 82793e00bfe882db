package repositories

import (
	"context"
	"fmt"

	"github.com/splashbrothers/ordering/internal/domain/repositories"
	"github.com/splashbrothers/ordering/internal/infrastructure/sheets"
)

type orderRepository struct {
	values sheets.ValuesAPI
}

func NewOrderRepository(values sheets.ValuesAPI) repositories.OrderRepository {
	return &orderRepository{values: values}
}

func (r *orderRepository) AppendRow(ctx context.Context, sheet string, row []string) error {
	return r.values.Append(ctx, sheet+"!A1", [][]string{row})
}

func (r *orderRepository) HistoryRows(ctx context.Context, sheet string) ([][]string, error) {
	return r.values.Get(ctx, sheet+"!A2:AV")
}

func (r *orderRepository) FindRowByOrderNumber(ctx context.Context, sheet, orderNumber string) (int, error) {
	rows, err := r.values.Get(ctx, sheet+"!A2:A")
	if err != nil {
		return 0, err
	}
	for i, row := range rows {
		if cell(row, 0) == orderNumber {
			// data starts on sheet row 2 (row 1 is the header)
			return i + 2, nil
		}
	}
	return 0, nil
}

// UpdateStatus patches the status cell (column AU) of the given sheet row
func (r *orderRepository) UpdateStatus(ctx context.Context, sheet string, row int, status string) error {
	return r.values.Update(ctx, fmt.Sprintf("%s!AU%d", sheet, row), [][]string{{status}})
}

// UpdateShippingDate patches the shipping date cell (column AT) of the given sheet row
func (r *orderRepository) UpdateShippingDate(ctx context.Context, sheet string, row int, shippingDate string) error {
	return r.values.Update(ctx, fmt.Sprintf("%s!AT%d", sheet, row), [][]string{{shippingDate}})
}
