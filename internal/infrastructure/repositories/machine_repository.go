package repositories

import (
	"context"

	"github.com/splashbrothers/ordering/internal/domain/repositories"
	"github.com/splashbrothers/ordering/internal/infrastructure/sheets"
)

type machineRepository struct {
	values sheets.ValuesAPI
}

func NewMachineRepository(values sheets.ValuesAPI) repositories.MachineRepository {
	return &machineRepository{values: values}
}

func (r *machineRepository) ItemRows(ctx context.Context) ([][]string, error) {
	return r.values.Get(ctx, sheets.RangeMachineItems)
}

func (r *machineRepository) AppendHistoryRow(ctx context.Context, row []string) error {
	return r.values.Append(ctx, sheets.SheetMachineItemHistory+"!A1", [][]string{row})
}
