package repositories

import (
	"context"

	"github.com/splashbrothers/ordering/internal/domain/repositories"
	"github.com/splashbrothers/ordering/internal/infrastructure/sheets"
)

type storeRepository struct {
	values sheets.ValuesAPI
}

func NewStoreRepository(values sheets.ValuesAPI) repositories.StoreRepository {
	return &storeRepository{values: values}
}

func (r *storeRepository) Rows(ctx context.Context) ([][]string, error) {
	return r.values.Get(ctx, sheets.RangeStoreInfo)
}
