package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/splashbrothers/ordering/internal/domain/models"
)

// In-memory repository and mailer fakes shared by the service tests.

type fakeCatalogRepo struct {
	rows [][]string
	err  error
}

func (f *fakeCatalogRepo) Rows(ctx context.Context) ([][]string, error) {
	return f.rows, f.err
}

func (f *fakeCatalogRepo) AvailableItems(ctx context.Context) ([]models.AvailableItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	items := make([]models.AvailableItem, 0, len(f.rows))
	for _, row := range f.rows {
		item := models.AvailableItem{}
		if len(row) > 0 {
			item.Category = row[0]
		}
		if len(row) > 2 {
			item.Name = row[2]
		}
		if len(row) > 8 {
			item.PartnerName = row[8]
		}
		if len(row) > 9 {
			item.PartnerEmail = row[9]
		}
		items = append(items, item)
	}
	return items, nil
}

type fakeOrderRepo struct {
	mu       sync.Mutex
	appended map[string][][]string // sheet -> rows
	history  map[string][][]string
	statuses map[string]string // "sheet:row" -> status
	shipped  map[string]string // "sheet:row" -> shipping date
	err      error
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{
		appended: make(map[string][][]string),
		history:  make(map[string][][]string),
		statuses: make(map[string]string),
		shipped:  make(map[string]string),
	}
}

func (f *fakeOrderRepo) AppendRow(ctx context.Context, sheet string, row []string) error {
	if f.err != nil {
		return f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.appended[sheet] = append(f.appended[sheet], row)
	return nil
}

func (f *fakeOrderRepo) HistoryRows(ctx context.Context, sheet string) ([][]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.history[sheet], nil
}

func (f *fakeOrderRepo) FindRowByOrderNumber(ctx context.Context, sheet, orderNumber string) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	for i, row := range f.history[sheet] {
		if len(row) > 0 && row[0] == orderNumber {
			return i + 2, nil
		}
	}
	return 0, nil
}

func (f *fakeOrderRepo) UpdateStatus(ctx context.Context, sheet string, row int, status string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.statuses[key(sheet, row)] = status
	return nil
}

func (f *fakeOrderRepo) UpdateShippingDate(ctx context.Context, sheet string, row int, shippingDate string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.shipped[key(sheet, row)] = shippingDate
	return nil
}

func key(sheet string, row int) string {
	return fmt.Sprintf("%s:%d", sheet, row)
}

type fakeMachineRepo struct {
	rows     [][]string
	appended [][]string
	err      error
}

func (f *fakeMachineRepo) ItemRows(ctx context.Context) ([][]string, error) {
	return f.rows, f.err
}

func (f *fakeMachineRepo) AppendHistoryRow(ctx context.Context, row []string) error {
	if f.err != nil {
		return f.err
	}
	f.appended = append(f.appended, row)
	return nil
}

type fakeStoreRepo struct {
	rows [][]string
	err  error
}

func (f *fakeStoreRepo) Rows(ctx context.Context) ([][]string, error) {
	return f.rows, f.err
}

type fakeMailer struct {
	mu            sync.Mutex
	confirmations []OrderConfirmationEmail
	partnerMails  []PartnerNotificationEmail
	shippingMails []ShippingNotificationEmail
	partsMails    []PartsConfirmationEmail
	fail          bool
}

func (f *fakeMailer) SendOrderConfirmation(ctx context.Context, email OrderConfirmationEmail) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return errors.New("smtp down")
	}
	f.confirmations = append(f.confirmations, email)
	return nil
}

func (f *fakeMailer) SendPartnerNotification(ctx context.Context, email PartnerNotificationEmail) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return errors.New("smtp down")
	}
	f.partnerMails = append(f.partnerMails, email)
	return nil
}

func (f *fakeMailer) SendShippingNotification(ctx context.Context, email ShippingNotificationEmail) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return errors.New("smtp down")
	}
	f.shippingMails = append(f.shippingMails, email)
	return nil
}

func (f *fakeMailer) SendPartsConfirmation(ctx context.Context, email PartsConfirmationEmail) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return errors.New("smtp down")
	}
	f.partsMails = append(f.partsMails, email)
	return nil
}
