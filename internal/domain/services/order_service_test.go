package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/splashbrothers/ordering/internal/domain/models"
	"github.com/splashbrothers/ordering/internal/infrastructure/sheets"
	"github.com/splashbrothers/ordering/internal/pkg/logger"
)

func newTestOrderService(catalog *fakeCatalogRepo, orders *fakeOrderRepo, mail *fakeMailer) *orderService {
	svc := NewOrderService(catalog, orders, mail, logger.Global()).(*orderService)
	svc.now = func() time.Time {
		return time.Date(2025, 6, 1, 14, 30, 0, 0, jst)
	}
	return svc
}

func TestSubmitRejectsMissingData(t *testing.T) {
	svc := newTestOrderService(&fakeCatalogRepo{}, newFakeOrderRepo(), &fakeMailer{})

	_, err := svc.Submit(context.Background(), SubmitOrderRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Missing required data")

	_, err = svc.Submit(context.Background(), SubmitOrderRequest{
		Items: []models.CartItem{{Name: "ポスター"}},
	})
	require.Error(t, err)
}

func TestSubmitWritesRegularRow(t *testing.T) {
	orders := newFakeOrderRepo()
	svc := newTestOrderService(&fakeCatalogRepo{}, orders, &fakeMailer{})

	orderNumber, err := svc.Submit(context.Background(), SubmitOrderRequest{
		Items: []models.CartItem{
			{Name: "スプシャン", Quantity: 2},
			{Name: "Tシャツ", SelectedSize: "L", SelectedColor: "黒", Quantity: 3},
		},
		StoreInfo: &models.OrderStoreInfo{ID: "store1", Name: "前橋店", Email: "maebashi@example.com"},
	})
	require.NoError(t, err)
	assert.Regexp(t, `^ORD-\d{5}$`, orderNumber)

	rows := orders.appended[sheets.SheetOrderHistory]
	require.Len(t, rows, 1)
	row := rows[0]
	require.Len(t, row, 47)
	assert.Equal(t, orderNumber, row[0])
	assert.Equal(t, "2025/06/01", row[1])
	assert.Equal(t, "14:30", row[2])
	assert.Equal(t, "前橋店", row[3])
	assert.Equal(t, "maebashi@example.com", row[4])
	assert.Equal(t, "スプシャン", row[5])
	assert.Equal(t, "2", row[8])
	assert.Equal(t, "Tシャツ", row[9])
	assert.Equal(t, "L", row[10])
	assert.Equal(t, "黒", row[11])
	assert.Equal(t, "3", row[12])

	assert.Empty(t, orders.appended[sheets.SheetHirockItemHistory])
}

func TestSubmitSplitsHirockItems(t *testing.T) {
	catalog := &fakeCatalogRepo{rows: [][]string{
		{"販促グッズ", "", "ポスター", "", "", "", "", "", HirockPartnerName, "hirock@example.com"},
	}}
	orders := newFakeOrderRepo()
	svc := newTestOrderService(catalog, orders, &fakeMailer{})

	orderNumber, err := svc.Submit(context.Background(), SubmitOrderRequest{
		Items: []models.CartItem{
			{Name: "ポスター", Quantity: 1},
			{Name: "スプワックス", Quantity: 1},
		},
		StoreInfo: &models.OrderStoreInfo{Name: "前橋店", Email: "maebashi@example.com"},
	})
	require.NoError(t, err)

	hirockRows := orders.appended[sheets.SheetHirockItemHistory]
	regularRows := orders.appended[sheets.SheetOrderHistory]
	require.Len(t, hirockRows, 1)
	require.Len(t, regularRows, 1)

	// both halves carry the same order number
	assert.Equal(t, orderNumber, hirockRows[0][0])
	assert.Equal(t, orderNumber, regularRows[0][0])
	assert.Equal(t, "ポスター", hirockRows[0][5])
	assert.Equal(t, "スプワックス", regularRows[0][5])
}

func TestSubmitNormalizesQuantities(t *testing.T) {
	orders := newFakeOrderRepo()
	svc := newTestOrderService(&fakeCatalogRepo{}, orders, &fakeMailer{})

	_, err := svc.Submit(context.Background(), SubmitOrderRequest{
		Items: []models.CartItem{
			{Name: "のぼり(6枚1セット)", Quantity: 6},
			{Name: "ポイントカード", Quantity: 1, SelectedQuantity: "3000"},
		},
		StoreInfo: &models.OrderStoreInfo{Name: "前橋店", Email: "maebashi@example.com"},
	})
	require.NoError(t, err)

	row := orders.appended[sheets.SheetOrderHistory][0]
	assert.Equal(t, "1", row[8])    // のぼり sets always store one set
	assert.Equal(t, "3000", row[12]) // tier quantity wins
}

func TestNotifyOrderFansOut(t *testing.T) {
	catalog := &fakeCatalogRepo{rows: [][]string{
		{"販促グッズ", "", "名刺", "", "", "", "", "", "印刷会社", "print@example.com"},
	}}
	mail := &fakeMailer{}
	svc := newTestOrderService(catalog, newFakeOrderRepo(), mail)

	req := SubmitOrderRequest{
		Items:       []models.CartItem{{Name: "名刺", Quantity: 1}},
		StoreInfo:   &models.OrderStoreInfo{Name: "前橋店", Email: "maebashi@example.com"},
		TotalAmount: 5500,
	}
	available, err := catalog.AvailableItems(context.Background())
	require.NoError(t, err)

	svc.notifyOrder(context.Background(), "ORD-00001", req, req.Items, available)

	require.Len(t, mail.confirmations, 1)
	assert.Equal(t, "maebashi@example.com", mail.confirmations[0].To)
	assert.Equal(t, 5500, mail.confirmations[0].TotalAmount)
	assert.Contains(t, mail.confirmations[0].Subject, "ORD-00001")

	require.Len(t, mail.partnerMails, 1)
	assert.Equal(t, "print@example.com", mail.partnerMails[0].To)
	assert.Equal(t, "印刷会社", mail.partnerMails[0].PartnerName)
}

func historyRow(orderNumber, date, tm, store, email string, items []models.OrderItem, shippingDate, status string) []string {
	row := make([]string, 47)
	row[0] = orderNumber
	row[1] = date
	row[2] = tm
	row[3] = store
	row[4] = email
	for i, item := range items {
		base := 5 + i*4
		row[base] = item.Name
		row[base+1] = item.Size
		row[base+2] = item.Color
		row[base+3] = item.Quantity
	}
	row[45] = shippingDate
	row[46] = status
	return row
}

func TestHistoryParsesRows(t *testing.T) {
	orders := newFakeOrderRepo()
	orders.history[sheets.SheetOrderHistory] = [][]string{
		historyRow("ORD-00042", "2025/05/01", "09:15", "高崎店", "takasaki@example.com",
			[]models.OrderItem{{Name: "Tシャツ", Size: "M", Color: "黒", Quantity: "2"}}, "", ""),
	}
	svc := newTestOrderService(&fakeCatalogRepo{}, orders, &fakeMailer{})

	got, err := svc.History(context.Background(), sheets.SheetOrderHistory)
	require.NoError(t, err)
	require.Len(t, got, 1)

	order := got[0]
	assert.Equal(t, "ORD-00042", order.OrderNumber)
	assert.Equal(t, models.OrderStatusProcessing, order.Status) // empty status defaults
	require.Len(t, order.Items, 1)
	assert.Equal(t, "Tシャツ", order.Items[0].Name)
	assert.Equal(t, "2", order.Items[0].Quantity)
}

func TestMergedHistory(t *testing.T) {
	orders := newFakeOrderRepo()
	orders.history[sheets.SheetOrderHistory] = [][]string{
		historyRow("ORD-00001", "2025/05/01", "09:00", "高崎店", "t@example.com",
			[]models.OrderItem{
				{Name: "名刺", Quantity: "1"},
				{Name: "スプワックス", Quantity: "1"}, // hidden from the merged view
			}, "", "処理中"),
		historyRow("ORD-00003", "2025/05/03", "09:00", "前橋店", "m@example.com",
			[]models.OrderItem{{Name: "スプシャン", Quantity: "1"}}, "", "処理中"),
	}
	orders.history[sheets.SheetHirockItemHistory] = [][]string{
		historyRow("ORD-00001", "2025/05/01", "09:00", "高崎店", "t@example.com",
			[]models.OrderItem{{Name: "ポスター", Quantity: "2"}}, "2025/05/10", "出荷済み"),
	}
	svc := newTestOrderService(&fakeCatalogRepo{}, orders, &fakeMailer{})

	got, err := svc.MergedHistory(context.Background())
	require.NoError(t, err)

	// ORD-00003 only held a supplier item, so it vanishes entirely
	require.Len(t, got, 1)
	order := got[0]
	assert.Equal(t, "ORD-00001", order.OrderNumber)
	assert.Equal(t, models.OrderStatusShipped, order.Status)
	assert.Equal(t, "2025/05/10", order.ShippingDate)
	require.Len(t, order.Items, 2)
	assert.Equal(t, "名刺", order.Items[0].Name)
	assert.Equal(t, "ポスター", order.Items[1].Name)
}

func TestUpdateStatusPrefersHirockSheet(t *testing.T) {
	orders := newFakeOrderRepo()
	orders.history[sheets.SheetHirockItemHistory] = [][]string{
		historyRow("ORD-00007", "2025/05/01", "09:00", "高崎店", "t@example.com", nil, "", "処理中"),
	}
	orders.history[sheets.SheetOrderHistory] = [][]string{
		historyRow("ORD-00007", "2025/05/01", "09:00", "高崎店", "t@example.com", nil, "", "処理中"),
	}
	svc := newTestOrderService(&fakeCatalogRepo{}, orders, &fakeMailer{})

	sheet, err := svc.UpdateStatus(context.Background(), "ORD-00007", models.OrderStatusInProgress)
	require.NoError(t, err)
	assert.Equal(t, sheets.SheetHirockItemHistory, sheet)

	assert.Equal(t, "対応中", orders.statuses[key(sheets.SheetHirockItemHistory, 2)])
	assert.Empty(t, orders.statuses[key(sheets.SheetOrderHistory, 2)])
}

func TestUpdateStatusUnknownOrder(t *testing.T) {
	svc := newTestOrderService(&fakeCatalogRepo{}, newFakeOrderRepo(), &fakeMailer{})

	_, err := svc.UpdateStatus(context.Background(), "ORD-99999", models.OrderStatusShipped)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Order not found in any sheet")
}

func TestUpdateShippingDateRegularSheet(t *testing.T) {
	orders := newFakeOrderRepo()
	orders.history[sheets.SheetOrderHistory] = [][]string{
		historyRow("ORD-00008", "2025/05/01", "09:00", "高崎店", "t@example.com", nil, "", "対応中"),
	}
	mail := &fakeMailer{}
	svc := newTestOrderService(&fakeCatalogRepo{}, orders, mail)

	sheet, err := svc.UpdateShippingDate(context.Background(), "ORD-00008", "2025/06/05")
	require.NoError(t, err)
	assert.Equal(t, sheets.SheetOrderHistory, sheet)
	assert.Equal(t, "2025/06/05", orders.shipped[key(sheets.SheetOrderHistory, 2)])

	// regular-sheet shipping updates do not mail the store
	assert.Empty(t, mail.shippingMails)
}

func TestNotifyShippingSendsMail(t *testing.T) {
	orders := newFakeOrderRepo()
	orders.history[sheets.SheetHirockItemHistory] = [][]string{
		historyRow("ORD-00009", "2025/05/01", "09:00", "高崎店", "t@example.com",
			[]models.OrderItem{{Name: "ポスター", Quantity: "1"}}, "", "対応中"),
	}
	mail := &fakeMailer{}
	svc := newTestOrderService(&fakeCatalogRepo{}, orders, mail)

	svc.notifyShipping(context.Background(), "ORD-00009", "2025/06/05")

	require.Len(t, mail.shippingMails, 1)
	sent := mail.shippingMails[0]
	assert.Equal(t, "t@example.com", sent.To)
	assert.Equal(t, "2025/06/05", sent.ShippingDate)
	require.Len(t, sent.Items, 1)
	assert.Equal(t, "ポスター", sent.Items[0].Name)
}

func TestHirockOrderNotFound(t *testing.T) {
	svc := newTestOrderService(&fakeCatalogRepo{}, newFakeOrderRepo(), &fakeMailer{})

	_, err := svc.HirockOrder(context.Background(), "ORD-00001")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Order not found")
}
