package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	apperrors "github.com/splashbrothers/ordering/internal/pkg/errors"
	"github.com/splashbrothers/ordering/internal/pkg/logger"

	"github.com/splashbrothers/ordering/internal/domain/models"
	"github.com/splashbrothers/ordering/internal/domain/repositories"
	"github.com/splashbrothers/ordering/internal/infrastructure/sheets"
)

// orderRowWidth is the full width of a history row: five header cells, seven
// four-cell item slots, then filler up to shipping date (AT) and status (AU).
const (
	orderRowWidth       = 47
	orderItemsStart     = 5
	orderItemSpan       = 4
	orderItemsReadLimit = 33
	orderShippingCol    = 45
	orderStatusCol      = 46
)

// selectedQuantityItems store the buyer-picked tier quantity instead of the
// cart line quantity when the order is written to the sheet
var selectedQuantityItems = []string{
	"ポイントカード",
	"サブスクメンバーズカード",
	"サブスクフライヤー",
	"フリーチケット",
	"クーポン券",
	"名刺",
	"のぼり",
	"お年賀(マイクロファイバークロス)",
}

// mergedHistoryExcludedItems are supplier-fulfilled goods hidden from the
// partner-facing merged history view
var mergedHistoryExcludedItems = []string{
	"スプシャン",
	"スプワックス",
	"スプコート",
	"セラミック",
	"スプタイヤ",
	"マイクロファイバー",
	"ピッカークロス",
}

var jst = time.FixedZone("JST", 9*60*60)

// SubmitOrderRequest is the checkout payload
type SubmitOrderRequest struct {
	Items       []models.CartItem      `json:"items"`
	StoreInfo   *models.OrderStoreInfo `json:"storeInfo"`
	TotalAmount int                    `json:"totalAmount"`
}

// OrderService handles order submission and the admin-side order lifecycle
type OrderService interface {
	Submit(ctx context.Context, req SubmitOrderRequest) (string, error)
	History(ctx context.Context, sheet string) ([]models.Order, error)
	MergedHistory(ctx context.Context) ([]models.Order, error)
	HirockOrder(ctx context.Context, orderNumber string) (*models.Order, error)
	UpdateStatus(ctx context.Context, orderNumber string, status models.OrderStatus) (string, error)
	UpdateShippingDate(ctx context.Context, orderNumber, shippingDate string) (string, error)
}

type orderService struct {
	catalogRepo repositories.CatalogRepository
	orderRepo   repositories.OrderRepository
	mailer      Mailer
	log         *logger.Logger
	now         func() time.Time
}

// NewOrderService creates a new order service
func NewOrderService(catalogRepo repositories.CatalogRepository, orderRepo repositories.OrderRepository, mailer Mailer, log *logger.Logger) OrderService {
	return &orderService{
		catalogRepo: catalogRepo,
		orderRepo:   orderRepo,
		mailer:      mailer,
		log:         log,
		now:         time.Now,
	}
}

// Submit persists a checkout to the history sheets and fans out the
// notification mails. Items split between the regular and hirock sheets by
// partner; both rows share one order number. Mail delivery is best effort
// and never delays or fails the submission.
func (s *orderService) Submit(ctx context.Context, req SubmitOrderRequest) (string, error) {
	if len(req.Items) == 0 || req.StoreInfo == nil {
		return "", apperrors.MissingData("Missing required data")
	}

	items := normalizeOrderQuantities(req.Items)

	now := s.now().In(jst)
	dateStr := now.Format("2006/01/02")
	timeStr := now.Format("15:04")
	orderNumber := GenerateOrderNumber(now)

	// routing degrades gracefully: with no catalog every item is regular
	available, err := s.catalogRepo.AvailableItems(ctx)
	if err != nil {
		s.log.WithOrder(orderNumber).Warn("catalog unavailable for partner routing", zap.Error(err))
		available = nil
	}

	hirockItems, regularItems := SplitBySheet(items, available)

	if len(regularItems) > 0 {
		row := buildOrderRow(orderNumber, dateStr, timeStr, req.StoreInfo, regularItems)
		if err := s.orderRepo.AppendRow(ctx, sheets.SheetOrderHistory, row); err != nil {
			return "", apperrors.SheetError("Failed to save order data", err)
		}
	}
	if len(hirockItems) > 0 {
		row := buildOrderRow(orderNumber, dateStr, timeStr, req.StoreInfo, hirockItems)
		if err := s.orderRepo.AppendRow(ctx, sheets.SheetHirockItemHistory, row); err != nil {
			return "", apperrors.SheetError("Failed to save order data", err)
		}
	}

	go s.notifyOrder(context.WithoutCancel(ctx), orderNumber, req, items, available)

	return orderNumber, nil
}

// notifyOrder sends the store confirmation and one mail per supplier partner
func (s *orderService) notifyOrder(ctx context.Context, orderNumber string, req SubmitOrderRequest, items []models.CartItem, available []models.AvailableItem) {
	log := s.log.WithOrder(orderNumber)

	err := s.mailer.SendOrderConfirmation(ctx, OrderConfirmationEmail{
		To:          req.StoreInfo.Email,
		Subject:     fmt.Sprintf("【SPLASH'N'GO!】発注確認 (%s)", orderNumber),
		OrderNumber: orderNumber,
		StoreName:   req.StoreInfo.Name,
		Items:       items,
		TotalAmount: req.TotalAmount,
	})
	if err != nil {
		log.Error("order confirmation mail failed", zap.Error(err))
	}

	for _, group := range GroupByPartner(items, available) {
		err := s.mailer.SendPartnerNotification(ctx, PartnerNotificationEmail{
			To:          group.Email,
			Subject:     fmt.Sprintf("【SPLASH'N'GO!】発注通知 (%s)", orderNumber),
			OrderNumber: orderNumber,
			StoreName:   req.StoreInfo.Name,
			PartnerName: group.Name,
			Items:       group.Items,
		})
		if err != nil {
			log.Error("partner mail failed", zap.String("partner", group.Name), zap.Error(err))
		}
	}
}

// normalizeOrderQuantities fixes up quantities before the row is written:
// のぼり sets always count as one set, and tiered promotional goods store the
// selected tier quantity.
func normalizeOrderQuantities(items []models.CartItem) []models.CartItem {
	out := make([]models.CartItem, len(items))
	for i, item := range items {
		if containsAny(item.Name, []string{"のぼり(6枚1セット)", "のぼり(10枚1セット)"}) {
			item.Quantity = 1
		} else if containsAny(item.Name, selectedQuantityItems) {
			if n := item.SelectedQuantity.Int(); n > 0 {
				item.Quantity = n
			}
		}
		out[i] = item
	}
	return out
}

func buildOrderRow(orderNumber, dateStr, timeStr string, store *models.OrderStoreInfo, items []models.CartItem) []string {
	row := make([]string, orderRowWidth)
	row[0] = orderNumber
	row[1] = dateStr
	row[2] = timeStr
	row[3] = store.Name
	row[4] = store.Email

	for i, item := range items {
		base := orderItemsStart + i*orderItemSpan
		if base >= orderRowWidth-3 {
			break
		}
		row[base] = item.Name
		row[base+1] = item.SelectedSize
		row[base+2] = item.SelectedColor
		row[base+3] = fmt.Sprintf("%d", item.Quantity)
	}
	return row
}

// History returns the parsed orders of one history sheet, oldest first as
// stored.
func (s *orderService) History(ctx context.Context, sheet string) ([]models.Order, error) {
	rows, err := s.orderRepo.HistoryRows(ctx, sheet)
	if err != nil {
		return nil, apperrors.SheetError("Error fetching data from Google Sheets", err)
	}

	orders := make([]models.Order, 0, len(rows))
	for i, row := range rows {
		orders = append(orders, parseOrderRow(row, i))
	}
	return orders, nil
}

func parseOrderRow(row []string, index int) models.Order {
	order := models.Order{
		OrderNumber: cell(row, 0),
		OrderDate:   cell(row, 1),
		OrderTime:   cell(row, 2),
		StoreName:   cell(row, 3),
		Email:       cell(row, 4),
		Items:       parseOrderItems(row),
		Status:      models.OrderStatus(cell(row, orderStatusCol)),
	}
	if order.OrderNumber == "" {
		// legacy rows written before order numbers existed
		order.OrderNumber = fmt.Sprintf("ORD-%05d", index+1)
	}
	if order.Status == "" {
		order.Status = models.OrderStatusProcessing
	}
	order.ShippingDate = cell(row, orderShippingCol)
	return order
}

func parseOrderItems(row []string) []models.OrderItem {
	var items []models.OrderItem
	limit := len(row)
	if limit > orderItemsReadLimit {
		limit = orderItemsReadLimit
	}
	for i := orderItemsStart; i < limit; i += orderItemSpan {
		if row[i] == "" {
			continue
		}
		quantity := cell(row, i+3)
		if quantity == "" {
			quantity = "1"
		}
		items = append(items, models.OrderItem{
			Name:     row[i],
			Size:     cell(row, i+1),
			Color:    cell(row, i+2),
			Quantity: quantity,
		})
	}
	return items
}

// MergedHistory unions both history sheets into one admin view: orders split
// across sheets merge on order number, a shipped half marks the whole order
// shipped, supplier-fulfilled items are hidden, and the result sorts newest
// first.
func (s *orderService) MergedHistory(ctx context.Context) ([]models.Order, error) {
	regular, err := s.History(ctx, sheets.SheetOrderHistory)
	if err != nil {
		return nil, err
	}
	hirock, err := s.History(ctx, sheets.SheetHirockItemHistory)
	if err != nil {
		return nil, err
	}

	index := make(map[string]int)
	var merged []models.Order
	for _, order := range append(regular, hirock...) {
		i, ok := index[order.OrderNumber]
		if !ok {
			index[order.OrderNumber] = len(merged)
			merged = append(merged, order)
			continue
		}
		merged[i].Items = append(merged[i].Items, order.Items...)
		if order.Status == models.OrderStatusShipped {
			merged[i].Status = models.OrderStatusShipped
			merged[i].ShippingDate = order.ShippingDate
		}
	}

	filtered := merged[:0]
	for _, order := range merged {
		var items []models.OrderItem
		for _, item := range order.Items {
			if !containsAny(item.Name, mergedHistoryExcludedItems) {
				items = append(items, item)
			}
		}
		if len(items) == 0 {
			continue
		}
		order.Items = items
		filtered = append(filtered, order)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return orderTimestamp(filtered[i]) > orderTimestamp(filtered[j])
	})
	return filtered, nil
}

// orderTimestamp gives a sortable key; the stored format is already
// lexicographically ordered (2006/01/02 15:04)
func orderTimestamp(o models.Order) string {
	return o.OrderDate + " " + o.OrderTime
}

// HirockOrder returns one order from the hirock sheet by its number
func (s *orderService) HirockOrder(ctx context.Context, orderNumber string) (*models.Order, error) {
	rows, err := s.orderRepo.HistoryRows(ctx, sheets.SheetHirockItemHistory)
	if err != nil {
		return nil, apperrors.SheetError("Failed to fetch order items", err)
	}
	for i, row := range rows {
		if cell(row, 0) == orderNumber {
			order := parseOrderRow(row, i)
			return &order, nil
		}
	}
	return nil, apperrors.NotFound("Order not found")
}

// UpdateStatus writes a new status to whichever sheet holds the order number,
// hirock first. Returns the sheet it updated.
func (s *orderService) UpdateStatus(ctx context.Context, orderNumber string, status models.OrderStatus) (string, error) {
	sheet, row, err := s.locateOrder(ctx, orderNumber)
	if err != nil {
		return "", err
	}
	if err := s.orderRepo.UpdateStatus(ctx, sheet, row, string(status)); err != nil {
		return "", apperrors.SheetError("Failed to update order status", err)
	}
	return sheet, nil
}

// UpdateShippingDate writes the shipping date to whichever sheet holds the
// order, hirock first. Hirock orders additionally notify the store by mail
// since that supplier ships independently of the head office.
func (s *orderService) UpdateShippingDate(ctx context.Context, orderNumber, shippingDate string) (string, error) {
	sheet, row, err := s.locateOrder(ctx, orderNumber)
	if err != nil {
		return "", err
	}
	if err := s.orderRepo.UpdateShippingDate(ctx, sheet, row, shippingDate); err != nil {
		return "", apperrors.SheetError("Failed to update shipping date", err)
	}

	if sheet == sheets.SheetHirockItemHistory {
		go s.notifyShipping(context.WithoutCancel(ctx), orderNumber, shippingDate)
	}
	return sheet, nil
}

func (s *orderService) notifyShipping(ctx context.Context, orderNumber, shippingDate string) {
	log := s.log.WithOrder(orderNumber)

	order, err := s.HirockOrder(ctx, orderNumber)
	if err != nil {
		log.Error("shipping notification lookup failed", zap.Error(err))
		return
	}
	if order.Email == "" {
		log.Warn("order has no store email, skipping shipping notification")
		return
	}

	err = s.mailer.SendShippingNotification(ctx, ShippingNotificationEmail{
		To:           order.Email,
		OrderNumber:  orderNumber,
		StoreName:    order.StoreName,
		ShippingDate: shippingDate,
		Items:        order.Items,
	})
	if err != nil {
		log.Error("shipping notification mail failed", zap.Error(err))
	}
}

func (s *orderService) locateOrder(ctx context.Context, orderNumber string) (string, int, error) {
	for _, sheet := range []string{sheets.SheetHirockItemHistory, sheets.SheetOrderHistory} {
		row, err := s.orderRepo.FindRowByOrderNumber(ctx, sheet, orderNumber)
		if err != nil {
			return "", 0, apperrors.SheetError("Error fetching data from Google Sheets", err)
		}
		if row > 0 {
			return sheet, row, nil
		}
	}
	return "", 0, apperrors.NotFound("Order not found in any sheet")
}
