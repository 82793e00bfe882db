package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	apperrors "github.com/splashbrothers/ordering/internal/pkg/errors"
	"github.com/splashbrothers/ordering/internal/pkg/logger"

	"github.com/splashbrothers/ordering/internal/domain/models"
	"github.com/splashbrothers/ordering/internal/domain/repositories"
)

// SubmitPartsOrderRequest is the spare-parts checkout payload
type SubmitPartsOrderRequest struct {
	Items          []models.PartsCartItem `json:"items"`
	StoreInfo      *models.OrderStoreInfo `json:"storeInfo"`
	ShippingMethod models.ShippingMethod  `json:"shippingMethod"`
}

// PartsService handles the car wash machine spare-parts flow
type PartsService interface {
	MachineItems(ctx context.Context) ([]models.MachineItem, error)
	Submit(ctx context.Context, req SubmitPartsOrderRequest) (string, error)
}

type partsService struct {
	machineRepo repositories.MachineRepository
	mailer      Mailer
	log         *logger.Logger
	now         func() time.Time
}

// NewPartsService creates a new parts service
func NewPartsService(machineRepo repositories.MachineRepository, mailer Mailer, log *logger.Logger) PartsService {
	return &partsService{
		machineRepo: machineRepo,
		mailer:      mailer,
		log:         log,
		now:         time.Now,
	}
}

// MachineItems lists orderable parts from the machine_item sheet, skipping
// rows missing a name, category or store.
func (s *partsService) MachineItems(ctx context.Context) ([]models.MachineItem, error) {
	rows, err := s.machineRepo.ItemRows(ctx)
	if err != nil {
		return nil, apperrors.SheetError("Error fetching data from Google Sheets", err)
	}

	items := make([]models.MachineItem, 0, len(rows))
	for i, row := range rows {
		item := models.MachineItem{
			ID:        fmt.Sprintf("machine-item-%d", i+1),
			StoreName: cell(row, 1),
			Category:  cell(row, 2),
			ItemName:  cell(row, 3),
		}
		if strings.TrimSpace(item.ItemName) == "" ||
			strings.TrimSpace(item.Category) == "" ||
			strings.TrimSpace(item.StoreName) == "" {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

// Submit appends one machine_item_history row per part and mails the store a
// confirmation with the head office in CC. Mail delivery is best effort.
func (s *partsService) Submit(ctx context.Context, req SubmitPartsOrderRequest) (string, error) {
	if len(req.Items) == 0 || req.StoreInfo == nil {
		return "", apperrors.MissingData("Missing required data")
	}

	now := s.now().In(jst)
	dateStr := now.Format("2006/01/02")
	timeStr := now.Format("15:04")
	orderNumber := GeneratePartsOrderNumber(now)

	for _, item := range req.Items {
		row := []string{
			orderNumber,
			dateStr,
			timeStr,
			req.StoreInfo.Name,
			req.StoreInfo.Email,
			item.StoreName,
			item.Category,
			item.ItemName,
			fmt.Sprintf("%d", item.Quantity),
			string(req.ShippingMethod),
		}
		if err := s.machineRepo.AppendHistoryRow(ctx, row); err != nil {
			return "", apperrors.SheetError("Failed to save parts order data", err)
		}
	}

	go s.notifyParts(context.WithoutCancel(ctx), orderNumber, req)

	return orderNumber, nil
}

func (s *partsService) notifyParts(ctx context.Context, orderNumber string, req SubmitPartsOrderRequest) {
	err := s.mailer.SendPartsConfirmation(ctx, PartsConfirmationEmail{
		To:             req.StoreInfo.Email,
		OrderNumber:    orderNumber,
		StoreName:      req.StoreInfo.Name,
		Items:          req.Items,
		ShippingMethod: req.ShippingMethod,
	})
	if err != nil {
		s.log.WithOrder(orderNumber).Error("parts confirmation mail failed", zap.Error(err))
	}
}
