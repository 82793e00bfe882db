package services

import (
	"context"

	"github.com/splashbrothers/ordering/internal/domain/models"
)

// OrderConfirmationEmail is sent to the ordering store after checkout
type OrderConfirmationEmail struct {
	To          string            `json:"to"`
	Subject     string            `json:"subject"`
	OrderNumber string            `json:"orderNumber"`
	StoreName   string            `json:"storeName"`
	Items       []models.CartItem `json:"items"`
	TotalAmount int               `json:"totalAmount"`
}

// PartnerNotificationEmail is sent to a supplier partner, listing only the
// items that partner fulfils
type PartnerNotificationEmail struct {
	To          string            `json:"to"`
	Subject     string            `json:"subject"`
	OrderNumber string            `json:"orderNumber"`
	StoreName   string            `json:"storeName"`
	PartnerName string            `json:"partnerName"`
	Items       []models.CartItem `json:"items"`
}

// ShippingNotificationEmail tells a store its order left the warehouse
type ShippingNotificationEmail struct {
	To           string             `json:"to"`
	OrderNumber  string             `json:"orderNumber"`
	StoreName    string             `json:"storeName"`
	ShippingDate string             `json:"shippingDate"`
	Items        []models.OrderItem `json:"items"`
}

// PartsConfirmationEmail confirms a spare-parts order to the store, with the
// head office in CC
type PartsConfirmationEmail struct {
	To             string                 `json:"to"`
	OrderNumber    string                 `json:"orderNumber"`
	StoreName      string                 `json:"storeName"`
	Items          []models.PartsCartItem `json:"items"`
	ShippingMethod models.ShippingMethod  `json:"shippingMethod"`
}

// Mailer delivers the four notification mails of the ordering flow. Order
// submission treats every send as best effort: a failed mail is logged, never
// surfaced to the buyer.
type Mailer interface {
	SendOrderConfirmation(ctx context.Context, email OrderConfirmationEmail) error
	SendPartnerNotification(ctx context.Context, email PartnerNotificationEmail) error
	SendShippingNotification(ctx context.Context, email ShippingNotificationEmail) error
	SendPartsConfirmation(ctx context.Context, email PartsConfirmationEmail) error
}
