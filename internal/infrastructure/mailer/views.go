package mailer

import (
	"time"

	"github.com/splashbrothers/ordering/internal/domain/models"
	"github.com/splashbrothers/ordering/internal/domain/services"
)

var jst = time.FixedZone("JST", 9*60*60)

func nowJST() string {
	return time.Now().In(jst).Format("2006/01/02 15:04:05")
}

type orderLineView struct {
	Name     string
	Size     string
	Color    string
	Quantity int
	Price    string
}

type orderConfirmationView struct {
	OrderNumber string
	StoreName   string
	OrderedAt   string
	Items       []orderLineView
	TotalAmount int
}

func newOrderConfirmationView(email services.OrderConfirmationEmail) orderConfirmationView {
	return orderConfirmationView{
		OrderNumber: email.OrderNumber,
		StoreName:   email.StoreName,
		OrderedAt:   nowJST(),
		Items:       cartLines(email.Items),
		TotalAmount: email.TotalAmount,
	}
}

type partnerNotificationView struct {
	OrderNumber string
	StoreName   string
	PartnerName string
	OrderedAt   string
	Items       []orderLineView
}

func newPartnerNotificationView(email services.PartnerNotificationEmail) partnerNotificationView {
	return partnerNotificationView{
		OrderNumber: email.OrderNumber,
		StoreName:   email.StoreName,
		PartnerName: email.PartnerName,
		OrderedAt:   nowJST(),
		Items:       cartLines(email.Items),
	}
}

type shippingNotificationView struct {
	OrderNumber  string
	StoreName    string
	ShippingDate string
	Items        []models.OrderItem
}

func newShippingNotificationView(email services.ShippingNotificationEmail) shippingNotificationView {
	return shippingNotificationView{
		OrderNumber:  email.OrderNumber,
		StoreName:    email.StoreName,
		ShippingDate: email.ShippingDate,
		Items:        email.Items,
	}
}

type partsConfirmationView struct {
	OrderNumber    string
	StoreName      string
	OrderedAt      string
	ShippingMethod string
	Items          []models.PartsCartItem
	TotalItems     int
	TotalQuantity  int
}

func newPartsConfirmationView(email services.PartsConfirmationEmail) partsConfirmationView {
	total := 0
	for _, item := range email.Items {
		total += item.Quantity
	}
	return partsConfirmationView{
		OrderNumber:    email.OrderNumber,
		StoreName:      email.StoreName,
		OrderedAt:      nowJST(),
		ShippingMethod: email.ShippingMethod.TextJA(),
		Items:          email.Items,
		TotalItems:     len(email.Items),
		TotalQuantity:  total,
	}
}

func cartLines(items []models.CartItem) []orderLineView {
	lines := make([]orderLineView, 0, len(items))
	for _, item := range items {
		lines = append(lines, orderLineView{
			Name:     item.Name,
			Size:     item.SelectedSize,
			Color:    item.SelectedColor,
			Quantity: item.Quantity,
			Price:    item.Price.String(),
		})
	}
	return lines
}
