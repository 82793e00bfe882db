package app

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/splashbrothers/ordering/internal/domain/models"
	"github.com/splashbrothers/ordering/internal/domain/services"
)

// saveOrder persists a checkout and kicks off the notification mails
func (a *Application) saveOrder(c *gin.Context) {
	var req services.SubmitOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required data"})
		return
	}

	orderNumber, err := a.orderService.Submit(c.Request.Context(), req)
	if err != nil {
		a.errorJSON(c, err, "Failed to save order data")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "orderNumber": orderNumber})
}

// orderHistory returns the merged admin view across both history sheets
func (a *Application) orderHistory(c *gin.Context) {
	orders, err := a.orderService.MergedHistory(c.Request.Context())
	if err != nil {
		a.errorJSON(c, err, "Error fetching data from Google Sheets")
		return
	}
	c.JSON(http.StatusOK, orders)
}

// hirockOrderItems returns one order from the hirock sheet, for the shipping
// notification flow
func (a *Application) hirockOrderItems(c *gin.Context) {
	orderNumber := c.Query("orderNumber")
	if orderNumber == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Order number is required"})
		return
	}

	order, err := a.orderService.HirockOrder(c.Request.Context(), orderNumber)
	if err != nil {
		a.errorJSON(c, err, "Failed to fetch order items")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"orderNumber": order.OrderNumber,
		"storeName":   order.StoreName,
		"email":       order.Email,
		"items":       order.Items,
	})
}

type updateStatusRequest struct {
	OrderNumber string             `json:"orderNumber"`
	NewStatus   models.OrderStatus `json:"newStatus"`
}

func (a *Application) updateOrderStatus(c *gin.Context) {
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.OrderNumber == "" || req.NewStatus == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Order number and new status are required"})
		return
	}

	sheet, err := a.orderService.UpdateStatus(c.Request.Context(), req.OrderNumber, req.NewStatus)
	if err != nil {
		a.errorJSON(c, err, "Failed to update order status")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "sheet": sheet})
}

type updateShippingDateRequest struct {
	OrderNumber  string `json:"orderNumber"`
	ShippingDate string `json:"shippingDate"`
}

func (a *Application) updateShippingDate(c *gin.Context) {
	var req updateShippingDateRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.OrderNumber == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Order number is required"})
		return
	}

	sheet, err := a.orderService.UpdateShippingDate(c.Request.Context(), req.OrderNumber, req.ShippingDate)
	if err != nil {
		a.errorJSON(c, err, "Failed to update shipping date")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "sheet": sheet})
}
