package app

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/splashbrothers/ordering/internal/domain/services"
)

// machineItems lists orderable spare parts
func (a *Application) machineItems(c *gin.Context) {
	items, err := a.partsService.MachineItems(c.Request.Context())
	if err != nil {
		a.errorJSON(c, err, "Error fetching data from Google Sheets")
		return
	}
	c.JSON(http.StatusOK, items)
}

// savePartsOrder persists a spare-parts order and echoes the order data back
// for purchase order generation
func (a *Application) savePartsOrder(c *gin.Context) {
	var req services.SubmitPartsOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required data"})
		return
	}

	orderNumber, err := a.partsService.Submit(c.Request.Context(), req)
	if err != nil {
		a.errorJSON(c, err, "Failed to save parts order data")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"orderNumber": orderNumber,
		"orderData": gin.H{
			"items":          req.Items,
			"storeInfo":      req.StoreInfo,
			"shippingMethod": req.ShippingMethod,
		},
	})
}

// generatePurchaseOrder renders a supplier purchase order as a PDF or Excel
// download
func (a *Application) generatePurchaseOrder(c *gin.Context) {
	var req services.PurchaseOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required data"})
		return
	}

	doc, err := a.documentService.GeneratePurchaseOrder(req)
	if err != nil {
		a.errorJSON(c, err, "Failed to generate purchase order")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Filename))
	c.Data(http.StatusOK, doc.ContentType, doc.Data)
}
