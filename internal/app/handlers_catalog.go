package app

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/splashbrothers/ordering/internal/domain/models"
	"github.com/splashbrothers/ordering/internal/domain/services"
	"github.com/splashbrothers/ordering/internal/infrastructure/sheets"
)

// getSheet proxies spreadsheet reads. Known tabs get shaped responses (the
// grouped catalog, parsed order history, store rows with an outage fallback);
// anything else returns the raw cell grid.
func (a *Application) getSheet(c *gin.Context) {
	sheet := c.Query("sheet")
	if sheet == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "sheet is required"})
		return
	}

	ctx := c.Request.Context()

	switch {
	case sheet == sheets.SheetAvailableItems:
		products, err := a.catalogService.Products(ctx)
		if err != nil {
			a.errorJSON(c, err, "Error fetching data from Google Sheets")
			return
		}
		c.JSON(http.StatusOK, products)

	case sheet == sheets.SheetOrderHistory || sheet == sheets.SheetHirockItemHistory:
		orders, err := a.orderService.History(ctx, sheet)
		if err != nil {
			a.errorJSON(c, err, "Error fetching data from Google Sheets")
			return
		}
		c.JSON(http.StatusOK, orders)

	case strings.HasPrefix(sheet, sheets.SheetStoreInfo):
		// never fails: upstream outages serve the built-in fallback rows
		c.JSON(http.StatusOK, a.storeService.Rows(ctx))

	default:
		rows, err := a.values.Get(ctx, sheet)
		if err != nil {
			a.errorJSON(c, err, "Error fetching data from Google Sheets")
			return
		}
		if len(rows) == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "No data found", "sheet": sheet})
			return
		}
		c.JSON(http.StatusOK, rows)
	}
}

type quoteRequest struct {
	Items     []models.CartItem `json:"items"`
	StoreName string            `json:"storeName"`
}

// quoteOrder prices a cart server side and estimates the delivery window
func (a *Application) quoteOrder(c *gin.Context) {
	var req quoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required data"})
		return
	}
	if len(req.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required data"})
		return
	}

	totals := services.ComputeTotals(req.Items, req.StoreName)
	c.JSON(http.StatusOK, gin.H{
		"subtotal":          totals.Subtotal,
		"tax":               totals.Tax,
		"shippingFee":       totals.ShippingFee,
		"total":             totals.Total,
		"deliveryDateRange": services.DeliveryRange(req.Items, time.Now()),
	})
}
