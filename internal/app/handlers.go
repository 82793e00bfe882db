package app

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "github.com/splashbrothers/ordering/internal/pkg/errors"
)

// errorJSON renders an error the way the storefront client expects: a flat
// {"error": "..."} body. Details ride along only in debug mode.
func (a *Application) errorJSON(c *gin.Context, err error, fallback string) {
	apiErr := apperrors.AsAPIError(err, fallback)
	body := gin.H{"error": apiErr.Message}
	if a.config.App.Debug && apiErr.Details != nil {
		body["details"] = apiErr.Details
	}
	c.JSON(apiErr.HTTPStatus, body)
}

func (a *Application) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// readinessCheck probes the spreadsheet backend with a one-cell read
func (a *Application) readinessCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if _, err := a.values.Get(ctx, "store_info!A1:A1"); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "not ready",
			"error":  err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

func (a *Application) apiInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":        a.config.App.Name,
		"environment": a.config.App.Env,
		"endpoints": gin.H{
			"catalog": "/api/sheets?sheet=Available_items",
			"orders":  "/api/save-order",
			"parts":   "/api/save-parts-order",
		},
	})
}
