package app

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/splashbrothers/ordering/internal/domain/services"
)

// The mail endpoints send synchronously: callers are background jobs or admin
// tools that want the delivery result.

func (a *Application) sendOrderEmail(c *gin.Context) {
	var req services.OrderConfirmationEmail
	if err := c.ShouldBindJSON(&req); err != nil || req.To == "" || req.OrderNumber == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "必要なパラメータが不足しています"})
		return
	}

	if err := a.mailer.SendOrderConfirmation(c.Request.Context(), req); err != nil {
		a.mailFailure(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (a *Application) sendPartnerEmail(c *gin.Context) {
	var req services.PartnerNotificationEmail
	if err := c.ShouldBindJSON(&req); err != nil || req.To == "" || req.OrderNumber == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "必要なパラメータが不足しています"})
		return
	}

	if err := a.mailer.SendPartnerNotification(c.Request.Context(), req); err != nil {
		a.mailFailure(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (a *Application) sendShippingNotification(c *gin.Context) {
	var req services.ShippingNotificationEmail
	if err := c.ShouldBindJSON(&req); err != nil || req.To == "" || req.OrderNumber == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "必要なパラメータが不足しています"})
		return
	}

	if err := a.mailer.SendShippingNotification(c.Request.Context(), req); err != nil {
		a.mailFailure(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (a *Application) sendPartsOrderEmail(c *gin.Context) {
	var req services.PartsConfirmationEmail
	if err := c.ShouldBindJSON(&req); err != nil || req.To == "" || req.OrderNumber == "" || len(req.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "必要なパラメータが不足しています"})
		return
	}

	if err := a.mailer.SendPartsConfirmation(c.Request.Context(), req); err != nil {
		a.mailFailure(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (a *Application) mailFailure(c *gin.Context, err error) {
	body := gin.H{"error": "メールの送信に失敗しました"}
	if a.config.App.Debug {
		body["details"] = err.Error()
	}
	c.JSON(http.StatusInternalServerError, body)
}
