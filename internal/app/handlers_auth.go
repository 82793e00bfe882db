package app

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	StoreID  string `json:"storeId"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// login authenticates a store against the store_info directory
func (a *Application) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.StoreID == "" || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "店舗ID、メールアドレス、パスワードを入力してください"})
		return
	}

	store, err := a.storeService.Authenticate(c.Request.Context(), req.StoreID, req.Email, req.Password)
	if err != nil {
		a.errorJSON(c, err, "ログインに失敗しました")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "store": store})
}
