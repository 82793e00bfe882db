package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/splashbrothers/ordering/internal/domain/models"
)

func TestItemTotalStoreOverride(t *testing.T) {
	item := models.CartItem{Name: "スプワックス", Quantity: 2, Price: "30000"}

	// negotiated store price wins over the carried price
	assert.Equal(t, 80000, ItemTotal(item, "SPLASH'N'GO!伊勢崎韮塚店"))
	assert.Equal(t, 52000, ItemTotal(item, "SPLASH'N'GO!新前橋店"))

	// unknown store falls back to the carried price
	assert.Equal(t, 60000, ItemTotal(item, "SPLASH'N'GO!前橋50号店"))
}

func TestItemTotalFixedTier(t *testing.T) {
	item := models.CartItem{
		Name:             "ポイントカード",
		Quantity:         1,
		SelectedQuantity: "3000",
		Price:            "99999",
	}
	// tier price is the line total, not multiplied
	assert.Equal(t, 46090, ItemTotal(item, ""))

	// unknown tier falls back to the carried price
	item.SelectedQuantity = "2000"
	assert.Equal(t, 99999, ItemTotal(item, ""))
}

func TestItemTotalNoboriSetKeysWinOverPrefix(t *testing.T) {
	item := models.CartItem{Name: "のぼり(6枚1セット)", Quantity: 1, SelectedQuantity: "6"}
	assert.Equal(t, 19140, ItemTotal(item, ""))

	item = models.CartItem{Name: "のぼり(10枚1セット)", Quantity: 1, SelectedQuantity: "10"}
	assert.Equal(t, 26620, ItemTotal(item, ""))
}

func TestItemTotalApparelSizes(t *testing.T) {
	tshirt := models.CartItem{Name: "SPLASH'N'GO! Tシャツ", SelectedSize: "XXL", Quantity: 3, Price: "1810"}
	assert.Equal(t, 2040*3, ItemTotal(tshirt, ""))

	hoodie := models.CartItem{Name: "フーディ", SelectedSize: "XXXL", Quantity: 1, Price: "3210"}
	assert.Equal(t, 4000, ItemTotal(hoodie, ""))

	// size outside the table falls back to the carried price
	hoodie.SelectedSize = "S"
	assert.Equal(t, 3210, ItemTotal(hoodie, ""))
}

func TestItemTotalGeneric(t *testing.T) {
	item := models.CartItem{Name: "ワークシャツ", Quantity: 2, Price: "¥4,500"}
	assert.Equal(t, 9000, ItemTotal(item, ""))

	// quantity floors at one
	item.Quantity = 0
	assert.Equal(t, 4500, ItemTotal(item, ""))
}

func TestComputeTotals(t *testing.T) {
	items := []models.CartItem{
		{Name: "スプシャン", Quantity: 1, Price: "10000"},
		{Name: "スプタイヤ", Quantity: 2, Price: "5000"},
	}
	totals := ComputeTotals(items, "")
	assert.Equal(t, 20000, totals.Subtotal)
	assert.Equal(t, 2000, totals.Tax)
	assert.Equal(t, 0, totals.ShippingFee)
	assert.Equal(t, 22000, totals.Total)
}

func TestComputeTotalsApparelShipping(t *testing.T) {
	items := []models.CartItem{
		{Name: "Tシャツ", SelectedSize: "M", Quantity: 1, Price: "1810"},
	}
	totals := ComputeTotals(items, "")
	assert.Equal(t, 1810, totals.Subtotal)
	assert.Equal(t, ApparelShippingFee, totals.ShippingFee)
	assert.Equal(t, 1810+181+1000, totals.Total)
}

func TestIsApparelItem(t *testing.T) {
	assert.True(t, IsApparelItem("SPLASH'N'GO! つなぎ"))
	assert.True(t, IsApparelItem("ワークシャツ"))
	assert.False(t, IsApparelItem("スプシャン"))
}

func TestHasSizeBasedPrice(t *testing.T) {
	assert.True(t, HasSizeBasedPrice("Tシャツ(新ロゴ)"))
	assert.True(t, HasSizeBasedPrice("フーディ"))
	assert.False(t, HasSizeBasedPrice("つなぎ"))
}
