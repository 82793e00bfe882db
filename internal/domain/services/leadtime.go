package services

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/splashbrothers/ordering/internal/domain/models"
)

// Delivery estimates are display-only: printed goods run about three weeks,
// chemicals about four days, everything else follows the catalog lead time.

var threeWeekDeliveryItems = []string{
	"Tシャツ",
	"フーディ",
	"ワークシャツ",
	"つなぎ",
	"ポイントカード",
	"サブスクメンバーズカード",
	"サブスクフライヤー",
	"フリーチケット",
	"クーポン券",
	"のぼり",
	"お年賀",
	"利用規約",
}

var fourDayDeliveryItems = []string{
	"スプシャン",
	"スプワックス",
	"スプコート",
	"セラミック",
	"スプタイヤ",
	"ピッカークロス",
}

var leadTimeWeeksPattern = regexp.MustCompile(`\d+`)

func formatDeliveryDate(t time.Time) string {
	return t.Format("2006年01月02日") + "頃"
}

// deliveryDate resolves one item's estimated delivery date. Lead times like
// "2週間" contribute their first number as weeks; 即日 means today.
func deliveryDate(leadTime, category, itemName string, now time.Time) time.Time {
	if containsAny(itemName, threeWeekDeliveryItems) {
		return now.AddDate(0, 0, 21)
	}
	if containsAny(itemName, fourDayDeliveryItems) {
		return now.AddDate(0, 0, 4)
	}
	switch category {
	case "販促グッズ":
		return now.AddDate(0, 0, 21)
	case "液剤":
		return now.AddDate(0, 0, 4)
	}
	if leadTime == "即日" {
		return now
	}
	weeks := 0
	if m := leadTimeWeeksPattern.FindString(leadTime); m != "" {
		weeks, _ = strconv.Atoi(m)
	}
	return now.AddDate(0, 0, weeks*7)
}

// DeliveryEstimate renders one item's estimated delivery date for display
func DeliveryEstimate(leadTime, category, itemName string, now time.Time) string {
	if !containsAny(itemName, threeWeekDeliveryItems) &&
		!containsAny(itemName, fourDayDeliveryItems) &&
		category != "販促グッズ" && category != "液剤" &&
		leadTime == "即日" {
		return "即日出荷"
	}
	return formatDeliveryDate(deliveryDate(leadTime, category, itemName, now))
}

// DeliveryRange renders the earliest-to-latest delivery window of a cart,
// collapsing to a single date when they coincide. Empty carts have no data.
func DeliveryRange(items []models.CartItem, now time.Time) string {
	if len(items) == 0 {
		return "データなし"
	}

	earliest := deliveryDate(items[0].LeadTime, items[0].Category, items[0].Name, now)
	latest := earliest
	for _, item := range items[1:] {
		d := deliveryDate(item.LeadTime, item.Category, item.Name, now)
		if d.Before(earliest) {
			earliest = d
		}
		if d.After(latest) {
			latest = d
		}
	}

	if earliest.Equal(latest) {
		return formatDeliveryDate(earliest)
	}
	return fmt.Sprintf("%s - %s", earliest.Format("2006年01月02日"), formatDeliveryDate(latest))
}
