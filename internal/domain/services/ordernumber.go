package services

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strconv"
	"time"
)

// generateNumber derives a five-digit order number from the current
// millisecond timestamp: the first six hex digits of its MD5, reduced mod
// 100000. Not guaranteed unique, but the collision window is narrow enough
// for the order volume these sheets see.
func generateNumber(prefix string, now time.Time) string {
	timestamp := strconv.FormatInt(now.UnixMilli(), 10)
	sum := md5.Sum([]byte(timestamp))
	digest := hex.EncodeToString(sum[:])
	n, _ := strconv.ParseInt(digest[:6], 16, 64)
	return fmt.Sprintf("%s-%05d", prefix, n%100000)
}

// GenerateOrderNumber returns a fresh supplies order number (ORD-xxxxx)
func GenerateOrderNumber(now time.Time) string {
	return generateNumber("ORD", now)
}

// GeneratePartsOrderNumber returns a fresh parts order number (PO-xxxxx)
func GeneratePartsOrderNumber(now time.Time) string {
	return generateNumber("PO", now)
}
