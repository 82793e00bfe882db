package models

import (
	"encoding/json"
	"strconv"
	"strings"
)

// CartItem is the client-held cart line item posted on checkout. The cart
// lives entirely in browser storage until then, so everything here is
// untrusted input. Field names follow the wire format of the storefront
// client.
type CartItem struct {
	ID               string     `json:"id"`
	Category         string     `json:"item_category"`
	Name             string     `json:"item_name"`
	SelectedSize     string     `json:"selectedSize,omitempty"`
	SelectedColor    string     `json:"selectedColor,omitempty"`
	SelectedQuantity FlexString `json:"selectedQuantity,omitempty"`
	Quantity         int        `json:"quantity"`
	Price            FlexString `json:"item_price,omitempty"`
	LeadTime         string     `json:"lead_time,omitempty"`
	PartnerName      string     `json:"partnerName,omitempty"`
	ImageURL         string     `json:"imageUrl,omitempty"`
}

// FlexString tolerates the client's loose typing: a value may arrive as a
// string, a number, or an array of either (the first element wins).
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = []byte(strings.TrimSpace(string(data)))
	if len(data) == 0 || string(data) == "null" {
		*f = ""
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
	case '[':
		var parts []FlexString
		if err := json.Unmarshal(data, &parts); err != nil {
			return err
		}
		if len(parts) > 0 {
			*f = parts[0]
		} else {
			*f = ""
		}
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return err
		}
		*f = FlexString(n.String())
	}
	return nil
}

func (f FlexString) String() string {
	return string(f)
}

// Int parses the numeric content of the value, stripping currency symbols
// and separators. Returns 0 when nothing numeric remains.
func (f FlexString) Int() int {
	cleaned := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' || r == '-' {
			return r
		}
		return -1
	}, string(f))
	n, err := strconv.Atoi(cleaned)
	if err != nil {
		return 0
	}
	return n
}
