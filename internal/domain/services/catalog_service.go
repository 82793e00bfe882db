package services

import (
	"context"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/splashbrothers/ordering/internal/domain/models"
	"github.com/splashbrothers/ordering/internal/domain/repositories"
)

// CatalogService exposes the product catalog read from the Available_items
// sheet, both as grouped products for the storefront and as flat rows for
// partner routing.
type CatalogService interface {
	Products(ctx context.Context) ([]models.Product, error)
	AvailableItems(ctx context.Context) ([]models.AvailableItem, error)
}

type catalogService struct {
	catalogRepo repositories.CatalogRepository
}

// NewCatalogService creates a new catalog service
func NewCatalogService(catalogRepo repositories.CatalogRepository) CatalogService {
	return &catalogService{catalogRepo: catalogRepo}
}

func (s *catalogService) Products(ctx context.Context) ([]models.Product, error) {
	rows, err := s.catalogRepo.Rows(ctx)
	if err != nil {
		return nil, err
	}
	return GroupProductRows(rows), nil
}

func (s *catalogService) AvailableItems(ctx context.Context) ([]models.AvailableItem, error) {
	return s.catalogRepo.AvailableItems(ctx)
}

type groupedProduct struct {
	product models.Product

	colorSeen map[string]bool
	sizeSeen  map[string]bool

	amountSeen     map[int]bool
	amounts        []int
	prices         map[int]string
	pricesPerPiece map[int]string
}

// GroupProductRows collapses the per-variant sheet rows into grouped products.
// Rows are keyed by (name, color); each group accumulates the distinct sizes,
// colors and amount tiers of its rows. Amounts come out sorted ascending with
// Prices and PricesPerPiece aligned positionally ("0" where the sheet left the
// cell blank). First-seen order of groups is preserved.
func GroupProductRows(rows [][]string) []models.Product {
	groups := make(map[string]*groupedProduct)
	var order []string

	for _, row := range rows {
		category := cell(row, 0)
		name := cell(row, 2)
		color := cell(row, 3)
		size := cell(row, 4)
		amount := cell(row, 5)
		price := cell(row, 6)
		pricePerPiece := cell(row, 7)
		partnerName := cell(row, 8)
		partnerEmail := cell(row, 9)
		imageURL := cell(row, 10)

		key := name + "-" + color
		g, ok := groups[key]
		if !ok {
			// column I doubles as the lead time in the current sheet layout
			leadTime := partnerName
			if leadTime == "" {
				leadTime = "2週間"
			}
			g = &groupedProduct{
				product: models.Product{
					ID:           uuid.NewString(),
					Category:     category,
					Name:         name,
					LeadTime:     leadTime,
					PartnerName:  partnerName,
					PartnerEmail: partnerEmail,
					ImageURL:     ConvertDriveURL(imageURL),
					Color:        color,
				},
				colorSeen:      make(map[string]bool),
				sizeSeen:       make(map[string]bool),
				amountSeen:     make(map[int]bool),
				prices:         make(map[int]string),
				pricesPerPiece: make(map[int]string),
			}
			groups[key] = g
			order = append(order, key)
		}

		if imageURL != "" && g.product.ImageURL == "" {
			g.product.ImageURL = ConvertDriveURL(imageURL)
		}
		if color != "" && !g.colorSeen[color] {
			g.colorSeen[color] = true
			g.product.Colors = append(g.product.Colors, color)
		}
		if size != "" && !g.sizeSeen[size] {
			g.sizeSeen[size] = true
			g.product.Sizes = append(g.product.Sizes, size)
		}

		if digits := stripNonDigits(amount); digits != "" {
			n, err := strconv.Atoi(digits)
			if err == nil {
				if !g.amountSeen[n] {
					g.amountSeen[n] = true
					g.amounts = append(g.amounts, n)
				}
				if price != "" {
					g.prices[n] = price
				}
				if pricePerPiece != "" {
					g.pricesPerPiece[n] = pricePerPiece
				}
			}
		}
	}

	products := make([]models.Product, 0, len(order))
	for _, key := range order {
		g := groups[key]
		sort.Ints(g.amounts)

		p := g.product
		p.Amounts = g.amounts
		p.Prices = make([]string, len(g.amounts))
		p.PricesPerPiece = make([]string, len(g.amounts))
		for i, n := range g.amounts {
			p.Prices[i] = priceOrZero(g.prices[n])
			p.PricesPerPiece[i] = priceOrZero(g.pricesPerPiece[n])
		}
		products = append(products, p)
	}
	return products
}

func priceOrZero(price string) string {
	if price == "" {
		return "0"
	}
	return price
}

func stripNonDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}

var driveFileIDPattern = regexp.MustCompile(`/d/([^/]+)`)

// ConvertDriveURL rewrites a Google Drive share link into its directly
// viewable form. Already-converted and non-Drive URLs pass through unchanged.
func ConvertDriveURL(url string) string {
	if url == "" {
		return ""
	}
	if strings.Contains(url, "drive.google.com/uc?export=view&id=") {
		return url
	}
	if strings.Contains(url, "drive.google.com") {
		if m := driveFileIDPattern.FindStringSubmatch(url); m != nil {
			return "https://drive.google.com/uc?export=view&id=" + m[1]
		}
	}
	return url
}

// cell returns row[i] or "" when the row is too short
func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}
