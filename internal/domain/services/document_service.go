package services

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"

	apperrors "github.com/splashbrothers/ordering/internal/pkg/errors"

	"github.com/splashbrothers/ordering/internal/domain/models"
)

// DocumentFormat selects the purchase order file type
type DocumentFormat string

const (
	FormatPDF   DocumentFormat = "pdf"
	FormatExcel DocumentFormat = "excel"
)

// Supplier contact block printed on every purchase order
const (
	supplierName    = "Hefei Topwell Machinery Co., Ltd."
	supplierTel     = "+8618226629892"
	supplierContact = "Liv Wang"
	supplierEmail   = "liv@topwellclean.com"
)

// PurchaseOrderRequest describes one purchase order document to render
type PurchaseOrderRequest struct {
	Items          []models.PartsCartItem `json:"items"`
	StoreInfo      *models.OrderStoreInfo `json:"storeInfo"`
	ShippingMethod models.ShippingMethod  `json:"shippingMethod"`
	Format         DocumentFormat         `json:"format"`
}

// Document is a rendered file ready to stream as a download
type Document struct {
	Filename    string
	ContentType string
	Data        []byte
}

// DocumentService renders purchase order documents for the parts supplier
type DocumentService interface {
	GeneratePurchaseOrder(req PurchaseOrderRequest) (*Document, error)
}

type documentService struct {
	now func() time.Time
}

// NewDocumentService creates a new document service
func NewDocumentService() DocumentService {
	return &documentService{now: time.Now}
}

func (s *documentService) GeneratePurchaseOrder(req PurchaseOrderRequest) (*Document, error) {
	if len(req.Items) == 0 || req.StoreInfo == nil || req.Format == "" {
		return nil, apperrors.MissingData("Missing required data")
	}

	now := s.now()
	// document numbers are independent of the saved parts order: the last
	// five digits of the millisecond clock
	millis := strconv.FormatInt(now.UnixMilli(), 10)
	orderNumber := "PO-" + millis[len(millis)-5:]
	dateStr := now.Format("January 2, 2006")

	switch req.Format {
	case FormatPDF:
		data, err := renderPurchaseOrderPDF(req, orderNumber, dateStr)
		if err != nil {
			return nil, apperrors.Internal("Failed to generate purchase order").WithDetails(err.Error())
		}
		return &Document{
			Filename:    fmt.Sprintf("purchase_order_%s.pdf", orderNumber),
			ContentType: "application/pdf",
			Data:        data,
		}, nil
	case FormatExcel:
		data, err := renderPurchaseOrderExcel(req, orderNumber, dateStr)
		if err != nil {
			return nil, apperrors.Internal("Failed to generate purchase order").WithDetails(err.Error())
		}
		return &Document{
			Filename:    fmt.Sprintf("purchase_order_%s.xlsx", orderNumber),
			ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			Data:        data,
		}, nil
	default:
		return nil, apperrors.MissingData("Missing required data")
	}
}

func renderPurchaseOrderPDF(req PurchaseOrderRequest, orderNumber, dateStr string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	centerText := func(y float64, s string) {
		w := pdf.GetStringWidth(s)
		pdf.Text(105-w/2, y, s)
	}

	pdf.SetFont("Helvetica", "B", 20)
	centerText(25, "PURCHASE ORDER")

	pdf.SetFont("Helvetica", "", 12)
	pdf.Text(20, 45, "Order Number: "+orderNumber)
	pdf.Text(20, 55, "Date: "+dateStr)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Text(20, 75, "FROM:")
	pdf.SetFont("Helvetica", "", 12)
	pdf.Text(20, 85, "Splash Brothers Inc.")
	pdf.Text(20, 95, "Email: "+req.StoreInfo.Email)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Text(110, 75, "TO:")
	pdf.SetFont("Helvetica", "", 12)
	pdf.Text(110, 85, supplierName)
	pdf.Text(110, 95, "Tel: "+supplierTel)
	pdf.Text(110, 105, supplierContact)
	pdf.Text(110, 115, "Email: "+supplierEmail)
	pdf.Text(110, 125, "Add: #3 Building, Room 3001, Jiaqiao Lehu Mansion,")
	pdf.Text(110, 135, "     Fanhua Avenue Road, Economic Development Zone,")
	pdf.Text(110, 145, "     Hefei City, Anhui Province, China")

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Text(20, 165, "Shipping Method: ")
	pdf.SetFont("Helvetica", "", 12)
	pdf.Text(65, 165, req.ShippingMethod.Text())

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Text(20, 185, "Item Name")
	pdf.Text(85, 185, "Category")
	pdf.Text(125, 185, "Store")
	pdf.Text(165, 185, "Qty")
	pdf.Line(20, 190, 185, 190)

	pdf.SetFont("Helvetica", "", 12)
	y := 200.0
	totalQuantity := 0
	for _, item := range req.Items {
		pdf.Text(20, y, truncate(item.ItemName, 30, 27))
		pdf.Text(85, y, truncate(item.Category, 15, 12))
		pdf.Text(125, y, truncate(item.StoreName, 15, 12))
		pdf.Text(165, y, strconv.Itoa(item.Quantity))
		totalQuantity += item.Quantity
		y += 10
	}

	pdf.Line(20, y+5, 185, y+5)
	y += 15

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Text(20, y, fmt.Sprintf("Total Items: %d", len(req.Items)))
	pdf.Text(125, y, fmt.Sprintf("Total Quantity: %d", totalQuantity))

	y += 25
	pdf.Rect(20, y, 165, 55, "D")
	pdf.Text(25, y+12, "Shipping Address:")
	pdf.SetFont("Helvetica", "", 12)
	pdf.Text(25, y+22, "SPLASH'N'GO!")
	pdf.Text(25, y+32, "Attn: Person in Charge")
	pdf.Text(25, y+42, "2-4-15 Amagawa-Oshima-machi, Maebashi-shi")
	pdf.Text(25, y+52, "Gunma 379-2154, Japan")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// truncate shortens s to max runes, keeping the first cut runes plus "..."
func truncate(s string, max, cut int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:cut]) + "..."
}

func renderPurchaseOrderExcel(req PurchaseOrderRequest, orderNumber, dateStr string) ([]byte, error) {
	totalQuantity := 0
	for _, item := range req.Items {
		totalQuantity += item.Quantity
	}

	rows := [][]interface{}{
		{"PURCHASE ORDER"},
		{},
		{"Order Number: " + orderNumber},
		{"Date: " + dateStr},
		{},
		{"FROM:", "Splash Brothers Inc."},
		{"Email:", req.StoreInfo.Email},
		{},
		{"TO:", supplierName},
		{"Tel:", supplierTel},
		{"Contact:", supplierContact},
		{"Email:", supplierEmail},
		{"Address:", "#3 Building, Room 3001, Jiaqiao Lehu Mansion,"},
		{"", "Fanhua Avenue Road, Economic Development Zone,"},
		{"", "Hefei City, Anhui Province, China"},
		{},
		{"Shipping Method: " + req.ShippingMethod.Text()},
		{},
		{"Item Name", "Category", "Store Name", "Quantity"},
	}
	for _, item := range req.Items {
		rows = append(rows, []interface{}{item.ItemName, item.Category, item.StoreName, item.Quantity})
	}
	rows = append(rows,
		[]interface{}{},
		[]interface{}{"Total Items:", len(req.Items)},
		[]interface{}{"Total Quantity:", totalQuantity},
		[]interface{}{},
		[]interface{}{"=== SHIPPING ADDRESS ==="},
		[]interface{}{"Shipping Address:", "SPLASH'N'GO!"},
		[]interface{}{"Attn:", "Person in Charge"},
		[]interface{}{"Address:", "2-4-15 Amagawa-Oshima-machi, Maebashi-shi"},
		[]interface{}{"", "Gunma 379-2154"},
		[]interface{}{"Country:", "Japan"},
	)

	f := excelize.NewFile()
	defer f.Close()

	const sheetName = "Purchase Order"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	for i, row := range rows {
		cellRef, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheetName, cellRef, &row); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
