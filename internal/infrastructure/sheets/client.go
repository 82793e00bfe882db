package sheets

import (
	"context"
	"fmt"

	"github.com/splashbrothers/ordering/internal/infrastructure/config"
	"github.com/splashbrothers/ordering/internal/pkg/logger"
	"go.uber.org/zap"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"
)

// Sheet tabs of the backing spreadsheet
const (
	SheetAvailableItems     = "Available_items"
	SheetOrderHistory       = "Order_history"
	SheetHirockItemHistory  = "hirock_item_history"
	SheetStoreInfo          = "store_info"
	SheetMachineItems       = "machine_item"
	SheetMachineItemHistory = "machine_item_history"
)

// Read ranges used by the repositories
const (
	RangeAvailableItems     = "Available_items!A2:K"
	RangeOrderHistory       = "Order_history!A2:AV"
	RangeHirockItemHistory  = "hirock_item_history!A2:AV"
	RangeStoreInfo          = "store_info!A2:G"
	RangeMachineItems       = "machine_item!A2:D"
	RangeOrderNumbers       = "Order_history!A2:A"
	RangeHirockOrderNumbers = "hirock_item_history!A2:A"
)

// ValuesAPI is the subset of the spreadsheet values API the repositories
// need. The production implementation talks to Google Sheets; tests use an
// in-memory fake.
type ValuesAPI interface {
	// Get returns the cell values of the given A1-notation range. Rows may be
	// ragged: trailing empty cells are not padded.
	Get(ctx context.Context, readRange string) ([][]string, error)
	// Append appends rows after the last data row of the range's sheet.
	Append(ctx context.Context, writeRange string, rows [][]string) error
	// Update overwrites the cells of the given range.
	Update(ctx context.Context, writeRange string, rows [][]string) error
}

// Client wraps the Google Sheets values API for a single spreadsheet
type Client struct {
	service       *sheetsapi.Service
	spreadsheetID string
	logger        *logger.Logger
}

// NewClient creates a Sheets client from configuration. Credentials are taken
// from the inline JSON when present, otherwise from the key file path.
func NewClient(ctx context.Context, cfg config.SheetsConfig, log *logger.Logger) (*Client, error) {
	if cfg.SpreadsheetID == "" {
		return nil, fmt.Errorf("spreadsheet id is not configured")
	}
	if cfg.CredentialsJSON == "" && cfg.CredentialsFile == "" {
		return nil, fmt.Errorf("google credentials are not configured")
	}

	var opts []option.ClientOption
	if cfg.CredentialsJSON != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(cfg.CredentialsJSON)))
	} else {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}
	opts = append(opts, option.WithScopes(sheetsapi.SpreadsheetsScope))

	service, err := sheetsapi.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &Client{
		service:       service,
		spreadsheetID: cfg.SpreadsheetID,
		logger:        log.WithComponent("sheets"),
	}, nil
}

func (c *Client) Get(ctx context.Context, readRange string) ([][]string, error) {
	resp, err := c.service.Spreadsheets.Values.Get(c.spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read range %s: %w", readRange, err)
	}
	return toStringRows(resp.Values), nil
}

func (c *Client) Append(ctx context.Context, writeRange string, rows [][]string) error {
	_, err := c.service.Spreadsheets.Values.
		Append(c.spreadsheetID, writeRange, &sheetsapi.ValueRange{Values: toInterfaceRows(rows)}).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to append to range %s: %w", writeRange, err)
	}
	c.logger.Debug("Appended rows", zap.String("range", writeRange), zap.Int("rows", len(rows)))
	return nil
}

func (c *Client) Update(ctx context.Context, writeRange string, rows [][]string) error {
	_, err := c.service.Spreadsheets.Values.
		Update(c.spreadsheetID, writeRange, &sheetsapi.ValueRange{Values: toInterfaceRows(rows)}).
		ValueInputOption("USER_ENTERED").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to update range %s: %w", writeRange, err)
	}
	c.logger.Debug("Updated range", zap.String("range", writeRange))
	return nil
}

func toStringRows(values [][]interface{}) [][]string {
	rows := make([][]string, len(values))
	for i, row := range values {
		cells := make([]string, len(row))
		for j, cell := range row {
			cells[j] = fmt.Sprint(cell)
		}
		rows[i] = cells
	}
	return rows
}

func toInterfaceRows(rows [][]string) [][]interface{} {
	values := make([][]interface{}, len(rows))
	for i, row := range rows {
		cells := make([]interface{}, len(row))
		for j, cell := range row {
			cells[j] = cell
		}
		values[i] = cells
	}
	return values
}
