package sheets

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/dakoku/timeclock-backend-go/internal/config"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	oauthjwt "golang.org/x/oauth2/jwt"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"
)

// Sheet names inside the backing spreadsheet.
const (
	eventSheet    = "AttendanceLog"
	employeeSheet = "Employees"
)

// Client wraps the Sheets API for one spreadsheet. Row numbers are
// 1-based sheet rows; row 1 is the header, data starts at row 2.
type Client struct {
	svc           *sheetsapi.Service
	spreadsheetID string
}

func NewClient(ctx context.Context, cfg config.SheetsConfig) (*Client, error) {
	ts, err := tokenSource(ctx, cfg)
	if err != nil {
		return nil, err
	}

	svc, err := sheetsapi.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &Client{
		svc:           svc,
		spreadsheetID: cfg.SpreadsheetID,
	}, nil
}

func tokenSource(ctx context.Context, cfg config.SheetsConfig) (oauth2.TokenSource, error) {
	if cfg.CredentialsPath != "" {
		data, err := os.ReadFile(cfg.CredentialsPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read credentials file: %w", err)
		}
		jwtCfg, err := google.JWTConfigFromJSON(data, sheetsapi.SpreadsheetsScope)
		if err != nil {
			return nil, fmt.Errorf("failed to parse credentials file: %w", err)
		}
		return jwtCfg.TokenSource(ctx), nil
	}

	jwtCfg := &oauthjwt.Config{
		Email:      cfg.ClientEmail,
		PrivateKey: []byte(cfg.PrivateKey),
		Scopes:     []string{sheetsapi.SpreadsheetsScope},
		TokenURL:   google.JWTTokenURL,
	}
	return jwtCfg.TokenSource(ctx), nil
}

// getSheetValues reads the whole sheet including the header row, cells
// flattened to strings.
func (c *Client) getSheetValues(ctx context.Context, sheetName string) ([][]string, error) {
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, sheetName).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheetName, err)
	}

	rows := make([][]string, len(resp.Values))
	for i, row := range resp.Values {
		cells := make([]string, len(row))
		for j, cell := range row {
			cells[j] = fmt.Sprint(cell)
		}
		rows[i] = cells
	}
	return rows, nil
}

// appendRow appends one row and returns the sheet row number it landed on.
func (c *Client) appendRow(ctx context.Context, sheetName string, values []string) (int, error) {
	vr := &sheetsapi.ValueRange{Values: [][]interface{}{toInterfaces(values)}}
	resp, err := c.svc.Spreadsheets.Values.
		Append(c.spreadsheetID, sheetName, vr).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return 0, fmt.Errorf("failed to append to sheet %s: %w", sheetName, err)
	}
	if resp.Updates == nil {
		return 0, fmt.Errorf("append to sheet %s returned no update info", sheetName)
	}
	return rowNumberFromRange(resp.Updates.UpdatedRange)
}

// updateRow overwrites one row starting at column A.
func (c *Client) updateRow(ctx context.Context, sheetName string, rowNumber int, values []string) error {
	rng := fmt.Sprintf("%s!A%d", sheetName, rowNumber)
	vr := &sheetsapi.ValueRange{Values: [][]interface{}{toInterfaces(values)}}
	_, err := c.svc.Spreadsheets.Values.
		Update(c.spreadsheetID, rng, vr).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to update row %d of sheet %s: %w", rowNumber, sheetName, err)
	}
	return nil
}

// deleteRow removes one row, shifting the rows below it up.
func (c *Client) deleteRow(ctx context.Context, sheetName string, rowNumber int) error {
	sheetID, err := c.sheetID(ctx, sheetName)
	if err != nil {
		return err
	}

	req := &sheetsapi.BatchUpdateSpreadsheetRequest{
		Requests: []*sheetsapi.Request{{
			DeleteDimension: &sheetsapi.DeleteDimensionRequest{
				Range: &sheetsapi.DimensionRange{
					SheetId:    sheetID,
					Dimension:  "ROWS",
					StartIndex: int64(rowNumber - 1),
					EndIndex:   int64(rowNumber),
				},
			},
		}},
	}
	if _, err := c.svc.Spreadsheets.BatchUpdate(c.spreadsheetID, req).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to delete row %d of sheet %s: %w", rowNumber, sheetName, err)
	}
	return nil
}

func (c *Client) sheetID(ctx context.Context, sheetName string) (int64, error) {
	meta, err := c.svc.Spreadsheets.Get(c.spreadsheetID).Fields("sheets.properties").Context(ctx).Do()
	if err != nil {
		return 0, fmt.Errorf("failed to read spreadsheet metadata: %w", err)
	}
	for _, sheet := range meta.Sheets {
		if sheet.Properties != nil && sheet.Properties.Title == sheetName {
			return sheet.Properties.SheetId, nil
		}
	}
	return 0, fmt.Errorf("sheet %s not found in spreadsheet", sheetName)
}

func toInterfaces(values []string) []interface{} {
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

// rowNumberFromRange extracts the row from an A1 range like
// "AttendanceLog!A12:J12".
func rowNumberFromRange(a1 string) (int, error) {
	start := strings.IndexByte(a1, '!') + 1
	row := 0
	seen := false
	for i := start; i < len(a1); i++ {
		ch := a1[i]
		if ch >= '0' && ch <= '9' {
			row = row*10 + int(ch-'0')
			seen = true
			continue
		}
		if seen {
			break
		}
	}
	if !seen || row == 0 {
		return 0, fmt.Errorf("could not parse row number from range %q", a1)
	}
	return row, nil
}
