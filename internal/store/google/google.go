// Package google implements the RecordStore port on top of the Google
// Sheets v4 API using service-account credentials. Every remote call goes
// through a bounded retry with exponential backoff; quota and server errors
// are retried, permission errors fail immediately.
package google

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"

	"feetrack/internal/core"
	"feetrack/internal/store"

	goption "google.golang.org/api/option"
	gsheet "google.golang.org/api/sheets/v4"
)

type Config struct {
	SpreadsheetID   string
	CredentialsJSON string // inline service-account JSON, wins over the file
	CredentialsFile string
}

type Client struct {
	svc           *gsheet.Service
	spreadsheetID string
}

var _ store.RecordStore = (*Client)(nil)

// New creates a Sheets-backed record store. Missing credentials are fatal:
// the process cannot run without its single structured secret.
func New(ctx context.Context, cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.SpreadsheetID) == "" {
		return nil, errors.New("missing spreadsheet id")
	}

	credentials, err := resolveCredentials(cfg)
	if err != nil {
		return nil, err
	}

	svc, err := gsheet.NewService(ctx,
		goption.WithCredentialsJSON(credentials),
		goption.WithScopes(gsheet.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}

	return &Client{svc: svc, spreadsheetID: cfg.SpreadsheetID}, nil
}

func resolveCredentials(cfg Config) ([]byte, error) {
	if inline := strings.TrimSpace(cfg.CredentialsJSON); inline != "" {
		return []byte(inline), nil
	}
	if file := strings.TrimSpace(cfg.CredentialsFile); file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("read service account file: %w", err)
		}
		return data, nil
	}
	return nil, errors.New("missing service account credentials")
}

// EnsureSchema provisions missing tabs and reconciles header rows. A header
// that is a strict prefix of the expected one is extended in place; any
// other mismatch is reported as drift without touching the rows beneath it.
func (c *Client) EnsureSchema(ctx context.Context) (store.SchemaReport, error) {
	var report store.SchemaReport

	existing, err := c.tabTitles(ctx)
	if err != nil {
		return report, err
	}

	required := store.RequiredTabs()
	tabs := make([]string, 0, len(required))
	for tab := range required {
		tabs = append(tabs, tab)
	}
	sort.Strings(tabs)

	for _, tab := range tabs {
		header := required[tab]
		if !existing[tab] {
			if err := c.addTab(ctx, tab, header); err != nil {
				return report, fmt.Errorf("create tab %s: %w", tab, err)
			}
			report.Created = append(report.Created, tab)
			slog.InfoContext(ctx, "Created tab", "tab", tab, "columns", len(header))
			continue
		}

		current, err := c.headerRow(ctx, tab)
		if err != nil {
			return report, fmt.Errorf("read header of %s: %w", tab, err)
		}
		switch store.ClassifyHeader(current, header) {
		case store.HeaderMatches:
			report.Intact = append(report.Intact, tab)
		case store.HeaderExtend:
			if err := c.writeHeader(ctx, tab, header); err != nil {
				return report, fmt.Errorf("extend header of %s: %w", tab, err)
			}
			report.Extended = append(report.Extended, tab)
			slog.InfoContext(ctx, "Extended tab header", "tab", tab, "from", len(current), "to", len(header))
		case store.HeaderDrift:
			return report, fmt.Errorf("tab %s has header %v, want %v: %w", tab, current, header, store.ErrSchemaDrift)
		}
	}
	return report, nil
}

func (c *Client) LoadMembers(ctx context.Context) ([]core.Member, error) {
	rows, err := c.dataRows(ctx, store.TabMembers, "A:I")
	if err != nil {
		return nil, err
	}
	members := make([]core.Member, 0, len(rows))
	for _, r := range rows {
		members = append(members, parseMember(r.cells, r.index))
	}
	return members, nil
}

func (c *Client) LoadFees(ctx context.Context) ([]core.FeeRecord, error) {
	rows, err := c.dataRows(ctx, store.TabFees, "A:E")
	if err != nil {
		return nil, err
	}
	fees := make([]core.FeeRecord, 0, len(rows))
	for _, r := range rows {
		rec := parseFeeRecord(r.cells, r.index)
		if rec.MemberID == "" && rec.Period == "" {
			continue // blank filler row
		}
		fees = append(fees, rec)
	}
	return fees, nil
}

func (c *Client) AppendMember(ctx context.Context, m core.Member) error {
	if err := m.Validate(); err != nil {
		return err
	}
	return c.appendRow(ctx, store.TabMembers, memberCells(m))
}

func (c *Client) UpdateMember(ctx context.Context, m core.Member) error {
	if err := m.Validate(); err != nil {
		return err
	}
	if m.Row < 2 {
		return fmt.Errorf("update member %s: %w", m.ID, store.ErrRowNotFound)
	}
	rng := fmt.Sprintf("%s!A%d:I%d", store.TabMembers, m.Row, m.Row)
	return c.updateRange(ctx, rng, [][]any{memberCells(m)})
}

func (c *Client) AppendFee(ctx context.Context, rec core.FeeRecord) error {
	return c.appendRow(ctx, store.TabFees, feeCells(rec))
}

// UpdateFeePayment rewrites only the payment cells (paid, due, paid-on) of
// the addressed row, leaving the key cells untouched.
func (c *Client) UpdateFeePayment(ctx context.Context, rec core.FeeRecord) error {
	if rec.Row < 2 {
		return fmt.Errorf("update fee %s/%s: %w", rec.MemberID, rec.Period, store.ErrRowNotFound)
	}
	rng := fmt.Sprintf("%s!C%d:E%d", store.TabFees, rec.Row, rec.Row)
	return c.updateRange(ctx, rng, [][]any{{rec.Paid, rec.Due, rec.PaidOn.ISO()}})
}

// --- low-level sheet operations, all retried ---

type indexedRow struct {
	index int // 1-based sheet row
	cells []string
}

func (c *Client) tabTitles(ctx context.Context) (map[string]bool, error) {
	var meta *gsheet.Spreadsheet
	err := withRetry(ctx, "get spreadsheet", func() error {
		var err error
		meta, err = c.svc.Spreadsheets.Get(c.spreadsheetID).Fields("sheets.properties.title").Context(ctx).Do()
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("get spreadsheet: %w", err)
	}
	titles := make(map[string]bool, len(meta.Sheets))
	for _, sh := range meta.Sheets {
		if sh.Properties != nil {
			titles[sh.Properties.Title] = true
		}
	}
	return titles, nil
}

func (c *Client) addTab(ctx context.Context, tab string, header []string) error {
	req := &gsheet.BatchUpdateSpreadsheetRequest{
		Requests: []*gsheet.Request{{
			AddSheet: &gsheet.AddSheetRequest{
				Properties: &gsheet.SheetProperties{Title: tab},
			},
		}},
	}
	err := withRetry(ctx, "add sheet", func() error {
		_, err := c.svc.Spreadsheets.BatchUpdate(c.spreadsheetID, req).Context(ctx).Do()
		return err
	})
	if err != nil {
		return err
	}
	return c.writeHeader(ctx, tab, header)
}

func (c *Client) headerRow(ctx context.Context, tab string) ([]string, error) {
	rng := fmt.Sprintf("%s!1:1", tab)
	var resp *gsheet.ValueRange
	err := withRetry(ctx, "read header", func() error {
		var err error
		resp, err = c.svc.Spreadsheets.Values.Get(c.spreadsheetID, rng).Context(ctx).Do()
		return err
	})
	if err != nil {
		return nil, err
	}
	if len(resp.Values) == 0 {
		return nil, nil
	}
	return toStrings(resp.Values[0]), nil
}

func (c *Client) writeHeader(ctx context.Context, tab string, header []string) error {
	cells := make([]any, len(header))
	for i, h := range header {
		cells[i] = h
	}
	rng := fmt.Sprintf("%s!A1:%s1", tab, columnLetter(len(header)-1))
	return c.updateRange(ctx, rng, [][]any{cells})
}

func (c *Client) dataRows(ctx context.Context, tab, cols string) ([]indexedRow, error) {
	rng := fmt.Sprintf("%s!%s", tab, cols)
	var resp *gsheet.ValueRange
	err := withRetry(ctx, "read rows", func() error {
		var err error
		resp, err = c.svc.Spreadsheets.Values.Get(c.spreadsheetID, rng).Context(ctx).Do()
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", rng, err)
	}
	var rows []indexedRow
	for i, raw := range resp.Values {
		if i == 0 {
			continue // header
		}
		rows = append(rows, indexedRow{index: i + 1, cells: toStrings(raw)})
	}
	return rows, nil
}

func (c *Client) appendRow(ctx context.Context, tab string, cells []any) error {
	rng := fmt.Sprintf("%s!A:A", tab)
	vr := &gsheet.ValueRange{Values: [][]any{cells}}
	err := withRetry(ctx, "append row", func() error {
		_, err := c.svc.Spreadsheets.Values.Append(c.spreadsheetID, rng, vr).
			ValueInputOption("USER_ENTERED").
			InsertDataOption("INSERT_ROWS").
			Context(ctx).Do()
		return err
	})
	if err != nil {
		return fmt.Errorf("append to %s: %w", tab, err)
	}
	return nil
}

func (c *Client) updateRange(ctx context.Context, rng string, values [][]any) error {
	vr := &gsheet.ValueRange{Values: values}
	err := withRetry(ctx, "update range", func() error {
		_, err := c.svc.Spreadsheets.Values.Update(c.spreadsheetID, rng, vr).
			ValueInputOption("USER_ENTERED").
			Context(ctx).Do()
		return err
	})
	if err != nil {
		return fmt.Errorf("update %s: %w", rng, err)
	}
	return nil
}

// columnLetter maps a zero-based column index to its A1 letter. Tabs here
// never exceed 26 columns.
func columnLetter(i int) string {
	return string(rune('A' + i))
}
