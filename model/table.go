package model

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// DefaultHeader is the column header written at the top of every CSV,
// regardless of how many cells the extracted rows actually hold.
var DefaultHeader = []string{"Date", "Open", "High", "Low", "Close", "Adj Close", "Volume"}

// Table is a header plus the rows extracted from one document.
type Table struct {
	Header []string
	Rows   []Row
}

// NewTable creates a table with the default header and the given rows.
func NewTable(rows []Row) *Table {
	header := make([]string, len(DefaultHeader))
	copy(header, DefaultHeader)
	return &Table{
		Header: header,
		Rows:   rows,
	}
}

// RowCount returns the number of data rows (the header is not counted).
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// ColCount returns the widest row's cell count, or the header width if no
// row is wider. Rows are not padded to this width when written.
func (t *Table) ColCount() int {
	cols := len(t.Header)
	for _, row := range t.Rows {
		if len(row) > cols {
			cols = len(row)
		}
	}
	return cols
}

// IsRagged reports whether any row's cell count differs from the header's.
func (t *Table) IsRagged() bool {
	for _, row := range t.Rows {
		if len(row) != len(t.Header) {
			return true
		}
	}
	return false
}

// WriteCSV writes the header followed by every row to w. Rows are written
// as-is: a row with fewer or more cells than the header is not padded or
// truncated. Lines end with "\n".
func (t *Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if len(t.Header) > 0 {
		if err := cw.Write(t.Header); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}
	for i, row := range t.Rows {
		// encoding/csv renders a lone empty field as a blank line, which
		// readers skip. Quote it so the row survives.
		if len(row) == 1 && row[0] == "" {
			cw.Flush()
			if err := cw.Error(); err != nil {
				return fmt.Errorf("writing row %d: %w", i+1, err)
			}
			if _, err := io.WriteString(w, "\"\"\n"); err != nil {
				return fmt.Errorf("writing row %d: %w", i+1, err)
			}
			continue
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+1, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing csv: %w", err)
	}
	return nil
}

// ToCSV converts the table to CSV format.
func (t *Table) ToCSV() string {
	var sb strings.Builder
	// strings.Builder never returns a write error.
	_ = t.WriteCSV(&sb)
	return sb.String()
}
