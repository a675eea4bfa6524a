package htmldoc

import (
	"strings"
	"unicode"

	"golang.org/x/net/html"

	"github.com/tsawler/htmlcsv/model"
)

// Extract returns the table rows found in content.
//
// Rows are taken from <tr> spans, each holding the <td> cells inside it.
// When the content has no <tr> span at all, every <td> cell in the document
// is collected into a single row instead. Unclosed or malformed markup is
// not reported; it simply yields no match. The result is empty when no cell
// is found.
func Extract(content string) []model.Row {
	return ExtractWithOptions(content, ExtractOptions{})
}

// ExtractWithOptions is Extract with the given options applied to each cell.
func ExtractWithOptions(content string, opts ExtractOptions) []model.Row {
	rows := extractRows(content, opts)
	if rows == nil {
		rows = extractFlat(content, opts)
	}
	return rows
}

// extractRows collects one row per <tr> span. Spans without any <td> are
// dropped. Returns nil when content has no <tr> span, so the caller can
// fall back to extractFlat.
func extractRows(content string, opts ExtractOptions) []model.Row {
	matches := rowPattern.FindAllStringSubmatch(content, -1)
	if len(matches) == 0 {
		return nil
	}

	rows := make([]model.Row, 0, len(matches))
	for _, m := range matches {
		row := extractCells(m[1], opts)
		if !row.IsEmpty() {
			rows = append(rows, row)
		}
	}
	return rows
}

// extractFlat treats the whole document as one row of <td> cells.
func extractFlat(content string, opts ExtractOptions) []model.Row {
	row := extractCells(content, opts)
	if row.IsEmpty() {
		return []model.Row{}
	}
	return []model.Row{row}
}

func extractCells(s string, opts ExtractOptions) model.Row {
	matches := cellPattern.FindAllStringSubmatch(s, -1)
	row := make(model.Row, 0, len(matches))
	for _, m := range matches {
		cell := CleanCell(m[1])
		if opts.UnescapeEntities {
			cell = trimSpace(html.UnescapeString(cell))
		}
		row = append(row, cell)
	}
	return row
}

// CleanCell removes every <...> span from s and trims surrounding
// whitespace. Unbalanced brackets are removed greedily up to the next '>'.
func CleanCell(s string) string {
	return trimSpace(tagPattern.ReplaceAllString(s, ""))
}

// trimSpace trims Unicode white space plus the ASCII separators
// U+001C..U+001F, which exported quote files sometimes carry.
func trimSpace(s string) string {
	return strings.TrimFunc(s, isSpace)
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= '\x1c' && r <= '\x1f')
}
