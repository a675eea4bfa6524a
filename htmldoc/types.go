// Package htmldoc extracts table rows from HTML-like text.
package htmldoc

import "regexp"

var (
	// rowPattern matches one <tr>...</tr> span. (?s) lets a row span lines.
	rowPattern = regexp.MustCompile(`(?s)<tr[^>]*>(.*?)</tr>`)

	// cellPattern matches one <td>...</td> span on a single line.
	cellPattern = regexp.MustCompile(`<td[^>]*>(.*?)</td>`)

	// tagPattern matches any angle-bracket span.
	tagPattern = regexp.MustCompile(`<[^>]+>`)
)

// ExtractOptions holds options for row extraction.
type ExtractOptions struct {
	// UnescapeEntities decodes HTML character references such as &amp; and
	// &nbsp; in cleaned cells. Off by default: cells are the raw text
	// between tags. Decoded cells may contain '<' or '>' when the source
	// escaped them.
	UnescapeEntities bool
}
