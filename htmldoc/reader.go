package htmldoc

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/tsawler/htmlcsv/format"
	"github.com/tsawler/htmlcsv/model"
)

// sniffLen is how many leading bytes are used for content sniffing.
const sniffLen = 512

// Reader provides access to the table rows of one input document.
// Content is decoded as UTF-8; there is no charset detection.
type Reader struct {
	content string
	format  format.Format
}

// Open opens a file for reading and reads its full content.
func Open(filename string) (*Reader, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	return OpenReader(f)
}

// newlines folds "\r\n" and lone "\r" line endings into "\n".
var newlines = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// OpenReader reads the full content of r. Input that is not valid UTF-8 is
// rejected. A leading byte order mark is dropped and line endings are
// normalized to "\n", so a cell broken by a bare "\r" spans lines.
func OpenReader(r io.Reader) (*Reader, error) {
	decoder := transform.Chain(encoding.UTF8Validator, unicode.UTF8BOM.NewDecoder())
	data, err := io.ReadAll(transform.NewReader(r, decoder))
	if err != nil {
		return nil, fmt.Errorf("decoding UTF-8: %w", err)
	}

	return &Reader{
		content: newlines.Replace(string(data)),
		format:  format.DetectFromMagic(data[:min(len(data), sniffLen)]),
	}, nil
}

// Content returns the decoded document text.
func (r *Reader) Content() string {
	return r.content
}

// Format returns the format sniffed from the document's leading bytes.
func (r *Reader) Format() format.Format {
	return r.format
}

// Rows extracts the table rows with default options.
func (r *Reader) Rows() []model.Row {
	return r.RowsWithOptions(ExtractOptions{})
}

// RowsWithOptions extracts the table rows with the given options.
func (r *Reader) RowsWithOptions(opts ExtractOptions) []model.Row {
	return ExtractWithOptions(r.content, opts)
}

// Table returns the extracted rows under the default header.
func (r *Reader) Table(opts ExtractOptions) *model.Table {
	return model.NewTable(r.RowsWithOptions(opts))
}
