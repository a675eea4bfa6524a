package htmlcsv

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/tsawler/htmlcsv/format"
	"github.com/tsawler/htmlcsv/htmldoc"
	"github.com/tsawler/htmlcsv/model"
)

// Converter provides a fluent interface for converting one input file to
// CSV. Each configuration method returns a new Converter, so a configured
// Converter can be shared and reused.
type Converter struct {
	input   string
	options convertOptions
}

// clone creates a copy of the Converter with copied options.
func (c *Converter) clone() *Converter {
	return &Converter{
		input:   c.input,
		options: c.options.clone(),
	}
}

// Input returns a Converter for another input file with the same options.
// An explicit Output is dropped so the new file gets its own derived path.
//
// Example:
//
//	tmpl := htmlcsv.Open("").UnescapeEntities()
//	for _, f := range files {
//	    fmt.Println(tmpl.Input(f).Convert().Message())
//	}
func (c *Converter) Input(filename string) *Converter {
	newConv := c.clone()
	newConv.input = filename
	newConv.options.output = ""
	return newConv
}

// Output sets the CSV path to write. Without it the path is derived from
// the input, see OutputPath.
//
// Example:
//
//	res := htmlcsv.Open("AAPL.txt").Output("csv/AAPL.csv").Convert()
func (c *Converter) Output(path string) *Converter {
	newConv := c.clone()
	newConv.options.output = path
	return newConv
}

// UnescapeEntities decodes HTML character references (&amp;, &nbsp;, ...)
// in every cell. By default cells are written exactly as found between tags.
func (c *Converter) UnescapeEntities() *Converter {
	newConv := c.clone()
	newConv.options.extract.UnescapeEntities = true
	return newConv
}

// WithLogger sets the logger used to trace the conversion. A nil logger
// disables logging.
func (c *Converter) WithLogger(logger *zap.Logger) *Converter {
	newConv := c.clone()
	if logger == nil {
		logger = zap.NewNop()
	}
	newConv.options.logger = logger
	return newConv
}

// OutputPath returns the path Convert will write to.
func (c *Converter) OutputPath() string {
	if c.options.output != "" {
		return c.options.output
	}
	return OutputPath(c.input)
}

// Convert reads the input, extracts its table rows and writes them as CSV
// under the fixed header. The output file is created or overwritten only
// when at least one row was found.
func (c *Converter) Convert() Result {
	output := c.OutputPath()
	log := c.options.logger.With(zap.String("input", c.input))

	r, err := htmldoc.Open(c.input)
	if err != nil {
		log.Warn("reading input failed", zap.Error(err))
		return failure(c.input, "read", c.input, err)
	}

	log.Debug("read input",
		zap.Int("bytes", len(r.Content())),
		zap.Stringer("format", r.Format()),
		zap.Stringer("extension", format.Detect(c.input)),
	)

	table := r.Table(c.options.extract)
	if table.RowCount() == 0 {
		log.Warn("no table data found")
		return Result{Input: c.input, Err: ErrNoTableData}
	}
	if table.IsRagged() {
		log.Debug("row widths differ from header",
			zap.Int("header", len(table.Header)),
			zap.Int("widest", table.ColCount()),
		)
	}

	if err := writeTable(output, table); err != nil {
		log.Warn("writing output failed", zap.String("output", output), zap.Error(err))
		return failure(c.input, "write", output, err)
	}

	log.Info("converted",
		zap.String("output", output),
		zap.Int("rows", table.RowCount()),
	)

	return Result{
		Input:  c.input,
		Output: output,
		Rows:   table.RowCount(),
	}
}

// writeTable writes table to path as UTF-8 CSV, replacing any existing file.
func writeTable(path string, table *model.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}

	w := transform.NewWriter(f, unicode.UTF8.NewEncoder())
	if err := table.WriteCSV(w); err != nil {
		f.Close()
		return err
	}
	if err := w.Close(); err != nil {
		f.Close()
		return fmt.Errorf("encoding UTF-8: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing file: %w", err)
	}
	return nil
}
