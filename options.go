package htmlcsv

import (
	"go.uber.org/zap"

	"github.com/tsawler/htmlcsv/htmldoc"
)

// convertOptions holds configuration for one conversion.
type convertOptions struct {
	// Destination; empty means derive from the input path
	output string

	// Cell processing
	extract htmldoc.ExtractOptions

	logger *zap.Logger
}

// defaultOptions returns the default conversion options.
func defaultOptions() convertOptions {
	return convertOptions{
		output:  "",
		extract: htmldoc.ExtractOptions{},
		logger:  zap.NewNop(),
	}
}

// clone creates a copy of convertOptions.
func (o convertOptions) clone() convertOptions {
	return convertOptions{
		output:  o.output,
		extract: o.extract,
		logger:  o.logger,
	}
}
