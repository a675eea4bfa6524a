// Package htmlcsv converts HTML-like text files holding daily quote tables
// (Date, Open, High, Low, Close, Adj Close, Volume) into CSV files.
//
// Basic usage:
//
//	res := htmlcsv.Open("AAPL.txt").Convert()
//	fmt.Println(res.Message())
//	if !res.OK() {
//	    // res.Err is ErrNoTableData or a *ConvertError
//	}
//
// With options:
//
//	res := htmlcsv.Open("AAPL.txt").
//	    Output("out/AAPL.csv").
//	    UnescapeEntities().
//	    WithLogger(logger).
//	    Convert()
//
// Convert never panics and never returns a bare error: every failure is
// reported through the returned Result, so a batch of files can keep going
// after one of them fails.
package htmlcsv

import (
	"github.com/tsawler/htmlcsv/format"
)

// Open returns a Converter for the given input file. Nothing is read until
// Convert is called.
//
// Example:
//
//	res := htmlcsv.Open("quotes.txt").Convert()
func Open(filename string) *Converter {
	return &Converter{
		input:   filename,
		options: defaultOptions(),
	}
}

// ConvertFile converts input to CSV. An empty output derives the path from
// input, see OutputPath.
func ConvertFile(input, output string) Result {
	c := Open(input)
	if output != "" {
		c = c.Output(output)
	}
	return c.Convert()
}

// OutputPath returns the CSV path used when no output is given: the input
// path with its extension replaced by ".csv".
//
//	OutputPath("data/AAPL.txt") // "data/AAPL.csv"
func OutputPath(input string) string {
	return format.ReplaceExtension(input, format.CSV)
}
