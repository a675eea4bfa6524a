package htmlcsv

import (
	"errors"
	"fmt"
)

// ErrNoTableData is reported when an input file holds no table cells.
var ErrNoTableData = errors.New("no table data found")

// ConvertError records a failure to read or write a file during conversion.
// Read and write failures share the same outcome message; Op tells them apart.
type ConvertError struct {
	Op   string // "read" or "write"
	Path string
	Err  error
}

func (e *ConvertError) Error() string {
	return e.Op + " " + e.Path + ": " + e.Err.Error()
}

func (e *ConvertError) Unwrap() error { return e.Err }

// Result is the outcome of converting one file. It is a success when Err is
// nil, in which case Output names the written CSV.
type Result struct {
	Input  string
	Output string
	Rows   int
	Err    error
}

// OK reports whether the conversion succeeded.
func (r Result) OK() bool {
	return r.Err == nil
}

// Message returns the human-readable outcome line for the result.
func (r Result) Message() string {
	if r.Err == nil {
		return fmt.Sprintf("Success: converted %s to %s", r.Input, r.Output)
	}
	if errors.Is(r.Err, ErrNoTableData) {
		return fmt.Sprintf("Error: no table data found in file %s", r.Input)
	}

	diag := r.Err
	var ce *ConvertError
	if errors.As(r.Err, &ce) {
		diag = ce.Err
	}
	return fmt.Sprintf("Error: failed to process file %s - %v", r.Input, diag)
}

// String implements fmt.Stringer.
func (r Result) String() string {
	return r.Message()
}

func failure(input, op, path string, err error) Result {
	return Result{
		Input: input,
		Err:   &ConvertError{Op: op, Path: path, Err: err},
	}
}
