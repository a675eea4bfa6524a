// Package format provides input and output format detection for htmlcsv.
package format

import (
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// Format represents a file format htmlcsv reads or writes.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// Text indicates a plain text file, the conventional input for exported quote tables.
	Text
	// HTML indicates an HTML document.
	HTML
	// CSV indicates comma-separated values, the output format.
	CSV
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case Text:
		return "Text"
	case HTML:
		return "HTML"
	case CSV:
		return "CSV"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case Text:
		return ".txt"
	case HTML:
		return ".html"
	case CSV:
		return ".csv"
	default:
		return ""
	}
}

// Detect determines file format from filename extension.
func Detect(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".txt":
		return Text
	case ".html", ".htm":
		return HTML
	case ".csv":
		return CSV
	default:
		return Unknown
	}
}

// DetectFromMagic sniffs content to determine format. Only the leading bytes
// are inspected, so callers may pass a prefix of a large file.
// Returns Unknown for empty or binary data.
func DetectFromMagic(data []byte) Format {
	if len(data) == 0 {
		return Unknown
	}

	var isText bool
	for m := mimetype.Detect(data); m != nil; m = m.Parent() {
		switch {
		case m.Is("text/html"):
			return HTML
		case m.Is("text/csv"):
			return CSV
		case m.Is("text/plain"):
			isText = true
		}
	}

	if isText {
		return Text
	}
	return Unknown
}

// ReplaceExtension swaps the extension of path for the extension of f,
// keeping the directory and base name. A leading dot on the base name is
// not treated as an extension, so ".quotes" becomes ".quotes.csv".
func ReplaceExtension(path string, f Format) string {
	ext := filepath.Ext(path)
	base := filepath.Base(path)
	if ext != "" && strings.TrimLeft(base, ".") == strings.TrimPrefix(ext, ".") {
		ext = ""
	}
	return strings.TrimSuffix(path, ext) + f.Extension()
}
