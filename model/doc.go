// Package model provides the data structures shared by the extractor and
// the converter.
//
// A [Row] is the ordered list of cleaned cell strings taken from one table
// row. A [Table] pairs those rows with a header and renders them as CSV:
//
//	t := model.NewTable(rows)
//	if err := t.WriteCSV(w); err != nil {
//	    // handle error
//	}
//
// Cell values are never coerced: dates and prices stay as the text they
// were in the source document. Rows are written exactly as extracted, so a
// table may be ragged when a source row has more or fewer cells than the
// header.
package model
