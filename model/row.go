package model

// Row is one logical table row: its cells in document order.
type Row []string

// IsEmpty reports whether the row has no cells. A row of blank cells is not empty.
func (r Row) IsEmpty() bool { return len(r) == 0 }
