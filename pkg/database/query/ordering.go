package query

// Ordering is the ordering of a returned set of records
type Ordering uint

const (
	Ascending Ordering = iota
	Descending
)
