// Package drivers defines the contract between individual lookup drivers and
// the scraper dispatch framework that loads them. A driver turns an ISBN into
// either a fully populated record or an explicit not-found signal; the
// framework aggregates results across drivers and never sees a partial record.
package drivers

import "context"

// Driver is the interface a lookup driver exposes to the dispatch framework.
type Driver interface {
	Name() string
	Search(ctx context.Context, isbn string) (Result, error)
}

// Result is the discriminated outcome of a search: Found with a record, or
// NotFound. There is no partial state in between.
type Result struct {
	Found  bool
	Record *Record
}

// Found wraps a populated record in a successful result.
func Found(rec *Record) Result {
	return Result{Found: true, Record: rec}
}

// NotFound is the terminal miss outcome.
func NotFound() Result {
	return Result{}
}
