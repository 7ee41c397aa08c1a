package loader

import "fmt"

// RecordError describes one skipped record in a batch.
type RecordError struct {
	Index  int    `json:"index"`
	Reason string `json:"reason"`
}

// Report aggregates the outcome of one batch load.
type Report struct {
	Added   int           `json:"added"`
	Skipped int           `json:"skipped"`
	Errors  []RecordError `json:"errors,omitempty"`
}

func (r *Report) skip(index int, err error) {
	r.Skipped++
	r.Errors = append(r.Errors, RecordError{Index: index, Reason: err.Error()})
}

func (r *Report) String() string {
	return fmt.Sprintf("added=%d skipped=%d", r.Added, r.Skipped)
}
