package insights

import (
	"context"
	"sync/atomic"

	"github.com/MKhiriev/memory-circle/models"
)

// Runner serializes overlapping digest requests with a generation token.
// Callers issuing rapid successive requests (e.g. while the user flips
// filters) begin a generation per request; only the result belonging to the
// most recent generation is applied, stale results are discarded.
//
// The zero value is ready to use.
type Runner struct {
	seq atomic.Uint64
}

// Begin starts a new request generation and returns its token. Any earlier
// in-flight generation becomes stale at this point.
func (r *Runner) Begin() uint64 {
	return r.seq.Add(1)
}

// Latest reports whether seq is still the current generation.
func (r *Runner) Latest(seq uint64) bool {
	return r.seq.Load() == seq
}

// Analyze computes the digest for entries and hands it to apply, unless the
// generation has been superseded or ctx was cancelled in the meantime.
// Returns whether the result was applied.
func (r *Runner) Analyze(ctx context.Context, seq uint64, entries []models.SimplifiedEntry, apply func(models.Digest)) bool {
	digest := Analyze(entries)

	if ctx.Err() != nil || !r.Latest(seq) {
		return false
	}

	apply(digest)
	return true
}
