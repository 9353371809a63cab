package benchmark

import (
	"fmt"
	"io"
)

// Reporter collects Results and prints a console summary, the way the
// teacher's BenchmarkReporter renders its plugin comparison table.
type Reporter struct {
	results []Result
}

// NewReporter creates an empty Reporter.
func NewReporter() *Reporter {
	return &Reporter{}
}

// AddResult records one benchmark outcome.
func (r *Reporter) AddResult(result Result) {
	r.results = append(r.results, result)
}

// Print writes a short table of kind, size, ns/op, B/op and allocs/op
// to w.
func (r *Reporter) Print(w io.Writer) {
	fmt.Fprintf(w, "%-12s %6s %12s %10s %10s\n", "kind", "size", "ns/op", "B/op", "allocs/op")
	for _, res := range r.results {
		if !res.Success {
			fmt.Fprintf(w, "%-12s %6d  FAILED: %s\n", res.Kind, res.Size, res.Error)
			continue
		}
		fmt.Fprintf(w, "%-12s %6d %12d %10d %10d\n",
			res.Kind, res.Size, res.Duration.Nanoseconds(), res.BytesPerOp, res.AllocsPerOp)
	}
}
