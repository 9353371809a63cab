// Command benchmark-demo runs the Step-throughput benchmark over a
// range of ring sizes, optionally persisting and comparing history.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/voxellogic/circuitsim/benchmark"
)

func main() {
	var (
		kind      = flag.String("kind", "delay_ring", "ring kind: delay_ring, not_ring")
		minSize   = flag.Int("min-size", 2, "smallest ring size to benchmark")
		maxSize   = flag.Int("max-size", 64, "largest ring size to benchmark")
		save      = flag.Bool("save", false, "persist results and compare against prior runs")
		outputDir = flag.String("output-dir", "./benchmark-results", "directory for persisted history")
		version   = flag.String("version", "dev", "version label recorded alongside persisted results")
	)
	flag.Parse()

	ringKind := benchmark.RingKind(*kind)
	reporter := benchmark.NewReporter()
	persistence := benchmark.NewPersistence(*outputDir)

	for size := *minSize; size <= *maxSize; size *= 2 {
		result := benchmark.Run(benchmark.Config{Kind: ringKind, Size: size})
		reporter.AddResult(result)

		if !*save {
			continue
		}
		if err := persistence.SaveResult(result, *version); err != nil {
			fmt.Fprintf(os.Stderr, "saving result for size %d: %v\n", size, err)
			continue
		}
		history, err := persistence.LoadHistory(ringKind, size)
		if err != nil {
			continue
		}
		if change, ok := benchmark.CompareWithPrevious(history); ok {
			fmt.Printf("size %d: %.2f%% change in ns/op vs previous run\n", size, change)
		}
	}

	reporter.Print(os.Stdout)
}
