// Package benchmark measures circuit.Engine.Step throughput and
// allocation cost over generated ring circuits, with resource tracking
// and JSON history persistence modeled on the same harness the
// teacher's plugin-comparison suite used, scaled down: there is one
// deterministic engine here, not N interchangeable backends.
package benchmark

import (
	"fmt"
	"runtime"
	"testing"
	"time"

	"github.com/voxellogic/circuitsim/circuit"
)

// RingKind names the component kind a ring benchmark wires into a loop.
type RingKind string

const (
	DelayRing RingKind = "delay_ring"
	NotRing   RingKind = "not_ring" // alternating Not/Delay ring
)

// Config selects the circuit shape a single benchmark run measures.
type Config struct {
	Kind RingKind
	Size int // number of ring stages
}

// ResourceUsage tracks allocation and GC activity around a run, the
// same fields the teacher's suite reports per benchmark.
type ResourceUsage struct {
	StartMemory uint64 `json:"start_memory"`
	EndMemory   uint64 `json:"end_memory"`
	MemoryDelta int64  `json:"memory_delta"`
	GCCount     uint32 `json:"gc_count"`
}

// Result contains the outcome and metadata from a single benchmark run.
type Result struct {
	Kind          RingKind      `json:"kind"`
	Size          int           `json:"size"`
	Success       bool          `json:"success"`
	Error         string        `json:"error,omitempty"`
	Duration      time.Duration `json:"duration"`
	AllocsPerOp   int64         `json:"allocs_per_op"`
	BytesPerOp    int64         `json:"bytes_per_op"`
	ResourceUsage ResourceUsage `json:"resource_usage"`
}

// buildRing wires Size stages of Kind into a loop and returns the
// engine ready to step.
func buildRing(cfg Config) (*circuit.Engine, error) {
	e := circuit.New()
	switch cfg.Kind {
	case DelayRing:
		kinds := make([]circuit.ComponentKind, cfg.Size)
		for i := range kinds {
			kinds[i] = circuit.Delay()
		}
		_, err := e.AddArrayWiredLoop(kinds...)
		return e, err
	case NotRing:
		kinds := make([]circuit.ComponentKind, 0, cfg.Size*2)
		for i := 0; i < cfg.Size; i++ {
			kinds = append(kinds, circuit.Not(), circuit.Delay())
		}
		_, err := e.AddArrayWiredLoop(kinds...)
		return e, err
	default:
		return nil, fmt.Errorf("benchmark: unknown ring kind %q", cfg.Kind)
	}
}

// Run executes a Step-throughput benchmark for cfg via testing.Benchmark
// and returns the aggregated result, tracking heap growth the way the
// teacher's RunSingleBenchmark does around the simulator call.
func Run(cfg Config) Result {
	result := Result{Kind: cfg.Kind, Size: cfg.Size}

	e, err := buildRing(cfg)
	if err != nil {
		result.Error = err.Error()
		return result
	}

	runtime.GC()
	startMem, startGC := memStats()
	result.ResourceUsage.StartMemory = startMem

	br := testing.Benchmark(func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			e.Step()
		}
	})

	endMem, endGC := memStats()
	result.ResourceUsage.EndMemory = endMem
	result.ResourceUsage.GCCount = endGC - startGC
	result.ResourceUsage.MemoryDelta = int64(endMem) - int64(startMem)

	result.Success = true
	result.Duration = time.Duration(br.NsPerOp())
	result.AllocsPerOp = br.AllocsPerOp()
	result.BytesPerOp = br.AllocedBytesPerOp()

	return result
}

func memStats() (alloc uint64, gcCount uint32) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return m.Alloc, m.NumGC
}
