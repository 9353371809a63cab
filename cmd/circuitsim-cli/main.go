// Command circuitsim-cli builds a handful of canonical ring circuits
// from a cold start and steps them, printing the per-tick state of
// each component. It only ever drives the engine through Add/Wire/Step
// — seeding a component's state directly (circuit.Engine's unexported
// setValue seam) is a test-only hook and is never available outside
// _test.go files.
package main

import (
	"fmt"

	"github.com/voxellogic/circuitsim/circuit"
)

func main() {
	fmt.Println("--- Not+Delay Ring (period 2) ---")
	notDelayRing(8)
	fmt.Println("\n--- Three-Not+Two-Delay Ring (period 4) ---")
	threeNotTwoDelayRing(12)
	fmt.Println("\n--- Four-Not+Two-Delay Ring (stable fixed point) ---")
	fourNotTwoDelayRing(8)
}

// notDelayRing wires a Not gate feeding a Delay feeding back into the
// Not: the loop free-runs with period 2 from a cold start, no seeding
// required since the odd inverter count breaks the all-false fixed
// point on its own.
func notDelayRing(ticks int) {
	e := circuit.New()
	ids, err := e.AddArrayWiredLoop(circuit.Not(), circuit.Delay())
	if err != nil {
		fmt.Printf("error wiring ring: %v\n", err)
		return
	}

	printRow(e, ids)
	for i := 0; i < ticks; i++ {
		e.Step()
		printRow(e, ids)
	}
}

// threeNotTwoDelayRing wires three Not gates and two Delays into a
// loop: an odd number of inverters in the ring again rules out the
// all-false fixed point from a cold start, and this shape free-runs
// with period 4.
func threeNotTwoDelayRing(ticks int) {
	e := circuit.New()
	ids, err := e.AddArrayWiredLoop(circuit.Not(), circuit.Not(), circuit.Not(), circuit.Delay(), circuit.Delay())
	if err != nil {
		fmt.Printf("error wiring ring: %v\n", err)
		return
	}

	printRow(e, ids)
	for i := 0; i < ticks; i++ {
		e.Step()
		printRow(e, ids)
	}
}

// fourNotTwoDelayRing wires four Not gates and two Delays into a loop:
// an even number of inverters admits a self-consistent state (the Nots
// alternating on/off/on/off, both Delays off), so the ring settles into
// that stable fixed point on the first Step.
func fourNotTwoDelayRing(ticks int) {
	e := circuit.New()
	ids, err := e.AddArrayWiredLoop(circuit.Not(), circuit.Not(), circuit.Not(), circuit.Not(), circuit.Delay(), circuit.Delay())
	if err != nil {
		fmt.Printf("error wiring ring: %v\n", err)
		return
	}

	printRow(e, ids)
	for i := 0; i < ticks; i++ {
		e.Step()
		printRow(e, ids)
	}
}

func printRow(e *circuit.Engine, ids []circuit.ComponentId) {
	fmt.Printf("tick %3d:", e.CurrentTick())
	for _, id := range ids {
		bit := "0"
		if e.IsOn(id) {
			bit = "1"
		}
		fmt.Printf(" %d=%s", id, bit)
	}
	fmt.Println()
}
