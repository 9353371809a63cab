// Package hostutil collects the small, dependency-free helpers a host
// integration (hotbar input, frame-rate negotiation, array building)
// would use around a circuit.Engine. None of these import circuit: the
// 3D scene they'd actually back — cable visuals, the voxel-to-id
// registry, singleton wiring into a host runtime — stays out of scope,
// exactly as it does in the engine itself.
package hostutil

import "math"

// hotbarEpsilon bounds the floating-point slack tolerated before
// RefreshToFPS rounds a refresh rate up to the next whole frame.
const hotbarEpsilon = 1e-9

// hotbarKeys maps a subset of keycodes to hotbar digit slots 0..9. The
// mapping is intentionally small and exact: it only recognizes the
// keycodes a host would bind to the digit row.
var hotbarKeys = map[int]int{
	'0': 0, '1': 1, '2': 2, '3': 3, '4': 4,
	'5': 5, '6': 6, '7': 7, '8': 8, '9': 9,
}

// HotbarSlot returns the hotbar digit a keycode selects. ok is false —
// the "absent" sentinel — if key does not map to any of the 10 slots.
func HotbarSlot(key int) (slot int, ok bool) {
	slot, ok = hotbarKeys[key]
	return slot, ok
}

// RefreshToFPS rounds a monitor refresh rate up to the nearest integer
// frame rate: floor(refresh), plus one more if the fractional part
// exceeds a small epsilon (so a refresh rate that is an integer up to
// floating-point noise doesn't spuriously round up).
func RefreshToFPS(refresh float64) int {
	whole := math.Floor(refresh)
	frac := refresh - whole
	if frac > hotbarEpsilon {
		return int(whole) + 1
	}
	return int(whole)
}

// Repeat returns a slice of n copies of value.
func Repeat[T any](value T, n int) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = value
	}
	return out
}
