package circuit

import "fmt"

// kindTag discriminates the closed ComponentKind variant set.
type kindTag uint8

const (
	kindNot kindTag = iota
	kindAnd
	kindHalfAdder
	kindFullAdder
	kindDelay
)

// ComponentKind is a closed variant set with a fixed (input-arity,
// output-arity) contract. Values are immutable and comparable with ==.
//
//	Not        (1, 1) combinational
//	And(n)     (n, 1) combinational, n >= 1
//	HalfAdder  (2, 2) combinational, outputs {sum, carry}
//	FullAdder  (3, 2) combinational, outputs {sum, carry}
//	Delay      (1, 1) sequential (one-tick register)
type ComponentKind struct {
	tag kindTag
	n   int // And's input count; unused by other variants
}

// Not returns the NOT gate kind.
func Not() ComponentKind { return ComponentKind{tag: kindNot} }

// And returns the n-input AND gate kind. Panics if n < 1: a zero-input
// AND has no well-defined arity and callers should use Not's vacuous
// truth law instead.
func And(n int) ComponentKind {
	if n < 1 {
		panic(fmt.Sprintf("circuit: And requires n >= 1, got %d", n))
	}
	return ComponentKind{tag: kindAnd, n: n}
}

// HalfAdder returns the half-adder kind.
func HalfAdder() ComponentKind { return ComponentKind{tag: kindHalfAdder} }

// FullAdder returns the full-adder kind.
func FullAdder() ComponentKind { return ComponentKind{tag: kindFullAdder} }

// Delay returns the one-tick register kind.
func Delay() ComponentKind { return ComponentKind{tag: kindDelay} }

// IsDelay reports whether the kind is the sequential Delay variant —
// the only kind excluded from the combinational DAG.
func (k ComponentKind) IsDelay() bool { return k.tag == kindDelay }

// Arity returns the (input, output) pin counts for the kind.
func (k ComponentKind) Arity() (inputs, outputs int) {
	switch k.tag {
	case kindNot:
		return 1, 1
	case kindAnd:
		return k.n, 1
	case kindHalfAdder:
		return 2, 2
	case kindFullAdder:
		return 3, 2
	case kindDelay:
		return 1, 1
	default:
		panic("circuit: unknown ComponentKind")
	}
}

// String renders a short human-readable label, used in logs and errors.
func (k ComponentKind) String() string {
	switch k.tag {
	case kindNot:
		return "Not"
	case kindAnd:
		return fmt.Sprintf("And(%d)", k.n)
	case kindHalfAdder:
		return "HalfAdder"
	case kindFullAdder:
		return "FullAdder"
	case kindDelay:
		return "Delay"
	default:
		return "Unknown"
	}
}

// eval computes this kind's outputs for a given input vector. Delay is
// unreachable here — its output is latched by the engine, not computed
// combinationally.
func (k ComponentKind) eval(inputs []bool) []bool {
	switch k.tag {
	case kindNot:
		allFalse := true
		for _, x := range inputs {
			if x {
				allFalse = false
				break
			}
		}
		return []bool{allFalse}
	case kindAnd:
		allTrue := true
		for _, x := range inputs {
			if !x {
				allTrue = false
				break
			}
		}
		return []bool{allTrue}
	case kindHalfAdder:
		s := b2i(inputs[0]) + b2i(inputs[1])
		return []bool{s&1 != 0, s&2 != 0}
	case kindFullAdder:
		s := b2i(inputs[0]) + b2i(inputs[1]) + b2i(inputs[2])
		return []bool{s&1 != 0, s&2 != 0}
	default:
		panic("circuit: eval called on non-combinational kind")
	}
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}
