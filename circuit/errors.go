package circuit

import "fmt"

// ErrCycleDetected is returned by Wire when adding the edge would close
// a cycle in the combinational DAG. The engine is left unchanged; the
// caller may retry with a different wiring (e.g. route through a Delay).
type ErrCycleDetected struct {
	Parent, Child ComponentId
}

func (e *ErrCycleDetected) Error() string {
	return fmt.Sprintf("circuit: wiring %d -> %d would create a combinational cycle", e.Parent, e.Child)
}

// ErrUnknownComponent is returned by Wire when an id passed to it is not
// live in the engine. Treated as a programmer error by callers embedding
// the engine directly; surfaced as a typed error from Wire so HTTP/test
// callers can report it without crashing the process. The query
// accessors (GetState, IsOn, IsOnAt, IsOff, IsOffAt) do not return it:
// they panic with its message instead.
type ErrUnknownComponent struct {
	Id ComponentId
}

func (e *ErrUnknownComponent) Error() string {
	return fmt.Sprintf("circuit: unknown component %d", e.Id)
}

// ErrPinOutOfRange is returned when a pin index exceeds the kind's
// arity. Programmer error; checked at Wire time rather than deferred to
// Step (§9 open question, resolved toward fail-fast).
type ErrPinOutOfRange struct {
	Id       ComponentId
	Kind     ComponentKind
	Pin      int
	IsOutput bool
}

func (e *ErrPinOutOfRange) Error() string {
	side := "input"
	if e.IsOutput {
		side = "output"
	}
	return fmt.Sprintf("circuit: %s pin %d out of range for component %d (%s)", side, e.Pin, e.Id, e.Kind)
}
