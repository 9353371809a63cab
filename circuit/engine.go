// Package circuit implements a tick-accurate simulation engine for a
// mixed combinational/sequential digital-logic graph.
//
// An Engine owns an id allocator, a component registry, a full edge
// index, and a combinational DAG restricted to non-Delay components.
// Host code builds a circuit with Add/Wire and advances it with Step;
// the Wire call rejects any edge that would close a cycle among
// combinational (non-Delay) components, since such a cycle has no
// well-defined tick-bounded semantics. Delay components are the only
// permitted cycle breakers: a feedback loop is legal as long as it
// passes through at least one Delay.
//
// Engine is not safe for concurrent use. Callers must serialize Add,
// Wire, and Step externally — exactly one goroutine may mutate a given
// Engine at a time. Observers may call the read-only query methods
// between Step calls without additional synchronization as long as no
// mutation is in flight.
package circuit

// Engine is the tick-accurate digital-logic simulator described in the
// package doc.
type Engine struct {
	ids     idAllocator
	reg     *registry
	edges   *edgeIndex
	dag     *combinationalDAG
	tick    uint64
}

// New returns an empty Engine at tick 0.
func New() *Engine {
	return &Engine{
		reg:   newRegistry(),
		edges: newEdgeIndex(),
		dag:   newCombinationalDAG(),
	}
}

// CurrentTick returns the number of completed Step calls.
func (e *Engine) CurrentTick() uint64 { return e.tick }

// Add creates a new component of the given kind, zero-initialized, and
// returns its id. If kind is combinational it is also registered in the
// DAG.
func (e *Engine) Add(kind ComponentKind) ComponentId {
	id := e.ids.nextID()
	e.reg.add(id, kind)
	if !kind.IsDelay() {
		e.dag.addNode(id)
	}
	return id
}

// AddArray adds one component per kind given and returns their ids in
// order. Sugar over repeated Add calls.
func (e *Engine) AddArray(kinds ...ComponentKind) []ComponentId {
	ids := make([]ComponentId, len(kinds))
	for i, k := range kinds {
		ids[i] = e.Add(k)
	}
	return ids
}

// AddArrayOf adds n components of the same kind and returns their ids.
func (e *Engine) AddArrayOf(n int, kind ComponentKind) []ComponentId {
	ids := make([]ComponentId, n)
	for i := range ids {
		ids[i] = e.Add(kind)
	}
	return ids
}

// AddArrayWired adds one component per kind and chains consecutive
// elements pin 0 -> pin 0, returning any error from Wire. The chain only
// joins freshly added components and never closes a loop, so none of
// its wires can be rejected as a cycle; see AddArrayWiredLoop for the
// ring variant.
func (e *Engine) AddArrayWired(kinds ...ComponentKind) ([]ComponentId, error) {
	ids := e.AddArray(kinds...)
	for i := 0; i+1 < len(ids); i++ {
		if _, err := e.Wire(ids[i], ids[i+1], 0, 0); err != nil {
			return nil, err
		}
	}
	return ids, nil
}

// AddArrayWiredLoop is AddArrayWired plus a closing wire from the last
// element back to the first, forming a ring. This is how sequential
// feedback loops are built in practice — include at least one Delay in
// kinds or the closing wire will be rejected as a combinational cycle.
func (e *Engine) AddArrayWiredLoop(kinds ...ComponentKind) ([]ComponentId, error) {
	ids, err := e.AddArrayWired(kinds...)
	if err != nil {
		return nil, err
	}
	if len(ids) > 0 {
		if _, err := e.Wire(ids[len(ids)-1], ids[0], 0, 0); err != nil {
			return nil, err
		}
	}
	return ids, nil
}

// Wire connects parent's output pin to child's input pin. It reports
// whether a new edge was added (false means the identical edge already
// existed — a silent, idempotent no-op). If both endpoints are
// combinational and the edge would close a cycle in the combinational
// DAG, the engine is left unchanged and ErrCycleDetected is returned.
// Self-loops on a combinational component are always rejected as
// cycles; Delay endpoints are exempt from the acyclicity check since
// delays are the designated cycle breakers.
func (e *Engine) Wire(parent, child ComponentId, parentOutput, childInput int) (bool, error) {
	parentComponent, ok := e.reg.get(parent)
	if !ok {
		return false, &ErrUnknownComponent{Id: parent}
	}
	childComponent, ok := e.reg.get(child)
	if !ok {
		return false, &ErrUnknownComponent{Id: child}
	}

	_, parentOutputs := parentComponent.Kind.Arity()
	if parentOutput < 0 || parentOutput >= parentOutputs {
		return false, &ErrPinOutOfRange{Id: parent, Kind: parentComponent.Kind, Pin: parentOutput, IsOutput: true}
	}
	childInputs, _ := childComponent.Kind.Arity()
	if childInput < 0 || childInput >= childInputs {
		return false, &ErrPinOutOfRange{Id: child, Kind: childComponent.Kind, Pin: childInput}
	}

	if !parentComponent.Kind.IsDelay() && !childComponent.Kind.IsDelay() {
		if _, err := e.dag.addEdge(parent, child); err != nil {
			return false, err
		}
	}

	edge := Edge{
		Parent:       parent,
		Child:        child,
		ParentOutput: parentOutput,
		ChildInput:   childInput,
		ParentKind:   parentComponent.Kind,
		ChildKind:    childComponent.Kind,
	}
	return e.edges.add(edge), nil
}

// Step advances the simulation by exactly one tick:
//
//  1. Latch phase: every Delay samples its current inputs (the values
//     its drivers held at the end of the previous tick). Reads and
//     writes are split into two passes so that a delay's new value is
//     never observed mid-latch by another delay that it drives.
//  2. Combinational phase: every DAG leaf is evaluated, recursively
//     pulling in whatever inputs it needs; each combinational output is
//     memoized for the tick via its state Version so fan-in is computed
//     at most once per component.
func (e *Engine) Step() {
	e.tick++
	version := e.tick

	e.latchDelays()
	for _, leaf := range e.dag.leaves() {
		e.eval(leaf, version)
	}
}

func (e *Engine) latchDelays() {
	type write struct {
		id    ComponentId
		input int
		value bool
	}
	var writes []write

	ids := make([]ComponentId, 0, len(e.reg.order))
	for _, id := range e.reg.order {
		c := e.reg.components[id]
		if c.Kind.IsDelay() {
			ids = append(ids, id)
		}
	}

	for _, id := range ids {
		for _, edge := range e.edges.incomingTo(id) {
			parent := e.reg.components[edge.Parent]
			writes = append(writes, write{
				id:    id,
				input: edge.ChildInput,
				value: parent.State.Values[edge.ParentOutput],
			})
		}
	}

	for _, w := range writes {
		e.reg.components[w.id].State.Values[w.input] = w.value
	}
}

// eval computes (and memoizes) the outputs of a combinational component
// for the given tick, recursing into its combinational drivers on
// demand and reading Delay drivers directly (they were already latched
// this tick). Multiple drivers of the same input pin combine with
// bitwise OR — the wired-OR convention a Not with several drivers thus
// behaves as a NOR of its drivers.
func (e *Engine) eval(id ComponentId, version uint64) []bool {
	c := e.reg.components[id]
	if c.State.Version == version {
		values := make([]bool, len(c.State.Values))
		copy(values, c.State.Values)
		return values
	}

	inputs, _ := c.Kind.Arity()
	in := make([]bool, inputs)
	for _, edge := range e.edges.incomingTo(id) {
		parent := e.reg.components[edge.Parent]
		var driven bool
		if parent.Kind.IsDelay() {
			driven = parent.State.Values[edge.ParentOutput]
		} else {
			driven = e.eval(edge.Parent, version)[edge.ParentOutput]
		}
		in[edge.ChildInput] = in[edge.ChildInput] || driven
	}

	values := c.Kind.eval(in)
	c.State = State{Values: values, Version: version}
	return values
}

// Components returns a read-only snapshot of every live component, in
// stable (insertion) order.
func (e *Engine) Components() []ComponentView { return e.reg.snapshot() }

// GetState returns the current state of id. Reading an unknown id is a
// programmer error.
func (e *Engine) GetState(id ComponentId) *State {
	c, ok := e.reg.get(id)
	if !ok {
		panic((&ErrUnknownComponent{Id: id}).Error())
	}
	return &c.State
}

// IsOnAt reports whether output pin i of id currently reads true.
func (e *Engine) IsOnAt(id ComponentId, i int) bool { return e.GetState(id).Values[i] }

// IsOn is IsOnAt(id, 0).
func (e *Engine) IsOn(id ComponentId) bool { return e.IsOnAt(id, 0) }

// IsOffAt is the negation of IsOnAt.
func (e *Engine) IsOffAt(id ComponentId, i int) bool { return !e.IsOnAt(id, i) }

// IsOff is the negation of IsOn.
func (e *Engine) IsOff(id ComponentId) bool { return !e.IsOn(id) }
