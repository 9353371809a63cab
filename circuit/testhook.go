package circuit

// setValue writes value directly into output pin 0 of a component,
// bypassing Step. It exists to seed sequential loops with a specific
// initial state in tests (e.g. seeding one Delay in a ring to true
// before the first Step) and must not be used by production code: it
// has no tick-accuracy guarantees and does not participate in the
// latch/eval phases. It is unexported for exactly that reason — see
// export_test.go for the test-only wrapper that exposes it to _test.go
// files without ever compiling into a non-test binary.
//
// setValue replaces Values[0] in place; it never grows the slice, so it
// is only meaningful for components with at least one output.
func (e *Engine) setValue(id ComponentId, value bool) {
	c, ok := e.reg.get(id)
	if !ok {
		panic((&ErrUnknownComponent{Id: id}).Error())
	}
	c.State.Values[0] = value
}
