package circuit

// SetValue re-exports the unexported setValue test seam for use from
// _test.go files only, the same way a package exports internals for
// its own test suite without widening the production API surface.
func (e *Engine) SetValue(id ComponentId, value bool) {
	e.setValue(id, value)
}
