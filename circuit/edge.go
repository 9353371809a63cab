package circuit

import "sort"

// Edge is a directed wire from one parent output pin to one child
// input pin. It carries a redundant copy of both endpoints' kinds for
// denormalized lookups; Engine.Step itself does not read these copies
// and looks each endpoint's kind and state up in the registry.
type Edge struct {
	Parent       ComponentId
	Child        ComponentId
	ParentOutput int
	ChildInput   int
	ParentKind   ComponentKind
	ChildKind    ComponentKind
}

// pinKey orders edges between the same two components by pin pair so
// that iteration is deterministic.
func (e Edge) pinKey() int64 {
	return int64(e.ParentOutput)<<32 | int64(e.ChildInput)
}

// edgeIndex stores the full multigraph of wires, indexed by endpoint
// and direction. Multiple distinct edges between the same two
// components are allowed as long as their pin pairs differ; inserting
// the same (parent, child, parent_output, child_input) tuple twice is
// a silent no-op (set semantics).
type edgeIndex struct {
	incoming map[ComponentId]map[ComponentId][]Edge // child -> parent -> edges, pin-sorted
	outgoing map[ComponentId]map[ComponentId][]Edge // parent -> child -> edges, pin-sorted
}

func newEdgeIndex() *edgeIndex {
	return &edgeIndex{
		incoming: make(map[ComponentId]map[ComponentId][]Edge),
		outgoing: make(map[ComponentId]map[ComponentId][]Edge),
	}
}

// add inserts e into both mirrored mappings. Returns true if a new edge
// was added, false if an equal edge (same endpoints and pin pair) was
// already present.
func (ix *edgeIndex) add(e Edge) bool {
	if ix.contains(e) {
		return false
	}
	insertSorted(ix.outgoing, e.Parent, e.Child, e)
	insertSorted(ix.incoming, e.Child, e.Parent, e)
	return true
}

func (ix *edgeIndex) contains(e Edge) bool {
	for _, existing := range ix.outgoing[e.Parent][e.Child] {
		if existing.ParentOutput == e.ParentOutput && existing.ChildInput == e.ChildInput {
			return true
		}
	}
	return false
}

func insertSorted(m map[ComponentId]map[ComponentId][]Edge, primary, secondary ComponentId, e Edge) {
	bySecondary, ok := m[primary]
	if !ok {
		bySecondary = make(map[ComponentId][]Edge)
		m[primary] = bySecondary
	}
	edges := bySecondary[secondary]
	i := sort.Search(len(edges), func(i int) bool { return edges[i].pinKey() >= e.pinKey() })
	edges = append(edges, Edge{})
	copy(edges[i+1:], edges[i:])
	edges[i] = e
	bySecondary[secondary] = edges
}

// incomingTo returns every edge terminating at child, ordered
// deterministically by parent id and then by pin pair.
func (ix *edgeIndex) incomingTo(child ComponentId) []Edge {
	byParent := ix.incoming[child]
	if len(byParent) == 0 {
		return nil
	}
	parents := make([]ComponentId, 0, len(byParent))
	for p := range byParent {
		parents = append(parents, p)
	}
	sort.Slice(parents, func(i, j int) bool { return parents[i] < parents[j] })

	out := make([]Edge, 0, len(byParent))
	for _, p := range parents {
		out = append(out, byParent[p]...)
	}
	return out
}
