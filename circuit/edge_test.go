package circuit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEdgeIndexAddIsIdempotent(t *testing.T) {
	assert := assert.New(t)
	ix := newEdgeIndex()
	e := Edge{Parent: 1, Child: 2, ParentOutput: 0, ChildInput: 0}

	assert.True(ix.add(e))
	assert.False(ix.add(e))
	assert.Len(ix.incomingTo(2), 1)
}

func TestEdgeIndexAllowsDistinctPinPairs(t *testing.T) {
	assert := assert.New(t)
	ix := newEdgeIndex()
	e1 := Edge{Parent: 1, Child: 2, ParentOutput: 0, ChildInput: 0}
	e2 := Edge{Parent: 1, Child: 2, ParentOutput: 0, ChildInput: 1}

	assert.True(ix.add(e1))
	assert.True(ix.add(e2))
	assert.Len(ix.incomingTo(2), 2)
}

func TestEdgeIndexIncomingToIsOrderedByParent(t *testing.T) {
	assert := assert.New(t)
	ix := newEdgeIndex()
	ix.add(Edge{Parent: 5, Child: 9, ParentOutput: 0, ChildInput: 0})
	ix.add(Edge{Parent: 1, Child: 9, ParentOutput: 0, ChildInput: 1})
	ix.add(Edge{Parent: 3, Child: 9, ParentOutput: 0, ChildInput: 2})

	edges := ix.incomingTo(9)
	assert.Equal([]ComponentId{1, 3, 5}, []ComponentId{edges[0].Parent, edges[1].Parent, edges[2].Parent})
}

func TestEdgeIndexIncomingToEmptyForUnknown(t *testing.T) {
	assert := assert.New(t)
	ix := newEdgeIndex()
	assert.Empty(ix.incomingTo(42))
}
