package circuit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDAGRejectsSelfLoop(t *testing.T) {
	assert := assert.New(t)
	d := newCombinationalDAG()
	d.addNode(1)
	_, err := d.addEdge(1, 1)
	assert.Error(err)
}

func TestDAGRejectsIndirectCycle(t *testing.T) {
	assert := assert.New(t)
	d := newCombinationalDAG()
	d.addNode(1)
	d.addNode(2)
	d.addNode(3)

	ok, err := d.addEdge(1, 2)
	assert.NoError(err)
	assert.True(ok)

	ok, err = d.addEdge(2, 3)
	assert.NoError(err)
	assert.True(ok)

	_, err = d.addEdge(3, 1)
	assert.Error(err, "closing 1 -> 2 -> 3 -> 1 must be rejected")
}

func TestDAGAddEdgeIdempotent(t *testing.T) {
	assert := assert.New(t)
	d := newCombinationalDAG()
	d.addNode(1)
	d.addNode(2)

	ok, err := d.addEdge(1, 2)
	assert.NoError(err)
	assert.True(ok)

	ok, err = d.addEdge(1, 2)
	assert.NoError(err)
	assert.False(ok)
}

func TestDAGLeavesOrderedAndCorrect(t *testing.T) {
	assert := assert.New(t)
	d := newCombinationalDAG()
	for _, id := range []ComponentId{3, 1, 2} {
		d.addNode(id)
	}
	_, err := d.addEdge(1, 2)
	assert.NoError(err)
	// 3 has no edges at all; 2 has no outgoing edges; 1 has an outgoing edge.
	assert.Equal([]ComponentId{2, 3}, d.leaves())
}
