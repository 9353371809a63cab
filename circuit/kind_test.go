package circuit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindArities(t *testing.T) {
	assert := assert.New(t)

	cases := []struct {
		name           string
		kind           ComponentKind
		inputs, output int
	}{
		{"Not", Not(), 1, 1},
		{"And(3)", And(3), 3, 1},
		{"HalfAdder", HalfAdder(), 2, 2},
		{"FullAdder", FullAdder(), 3, 2},
		{"Delay", Delay(), 1, 1},
	}
	for _, c := range cases {
		in, out := c.kind.Arity()
		assert.Equal(c.inputs, in, c.name)
		assert.Equal(c.output, out, c.name)
	}
}

func TestAndPanicsOnZeroInputs(t *testing.T) {
	assert.Panics(t, func() { And(0) })
}

func TestOnlyDelayIsDelay(t *testing.T) {
	assert := assert.New(t)
	assert.True(Delay().IsDelay())
	assert.False(Not().IsDelay())
	assert.False(And(2).IsDelay())
	assert.False(HalfAdder().IsDelay())
	assert.False(FullAdder().IsDelay())
}

func TestNotEvalIsNorOfInputs(t *testing.T) {
	assert := assert.New(t)
	assert.Equal([]bool{true}, Not().eval([]bool{false}))
	assert.Equal([]bool{false}, Not().eval([]bool{true}))
}

func TestHalfAdderEvalTruthTable(t *testing.T) {
	assert := assert.New(t)
	assert.Equal([]bool{false, false}, HalfAdder().eval([]bool{false, false}))
	assert.Equal([]bool{true, false}, HalfAdder().eval([]bool{true, false}))
	assert.Equal([]bool{true, false}, HalfAdder().eval([]bool{false, true}))
	assert.Equal([]bool{false, true}, HalfAdder().eval([]bool{true, true}))
}
