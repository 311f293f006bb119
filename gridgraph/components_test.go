package gridgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brend/algodemos/gridgraph"
)

// TestConnectedComponents_Square4 splits a 4×3 grid into two free regions.
//
// Grid (1 = obstacle, 0 = free):
//
//	0 0 1 0
//	1 1 1 0
//	0 1 0 0
//
// Expected: {(0,0),(1,0)}, {(3,0),(3,1),(2,2),(3,2)} and {(0,2)}.
func TestConnectedComponents_Square4(t *testing.T) {
	gg, err := gridgraph.From2D([][]int{
		{0, 0, 1, 0},
		{1, 1, 1, 0},
		{0, 1, 0, 0},
	}, gridgraph.Conn4)
	require.NoError(t, err)

	comps := gg.ConnectedComponents()
	require.Len(t, comps, 3)
	assert.Equal(t, cells([2]int{0, 0}, [2]int{1, 0}), comps[0])
	assert.Equal(t, cells([2]int{3, 0}, [2]int{3, 1}, [2]int{2, 2}, [2]int{3, 2}), comps[1])
	assert.Equal(t, cells([2]int{0, 2}), comps[2])

	assert.Equal(t, 1, gg.ComponentOf(gridgraph.Cell{X: 2, Y: 2}))
	assert.Equal(t, -1, gg.ComponentOf(gridgraph.Cell{X: 2, Y: 0}))
	assert.Equal(t, -1, gg.ComponentOf(gridgraph.Cell{X: 9, Y: 9}))
}

// TestConnectedComponents_Diagonal shows that a diagonal gap only joins
// regions under Conn8.
func TestConnectedComponents_Diagonal(t *testing.T) {
	grid := [][]int{
		{0, 1},
		{1, 0},
	}
	g4, err := gridgraph.From2D(grid, gridgraph.Conn4)
	require.NoError(t, err)
	g8, err := gridgraph.From2D(grid, gridgraph.Conn8)
	require.NoError(t, err)

	a, b := gridgraph.Cell{X: 0, Y: 0}, gridgraph.Cell{X: 1, Y: 1}
	assert.Len(t, g4.ConnectedComponents(), 2)
	assert.False(t, g4.Connected(a, b))
	assert.Len(t, g8.ConnectedComponents(), 1)
	assert.True(t, g8.Connected(a, b))
}

// TestConnectedComponents_Hex uses the parity rule: (0,1)-(1,0) touch in
// hex offset columns, (0,0)-(1,1) do not.
func TestConnectedComponents_Hex(t *testing.T) {
	gg, err := gridgraph.From2D([][]int{
		{1, 0},
		{0, 1},
	}, gridgraph.ConnHex)
	require.NoError(t, err)
	assert.True(t, gg.Connected(gridgraph.Cell{X: 1, Y: 0}, gridgraph.Cell{X: 0, Y: 1}))

	gg, err = gridgraph.From2D([][]int{
		{0, 1},
		{1, 0},
	}, gridgraph.ConnHex)
	require.NoError(t, err)
	assert.False(t, gg.Connected(gridgraph.Cell{X: 0, Y: 0}, gridgraph.Cell{X: 1, Y: 1}))
}

func TestConnected_BlockedEndpoint(t *testing.T) {
	gg, err := gridgraph.From2D([][]int{{0, 1}}, gridgraph.Conn4)
	require.NoError(t, err)
	assert.False(t, gg.Connected(gridgraph.Cell{X: 0, Y: 0}, gridgraph.Cell{X: 1, Y: 0}))
	assert.True(t, gg.Connected(gridgraph.Cell{X: 0, Y: 0}, gridgraph.Cell{X: 0, Y: 0}))
}
