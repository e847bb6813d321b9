package block

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rybkr/blockslide/internal/geom"
)

func TestNewRejectsBadInput(t *testing.T) {
	_, err := New(0, 1, 1, 0, 0)
	assert.ErrorIs(t, err, ErrInvalidBlock)

	_, err = New(1, 0, 1, 0, 0)
	assert.ErrorIs(t, err, ErrInvalidBlock)

	_, err = New(1, 1, 1, -1, 0)
	assert.ErrorIs(t, err, ErrOutOfBounds)

	_, err = New(1, 1<<32, 1<<32, 0, 0)
	assert.ErrorIs(t, err, ErrInvalidBlock)
}

func TestCellsAndBottomRight(t *testing.T) {
	b := MustNew(1, 2, 3, 1, 1)
	assert.Equal(t, geom.C(3, 4), b.BottomRight())
	assert.Equal(t, 6, b.Area())
	assert.Equal(t, []geom.Coord{
		geom.C(1, 1), geom.C(1, 2), geom.C(1, 3),
		geom.C(2, 1), geom.C(2, 2), geom.C(2, 3),
	}, b.Cells())
}

func TestPlace(t *testing.T) {
	g := NewGrid(3, 3)
	require.NoError(t, MustNew(1, 2, 2, 0, 0).Place(g))
	assert.Equal(t, 5, g.EmptyCount())
	assert.Equal(t, 1, g.At(geom.C(1, 1)))

	err := MustNew(2, 1, 2, 1, 1).Place(g)
	assert.ErrorIs(t, err, ErrOverlap)
	assert.Equal(t, Empty, g.At(geom.C(1, 2)), "failed placement must not write")

	err = MustNew(3, 1, 2, 2, 2).Place(g)
	assert.ErrorIs(t, err, ErrOutOfBounds)
	assert.Equal(t, Empty, g.At(geom.C(2, 2)))
}

func TestMove(t *testing.T) {
	g := NewGrid(3, 3)
	b := MustNew(1, 2, 1, 0, 0)
	require.NoError(t, b.Place(g))

	assert.False(t, b.Move(geom.Up, g), "off the top edge")
	assert.False(t, b.Move(geom.Left, g), "off the left edge")

	require.True(t, b.Move(geom.Right, g))
	assert.Equal(t, geom.C(0, 1), b.UpperLeft())
	assert.Equal(t, Empty, g.At(geom.C(0, 0)))
	assert.Equal(t, Empty, g.At(geom.C(1, 0)))
	assert.Equal(t, 1, g.At(geom.C(0, 1)))
	assert.Equal(t, 1, g.At(geom.C(1, 1)))

	require.True(t, b.Move(geom.Down, g))
	assert.Equal(t, geom.C(1, 1), b.UpperLeft())
	assert.Equal(t, Empty, g.At(geom.C(0, 1)))
	assert.Equal(t, 1, g.At(geom.C(2, 1)))
	assert.False(t, b.Move(geom.Down, g))
}

func TestMoveBlockedByOther(t *testing.T) {
	g := NewGrid(1, 3)
	a := MustNew(1, 1, 1, 0, 0)
	other := MustNew(2, 1, 1, 0, 1)
	require.NoError(t, a.Place(g))
	require.NoError(t, other.Place(g))

	assert.False(t, a.Move(geom.Right, g))
	assert.Equal(t, geom.C(0, 0), a.UpperLeft())
	assert.Equal(t, 2, g.At(geom.C(0, 1)))
}

func TestCloneIsIndependent(t *testing.T) {
	g := NewGrid(2, 2)
	b := MustNew(4, 1, 1, 0, 0)
	require.NoError(t, b.Place(g))

	clone := b.Clone()
	require.True(t, clone.Equal(b))
	require.True(t, clone.Move(geom.Down, g))
	assert.Equal(t, geom.C(0, 0), b.UpperLeft())
	assert.False(t, clone.Equal(b))
}

func TestEqualAndHash(t *testing.T) {
	a := MustNew(1, 1, 2, 0, 0)
	b := MustNew(1, 1, 2, 0, 0)
	c := MustNew(2, 1, 2, 0, 0)
	d := MustNew(1, 1, 2, 1, 0)

	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Hash(), b.Hash())
	assert.False(t, a.Equal(c))
	assert.NotEqual(t, a.Hash(), c.Hash())
	assert.False(t, a.Equal(d))
	assert.NotEqual(t, a.Hash(), d.Hash())
	assert.NotZero(t, a.Hash())
}

func TestGridCloneAndEqual(t *testing.T) {
	g := NewGrid(2, 2)
	require.NoError(t, MustNew(1, 1, 1, 1, 1).Place(g))
	clone := g.Clone()
	assert.True(t, g.Equal(clone))

	require.NoError(t, MustNew(2, 1, 1, 0, 0).Place(clone))
	assert.False(t, g.Equal(clone))
	assert.Equal(t, []geom.Coord{geom.C(0, 0), geom.C(0, 1), geom.C(1, 0)}, g.EmptyCells())
}
