package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestManhattan(t *testing.T) {
	tests := []struct {
		a, b Coord
		want int
	}{
		{C(0, 0), C(0, 0), 0},
		{C(0, 0), C(1, 0), 1},
		{C(3, 1), C(0, 4), 6},
		{C(2, 2), C(-1, -1), 6},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.a.Manhattan(tt.b), "%v -> %v", tt.a, tt.b)
		assert.Equal(t, tt.want, tt.b.Manhattan(tt.a), "%v -> %v", tt.b, tt.a)
	}
}

func TestStep(t *testing.T) {
	origin := C(2, 2)
	assert.Equal(t, C(1, 2), origin.Step(Up))
	assert.Equal(t, C(2, 3), origin.Step(Right))
	assert.Equal(t, C(3, 2), origin.Step(Down))
	assert.Equal(t, C(2, 1), origin.Step(Left))
	assert.Equal(t, origin, origin.Step(Direction(0)))
}

func TestIn(t *testing.T) {
	assert.True(t, C(0, 0).In(1, 1))
	assert.True(t, C(3, 2).In(4, 3))
	assert.False(t, C(4, 0).In(4, 3))
	assert.False(t, C(0, 3).In(4, 3))
	assert.False(t, C(-1, 0).In(4, 3))
	assert.False(t, C(0, -1).Valid())
}

func TestDirectionString(t *testing.T) {
	assert.Equal(t, "up", Up.String())
	assert.Equal(t, "left", Left.String())
	assert.Equal(t, "direction(9)", Direction(9).String())
}
