package puzzle

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rybkr/blockslide/internal/block"
	"github.com/rybkr/blockslide/internal/board"
)

const cornerYAML = `
name: corner
rows: 3
cols: 3
blocks:
  - {id: 1, height: 2, width: 2, row: 0, col: 0}
  - {id: 2, height: 1, width: 1, row: 2, col: 2}
goal:
  - {id: 1, height: 2, width: 2, row: 1, col: 1}
`

func TestParseAndBuild(t *testing.T) {
	f, err := Parse([]byte(cornerYAML))
	require.NoError(t, err)
	assert.Equal(t, "corner", f.Name)

	start, goal, err := f.Boards()
	require.NoError(t, err)

	wantStart, wantGoal, err := board.Preset("corner")
	require.NoError(t, err)
	assert.True(t, start.Equal(wantStart))
	assert.True(t, goal.Equal(wantGoal))
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not yaml", "rows: [1"},
		{"no size", "blocks: []\ngoal: [{id: 1, height: 1, width: 1, row: 0, col: 0}]"},
		{"no goal", "rows: 2\ncols: 2\nblocks: [{id: 1, height: 1, width: 1, row: 0, col: 0}]"},
		{"unknown goal id", "rows: 2\ncols: 2\nblocks: [{id: 1, height: 1, width: 1, row: 0, col: 0}]\ngoal: [{id: 2, height: 1, width: 1, row: 1, col: 1}]"},
		{"cell count overflows", "rows: 4611686018427387905\ncols: 4\nblocks: [{id: 1, height: 1, width: 1, row: 3, col: 0}]\ngoal: [{id: 1, height: 1, width: 1, row: 2, col: 0}]"},
		{"block larger than board", "rows: 4\ncols: 4\nblocks: [{id: 1, height: 4294967296, width: 4294967296, row: 0, col: 0}]\ngoal: [{id: 1, height: 4294967296, width: 4294967296, row: 0, col: 0}]"},
		{"goal size mismatch", "rows: 2\ncols: 2\nblocks: [{id: 1, height: 1, width: 1, row: 0, col: 0}]\ngoal: [{id: 1, height: 1, width: 2, row: 1, col: 0}]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			assert.ErrorIs(t, err, ErrInvalidFile)
		})
	}
}

func TestBoardsRejectsOverlap(t *testing.T) {
	f := &File{
		Rows: 2, Cols: 2,
		Blocks: []Block{{ID: 1, Height: 2, Width: 1}, {ID: 2, Height: 1, Width: 1, Row: 1}},
		Goal:   []Block{{ID: 1, Height: 2, Width: 1, Col: 1}},
	}
	require.NoError(t, f.Validate())

	_, _, err := f.Boards()
	assert.ErrorIs(t, err, ErrInvalidFile)
	assert.ErrorIs(t, err, block.ErrOverlap)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	start, goal, err := board.Preset("klotski")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "klotski.yaml")
	require.NoError(t, FromBoards("klotski", start, goal).Save(path))

	f, err := Load(path)
	require.NoError(t, err)
	gotStart, gotGoal, err := f.Boards()
	require.NoError(t, err)
	assert.True(t, gotStart.Equal(start))
	assert.True(t, gotGoal.Equal(goal))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
