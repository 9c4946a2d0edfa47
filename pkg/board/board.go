// Package board derives the spatial layout of a tiling on a 2×N grid.
//
// A [tiling.Tiling] only records the order in which column slots are
// filled. Renderers need to know which cells each domino covers: a
// [tiling.Vertical] is one tall tile spanning both rows of a column, a
// [tiling.HorizontalPair] becomes two wide tiles, one per row, spanning the
// same two columns.
//
//	l := board.New(tiling.Tiling{tiling.HorizontalPair, tiling.Vertical})
//	// l.Grid:
//	//   row 0: 1 1 3
//	//   row 1: 2 2 3
package board

import (
	"fmt"

	"github.com/matzehuels/dominoes/pkg/tiling"
)

// Rows is the fixed board height.
const Rows = 2

// Tile is a single domino positioned on the board.
type Tile struct {
	ID    int          `json:"id"`    // 1-based, left to right, top to bottom
	Token tiling.Token `json:"token"` // Placement the tile belongs to
	Col   int          `json:"col"`   // Leftmost column
	Row   int          `json:"row"`   // Top row
	Cols  int          `json:"cols"`  // Columns covered
	Rows  int          `json:"rows"`  // Rows covered
}

// Tall reports whether the tile stands upright.
func (t Tile) Tall() bool { return t.Rows == Rows }

// Layout is a tiling placed on the board.
type Layout struct {
	Width int    `json:"width"`
	Tiles []Tile `json:"tiles"`

	// Grid holds the tile ID covering each cell, indexed [row][col].
	// Zero means the cell is uncovered.
	Grid [Rows][]int `json:"grid"`
}

// New places t on a board exactly as wide as the tiling.
// Unknown tokens are skipped and leave no tiles behind.
func New(t tiling.Tiling) Layout {
	width := t.Width()
	l := Layout{
		Width: width,
		Tiles: make([]Tile, 0, t.Dominoes()),
	}
	for r := range l.Grid {
		l.Grid[r] = make([]int, width)
	}

	col := 0
	for _, tok := range t {
		switch tok {
		case tiling.Vertical:
			l.place(Tile{Token: tok, Col: col, Row: 0, Cols: 1, Rows: 2})
		case tiling.HorizontalPair:
			l.place(Tile{Token: tok, Col: col, Row: 0, Cols: 2, Rows: 1})
			l.place(Tile{Token: tok, Col: col, Row: 1, Cols: 2, Rows: 1})
		}
		col += tok.Width()
	}
	return l
}

func (l *Layout) place(t Tile) {
	t.ID = len(l.Tiles) + 1
	l.Tiles = append(l.Tiles, t)
	for r := t.Row; r < t.Row+t.Rows; r++ {
		for c := t.Col; c < t.Col+t.Cols; c++ {
			l.Grid[r][c] = t.ID
		}
	}
}

// Tile returns the tile covering the given cell.
func (l Layout) Tile(row, col int) (Tile, bool) {
	if row < 0 || row >= Rows || col < 0 || col >= l.Width {
		return Tile{}, false
	}
	id := l.Grid[row][col]
	if id == 0 {
		return Tile{}, false
	}
	return l.Tiles[id-1], true
}

// Validate checks that every cell is covered by exactly one tile and that
// every tile is a domino (covers two cells).
func (l Layout) Validate() error {
	covered := make(map[[2]int]int, Rows*l.Width)
	for _, t := range l.Tiles {
		if t.Cols*t.Rows != 2 {
			return fmt.Errorf("tile %d covers %d cells, want 2", t.ID, t.Cols*t.Rows)
		}
		for r := t.Row; r < t.Row+t.Rows; r++ {
			for c := t.Col; c < t.Col+t.Cols; c++ {
				if r >= Rows || c >= l.Width {
					return fmt.Errorf("tile %d leaves the board at (%d,%d)", t.ID, r, c)
				}
				if prev, ok := covered[[2]int{r, c}]; ok {
					return fmt.Errorf("cell (%d,%d) covered by tiles %d and %d", r, c, prev, t.ID)
				}
				covered[[2]int{r, c}] = t.ID
			}
		}
	}
	if want := Rows * l.Width; len(covered) != want {
		return fmt.Errorf("%d of %d cells covered", len(covered), want)
	}
	return nil
}
