package surface

import (
	"fmt"
	"iter"
	"slices"
)

// Grid is a dense, resizable 2D array stored row-major in a flat slice.
// It is the structural backbone of a [Mesh]: patches live in grid cells,
// and adjacency between cells is what drives control point sharing and
// continuity relinking. Rows and columns can be inserted and deleted
// anywhere; indices of the remaining cells renumber accordingly.
type Grid[T any] struct {
	rows, cols int
	cells      []T
}

// NewGrid returns a rows×cols grid of zero values. It panics if either
// dimension is negative.
func NewGrid[T any](rows, cols int) *Grid[T] {
	if rows < 0 || cols < 0 {
		panic(fmt.Sprintf("invalid grid size %d×%d", rows, cols))
	}
	return &Grid[T]{
		rows:  rows,
		cols:  cols,
		cells: make([]T, rows*cols),
	}
}

func (g *Grid[T]) Rows() int { return g.rows }
func (g *Grid[T]) Cols() int { return g.cols }

func (g *Grid[T]) index(row, col int) int {
	if !g.InBounds(row, col) {
		panic(fmt.Sprintf("grid index (%d, %d) out of range for %d×%d grid", row, col, g.rows, g.cols))
	}
	return row*g.cols + col
}

// InBounds reports whether (row, col) addresses a cell of the grid.
func (g *Grid[T]) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// At returns the cell at (row, col). It panics if the index is out of
// range; use [Grid.Lookup] for a bounds-checked variant.
func (g *Grid[T]) At(row, col int) T {
	return g.cells[g.index(row, col)]
}

// Set replaces the cell at (row, col).
func (g *Grid[T]) Set(row, col int, v T) {
	g.cells[g.index(row, col)] = v
}

// Lookup returns the cell at (row, col) and whether the index was in
// range. Out-of-range lookups return the zero value; neighbor scans use
// this to treat cells beyond the grid's edge as absent.
func (g *Grid[T]) Lookup(row, col int) (T, bool) {
	if !g.InBounds(row, col) {
		var zero T
		return zero, false
	}
	return g.cells[row*g.cols+col], true
}

// Left returns the cell left of (row, col), if any.
func (g *Grid[T]) Left(row, col int) (T, bool) {
	return g.Lookup(row, col-1)
}

// Right returns the cell right of (row, col), if any.
func (g *Grid[T]) Right(row, col int) (T, bool) {
	return g.Lookup(row, col+1)
}

// Below returns the cell below (row, col), if any. "Below" is the
// direction of decreasing row index.
func (g *Grid[T]) Below(row, col int) (T, bool) {
	return g.Lookup(row-1, col)
}

// Above returns the cell above (row, col), if any.
func (g *Grid[T]) Above(row, col int) (T, bool) {
	return g.Lookup(row+1, col)
}

// InsertRow inserts a row of zero values before row index i. Passing
// i == Rows() appends a row at the end.
func (g *Grid[T]) InsertRow(i int) {
	if i < 0 || i > g.rows {
		panic(fmt.Sprintf("row index %d out of range for %d×%d grid", i, g.rows, g.cols))
	}
	g.cells = slices.Insert(g.cells, i*g.cols, make([]T, g.cols)...)
	g.rows++
}

// DeleteRow deletes row i.
func (g *Grid[T]) DeleteRow(i int) {
	if i < 0 || i >= g.rows {
		panic(fmt.Sprintf("row index %d out of range for %d×%d grid", i, g.rows, g.cols))
	}
	g.cells = slices.Delete(g.cells, i*g.cols, (i+1)*g.cols)
	g.rows--
}

// InsertCol inserts a column of zero values before column index i.
// Passing i == Cols() appends a column at the end.
func (g *Grid[T]) InsertCol(i int) {
	if i < 0 || i > g.cols {
		panic(fmt.Sprintf("column index %d out of range for %d×%d grid", i, g.rows, g.cols))
	}
	var zero T
	// Insert back to front so earlier insertion offsets stay valid.
	for row := g.rows - 1; row >= 0; row-- {
		g.cells = slices.Insert(g.cells, row*g.cols+i, zero)
	}
	g.cols++
}

// DeleteCol deletes column i.
func (g *Grid[T]) DeleteCol(i int) {
	if i < 0 || i >= g.cols {
		panic(fmt.Sprintf("column index %d out of range for %d×%d grid", i, g.rows, g.cols))
	}
	for row := g.rows - 1; row >= 0; row-- {
		idx := row*g.cols + i
		g.cells = slices.Delete(g.cells, idx, idx+1)
	}
	g.cols--
}

// Row returns an iterator over the cells of row i, keyed by column.
func (g *Grid[T]) Row(i int) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for col := range g.cols {
			if !yield(col, g.At(i, col)) {
				return
			}
		}
	}
}

// Col returns an iterator over the cells of column i, keyed by row.
func (g *Grid[T]) Col(i int) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for row := range g.rows {
			if !yield(row, g.At(row, i)) {
				return
			}
		}
	}
}

// Cells returns an iterator over all cells in row-major order.
func (g *Grid[T]) Cells() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, c := range g.cells {
			if !yield(c) {
				return
			}
		}
	}
}
