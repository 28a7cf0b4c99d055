package sitrep

// Fixed UEC Daily SitRep sheet layout, 0-indexed. NHS England publishes these
// workbooks with twelve rows of titling and notes above the header block.
const (
	DateHeaderRow   = 13 // one date per column, forward-filled across metric blocks
	MetricHeaderRow = 14 // metric name per column
	DataStartRow    = 15

	ColRegion    = 1
	ColTrustCode = 3
	ColTrustName = 4
	FirstDataCol = 5
)

// Grid is a rectangular block of cells read from one named sheet.
// Rows may be ragged; out-of-range reads resolve to empty cells.
type Grid struct {
	cells [][]Cell
}

// NewGrid wraps rows of cells into a Grid
func NewGrid(cells [][]Cell) Grid {
	return Grid{cells: cells}
}

// Rows returns the number of rows in the grid
func (g Grid) Rows() int {
	return len(g.cells)
}

// Cols returns the widest row's column count
func (g Grid) Cols() int {
	max := 0
	for _, row := range g.cells {
		if len(row) > max {
			max = len(row)
		}
	}
	return max
}

// At returns the cell at (row, col), or an empty cell when out of range
func (g Grid) At(row, col int) Cell {
	if row < 0 || row >= len(g.cells) {
		return NewEmptyCell()
	}
	if col < 0 || col >= len(g.cells[row]) {
		return NewEmptyCell()
	}
	return g.cells[row][col]
}
