package heightmap

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/horizon/astar"
)

// Sentinel errors for heightmap operations.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("heightmap: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("heightmap: all rows must have the same length")
	// ErrBadCell indicates an unknown cell character or an elevation out of range.
	ErrBadCell = errors.New("heightmap: invalid cell")
	// ErrNoStart indicates a missing, duplicated or out-of-bounds start marker.
	ErrNoStart = errors.New("heightmap: no unique start")
	// ErrNoEnd indicates a missing, duplicated or out-of-bounds end marker.
	ErrNoEnd = errors.New("heightmap: no unique end")
)

// MaxElevation is the elevation of 'z' and of the end marker.
const MaxElevation = 25

// Point is a cell coordinate; X grows to the right, Y downwards.
type Point struct {
	X, Y int
}

func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// Map is an immutable elevation grid.
type Map struct {
	Width, Height int
	Start, End    Point

	cells [][]int
}

// Route is the outcome of a climb.
type Route struct {
	From, To Point
	Steps    int64
	Path     []Point // set when run with astar.WithReturnPath
	Stats    astar.Stats
}

// offsets are the 4-connected neighbour deltas: N, E, S, W.
var offsets = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
