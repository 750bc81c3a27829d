package heightmap

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// New builds a Map from elevations indexed [y][x], deep-copying the input.
// Returns ErrEmptyGrid, ErrNonRectangular, ErrBadCell for elevations outside
// 0..MaxElevation, or ErrNoStart/ErrNoEnd when a marker is out of bounds.
func New(elevations [][]int, start, end Point) (*Map, error) {
	if len(elevations) == 0 || len(elevations[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(elevations), len(elevations[0])
	cells := make([][]int, h)
	for y, row := range elevations {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
		for x, e := range row {
			if e < 0 || e > MaxElevation {
				return nil, fmt.Errorf("%w: elevation %d at %v", ErrBadCell, e, Point{x, y})
			}
		}
		cells[y] = make([]int, w)
		copy(cells[y], row)
	}

	m := &Map{Width: w, Height: h, Start: start, End: end, cells: cells}
	if !m.InBounds(start) {
		return nil, fmt.Errorf("%w: %v outside %dx%d", ErrNoStart, start, w, h)
	}
	if !m.InBounds(end) {
		return nil, fmt.Errorf("%w: %v outside %dx%d", ErrNoEnd, end, w, h)
	}

	return m, nil
}

// Parse reads the letter form, one row per line. Blank lines are skipped.
func Parse(r io.Reader) (*Map, error) {
	var (
		rows       [][]int
		start, end []Point
	)
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		y := len(rows)
		row := make([]int, len(text))
		for x, c := range text {
			switch {
			case c == 'S':
				start = append(start, Point{x, y})
				row[x] = 0
			case c == 'E':
				end = append(end, Point{x, y})
				row[x] = MaxElevation
			case c >= 'a' && c <= 'z':
				row[x] = int(c - 'a')
			default:
				return nil, fmt.Errorf("%w: line %d: %q", ErrBadCell, line, c)
			}
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("heightmap: read: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyGrid
	}
	if len(start) != 1 {
		return nil, fmt.Errorf("%w: found %d markers", ErrNoStart, len(start))
	}
	if len(end) != 1 {
		return nil, fmt.Errorf("%w: found %d markers", ErrNoEnd, len(end))
	}

	return New(rows, start[0], end[0])
}

// InBounds reports whether p lies within the grid.
func (m *Map) InBounds(p Point) bool {
	return p.X >= 0 && p.X < m.Width && p.Y >= 0 && p.Y < m.Height
}

// Elevation returns the elevation at p, which must be in bounds.
func (m *Map) Elevation(p Point) int { return m.cells[p.Y][p.X] }

// Climbable returns the in-bounds neighbours of p that are at most one unit
// higher, in N, E, S, W order.
func (m *Map) Climbable(p Point) []Point {
	limit := m.Elevation(p) + 1
	out := make([]Point, 0, len(offsets))
	for _, d := range offsets {
		q := Point{p.X + d[0], p.Y + d[1]}
		if m.InBounds(q) && m.Elevation(q) <= limit {
			out = append(out, q)
		}
	}

	return out
}

// Lowest returns every cell at elevation 0 in row-major order.
func (m *Map) Lowest() []Point {
	var out []Point
	for y, row := range m.cells {
		for x, e := range row {
			if e == 0 {
				out = append(out, Point{x, y})
			}
		}
	}

	return out
}
