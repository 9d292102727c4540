package connectory

import "sort"

// Breakpoint assigns Columns to viewports at least MinWidth wide.
type Breakpoint struct {
	MinWidth int
	Columns  int
}

// DefaultBreakpoints: three columns from 1100, two from 700, else one.
var DefaultBreakpoints = []Breakpoint{
	{MinWidth: 1100, Columns: 3},
	{MinWidth: 700, Columns: 2},
	{MinWidth: 0, Columns: 1},
}

// ColumnsFor returns the column count for width using DefaultBreakpoints.
func ColumnsFor(width int) int {
	return columnsFor(DefaultBreakpoints, width)
}

func columnsFor(bps []Breakpoint, width int) int {
	for _, bp := range bps {
		if width >= bp.MinWidth {
			return max(bp.Columns, 1)
		}
	}
	return 1
}

// Distribute deals items round-robin into n columns: item i lands in
// column i mod n, and each column keeps the input order.
func Distribute[T any](items []T, n int) [][]T {
	if n < 1 {
		n = 1
	}
	cols := make([][]T, n)
	for i, item := range items {
		cols[i%n] = append(cols[i%n], item)
	}
	return cols
}

// Masonry tracks the current column count for a viewport.
type Masonry struct {
	breakpoints []Breakpoint
	columns     int
}

// NewMasonry creates a layout for the given viewport width. Nil
// breakpoints select DefaultBreakpoints.
func NewMasonry(width int, breakpoints []Breakpoint) *Masonry {
	if len(breakpoints) == 0 {
		breakpoints = DefaultBreakpoints
	}
	bps := append([]Breakpoint(nil), breakpoints...)
	sort.Slice(bps, func(i, j int) bool { return bps[i].MinWidth > bps[j].MinWidth })
	return &Masonry{breakpoints: bps, columns: columnsFor(bps, width)}
}

func (m *Masonry) Columns() int { return m.columns }

// Resize applies a new width and reports whether the column count changed,
// in which case the grid must be laid out again.
func (m *Masonry) Resize(width int) bool {
	n := columnsFor(m.breakpoints, width)
	if n == m.columns {
		return false
	}
	m.columns = n
	return true
}

// Layout distributes items over the current columns.
func (m *Masonry) Layout(items []Artist) [][]Artist {
	return Distribute(items, m.columns)
}
