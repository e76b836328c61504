package ui

import "fmt"

// Grid lays out children in a fixed rows by cols arrangement. Track sizes
// come from single-span cells only: a spanning cell is given the union of
// its tracks plus the spacing between them but never grows them. Column
// widths and row heights are computed by the preferred-size queries and
// consumed by the following Draw, the order parents always use.
type Grid struct {
	base

	rows, cols int

	cells []*gridCell

	rowSpacing []int
	colSpacing []int

	rowHeights []int
	colWidths  []int
}

type gridCell struct {
	element Element

	rowspan, colspan int

	halign, valign Alignment
}

// NewGrid creates an empty rows by cols grid. Both dimensions must be at
// least 1.
func NewGrid(rows, cols int) *Grid {
	if rows < 1 || cols < 1 {
		panic(fmt.Sprintf("ui: grid size %dx%d is invalid", rows, cols))
	}
	return &Grid{
		rows:       rows,
		cols:       cols,
		cells:      make([]*gridCell, rows*cols),
		rowSpacing: make([]int, rows-1),
		colSpacing: make([]int, cols-1),
		rowHeights: make([]int, rows),
		colWidths:  make([]int, cols),
	}
}

// Rows returns the fixed row count.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the fixed column count.
func (g *Grid) Cols() int { return g.cols }

// Attach places an element into the cell at row, col spanning the given
// track counts. Out-of-range placement is a caller bug and panics.
func (g *Grid) Attach(el Element, row, col, rowspan, colspan int, halign, valign Alignment) {
	if row < 0 || col < 0 || rowspan < 1 || colspan < 1 ||
		row+rowspan > g.rows || col+colspan > g.cols {
		panic(fmt.Sprintf("ui: grid cell %d,%d span %dx%d is out of range for a %dx%d grid",
			row, col, rowspan, colspan, g.rows, g.cols))
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.cells[row*g.cols+col] = &gridCell{
		element: el,
		rowspan: rowspan,
		colspan: colspan,
		halign:  halign,
		valign:  valign,
	}
}

// Detach empties the cell at row, col.
func (g *Grid) Detach(row, col int) {
	if row < 0 || col < 0 || row >= g.rows || col >= g.cols {
		panic(fmt.Sprintf("ui: grid cell %d,%d is out of range for a %dx%d grid",
			row, col, g.rows, g.cols))
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.cells[row*g.cols+col] = nil
}

// SetRowSpacing sets every inter-row gap.
func (g *Grid) SetRowSpacing(spacing int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for i := range g.rowSpacing {
		g.rowSpacing[i] = spacing
	}
}

// SetColSpacing sets every inter-column gap.
func (g *Grid) SetColSpacing(spacing int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for i := range g.colSpacing {
		g.colSpacing[i] = spacing
	}
}

// SetRowSpacingAt sets the gap below row gap (0 is between rows 0 and 1).
func (g *Grid) SetRowSpacingAt(gap, spacing int) {
	if gap < 0 || gap >= g.rows-1 {
		panic(fmt.Sprintf("ui: row gap %d is out of range for a %d-row grid", gap, g.rows))
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.rowSpacing[gap] = spacing
}

// SetColSpacingAt sets the gap right of column gap.
func (g *Grid) SetColSpacingAt(gap, spacing int) {
	if gap < 0 || gap >= g.cols-1 {
		panic(fmt.Sprintf("ui: column gap %d is out of range for a %d-column grid", gap, g.cols))
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.colSpacing[gap] = spacing
}

// Grids have no background.
func (g *Grid) BackgroundColor() Color {
	panic("ui: grid has no background color")
}

func (g *Grid) SetBackgroundColor(color Color) {
	panic("ui: grid has no background color")
}

type gridLayout struct {
	x, y       int
	rows, cols int
	cells      []*gridCell
	rowSpacing []int
	colSpacing []int
	rowHeights []int
	colWidths  []int
}

func (g *Grid) snapshot() gridLayout {
	g.mu.Lock()
	defer g.mu.Unlock()
	l := gridLayout{
		x: g.x, y: g.y,
		rows: g.rows, cols: g.cols,
		cells:      make([]*gridCell, len(g.cells)),
		rowSpacing: make([]int, len(g.rowSpacing)),
		colSpacing: make([]int, len(g.colSpacing)),
		rowHeights: make([]int, len(g.rowHeights)),
		colWidths:  make([]int, len(g.colWidths)),
	}
	copy(l.cells, g.cells)
	copy(l.rowSpacing, g.rowSpacing)
	copy(l.colSpacing, g.colSpacing)
	copy(l.rowHeights, g.rowHeights)
	copy(l.colWidths, g.colWidths)
	return l
}

func (l *gridLayout) cell(row, col int) *gridCell {
	return l.cells[row*l.cols+col]
}

// PreferredWidth recomputes the column widths from single-span cells and
// returns their total including spacing.
func (g *Grid) PreferredWidth() int {
	l := g.snapshot()

	widths := make([]int, l.cols)
	for r := 0; r < l.rows; r++ {
		for c := 0; c < l.cols; c++ {
			cell := l.cell(r, c)
			if cell == nil || cell.colspan != 1 {
				continue
			}
			if cw := cell.element.PreferredWidth(); cw > widths[c] {
				widths[c] = cw
			}
		}
	}

	g.mu.Lock()
	copy(g.colWidths, widths)
	g.mu.Unlock()

	w := 0
	for c := 0; c < l.cols; c++ {
		w += widths[c]
		if c < l.cols-1 {
			w += l.colSpacing[c]
		}
	}
	return w
}

// PreferredHeight recomputes the row heights from single-span cells and
// returns their total including spacing.
func (g *Grid) PreferredHeight() int {
	l := g.snapshot()

	heights := make([]int, l.rows)
	for r := 0; r < l.rows; r++ {
		for c := 0; c < l.cols; c++ {
			cell := l.cell(r, c)
			if cell == nil || cell.rowspan != 1 {
				continue
			}
			if ch := cell.element.PreferredHeight(); ch > heights[r] {
				heights[r] = ch
			}
		}
	}

	g.mu.Lock()
	copy(g.rowHeights, heights)
	g.mu.Unlock()

	h := 0
	for r := 0; r < l.rows; r++ {
		h += heights[r]
		if r < l.rows-1 {
			h += l.rowSpacing[r]
		}
	}
	return h
}

// spanWidth is the full region a cell at col spanning colspan columns may
// occupy: the spanned tracks plus the gaps between them.
func (l *gridLayout) spanWidth(col, colspan int) int {
	total := 0
	for cs := 0; cs < colspan; cs++ {
		total += l.colWidths[col+cs]
		if cs > 0 && col+cs-1 < l.cols-1 {
			total += l.colSpacing[col+cs-1]
		}
	}
	return total
}

func (l *gridLayout) spanHeight(row, rowspan int) int {
	total := 0
	for rs := 0; rs < rowspan; rs++ {
		total += l.rowHeights[row+rs]
		if rs > 0 && row+rs-1 < l.rows-1 {
			total += l.rowSpacing[row+rs-1]
		}
	}
	return total
}

func (g *Grid) Draw(offsetX, offsetY int, frame Frame) {
	l := g.snapshot()

	cy := offsetY + l.y

	for r := 0; r < l.rows; r++ {
		cx := offsetX + l.x

		for c := 0; c < l.cols; c++ {
			cell := l.cell(r, c)
			if cell != nil {
				itemWidth := cell.element.PreferredWidth()
				itemHeight := cell.element.PreferredHeight()

				extraX := 0
				extraY := 0

				switch cell.halign {
				case AlignMiddle:
					total := l.spanWidth(c, cell.colspan)
					extraX += int(float64(total)/2.0 - float64(itemWidth)/2.0)
				case AlignEnd:
					extraX += l.spanWidth(c, cell.colspan) - itemWidth
				case AlignFill:
					itemWidth = l.spanWidth(c, cell.colspan)
				}

				switch cell.valign {
				case AlignMiddle:
					total := l.spanHeight(r, cell.rowspan)
					extraY += int(float64(total)/2.0 - float64(itemHeight)/2.0)
				case AlignEnd:
					extraY += l.spanHeight(r, cell.rowspan) - itemHeight
				case AlignFill:
					itemHeight = l.spanHeight(r, cell.rowspan)
				}

				if itemWidth > 0 {
					cell.element.SetWidth(itemWidth)
				}
				if itemHeight > 0 {
					cell.element.SetHeight(itemHeight)
				}

				cell.element.Draw(cx+extraX, cy+extraY, frame)
			}

			cx += l.colWidths[c]
			if c < l.cols-1 {
				cx += l.colSpacing[c]
			}
		}

		cy += l.rowHeights[r]
		if r < l.rows-1 {
			cy += l.rowSpacing[r]
		}
	}
}
