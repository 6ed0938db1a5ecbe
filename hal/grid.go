// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hal

// Cell is one character position on the Grid.
type Cell struct {
	Ch    byte
	Color Color
}

var blank = Cell{Ch: ' ', Color: LightGray}

// Grid is an in-memory Display.
//
// Grid is not safe for concurrent use. Renderers read it from the
// goroutine that steps the programs writing to it.
type Grid struct {
	cells [Height * Width]Cell
	gen   uint64
}

// NewGrid returns a cleared Grid.
func NewGrid() *Grid {
	g := &Grid{}
	g.Clear()
	return g
}

// Clear fills the grid with light gray blanks.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = blank
	}
	g.gen++
}

// WriteText writes text starting at (row, col), one byte per cell.
// Bytes falling past the right edge are dropped.
func (g *Grid) WriteText(row, col int, text string, color Color) {
	if row < 0 || row >= Height {
		return
	}
	for i := 0; i < len(text); i++ {
		c := col + i
		if c < 0 {
			continue
		}
		if c >= Width {
			break
		}
		g.cells[row*Width+c] = Cell{Ch: text[i], Color: color}
	}
	g.gen++
}

// WriteChar writes one cell.
func (g *Grid) WriteChar(row, col int, ch byte, color Color) {
	if row < 0 || row >= Height || col < 0 || col >= Width {
		return
	}
	g.cells[row*Width+col] = Cell{Ch: ch, Color: color}
	g.gen++
}

// Cell returns the cell at (row, col), or a blank cell out of bounds.
func (g *Grid) Cell(row, col int) Cell {
	if row < 0 || row >= Height || col < 0 || col >= Width {
		return blank
	}
	return g.cells[row*Width+col]
}

// Row returns a view of one row. The slice aliases the grid.
func (g *Grid) Row(row int) []Cell {
	if row < 0 || row >= Height {
		return nil
	}
	return g.cells[row*Width : (row+1)*Width]
}

// Text returns the characters of one row as a string.
func (g *Grid) Text(row int) string {
	r := g.Row(row)
	b := make([]byte, len(r))
	for i, c := range r {
		b[i] = c.Ch
	}
	return string(b)
}

// Generation increases on every write. Renderers compare it to skip
// unchanged frames.
func (g *Grid) Generation() uint64 {
	return g.gen
}
