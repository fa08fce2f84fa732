package views

// Rect is a screen region in cells
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) falls inside the rectangle
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

const (
	// GridTop is the first row of the grid below the search and status lines
	GridTop    = 3
	TileHeight = 4
	TileGap    = 1
	minTileW   = 12
)

// GridLayout computes where tiles land so rendering and mouse hit testing agree
type GridLayout struct {
	Width   int
	Columns int
	Rows    int
}

func NewGridLayout(width, columns, perPage int) GridLayout {
	if columns < 1 {
		columns = 1
	}
	// Narrow terminals drop columns before tiles get unreadable
	for columns > 1 && (width-(columns-1)*TileGap)/columns < minTileW {
		columns--
	}
	rows := (perPage + columns - 1) / columns
	return GridLayout{Width: width, Columns: columns, Rows: rows}
}

func (g GridLayout) TileWidth() int {
	w := (g.Width - (g.Columns-1)*TileGap) / g.Columns
	if w < minTileW {
		return minTileW
	}
	return w
}

// TileRect returns the area of the tile at a slot on the current page
func (g GridLayout) TileRect(slot int) Rect {
	w := g.TileWidth()
	row, col := slot/g.Columns, slot%g.Columns
	return Rect{
		X: col * (w + TileGap),
		Y: GridTop + row*TileHeight,
		W: w,
		H: TileHeight,
	}
}

// SlotAt returns the tile slot under a cell, or -1
func (g GridLayout) SlotAt(x, y int) int {
	if y < GridTop || y >= GridTop+g.Rows*TileHeight || x < 0 {
		return -1
	}
	w := g.TileWidth()
	col := x / (w + TileGap)
	if col >= g.Columns || x%(w+TileGap) >= w {
		return -1
	}
	return (y-GridTop)/TileHeight*g.Columns + col
}

// NavRow is the row holding the page navigation line
func (g GridLayout) NavRow() int {
	return GridTop + g.Rows*TileHeight + 1
}

// ModalLayout is the fixed box of the lightbox centred on screen
type ModalLayout struct {
	Box Rect
}

const (
	maxModalW = 80
	maxModalH = 28
	// header, blank, blank before footer, footer
	modalChromeRows = 4
)

func NewModalLayout(width, height int) ModalLayout {
	w := min(width-4, maxModalW)
	h := min(height-2, maxModalH)
	w = max(w, 24)
	h = max(h, modalChromeRows+3)
	return ModalLayout{Box: Center(w, h, width, height)}
}

// Center places a w by h box in the middle of the screen
func Center(w, h, width, height int) Rect {
	return Rect{X: max((width-w)/2, 0), Y: max((height-h)/2, 0), W: w, H: h}
}

// InnerWidth is the content width inside border and padding
func (m ModalLayout) InnerWidth() int {
	return m.Box.W - 4
}

// BodyHeight is the number of body rows between header and footer
func (m ModalLayout) BodyHeight() int {
	return m.Box.H - 2 - modalChromeRows
}

// CloseRect is the hit area of the close button in the header
func (m ModalLayout) CloseRect() Rect {
	return Rect{X: m.Box.X + m.Box.W - 5, Y: m.Box.Y + 1, W: 4, H: 1}
}

func (m ModalLayout) footerRow() int {
	return m.Box.Y + m.Box.H - 2
}

func (m ModalLayout) PrevRect() Rect {
	return Rect{X: m.Box.X + 2, Y: m.footerRow(), W: navLabelWidth, H: 1}
}

func (m ModalLayout) NextRect() Rect {
	return Rect{X: m.Box.X + m.Box.W - 2 - navLabelWidth, Y: m.footerRow(), W: navLabelWidth, H: 1}
}
