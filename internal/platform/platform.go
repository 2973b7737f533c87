package platform

// DefaultCellWidth is the assumed width of one terminal cell in pixels when
// the terminal does not report its pixel size.
const DefaultCellWidth = 8

// Viewport is a terminal's size in cells and, when reported, pixels.
type Viewport struct {
	Cols        int
	Rows        int
	PixelWidth  int
	PixelHeight int
}

// Width returns the viewport width in pixels. Terminals that do not report
// pixel sizes are estimated as Cols × cellWidth.
func (v Viewport) Width(cellWidth int) int {
	if v.PixelWidth > 0 {
		return v.PixelWidth
	}
	return ColumnsToPixels(v.Cols, cellWidth)
}

// ColumnsToPixels estimates a pixel width from a column count.
func ColumnsToPixels(cols, cellWidth int) int {
	if cellWidth <= 0 {
		cellWidth = DefaultCellWidth
	}
	return cols * cellWidth
}

// ViewportWidth measures fd and returns its width in pixels.
func ViewportWidth(fd uintptr, cellWidth int) (int, error) {
	v, err := Measure(fd)
	if err != nil {
		return 0, err
	}
	return v.Width(cellWidth), nil
}
