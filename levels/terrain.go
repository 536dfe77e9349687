package levels

// Rect is a block of cells: W columns by H rows from (Col, Row).
type Rect struct {
	Col int
	Row int
	W   int
	H   int
}

// MergeCells covers the occupied cells of a width by height grid with
// non-overlapping rectangles. It scans row-major, grows each rectangle as
// wide as possible and then as tall as the full width allows.
func MergeCells(width, height int, occupied []bool) []Rect {
	if width <= 0 || height <= 0 || len(occupied) < width*height {
		return nil
	}

	var rects []Rect
	processed := make([]bool, width*height)
	free := func(x, y int) bool {
		idx := y*width + x
		return occupied[idx] && !processed[idx]
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if !free(x, y) {
				continue
			}

			w := 1
			for x+w < width && free(x+w, y) {
				w++
			}

			h := 1
		heightLoop:
			for y+h < height {
				for xi := x; xi < x+w; xi++ {
					if !free(xi, y+h) {
						break heightLoop
					}
				}
				h++
			}

			for yy := y; yy < y+h; yy++ {
				for xx := x; xx < x+w; xx++ {
					processed[yy*width+xx] = true
				}
			}
			rects = append(rects, Rect{Col: x, Row: y, W: w, H: h})
		}
	}
	return rects
}
