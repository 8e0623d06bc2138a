package walk

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvwalk/lattice"
)

// Glyphs used by Render.
const (
	glyphEmpty = '.'
	glyphPath  = '#'
	glyphStart = 'S'
	glyphEnd   = 'E'
)

// Render draws w over a width×height lattice, one text row per y, with
// 'S' at the start, 'E' at the dead end, '#' for the rest of the path and
// '.' for unvisited cells. A single-point walk shows only 'S'.
//
// Returns ErrInvalidDimensions or ErrOutOfBounds; it does not check
// adjacency (see Validate).
//
// Complexity: O(W×H + L).
func Render(w Walk, width, height int) (string, error) {
	lat, err := lattice.New(width, height)
	if err != nil {
		return "", fmt.Errorf("%s: %w", methodRender, err)
	}

	cells := make([]byte, lat.Size())
	for i := range cells {
		cells[i] = glyphEmpty
	}
	for i, p := range w {
		if !lat.Contains(p) {
			return "", fmt.Errorf("%s: w[%d]=%v: %w", methodRender, i, p, ErrOutOfBounds)
		}
		cells[lat.Index(p)] = glyphPath
	}
	if end, ok := w.End(); ok {
		cells[lat.Index(end)] = glyphEnd
	}
	if start, ok := w.Start(); ok {
		cells[lat.Index(start)] = glyphStart
	}

	var sb strings.Builder
	sb.Grow(lat.Size() + height)
	for y := 0; y < height; y++ {
		sb.Write(cells[y*width : (y+1)*width])
		sb.WriteByte('\n')
	}

	return sb.String(), nil
}
