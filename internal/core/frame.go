// Package core provides fundamental types for the renderer platform: the
// frame grid glyphs are written into, the synthetic animation clock, and
// interactive actions. It has no external dependencies.
package core

import "strings"

// LineTerminator ends every row of a frame.
const LineTerminator = '\n'

// Frame is a fixed-size grid of glyph bytes laid out row-major with one
// terminator column per row. The terminator column is written once at
// construction and is unreachable through Set.
type Frame struct {
	width  int
	height int
	buf    []byte   // (width+1) * height bytes
	rows   [][]byte // row views into buf, width bytes each
}

// NewFrame creates a frame of the given size, cleared to spaces.
func NewFrame(width, height int) *Frame {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}

	f := &Frame{
		width:  width,
		height: height,
		buf:    make([]byte, (width+1)*height),
		rows:   make([][]byte, height),
	}
	stride := width + 1
	for y := range f.rows {
		f.rows[y] = f.buf[y*stride : y*stride+width : y*stride+width]
		f.buf[y*stride+width] = LineTerminator
	}
	f.Clear()
	return f
}

// Width returns the number of glyph columns (terminator excluded).
func (f *Frame) Width() int {
	return f.width
}

// Height returns the number of rows.
func (f *Frame) Height() int {
	return f.height
}

// Clear fills every glyph cell with spaces.
func (f *Frame) Clear() {
	f.Fill(' ')
}

// Fill fills every glyph cell with b.
func (f *Frame) Fill(b byte) {
	for _, row := range f.rows {
		for x := range row {
			row[x] = b
		}
	}
}

// Set places a glyph at (x, y).
// Out-of-bounds coordinates, including the terminator column, are ignored.
func (f *Frame) Set(x, y int, b byte) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return
	}
	f.rows[y][x] = b
}

// Get returns the glyph at (x, y), or a space when out of bounds.
func (f *Frame) Get(x, y int) byte {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return ' '
	}
	return f.rows[y][x]
}

// Row returns a copy of row y without its terminator.
func (f *Frame) Row(y int) string {
	if y < 0 || y >= f.height {
		return strings.Repeat(" ", f.width)
	}
	return string(f.rows[y])
}

// Bytes returns the full buffer including terminators. The slice aliases
// the frame and is only valid until the next write.
func (f *Frame) Bytes() []byte {
	return f.buf
}

// String returns a copy of the full buffer including terminators.
func (f *Frame) String() string {
	return string(f.buf)
}

// Lines returns the rows joined by newlines with no trailing terminator,
// the shape a Bubble Tea view expects.
func (f *Frame) Lines() string {
	return strings.TrimSuffix(f.String(), string(LineTerminator))
}
