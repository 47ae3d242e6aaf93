package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Frame is a depth-tested pixel buffer
// Two pixels stack in each terminal cell so pixels come out roughly square
type Frame struct {
	width, height int // pixels
	color         []colorful.Color
	depth         []float64
}

// NewFrame creates a frame covering cols x rows terminal cells
func NewFrame(cols, rows int) *Frame {
	f := &Frame{}
	f.Resize(cols, rows)
	return f
}

// Resize reallocates only when capacity is short
func (f *Frame) Resize(cols, rows int) {
	w, h := max(0, cols), max(0, rows)*2
	size := w * h
	if cap(f.color) < size {
		f.color = make([]colorful.Color, size)
		f.depth = make([]float64, size)
	}
	f.color = f.color[:size]
	f.depth = f.depth[:size]
	f.width, f.height = w, h
}

// Width and Height are in pixels
func (f *Frame) Width() int  { return f.width }
func (f *Frame) Height() int { return f.height }

// Clear fills with bg at infinite depth
func (f *Frame) Clear(bg colorful.Color) {
	for i := range f.color {
		f.color[i] = bg
		f.depth[i] = math.Inf(1)
	}
}

// Plot writes c if depth is nearer than what the pixel holds
func (f *Frame) Plot(x, y int, depth float64, c colorful.Color) bool {
	if x < 0 || y < 0 || x >= f.width || y >= f.height {
		return false
	}
	i := y*f.width + x
	if depth >= f.depth[i] {
		return false
	}
	f.depth[i] = depth
	f.color[i] = c
	return true
}

// Depth returns the stored depth, +Inf when empty or out of range
func (f *Frame) Depth(x, y int) float64 {
	if x < 0 || y < 0 || x >= f.width || y >= f.height {
		return math.Inf(1)
	}
	return f.depth[y*f.width+x]
}

// At returns the pixel color
func (f *Frame) At(x, y int) colorful.Color {
	if x < 0 || y < 0 || x >= f.width || y >= f.height {
		return colorful.Color{}
	}
	return f.color[y*f.width+x]
}

// Flush writes the frame to screen starting at row top using upper half blocks
func (f *Frame) Flush(screen tcell.Screen, top int) {
	for row := 0; row*2 < f.height; row++ {
		for x := 0; x < f.width; x++ {
			upper := f.color[row*2*f.width+x]
			lower := f.color[(row*2+1)*f.width+x]
			style := tcell.StyleDefault.Foreground(tcellColor(upper)).Background(tcellColor(lower))
			screen.SetContent(x, top+row, '▀', nil, style)
		}
	}
}

func tcellColor(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
