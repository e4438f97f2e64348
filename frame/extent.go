package frame

import (
	"github.com/npillmayer/tyse/core/dimen"
)

// Measurer measures the extent of a piece of text, as it would be set.
// Implementations are provided by clients, usually backed by font metrics.
type Measurer interface {
	Measure(text string) (w, h dimen.DU)
}

// MeasurerFunc adapts an ordinary function to the Measurer interface.
type MeasurerFunc func(text string) (w, h dimen.DU)

// Measure calls f(text).
func (f MeasurerFunc) Measure(text string) (dimen.DU, dimen.DU) {
	return f(text)
}

// FixedPitch is a Measurer for monospaced text on a single line. Every
// rune advances by Advance, and the text is Height high.
type FixedPitch struct {
	Advance dimen.DU
	Height  dimen.DU
}

// Measure returns the extent of text set with fixed pitch.
// Empty text has extent zero.
func (fp FixedPitch) Measure(text string) (dimen.DU, dimen.DU) {
	n := dimen.DU(len([]rune(text)))
	if n == 0 {
		return 0, 0
	}
	return n * fp.Advance, fp.Height
}

// Extent returns the width and height of a box.
//
// Text boxes start with the extent of their text. Child boxes are then
// placed in rows: inline and anonymous children continue the current row,
// a block child closes it and occupies a row of its own. The width of a box
// is the width of its widest row. Its height is the sum of the row heights,
// where the height of a row is the height of its highest box.
func Extent(box *Box, m Measurer) (w, h dimen.DU) {
	if box == nil {
		return 0, 0
	}
	var rowW, rowH dimen.DU
	if box.IsText() {
		rowW, rowH = m.Measure(box.Text())
	}
	w = rowW
	for _, ch := range box.BoxChildren() {
		chw, chh := Extent(ch, m)
		if ch.IsInline() {
			rowW += chw
			rowH = maxDU(rowH, chh)
			w = maxDU(w, rowW)
			continue
		}
		h += rowH + chh // a block closes the current row and takes a row of its own
		w = maxDU(w, chw)
		rowW, rowH = 0, 0
	}
	h += rowH
	tracer().Debugf("extent of %s is %v x %v", box, w, h)
	return w, h
}

func maxDU(a, b dimen.DU) dimen.DU {
	if a > b {
		return a
	}
	return b
}
