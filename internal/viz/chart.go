package viz

import (
	"fmt"
	"math"
	"strings"
)

// Chart renders one (t, y) series as a braille line chart with a
// caption and y-range labels. An optional vertical marker highlights a
// time of interest, e.g. the target-crossing time.
type Chart struct {
	Width, Height int
	Caption       string
	MarkTime      float64
	HasMark       bool
}

func NewChart(w, h int) *Chart {
	return &Chart{Width: w, Height: h}
}

func (ch *Chart) WithMark(t float64) *Chart {
	ch.MarkTime = t
	ch.HasMark = true
	return ch
}

// Render draws the series scaled to the canvas and returns the chart
// text. Series shorter than two samples render an empty frame.
func (ch *Chart) Render(ts, ys []float64) string {
	canvas := NewCanvas(ch.Width, ch.Height)
	cw := ch.Width * 2
	chh := ch.Height * 4

	yMin, yMax := seriesRange(ys)
	if yMax == yMin {
		yMax = yMin + 1
	}

	if len(ts) >= 2 {
		t0 := ts[0]
		t1 := ts[len(ts)-1]
		if t1 == t0 {
			t1 = t0 + 1
		}

		px := func(t float64) int {
			return int(float64(cw-1) * (t - t0) / (t1 - t0))
		}
		py := func(y float64) int {
			return (chh - 1) - int(float64(chh-1)*(y-yMin)/(yMax-yMin))
		}

		prevX, prevY := px(ts[0]), py(ys[0])
		for i := 1; i < len(ts); i++ {
			x, y := px(ts[i]), py(ys[i])
			canvas.DrawLine(prevX, prevY, x, y)
			prevX, prevY = x, y
		}

		if ch.HasMark && ch.MarkTime >= t0 && ch.MarkTime <= t1 {
			mx := px(ch.MarkTime)
			for y := 0; y < chh; y += 3 {
				canvas.Set(mx, y)
			}
		}
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%11.4f ┤\n", yMax))
	for _, row := range canvas.Grid {
		b.WriteString("            │" + string(row) + "\n")
	}
	b.WriteString(fmt.Sprintf("%11.4f ┴", yMin))
	if ch.Caption != "" {
		b.WriteString(" " + ch.Caption)
	}
	b.WriteString("\n")
	return b.String()
}

func seriesRange(ys []float64) (float64, float64) {
	if len(ys) == 0 {
		return 0, 0
	}
	min, max := math.Inf(1), math.Inf(-1)
	for _, y := range ys {
		if y < min {
			min = y
		}
		if y > max {
			max = y
		}
	}
	return min, max
}
