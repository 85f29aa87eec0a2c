package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/cansim/internal/viz"
)

// CanvasToSVG converts a braille canvas to an SVG dot raster. Each
// braille cell expands to its 2x4 sub-pixel dots.
func CanvasToSVG(canvas *viz.Canvas, scale float64) string {
	if canvas == nil {
		return ""
	}

	width := float64(canvas.Width) * scale * 2
	height := float64(canvas.Height) * scale * 4

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#101018"/>
<g fill="#35e0b0">
`, width, height, width, height))

	dotBits := [4][2]int{
		{0x01, 0x08},
		{0x02, 0x10},
		{0x04, 0x20},
		{0x40, 0x80},
	}
	dotRadius := scale * 0.4

	for row := 0; row < canvas.Height; row++ {
		for col := 0; col < canvas.Width; col++ {
			r := canvas.Grid[row][col]
			if r <= 0x2800 {
				continue
			}
			pattern := int(r - 0x2800)

			baseX := float64(col) * scale * 2
			baseY := float64(row) * scale * 4

			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if pattern&dotBits[dy][dx] != 0 {
						cx := baseX + float64(dx)*scale + scale/2
						cy := baseY + float64(dy)*scale + scale/2
						sb.WriteString(fmt.Sprintf("<circle cx=\"%.1f\" cy=\"%.1f\" r=\"%.1f\"/>\n", cx, cy, dotRadius))
					}
				}
			}
		}
	}

	sb.WriteString("</g>\n</svg>\n")
	return sb.String()
}

// SeriesSVG renders one (t, y) series as an SVG polyline chart with a
// caption. Intended for exporting velocity or displacement curves.
func SeriesSVG(ts, ys []float64, width, height int, caption string) string {
	var sb strings.Builder
	w, h := float64(width), float64(height)
	margin := 24.0

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#101018"/>
`, w, h, w, h))

	if len(ts) >= 2 {
		t0, t1 := ts[0], ts[len(ts)-1]
		yMin, yMax := ys[0], ys[0]
		for _, y := range ys {
			if y < yMin {
				yMin = y
			}
			if y > yMax {
				yMax = y
			}
		}
		if t1 == t0 {
			t1 = t0 + 1
		}
		if yMax == yMin {
			yMax = yMin + 1
		}

		sb.WriteString(`<polyline fill="none" stroke="#35e0b0" stroke-width="1.5" points="`)
		for i := range ts {
			px := margin + (w-2*margin)*(ts[i]-t0)/(t1-t0)
			py := (h - margin) - (h-2*margin)*(ys[i]-yMin)/(yMax-yMin)
			sb.WriteString(fmt.Sprintf("%.1f,%.1f ", px, py))
		}
		sb.WriteString("\"/>\n")

		sb.WriteString(fmt.Sprintf("<text x=\"%.0f\" y=\"14\" fill=\"#9090a8\" font-size=\"11\">%.4f</text>\n", margin, yMax))
		sb.WriteString(fmt.Sprintf("<text x=\"%.0f\" y=\"%.0f\" fill=\"#9090a8\" font-size=\"11\">%.4f</text>\n", margin, h-8, yMin))
	}

	if caption != "" {
		sb.WriteString(fmt.Sprintf("<text x=\"%.0f\" y=\"%.0f\" fill=\"#c0c0d0\" font-size=\"12\" text-anchor=\"middle\">%s</text>\n", w/2, h-8, caption))
	}
	sb.WriteString("</svg>\n")
	return sb.String()
}
