package render

import (
	"image"
	"image/color"

	"qrlink/internal/qr"

	"github.com/fogleman/gg"
)

// Module fill is a fixed cream; the background stays fully transparent,
// so the symbol needs a dark surface (or the card) behind it.
const creamHex = "#fffffa"

var creamColor = color.NRGBA{R: 0xff, G: 0xff, B: 0xfa, A: 0xff}

// corners marks which corners of a module get rounded. A corner rounds
// only when both orthogonally adjacent modules at that corner are unset.
type corners struct {
	topLeft  bool
	topRight bool
	botRight bool
	botLeft  bool
}

// Raster draws the styled symbol: one rounded square per set module,
// cream on a transparent canvas sized (modules + 2*border) * box pixels.
func Raster(sym *qr.Symbol, p qr.Params) *image.RGBA {
	n := len(sym.Modules)
	box := p.BoxSize
	side := (n + 2*p.Border) * box

	dc := gg.NewContext(side, side)
	dc.SetColor(creamColor)
	radius := float64(box) / 2

	// the quiet zone counts as unset
	set := func(x, y int) bool {
		if x < 0 || y < 0 || x >= n || y >= n {
			return false
		}
		return sym.Modules[y][x]
	}

	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if !sym.Modules[y][x] {
				continue
			}
			px := float64((x + p.Border) * box)
			py := float64((y + p.Border) * box)
			drawModule(dc, px, py, float64(box), radius, corners{
				topLeft:  !set(x-1, y) && !set(x, y-1),
				topRight: !set(x+1, y) && !set(x, y-1),
				botRight: !set(x+1, y) && !set(x, y+1),
				botLeft:  !set(x-1, y) && !set(x, y+1),
			})
			dc.Fill()
		}
	}

	img, _ := dc.Image().(*image.RGBA)
	return img
}

// drawModule traces a square of side s at (x, y) whose selected corners
// are replaced by quadratic arcs of radius r.
func drawModule(dc *gg.Context, x, y, s, r float64, c corners) {
	dc.NewSubPath()
	if c.topLeft {
		dc.MoveTo(x+r, y)
	} else {
		dc.MoveTo(x, y)
	}
	if c.topRight {
		dc.LineTo(x+s-r, y)
		dc.QuadraticTo(x+s, y, x+s, y+r)
	} else {
		dc.LineTo(x+s, y)
	}
	if c.botRight {
		dc.LineTo(x+s, y+s-r)
		dc.QuadraticTo(x+s, y+s, x+s-r, y+s)
	} else {
		dc.LineTo(x+s, y+s)
	}
	if c.botLeft {
		dc.LineTo(x+r, y+s)
		dc.QuadraticTo(x, y+s, x, y+s-r)
	} else {
		dc.LineTo(x, y+s)
	}
	if c.topLeft {
		dc.LineTo(x, y+r)
		dc.QuadraticTo(x, y, x+r, y)
	}
	dc.ClosePath()
}
