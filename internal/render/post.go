package render

import (
	"image"
	"image/color"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	"os"

	"qrlink/internal/qr"

	"github.com/fogleman/gg"
	"go.uber.org/zap"
	_ "golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
)

const (
	cardAlpha   = 216 // 255 * 0.85
	plaqueAlpha = 234 // 255 * 0.92
)

// RoundEyes erases the alpha outside a rounded rectangle laid over each
// of the three finder patterns. No-op when the radius scale is zero.
func RoundEyes(img *image.RGBA, p qr.Params) {
	if p.EyeRadiusScale <= 0 {
		return
	}

	box := p.BoxSize
	eye := 7 * box // a finder pattern spans 7x7 modules
	radius := int(float64(eye) * p.EyeRadiusScale)

	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	borderPx := p.Border * box

	// top-left, top-right, bottom-left, just inside the quiet zone
	origins := [3][2]int{
		{borderPx, borderPx},
		{w - borderPx - eye, borderPx},
		{borderPx, h - borderPx - eye},
	}
	for _, o := range origins {
		eraseOutsideRoundedRect(img, o[0], o[1], eye, eye, radius)
	}
}

// Card lays the symbol on a translucent white rounded card and returns
// the enlarged image.
func Card(img *image.RGBA) *image.RGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	pad := int(float64(min(w, h)) * 0.06)

	cw, ch := w+2*pad, h+2*pad
	dc := gg.NewContext(cw, ch)
	radius := float64(int(float64(min(cw, ch)) * 0.10))
	dc.SetColor(color.NRGBA{R: 255, G: 255, B: 255, A: cardAlpha})
	dc.DrawRoundedRectangle(0, 0, float64(cw), float64(ch), radius)
	dc.Fill()
	dc.DrawImage(img, pad, pad)

	out, _ := dc.Image().(*image.RGBA)
	return out
}

// Cutout clears a centered disc so the logo sits on a fully transparent
// hole. The radius covers at least half the logo footprint.
func Cutout(img *image.RGBA, p qr.Params) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	side := min(w, h)

	radius := int(float64(side) * p.CutoutRadiusScale)
	if logoRadius := int(float64(side) * p.LogoScale * 0.52); logoRadius > radius {
		radius = logoRadius
	}

	cx, cy := w/2, h/2
	for y := cy - radius; y <= cy+radius; y++ {
		for x := cx - radius; x <= cx+radius; x++ {
			if x < 0 || y < 0 || x >= w || y >= h {
				continue
			}
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy <= radius*radius {
				clearPixel(img, x, y)
			}
		}
	}
}

// ComposeLogo centers the logo over the symbol, optionally on a
// translucent rounded plaque. A missing or unreadable logo degrades to a
// warning and the untouched image.
func ComposeLogo(img *image.RGBA, p qr.Params, sugar *zap.SugaredLogger) *image.RGBA {
	if p.LogoPath == "" {
		return img
	}

	f, err := os.Open(p.LogoPath)
	if err != nil {
		sugar.Warnf("logo not found at %s; generating without logo", p.LogoPath)
		return img
	}
	defer func() {
		if err := f.Close(); err != nil {
			sugar.Errorf("close logo file: %v", err)
		}
	}()

	src, _, err := image.Decode(f)
	if err != nil {
		sugar.Warnf("cannot decode logo %s: %v; generating without logo", p.LogoPath, err)
		return img
	}

	b := img.Bounds()
	targetSide := int(float64(b.Dx()) * p.LogoScale)
	logo := thumbnail(src, targetSide)
	lw, lh := logo.Bounds().Dx(), logo.Bounds().Dy()

	if p.NoPlaque {
		compositeCenter(img, logo)
		return img
	}

	pad := int(float64(max(lw, lh)) * p.LogoPad)
	pw, ph := lw+2*pad, lh+2*pad
	dc := gg.NewContext(pw, ph)
	dc.SetColor(color.NRGBA{R: 255, G: 255, B: 255, A: plaqueAlpha})
	dc.DrawRoundedRectangle(0, 0, float64(pw), float64(ph), float64(int(float64(min(pw, ph))*0.25)))
	dc.Fill()
	dc.DrawImage(logo, pad, pad)

	plaque, _ := dc.Image().(*image.RGBA)
	compositeCenter(img, plaque)
	return img
}

// thumbnail shrinks src to fit a target square, preserving aspect ratio.
// Images already within the target are returned untouched.
func thumbnail(src image.Image, target int) image.Image {
	sb := src.Bounds()
	sw, sh := sb.Dx(), sb.Dy()
	if sw <= target && sh <= target {
		return src
	}

	scale := float64(target) / float64(max(sw, sh))
	dw := max(1, int(float64(sw)*scale))
	dh := max(1, int(float64(sh)*scale))

	dst := image.NewRGBA(image.Rect(0, 0, dw, dh))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, sb, xdraw.Over, nil)
	return dst
}

func compositeCenter(dst *image.RGBA, src image.Image) {
	db, sb := dst.Bounds(), src.Bounds()
	x := (db.Dx() - sb.Dx()) / 2
	y := (db.Dy() - sb.Dy()) / 2
	r := image.Rect(x, y, x+sb.Dx(), y+sb.Dy())
	draw.Draw(dst, r, src, sb.Min, draw.Over)
}

func eraseOutsideRoundedRect(img *image.RGBA, x0, y0, w, h, r int) {
	b := img.Bounds()
	for y := y0; y < y0+h; y++ {
		for x := x0; x < x0+w; x++ {
			if x < b.Min.X || y < b.Min.Y || x >= b.Max.X || y >= b.Max.Y {
				continue
			}
			if !insideRoundedRect(x-x0, y-y0, w, h, r) {
				clearPixel(img, x, y)
			}
		}
	}
}

// insideRoundedRect reports whether (x, y) lies inside a w*h rectangle
// whose corners are rounded with radius r.
func insideRoundedRect(x, y, w, h, r int) bool {
	if r <= 0 {
		return true
	}

	var dx int
	switch {
	case x < r:
		dx = r - x
	case x >= w-r:
		dx = x - (w - r - 1)
	default:
		return true
	}

	var dy int
	switch {
	case y < r:
		dy = r - y
	case y >= h-r:
		dy = y - (h - r - 1)
	default:
		return true
	}

	return dx*dx+dy*dy <= r*r
}

// clearPixel zeroes the four channels at (x, y), which is fully
// transparent in premultiplied RGBA.
func clearPixel(img *image.RGBA, x, y int) {
	i := img.PixOffset(x, y)
	img.Pix[i] = 0
	img.Pix[i+1] = 0
	img.Pix[i+2] = 0
	img.Pix[i+3] = 0
}
