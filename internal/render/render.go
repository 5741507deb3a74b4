// Package render produces the two image artifacts of a generation run:
// a styled transparent-background PNG and a plain SVG of the same data.
package render

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"qrlink/internal/qr"

	"go.uber.org/zap"
)

// Generate runs the whole pipeline for one parameter record. Non-fatal
// conditions (missing logo, density estimate above the ceiling) are
// logged as warnings and generation continues; everything else aborts
// with no partial-output cleanup.
func Generate(p qr.Params, sugar *zap.SugaredLogger) error {
	if err := ensureDir(p.PNGOut); err != nil {
		return err
	}
	if err := ensureDir(p.SVGOut); err != nil {
		return err
	}

	if p.Micro {
		if err := qr.CheckMicro(p); err != nil {
			return err
		}
		if err := WriteMicroPNG(p); err != nil {
			return err
		}
		return WriteSVG(p)
	}

	sym, err := qr.Encode(p)
	if err != nil {
		return err
	}

	if est := qr.EstimateMinVersion(p.Data); est > p.MaxVersion {
		sugar.Warnf("long payload: estimated version ~%d exceeds max %d, the symbol gets dense; use a shorter link", est, p.MaxVersion)
	}

	img := Raster(sym, p)
	RoundEyes(img, p)
	if p.Card {
		img = Card(img)
	}
	// the cutout comes before the logo so the logo stays visible on top
	if p.LogoCutout {
		Cutout(img, p)
	}
	img = ComposeLogo(img, p, sugar)

	if err := writePNG(p.PNGOut, img); err != nil {
		return err
	}
	return WriteSVG(p)
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir %s: %w", dir, err)
	}
	return nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create png: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("write png: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close png: %w", err)
	}
	return nil
}
