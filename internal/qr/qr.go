// Package qr turns an input string into QR symbol data ready for rendering.
package qr

import (
	"errors"
	"fmt"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
)

// ErrTooDense - the data does not fit the requested symbol size.
var ErrTooDense = errors.New("data too long for the forced version; raise force-version or use a shorter URL")

// Params collects every knob of a single generation run.
type Params struct {
	// Data: the string encoded in both artifacts (a short URL recommended).
	Data string
	// LogoPath: PNG centered on the symbol; empty or missing degrades to no logo.
	LogoPath string
	// PNGOut, SVGOut: output paths; parent directories are created as needed.
	PNGOut string
	SVGOut string
	// ErrorLevel: one-letter error correction level (h/q/m/l).
	ErrorLevel string
	// MaxVersion: ceiling for the density warning, not a hard limit.
	MaxVersion int
	// BoxSize: module size in pixels for the raster output.
	BoxSize int
	// Border: quiet zone in modules.
	Border int
	// ForceVersion: fixed symbol version, 0 selects the smallest fit.
	ForceVersion int
	// LogoScale: logo width relative to the symbol width.
	LogoScale float64
	// LogoPad: margin around the logo on its plaque, relative to the logo size.
	LogoPad float64
	// EyeRadiusScale: finder corner radius relative to the 7-module eye size.
	EyeRadiusScale float64
	// CutoutRadiusScale: transparent disc radius relative to the symbol width.
	CutoutRadiusScale float64
	// Card: translucent white rounded card under the whole symbol.
	Card bool
	// NoPlaque: drop the white plaque under the logo.
	NoPlaque bool
	// LogoCutout: clear a centered transparent disc before placing the logo.
	LogoCutout bool
	// Micro: compact plain rendering, skips styling and logo entirely.
	Micro bool
}

// Defaults mirrors the editable default record: run the generator with no
// flags and these values apply.
func Defaults() Params {
	return Params{
		Data:              "http://localhost:8000/x",
		LogoPath:          "assets/logo.png",
		PNGOut:            "out/qr_white.png",
		SVGOut:            "out/qr_white.svg",
		ErrorLevel:        "q",
		MaxVersion:        20,
		BoxSize:           60,
		Border:            2,
		ForceVersion:      3,
		LogoScale:         0.30,
		LogoPad:           0.40,
		EyeRadiusScale:    0.10,
		CutoutRadiusScale: 0.10,
		Card:              false,
		NoPlaque:          true,
		LogoCutout:        true,
		Micro:             false,
	}
}

// Level maps the one-letter error level onto the encoder's recovery level.
// Unknown letters map to the highest redundancy tier.
func Level(letter string) qrcode.RecoveryLevel {
	switch strings.ToLower(letter) {
	case "l":
		return qrcode.Low
	case "m":
		return qrcode.Medium
	case "q":
		return qrcode.High
	case "h":
		return qrcode.Highest
	default:
		return qrcode.Highest
	}
}

// Symbol is an encoded QR symbol without its quiet zone.
type Symbol struct {
	// Modules holds the module grid, row by row; true means a dark module.
	Modules [][]bool
	// Version is the symbol's size class.
	Version int
}

// Encode builds the symbol, forcing the version when p.ForceVersion > 0.
func Encode(p Params) (*Symbol, error) {
	var (
		code *qrcode.QRCode
		err  error
	)
	level := Level(p.ErrorLevel)
	if p.ForceVersion > 0 {
		code, err = qrcode.NewWithForcedVersion(p.Data, p.ForceVersion, level)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrTooDense, err)
		}
	} else {
		code, err = qrcode.New(p.Data, level)
		if err != nil {
			return nil, fmt.Errorf("encode %q: %w", p.Data, err)
		}
	}

	// the quiet zone is drawn by the renderer, not the encoder
	code.DisableBorder = true

	return &Symbol{Modules: code.Bitmap(), Version: code.VersionNumber}, nil
}

// capacityByVersion approximates the level-H character capacity per
// version. Deliberately rough: it only feeds the density warning.
var capacityByVersion = []struct {
	version  int
	capacity int
}{
	{1, 9},
	{2, 16},
	{3, 26},
	{4, 36},
	{5, 68},
	{6, 86},
	{7, 108},
	{8, 124},
	{9, 157},
	{10, 189},
}

// EstimateMinVersion estimates the version an ASCII payload needs,
// capped at 10.
func EstimateMinVersion(data string) int {
	length := len(data)
	for _, t := range capacityByVersion {
		if length <= t.capacity {
			return t.version
		}
	}
	return 10
}

// microCapacity is the Micro-QR M4 byte-mode capacity per error level.
// Level H is not defined for Micro QR.
var microCapacity = map[string]int{
	"l": 15,
	"m": 13,
	"q": 9,
}

// CheckMicro validates that the payload fits a Micro QR symbol at the
// requested error level.
func CheckMicro(p Params) error {
	capacity, ok := microCapacity[strings.ToLower(p.ErrorLevel)]
	if !ok {
		return fmt.Errorf("%w: error level %q is not defined for micro symbols", ErrTooDense, p.ErrorLevel)
	}
	if len(p.Data) > capacity {
		return fmt.Errorf("%w: %d bytes exceed the micro capacity of %d at level %s", ErrTooDense, len(p.Data), capacity, p.ErrorLevel)
	}
	return nil
}
