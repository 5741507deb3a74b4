package render

import (
	"fmt"
	"os"

	"qrlink/internal/qr"

	"github.com/yeqown/go-qrcode/v2"
	"github.com/yeqown/go-qrcode/writer/standard"
)

// WriteMicroPNG renders the compact plain symbol through the vector
// library's standard image writer: transparent background, cream
// modules, no styling or logo.
func WriteMicroPNG(p qr.Params) error {
	qrc, err := qrcode.NewWith(p.Data, vecLevelOption(p.ErrorLevel))
	if err != nil {
		return fmt.Errorf("encode micro: %w", err)
	}

	f, err := os.Create(p.PNGOut)
	if err != nil {
		return fmt.Errorf("create micro png: %w", err)
	}

	scale := max(8, p.BoxSize/2)
	if scale > 255 {
		scale = 255 // the writer takes the module width as a byte
	}

	w := standard.NewWithWriter(f,
		standard.WithBuiltinImageEncoder(standard.PNG_FORMAT),
		standard.WithQRWidth(uint8(scale)),
		standard.WithBorderWidth(p.Border*scale),
		standard.WithBgTransparent(),
		standard.WithFgColorRGBHex(creamHex),
	)
	if err := qrc.Save(w); err != nil {
		return fmt.Errorf("write micro png: %w", err)
	}
	return nil
}
