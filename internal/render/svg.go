package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"qrlink/internal/qr"

	svgo "github.com/ajstarks/svgo"
	"github.com/yeqown/go-qrcode/v2"
)

// svgScale is the fixed module size of the vector output, in pixels.
const svgScale = 10

// vecLevelOption maps the one-letter error level onto the vector
// encoder's option. Unknown letters map to the highest tier, matching
// the raster path.
func vecLevelOption(letter string) qrcode.EncodeOption {
	switch strings.ToLower(letter) {
	case "l":
		return qrcode.WithErrorCorrectionLevel(qrcode.ErrorCorrectionLow)
	case "m":
		return qrcode.WithErrorCorrectionLevel(qrcode.ErrorCorrectionMedium)
	case "q":
		return qrcode.WithErrorCorrectionLevel(qrcode.ErrorCorrectionQuart)
	default:
		return qrcode.WithErrorCorrectionLevel(qrcode.ErrorCorrectionHighest)
	}
}

// svgWriter emits one cream rect per set module, no background element.
// It satisfies the vector encoder's writer contract.
type svgWriter struct {
	w      io.WriteCloser
	scale  int
	border int
}

func (s *svgWriter) Write(mat qrcode.Matrix) error {
	side := (mat.Width() + 2*s.border) * s.scale

	canvas := svgo.New(s.w)
	canvas.Startview(side, side, 0, 0, side, side)
	mat.Iterate(qrcode.IterDirection_ROW, func(x, y int, v qrcode.QRValue) {
		if !v.IsSet() {
			return
		}
		canvas.Rect((x+s.border)*s.scale, (y+s.border)*s.scale, s.scale, s.scale, "fill:"+creamHex)
	})
	canvas.End()
	return nil
}

func (s *svgWriter) Close() error {
	return s.w.Close()
}

// WriteSVG renders the data through the vector encoder, independent of
// the raster path: the two artifacts may pick different versions for the
// same input.
func WriteSVG(p qr.Params) error {
	qrc, err := qrcode.NewWith(p.Data, vecLevelOption(p.ErrorLevel))
	if err != nil {
		return fmt.Errorf("encode svg: %w", err)
	}

	f, err := os.Create(p.SVGOut)
	if err != nil {
		return fmt.Errorf("create svg: %w", err)
	}

	// Save closes the writer, and the file with it
	w := &svgWriter{w: f, scale: svgScale, border: p.Border}
	if err := qrc.Save(w); err != nil {
		return fmt.Errorf("write svg: %w", err)
	}
	return nil
}
