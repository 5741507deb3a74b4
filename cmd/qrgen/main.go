// Command qrgen produces a styled transparent-background QR PNG and a
// plain SVG encoding the same data.
package main

import (
	"fmt"
	"os"

	"qrlink/internal/logger"
	"qrlink/internal/qr"
	"qrlink/internal/render"

	"github.com/spf13/cobra"
)

func newRootCmd(p *qr.Params) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "qrgen",
		Short:         "Generate a styled transparent QR PNG plus a plain SVG",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			sugar, err := logger.NewLogger()
			if err != nil {
				return err
			}

			if !p.Card {
				fmt.Println("note: cream foreground; keep a dark surface behind the symbol, or pass --card")
			}

			if err := render.Generate(*p, sugar); err != nil {
				return err
			}

			fmt.Println("PNG written:", p.PNGOut)
			fmt.Println("SVG written:", p.SVGOut)
			return nil
		},
	}

	d := qr.Defaults()
	*p = d

	f := cmd.Flags()
	f.StringVar(&p.Data, "data", d.Data, "data to encode (short URL recommended)")
	f.StringVar(&p.LogoPath, "logo", d.LogoPath, "path of the centered logo (PNG)")
	f.StringVar(&p.PNGOut, "png", d.PNGOut, "PNG output path")
	f.StringVar(&p.SVGOut, "svg", d.SVGOut, "SVG output path")
	f.IntVar(&p.MaxVersion, "max-version", d.MaxVersion, "maximum QR version before the density warning")
	f.BoolVar(&p.Card, "card", d.Card, "put a translucent white rounded card under the QR")
	f.IntVar(&p.BoxSize, "box-size", d.BoxSize, "module size in pixels for the PNG")
	f.BoolVar(&p.NoPlaque, "no-plaque", d.NoPlaque, "disable the white plaque under the logo")
	f.IntVar(&p.Border, "border", d.Border, "quiet zone in modules (6-8 for a lighter look)")
	f.Float64Var(&p.LogoScale, "logo-scale", d.LogoScale, "logo size relative to the QR width")
	f.Float64Var(&p.LogoPad, "logo-pad", d.LogoPad, "margin around the logo on the plaque")
	f.Float64Var(&p.EyeRadiusScale, "eye-radius-scale", d.EyeRadiusScale, "corner radius of the finder patterns, relative to their 7-module size (0-0.5)")
	f.BoolVar(&p.LogoCutout, "logo-cutout", d.LogoCutout, "clear a transparent disc around the logo")
	f.Float64Var(&p.CutoutRadiusScale, "cutout-radius-scale", d.CutoutRadiusScale, "cutout radius relative to the QR width")
	f.IntVar(&p.ForceVersion, "force-version", d.ForceVersion, "force the QR version (0 = auto); fails when the data does not fit")
	f.StringVar(&p.ErrorLevel, "error-level", d.ErrorLevel, "error correction level (h/q/m/l); h recommended with a logo")
	f.BoolVar(&p.Micro, "micro", d.Micro, "compact plain symbol without logo or rounding")

	return cmd
}

func main() {
	var p qr.Params
	cmd := newRootCmd(&p)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "generation failed:", err)
		os.Exit(1)
	}
}
