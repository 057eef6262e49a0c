// Package palette defines the display colors used for entry amounts.
package palette

import (
	"fmt"
	"image/color"
)

var (
	Red    = color.NRGBA{R: 0xff, G: 0x3b, B: 0x30, A: 0xff}
	Green  = color.NRGBA{R: 0x34, G: 0xc7, B: 0x59, A: 0xff}
	Orange = color.NRGBA{R: 0xff, G: 0x95, B: 0x00, A: 0xff}
)

var names = map[color.NRGBA]string{
	Red:    "red",
	Green:  "green",
	Orange: "orange",
}

// Hex formats a color as #rrggbb, dropping alpha
func Hex(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
}

// Name returns the palette name of c, or its hex form for unnamed colors
func Name(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if name, ok := names[n]; ok {
		return name
	}
	return Hex(c)
}
