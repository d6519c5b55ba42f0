// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rocplot

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/aclements/go-gg/gg"
)

// chanceColor is the stroke of the chance diagonal.
var chanceColor = color.Gray{0xa0}

// defaultPalette colors series that have no explicit color mapping,
// cycled by series position.
var defaultPalette = []color.Color{
	color.RGBA{0x4c, 0x72, 0xb0, 0xff},
	color.RGBA{0x55, 0xa8, 0x68, 0xff},
	color.RGBA{0xc4, 0x4e, 0x52, 0xff},
	color.RGBA{0x81, 0x72, 0xb2, 0xff},
	color.RGBA{0xcc, 0xb9, 0x74, 0xff},
	color.RGBA{0x64, 0xb5, 0xcd, 0xff},
}

// seriesColor returns the stroke color of the i'th series: its
// mapped color if one was supplied, a default palette color
// otherwise.
func seriesColor(name string, i int, colors map[string]color.Color) color.Color {
	if c, ok := colors[name]; ok {
		return c
	}
	return defaultPalette[i%len(defaultPalette)]
}

// applyStyle applies the shared axis style: percent sensitivity and
// specificity labels, the specificity axis reading 100 down to 0, and
// both axes padded a little beyond [0, 1].
func applyStyle(p *gg.Plot, title string) {
	x := gg.NewLinearScaler().SetMin(-0.05).SetMax(1.05)
	x.SetFormatter(specificityPercent)
	y := gg.NewLinearScaler().SetMin(-0.05).SetMax(1.05)
	y.SetFormatter(sensitivityPercent)
	p.SetScale("x", x)
	p.SetScale("y", y)

	p.Add(gg.AxisLabel("x", "Specificity (%)"))
	p.Add(gg.AxisLabel("y", "Sensitivity (%)"))
	if title != "" {
		p.Add(gg.Title(title))
	}
}

// specificityPercent labels a plotted false positive rate with the
// specificity percentage it corresponds to.
func specificityPercent(v float64) string {
	return fmt.Sprintf("%.0f", (1-v)*100)
}

func sensitivityPercent(v float64) string {
	return fmt.Sprintf("%.0f", v*100)
}

// ParseHexColor parses a "#RRGGBB" color.
func ParseHexColor(s string) (color.RGBA, error) {
	if len(s) != 7 || s[0] != '#' {
		return color.RGBA{}, fmt.Errorf("malformed hex color %q", s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("malformed hex color %q", s)
	}
	return color.RGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 0xff}, nil
}
