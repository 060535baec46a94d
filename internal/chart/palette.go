package chart

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// tab20 is the qualitative 20-color palette used for task bars.
var tab20 = []string{
	"#1f77b4", "#aec7e8", "#ff7f0e", "#ffbb78", "#2ca02c",
	"#98df8a", "#d62728", "#ff9896", "#9467bd", "#c5b0d5",
	"#8c564b", "#c49c94", "#e377c2", "#f7b6d2", "#7f7f7f",
	"#c7c7c7", "#bcbd22", "#dbdb8d", "#17becf", "#9edae5",
}

// Palette returns n distinct hex colors. Up to 20 colors come from tab20 in
// order; larger tables get evenly spaced hues.
func Palette(n int) []string {
	if n <= 0 {
		return nil
	}
	out := make([]string, n)
	if n <= len(tab20) {
		copy(out, tab20[:n])
		return out
	}
	for i := range out {
		hue := 360 * float64(i) / float64(n)
		out[i] = colorful.Hcl(hue, 0.6, 0.65).Clamped().Hex()
	}
	return out
}

// Blend composites overlay over base with the given opacity and returns the
// resulting hex color.
func Blend(base, overlay string, alpha float64) (string, error) {
	b, err := colorful.Hex(base)
	if err != nil {
		return "", fmt.Errorf("base color %q: %w", base, err)
	}
	o, err := colorful.Hex(overlay)
	if err != nil {
		return "", fmt.Errorf("overlay color %q: %w", overlay, err)
	}
	if alpha < 0 {
		alpha = 0
	} else if alpha > 1 {
		alpha = 1
	}
	return b.BlendRgb(o, alpha).Clamped().Hex(), nil
}
