package render

import (
	"image/color"
	"math"

	"github.com/rotisserie/eris"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
)

// defaultColorMap returns the sequential color map used to shade values.
func defaultColorMap() palette.ColorMap {
	return moreland.Kindlmann()
}

// colorAt shades v through cm. Values outside the map's range clamp to its
// endpoints instead of erroring.
func colorAt(cm palette.ColorMap, v float64) (color.Color, error) {
	if v < cm.Min() {
		v = cm.Min()
	}
	if v > cm.Max() {
		v = cm.Max()
	}

	c, err := cm.At(v)
	if err != nil {
		return nil, eris.Wrap(err, "render: color map lookup")
	}
	return c, nil
}

// valueScale returns the minimum and maximum over the feature values, or
// [0, 1] when there are no features to scale.
func valueScale(features []Feature) (float64, float64) {
	if len(features) == 0 {
		return 0, 1
	}

	min, max := math.Inf(1), math.Inf(-1)
	for _, f := range features {
		if f.Value < min {
			min = f.Value
		}
		if f.Value > max {
			max = f.Value
		}
	}
	return min, max
}
