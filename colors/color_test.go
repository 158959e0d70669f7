package colors

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorToNRGBA(t *testing.T) {
	assert.Equal(t, color.NRGBA{255, 0, 0, 255}, Red().ToNRGBA())
	assert.Equal(t, color.NRGBA{0, 0, 0, 0}, Transparent().ToNRGBA())
	assert.Equal(t, color.NRGBA{255, 255, 255, 255}, NewColor(2, 1.5, 1, 1).ToNRGBA())
}

func TestColorLerp(t *testing.T) {
	mid := Black().Lerp(White(), 0.5)
	assert.InDelta(t, 0.5, mid.R, 1e-6)
	assert.InDelta(t, 0.5, mid.G, 1e-6)
	assert.InDelta(t, 1, mid.A, 1e-6)
}

func TestColorFromHSV(t *testing.T) {
	assert.Equal(t, Red().ToNRGBA(), NewColorFromHSV(0, 1, 1).ToNRGBA())
	assert.Equal(t, Red().ToNRGBA(), NewColorFromHSV(1, 1, 1).ToNRGBA())
	assert.Equal(t, Blue().ToNRGBA(), NewColorFromHSV(2.0/3.0, 1, 1).ToNRGBA())
}
