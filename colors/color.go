package colors

import (
	"image/color"
	"math"
)

// A Color represents a color, containing R, G, B, and A components, each expected to range from 0 to 1.
type Color struct {
	R, G, B, A float32
}

// NewColor returns a new Color, with the provided R, G, B, and A components expected to range from 0 to 1.
func NewColor(r, g, b, a float32) Color {
	return Color{r, g, b, a}
}

// NewColorFromHSV returns a new, opaque Color from a hue (0 to 1, wrapping), saturation and value.
func NewColorFromHSV(h, s, v float64) Color {

	h = h - math.Floor(h)
	i := math.Floor(h * 6)
	f := h*6 - i
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)

	var r, g, b float64

	switch int(i) % 6 {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default:
		r, g, b = v, p, q
	}

	return NewColor(float32(r), float32(g), float32(b), 1)

}

// SetRGBA sets all of the Color's components.
func (c *Color) SetRGBA(r, g, b, a float32) {
	c.R = r
	c.G = g
	c.B = b
	c.A = a
}

// AddRGB adds the value to the Color's R, G, and B components.
func (c Color) AddRGB(value float32) Color {
	c.R += value
	c.G += value
	c.B += value
	return c
}

// Lerp returns the Color percentage of the way from this Color to the other one.
func (c Color) Lerp(other Color, percentage float32) Color {
	return Color{
		c.R + (other.R-c.R)*percentage,
		c.G + (other.G-c.G)*percentage,
		c.B + (other.B-c.B)*percentage,
		c.A + (other.A-c.A)*percentage,
	}
}

// WithAlpha returns a copy of the Color with its alpha component replaced.
func (c Color) WithAlpha(alpha float32) Color {
	c.A = alpha
	return c
}

// RGBA64 returns the Color's components as float64s.
func (c Color) RGBA64() (float64, float64, float64, float64) {
	return float64(c.R), float64(c.G), float64(c.B), float64(c.A)
}

// RGBA implements color.Color, so a Color can be handed to ebiten and image/draw directly.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.ToNRGBA().RGBA()
}

// ToNRGBA converts the Color to a non-premultiplied color.NRGBA, clamping each component.
func (c Color) ToNRGBA() color.NRGBA {
	return color.NRGBA{channel(c.R), channel(c.G), channel(c.B), channel(c.A)}
}

// ConvertTosRGB converts the Color's R, G, and B components from linear to sRGB.
func (c *Color) ConvertTosRGB() {
	c.R = tosRGB(c.R)
	c.G = tosRGB(c.G)
	c.B = tosRGB(c.B)
}

func tosRGB(v float32) float32 {
	if v <= 0.0031308 {
		return v * 12.92
	}
	return float32(1.055*math.Pow(float64(v), 1/2.4) - 0.055)
}

func channel(v float32) uint8 {
	return uint8(math.Round(float64(min(max(v, 0), 1)) * 255))
}
