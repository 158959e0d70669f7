// Package colors holds the Color type the map view draws with, and functions to quickly generate Colors by name
// (i.e. "White()", "Blue()", "Green()", etc).
package colors

// Transparent generates a Color instance of the provided name.
func Transparent() Color {
	return NewColor(0, 0, 0, 0)
}

// White generates a Color instance of the provided name.
func White() Color {
	return NewColor(1, 1, 1, 1)
}

// Black generates a Color instance of the provided name.
func Black() Color {
	return NewColor(0, 0, 0, 1)
}

// Gray generates a Color instance of the provided name.
func Gray() Color {
	return NewColor(0.5, 0.5, 0.5, 1)
}

// LightGray generates a Color instance of the provided name.
func LightGray() Color {
	return NewColor(0.8, 0.8, 0.8, 1)
}

// DarkGray generates a Color instance of the provided name.
func DarkGray() Color {
	return NewColor(0.2, 0.2, 0.2, 1)
}

// DarkestGray generates a Color instance of the provided name.
func DarkestGray() Color {
	return NewColor(0.05, 0.05, 0.05, 1)
}

// Red generates a Color instance of the provided name.
func Red() Color {
	return NewColor(1, 0, 0, 1)
}

// PaleRed generates a Color instance of the provided name.
func PaleRed() Color {
	return NewColor(0.678, 0.172, 0.384, 1)
}

// Orange generates a Color instance of the provided name.
func Orange() Color {
	return NewColor(1, 0.5, 0, 1)
}

// Yellow generates a Color instance of the provided name.
func Yellow() Color {
	return NewColor(1, 1, 0, 1)
}

// Green generates a Color instance of the provided name.
func Green() Color {
	return NewColor(0, 1, 0, 1)
}

// SkyBlue generates a Color instance of the provided name.
func SkyBlue() Color {
	return NewColor(0, 0.5, 1, 1)
}

// Turquoise generates a Color instance of the provided name.
func Turquoise() Color {
	return NewColor(0, 1, 1, 1)
}

// Blue generates a Color instance of the provided name.
func Blue() Color {
	return NewColor(0, 0, 1, 1)
}

// Pink generates a Color instance of the provided name.
func Pink() Color {
	return NewColor(1, 0, 1, 1)
}

// Purple generates a Color instance of the provided name.
func Purple() Color {
	return NewColor(0.5, 0, 1, 1)
}
