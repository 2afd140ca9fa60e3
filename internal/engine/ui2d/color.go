package ui2d

import "github.com/Faultbox/asaro-studio/internal/params"

// Color represents an RGBA color with float components (0.0 to 1.0).
type Color struct {
	R, G, B, A float32
}

// Theme colors.
var (
	ColorTransparent = Color{0, 0, 0, 0}
	ColorWhite       = Color{1, 1, 1, 1}
	ColorBlack       = Color{0, 0, 0, 1}

	ColorPanelBg      = RGBA(30, 26, 23, 255)
	ColorSectionBg    = RGBA(42, 36, 31, 255)
	ColorPanelBorder  = RGBA(74, 64, 56, 255)
	ColorButtonNormal = RGBA(52, 45, 39, 255)
	ColorButtonHover  = RGBA(68, 59, 51, 255)
	ColorInputBg      = RGBA(24, 21, 18, 255)
	ColorText         = RGBA(240, 232, 222, 255)
	ColorTextDim      = RGBA(168, 156, 142, 255)
	ColorHighlight    = RGBA(212, 165, 116, 255)
	ColorOverlayBg    = RGBA(42, 36, 31, 230)
	ColorShadow       = RGBA(0, 0, 0, 77)
)

// RGBA creates a color from 8-bit RGBA values (0-255).
func RGBA(r, g, b, a uint8) Color {
	return Color{
		R: float32(r) / 255.0,
		G: float32(g) / 255.0,
		B: float32(b) / 255.0,
		A: float32(a) / 255.0,
	}
}

// FromRGB converts a parameter colour with full alpha.
func FromRGB(c params.RGB) Color {
	return RGBA(c.R, c.G, c.B, 255)
}

// WithAlpha returns a copy of the color with a different alpha value.
func (c Color) WithAlpha(a float32) Color {
	return Color{c.R, c.G, c.B, a}
}

// Darken returns a darker version of the color.
func (c Color) Darken(factor float32) Color {
	return Color{
		R: c.R * (1 - factor),
		G: c.G * (1 - factor),
		B: c.B * (1 - factor),
		A: c.A,
	}
}

// Lighten returns a lighter version of the color.
func (c Color) Lighten(factor float32) Color {
	return Color{
		R: c.R + (1-c.R)*factor,
		G: c.G + (1-c.G)*factor,
		B: c.B + (1-c.B)*factor,
		A: c.A,
	}
}

// Luma returns perceived brightness, used to pick a contrasting outline.
func (c Color) Luma() float32 {
	return 0.299*c.R + 0.587*c.G + 0.114*c.B
}
