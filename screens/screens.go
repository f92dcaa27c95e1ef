// Package screens reports the bounding rectangle of the attached displays.
package screens

import "image"

// Provider yields the rectangle the selection overlay should cover. The
// Windows implementation spans the whole virtual screen (all monitors,
// possibly with a negative origin); elsewhere the primary display is used.
type Provider interface {
	VirtualScreen() image.Rectangle
}

// Detect returns the metrics provider for the current platform. It never
// fails: when display metrics cannot be read the provider falls back to a
// conservative default rectangle.
func Detect() Provider {
	return newProvider()
}

// fallbackRect is used when no display information is available at all.
var fallbackRect = image.Rect(0, 0, 800, 600)
