//go:build !windows

package screens

import (
	"image"
	"log"

	"github.com/kbinani/screenshot"
)

type primaryDisplayProvider struct{}

func newProvider() Provider { return primaryDisplayProvider{} }

// VirtualScreen returns the primary display's full rectangle, origin (0,0).
func (primaryDisplayProvider) VirtualScreen() image.Rectangle {
	if screenshot.NumActiveDisplays() == 0 {
		log.Printf("ERROR: no active displays found, using fallback %v", fallbackRect)
		return fallbackRect
	}
	b := screenshot.GetDisplayBounds(0)
	if b.Dx() <= 0 || b.Dy() <= 0 {
		log.Printf("ERROR: primary display bounds empty, using fallback %v", fallbackRect)
		return fallbackRect
	}
	log.Printf("Primary display: %v", b)
	return b
}
