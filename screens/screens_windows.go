//go:build windows

package screens

import (
	"image"
	"log"

	"golang.org/x/sys/windows"
)

const (
	smXVirtualScreen  = 76
	smYVirtualScreen  = 77
	smCXVirtualScreen = 78
	smCYVirtualScreen = 79
)

var (
	user32               = windows.NewLazySystemDLL("user32.dll")
	procGetSystemMetrics = user32.NewProc("GetSystemMetrics")
)

type virtualScreenProvider struct{}

func newProvider() Provider { return virtualScreenProvider{} }

// VirtualScreen returns the union of all attached monitors. Secondary
// monitors left of or above the primary give a negative origin.
func (virtualScreenProvider) VirtualScreen() image.Rectangle {
	x := getSystemMetrics(smXVirtualScreen)
	y := getSystemMetrics(smYVirtualScreen)
	w := getSystemMetrics(smCXVirtualScreen)
	h := getSystemMetrics(smCYVirtualScreen)
	if w <= 0 || h <= 0 {
		log.Printf("ERROR: virtual screen metrics unavailable, using fallback %v", fallbackRect)
		return fallbackRect
	}
	r := image.Rect(x, y, x+w, y+h)
	log.Printf("Virtual screen: x=%d y=%d w=%d h=%d", x, y, w, h)
	return r
}

func getSystemMetrics(index int) int {
	ret, _, _ := procGetSystemMetrics.Call(uintptr(index))
	return int(int32(ret))
}
