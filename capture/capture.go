// Package capture grabs screen pixels and serializes them for transport.
package capture

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"

	"github.com/kbinani/screenshot"
)

// Region is a screen rectangle in absolute virtual-screen coordinates.
type Region struct {
	X      int
	Y      int
	Width  int
	Height int
}

func (r Region) Bounds() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height)
}

// debugFileName is overwritten on every capture when debug saving is on.
const debugFileName = "debug_capture.png"

// Grab captures the pixel contents of a screen region.
func Grab(region Region) (*image.RGBA, error) {
	if region.Width <= 0 || region.Height <= 0 {
		return nil, fmt.Errorf("invalid region dimensions: width=%d, height=%d", region.Width, region.Height)
	}

	img, err := screenshot.CaptureRect(region.Bounds())
	if err != nil {
		return nil, fmt.Errorf("failed to capture region: %v", err)
	}
	return img, nil
}

// EncodePNG serializes an in-memory image losslessly as PNG.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode image as PNG: %v", err)
	}
	return buf.Bytes(), nil
}

// DataURL wraps PNG bytes in the base64 data URL form the chat-completion
// API expects for image attachments.
func DataURL(pngData []byte) string {
	return fmt.Sprintf("data:image/png;base64,%s", base64.StdEncoding.EncodeToString(pngData))
}

// SaveDebug writes the most recent capture to a fixed filename, replacing
// the previous snapshot. Failures are logged and otherwise ignored.
func SaveDebug(pngData []byte) {
	if err := os.WriteFile(debugFileName, pngData, 0600); err != nil {
		log.Printf("Warning: Could not save debug image: %v", err)
		return
	}
	log.Printf("Saved capture snapshot to %s (size: %d bytes)", debugFileName, len(pngData))
}
