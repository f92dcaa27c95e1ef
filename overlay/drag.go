// Package overlay implements the full-screen drag-to-select surface.
package overlay

import (
	"image"

	"snip-vision-llm/capture"
)

// minSelectionSpan is the minimum drag size, per axis, for a selection to
// count. Anything smaller is treated as an accidental click.
const minSelectionSpan = 5

type dragPhase int

const (
	phaseIdle dragPhase = iota
	phaseDragging
	phaseDone
)

// drag tracks one press-move-release gesture in overlay-local coordinates
// and converts the result to absolute screen coordinates. origin is the
// overlay's top-left corner on the virtual screen; it may be negative when
// a secondary monitor sits left of or above the primary.
type drag struct {
	origin           image.Point
	phase            dragPhase
	anchorX, anchorY int
	curX, curY       int
}

func newDrag(origin image.Point) *drag {
	return &drag{origin: origin}
}

// Press anchors the gesture at a local point.
func (d *drag) Press(x, y int) {
	if d.phase != phaseIdle {
		return
	}
	d.phase = phaseDragging
	d.anchorX, d.anchorY = x, y
	d.curX, d.curY = x, y
}

// Move updates the far corner of the marker rectangle. Returns false when
// no drag is in progress.
func (d *drag) Move(x, y int) bool {
	if d.phase != phaseDragging {
		return false
	}
	d.curX, d.curY = x, y
	return true
}

// Marker is the normalized rectangle to draw, in local coordinates.
func (d *drag) Marker() image.Rectangle {
	return image.Rect(d.anchorX, d.anchorY, d.curX, d.curY).Canon()
}

// Release ends the gesture at a local point and yields the selection in
// absolute screen coordinates. ok is false for drags at or under the
// minimum span on either axis, and for a release without a press.
func (d *drag) Release(x, y int) (capture.Region, bool) {
	if d.phase != phaseDragging {
		return capture.Region{}, false
	}
	d.phase = phaseDone
	r := image.Rect(d.anchorX, d.anchorY, x, y).Canon().Add(d.origin)
	if r.Dx() <= minSelectionSpan || r.Dy() <= minSelectionSpan {
		return capture.Region{}, false
	}
	return capture.Region{X: r.Min.X, Y: r.Min.Y, Width: r.Dx(), Height: r.Dy()}, true
}

// Cancel abandons the gesture; any later Release yields no selection.
func (d *drag) Cancel() {
	d.phase = phaseDone
}

// Dragging reports whether a marker rectangle should be visible.
func (d *drag) Dragging() bool {
	return d.phase == phaseDragging
}
