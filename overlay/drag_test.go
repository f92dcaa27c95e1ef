package overlay

import (
	"image"
	"testing"

	"snip-vision-llm/capture"
)

func TestDragNormalization(t *testing.T) {
	want := capture.Region{X: 10, Y: 10, Width: 40, Height: 40}

	// Top-left to bottom-right.
	d := newDrag(image.Point{})
	d.Press(10, 10)
	d.Move(30, 30)
	got, ok := d.Release(50, 50)
	if !ok || got != want {
		t.Errorf("Forward drag: got %+v ok=%v, want %+v", got, ok, want)
	}

	// Bottom-right to top-left must normalize to the same rectangle.
	d = newDrag(image.Point{})
	d.Press(50, 50)
	got, ok = d.Release(10, 10)
	if !ok || got != want {
		t.Errorf("Reverse drag: got %+v ok=%v, want %+v", got, ok, want)
	}
}

func TestDragMinimumSpan(t *testing.T) {
	cases := []struct {
		name           string
		sx, sy, ex, ey int
	}{
		{"click", 20, 20, 20, 20},
		{"narrow", 20, 20, 25, 100},
		{"short", 20, 20, 100, 25},
		{"narrow reversed", 25, 100, 20, 20},
	}
	for _, tc := range cases {
		d := newDrag(image.Point{})
		d.Press(tc.sx, tc.sy)
		if _, ok := d.Release(tc.ex, tc.ey); ok {
			t.Errorf("%s: expected no selection", tc.name)
		}
	}

	// One past the threshold on both axes is accepted.
	d := newDrag(image.Point{})
	d.Press(20, 20)
	if _, ok := d.Release(26, 26); !ok {
		t.Error("Expected 6x6 drag to be accepted")
	}
}

func TestDragOriginOffset(t *testing.T) {
	// Overlay positioned on a secondary monitor left of the primary.
	d := newDrag(image.Point{X: -1920, Y: -200})
	d.Press(100, 100)
	got, ok := d.Release(300, 250)
	want := capture.Region{X: -1820, Y: -100, Width: 200, Height: 150}
	if !ok || got != want {
		t.Errorf("Got %+v ok=%v, want %+v", got, ok, want)
	}
}

func TestDragCancel(t *testing.T) {
	// Escape before any press.
	d := newDrag(image.Point{})
	d.Cancel()
	if _, ok := d.Release(100, 100); ok {
		t.Error("Expected no selection after cancel before press")
	}

	// Escape mid-drag.
	d = newDrag(image.Point{})
	d.Press(10, 10)
	d.Move(200, 200)
	d.Cancel()
	if d.Dragging() {
		t.Error("Expected marker to be gone after cancel")
	}
	if _, ok := d.Release(200, 200); ok {
		t.Error("Expected no selection after cancel mid-drag")
	}
}

func TestDragMarker(t *testing.T) {
	d := newDrag(image.Point{})
	d.Press(40, 40)
	if got := d.Marker(); got != image.Rect(40, 40, 40, 40) {
		t.Errorf("Expected zero-size marker at anchor, got %v", got)
	}
	d.Move(10, 90)
	if got := d.Marker(); got != image.Rect(10, 40, 40, 90) {
		t.Errorf("Expected normalized marker, got %v", got)
	}
}

func TestMoveWithoutPress(t *testing.T) {
	d := newDrag(image.Point{})
	if d.Move(10, 10) {
		t.Error("Expected Move before Press to be ignored")
	}
}
