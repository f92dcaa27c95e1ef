//go:build !windows

package overlay

import (
	"fmt"
	"image"
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"snip-vision-llm/capture"
)

type selectionOutcome struct {
	region capture.Region
	ok     bool
}

// Select shows a borderless full-screen selection surface over the primary
// display and blocks until the user finishes or cancels a drag. Fyne has no
// transparent windows, so the overlay paints a dimmed grab of the screen as
// its backdrop, the same trick the native overlay uses for its surface.
// Must not be called from the Fyne event goroutine.
func Select(a fyne.App, bounds image.Rectangle) (capture.Region, bool, error) {
	backdrop, err := capture.Grab(capture.Region{X: bounds.Min.X, Y: bounds.Min.Y, Width: bounds.Dx(), Height: bounds.Dy()})
	if err != nil {
		return capture.Region{}, false, fmt.Errorf("failed to grab overlay backdrop: %v", err)
	}

	results := make(chan selectionOutcome, 1)

	fyne.Do(func() {
		w := a.NewWindow("Select Region")
		area := newSelectionArea(bounds.Min, backdrop, func(region capture.Region, ok bool) {
			results <- selectionOutcome{region: region, ok: ok}
			// Tear down after the event that produced the result has
			// fully dispatched.
			go fyne.Do(w.Close)
		})
		area.scale = func() float32 { return w.Canvas().Scale() }

		w.SetPadded(false)
		w.SetContent(area)
		w.SetFullScreen(true)
		w.Canvas().SetOnTypedKey(func(k *fyne.KeyEvent) {
			if k.Name == fyne.KeyEscape {
				area.cancel()
			}
		})
		w.Show()
	})

	outcome := <-results
	if outcome.ok {
		log.Printf("Selection completed: %+v", outcome.region)
	} else {
		log.Printf("Selection cancelled or below minimum size")
	}
	return outcome.region, outcome.ok, nil
}

// selectionArea is the full-window widget that captures the drag gesture.
// All event handlers run on the Fyne event goroutine, so the plain fields
// need no locking.
type selectionArea struct {
	widget.BaseWidget

	state    *drag
	backdrop image.Image
	scale    func() float32
	finish   func(capture.Region, bool)
	finished bool
}

func newSelectionArea(origin image.Point, backdrop image.Image, finish func(capture.Region, bool)) *selectionArea {
	s := &selectionArea{
		state:    newDrag(origin),
		backdrop: backdrop,
		scale:    func() float32 { return 1 },
		finish:   finish,
	}
	s.ExtendBaseWidget(s)
	return s
}

var _ desktop.Mouseable = (*selectionArea)(nil)
var _ fyne.Draggable = (*selectionArea)(nil)

// toPixels converts a canvas position to screen pixels local to the overlay.
func (s *selectionArea) toPixels(p fyne.Position) (int, int) {
	f := s.scale()
	return int(p.X * f), int(p.Y * f)
}

func (s *selectionArea) MouseDown(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary {
		return
	}
	x, y := s.toPixels(ev.Position)
	s.state.Press(x, y)
	s.Refresh()
}

func (s *selectionArea) Dragged(ev *fyne.DragEvent) {
	x, y := s.toPixels(ev.Position)
	if s.state.Move(x, y) {
		s.Refresh()
	}
}

func (s *selectionArea) DragEnd() {}

func (s *selectionArea) MouseUp(ev *desktop.MouseEvent) {
	if !s.state.Dragging() {
		return
	}
	x, y := s.toPixels(ev.Position)
	region, ok := s.state.Release(x, y)
	s.Refresh()
	s.complete(region, ok)
}

func (s *selectionArea) cancel() {
	s.state.Cancel()
	s.Refresh()
	s.complete(capture.Region{}, false)
}

func (s *selectionArea) complete(region capture.Region, ok bool) {
	if s.finished {
		return
	}
	s.finished = true
	s.finish(region, ok)
}

func (s *selectionArea) CreateRenderer() fyne.WidgetRenderer {
	bg := canvas.NewImageFromImage(s.backdrop)
	bg.ScaleMode = canvas.ImageScalePixels

	shade := canvas.NewRectangle(color.NRGBA{A: 77})

	marker := canvas.NewRectangle(color.Transparent)
	marker.StrokeColor = color.NRGBA{R: 255, A: 255}
	marker.StrokeWidth = 2
	marker.Hidden = true

	readout := canvas.NewText("", color.White)
	readout.TextSize = 12

	return &selectionAreaRenderer{
		area:    s,
		bg:      bg,
		shade:   shade,
		marker:  marker,
		readout: readout,
	}
}

type selectionAreaRenderer struct {
	area    *selectionArea
	bg      *canvas.Image
	shade   *canvas.Rectangle
	marker  *canvas.Rectangle
	readout *canvas.Text
}

func (r *selectionAreaRenderer) Layout(size fyne.Size) {
	r.bg.Resize(size)
	r.shade.Resize(size)
	r.readout.Move(fyne.NewPos(10, 10))
}

func (r *selectionAreaRenderer) MinSize() fyne.Size {
	return fyne.NewSize(0, 0)
}

func (r *selectionAreaRenderer) Refresh() {
	d := r.area.state
	if d.Dragging() {
		f := r.area.scale()
		m := d.Marker()
		r.marker.Move(fyne.NewPos(float32(m.Min.X)/f, float32(m.Min.Y)/f))
		r.marker.Resize(fyne.NewSize(float32(m.Dx())/f, float32(m.Dy())/f))
		r.marker.Hidden = false
		r.readout.Text = fmt.Sprintf("Start: (%d, %d), Current: (%d, %d)", d.anchorX, d.anchorY, d.curX, d.curY)
	} else {
		r.marker.Hidden = true
		r.readout.Text = ""
	}
	r.marker.Refresh()
	r.readout.Refresh()
}

func (r *selectionAreaRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.bg, r.shade, r.marker, r.readout}
}

func (r *selectionAreaRenderer) Destroy() {}
