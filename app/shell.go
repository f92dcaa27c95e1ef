// Package app owns the main window and runs the capture cycle end to end.
package app

import (
	"fmt"
	"image"
	"log"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"snip-vision-llm/capture"
	"snip-vision-llm/clipboard"
	"snip-vision-llm/config"
	"snip-vision-llm/llm"
	"snip-vision-llm/markdown"
	"snip-vision-llm/overlay"
	"snip-vision-llm/screens"
)

type cycleState int

const (
	stateIdle cycleState = iota
	stateCapturing
)

const (
	// Settle delays around hiding/restoring the main window so the
	// compositor has unmapped it before the overlay (and the capture)
	// see the screen.
	hideSettle    = 300 * time.Millisecond
	restoreSettle = 100 * time.Millisecond
)

// Shell wires the window, the overlay and the vision client together. One
// capture cycle runs at a time; TriggerCapture during a cycle is a no-op.
type Shell struct {
	app     fyne.App
	win     fyne.Window
	cfg     *config.Config
	metrics screens.Provider

	preview *canvas.Image
	answer  *widget.RichText

	mu       sync.Mutex
	state    cycleState
	lastText string
}

func New(a fyne.App, cfg *config.Config, metrics screens.Provider) *Shell {
	s := &Shell{
		app:     a,
		cfg:     cfg,
		metrics: metrics,
	}

	s.win = a.NewWindow("Snip Vision")

	s.preview = &canvas.Image{FillMode: canvas.ImageFillContain}
	s.preview.SetMinSize(fyne.NewSize(400, 300))

	s.answer = widget.NewRichText()
	s.answer.Wrapping = fyne.TextWrapWord

	snipBtn := widget.NewButton("Snip Area", s.TriggerCapture)
	copyBtn := widget.NewButton("Copy Text", s.copyAnswer)

	left := container.NewBorder(widget.NewLabel("Captured Image"), nil, nil, nil, s.preview)
	right := container.NewBorder(widget.NewLabel("Vision API Response"), nil, nil, nil, container.NewVScroll(s.answer))
	split := container.NewHSplit(left, right)

	s.win.SetContent(container.NewBorder(nil, container.NewHBox(snipBtn, copyBtn), nil, nil, split))
	s.win.Resize(fyne.NewSize(900, 520))
	s.win.SetMaster()

	return s
}

// Run shows the main window and blocks until the app exits.
func (s *Shell) Run() {
	s.win.ShowAndRun()
}

// TriggerCapture starts one capture cycle on its own goroutine. Safe to call
// from any goroutine (button tap, tray menu, hotkey hook).
func (s *Shell) TriggerCapture() {
	if !s.begin() {
		log.Printf("Capture cycle already in progress, ignoring trigger")
		return
	}
	go func() {
		defer s.end()
		s.runCycle()
	}()
}

func (s *Shell) begin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != stateIdle {
		return false
	}
	s.state = stateCapturing
	return true
}

func (s *Shell) end() {
	s.mu.Lock()
	s.state = stateIdle
	s.mu.Unlock()
}

func (s *Shell) runCycle() {
	fyne.DoAndWait(s.win.Hide)
	time.Sleep(hideSettle)

	bounds := s.metrics.VirtualScreen()
	region, ok, err := overlay.Select(s.app, bounds)

	time.Sleep(restoreSettle)
	fyne.DoAndWait(s.win.Show)

	if err != nil {
		s.showError(fmt.Sprintf("Error capturing image: %v", err))
		return
	}
	if !ok {
		return
	}

	log.Printf("Attempting to capture area: %+v", region)
	img, err := capture.Grab(region)
	if err != nil {
		s.showError(fmt.Sprintf("Error capturing image: %v", err))
		return
	}

	pngData, err := capture.EncodePNG(img)
	if err != nil {
		s.showError(fmt.Sprintf("Error capturing image: %v", err))
		return
	}
	if s.cfg.DebugSaveCapture {
		capture.SaveDebug(pngData)
	}

	s.showPreview(img)

	answer, err := llm.AnalyzeImage(pngData)
	if err != nil {
		// The preview keeps the capture that failed to analyze.
		s.showError(fmt.Sprintf("Error processing image: %v", err))
		return
	}

	log.Printf("Vision response received (%d chars)", len(answer))
	s.showAnswer(answer)
}

func (s *Shell) showPreview(img image.Image) {
	fyne.Do(func() {
		s.preview.Image = img
		s.preview.Refresh()
	})
}

func (s *Shell) showAnswer(text string) {
	s.mu.Lock()
	s.lastText = text
	s.mu.Unlock()

	segments := markdown.Segments(markdown.Parse(text))
	fyne.Do(func() {
		s.answer.Segments = segments
		s.answer.Refresh()
	})
}

func (s *Shell) showError(message string) {
	log.Printf("ERROR: %s", message)

	s.mu.Lock()
	s.lastText = ""
	s.mu.Unlock()

	segments := markdown.ErrorSegments(message)
	fyne.Do(func() {
		s.answer.Segments = segments
		s.answer.Refresh()
	})
}

func (s *Shell) copyAnswer() {
	s.mu.Lock()
	text := s.lastText
	s.mu.Unlock()
	if text == "" {
		return
	}
	clipboard.Write(text)
}
