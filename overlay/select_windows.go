//go:build windows

package overlay

import (
	"fmt"
	"image"
	"log"
	"os"
	"runtime"
	"syscall"
	"unsafe"

	"fyne.io/fyne/v2"
	"github.com/lxn/win"

	"snip-vision-llm/capture"
)

const (
	overlayAlpha      = 77 // ~30% opacity, matches the Tk-style dimmed look
	keyPollTimerID    = 1
	keyPollIntervalMs = 25
)

var (
	user32DLL                    = syscall.NewLazyDLL("user32.dll")
	procAllowSetForegroundWindow = user32DLL.NewProc("AllowSetForegroundWindow")
	procGetAsyncKeyState         = user32DLL.NewProc("GetAsyncKeyState")
)

// winOverlay holds the state of the single in-flight selection. The shell
// guarantees one capture cycle at a time, so a package-level instance is
// safe here and keeps the wndProc callback simple.
type winOverlay struct {
	hwnd       win.HWND
	drag       *drag
	escWasDown bool
	result     capture.Region
	ok         bool
	finished   bool
	closed     bool
}

var active *winOverlay

// Select shows a translucent, topmost, borderless window covering the whole
// virtual screen and blocks until the user finishes or cancels a drag. The
// Fyne app is unused on Windows; the overlay is a native layered window so
// it can span monitor boundaries.
func Select(_ fyne.App, bounds image.Rectangle) (capture.Region, bool, error) {
	// The message loop and the window must live on one OS thread.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	className := syscall.StringToUTF16Ptr("SnipVisionOverlay")

	wc := win.WNDCLASSEX{
		Style:         win.CS_HREDRAW | win.CS_VREDRAW,
		LpfnWndProc:   syscall.NewCallback(overlayWndProc),
		HInstance:     win.GetModuleHandle(nil),
		HCursor:       win.LoadCursor(0, win.MAKEINTRESOURCE(win.IDC_CROSS)),
		HbrBackground: win.HBRUSH(win.GetStockObject(win.GRAY_BRUSH)),
		LpszClassName: className,
	}
	wc.CbSize = uint32(unsafe.Sizeof(wc))
	if win.RegisterClassEx(&wc) == 0 {
		return capture.Region{}, false, fmt.Errorf("failed to register overlay window class")
	}
	defer win.UnregisterClass(className)

	active = &winOverlay{drag: newDrag(bounds.Min)}
	defer func() { active = nil }()

	hwnd := win.CreateWindowEx(
		win.WS_EX_TOPMOST|win.WS_EX_LAYERED|win.WS_EX_TOOLWINDOW,
		className,
		syscall.StringToUTF16Ptr("Select Region - drag to select, ESC cancels"),
		win.WS_POPUP|win.WS_VISIBLE,
		int32(bounds.Min.X), int32(bounds.Min.Y), int32(bounds.Dx()), int32(bounds.Dy()),
		0, 0, win.GetModuleHandle(nil), nil,
	)
	if hwnd == 0 {
		return capture.Region{}, false, fmt.Errorf("failed to create overlay window")
	}
	active.hwnd = hwnd

	win.SetLayeredWindowAttributes(hwnd, 0, overlayAlpha, win.LWA_ALPHA)
	win.ShowWindow(hwnd, win.SW_SHOW)
	procAllowSetForegroundWindow.Call(uintptr(os.Getpid()))
	win.SetForegroundWindow(hwnd)
	win.BringWindowToTop(hwnd)
	win.SetFocus(hwnd)
	win.UpdateWindow(hwnd)

	// Popup windows do not always receive keyboard focus, so Escape is
	// additionally polled like the rest of the key handling in this app.
	if win.SetTimer(hwnd, keyPollTimerID, keyPollIntervalMs, 0) == 0 {
		log.Printf("OVERLAY: Failed to start keyboard poll timer")
	}

	log.Printf("Overlay shown at %v, starting message loop", bounds)

	var msg win.MSG
	for {
		ret := win.GetMessage(&msg, 0, 0, 0)
		if ret == 0 || ret == -1 {
			break
		}
		win.TranslateMessage(&msg)
		win.DispatchMessage(&msg)
		if active.closed {
			break
		}
	}

	if active.ok {
		log.Printf("Selection completed: %+v", active.result)
	} else {
		log.Printf("Selection cancelled or below minimum size")
	}
	return active.result, active.ok, nil
}

// finish records the outcome once and schedules teardown. Closing is posted
// rather than done inline so the window is never destroyed in the middle of
// dispatching the event that produced the result.
func (o *winOverlay) finish(region capture.Region, ok bool) {
	if o.finished {
		return
	}
	o.finished = true
	o.result = region
	o.ok = ok
	win.PostMessage(o.hwnd, win.WM_CLOSE, 0, 0)
}

func (o *winOverlay) cancel() {
	o.drag.Cancel()
	o.finish(capture.Region{}, false)
}

func overlayWndProc(hwnd win.HWND, msg uint32, wParam, lParam uintptr) uintptr {
	o := active
	if o == nil {
		return win.DefWindowProc(hwnd, msg, wParam, lParam)
	}

	switch msg {
	case win.WM_LBUTTONDOWN:
		x, y := clientCoords(lParam)
		win.SetCapture(hwnd)
		o.drag.Press(x, y)
		win.InvalidateRect(hwnd, nil, true)
		win.UpdateWindow(hwnd)
		return 0

	case win.WM_MOUSEMOVE:
		x, y := clientCoords(lParam)
		if o.drag.Move(x, y) {
			win.InvalidateRect(hwnd, nil, true)
			win.UpdateWindow(hwnd)
		}
		return 0

	case win.WM_LBUTTONUP:
		if o.drag.Dragging() {
			win.ReleaseCapture()
			x, y := clientCoords(lParam)
			region, ok := o.drag.Release(x, y)
			o.finish(region, ok)
		}
		return 0

	case win.WM_PAINT:
		var ps win.PAINTSTRUCT
		hdc := win.BeginPaint(hwnd, &ps)
		o.paint(hdc)
		win.EndPaint(hwnd, &ps)
		return 0

	case win.WM_KEYDOWN:
		if wParam == win.VK_ESCAPE {
			o.escWasDown = true
			o.cancel()
		}
		return 0

	case win.WM_KEYUP, win.WM_SYSKEYUP:
		if wParam == win.VK_ESCAPE {
			o.escWasDown = false
		}
		return 0

	case win.WM_TIMER:
		if wParam == keyPollTimerID {
			o.pollEscape()
		}
		return 0

	case win.WM_NCHITTEST:
		// Force client area so the window receives all mouse events.
		return uintptr(win.HTCLIENT)

	case win.WM_DESTROY:
		win.KillTimer(hwnd, keyPollTimerID)
		o.closed = true
		win.PostQuitMessage(0)
		return 0
	}

	return win.DefWindowProc(hwnd, msg, wParam, lParam)
}

func (o *winOverlay) paint(hdc win.HDC) {
	if !o.drag.Dragging() {
		return
	}
	m := o.drag.Marker()

	pen := win.CreatePen(win.PS_SOLID, 2, win.RGB(255, 0, 0))
	oldPen := win.SelectObject(hdc, win.HGDIOBJ(pen))
	oldBrush := win.SelectObject(hdc, win.GetStockObject(win.NULL_BRUSH))
	win.Rectangle_(hdc, int32(m.Min.X), int32(m.Min.Y), int32(m.Max.X), int32(m.Max.Y))
	win.SelectObject(hdc, oldBrush)
	win.SelectObject(hdc, oldPen)
	win.DeleteObject(win.HGDIOBJ(pen))

	readout := fmt.Sprintf("Start: (%d, %d), Current: (%d, %d)", o.drag.anchorX, o.drag.anchorY, o.drag.curX, o.drag.curY)
	text, err := syscall.UTF16FromString(readout)
	if err != nil {
		return
	}
	win.SetBkMode(hdc, win.TRANSPARENT)
	win.SetTextColor(hdc, win.RGB(255, 255, 255))
	win.TextOut(hdc, 10, 10, &text[0], int32(len(text)-1))
}

func (o *winOverlay) pollEscape() {
	state, _, _ := procGetAsyncKeyState.Call(uintptr(win.VK_ESCAPE))
	s := uint16(state)
	isDown := s&0x8000 != 0
	wasPressed := s&0x0001 != 0
	if !o.escWasDown && (isDown || wasPressed) {
		log.Printf("Escape detected via async polling")
		o.cancel()
	}
	o.escWasDown = isDown
}

func clientCoords(lParam uintptr) (int, int) {
	return int(int16(win.LOWORD(uint32(lParam)))), int(int16(win.HIWORD(uint32(lParam))))
}
