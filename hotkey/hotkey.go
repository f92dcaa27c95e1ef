// Package hotkey fires a callback when a global key combination is pressed.
package hotkey

import (
	"log"
	"strconv"
	"strings"

	gohook "github.com/robotn/gohook"
)

type keyState struct {
	name     string
	rawcodes []uint16
	pressed  bool
}

// Listen registers a combination like "Ctrl+Alt+S" and invokes callback
// whenever every key in it is held down. The callback runs on the hook
// goroutine; it must hand real work off, not block.
func Listen(combo string, callback func()) {
	var states []keyState
	for _, name := range parseCombo(combo) {
		rawcodes := keyRawcodes(name)
		if len(rawcodes) == 0 {
			log.Printf("ERROR: Cannot map key '%s' in hotkey '%s'", name, combo)
			continue
		}
		states = append(states, keyState{name: name, rawcodes: rawcodes})
	}
	if len(states) == 0 {
		log.Printf("ERROR: No usable keys in hotkey '%s', global hotkey disabled", combo)
		return
	}

	log.Printf("Hotkey listener configured for: %s", combo)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("PANIC in hotkey goroutine: %v", r)
			}
		}()

		evChan := gohook.Start()
		if evChan == nil {
			log.Printf("ERROR: hotkey hook could not start")
			return
		}

		for ev := range evChan {
			switch ev.Kind {
			case gohook.KeyDown:
				if track(states, ev.Rawcode, true) && allPressed(states) {
					log.Printf("Hotkey activated: %s", combo)
					reset(states)
					if callback != nil {
						callback()
					}
				}
			case gohook.KeyUp:
				track(states, ev.Rawcode, false)
			}
		}
		log.Printf("Hotkey event channel closed")
	}()
}

func track(states []keyState, rawcode uint16, down bool) bool {
	for i := range states {
		for _, rc := range states[i].rawcodes {
			if rc == rawcode {
				states[i].pressed = down
				return true
			}
		}
	}
	return false
}

func allPressed(states []keyState) bool {
	for i := range states {
		if !states[i].pressed {
			return false
		}
	}
	return true
}

func reset(states []keyState) {
	for i := range states {
		states[i].pressed = false
	}
}

// parseCombo splits "Ctrl+Alt+S" into normalized lowercase key names.
func parseCombo(combo string) []string {
	var keys []string
	for _, part := range strings.Split(strings.ToLower(combo), "+") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		switch part {
		case "win", "cmd", "super":
			keys = append(keys, "cmd")
		default:
			keys = append(keys, part)
		}
	}
	return keys
}

// keyRawcodes maps a key name to its virtual key codes; modifiers include
// both left and right variants.
func keyRawcodes(name string) []uint16 {
	switch name {
	case "ctrl":
		return []uint16{162, 163} // VK_LCONTROL, VK_RCONTROL
	case "alt":
		return []uint16{164, 165} // VK_LMENU, VK_RMENU
	case "shift":
		return []uint16{160, 161} // VK_LSHIFT, VK_RSHIFT
	case "cmd":
		return []uint16{91, 92} // VK_LWIN, VK_RWIN
	}

	// Letters and digits share their ASCII uppercase codes.
	if len(name) == 1 {
		c := name[0]
		if c >= 'a' && c <= 'z' {
			return []uint16{uint16(c - 'a' + 'A')}
		}
		if c >= '0' && c <= '9' {
			return []uint16{uint16(c)}
		}
	}

	// F1..F24 are contiguous from VK_F1.
	if strings.HasPrefix(name, "f") {
		if n, err := strconv.Atoi(name[1:]); err == nil && n >= 1 && n <= 24 {
			return []uint16{uint16(111 + n)}
		}
	}

	return nil
}
