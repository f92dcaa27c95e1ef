package hotkey

import (
	"reflect"
	"testing"
)

func TestParseCombo(t *testing.T) {
	cases := []struct {
		combo string
		want  []string
	}{
		{"Ctrl+Alt+S", []string{"ctrl", "alt", "s"}},
		{" ctrl + shift + F5 ", []string{"ctrl", "shift", "f5"}},
		{"Win+Q", []string{"cmd", "q"}},
		{"Super+1", []string{"cmd", "1"}},
	}
	for _, tc := range cases {
		if got := parseCombo(tc.combo); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("parseCombo(%q) = %v, want %v", tc.combo, got, tc.want)
		}
	}
}

func TestKeyRawcodes(t *testing.T) {
	cases := []struct {
		name string
		want []uint16
	}{
		{"ctrl", []uint16{162, 163}},
		{"alt", []uint16{164, 165}},
		{"shift", []uint16{160, 161}},
		{"cmd", []uint16{91, 92}},
		{"a", []uint16{65}},
		{"z", []uint16{90}},
		{"0", []uint16{48}},
		{"9", []uint16{57}},
		{"f1", []uint16{112}},
		{"f12", []uint16{123}},
		{"f24", []uint16{135}},
	}
	for _, tc := range cases {
		if got := keyRawcodes(tc.name); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("keyRawcodes(%q) = %v, want %v", tc.name, got, tc.want)
		}
	}

	for _, unknown := range []string{"f25", "f0", "foo", "!", ""} {
		if got := keyRawcodes(unknown); got != nil {
			t.Errorf("keyRawcodes(%q) = %v, want nil", unknown, got)
		}
	}
}

func TestComboTracking(t *testing.T) {
	states := []keyState{
		{name: "ctrl", rawcodes: []uint16{162, 163}},
		{name: "s", rawcodes: []uint16{83}},
	}

	if track(states, 65, true) {
		t.Error("Unrelated rawcode must not match")
	}
	if !track(states, 163, true) || allPressed(states) {
		t.Error("Right ctrl alone must not complete the combo")
	}
	if !track(states, 83, true) || !allPressed(states) {
		t.Error("Ctrl+S must complete the combo")
	}

	reset(states)
	if allPressed(states) {
		t.Error("Reset must clear pressed state")
	}

	// Release tracking.
	track(states, 163, true)
	track(states, 163, false)
	track(states, 83, true)
	if allPressed(states) {
		t.Error("Released modifier must not count toward the combo")
	}
}
