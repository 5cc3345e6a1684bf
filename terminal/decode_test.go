package terminal

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDecodeBytes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []KeyEvent
	}{
		{"arrow up", "\x1b[A", []KeyEvent{{KeyUp, ModNone}}},
		{"arrows", "\x1b[B\x1b[C\x1b[D", []KeyEvent{{KeyDown, ModNone}, {KeyRight, ModNone}, {KeyLeft, ModNone}}},
		{"shift arrow up", "\x1b[1;2A", []KeyEvent{{KeyUp, ModShift}}},
		{"shift arrow left", "\x1b[1;2D", []KeyEvent{{KeyLeft, ModShift}}},
		{"lone escape", "\x1b", []KeyEvent{{KeyEscape, ModNone}}},
		{"lowercase letter", "q", []KeyEvent{{'q', ModNone}}},
		{"uppercase letter", "Q", []KeyEvent{{'Q', ModShift}}},
		{"ctrl letter", "\x13", []KeyEvent{{'S', ModCtrl}}},
		{"ctrl space", "\x00", []KeyEvent{{' ', ModCtrl}}},
		{"newline", "\n", []KeyEvent{{KeyEnter, ModNone}}},
		{"del byte is backspace", "\x7f", []KeyEvent{{KeyBackspace, ModNone}}},
		{"delete sequence", "\x1b[3~", []KeyEvent{{KeyDelete, ModNone}}},
		{"alt letter", "\x1bx", []KeyEvent{{'x', ModAlt}}},
		{"alt shifted symbol keeps key only", "\x1b!", []KeyEvent{{'!', ModAlt}}},
		{"alt bracket at end", "\x1b[", []KeyEvent{{'[', ModAlt}}},
		{"mixed burst", "a\x1b[Ab", []KeyEvent{{'a', ModNone}, {KeyUp, ModNone}, {'b', ModNone}}},
		{"trailing escape after text", "hi\x1b", []KeyEvent{{'h', ModNone}, {'i', ModNone}, {KeyEscape, ModNone}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeBytes([]byte(tt.input))
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Events mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecodeBytesDropsRemainder(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		want       []KeyEvent
		wantOffset int
	}{
		{"unknown final", "a\x1b[Hb", []KeyEvent{{'a', ModNone}}, 1},
		{"unknown shift final", "\x1b[1;2Zq", []KeyEvent{}, 0},
		{"truncated shift sequence", "x\x1b[1;", []KeyEvent{{'x', ModNone}}, 1},
		{"high byte", "ok\xc3\xa9!", []KeyEvent{{'o', ModNone}, {'k', ModNone}}, 2},
		{"high byte after escape", "\x1b\xc3", []KeyEvent{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeBytes([]byte(tt.input))
			var de *DecodeError
			if !errors.As(err, &de) {
				t.Fatalf("Expected *DecodeError, got %v", err)
			}
			if de.Offset != tt.wantOffset {
				t.Errorf("Expected offset %d, got %d", tt.wantOffset, de.Offset)
			}
			if string(de.Dropped) != tt.input[tt.wantOffset:] {
				t.Errorf("Expected dropped %q, got %q", tt.input[tt.wantOffset:], de.Dropped)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Events mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecodeBytesNextPollUnaffected(t *testing.T) {
	if _, err := DecodeBytes([]byte("\x1b[Z")); err == nil {
		t.Fatal("Expected first poll to report dropped input")
	}
	got, err := DecodeBytes([]byte("z"))
	if err != nil || len(got) != 1 || got[0] != (KeyEvent{'z', ModNone}) {
		t.Errorf("Expected clean decode on next poll, got %v, %v", got, err)
	}
}

func TestDecodeRecords(t *testing.T) {
	tests := []struct {
		name string
		recs []KeyRecord
		want []KeyEvent
	}{
		{
			name: "key up ignored",
			recs: []KeyRecord{{KeyDown: false, Char: 'a'}},
			want: []KeyEvent{},
		},
		{
			name: "plain letter",
			recs: []KeyRecord{{KeyDown: true, VirtualKey: 0x41, Char: 'a'}},
			want: []KeyEvent{{'a', ModNone}},
		},
		{
			name: "carriage return becomes newline",
			recs: []KeyRecord{{KeyDown: true, VirtualKey: 0x0d, Char: '\r'}},
			want: []KeyEvent{{KeyEnter, ModNone}},
		},
		{
			name: "arrows remap",
			recs: []KeyRecord{
				{KeyDown: true, VirtualKey: vkUp},
				{KeyDown: true, VirtualKey: vkDown},
				{KeyDown: true, VirtualKey: vkLeft},
				{KeyDown: true, VirtualKey: vkRight},
			},
			want: []KeyEvent{{KeyUp, ModNone}, {KeyDown, ModNone}, {KeyLeft, ModNone}, {KeyRight, ModNone}},
		},
		{
			name: "shift arrow",
			recs: []KeyRecord{{KeyDown: true, VirtualKey: vkUp, ControlState: stateShift}},
			want: []KeyEvent{{KeyUp, ModShift}},
		},
		{
			name: "left ctrl folds control code",
			recs: []KeyRecord{{KeyDown: true, VirtualKey: 0x53, Char: 0x13, ControlState: stateLeftCtrl}},
			want: []KeyEvent{{'s', ModCtrl}},
		},
		{
			name: "right ctrl folds control code",
			recs: []KeyRecord{{KeyDown: true, VirtualKey: 0x51, Char: 0x11, ControlState: stateRightCtrl}},
			want: []KeyEvent{{'q', ModCtrl}},
		},
		{
			name: "ctrl arrow keeps arrow",
			recs: []KeyRecord{{KeyDown: true, VirtualKey: vkLeft, ControlState: stateLeftCtrl}},
			want: []KeyEvent{{KeyLeft, ModCtrl}},
		},
		{
			name: "alt letter",
			recs: []KeyRecord{{KeyDown: true, VirtualKey: 0x58, Char: 'x', ControlState: stateLeftAlt}},
			want: []KeyEvent{{'x', ModAlt}},
		},
		{
			name: "delete clears modifiers",
			recs: []KeyRecord{{KeyDown: true, VirtualKey: vkDelete, ControlState: stateShift}},
			want: []KeyEvent{{KeyDelete, ModNone}},
		},
		{
			name: "bare modifier press skipped",
			recs: []KeyRecord{{KeyDown: true, VirtualKey: 0x10, ControlState: stateShift}},
			want: []KeyEvent{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DecodeRecords(tt.recs)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Events mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
