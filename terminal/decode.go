// @focus: #sys { io } #input { decode }
package terminal

import (
	"fmt"
)

// Batch limits for one poll
const (
	maxPollBytes   = 64
	maxPollRecords = 32
)

// DecodeError reports input that was dropped from one poll
// The events decoded before Offset are still delivered
type DecodeError struct {
	Offset  int
	Dropped []byte
	Reason  string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode input: %s at offset %d, dropped %q", e.Reason, e.Offset, e.Dropped)
}

func dropped(data []byte, offset int, reason string) *DecodeError {
	rest := make([]byte, len(data)-offset)
	copy(rest, data[offset:])
	return &DecodeError{Offset: offset, Dropped: rest, Reason: reason}
}

// DecodeBytes translates one poll's worth of byte-stream input into key events
// An unrecognized escape sequence or a byte above 127 stops decoding; the
// events before it are returned together with a *DecodeError
func DecodeBytes(data []byte) ([]KeyEvent, error) {
	events := make([]KeyEvent, 0, len(data))

	for i := 0; i < len(data); i++ {
		b := data[i]
		if b >= 0x80 {
			return events, dropped(data, i, "unsupported byte")
		}
		if b != 0x1b {
			events = append(events, Keymap[b])
			continue
		}

		// Escape alone at end of buffer
		if i+1 >= len(data) {
			events = append(events, KeyEvent{Key: KeyEscape})
			continue
		}

		next := data[i+1]
		if next != '[' {
			if next >= 0x80 {
				return events, dropped(data, i, "unsupported byte after escape")
			}
			events = append(events, KeyEvent{Key: Keymap[next].Key, Mod: ModAlt})
			i++
			continue
		}

		// Alt+[ rather than the start of a sequence
		if i+2 >= len(data) {
			events = append(events, KeyEvent{Key: '[', Mod: ModAlt})
			i++
			continue
		}

		n, ev, ok := parseCSI(data[i+2:])
		if !ok {
			return events, dropped(data, i, "unrecognized escape sequence")
		}
		events = append(events, ev)
		i += 1 + n
	}

	return events, nil
}

// parseCSI decodes the bytes following ESC [
// Returns the number of bytes consumed
func parseCSI(seq []byte) (int, KeyEvent, bool) {
	if k, ok := arrowFinal(seq[0]); ok {
		return 1, KeyEvent{Key: k}, true
	}

	// ESC [ 1 ; 2 X - shifted arrow
	if len(seq) >= 4 && seq[0] == '1' && seq[1] == ';' && seq[2] == '2' {
		if k, ok := arrowFinal(seq[3]); ok {
			return 4, KeyEvent{Key: k, Mod: ModShift}, true
		}
		return 0, KeyEvent{}, false
	}

	// ESC [ 3 ~ - delete
	if len(seq) >= 2 && seq[0] == '3' && seq[1] == '~' {
		return 2, KeyEvent{Key: KeyDelete}, true
	}

	return 0, KeyEvent{}, false
}

func arrowFinal(b byte) (Key, bool) {
	switch b {
	case 'A':
		return KeyUp, true
	case 'B':
		return KeyDown, true
	case 'C':
		return KeyRight, true
	case 'D':
		return KeyLeft, true
	}
	return KeyNone, false
}

// Virtual-key codes and control-key state bits of console key records
const (
	vkLeft   = 0x25
	vkUp     = 0x26
	vkRight  = 0x27
	vkDown   = 0x28
	vkDelete = 0x2e

	stateRightAlt  = 0x01
	stateLeftAlt   = 0x02
	stateRightCtrl = 0x04
	stateLeftCtrl  = 0x08
	stateShift     = 0x10
)

// KeyRecord is the platform-neutral form of a console key record
type KeyRecord struct {
	KeyDown      bool
	VirtualKey   uint16
	Char         rune
	ControlState uint32
}

// DecodeRecords translates console key records into key events
// Key-up records and bare modifier presses produce nothing
func DecodeRecords(records []KeyRecord) []KeyEvent {
	events := make([]KeyEvent, 0, len(records))

	for _, rec := range records {
		if !rec.KeyDown {
			continue
		}
		ev := decodeRecord(rec)
		if ev.Key == KeyNone {
			continue
		}
		events = append(events, ev)
	}

	return events
}

func decodeRecord(rec KeyRecord) KeyEvent {
	var ev KeyEvent
	if rec.Char > 0 && rec.Char < 0x80 {
		ev.Key = Key(rec.Char)
	}

	// One modifier per event, ctrl wins over shift wins over alt
	state := rec.ControlState
	switch {
	case state&(stateLeftCtrl|stateRightCtrl) != 0:
		ev.Mod = ModCtrl
		// Console reports ctrl+letter as the control code 1-26
		if ev.Key >= 1 && ev.Key <= 26 {
			ev.Key += 96
		}
	case state&stateShift != 0:
		ev.Mod = ModShift
	case state&(stateLeftAlt|stateRightAlt) != 0:
		ev.Mod = ModAlt
	}

	switch rec.VirtualKey {
	case vkUp:
		ev.Key = KeyUp
	case vkDown:
		ev.Key = KeyDown
	case vkLeft:
		ev.Key = KeyLeft
	case vkRight:
		ev.Key = KeyRight
	case vkDelete:
		return KeyEvent{Key: KeyDelete}
	}

	if ev.Key == '\r' {
		ev.Key = KeyEnter
	}

	return ev
}
