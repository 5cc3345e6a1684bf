// @focus: #sys { io } #input { keys }
package terminal

// Key is a logical key code: the printable ASCII range, a handful of
// control characters, and four reserved arrow codes
type Key uint16

// Reserved and control key codes
const (
	KeyNone      Key = 0x00
	KeyUp        Key = 0x11
	KeyDown      Key = 0x12
	KeyLeft      Key = 0x13
	KeyRight     Key = 0x14
	KeyBackspace Key = '\b'
	KeyTab       Key = '\t'
	KeyEnter     Key = '\n'
	KeyEscape    Key = 0x1b
	KeySpace     Key = ' '
	KeyDelete    Key = 0x7f
)

// IsArrow reports whether k is one of the four reserved arrow codes
func (k Key) IsArrow() bool {
	return k >= KeyUp && k <= KeyRight
}

// Modifier is a bitset of held modifier keys
type Modifier uint8

const (
	ModNone  Modifier = 0
	ModCtrl  Modifier = 1 << 0
	ModShift Modifier = 1 << 1
	ModAlt   Modifier = 1 << 2
)

// KeyEvent is one decoded keystroke
type KeyEvent struct {
	Key Key
	Mod Modifier
}

// Matches reports whether two events are the same keystroke
// With a modifier held, letters compare case-insensitively since terminals
// disagree on whether ctrl+letter arrives upper or lower case
func (e KeyEvent) Matches(other KeyEvent) bool {
	if e.Mod != other.Mod {
		return false
	}
	if e.Key == other.Key {
		return true
	}
	return e.Mod != ModNone && upper(e.Key) == upper(other.Key)
}

// MultiModifier reports whether more than one modifier bit is set
// The decoders never produce such events, so bindings like this cannot fire
func (e KeyEvent) MultiModifier() bool {
	return e.Mod&(e.Mod-1) != 0
}

func upper(k Key) Key {
	if k >= 'a' && k <= 'z' {
		return k - 'a' + 'A'
	}
	return k
}

// Keymap translates each byte 0-127 of a byte-stream terminal into a keystroke
// Control bytes become ctrl+letter, except the ones that double as
// backspace, tab and newline; shifted symbols carry ModShift
var Keymap = [128]KeyEvent{
	0x00: {' ', ModCtrl},
	0x01: {'A', ModCtrl},
	0x02: {'B', ModCtrl},
	0x03: {'C', ModCtrl},
	0x04: {'D', ModCtrl},
	0x05: {'E', ModCtrl},
	0x06: {'F', ModCtrl},
	0x07: {'G', ModCtrl},
	0x08: {'\b', ModNone},
	0x09: {'\t', ModNone},
	0x0a: {'\n', ModNone},
	0x0b: {'K', ModCtrl},
	0x0c: {'L', ModCtrl},
	0x0d: {'M', ModCtrl},
	0x0e: {'N', ModCtrl},
	0x0f: {'O', ModCtrl},
	0x10: {'P', ModCtrl},
	0x11: {'Q', ModCtrl},
	0x12: {'R', ModCtrl},
	0x13: {'S', ModCtrl},
	0x14: {'T', ModCtrl},
	0x15: {'U', ModCtrl},
	0x16: {'V', ModCtrl},
	0x17: {'W', ModCtrl},
	0x18: {'X', ModCtrl},
	0x19: {'Y', ModCtrl},
	0x1a: {'Z', ModCtrl},
	0x1b: {KeyEscape, ModNone},
	0x1c: {0x1c, ModNone},
	0x1d: {0x1d, ModNone},
	0x1e: {0x1e, ModNone},
	0x1f: {0x1f, ModNone},

	' ':  {' ', ModNone},
	'!':  {'!', ModShift},
	'"':  {'"', ModShift},
	'#':  {'#', ModNone},
	'$':  {'$', ModShift},
	'%':  {'%', ModShift},
	'&':  {'&', ModShift},
	'\'': {'\'', ModNone},
	'(':  {'(', ModShift},
	')':  {')', ModShift},
	'*':  {'*', ModShift},
	'+':  {'+', ModShift},
	',':  {',', ModNone},
	'-':  {'-', ModNone},
	'.':  {'.', ModNone},
	'/':  {'/', ModNone},
	'0':  {'0', ModNone},
	'1':  {'1', ModNone},
	'2':  {'2', ModNone},
	'3':  {'3', ModNone},
	'4':  {'4', ModNone},
	'5':  {'5', ModNone},
	'6':  {'6', ModNone},
	'7':  {'7', ModNone},
	'8':  {'8', ModNone},
	'9':  {'9', ModNone},
	':':  {':', ModShift},
	';':  {';', ModNone},
	'<':  {'<', ModShift},
	'=':  {'=', ModNone},
	'>':  {'>', ModShift},
	'?':  {'?', ModShift},
	'@':  {'@', ModShift},
	'A':  {'A', ModShift},
	'B':  {'B', ModShift},
	'C':  {'C', ModShift},
	'D':  {'D', ModShift},
	'E':  {'E', ModShift},
	'F':  {'F', ModShift},
	'G':  {'G', ModShift},
	'H':  {'H', ModShift},
	'I':  {'I', ModShift},
	'J':  {'J', ModShift},
	'K':  {'K', ModShift},
	'L':  {'L', ModShift},
	'M':  {'M', ModShift},
	'N':  {'N', ModShift},
	'O':  {'O', ModShift},
	'P':  {'P', ModShift},
	'Q':  {'Q', ModShift},
	'R':  {'R', ModShift},
	'S':  {'S', ModShift},
	'T':  {'T', ModShift},
	'U':  {'U', ModShift},
	'V':  {'V', ModShift},
	'W':  {'W', ModShift},
	'X':  {'X', ModShift},
	'Y':  {'Y', ModShift},
	'Z':  {'Z', ModShift},
	'[':  {'[', ModNone},
	'\\': {'\\', ModNone},
	']':  {']', ModNone},
	'^':  {'^', ModShift},
	'_':  {'_', ModShift},
	'`':  {'`', ModNone},
	'a':  {'a', ModNone},
	'b':  {'b', ModNone},
	'c':  {'c', ModNone},
	'd':  {'d', ModNone},
	'e':  {'e', ModNone},
	'f':  {'f', ModNone},
	'g':  {'g', ModNone},
	'h':  {'h', ModNone},
	'i':  {'i', ModNone},
	'j':  {'j', ModNone},
	'k':  {'k', ModNone},
	'l':  {'l', ModNone},
	'm':  {'m', ModNone},
	'n':  {'n', ModNone},
	'o':  {'o', ModNone},
	'p':  {'p', ModNone},
	'q':  {'q', ModNone},
	'r':  {'r', ModNone},
	's':  {'s', ModNone},
	't':  {'t', ModNone},
	'u':  {'u', ModNone},
	'v':  {'v', ModNone},
	'w':  {'w', ModNone},
	'x':  {'x', ModNone},
	'y':  {'y', ModNone},
	'z':  {'z', ModNone},
	'{':  {'{', ModShift},
	'|':  {'|', ModShift},
	'}':  {'}', ModShift},
	'~':  {'~', ModShift},
	0x7f: {'\b', ModNone},
}
