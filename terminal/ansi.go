// @focus: #terminal { ansi }
package terminal

// Pre-allocated ANSI sequence fragments (avoid allocations during render)
var (
	csi            = []byte("\x1b[")
	csiSGR0        = []byte("\x1b[0m")
	csiClear       = []byte("\x1b[2J")
	csiClearScroll = []byte("\x1b[3J")
	csiHome        = []byte("\x1b[H")
	csiRIS         = []byte("\x1bc") // Reset to Initial State (emergency)
	csiCursorHide  = []byte("\x1b[?25l")
	csiCursorShow  = []byte("\x1b[?25h")
	oscTitle       = []byte("\x1b]0;")
	oscTerminator  = []byte("\x07")

	// Screen modes
	csiAltScreenEnter = []byte("\x1b[?1049h")
	csiAltScreenExit  = []byte("\x1b[?1049l")
	// DECAWM: Auto-Wrap Mode
	// ?7l disables wrapping, preventing scroll when writing to bottom-right corner
	csiAutoWrapOn  = []byte("\x1b[?7h")
	csiAutoWrapOff = []byte("\x1b[?7l")
)

// fgCodes maps a foreground nibble to its SGR parameter, 0 = no code
// Bright variants are used for every color except black, matching common 16-color palettes
var fgCodes = [16]uint8{
	FgBlack:   30,
	FgRed:     91,
	FgGreen:   92,
	FgYellow:  93,
	FgBlue:    94,
	FgMagenta: 95,
	FgCyan:    96,
	FgGray:    90,
	FgWhite:   97,
}

// sgrForeground returns the SGR parameter for the foreground half of c
func sgrForeground(c Color) (int, bool) {
	code := fgCodes[c.Fg()]
	return int(code), code != 0
}

// sgrBackground returns the SGR parameter for the background half of c
// Background codes sit 10 above their foreground counterparts
func sgrBackground(c Color) (int, bool) {
	code := fgCodes[c.Bg()>>4]
	return int(code) + 10, code != 0
}

// appendInt appends a decimal integer without allocation
// Optimized for terminal values (0-255 common, 0-999 typical max)
func appendInt(b []byte, n int) []byte {
	if n < 0 {
		n = 0
	}
	if n < 10 {
		return append(b, byte(n)+'0')
	}
	if n < 100 {
		return append(b, byte(n/10)+'0', byte(n%10)+'0')
	}
	if n < 1000 {
		return append(b, byte(n/100)+'0', byte(n/10%10)+'0', byte(n%10)+'0')
	}
	// Fallback for >999 (rare)
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte(n%10) + '0'
		n /= 10
	}
	return append(b, buf[i:]...)
}

// appendSGR appends a single-parameter select-graphic-rendition sequence
func appendSGR(b []byte, code int) []byte {
	b = append(b, csi...)
	b = appendInt(b, code)
	return append(b, 'm')
}

// appendCursorPos appends a cursor positioning sequence (0-indexed input)
func appendCursorPos(b []byte, x, y int) []byte {
	b = append(b, csi...)
	b = appendInt(b, y+1)
	b = append(b, ';')
	b = appendInt(b, x+1)
	return append(b, 'H')
}

// appendTitle appends a window title sequence, dropping control bytes from title
func appendTitle(b []byte, title string) []byte {
	b = append(b, oscTitle...)
	for i := 0; i < len(title); i++ {
		if title[i] >= 0x20 && title[i] != 0x7f {
			b = append(b, title[i])
		}
	}
	return append(b, oscTerminator...)
}
