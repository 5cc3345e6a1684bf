// @focus: #terminal { cell }
package terminal

// Coord is a column/row pair, used both for positions and for sizes
// A negative axis in a size query means "unbounded"
type Coord struct {
	X, Y int
}

// Unbounded marks an axis with no maximum in MaxSize results
const Unbounded = -1

// Color packs a foreground nibble (low 4 bits) and a background nibble (high 4 bits)
// A zero nibble inherits whatever color is currently active
type Color uint8

const (
	FgBlack   Color = 0x01
	FgRed     Color = 0x02
	FgGreen   Color = 0x04
	FgBlue    Color = 0x08
	FgYellow  Color = FgRed | FgGreen
	FgMagenta Color = FgRed | FgBlue
	FgCyan    Color = FgGreen | FgBlue
	FgGray    Color = FgRed | FgGreen | FgBlue
	FgWhite   Color = 0x0F

	BgBlack   Color = FgBlack << 4
	BgRed     Color = FgRed << 4
	BgGreen   Color = FgGreen << 4
	BgBlue    Color = FgBlue << 4
	BgYellow  Color = FgYellow << 4
	BgMagenta Color = FgMagenta << 4
	BgCyan    Color = FgCyan << 4
	BgGray    Color = FgGray << 4
	BgWhite   Color = FgWhite << 4

	fgMask Color = 0x0F
	bgMask Color = 0xF0
)

// Shared color pairs used by widgets
const (
	DefaultColor   = FgWhite | BgBlack
	HighlightColor = FgBlack | BgWhite
	UnfocusedColor = FgBlack | BgGray
)

// Fg returns the foreground nibble
func (c Color) Fg() Color { return c & fgMask }

// Bg returns the background nibble, still in the high position
func (c Color) Bg() Color { return c & bgMask }

// Cell is one terminal character position
type Cell struct {
	Rune  rune
	Color Color
}

// DefaultCell is a blank white-on-black cell
var DefaultCell = Cell{Rune: ' ', Color: DefaultColor}

// Glyph repertoire for box drawing, shading and indicators
const (
	GlyphBlock      = '█'
	GlyphBlock1_8   = '▁'
	GlyphBlock3_8   = '▃'
	GlyphBlock6_8   = '▆'
	GlyphLightShade = '░'
	GlyphMidShade   = '▒'
	GlyphDarkShade  = '▓'

	GlyphBoxTopLeft     = '┏'
	GlyphBoxHorizontal  = '━'
	GlyphBoxTopRight    = '┓'
	GlyphBoxVertical    = '┃'
	GlyphBoxBottomLeft  = '┗'
	GlyphBoxBottomRight = '┛'

	GlyphQuadrantLowerLeft     = '▖'
	GlyphQuadrantTopLeft       = '▘'
	GlyphQuadrantTopRight      = '▝'
	GlyphQuadrantLowerRight    = '▗'
	GlyphQuadrantTop           = '▀'
	GlyphQuadrantLower         = '▄'
	GlyphQuadrantLeft          = '▌'
	GlyphQuadrantRight         = '▐'
	GlyphQuadrantLeading       = '▚'
	GlyphQuadrantTrailing      = '▞'
	GlyphQuadrantLowerLeftInv  = '▜'
	GlyphQuadrantTopLeftInv    = '▟'
	GlyphQuadrantTopRightInv   = '▙'
	GlyphQuadrantLowerRightInv = '▛'

	GlyphLightUp              = '╵'
	GlyphLightUpRight         = '└'
	GlyphLightUpRightDown     = '├'
	GlyphLightUpRightDownLeft = '┼'
	GlyphLightVertical        = '│'
	GlyphLightHorizontal      = '─'

	GlyphMiddleDot          = '·'
	GlyphNot                = '¬'
	GlyphCircleHollow       = '⌾'
	GlyphCircleFilled       = '⊙'
	GlyphEllipsisHorizontal = '…'
	GlyphEllipsisVertical   = '⋮'
)
