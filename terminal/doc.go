// @focus: #sys { term }
// Package terminal draws cell canvases to a text terminal and decodes raw keyboard input.
//
// A Cell is one rune plus a Color byte: foreground in the low nibble, background
// in the high nibble, eight named colors, zero meaning "keep the active color".
// A Canvas is a rectangle of cells; Sub returns a view that shares storage with its
// parent, so nested panels draw straight into one frame.
//
// Encoder walks a canvas row by row and emits an SGR change only when the foreground
// or background actually changes, followed by the UTF-8 glyph bytes. Terminal writes
// each frame with a single write.
//
// Input is decoded per poll without blocking:
//   - DecodeBytes handles byte-stream terminals (Linux, macOS, BSDs) through Keymap
//     and a small set of escape sequences
//   - DecodeRecords handles Windows console key records
//
// Input that cannot be decoded stops the poll with a *DecodeError. Terminal logs it
// and passes it to the OnDrop hook.
//
// The Unix backend uses termios raw mode, a SIGWINCH flag and a zero-timeout poll.
// The Windows backend uses console modes and WaitForSingleObject.
package terminal
