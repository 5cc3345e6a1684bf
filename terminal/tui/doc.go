// Package tui composes widget trees into terminal frames and routes key events back to them.
//
// Core abstraction is Widget: a panel that renders into a terminal.Canvas of a negotiated
// size and reports its minimum and maximum size. Containers (Row, Column, BorderedBox,
// SizeLimiter) render their children into sub-views of their own canvas, so one frame
// uses one cell buffer.
//
// Design principles:
//   - Size negotiation: containers grant minimums first, then share leftover space one
//     cell at a time, round-robin, up to each child's maximum
//   - Free drawing helpers: DrawText, DrawBox and friends operate on any canvas
//   - Explicit context: shortcut callbacks receive a *Context instead of reaching for globals
//
// Usage pattern:
//
//	term := terminal.New(logger)
//	term.Configure("demo")
//	defer term.Restore()
//
//	r := tui.NewRenderer(term, term, logger)
//	page := tui.NewPage(r)
//	page.SetRoot(tui.NewColumn(tui.NewLabel("hello", tui.AlignCenter), tui.NewButton("Quit", quit)))
//
//	for running {
//	    page.CheckInput()
//	    page.Render()
//	    page.Framerate(30)
//	}
package tui
