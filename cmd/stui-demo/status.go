package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	okMark   = color.New(color.FgGreen).SprintFunc()
	warnMark = color.New(color.FgYellow).SprintFunc()
	failMark = color.New(color.FgRed, color.Bold).SprintFunc()
	dimText  = color.New(color.Faint).SprintFunc()
)

type checkLevel int

const (
	levelOK checkLevel = iota
	levelWarn
	levelFail
)

// statusLine prints one "✓ label  detail" line
func statusLine(w io.Writer, level checkLevel, label, detail string) {
	var mark string
	switch level {
	case levelOK:
		mark = okMark("✓")
	case levelWarn:
		mark = warnMark("!")
	default:
		mark = failMark("✗")
	}
	fmt.Fprintf(w, "%s %-10s %s\n", mark, label, dimText(detail))
}
