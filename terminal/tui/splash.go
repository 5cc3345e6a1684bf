package tui

import "time"

// splashCredit is appended under every splash text
const splashCredit = "stui: simple text UI"

// ShowSplash renders text centered in a full-screen frame and holds it for d
func ShowSplash(r *Renderer, text string, d time.Duration) error {
	banner := NewBanner(text + "\n\nusing\n" + splashCredit)
	if err := r.Render(NewBorderedBox(banner, "")); err != nil {
		return err
	}
	if d > 0 {
		sleep(d)
	}
	return nil
}
