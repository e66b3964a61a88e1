package tui

import (
	"fmt"
	"strings"
)

const uiDivider = "──────────────────────────────────────────────────────"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		lines := strings.Split(data, "\n")
		for _, line := range lines {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString("  ctrl+c: salir")

	return b.String()
}

func checkbox(on bool) string {
	if on {
		return "[x]"
	}
	return "[ ]"
}

// slider draws value on a fixed-width bar between lo and hi.
func slider(value, lo, hi, width int) string {
	if hi <= lo || width <= 0 {
		return fmt.Sprintf("%d", value)
	}
	filled := (value - lo) * width / (hi - lo)
	filled = min(max(filled, 0), width)
	return fmt.Sprintf("◀ %s%s ▶ %d", strings.Repeat("█", filled), strings.Repeat("░", width-filled), value)
}

// fitText shortens v to max runes and flattens line breaks.
func fitText(v string, max int) string {
	v = strings.ReplaceAll(v, "\n", " ⏎ ")
	r := []rune(v)
	if max <= 0 || len(r) <= max {
		return v
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

func orDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}
