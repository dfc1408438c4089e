package tui

import (
	"strings"
)

const uiDivider = "──────────────────────────────────────────────────────"

// hexWrapWidth is the line width of wrapped ciphertext and nonce values.
const hexWrapWidth = 64

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		for _, line := range strings.Split(data, "\n") {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString("  ")
	b.WriteString(helpStyle.Render("ctrl+c: quit"))

	return appStyle.Render(b.String())
}

// wrapHex splits a long hex string into lines of hexWrapWidth characters.
func wrapHex(v string) []string {
	if v == "" {
		return []string{""}
	}
	lines := make([]string, 0, len(v)/hexWrapWidth+1)
	for len(v) > hexWrapWidth {
		lines = append(lines, v[:hexWrapWidth])
		v = v[hexWrapWidth:]
	}
	return append(lines, v)
}
