package colorize

import (
	"sort"
	"strings"

	"github.com/fatih/color"
)

var palette = map[string]color.Attribute{
	"black":   color.FgBlack,
	"red":     color.FgRed,
	"green":   color.FgGreen,
	"yellow":  color.FgYellow,
	"blue":    color.FgBlue,
	"magenta": color.FgMagenta,
	"cyan":    color.FgCyan,
	"white":   color.FgWhite,
}

// Names returns the supported color names, sorted, for CLI help text.
func Names() []string {
	names := make([]string, 0, len(palette))
	for name := range palette {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Apply splits the artwork's lines into one contiguous band per color and
// wraps each band's lines in that color, resetting at line end. Band size is
// line count divided by color count; the last color absorbs the remainder.
// Unknown color names are ignored; if none are known the text comes back
// unchanged.
func Apply(text string, names []string) string {
	attrs := resolve(names)
	if len(attrs) == 0 {
		return text
	}

	lines := strings.Split(text, "\n")
	band := len(lines) / len(attrs)
	if band == 0 {
		band = 1
	}

	out := make([]string, len(lines))
	for i, line := range lines {
		idx := i / band
		if idx >= len(attrs) {
			idx = len(attrs) - 1
		}
		out[i] = color.New(attrs[idx]).Sprint(line)
	}
	return strings.Join(out, "\n")
}

func resolve(names []string) []color.Attribute {
	var attrs []color.Attribute
	for _, name := range names {
		if attr, ok := palette[strings.ToLower(strings.TrimSpace(name))]; ok {
			attrs = append(attrs, attr)
		}
	}
	return attrs
}
