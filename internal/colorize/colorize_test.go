package colorize

import (
	"fmt"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyBands(t *testing.T) {
	color.NoColor = false

	// 9 lines, 2 colors: band size 4, the last color absorbs the remainder
	lines := make([]string, 9)
	for i := range lines {
		lines[i] = fmt.Sprintf("line%d", i)
	}
	out := Apply(strings.Join(lines, "\n"), []string{"red", "green"})

	got := strings.Split(out, "\n")
	require.Len(t, got, 9)

	red := fmt.Sprintf("\x1b[%dm", color.FgRed)
	green := fmt.Sprintf("\x1b[%dm", color.FgGreen)
	for i := 0; i < 4; i++ {
		assert.True(t, strings.HasPrefix(got[i], red), "line %d should be red: %q", i, got[i])
	}
	for i := 4; i < 9; i++ {
		assert.True(t, strings.HasPrefix(got[i], green), "line %d should be green: %q", i, got[i])
	}
	for i, line := range got {
		assert.True(t, strings.HasSuffix(line, "\x1b[0m"), "line %d should reset: %q", i, line)
	}
}

func TestApplyMoreColorsThanLines(t *testing.T) {
	color.NoColor = false

	out := Apply("only", []string{"red", "green", "blue"})
	red := fmt.Sprintf("\x1b[%dm", color.FgRed)
	assert.True(t, strings.HasPrefix(out, red))
}

func TestApplyUnknownColorsIgnored(t *testing.T) {
	color.NoColor = false

	out := Apply("a\nb", []string{"sparkle", "red"})
	red := fmt.Sprintf("\x1b[%dm", color.FgRed)
	assert.True(t, strings.HasPrefix(out, red))
}

func TestApplyAllUnknownUnmodified(t *testing.T) {
	text := "a\nb\nc"
	assert.Equal(t, text, Apply(text, []string{"sparkle", "glitter"}))
	assert.Equal(t, text, Apply(text, nil))
}
