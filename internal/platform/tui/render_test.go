package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/happy-arcade/internal/core"
)

func TestRenderScreenKeepsGeometry(t *testing.T) {
	s := core.NewScreen(12, 3)
	s.DrawTextColored(0, 0, "Fish", core.ColorCyan)
	s.DrawText(5, 0, "Lives")
	s.DrawRectColored(core.NewRect(2, 1, 4, 2), '█', core.ColorBrown)
	s.SetColored(11, 2, '*', core.Color(200))

	lines := strings.Split(RenderScreen(s), "\n")
	require.Len(t, lines, 3)
	for y, line := range lines {
		assert.Equal(t, 12, lipgloss.Width(line), "row %d", y)
	}
	assert.Contains(t, lines[0], "Lives")
}

func TestEveryColorHasAStyle(t *testing.T) {
	for c := core.Color(0); c < core.NumColors; c++ {
		assert.NotNil(t, palette[c], "color %d", c)
	}
}
