package styles

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestFor_NonTerminalWriterRendersPlain(t *testing.T) {
	var buf bytes.Buffer
	s := T().For(&buf, true)

	assert.Equal(t, "Library Menu:", s.Header("Library Menu:"))
	assert.Equal(t, "added", s.Success.Render("added"))
	assert.Equal(t, "oops", s.Warning.Render("oops"))
}

func TestFor_DisabledNeverStyles(t *testing.T) {
	var buf bytes.Buffer
	s := T().For(&buf, false)

	assert.Equal(t, "Library Menu:", s.Header("Library Menu:"))
	assert.Equal(t, "x", s.Title.Render("x"))
	assert.Equal(t, "y", s.Error.Render("y"))
}

func TestPlain(t *testing.T) {
	s := Plain(&bytes.Buffer{})
	assert.Equal(t, "Goodbye", s.Muted.Render("Goodbye"))
	assert.Empty(t, s.Header(""))
}

func TestBlendColors(t *testing.T) {
	from := lipgloss.Color("#000000")
	to := lipgloss.Color("#ffffff")

	colors := blendColors(3, from, to)
	assert.Len(t, colors, 3)
	assert.NotEqual(t, colorToHex(colors[0]), colorToHex(colors[2]))

	assert.Len(t, blendColors(1, from, to), 1)
}

func TestLipglossToColor_AnsiFallsBackToGray(t *testing.T) {
	assert.Equal(t, "#808080", colorToHex(lipglossToColor(lipgloss.Color("240"))))
}
