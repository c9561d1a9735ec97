package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLabelLifecycle(t *testing.T) {
	l := NewLabel()
	assert.False(t, l.Visible())

	l.SetLabelText("(2, 0, 0)")
	l.SetLabelPosition(120, 80)
	assert.True(t, l.Visible())
	assert.Equal(t, "(2, 0, 0)", l.Text())
	x, y := l.Position()
	assert.Equal(t, 120.0, x)
	assert.Equal(t, 80.0, y)

	l.SetLabelPosition(-1, -1)
	assert.False(t, l.Visible())

	l.SetLabelPosition(10, 10)
	l.ClearLabel()
	assert.False(t, l.Visible())
	assert.Empty(t, l.Text())
}

func TestPromptAcceptsDigitsOnly(t *testing.T) {
	p := NewPrompt("12")
	p.Type([]rune("3a-.4"))
	assert.Equal(t, "1234", p.Value())

	p.Backspace()
	p.Backspace()
	assert.Equal(t, "12", p.Value())

	p.Type([]rune("99999999"))
	assert.Len(t, p.Value(), maxPromptLen)

	empty := NewPrompt("")
	empty.Backspace()
	assert.Empty(t, empty.Value())
}

func TestPromptStatus(t *testing.T) {
	p := NewPrompt("")
	p.SetStatus("invalid sigma", true)
	msg, isErr := p.Status()
	assert.Equal(t, "invalid sigma", msg)
	assert.True(t, isErr)
}
