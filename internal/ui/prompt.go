package ui

import "unicode"

const maxPromptLen = 6

// Prompt is the sigma entry box. It accepts digits only; validation of the
// submitted value is left to the plane controller.
type Prompt struct {
	buf     []rune
	message string
	isError bool
}

// NewPrompt returns a prompt pre-filled with value.
func NewPrompt(value string) *Prompt {
	p := &Prompt{}
	p.Type([]rune(value))
	return p
}

// Type appends the digits among runes, ignoring everything else.
func (p *Prompt) Type(runes []rune) {
	for _, r := range runes {
		if !unicode.IsDigit(r) || len(p.buf) >= maxPromptLen {
			continue
		}
		p.buf = append(p.buf, r)
	}
}

// Backspace removes the last rune.
func (p *Prompt) Backspace() {
	if len(p.buf) > 0 {
		p.buf = p.buf[:len(p.buf)-1]
	}
}

// Value returns the current input.
func (p *Prompt) Value() string { return string(p.buf) }

// SetStatus shows a message under the prompt.
func (p *Prompt) SetStatus(msg string, isError bool) {
	p.message = msg
	p.isError = isError
}

// Status returns the message under the prompt and whether it is an error.
func (p *Prompt) Status() (string, bool) { return p.message, p.isError }
