package ui

// Label is the overlay text attached to the selected node. It records what
// the selection controller asks for; the overlay paints it each frame.
type Label struct {
	text    string
	x, y    float64
	visible bool
}

// NewLabel returns a hidden label.
func NewLabel() *Label { return &Label{} }

// SetLabelText sets the text and shows the label.
func (l *Label) SetLabelText(text string) {
	l.text = text
	l.visible = text != ""
}

// SetLabelPosition moves the label to screen coordinates.
func (l *Label) SetLabelPosition(x, y float64) {
	l.x, l.y = x, y
}

// ClearLabel hides the label and forgets its text.
func (l *Label) ClearLabel() {
	l.text = ""
	l.visible = false
}

// Text returns the current text.
func (l *Label) Text() string { return l.text }

// Position returns the screen position.
func (l *Label) Position() (x, y float64) { return l.x, l.y }

// Visible reports whether the label should be painted. Labels placed off
// screen (negative coordinates) are hidden.
func (l *Label) Visible() bool { return l.visible && l.x >= 0 && l.y >= 0 }
