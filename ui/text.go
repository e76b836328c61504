package ui

import "strings"

// Text is a static text block. It takes no input. Tabs expand to four
// spaces and newlines split the text into lines.
type Text struct {
	base

	font  Font
	color Color

	text  string
	lines []string

	prefWidth  int
	prefHeight int
}

// NewText creates a text block drawn with the given color and font.
func NewText(text string, color Color, font Font) *Text {
	t := &Text{font: font, color: color}
	t.setTextLocked(text)
	return t
}

// Text returns the current text, tabs already expanded.
func (t *Text) Text() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.text
}

// SetText replaces the text and recomputes the preferred size.
func (t *Text) SetText(text string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.setTextLocked(text)
}

// SetColor changes the text color.
func (t *Text) SetColor(color Color) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.color = color
}

func (t *Text) setTextLocked(text string) {
	t.text = strings.ReplaceAll(text, "\t", "    ")
	t.lines = strings.Split(t.text, "\n")

	t.prefWidth = 0
	for _, line := range t.lines {
		if w := t.font.TextWidth(line); w > t.prefWidth {
			t.prefWidth = w
		}
	}
	t.prefHeight = t.font.LineSpacing() * len(t.lines)
}

func (t *Text) PreferredWidth() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.prefWidth
}

func (t *Text) PreferredHeight() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.prefHeight
}

func (t *Text) Draw(offsetX, offsetY int, frame Frame) {
	t.mu.Lock()
	x := offsetX + t.x
	y := offsetY + t.y
	width, height := t.width, t.height
	lines := t.lines
	color := t.color
	font := t.font
	t.mu.Unlock()

	if !frame.PushScissor(x, y, x+width+1, y+height+1) {
		return
	}
	spacing := font.LineSpacing()
	for _, line := range lines {
		font.RenderText(frame, x, y, line, color)
		y += spacing
	}
	frame.PopScissor()
}
