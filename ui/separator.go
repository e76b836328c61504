package ui

// Separator is an inert rule line, drawn in the window border color and
// inset one pixel on its cross axis.
type Separator struct {
	base

	orientation Orientation
	color       Color
	thickness   int
}

// NewSeparator creates a separator. The color comes from the
// overlay.ui.colors.windowBorder setting.
func NewSeparator(u *Ui, orientation Orientation) *Separator {
	return &Separator{
		orientation: orientation,
		color:       Color(u.Settings().MustColor("overlay.ui.colors.windowBorder")),
		thickness:   1,
	}
}

func (s *Separator) PreferredWidth() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.orientation == Horizontal {
		return 20
	}
	return s.thickness + 2
}

func (s *Separator) PreferredHeight() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.orientation == Horizontal {
		return s.thickness + 2
	}
	return 20
}

func (s *Separator) Draw(offsetX, offsetY int, frame Frame) {
	s.mu.Lock()
	x := offsetX + s.x
	y := offsetY + s.y
	w, h := s.width, s.height
	orientation := s.orientation
	color := s.color
	s.mu.Unlock()

	if w == 0 || h == 0 {
		return
	}

	if orientation == Horizontal {
		y++
		h -= 2
	} else {
		x++
		w -= 2
	}

	frame.DrawRect(x, y, w, h, color)
}

// BackgroundColor panics; separators have no background.
func (s *Separator) BackgroundColor() Color {
	panic("ui: separator has no background color")
}

// SetBackgroundColor panics; separators have no background.
func (s *Separator) SetBackgroundColor(color Color) {
	panic("ui: separator has no background color")
}
