package ui

import (
	"github.com/agiangrant/overlay/input"
)

const (
	// scrollBarSize is the gutter thickness reserved on the right and
	// bottom edges for the scroll bars.
	scrollBarSize = 10

	// scrollWheelStep is how many pixels one wheel notch scrolls.
	scrollWheelStep = 20
)

// ScrollView shows a child at its preferred size through a smaller viewport,
// with right and bottom scroll bars. The view offset follows the mouse wheel
// and thumb drags; it is clamped against the child's size during draw, so an
// offset may be momentarily out of range between events.
//
// Preferred sizes are zero. A scroll view takes whatever space its parent
// assigns and never drives layout.
type ScrollView struct {
	base

	ui *Ui

	child Element

	dispX int
	dispY int

	thumb          Color
	thumbHighlight Color
	trackBG        Color

	childWidth  int
	childHeight int

	lastDragX int
	lastDragY int

	dragVert       bool
	vertHover      bool
	vertThumbSize  int
	vertThumbPos   int
	vertMoveFactor float64

	dragHoriz       bool
	horizHover      bool
	horizThumbSize  int
	horizThumbPos   int
	horizMoveFactor float64

	lastScissor Rect
}

// NewScrollView builds a scroll view styled from the ui's settings.
func NewScrollView(u *Ui) *ScrollView {
	st := u.Settings()
	return &ScrollView{
		ui:             u,
		thumb:          Color(st.MustColor("overlay.ui.colors.scrollThumb")),
		thumbHighlight: Color(st.MustColor("overlay.ui.colors.scrollThumbHighlight")),
		trackBG:        Color(st.MustColor("overlay.ui.colors.scrollBG")),
	}
}

// SetChild sets the element scrolled by the view.
func (s *ScrollView) SetChild(child Element) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.child = child
}

// ScrollOffset returns the current view offset.
func (s *ScrollView) ScrollOffset() (x, y int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dispX, s.dispY
}

// SetScrollOffset moves the view offset. Out-of-range values are clamped
// at the next draw.
func (s *ScrollView) SetScrollOffset(x, y int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dispX = x
	s.dispY = y
}

func (s *ScrollView) PreferredWidth() int { return 0 }

func (s *ScrollView) PreferredHeight() int { return 0 }

func (s *ScrollView) Draw(offsetX, offsetY int, frame Frame) {
	s.mu.Lock()
	child := s.child
	s.mu.Unlock()

	if child == nil {
		return
	}

	scissor := frame.Scissor()
	s.mu.Lock()
	s.lastScissor = scissor
	s.mu.Unlock()
	s.ui.AddInputElement(s, offsetX, offsetY, scissor)

	cw := child.PreferredWidth()
	ch := child.PreferredHeight()

	s.mu.Lock()
	sx := s.x + offsetX
	sy := s.y + offsetY
	w := s.width
	h := s.height
	s.childWidth = cw
	s.childHeight = ch
	s.mu.Unlock()

	maxDispX := cw - w + scrollBarSize
	maxDispY := ch - h + scrollBarSize

	if frame.PushScissor(sx, sy, sx+w-scrollBarSize, sy+h-scrollBarSize) {
		child.SetWidth(cw)
		child.SetHeight(ch)

		s.mu.Lock()
		if s.dispX < 0 {
			s.dispX = 0
		}
		if cw > w-scrollBarSize {
			if s.dispX > maxDispX {
				s.dispX = maxDispX
			}
		} else {
			s.dispX = 0
		}
		if s.dispY < 0 {
			s.dispY = 0
		}
		if ch > h-scrollBarSize {
			if s.dispY > maxDispY {
				s.dispY = maxDispY
			}
		} else {
			s.dispY = 0
		}
		cx := sx - s.dispX
		cy := sy - s.dispY
		s.mu.Unlock()

		child.Draw(cx, cy, frame)
		frame.PopScissor()
	}

	s.mu.Lock()
	trackBG := s.trackBG

	vertColor := s.thumb
	if s.vertHover {
		vertColor = s.thumbHighlight
	}
	horizColor := s.thumb
	if s.horizHover {
		horizColor = s.thumbHighlight
	}

	var drawVert, drawHoriz bool
	var vertPos, vertSize, horizPos, horizSize int

	if ch > h-scrollBarSize {
		// The visible share of the child sets the thumb size; the rest of
		// the track maps linearly onto the scrollable range.
		factor := float64(h-scrollBarSize) / float64(ch)
		if factor > 1 {
			factor = 1
		}
		s.vertThumbSize = int(factor * float64(h-scrollBarSize))
		maxPos := h - scrollBarSize - s.vertThumbSize
		s.vertThumbPos = int(float64(s.dispY) / float64(maxDispY) * float64(maxPos))
		s.vertMoveFactor = float64(maxDispY) / float64(maxPos)

		drawVert = true
		vertPos = s.vertThumbPos
		vertSize = s.vertThumbSize
	}

	if cw > w-scrollBarSize {
		factor := float64(w-scrollBarSize) / float64(cw)
		if factor > 1 {
			factor = 1
		}
		s.horizThumbSize = int(factor * float64(w-scrollBarSize))
		maxPos := w - scrollBarSize - s.horizThumbSize
		s.horizThumbPos = int(float64(s.dispX) / float64(maxDispX) * float64(maxPos))
		s.horizMoveFactor = float64(maxDispX) / float64(maxPos)

		drawHoriz = true
		horizPos = s.horizThumbPos
		horizSize = s.horizThumbSize
	}
	s.mu.Unlock()

	frame.DrawRect(sx+w-scrollBarSize, sy, scrollBarSize, h-scrollBarSize, trackBG)
	frame.DrawRect(sx, sy+h-scrollBarSize, w-scrollBarSize, scrollBarSize, trackBG)

	if drawVert {
		frame.DrawRect(sx+w-scrollBarSize, sy+vertPos, scrollBarSize, vertSize, vertColor)
	}
	if drawHoriz {
		frame.DrawRect(sx+horizPos, sy+h-scrollBarSize, horizSize, scrollBarSize, horizColor)
	}
}

func (s *ScrollView) ProcessMouseEvent(offsetX, offsetY int, ev *input.MouseEvent) bool {
	switch ev.Kind {
	case input.EventMouseWheel:
		s.mu.Lock()
		if ev.Horizontal {
			s.dispX += ev.Value * scrollWheelStep
		} else {
			s.dispY -= ev.Value * scrollWheelStep
		}
		s.mu.Unlock()
		return true

	case input.EventMouseMove:
		s.mu.Lock()
		if s.child != nil {
			switch {
			case s.dragVert:
				delta := ev.Y - s.lastDragY
				s.dispY += int(float64(delta) * s.vertMoveFactor)
				s.lastDragX = ev.X
				s.lastDragY = ev.Y
			case s.dragHoriz:
				delta := ev.X - s.lastDragX
				s.dispX += int(float64(delta) * s.horizMoveFactor)
				s.lastDragX = ev.X
				s.lastDragY = ev.Y
			default:
				s.hoverVert(offsetX, offsetY, ev.X, ev.Y)
				s.hoverHoriz(offsetX, offsetY, ev.X, ev.Y)
			}
		}
		s.mu.Unlock()
		return true

	case input.EventMouseButton:
		if ev.Button != input.MouseButtonLeft {
			return false
		}
		if ev.Down {
			s.mu.Lock()
			if !s.dragVert && !s.dragHoriz && (s.vertHover || s.horizHover) {
				s.dragVert = s.vertHover
				s.dragHoriz = s.horizHover
				s.lastDragX = ev.X
				s.lastDragY = ev.Y
				scissor := s.lastScissor
				s.mu.Unlock()
				s.ui.SetMouseCapture(s, offsetX, offsetY, scissor)
				return true
			}
			s.mu.Unlock()
			return false
		}
		s.mu.Lock()
		if s.dragVert || s.dragHoriz {
			s.dragVert = false
			s.dragHoriz = false
			s.hoverVert(offsetX, offsetY, ev.X, ev.Y)
			s.hoverHoriz(offsetX, offsetY, ev.X, ev.Y)
			s.mu.Unlock()
			s.ui.ClearMouseCapture()
			return true
		}
		s.mu.Unlock()
		return false

	case input.EventMouseLeave:
		s.mu.Lock()
		if !s.dragVert {
			s.vertHover = false
		}
		if !s.dragHoriz {
			s.horizHover = false
		}
		s.mu.Unlock()
		return true
	}

	return false
}

// hoverVert updates the vertical thumb hover state against the mouse
// position. Callers hold s.mu.
func (s *ScrollView) hoverVert(offsetX, offsetY, mx, my int) {
	left := s.x + offsetX + s.width - scrollBarSize
	right := left + scrollBarSize
	top := s.y + offsetY + s.vertThumbPos
	bottom := top + s.vertThumbSize

	s.vertHover = mx >= left && mx <= right && my >= top && my <= bottom
}

// hoverHoriz updates the horizontal thumb hover state against the mouse
// position. Callers hold s.mu.
func (s *ScrollView) hoverHoriz(offsetX, offsetY, mx, my int) {
	left := s.x + offsetX + s.horizThumbPos
	right := left + s.horizThumbSize
	top := s.y + offsetY + s.height - scrollBarSize
	bottom := top + scrollBarSize

	s.horizHover = mx >= left && mx <= right && my >= top && my <= bottom
}
