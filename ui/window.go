package ui

import (
	"github.com/agiangrant/overlay/input"
	"github.com/agiangrant/overlay/settings"
)

// Window is a top-level surface with a caption bar, a movable and optionally
// resizable frame, and a single child filling the content area. Dragging the
// titlebar moves the window; dragging the left, right or bottom border
// resizes it when resizable. A window bound to a settings subtree restores
// its geometry on bind and saves it whenever a drag ends or its size
// changes.
//
// A window that is not resizable sizes itself to its child's preferred size
// each draw. Windows consume every mouse event they receive.
type Window struct {
	base

	ui *Ui

	caption string

	minWidth  int
	minHeight int

	titlebarHeight int

	resizable    bool
	showTitlebar bool

	titlebarBox *Box

	hoverTitlebar bool
	hoverRight    bool
	hoverLeft     bool
	hoverBottom   bool

	moving   bool
	resizing bool

	moveLastX int
	moveLastY int

	bg              Color
	border          Color
	borderHighlight Color

	child Element

	settings     *settings.Store
	settingsPath string

	lastScissor Rect

	events bool
}

// NewWindow builds a hidden window with the given caption, styled from the
// ui's settings. Show puts it on screen.
func NewWindow(u *Ui, caption string) *Window {
	st := u.Settings()
	w := &Window{
		ui:              u,
		caption:         caption,
		titlebarHeight:  u.Font().LineSpacing() + 2,
		showTitlebar:    true,
		titlebarBox:     NewBox(Horizontal),
		bg:              Color(st.MustColor("overlay.ui.colors.windowBG")),
		border:          Color(st.MustColor("overlay.ui.colors.windowBorder")),
		borderHighlight: Color(st.MustColor("overlay.ui.colors.windowBorderHighlight")),
		events:          true,
	}
	w.width = 10
	w.height = 10
	return w
}

// Caption returns the titlebar text.
func (w *Window) Caption() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.caption
}

// SetCaption sets the titlebar text.
func (w *Window) SetCaption(caption string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.caption = caption
}

// SetChild sets the element filling the window's content area.
func (w *Window) SetChild(child Element) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.child = child
}

// Show puts the window on screen as a top-level element.
func (w *Window) Show() {
	w.ui.AddTopLevelElement(w)
}

// Hide takes the window off screen.
func (w *Window) Hide() {
	w.ui.RemoveTopLevelElement(w)
}

// SetResizable controls whether the user can drag the window borders. A
// window that is not resizable follows its child's preferred size instead.
func (w *Window) SetResizable(resizable bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.resizable = resizable
}

// SetPosition moves the window.
func (w *Window) SetPosition(x, y int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.x = x
	w.y = y
}

// SetShowTitlebar controls whether the caption bar is drawn. Without it the
// window cannot be moved by the mouse.
func (w *Window) SetShowTitlebar(show bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.showTitlebar = show
}

// SetMinWidth sets the smallest width a resize drag can reach.
func (w *Window) SetMinWidth(width int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.minWidth = width
}

// SetMinHeight sets the smallest height a resize drag can reach.
func (w *Window) SetMinHeight(height int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.minHeight = height
}

// SetEvents controls whether the window takes mouse input at all. With
// events off the window still draws but clicks pass through it.
func (w *Window) SetEvents(events bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.events = events
}

// TitlebarBox returns the horizontal box drawn at the right end of the
// titlebar, for window-level controls.
func (w *Window) TitlebarBox() *Box {
	return w.titlebarBox
}

// BindSettings ties the window geometry to a settings subtree, immediately
// restoring the values stored under prefix.x, .y, .width and .height.
// Callers register defaults for those keys first.
func (w *Window) BindSettings(st *settings.Store, prefix string) {
	w.mu.Lock()
	w.settings = st
	w.settingsPath = prefix
	w.mu.Unlock()

	w.updateFromSettings()
}

// BackgroundColor returns the window background color.
func (w *Window) BackgroundColor() Color {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.bg
}

// SetBackgroundColor sets the window background color.
func (w *Window) SetBackgroundColor(color Color) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.bg = color
}

func (w *Window) PreferredWidth() int { return 0 }

func (w *Window) PreferredHeight() int { return 0 }

func (w *Window) Draw(offsetX, offsetY int, frame Frame) {
	w.mu.Lock()
	child := w.child
	resizable := w.resizable
	showTitlebar := w.showTitlebar
	titlebarHeight := w.titlebarHeight
	origWidth := w.width
	origHeight := w.height
	minW := w.minWidth
	minH := w.minHeight
	w.mu.Unlock()

	var childWidth, childHeight int
	if !resizable && child != nil {
		childWidth = child.PreferredWidth()
		childHeight = child.PreferredHeight()
	}

	w.mu.Lock()
	if !resizable && child != nil {
		w.width = childWidth + 4
		if showTitlebar {
			w.height = childHeight + titlebarHeight + 3
		} else {
			w.height = childHeight + 4
		}
	} else {
		childWidth = w.width
		childHeight = w.height
	}

	if minW > 0 && w.width < minW {
		w.width = minW
	}
	if minH > 0 && w.height < minH {
		w.height = minH
	}
	width := w.width
	height := w.height
	w.mu.Unlock()

	if child != nil {
		child.SetWidth(width - 4)
		if showTitlebar {
			child.SetHeight(height - titlebarHeight - 3)
		} else {
			child.SetHeight(height - 4)
		}
	}

	scissor := frame.Scissor()
	w.mu.Lock()
	w.lastScissor = scissor
	events := w.events
	w.mu.Unlock()

	if events {
		w.ui.AddInputElement(w, offsetX, offsetY, scissor)
	}

	w.drawDecorations(offsetX, offsetY, frame)

	if child != nil {
		// drawDecorations may have grown the titlebar to fit its box, so
		// the content origin reads the fresh height.
		w.mu.Lock()
		x := w.x
		y := w.y
		tbh := w.titlebarHeight
		w.mu.Unlock()

		coffx := offsetX + x + 2
		coffy := offsetY + y + 2
		if showTitlebar {
			coffy = offsetY + y + tbh
		}

		if frame.PushScissor(coffx, coffy, coffx+childWidth, coffy+childHeight) {
			child.Draw(coffx, coffy, frame)
			frame.PopScissor()
		}
	}

	w.mu.Lock()
	resized := w.width != origWidth || w.height != origHeight
	w.mu.Unlock()
	if resized {
		w.saveToSettings()
	}
}

func (w *Window) drawDecorations(offsetX, offsetY int, frame Frame) {
	w.mu.Lock()
	winX := offsetX + w.x
	winY := offsetY + w.y
	winW := w.width
	winH := w.height
	bg := w.bg
	border := w.border
	highlight := w.borderHighlight

	titleColor := border
	if w.hoverTitlebar {
		titleColor = highlight
	}
	leftColor := border
	if w.hoverLeft {
		leftColor = highlight
	}
	rightColor := border
	if w.hoverRight {
		rightColor = highlight
	}
	bottomColor := border
	if w.hoverBottom {
		bottomColor = highlight
	}

	leftWidth := 1
	if w.hoverLeft {
		leftWidth = 3
	}
	rightWidth := 1
	if w.hoverRight {
		rightWidth = 3
	}
	bottomWidth := 1
	if w.hoverBottom {
		bottomWidth = 3
	}

	showTitlebar := w.showTitlebar
	caption := w.caption
	w.mu.Unlock()

	frame.DrawRect(winX, winY, winW, winH, bg)

	frame.DrawRect(winX, winY, leftWidth, winH, leftColor)
	frame.DrawRect(winX, winY+winH-bottomWidth, winW, bottomWidth, bottomColor)
	frame.DrawRect(winX+winW-rightWidth, winY, rightWidth, winH, rightColor)

	if !showTitlebar {
		frame.DrawRect(winX, winY, winW, 1, titleColor)
		return
	}

	boxW := w.titlebarBox.PreferredWidth()
	boxH := w.titlebarBox.PreferredHeight()

	font := w.ui.Font()
	tbh := font.LineSpacing() + 2
	if boxW > 0 && boxH+2 > tbh {
		tbh = boxH + 2
	}
	w.mu.Lock()
	w.titlebarHeight = tbh
	w.mu.Unlock()

	frame.DrawRect(winX, winY, winW, tbh, titleColor)

	capX := winX + 3
	capY := winY + 1
	capW := winW - 6
	capH := tbh

	if frame.PushScissor(capX, capY, capX+capW, capY+capH) {
		textY := capY + int(float64(capH)/2.0) - int(float64(font.LineSpacing())/2.0)
		font.RenderText(frame, capX, textY, caption, Color(0xFFFFFFFF))

		if boxW > 0 {
			if boxW > capW {
				boxW = capW
			}
			w.titlebarBox.SetWidth(boxW)
			w.titlebarBox.SetHeight(boxH)

			w.titlebarBox.Draw(capX+capW-boxW-1, capY, frame)
		}

		frame.PopScissor()
	}
}

func (w *Window) ProcessMouseEvent(offsetX, offsetY int, ev *input.MouseEvent) bool {
	switch ev.Kind {
	case input.EventMouseMove:
		return w.onMouseMove(offsetX, offsetY, ev)
	case input.EventMouseLeave:
		return w.onMouseLeave()
	case input.EventMouseButton:
		return w.onMouseButton(offsetX, offsetY, ev)
	}
	return true
}

func (w *Window) onMouseMove(offsetX, offsetY int, ev *input.MouseEvent) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	winX := w.x + offsetX
	winY := w.y + offsetY

	if w.showTitlebar &&
		ev.X >= winX && ev.Y >= winY &&
		ev.X <= winX+w.width &&
		ev.Y <= winY+w.titlebarHeight {
		w.hoverTitlebar = true
	} else if !w.moving {
		w.hoverTitlebar = false
	}

	if !w.hoverTitlebar && w.resizable &&
		ev.X >= winX+w.width-4 && ev.X <= winX+w.width &&
		ev.Y >= winY && ev.Y <= winY+w.height {
		w.hoverRight = true
	} else if !w.resizing {
		w.hoverRight = false
	}

	if !w.hoverTitlebar && w.resizable &&
		ev.X >= winX && ev.X <= winX+4 &&
		ev.Y >= winY && ev.Y <= winY+w.height {
		w.hoverLeft = true
	} else if !w.resizing {
		w.hoverLeft = false
	}

	if w.resizable && ev.X >= winX && ev.X < winX+w.width &&
		ev.Y >= winY+w.height-4 && ev.Y <= winY+w.height {
		w.hoverBottom = true
	} else if !w.resizing {
		w.hoverBottom = false
	}

	if w.moving {
		w.x += ev.X - w.moveLastX
		w.y += ev.Y - w.moveLastY
	} else if w.resizing {
		if w.hoverLeft {
			w.x += ev.X - w.moveLastX
			w.width -= ev.X - w.moveLastX
		}
		if w.hoverRight {
			w.width += ev.X - w.moveLastX
		}
		if w.hoverBottom {
			w.height += ev.Y - w.moveLastY
		}

		minW := w.minWidth
		if minW == 0 {
			minW = 10
		}
		minH := w.minHeight
		if minH == 0 {
			minH = 10
		}
		if w.width < minW {
			w.width = minW
		}
		if w.height < minH {
			w.height = minH
		}
	}

	w.moveLastX = ev.X
	w.moveLastY = ev.Y

	return true
}

func (w *Window) onMouseLeave() bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.moving {
		w.hoverTitlebar = false
	}
	if !w.resizing {
		w.hoverRight = false
		w.hoverLeft = false
		w.hoverBottom = false
	}

	return true
}

func (w *Window) onMouseButton(offsetX, offsetY int, ev *input.MouseEvent) bool {
	if ev.Down {
		w.ui.MoveElementToTop(w)
	}

	left := ev.Button == input.MouseButtonLeft

	w.mu.Lock()
	var startDrag, endDrag bool
	switch {
	case !w.moving && w.hoverTitlebar && left && ev.Down:
		w.moving = true
		w.moveLastX = ev.X
		w.moveLastY = ev.Y
		startDrag = true
	case w.moving && left && !ev.Down:
		w.moving = false
		endDrag = true
	case !w.resizing && (w.hoverRight || w.hoverBottom || w.hoverLeft) && left && ev.Down:
		w.resizing = true
		w.moveLastX = ev.X
		w.moveLastY = ev.Y
		startDrag = true
	case w.resizing && left && !ev.Down:
		w.resizing = false
		endDrag = true
	}
	scissor := w.lastScissor
	w.mu.Unlock()

	if startDrag {
		w.ui.SetMouseCapture(w, offsetX, offsetY, scissor)
	}
	if endDrag {
		w.ui.ClearMouseCapture()
		w.saveToSettings()
	}

	return true
}

func (w *Window) updateFromSettings() {
	w.mu.Lock()
	st := w.settings
	prefix := w.settingsPath
	w.mu.Unlock()

	if st == nil {
		return
	}

	x, err := st.GetInt64(prefix + ".x")
	if err != nil {
		x = 0
	}
	y, err := st.GetInt64(prefix + ".y")
	if err != nil {
		y = 0
	}
	width, err := st.GetInt64(prefix + ".width")
	if err != nil {
		width = 0
	}
	height, err := st.GetInt64(prefix + ".height")
	if err != nil {
		height = 0
	}

	w.mu.Lock()
	w.x = int(x)
	w.y = int(y)
	w.width = int(width)
	w.height = int(height)
	w.mu.Unlock()
}

func (w *Window) saveToSettings() {
	w.mu.Lock()
	st := w.settings
	prefix := w.settingsPath
	x := w.x
	y := w.y
	width := w.width
	height := w.height
	w.mu.Unlock()

	if st == nil {
		return
	}

	st.Set(prefix+".x", int64(x))
	st.Set(prefix+".y", int64(y))
	st.Set(prefix+".width", int64(width))
	st.Set(prefix+".height", int64(height))
}
