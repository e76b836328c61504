package ui

// Frame is one frame of the render surface. Widgets draw through it and
// never touch the graphics API directly.
//
// The scissor stack clips all drawing. PushScissor intersects the requested
// region with the current scissor; when the intersection is empty nothing is
// pushed and it returns false, and the caller must skip both its drawing and
// the matching PopScissor.
type Frame interface {
	DrawRect(x, y, width, height int, color Color)
	PushScissor(left, top, right, bottom int) bool
	PopScissor()
	Scissor() Rect
	Width() int
	Height() int
}
