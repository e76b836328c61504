package native

import (
	"fmt"
	"unsafe"

	"github.com/agiangrant/overlay/ui"
)

// Backend is a handle to the loaded renderer library. It hands out frames
// and fonts; the library tracks the frame begun last, so only one frame may
// be open at a time and all drawing happens on the render goroutine.
type Backend struct{}

// NewBackend loads the renderer library and returns a backend over it.
// libraryPath overrides the search; pass "" to resolve normally. A missing
// library is an error, not a panic.
func NewBackend(libraryPath string) (*Backend, error) {
	if err := load(libraryPath); err != nil {
		return nil, err
	}
	return &Backend{}, nil
}

// NewFont loads the font face at path rendered at size pixels.
func (b *Backend) NewFont(path string, size int) (*Font, error) {
	handle := fnFontCreate(path, int32(size))
	if handle == 0 {
		return nil, fmt.Errorf("native: renderer could not load font %s at size %d", path, size)
	}
	return &Font{handle: handle}, nil
}

// BeginFrame starts a frame and returns it sized to the current render
// target. The caller must End it.
func (b *Backend) BeginFrame() *Frame {
	fnBeginFrame()

	var width, height int32
	fnTargetSize(uintptr(unsafe.Pointer(&width)), uintptr(unsafe.Pointer(&height)))

	return &Frame{width: int(width), height: int(height)}
}

// Frame is one open frame of drawing. It implements ui.Frame with the
// scissor stack kept on the Go side; only the effective clip is handed to
// the library.
type Frame struct {
	width  int
	height int
	stack  []ui.Rect
}

func (f *Frame) Width() int { return f.width }

func (f *Frame) Height() int { return f.height }

// Scissor returns the current effective clip, the whole target when nothing
// is pushed.
func (f *Frame) Scissor() ui.Rect {
	if len(f.stack) == 0 {
		return ui.Rect{Width: f.width, Height: f.height}
	}
	return f.stack[len(f.stack)-1]
}

func (f *Frame) PushScissor(left, top, right, bottom int) bool {
	r := ui.Rect{X: left, Y: top, Width: right - left, Height: bottom - top}.
		Intersect(f.Scissor())
	if r.Empty() {
		return false
	}
	f.stack = append(f.stack, r)
	fnSetClip(int32(r.X), int32(r.Y), int32(r.X+r.Width), int32(r.Y+r.Height))
	return true
}

func (f *Frame) PopScissor() {
	f.stack = f.stack[:len(f.stack)-1]
	r := f.Scissor()
	fnSetClip(int32(r.X), int32(r.Y), int32(r.X+r.Width), int32(r.Y+r.Height))
}

func (f *Frame) DrawRect(x, y, width, height int, color ui.Color) {
	r, g, b, a := color.Floats()
	fnDrawRect(int32(x), int32(y), int32(width), int32(height), r, g, b, a)
}

// End presents the frame. An unbalanced scissor stack is a bug in a
// widget's Draw and panics.
func (f *Frame) End() {
	if len(f.stack) != 0 {
		panic("native: PushScissor/PopScissor mismatch")
	}
	fnEndFrame()
}

// Font is one loaded face and size. It implements ui.Font.
type Font struct {
	handle uint64
}

func (fo *Font) TextWidth(text string) int {
	return int(fnTextWidth(fo.handle, text))
}

func (fo *Font) LineSpacing() int {
	return int(fnLineSpacing(fo.handle))
}

// RenderText draws into the frame begun last. The frame argument carries
// the scissor state, which the library already has applied.
func (fo *Font) RenderText(frame ui.Frame, x, y int, text string, color ui.Color) {
	r, g, b, a := color.Floats()
	fnDrawText(fo.handle, int32(x), int32(y), text, r, g, b, a)
}
