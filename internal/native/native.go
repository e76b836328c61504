// Package native binds the host renderer shared library. The overlay draws
// through a small flat C surface, overlay_renderer_*; this package loads the
// library once and adapts that surface to the ui.Frame and ui.Font
// interfaces.
package native

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/ebitengine/purego"
)

var (
	libHandle uintptr
	libOnce   sync.Once
	libErr    error
)

// Library function pointers, populated by load.
var (
	// Frame functions
	fnBeginFrame func()
	fnEndFrame   func()
	fnTargetSize func(widthOut, heightOut uintptr)
	fnDrawRect   func(x, y, width, height int32, r, g, b, a float32)
	fnSetClip    func(left, top, right, bottom int32)

	// Font functions
	fnFontCreate  func(path string, size int32) uint64
	fnTextWidth   func(font uint64, text string) int32
	fnLineSpacing func(font uint64) int32
	fnDrawText    func(font uint64, x, y int32, text string, r, g, b, a float32)
)

// libraryPath resolves the renderer library location: an explicit override,
// then the OVERLAY_RENDERER_PATH environment variable, then the working
// directory and the executable's directory.
func libraryPath(override string) string {
	if override != "" {
		return override
	}
	if path := os.Getenv("OVERLAY_RENDERER_PATH"); path != "" {
		return path
	}

	var libName string
	switch runtime.GOOS {
	case "darwin":
		libName = "liboverlay_renderer.dylib"
	case "windows":
		libName = "overlay_renderer.dll"
	default:
		libName = "liboverlay_renderer.so"
	}

	searchPaths := []string{libName}
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		searchPaths = append(searchPaths,
			filepath.Join(execDir, libName),
			filepath.Join(execDir, "..", "lib", libName),
		)
	}

	for _, path := range searchPaths {
		if _, err := os.Stat(path); err == nil {
			if abs, err := filepath.Abs(path); err == nil {
				return abs
			}
			return path
		}
	}

	// Let the system loader find it.
	return libName
}

// load opens the renderer library and binds its symbols. The first call
// decides the path; later calls return the first call's result.
func load(override string) error {
	libOnce.Do(func() {
		path := libraryPath(override)
		libHandle, libErr = openLibrary(path)
		if libErr != nil {
			libErr = fmt.Errorf("native: loading renderer library %s: %w", path, libErr)
			return
		}
		registerFrameFunctions()
		registerFontFunctions()
	})
	return libErr
}

func registerFrameFunctions() {
	purego.RegisterLibFunc(&fnBeginFrame, libHandle, "overlay_renderer_begin_frame")
	purego.RegisterLibFunc(&fnEndFrame, libHandle, "overlay_renderer_end_frame")
	purego.RegisterLibFunc(&fnTargetSize, libHandle, "overlay_renderer_target_size")
	purego.RegisterLibFunc(&fnDrawRect, libHandle, "overlay_renderer_draw_rect")
	purego.RegisterLibFunc(&fnSetClip, libHandle, "overlay_renderer_set_clip")
}

func registerFontFunctions() {
	purego.RegisterLibFunc(&fnFontCreate, libHandle, "overlay_renderer_font_create")
	purego.RegisterLibFunc(&fnTextWidth, libHandle, "overlay_renderer_text_width")
	purego.RegisterLibFunc(&fnLineSpacing, libHandle, "overlay_renderer_line_spacing")
	purego.RegisterLibFunc(&fnDrawText, libHandle, "overlay_renderer_draw_text")
}
