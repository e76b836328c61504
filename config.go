package overlay

import "time"

// Config configures the engine.
type Config struct {
	// SettingsName names the settings store backing the overlay,
	// settings/<SettingsName>.toml under the working directory.
	SettingsName string

	// FrameInterval is the target time between frames. Zero reads
	// overlay.frameTargetTime (milliseconds) from settings.
	FrameInterval time.Duration

	// RendererPath overrides the renderer library search path.
	RendererPath string

	// Window is the native overlay window handle. Mouse coordinates are
	// translated into its client space; zero leaves them screen-absolute.
	Window uintptr

	// QueueCapacity sizes the script event queue's initial backing store.
	QueueCapacity int

	// OnEvent, when set, receives every script event drained by Run. Leave
	// nil to drain the queue yourself through Engine.Queue.
	OnEvent func(Event)
}

// DefaultConfig returns the defaults for a standalone overlay.
func DefaultConfig() Config {
	return Config{
		SettingsName:  "overlay",
		QueueCapacity: 256,
	}
}
