// Package overlay is a game overlay UI engine: a retained element tree
// drawn through a native renderer library, fed by low-level OS input hooks,
// with widget events delivered to a script-side queue.
package overlay

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/agiangrant/overlay/input"
	"github.com/agiangrant/overlay/internal/native"
	"github.com/agiangrant/overlay/scripting"
	"github.com/agiangrant/overlay/settings"
	"github.com/agiangrant/overlay/ui"
)

// Event is a script event drained from the engine's queue.
// This is a re-export of scripting.Event for consumer convenience.
type Event = scripting.Event

// The packages only see each other through small interfaces; the engine is
// where the concrete types must line up.
var (
	_ ui.ScriptQueue     = (*scripting.Queue)(nil)
	_ ui.KeybindResolver = (*scripting.Queue)(nil)
	_ input.EventQueue   = (*scripting.Queue)(nil)
	_ input.Dispatcher   = (*ui.Ui)(nil)
	_ ui.Frame           = (*native.Frame)(nil)
	_ ui.Font            = (*native.Font)(nil)
)

var errShutdown = errors.New("overlay: shutdown requested")

// Engine ties the subsystems together: the settings store, the renderer
// backend and fonts, the UI element tree, the script queue and the OS input
// hooks.
type Engine struct {
	settings *settings.Store
	backend  *native.Backend
	ui       *ui.Ui
	queue    *scripting.Queue
	hooks    *input.Hooks

	interval time.Duration
	onEvent  func(Event)

	quit     chan struct{}
	quitOnce sync.Once
}

// NewEngine builds an engine from cfg: it opens the settings store,
// registers the style defaults, loads the renderer library and fonts, and
// wires the UI, script queue and input bridge together.
func NewEngine(cfg Config) (*Engine, error) {
	if cfg.SettingsName == "" {
		cfg.SettingsName = "overlay"
	}

	st, err := settings.Open(cfg.SettingsName)
	if err != nil {
		return nil, fmt.Errorf("overlay: opening settings: %w", err)
	}
	ui.RegisterStyleDefaults(st)
	st.SetDefault("overlay.frameTargetTime", 32.0)

	backend, err := native.NewBackend(cfg.RendererPath)
	if err != nil {
		return nil, fmt.Errorf("overlay: loading renderer: %w", err)
	}

	regular, err := loadFont(backend, st, "overlay.ui.font.regular")
	if err != nil {
		return nil, fmt.Errorf("overlay: regular font: %w", err)
	}
	mono, err := loadFont(backend, st, "overlay.ui.font.mono")
	if err != nil {
		return nil, fmt.Errorf("overlay: mono font: %w", err)
	}
	icon, err := loadFont(backend, st, "overlay.ui.font.icon")
	if err != nil {
		return nil, fmt.Errorf("overlay: icon font: %w", err)
	}

	queue := scripting.NewQueue(cfg.QueueCapacity)

	u := ui.New(ui.Config{
		Queue:       queue,
		Keybinds:    queue,
		Settings:    st,
		RegularFont: regular,
		MonoFont:    mono,
		IconFont:    icon,
	})

	bridge := input.NewBridge(u, queue)

	interval := cfg.FrameInterval
	if interval <= 0 {
		ms := st.MustFloat64("overlay.frameTargetTime")
		interval = time.Duration(ms * float64(time.Millisecond))
	}
	slog.Info("overlay: frame interval", "interval", interval)

	return &Engine{
		settings: st,
		backend:  backend,
		ui:       u,
		queue:    queue,
		hooks:    input.NewHooks(bridge, cfg.Window),
		interval: interval,
		onEvent:  cfg.OnEvent,
		quit:     make(chan struct{}),
	}, nil
}

// loadFont builds a width-caching font from the path and size settings
// under prefix.
func loadFont(backend *native.Backend, st *settings.Store, prefix string) (ui.Font, error) {
	path := st.MustString(prefix + ".path")
	size := st.MustInt64(prefix + ".size")
	f, err := backend.NewFont(path, int(size))
	if err != nil {
		return nil, err
	}
	return ui.NewCachingFont(f, 0), nil
}

// Ui returns the element tree root. Build windows and widgets through it.
func (e *Engine) Ui() *ui.Ui { return e.ui }

// Settings returns the engine's settings store.
func (e *Engine) Settings() *settings.Store { return e.settings }

// Queue returns the script event queue.
func (e *Engine) Queue() *scripting.Queue { return e.queue }

// Run drives the engine until ctx is cancelled or Shutdown is called: the
// render loop at the frame interval, the OS input hooks, and the event
// drain when configured. It returns nil after a clean Shutdown.
func (e *Engine) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		select {
		case <-e.quit:
			return errShutdown
		case <-ctx.Done():
			return ctx.Err()
		}
	})

	g.Go(func() error {
		return e.renderLoop(ctx)
	})

	g.Go(func() error {
		err := e.hooks.Run(ctx)
		if errors.Is(err, input.ErrUnsupported) {
			slog.Warn("overlay: OS input hooks unavailable, UI will not receive input")
			return nil
		}
		return err
	})

	if e.onEvent != nil {
		g.Go(func() error {
			return e.drainLoop(ctx)
		})
	}

	err := g.Wait()
	if errors.Is(err, errShutdown) {
		return nil
	}
	return err
}

// Shutdown stops a running engine. Safe to call more than once.
func (e *Engine) Shutdown() {
	e.quitOnce.Do(func() { close(e.quit) })
}

func (e *Engine) renderLoop(ctx context.Context) error {
	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			frame := e.backend.BeginFrame()
			e.ui.Draw(frame)
			frame.End()
		}
	}
}

func (e *Engine) drainLoop(ctx context.Context) error {
	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			for _, ev := range e.queue.Drain() {
				e.onEvent(ev)
			}
		}
	}
}
