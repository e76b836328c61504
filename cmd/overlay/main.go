// Command overlay runs the engine standalone with a small demo window,
// useful for exercising the renderer and input hooks without an embedding
// application.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/agiangrant/overlay"
	"github.com/agiangrant/overlay/ui"
)

const version = "0.1.0"

// quitTarget is the handler id the demo quit button queues its clicks to.
const quitTarget = 1

func main() {
	settingsName := flag.String("settings", "overlay", "settings store name")
	renderer := flag.String("renderer", "", "renderer library path (default: search)")
	demo := flag.Bool("demo", true, "show the demo window")
	verbose := flag.Bool("verbose", false, "debug logging")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("overlay version %s\n", version)
		return
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	var engine *overlay.Engine

	cfg := overlay.DefaultConfig()
	cfg.SettingsName = *settingsName
	cfg.RendererPath = *renderer
	cfg.OnEvent = func(ev overlay.Event) {
		if ev.Target == quitTarget {
			engine.Shutdown()
			return
		}
		slog.Debug("script event", "name", ev.Name, "target", ev.Target)
	}

	engine, err := overlay.NewEngine(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *demo {
		buildDemo(engine)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := engine.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// buildDemo shows one resizable window holding a label, an entry and a quit
// button. Its geometry persists under overlay.demo.
func buildDemo(e *overlay.Engine) {
	u := e.Ui()
	st := e.Settings()

	st.SetDefault("overlay.demo.x", int64(60))
	st.SetDefault("overlay.demo.y", int64(60))
	st.SetDefault("overlay.demo.width", int64(260))
	st.SetDefault("overlay.demo.height", int64(140))

	textColor := ui.Color(st.MustColor("overlay.ui.colors.text"))

	box := ui.NewBox(ui.Vertical)
	box.SetPadding(6, 6, 6, 6)
	box.SetSpacing(4)
	box.PushBack(ui.NewText("Overlay is running.", textColor, u.Font()), ui.AlignStart, false)

	entry := ui.NewEntry(u, u.MonoFont())
	entry.SetHint("type here")
	box.PushBack(entry, ui.AlignFill, false)

	quit := ui.NewButton(u)
	quit.SetChild(ui.NewText("Quit", textColor, u.Font()))
	quit.AddEventHandler(quitTarget, "click-left")
	box.PushBack(quit, ui.AlignEnd, false)

	win := ui.NewWindow(u, "Overlay Demo")
	win.SetResizable(true)
	win.SetChild(box)
	win.BindSettings(st, "overlay.demo")
	win.Show()
}
