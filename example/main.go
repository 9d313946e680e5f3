// Example opens a window with probes of a few demo values: a character
// with glue from probegen, a world shared with a simulation goroutine,
// and the style of the window itself.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//
// Flags:
//
//	--style file   probe style as YAML, see probe.LoadStyle
//	--theme file   window theme as YAML, see gui.LoadTheme
//	-v             debug logging
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/go-theft-auto/probe"
	"github.com/go-theft-auto/probe/backend/opengl"
	"github.com/go-theft-auto/probe/gui"
)

const (
	windowWidth  = 800
	windowHeight = 600
	windowTitle  = "probe example"
	panelWidth   = 420
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

var (
	stylePath string
	themePath string
	verbose   bool
)

var rootCmd = &cobra.Command{
	Use:           "example",
	Short:         "Edit demo values in a window",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().StringVar(&stylePath, "style", "", "Probe style YAML file")
	rootCmd.Flags().StringVar(&themePath, "theme", "", "Window theme YAML file")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "example: %v\n", err)
		os.Exit(1)
	}
}

func newLogger() (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func loadStyles() (probe.Style, gui.Style, error) {
	style := probe.DefaultStyle()
	theme := gui.GTAStyle()
	if stylePath != "" {
		f, err := os.Open(stylePath)
		if err != nil {
			return style, theme, errors.Wrap(err, "opening probe style")
		}
		defer f.Close()
		if style, err = probe.LoadStyle(f); err != nil {
			return style, theme, errors.Wrapf(err, "loading %s", stylePath)
		}
	}
	if themePath != "" {
		f, err := os.Open(themePath)
		if err != nil {
			return style, theme, errors.Wrap(err, "opening theme")
		}
		defer f.Close()
		if theme, err = gui.LoadTheme(f); err != nil {
			return style, theme, errors.Wrapf(err, "loading %s", themePath)
		}
	}
	return style, theme, nil
}

// simulate advances the shared world until ctx is done.
func simulate(ctx context.Context, mu *sync.RWMutex, world *World) error {
	const tick = 100 * time.Millisecond
	t := time.NewTicker(tick)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
			mu.Lock()
			if !world.Paused {
				world.Clock += tick
			}
			mu.Unlock()
			glfw.PostEmptyEvent()
		}
	}
}

func run(cmd *cobra.Command, _ []string) error {
	log, err := newLogger()
	if err != nil {
		return errors.Wrap(err, "creating logger")
	}
	defer func() { _ = log.Sync() }()

	style, theme, err := loadStyles()
	if err != nil {
		return err
	}

	if err := glfw.Init(); err != nil {
		return errors.Wrap(err, "glfw init")
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return errors.Wrap(err, "create window")
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		return errors.Wrap(err, "gl init")
	}
	log.Debug("gl ready", zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))))

	renderer, err := opengl.NewRenderer(windowWidth, windowHeight)
	if err != nil {
		return errors.Wrap(err, "gui renderer")
	}
	defer renderer.Delete()

	in := opengl.NewInput(window)
	ui := gui.New(renderer,
		gui.WithStyle(theme),
		gui.WithClipboard(opengl.Clipboard{Window: window}),
	)
	window.SetFramebufferSizeCallback(func(_ *glfw.Window, w, h int) {
		ui.Resize(w, h)
	})

	character := newCharacter()
	var mu sync.RWMutex
	world := World{Gravity: 9.8}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return simulate(ctx, &mu, &world) })

	last := time.Now()
	for !window.ShouldClose() && ctx.Err() == nil {
		if ui.NeedsRedraw() {
			glfw.PollEvents()
		} else {
			// Wakes up now and then to notice an interrupt.
			glfw.WaitEventsTimeout(0.5)
		}
		now := time.Now()
		dt := float32(now.Sub(last).Seconds())
		last = now

		w, h := window.GetFramebufferSize()
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		gctx := ui.Begin(in.NextFrame(dt), gui.Vec2{X: float32(w), Y: float32(h)}, dt)
		gctx.Panel("probes", gui.Width(panelWidth))(func() {
			s := probe.NewSurface(gctx)
			if probe.Show(s, "character", character, probe.WithStyle(style)).Changed {
				log.Debug("character changed", zap.String("name", character.Name))
			}
			shared := probe.Shared(&mu, &world, func(w *World) probe.Prober { return w })
			probe.Show(s, "world", shared, probe.WithStyle(style))
			if probe.Show(s, "theme", probe.GUIStyle(&theme), probe.WithStyle(style)).Changed {
				ui.SetStyle(theme)
			}
		})
		if err := ui.End(); err != nil {
			return errors.Wrap(err, "gui render")
		}
		in.EndFrame()

		window.SwapBuffers()
	}

	stop()
	return g.Wait()
}
