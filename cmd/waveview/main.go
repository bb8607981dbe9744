package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/World-hackr/WAVE-VISUALIZER/internal/app"
	"github.com/World-hackr/WAVE-VISUALIZER/internal/playback"
	"github.com/World-hackr/WAVE-VISUALIZER/internal/prompt"
	"github.com/World-hackr/WAVE-VISUALIZER/internal/render"
	"github.com/World-hackr/WAVE-VISUALIZER/internal/web"
)

func main() {
	var (
		width     = flag.Int("width", 120, "Plot width when the terminal size cannot be detected")
		height    = flag.Int("height", 36, "Plot height when the terminal size cannot be detected")
		targetFPS = flag.Float64("fps", 30, "Target frames per second")
		zoomStep  = flag.Int("zoom-step", 25, "Zoom slider change per +/- key press")
		backend   = flag.String("audio-backend", "portaudio", "Audio backend (portaudio|oto|none)")
		noAudio   = flag.Bool("no-audio", false, "Run with a silent clock instead of an audio device")
		useSDL    = flag.Bool("sdl", false, "Render into an SDL window (requires a build with -tags sdl)")
		sdlWidth  = flag.Int("sdl-width", 900, "SDL window width in pixels")
		sdlHeight = flag.Int("sdl-height", 620, "SDL window height in pixels")
		webPort   = flag.Int("web-port", 0, "Serve a websocket frame mirror on this port (0 = off)")
		debug     = flag.Bool("debug", false, "Enable verbose logging")
		profile   = flag.String("profile", "", "Write per-frame timings to this CSV file")
		bgHex     = flag.String("background", "", "Background color as #RRGGBB (skips the prompt)")
		posHex    = flag.String("positive-color", "", "Positive trace color as #RRGGBB (skips the prompt)")
		negHex    = flag.String("negative-color", "", "Negative trace color as #RRGGBB (skips the prompt)")
		listDevs  = flag.Bool("list-audio-devices", false, "List available audio output devices and exit")
	)

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] <file.wav>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if *width <= 0 || *height <= 0 {
		log.Fatalf("invalid dimensions: width=%d height=%d", *width, *height)
	}
	if *targetFPS <= 0 {
		log.Fatalf("fps must be positive (got %.2f)", *targetFPS)
	}
	if *noAudio {
		*backend = "none"
	}

	logger := log.New(os.Stderr, "[waveview] ", log.LstdFlags)
	if !*debug {
		logger.SetFlags(0)
	}

	needPortAudio := *backend == "portaudio" || *listDevs
	if needPortAudio {
		if err := playback.Initialize(); err != nil {
			logger.Fatalf("failed to initialize PortAudio: %v", err)
		}
		defer playback.Terminate()
	}

	if *listDevs {
		devices, err := playback.ListDevices()
		if err != nil {
			logger.Fatalf("list devices: %v", err)
		}
		fmt.Printf("\n=== Audio Output Devices ===\n\n")
		for _, dev := range devices {
			if dev.MaxOutput == 0 {
				continue
			}
			markers := ""
			if dev.IsDefaultOutput {
				markers += " (default)"
			}
			fmt.Printf("- %s [%s]%s\n    inputs:%d outputs:%d sample:%.0f Hz\n",
				dev.Name, dev.HostAPI, markers, dev.MaxInput, dev.MaxOutput, dev.DefaultSampleHz)
		}
		return
	}

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	path := flag.Arg(0)

	scheme, err := resolveScheme(*bgHex, *posHex, *negHex)
	if err != nil {
		logger.Fatalf("colors: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	engine, err := playback.NewEngine(*backend)
	if err != nil {
		logger.Fatalf("audio backend: %v", err)
	}

	var surface render.Surface
	if *useSDL {
		sdlSurface, err := render.NewSDLSurface(*sdlWidth, *sdlHeight)
		if err != nil {
			logger.Fatalf("sdl surface: %v", err)
		}
		surface = sdlSurface
	} else {
		surface = render.NewANSISurface(*width, *height)
	}
	defer func() {
		if err := surface.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "surface cleanup error: %v\n", err)
		}
	}()

	appConfig := app.Config{
		Scheme:    scheme,
		Surface:   surface,
		Engine:    engine,
		TargetFPS: *targetFPS,
		ZoomStep:  *zoomStep,
		Profile:   *profile,
		Log:       logger,
	}

	if *webPort > 0 {
		mirror := web.NewMirror(logger)
		appConfig.OnFrame = mirror.Publish
		go func() {
			if err := mirror.Start(*webPort); err != nil {
				logger.Printf("web mirror stopped: %v", err)
			}
		}()
	}

	a, err := app.New(appConfig)
	if err != nil {
		logger.Fatalf("failed to create app: %v", err)
	}
	defer func() {
		if err := a.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "cleanup error: %v\n", err)
		}
	}()

	if err := a.Load(path); err != nil {
		logger.Fatalf("load %s: %v", path, err)
	}

	if err := a.Run(ctx); err != nil {
		if ctx.Err() != nil {
			fmt.Println("\nExiting...")
			return
		}
		logger.Fatalf("runtime error: %v", err)
	}
}

// resolveScheme uses the color flags when all three are given, otherwise
// runs the interactive terminal prompt. The prompt happens before the
// surface claims the screen.
func resolveScheme(bg, pos, neg string) (render.Scheme, error) {
	if bg == "" && pos == "" && neg == "" {
		return prompt.New(os.Stdin, os.Stdout).Choose(), nil
	}

	scheme := render.DefaultScheme()
	var err error
	if bg != "" {
		if scheme.Background, err = render.ParseHex(bg); err != nil {
			return scheme, err
		}
	}
	if pos != "" {
		if scheme.Positive, err = render.ParseHex(pos); err != nil {
			return scheme, err
		}
	}
	if neg != "" {
		if scheme.Negative, err = render.ParseHex(neg); err != nil {
			return scheme, err
		}
	}
	return scheme, nil
}
