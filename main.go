package main

import (
	"context"
	"fmt"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/joho/godotenv"

	"github.com/aetherial/gardens/internal/audio"
	"github.com/aetherial/gardens/internal/config"
	"github.com/aetherial/gardens/internal/gallery"
	"github.com/aetherial/gardens/internal/logger"
	"github.com/aetherial/gardens/internal/platform"
	"github.com/aetherial/gardens/internal/storage"
	"github.com/aetherial/gardens/internal/telemetry"
	"github.com/aetherial/gardens/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.aetherial.gardens"
	AppName = "Aetherial Gardens"

	WindowWidth  = 800
	WindowHeight = 600
)

func main() {
	// Optional local overrides for log level and telemetry endpoints
	_ = godotenv.Load()

	log, err := logger.New()
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		return
	}
	defer log.Sync()

	log.Info("starting", logger.String("app", AppName), logger.String("version", version))

	ctx := context.Background()
	tracer := telemetry.NoopTracer()
	if telemetry.Enabled() {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			log.Warn("telemetry disabled", logger.Err(err))
		} else {
			tracer = telemetry.Tracer(AppID)
			defer func() {
				if err := shutdown(ctx); err != nil {
					log.Warn("telemetry shutdown failed", logger.Err(err))
				}
			}()
		}
	}

	// Create new Fyne app
	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewGardenTheme())

	myWindow := myApp.NewWindow(AppName)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))
	if icon, err := ui.LoadAppIcon(); err == nil {
		myWindow.SetIcon(icon)
	}

	// Initialize services
	settings := config.NewSettings(myApp)

	dataDir, err := platform.GetDataDir()
	if err != nil {
		log.Error("failed to resolve data directory", logger.Err(err))
		return
	}

	store, err := storage.Open(filepath.Join(dataDir, storage.DBFileName))
	if err != nil {
		log.Error("failed to open storage", logger.Err(err))
		return
	}
	defer store.Close()

	// Pick up results saved by older releases
	if err := store.MigrateLegacyJSON(filepath.Join(dataDir, "save_data.json")); err != nil {
		log.Warn("legacy save migration failed", logger.Err(err))
	}

	memoriesDir := settings.GetMemoriesDirectory()
	gallerySvc, err := gallery.NewService(memoriesDir, store, log.With(logger.String("component", "gallery")))
	if err != nil {
		log.Error("failed to initialize gallery", logger.Err(err))
		return
	}

	audioDir := ""
	if assetsDir, err := platform.FindAssetsDir(); err == nil {
		audioDir = filepath.Join(assetsDir, "audio")
	} else {
		log.Warn("assets directory not found", logger.Err(err))
	}
	audioSvc := audio.NewService(audioDir, settings.GetMasterVolume(), settings.GetMuted(),
		log.With(logger.String("component", "audio")))
	defer audioSvc.Close()

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, store, audioSvc, gallerySvc, tracer, log)

	audioSvc.StartAmbient()

	// Show and run
	myWindow.ShowAndRun()
}
