package main

import (
	"fmt"

	"fyne.io/fyne/v2/app"
	"go.uber.org/zap"

	"github.com/ytget/yt-mp3/internal/config"
	"github.com/ytget/yt-mp3/internal/download"
	"github.com/ytget/yt-mp3/internal/encoder"
	"github.com/ytget/yt-mp3/internal/extractor"
	"github.com/ytget/yt-mp3/internal/idstore"
	"github.com/ytget/yt-mp3/internal/logging"
	"github.com/ytget/yt-mp3/internal/platform"
	"github.com/ytget/yt-mp3/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const AppName = "YT MP3"

func main() {
	// The YAML/env layer supplies the ID store, log level and buffer size;
	// GUI preferences override the rest per batch.
	base, err := config.Load("")
	if err != nil {
		fmt.Printf("invalid configuration, using defaults: %v\n", err)
		base = config.Defaults()
	}

	logger := logging.Must(base.LogLevel)
	defer func() { _ = logger.Sync() }()
	logger.Info("starting", zap.String("app", AppName), zap.String("version", version))

	myApp := app.NewWithID(ui.AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())
	if icon, err := ui.LoadLogoResource(); err == nil {
		myApp.SetIcon(icon)
	}

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))

	settings := config.NewSettings(myApp)
	if err := platform.CreateDirectoryIfNotExists(settings.GetDownloadDirectory()); err != nil {
		logger.Warn("failed to ensure downloads dir", zap.Error(err))
	}

	ex := extractor.NewYTDLP(logger)
	store := idstore.New(base.IDStorePath)
	newRunner := func(opts config.Options) download.Runner {
		ffmpegPath := ""
		if loc, err := encoder.NewLocator(opts.FFmpegPath).Locate(); err != nil {
			logger.Warn("ffmpeg not located, leaving lookup to yt-dlp", zap.Error(err))
		} else {
			ffmpegPath = loc.Path
		}
		return download.NewService(ex, store, download.Options{
			FFmpegPath:  ffmpegPath,
			Collision:   opts.Collision(),
			EventBuffer: opts.EventBuffer,
		}, logger)
	}

	ui.NewRootUI(myWindow, myApp, base, newRunner, platform.NewPlaylistExpander(logger), logger)

	myWindow.ShowAndRun()
}
