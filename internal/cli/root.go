package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ytget/yt-mp3/internal/config"
	"github.com/ytget/yt-mp3/internal/encoder"
	"github.com/ytget/yt-mp3/internal/extractor"
	"github.com/ytget/yt-mp3/internal/logging"
	"github.com/ytget/yt-mp3/internal/platform"
)

// Expander turns playlist URLs into video URLs
type Expander interface {
	Expand(ctx context.Context, urls []string) ([]string, error)
}

// App holds the state shared by all commands. The constructor fields are
// replaced in tests.
type App struct {
	configPath string
	logLevel   string

	opts   config.Options
	logger *zap.Logger

	newExtractor func(logger *zap.Logger) extractor.Extractor
	newExpander  func(logger *zap.Logger) Expander
	locateFFmpeg func(configured string) (encoder.Location, error)
	probeFFmpeg  func(ctx context.Context, path string) (string, error)
	ensureYTDLP  func(ctx context.Context, download bool) (extractor.Binary, error)
}

// NewApp returns an App wired to the real yt-dlp and ffmpeg
func NewApp() *App {
	return &App{
		newExtractor: func(logger *zap.Logger) extractor.Extractor {
			return extractor.NewYTDLP(logger)
		},
		newExpander: func(logger *zap.Logger) Expander {
			return platform.NewPlaylistExpander(logger)
		},
		locateFFmpeg: func(configured string) (encoder.Location, error) {
			return encoder.NewLocator(configured).Locate()
		},
		probeFFmpeg: encoder.Probe,
		ensureYTDLP: extractor.EnsureBinary,
		logger:      zap.NewNop(),
	}
}

// Execute runs the command tree with args
func Execute(ctx context.Context, version string, args []string) error {
	cmd := NewApp().Command(version)
	cmd.SetArgs(args)
	return cmd.ExecuteContext(ctx)
}

// Command builds the root command
func (a *App) Command(version string) *cobra.Command {
	root := &cobra.Command{
		Use:           "yt-mp3",
		Short:         "Download YouTube audio as MP3",
		Long:          `Fetches the best audio stream of each URL, converts it to MP3 at maximum quality, names the file after the cleaned title and remembers the video ID so it is never downloaded twice.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "config file (default "+config.DefaultConfigFile+" when present)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn or error")

	root.AddCommand(
		a.downloadCommand(),
		a.historyCommand(),
		a.sanitizeCommand(),
		a.doctorCommand(),
	)
	return root
}

// setup loads the configuration and builds the logger
func (a *App) setup() error {
	opts, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		opts.LogLevel = a.logLevel
		if err := opts.Validate(); err != nil {
			return err
		}
	}

	logger, err := logging.New(opts.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	a.opts = opts
	a.logger = logger
	return nil
}
