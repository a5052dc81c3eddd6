package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/ytget/yt-mp3/internal/idstore"
	"github.com/ytget/yt-mp3/internal/model"
	"github.com/ytget/yt-mp3/internal/platform"
)

// Configuration sources
const (
	DefaultConfigFile = "yt-mp3.yaml"
	DefaultEnvFile    = ".env"
)

// Environment overrides
const (
	EnvDownloadDir     = "YTMP3_DOWNLOAD_DIR"
	EnvIDStore         = "YTMP3_ID_STORE"
	EnvFFmpeg          = "YTMP3_FFMPEG"
	EnvCollision       = "YTMP3_COLLISION"
	EnvLogLevel        = "YTMP3_LOG_LEVEL"
	EnvExpandPlaylists = "YTMP3_EXPAND_PLAYLISTS"
)

// Default values
const (
	DefaultEventBuffer     = 64
	DefaultLogLevel        = "info"
	DefaultExpandPlaylists = true
)

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Options is the runtime configuration shared by the GUI and the CLI
type Options struct {
	DownloadDir     string `yaml:"download_dir"`
	IDStorePath     string `yaml:"id_store_path"`
	FFmpegPath      string `yaml:"ffmpeg_path"`
	CollisionPolicy string `yaml:"collision_policy"`
	EventBuffer     int    `yaml:"event_buffer"`
	LogLevel        string `yaml:"log_level"`
	ExpandPlaylists bool   `yaml:"expand_playlists"`
}

// Defaults returns options with every field at its default
func Defaults() Options {
	downloadDir, err := platform.GetHomeDownloadsDir()
	if err != nil {
		downloadDir = "."
	}
	return Options{
		DownloadDir:     downloadDir,
		IDStorePath:     idstore.DefaultFileName,
		CollisionPolicy: string(model.DefaultCollisionPolicy),
		EventBuffer:     DefaultEventBuffer,
		LogLevel:        DefaultLogLevel,
		ExpandPlaylists: DefaultExpandPlaylists,
	}
}

// Load reads defaults, then the YAML file at path (DefaultConfigFile when
// empty, missing is fine unless path was given), then .env and the process
// environment. The result is validated.
func Load(path string) (Options, error) {
	opts := Defaults()

	explicit := path != ""
	if !explicit {
		path = DefaultConfigFile
	}
	if err := opts.loadFile(path); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return Options{}, err
		}
	}

	// godotenv never overrides variables that are already set
	if err := godotenv.Load(DefaultEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Options{}, fmt.Errorf("failed to load %s: %w", DefaultEnvFile, err)
	}

	if err := opts.applyEnv(os.LookupEnv); err != nil {
		return Options{}, err
	}

	if err := opts.Validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}

func (o *Options) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, o); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return nil
}

func (o *Options) applyEnv(lookup func(string) (string, bool)) error {
	strs := map[string]*string{
		EnvDownloadDir: &o.DownloadDir,
		EnvIDStore:     &o.IDStorePath,
		EnvFFmpeg:      &o.FFmpegPath,
		EnvCollision:   &o.CollisionPolicy,
		EnvLogLevel:    &o.LogLevel,
	}
	for key, field := range strs {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			*field = strings.TrimSpace(v)
		}
	}

	if v, ok := lookup(EnvExpandPlaylists); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s=%q: %w", EnvExpandPlaylists, v, err)
		}
		o.ExpandPlaylists = b
	}
	return nil
}

// Validate checks the collision policy, log level and event buffer
func (o Options) Validate() error {
	if _, err := model.ParseCollisionPolicy(o.CollisionPolicy); err != nil {
		return err
	}
	if !validLogLevels[strings.ToLower(o.LogLevel)] {
		return fmt.Errorf("invalid log level %q (want debug, info, warn or error)", o.LogLevel)
	}
	if o.EventBuffer < 1 {
		return fmt.Errorf("event buffer must be positive, got %d", o.EventBuffer)
	}
	return nil
}

// Collision returns the parsed collision policy, the default when invalid
func (o Options) Collision() model.CollisionPolicy {
	p, err := model.ParseCollisionPolicy(o.CollisionPolicy)
	if err != nil {
		return model.DefaultCollisionPolicy
	}
	return p
}
