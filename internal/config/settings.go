package config

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/yt-mp3/internal/model"
	"github.com/ytget/yt-mp3/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyDownloadDir        = "download_directory"
	KeyFFmpegPath         = "ffmpeg_path"
	KeyCollisionPolicy    = "collision_policy"
	KeyLanguage           = "app_language"
	KeyAutoRevealComplete = "auto_reveal_on_complete"
	KeyExpandPlaylists    = "expand_playlists"
)

// Default values
const (
	DefaultLanguage           = "system"
	DefaultAutoRevealComplete = false
	FallbackDownloadDir       = "downloads"
)

// Settings manages GUI configuration stored in Fyne preferences
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetDownloadDirectory returns the configured download directory
func (s *Settings) GetDownloadDirectory() string {
	dir := s.app.Preferences().String(KeyDownloadDir)
	if dir == "" {
		defaultDir, err := platform.GetHomeDownloadsDir()
		if err != nil {
			defaultDir = FallbackDownloadDir
		}
		s.SetDownloadDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetDownloadDirectory sets the download directory
func (s *Settings) SetDownloadDirectory(dir string) {
	s.app.Preferences().SetString(KeyDownloadDir, dir)
}

// GetFFmpegPath returns the configured ffmpeg path, "" for automatic lookup
func (s *Settings) GetFFmpegPath() string {
	return s.app.Preferences().String(KeyFFmpegPath)
}

// SetFFmpegPath sets the ffmpeg path
func (s *Settings) SetFFmpegPath(path string) {
	s.app.Preferences().SetString(KeyFFmpegPath, path)
}

// GetCollisionPolicy returns the configured collision policy
func (s *Settings) GetCollisionPolicy() model.CollisionPolicy {
	p, err := model.ParseCollisionPolicy(s.app.Preferences().String(KeyCollisionPolicy))
	if err != nil {
		return model.DefaultCollisionPolicy
	}
	return p
}

// SetCollisionPolicy sets the collision policy
func (s *Settings) SetCollisionPolicy(policy model.CollisionPolicy) {
	s.app.Preferences().SetString(KeyCollisionPolicy, string(policy))
}

// GetCollisionPolicyOptions returns available collision policies
func (s *Settings) GetCollisionPolicyOptions() []model.CollisionPolicy {
	return model.CollisionPolicies()
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetAutoRevealOnComplete returns whether to reveal the last file after a batch
func (s *Settings) GetAutoRevealOnComplete() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutoRevealComplete, DefaultAutoRevealComplete)
}

// SetAutoRevealOnComplete sets whether to reveal the last file after a batch
func (s *Settings) SetAutoRevealOnComplete(autoReveal bool) {
	s.app.Preferences().SetBool(KeyAutoRevealComplete, autoReveal)
}

// GetExpandPlaylists returns whether playlist URLs expand into their videos
func (s *Settings) GetExpandPlaylists() bool {
	return s.app.Preferences().BoolWithFallback(KeyExpandPlaylists, DefaultExpandPlaylists)
}

// SetExpandPlaylists sets whether playlist URLs expand into their videos
func (s *Settings) SetExpandPlaylists(expand bool) {
	s.app.Preferences().SetBool(KeyExpandPlaylists, expand)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

// Options overlays the stored GUI preferences on base
func (s *Settings) Options(base Options) Options {
	opts := base
	opts.DownloadDir = s.GetDownloadDirectory()
	if path := s.GetFFmpegPath(); path != "" {
		opts.FFmpegPath = path
	}
	opts.CollisionPolicy = string(s.GetCollisionPolicy())
	opts.ExpandPlaylists = s.GetExpandPlaylists()
	return opts
}
