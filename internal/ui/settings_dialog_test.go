package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/yt-mp3/internal/config"
	"github.com/ytget/yt-mp3/internal/model"
)

func TestSettingsDialog_LoadAndApply(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	settings := config.NewSettings(app)
	settings.SetDownloadDirectory("/music")
	settings.SetCollisionPolicy(model.CollisionSkip)

	window := app.NewWindow("test")
	sd := NewSettingsDialog(settings, NewLocalization(), window)
	sd.loadCurrentSettings()

	if sd.downloadDirEntry.Text != "/music" {
		t.Errorf("download dir entry = %q", sd.downloadDirEntry.Text)
	}
	if sd.collisionSelect.Selected != string(model.CollisionSkip) {
		t.Errorf("collision select = %q", sd.collisionSelect.Selected)
	}

	sd.downloadDirEntry.SetText("/other")
	sd.ffmpegEntry.SetText("/opt/ffmpeg/bin/ffmpeg")
	sd.collisionSelect.SetSelected(string(model.CollisionUniquify))
	sd.expandCheck.SetChecked(false)
	sd.revealCheck.SetChecked(true)
	sd.apply()

	if settings.GetDownloadDirectory() != "/other" {
		t.Errorf("download dir = %q", settings.GetDownloadDirectory())
	}
	if settings.GetFFmpegPath() != "/opt/ffmpeg/bin/ffmpeg" {
		t.Errorf("ffmpeg path = %q", settings.GetFFmpegPath())
	}
	if settings.GetCollisionPolicy() != model.CollisionUniquify {
		t.Errorf("collision policy = %q", settings.GetCollisionPolicy())
	}
	if settings.GetExpandPlaylists() {
		t.Error("expand playlists should be off")
	}
	if !settings.GetAutoRevealOnComplete() {
		t.Error("auto reveal should be on")
	}
}
