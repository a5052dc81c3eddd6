package ui

import (
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/yt-mp3/internal/config"
	"github.com/ytget/yt-mp3/internal/model"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	downloadDirEntry *widget.Entry
	ffmpegEntry      *widget.Entry
	collisionSelect  *widget.Select
	languageSelect   *widget.Select
	expandCheck      *widget.Check
	revealCheck      *widget.Check
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
	}

	sd.createUI()
	return sd
}

// ShowSettingsDialog opens the dialog and calls onSaved after a confirmed save
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) {
	sd := NewSettingsDialog(settings, localization, window)
	sd.onSaved = onSaved
	sd.Show()
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	l := sd.localization

	sd.downloadDirEntry = widget.NewEntry()
	browseDirBtn := widget.NewButton(l.GetText(KeyBrowse), sd.onBrowseDirectory)
	downloadDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.downloadDirEntry)

	sd.ffmpegEntry = widget.NewEntry()
	sd.ffmpegEntry.SetPlaceHolder("ffmpeg")
	browseFFmpegBtn := widget.NewButton(l.GetText(KeyBrowse), sd.onBrowseFFmpeg)
	ffmpegRow := container.NewBorder(nil, nil, nil, browseFFmpegBtn, sd.ffmpegEntry)

	collisionOptions := []string{}
	for _, policy := range sd.settings.GetCollisionPolicyOptions() {
		collisionOptions = append(collisionOptions, string(policy))
	}
	sd.collisionSelect = widget.NewSelect(collisionOptions, nil)

	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	sd.expandCheck = widget.NewCheck(l.GetText(KeyExpandPlaylists), nil)
	sd.revealCheck = widget.NewCheck(l.GetText(KeyAutoReveal), nil)

	form := container.NewVBox(
		widget.NewLabel(l.GetText(KeyDownloadDirectory)+":"),
		downloadDirRow,

		widget.NewLabel(l.GetText(KeyFFmpegPath)+":"),
		ffmpegRow,

		widget.NewLabel(l.GetText(KeyCollisionPolicy)+":"),
		sd.collisionSelect,

		sd.expandCheck,
		sd.revealCheck,

		widget.NewSeparator(),

		widget.NewLabel(l.GetText(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		l.GetText(KeySettings),
		l.GetText(KeySave),
		l.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(520, 420))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.downloadDirEntry.SetText(sd.settings.GetDownloadDirectory())
	sd.ffmpegEntry.SetText(sd.settings.GetFFmpegPath())
	sd.collisionSelect.SetSelected(string(sd.settings.GetCollisionPolicy()))
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
	sd.expandCheck.SetChecked(sd.settings.GetExpandPlaylists())
	sd.revealCheck.SetChecked(sd.settings.GetAutoRevealOnComplete())
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.downloadDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onBrowseFFmpeg picks the ffmpeg executable
func (sd *SettingsDialog) onBrowseFFmpeg() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()
		sd.ffmpegEntry.SetText(reader.URI().Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	sd.apply()

	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
	if sd.onSaved != nil {
		sd.onSaved()
	}
}

// apply writes the form values into the preferences
func (sd *SettingsDialog) apply() {
	if dir := sd.downloadDirEntry.Text; dir != "" {
		sd.settings.SetDownloadDirectory(dir)
	}

	// an empty ffmpeg path restores automatic lookup
	sd.settings.SetFFmpegPath(sd.ffmpegEntry.Text)

	if policy, err := model.ParseCollisionPolicy(sd.collisionSelect.Selected); err == nil {
		sd.settings.SetCollisionPolicy(policy)
	}

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}

	sd.settings.SetExpandPlaylists(sd.expandCheck.Checked)
	sd.settings.SetAutoRevealOnComplete(sd.revealCheck.Checked)
}
