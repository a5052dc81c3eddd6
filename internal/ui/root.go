package ui

import (
	"context"
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/ytget/yt-mp3/internal/config"
	"github.com/ytget/yt-mp3/internal/download"
	"github.com/ytget/yt-mp3/internal/model"
	"github.com/ytget/yt-mp3/internal/platform"
)

// RunnerFactory builds a download runner for the options of one batch
type RunnerFactory func(opts config.Options) download.Runner

// RootUI represents the main window
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	settings     *config.Settings
	localization *Localization
	logger       *zap.Logger

	base      config.Options
	newRunner RunnerFactory
	expander  *platform.PlaylistExpander

	view    *BatchView
	busy    bool   // set on the UI goroutine between click and batch end
	warning string // playlist expansion problem shown above item failures

	// UI components
	urlBox       *widget.Entry
	destLabel    *widget.Label
	destEntry    *widget.Entry
	browseBtn    *widget.Button
	downloadBtn  *widget.Button
	titleLabel   *widget.Label
	counterLabel *widget.Label
	percentLabel *widget.Label
	statusLabel  *widget.Label
	sizeLabel    *widget.Label
	speedLabel   *widget.Label
	progressBar  *widget.ProgressBar
	activity     *widget.ProgressBarInfinite
	failureLabel *widget.Label
	filesHeader  *widget.Label
	fileList     *widget.List
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, base config.Options, newRunner RunnerFactory, expander *platform.PlaylistExpander, logger *zap.Logger) *RootUI {
	if logger == nil {
		logger = zap.NewNop()
	}

	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		app:          app,
		settings:     settings,
		localization: localization,
		logger:       logger,
		base:         base,
		newRunner:    newRunner,
		expander:     expander,
		view:         NewBatchView(),
	}

	window.SetTitle(localization.GetText(KeyAppTitle))
	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	l := ui.localization
	ui.createMenu()

	ui.urlBox = widget.NewMultiLineEntry()
	ui.urlBox.SetPlaceHolder(l.GetText(KeyEnterURLs))
	ui.urlBox.SetMinRowsVisible(URLBoxRows)
	ui.urlBox.Wrapping = fyne.TextWrapOff

	// dropped links and files land in the URL box, one per line
	ui.window.SetOnDropped(func(_ fyne.Position, uris []fyne.URI) {
		for _, uri := range uris {
			ui.urlBox.SetText(appendLine(ui.urlBox.Text, uri.String()))
		}
	})

	ui.destLabel = widget.NewLabel(l.GetText(KeyDestination))
	ui.destEntry = widget.NewEntry()
	ui.destEntry.SetText(ui.settings.GetDownloadDirectory())
	ui.browseBtn = widget.NewButton(IconFolder+" "+l.GetText(KeyBrowse), ui.onBrowseDestination)
	destRow := container.NewBorder(nil, nil, ui.destLabel, ui.browseBtn, ui.destEntry)

	ui.downloadBtn = widget.NewButton(l.GetText(KeyDownload), ui.onDownloadClick)
	ui.downloadBtn.Importance = widget.HighImportance

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	header := widget.NewLabelWithStyle(l.GetText(KeyAppTitle), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	var topBar *fyne.Container
	if logo, err := LoadLogoResource(); err == nil {
		logoImage := canvas.NewImageFromResource(logo)
		logoImage.SetMinSize(fyne.NewSize(LogoSize, LogoSize))
		logoImage.FillMode = canvas.ImageFillContain
		topBar = container.NewBorder(nil, nil, container.NewHBox(logoImage, header), settingsBtn)
	} else {
		topBar = container.NewBorder(nil, nil, header, settingsBtn)
	}

	ui.titleLabel = widget.NewLabel("")
	ui.titleLabel.Truncation = fyne.TextTruncateEllipsis
	ui.counterLabel = widget.NewLabel("")
	ui.percentLabel = widget.NewLabel("")
	ui.percentLabel.Alignment = fyne.TextAlignTrailing
	ui.progressBar = widget.NewProgressBar()
	ui.progressBar.TextFormatter = func() string { return "" }
	ui.activity = widget.NewProgressBarInfinite()
	ui.activity.Hide()

	ui.statusLabel = widget.NewLabel(l.GetText(KeyReady))
	ui.sizeLabel = widget.NewLabel("")
	ui.sizeLabel.TextStyle = fyne.TextStyle{Monospace: true}
	ui.speedLabel = widget.NewLabel("")
	ui.speedLabel.TextStyle = fyne.TextStyle{Monospace: true}

	ui.failureLabel = widget.NewLabel("")
	ui.failureLabel.Wrapping = fyne.TextWrapWord
	ui.failureLabel.Importance = widget.DangerImportance
	ui.failureLabel.Hide()

	progressArea := container.NewVBox(
		container.NewBorder(nil, nil, ui.counterLabel, ui.percentLabel, ui.titleLabel),
		container.NewStack(ui.progressBar, ui.activity),
		container.NewHBox(ui.statusLabel, layout.NewSpacer(), ui.sizeLabel, widget.NewLabel(MiddleDotSeparator), ui.speedLabel),
		ui.failureLabel,
	)

	ui.filesHeader = widget.NewLabelWithStyle(l.GetText(KeyCompletedFiles), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	ui.fileList = widget.NewList(
		func() int { return len(ui.view.Files) },
		func() fyne.CanvasObject {
			row := NewFileRow(ui.localization)
			row.SetCallbacks(ui.onOpenFile, ui.onRevealFile, ui.onCopyPath)
			return row
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if row, ok := obj.(*FileRow); ok && id < len(ui.view.Files) {
				row.SetPath(ui.view.Files[id])
			}
		},
	)
	// tapping an entry opens it with the default player
	ui.fileList.OnSelected = func(id widget.ListItemID) {
		if id < len(ui.view.Files) {
			ui.onOpenFile(ui.view.Files[id])
		}
		ui.fileList.Unselect(id)
	}

	top := container.NewVBox(
		topBar,
		ui.urlBox,
		destRow,
		ui.downloadBtn,
		widget.NewSeparator(),
		progressArea,
		widget.NewSeparator(),
		ui.filesHeader,
	)

	ui.window.SetContent(container.NewBorder(top, nil, nil, nil, ui.fileList))
	ui.window.Resize(fyne.NewSize(WindowWidth, WindowHeight))
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	))
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	l := ui.localization
	ui.window.SetTitle(l.GetText(KeyAppTitle))
	ui.urlBox.SetPlaceHolder(l.GetText(KeyEnterURLs))
	ui.destLabel.SetText(l.GetText(KeyDestination))
	ui.browseBtn.SetText(IconFolder + " " + l.GetText(KeyBrowse))
	ui.downloadBtn.SetText(l.GetText(KeyDownload))
	ui.filesHeader.SetText(l.GetText(KeyCompletedFiles))
	ui.render()
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, func() {
		ui.localization.SetLanguage(ui.settings.GetLanguage())
		ui.destEntry.SetText(ui.settings.GetDownloadDirectory())
		ui.refreshUITexts()
		ui.createMenu()
	})
}

// onBrowseDestination picks the destination folder
func (ui *RootUI) onBrowseDestination() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		ui.destEntry.SetText(uri.Path())
		ui.settings.SetDownloadDirectory(uri.Path())
	}, ui.window)
}

// onDownloadClick validates the form and starts a batch in the background
func (ui *RootUI) onDownloadClick() {
	if ui.busy {
		return
	}

	urls := platform.ParseURLs(ui.urlBox.Text)
	if len(urls) == 0 {
		dialog.ShowInformation(ui.localization.GetText(KeyAppTitle), ui.localization.GetText(KeyPleaseEnterURL), ui.window)
		return
	}

	dest := strings.TrimSpace(ui.destEntry.Text)
	if dest == "" {
		dialog.ShowInformation(ui.localization.GetText(KeyAppTitle), ui.localization.GetText(KeyPleaseChooseDir), ui.window)
		return
	}
	ui.settings.SetDownloadDirectory(dest)

	opts := ui.settings.Options(ui.base)
	opts.DownloadDir = dest

	ui.busy = true
	ui.warning = ""
	ui.downloadBtn.Disable()
	go ui.runBatch(urls, opts)
}

// runBatch expands playlists, starts the runner and forwards its events to
// the UI goroutine. It blocks until the event channel closes.
func (ui *RootUI) runBatch(urls []string, opts config.Options) {
	ctx := context.Background()

	if opts.ExpandPlaylists && ui.expander != nil {
		fyne.Do(func() {
			ui.statusLabel.SetText(ui.localization.GetText(KeyExpandingPlaylist))
			ui.activity.Show()
			ui.activity.Start()
		})
		expanded, err := ui.expander.Expand(ctx, urls)
		if err != nil {
			ui.logger.Warn("playlist expansion incomplete", zap.Error(err))
			fyne.Do(func() {
				ui.warning = ui.localization.GetText(KeyPlaylistFailed)
				ui.showFailures(nil)
			})
		}
		if len(expanded) > 0 {
			urls = expanded
		}
	}

	queue := model.NewQueue(urls, opts.DownloadDir)
	events, err := ui.newRunner(opts).Start(ctx, queue)
	if err != nil {
		ui.logger.Error("batch rejected", zap.Error(err))
		fyne.Do(func() {
			ui.endBatch()
			dialog.ShowError(err, ui.window)
		})
		return
	}

	for ev := range events {
		ev := ev
		fyne.Do(func() { ui.applyEvent(ev) })
	}
}

// applyEvent runs on the UI goroutine
func (ui *RootUI) applyEvent(ev download.Event) {
	if ui.view.Apply(ev) {
		ui.fileList.Refresh()
		ui.fileList.ScrollToBottom()
	}
	ui.render()

	if ev.Type == download.EventBatchDone {
		ui.onBatchDone(ev.Summary)
	}
}

// render copies the view state into the widgets
func (ui *RootUI) render() {
	v := ui.view
	l := ui.localization

	ui.titleLabel.SetText(v.Title)
	ui.counterLabel.SetText(v.Counter())
	ui.statusLabel.SetText(l.GetText(v.StatusKey))
	ui.sizeLabel.SetText(v.SizeText)
	ui.speedLabel.SetText(v.SpeedText)

	if v.Running && v.Indeterminate {
		ui.progressBar.Hide()
		ui.activity.Show()
		ui.activity.Start()
		ui.percentLabel.SetText("")
	} else {
		ui.activity.Stop()
		ui.activity.Hide()
		ui.progressBar.Show()
		ui.progressBar.SetValue(v.Fraction)
		ui.percentLabel.SetText(fmt.Sprintf(ProgressLabelFormat, int(v.Fraction*100)))
	}

	ui.showFailures(v.Failures)
}

func (ui *RootUI) showFailures(lines []string) {
	if ui.warning != "" {
		lines = append([]string{ui.warning}, lines...)
	}
	text := failureText(lines, FailureListMaxLines)
	if text == "" {
		ui.failureLabel.Hide()
		return
	}
	ui.failureLabel.SetText(text)
	ui.failureLabel.Show()
}

// onBatchDone re-enables input and reports the batch once
func (ui *RootUI) onBatchDone(summary *model.Summary) {
	ui.endBatch()
	if summary == nil {
		return
	}

	l := ui.localization
	finished := fmt.Sprintf(l.GetText(KeyBatchFinished), summary.Succeeded, summary.Skipped, summary.Failed)
	ui.statusLabel.SetText(finished)

	if summary.Failed > 0 {
		dialog.ShowInformation(l.GetText(KeyBatchFailures), finished+"\n\n"+strings.Join(ui.view.Failures, "\n"), ui.window)
	} else {
		ui.app.SendNotification(&fyne.Notification{
			Title:   l.GetText(KeyAppTitle),
			Content: finished,
		})
	}

	if last := ui.view.LastFile(); last != "" && summary.Succeeded > 0 && ui.settings.GetAutoRevealOnComplete() {
		ui.onRevealFile(last)
	}
}

func (ui *RootUI) endBatch() {
	ui.busy = false
	ui.downloadBtn.Enable()
	ui.activity.Stop()
	ui.activity.Hide()
}

// onRevealFile handles revealing a file in the system file manager
func (ui *RootUI) onRevealFile(filePath string) {
	if err := platform.OpenFileInManager(filePath); err != nil {
		ui.logger.Warn("reveal failed", zap.String("path", filePath), zap.Error(err))
		dialog.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyErrorOpeningFile), err), ui.window)
	}
}

// onOpenFile handles opening a downloaded file with the default application
func (ui *RootUI) onOpenFile(filePath string) {
	if err := platform.OpenFileWithDefaultApp(filePath); err != nil {
		ui.logger.Warn("open failed", zap.String("path", filePath), zap.Error(err))
		dialog.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyErrorOpeningFile), err), ui.window)
	}
}

// onCopyPath handles copying file path to clipboard
func (ui *RootUI) onCopyPath(filePath string) {
	ui.app.Clipboard().SetContent(filePath)
	ui.statusLabel.SetText(ui.localization.GetText(KeyPathCopied))
}

// appendLine adds line to text on its own line
func appendLine(text, line string) string {
	line = strings.TrimSpace(line)
	if line == "" {
		return text
	}
	if text != "" && !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	return text + line + "\n"
}

// failureText keeps the last limit lines, prefixed by the error icon
func failureText(lines []string, limit int) string {
	if len(lines) == 0 {
		return ""
	}
	if limit > 0 && len(lines) > limit {
		lines = lines[len(lines)-limit:]
	}
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		out = append(out, IconError+" "+line)
	}
	return strings.Join(out, "\n")
}
