package ui

import (
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// FileRow shows one completed MP3 with open, reveal and copy actions
type FileRow struct {
	widget.BaseWidget

	path         string
	localization *Localization

	nameLabel *widget.Label
	openBtn   *widget.Button
	revealBtn *widget.Button
	copyBtn   *widget.Button

	onOpen     func(filePath string)
	onReveal   func(filePath string)
	onCopyPath func(filePath string)
}

// NewFileRow creates an empty row; SetPath fills it
func NewFileRow(localization *Localization) *FileRow {
	fr := &FileRow{localization: localization}
	fr.ExtendBaseWidget(fr)
	fr.createUI()
	return fr
}

// SetCallbacks sets the action callbacks
func (fr *FileRow) SetCallbacks(onOpen, onReveal, onCopyPath func(filePath string)) {
	fr.onOpen = onOpen
	fr.onReveal = onReveal
	fr.onCopyPath = onCopyPath
}

// SetPath points the row at a file
func (fr *FileRow) SetPath(path string) {
	fr.path = path
	fr.nameLabel.SetText(IconMusic + " " + filepath.Base(path))
	if path == "" {
		fr.openBtn.Disable()
		fr.revealBtn.Disable()
		fr.copyBtn.Disable()
	} else {
		fr.openBtn.Enable()
		fr.revealBtn.Enable()
		fr.copyBtn.Enable()
	}
}

// Path returns the file the row shows
func (fr *FileRow) Path() string {
	return fr.path
}

func (fr *FileRow) createUI() {
	fr.nameLabel = widget.NewLabel("")
	fr.nameLabel.Truncation = fyne.TextTruncateEllipsis

	// each button reads fr.path at click time since list rows are reused
	fr.openBtn = widget.NewButton(IconPlay, func() { fr.invoke(fr.onOpen) })
	fr.openBtn.Importance = widget.LowImportance
	fr.revealBtn = widget.NewButton(IconFolder, func() { fr.invoke(fr.onReveal) })
	fr.revealBtn.Importance = widget.LowImportance
	fr.copyBtn = widget.NewButton(IconCopy, func() { fr.invoke(fr.onCopyPath) })
	fr.copyBtn.Importance = widget.LowImportance
}

func (fr *FileRow) invoke(fn func(string)) {
	if fn == nil || fr.path == "" {
		return
	}
	fn(fr.path)
}

// CreateRenderer creates the widget renderer
func (fr *FileRow) CreateRenderer() fyne.WidgetRenderer {
	actions := container.NewHBox(fr.openBtn, fr.revealBtn, fr.copyBtn)
	return widget.NewSimpleRenderer(container.NewBorder(nil, nil, nil, actions, fr.nameLabel))
}

// MinSize keeps rows wide enough for the file name
func (fr *FileRow) MinSize() fyne.Size {
	fr.ExtendBaseWidget(fr)
	size := fr.BaseWidget.MinSize()
	if size.Width < FileRowMinWidth {
		size.Width = FileRowMinWidth
	}
	return size
}
