// Package ui contains the Fyne desktop shell. It collects URLs and a
// destination folder, starts a download batch, and renders the batch's
// event stream: progress, status, completed files and failures. All UI
// strings are localized via Localization.
package ui
