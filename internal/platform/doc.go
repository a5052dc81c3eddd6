// Package platform holds OS and input helpers: URL list parsing, playlist
// expansion, staging file moves and opening files with the desktop handler.
package platform
