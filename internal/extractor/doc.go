// Package extractor wraps yt-dlp (via github.com/lrstanley/go-ytdlp) behind a
// small interface: metadata resolution without payload, and a fetch that
// leaves a transcoded MP3 in a staging directory while reporting progress.
package extractor
