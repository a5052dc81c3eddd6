// Package encoder locates the ffmpeg binary used for MP3 transcoding and
// probes it for diagnostics.
package encoder
