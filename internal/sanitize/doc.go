package sanitize

// Package sanitize turns raw video titles into filesystem-safe, human-readable
// track names. The transformation is pure and deterministic.
