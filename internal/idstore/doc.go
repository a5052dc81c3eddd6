package idstore

// Package idstore persists the set of video IDs that were downloaded
// successfully. The backing file is plain UTF-8 text with one ID per line and
// is only ever appended to.
