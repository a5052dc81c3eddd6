// Package download runs a batch of URLs through the single-worker pipeline:
// resolve metadata, skip IDs already in the store, fetch and transcode into
// a staging directory, rename by cleaned title, move into the destination
// and record the ID. Progress and state changes are published as ordered
// events.
package download
