// Package cli is the headless front end: a cobra command tree that loads
// the YAML/env configuration, runs download batches with a terminal
// progress bar, and exposes the ID history, the title cleaner and an
// environment check.
package cli
