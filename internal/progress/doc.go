// Package progress turns raw transfer counters into ordered, display-ready
// snapshots for a single work item.
package progress
