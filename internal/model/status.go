package model

import "fmt"

// ItemStatus represents the position of a work item in the download pipeline
type ItemStatus string

const (
	// ItemStatusPending means the item is queued but not started
	ItemStatusPending ItemStatus = "pending"

	// ItemStatusResolving means metadata is being queried
	ItemStatusResolving ItemStatus = "resolving"

	// ItemStatusCheckingDedup means the ID store is being consulted
	ItemStatusCheckingDedup ItemStatus = "checking_dedup"

	// ItemStatusFetching means the audio stream is downloading and transcoding
	ItemStatusFetching ItemStatus = "fetching"

	// ItemStatusRelocating means the artifact is being renamed and moved
	ItemStatusRelocating ItemStatus = "relocating"

	// ItemStatusRecorded means the video ID was appended to the ID store
	ItemStatusRecorded ItemStatus = "recorded"

	// ItemStatusSkipped means the video ID was already downloaded
	ItemStatusSkipped ItemStatus = "skipped"

	// ItemStatusDone means the item finished successfully
	ItemStatusDone ItemStatus = "done"

	// ItemStatusFailed means the item failed with an error
	ItemStatusFailed ItemStatus = "failed"
)

var allowedTransitions = map[ItemStatus]map[ItemStatus]bool{
	ItemStatusPending: {
		ItemStatusResolving: true,
		ItemStatusFailed:    true,
	},
	ItemStatusResolving: {
		ItemStatusCheckingDedup: true,
		ItemStatusFailed:        true,
	},
	ItemStatusCheckingDedup: {
		ItemStatusFetching: true,
		ItemStatusSkipped:  true,
		ItemStatusFailed:   true,
	},
	ItemStatusFetching: {
		ItemStatusRelocating: true,
		ItemStatusFailed:     true,
	},
	ItemStatusRelocating: {
		ItemStatusRecorded: true,
		ItemStatusFailed:   true,
	},
	ItemStatusRecorded: {
		ItemStatusDone: true,
	},
	ItemStatusSkipped: {},
	ItemStatusDone:    {},
	ItemStatusFailed:  {},
}

// String returns the string representation of ItemStatus
func (s ItemStatus) String() string {
	return string(s)
}

// IsActive returns true while the single worker is processing the item
func (s ItemStatus) IsActive() bool {
	switch s {
	case ItemStatusResolving, ItemStatusCheckingDedup, ItemStatusFetching, ItemStatusRelocating, ItemStatusRecorded:
		return true
	}
	return false
}

// IsFinished returns true if the item reached a terminal state (done, skipped, or failed)
func (s ItemStatus) IsFinished() bool {
	return s == ItemStatusDone || s == ItemStatusSkipped || s == ItemStatusFailed
}

// IsKnown reports whether s is one of the defined statuses
func (s ItemStatus) IsKnown() bool {
	_, ok := allowedTransitions[s]
	return ok
}

// CanTransition reports whether an item may move from one status to another
func CanTransition(from, to ItemStatus) bool {
	next, ok := allowedTransitions[from]
	if !ok {
		return false
	}
	return next[to]
}

// Transition moves the item to the given status or returns an error if the
// transition is not allowed.
func Transition(item *WorkItem, to ItemStatus) error {
	from := item.Status
	if !CanTransition(from, to) {
		return fmt.Errorf("invalid item status transition: %q -> %q (item=%s url=%s)", from, to, item.ID, item.URL)
	}
	item.Status = to
	return nil
}
