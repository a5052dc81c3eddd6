package model

import "testing"

func TestItemStatus_IsActive(t *testing.T) {
	tests := []struct {
		status   ItemStatus
		expected bool
	}{
		{ItemStatusPending, false},
		{ItemStatusResolving, true},
		{ItemStatusCheckingDedup, true},
		{ItemStatusFetching, true},
		{ItemStatusRelocating, true},
		{ItemStatusRecorded, true},
		{ItemStatusSkipped, false},
		{ItemStatusDone, false},
		{ItemStatusFailed, false},
	}

	for _, test := range tests {
		result := test.status.IsActive()
		if result != test.expected {
			t.Errorf("ItemStatus(%s).IsActive() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestItemStatus_IsFinished(t *testing.T) {
	tests := []struct {
		status   ItemStatus
		expected bool
	}{
		{ItemStatusPending, false},
		{ItemStatusResolving, false},
		{ItemStatusFetching, false},
		{ItemStatusRecorded, false},
		{ItemStatusSkipped, true},
		{ItemStatusDone, true},
		{ItemStatusFailed, true},
	}

	for _, test := range tests {
		result := test.status.IsFinished()
		if result != test.expected {
			t.Errorf("ItemStatus(%s).IsFinished() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestItemStatus_String(t *testing.T) {
	status := ItemStatusCheckingDedup
	expected := "checking_dedup"
	result := status.String()

	if result != expected {
		t.Errorf("ItemStatus.String() = %s, expected %s", result, expected)
	}
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to ItemStatus
		allowed  bool
	}{
		{ItemStatusPending, ItemStatusResolving, true},
		{ItemStatusResolving, ItemStatusCheckingDedup, true},
		{ItemStatusResolving, ItemStatusFailed, true},
		{ItemStatusCheckingDedup, ItemStatusSkipped, true},
		{ItemStatusCheckingDedup, ItemStatusFetching, true},
		{ItemStatusFetching, ItemStatusFailed, true},
		{ItemStatusRelocating, ItemStatusRecorded, true},
		{ItemStatusRecorded, ItemStatusDone, true},
		{ItemStatusPending, ItemStatusFetching, false},
		{ItemStatusFetching, ItemStatusRecorded, false},
		{ItemStatusRecorded, ItemStatusFailed, false},
		{ItemStatusDone, ItemStatusPending, false},
		{ItemStatusFailed, ItemStatusResolving, false},
		{ItemStatus("bogus"), ItemStatusDone, false},
	}

	for _, test := range tests {
		if got := CanTransition(test.from, test.to); got != test.allowed {
			t.Errorf("CanTransition(%s, %s) = %v, expected %v", test.from, test.to, got, test.allowed)
		}
	}
}

func TestTransition(t *testing.T) {
	item := &WorkItem{ID: "item-1", URL: "https://youtube.com/watch?v=abc", Status: ItemStatusPending}

	if err := Transition(item, ItemStatusResolving); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.Status != ItemStatusResolving {
		t.Errorf("expected status resolving, got %s", item.Status)
	}

	if err := Transition(item, ItemStatusDone); err == nil {
		t.Error("expected error for resolving -> done")
	}
	if item.Status != ItemStatusResolving {
		t.Errorf("status must not change on rejected transition, got %s", item.Status)
	}
}

func TestItemStatus_IsKnown(t *testing.T) {
	if !ItemStatusRelocating.IsKnown() {
		t.Error("relocating should be a known status")
	}
	if ItemStatus("paused").IsKnown() {
		t.Error("paused should not be a known status")
	}
}
