package progress

import (
	"sync"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name          string
		update        Update
		fraction      float64
		indeterminate bool
		sizeText      string
		speedText     string
	}{
		{
			name:          "nothing yet",
			update:        Update{},
			indeterminate: true,
			sizeText:      PreparingText,
			speedText:     CalculatingText,
		},
		{
			name:      "half way",
			update:    Update{Downloaded: 2_000_000, Total: 4_000_000, Speed: 312_000},
			fraction:  0.5,
			sizeText:  "2.0 MB / 4.0 MB",
			speedText: "312 kB/s",
		},
		{
			name:          "unknown total",
			update:        Update{Downloaded: 1_500_000, Total: 0, Speed: 1_000},
			indeterminate: true,
			sizeText:      "1.5 MB",
			speedText:     "1.0 kB/s",
		},
		{
			name:      "overshoot is clamped",
			update:    Update{Downloaded: 5_000, Total: 4_000},
			fraction:  1,
			sizeText:  "5.0 kB / 4.0 kB",
			speedText: CalculatingText,
		},
		{
			name:          "negative total is unknown",
			update:        Update{Downloaded: 10, Total: -1},
			indeterminate: true,
			sizeText:      "10 B",
			speedText:     CalculatingText,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := Normalize(tt.update)
			if snap.Fraction != tt.fraction {
				t.Errorf("Fraction = %v, expected %v", snap.Fraction, tt.fraction)
			}
			if snap.Indeterminate != tt.indeterminate {
				t.Errorf("Indeterminate = %v, expected %v", snap.Indeterminate, tt.indeterminate)
			}
			if snap.SizeText != tt.sizeText {
				t.Errorf("SizeText = %q, expected %q", snap.SizeText, tt.sizeText)
			}
			if snap.SpeedText != tt.speedText {
				t.Errorf("SpeedText = %q, expected %q", snap.SpeedText, tt.speedText)
			}
			if snap.Fraction < 0 || snap.Fraction > 1 {
				t.Errorf("Fraction %v out of range", snap.Fraction)
			}
		})
	}
}

func TestTracker_SeqIncreases(t *testing.T) {
	tracker := NewTracker("item-1")

	var last uint64
	for i := int64(0); i < 10; i++ {
		snap := tracker.Observe(Update{Downloaded: i * 100, Total: 1000})
		if snap.Item != "item-1" {
			t.Errorf("Item = %q, expected item-1", snap.Item)
		}
		if snap.Seq != last+1 {
			t.Errorf("Seq = %d, expected %d", snap.Seq, last+1)
		}
		last = snap.Seq
	}

	if tracker.Last() != 10 {
		t.Errorf("Last() = %d, expected 10", tracker.Last())
	}
}

func TestTracker_SeqRestartsPerItem(t *testing.T) {
	first := NewTracker("a")
	first.Observe(Update{})
	first.Observe(Update{})

	second := NewTracker("b")
	if snap := second.Observe(Update{}); snap.Seq != 1 {
		t.Errorf("Expected new tracker to start at 1, got %d", snap.Seq)
	}
}

func TestTracker_ConcurrentObserveIsUnique(t *testing.T) {
	tracker := NewTracker("item")
	const n = 200

	seen := make(chan uint64, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			seen <- tracker.Observe(Update{Downloaded: 1, Total: 2}).Seq
		}()
	}
	wg.Wait()
	close(seen)

	unique := make(map[uint64]bool, n)
	for seq := range seen {
		if unique[seq] {
			t.Fatalf("duplicate seq %d", seq)
		}
		unique[seq] = true
	}
	if len(unique) != n {
		t.Errorf("Expected %d unique seqs, got %d", n, len(unique))
	}
}

func TestSnapshot_Percent(t *testing.T) {
	snap := Normalize(Update{Downloaded: 1, Total: 4})
	if snap.Percent() != 25 {
		t.Errorf("Percent() = %d, expected 25", snap.Percent())
	}
}
