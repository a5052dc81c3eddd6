package progress

import (
	"fmt"
	"math"
	"sync"

	"github.com/dustin/go-humanize"
)

// Display texts for unknown values
const (
	PreparingText   = "Preparing..."
	CalculatingText = "calculating..."
)

// Update is a raw progress tuple from the extractor. Total <= 0 means the
// size is not known yet. Speed is in bytes per second, 0 when unknown.
type Update struct {
	Downloaded int64
	Total      int64
	Speed      float64
}

// Snapshot is a normalised view of one Update
type Snapshot struct {
	Item          string  `json:"item"`
	Seq           uint64  `json:"seq"`
	Fraction      float64 `json:"fraction"`
	Indeterminate bool    `json:"indeterminate"`
	Downloaded    int64   `json:"downloaded"`
	Total         int64   `json:"total"`
	Speed         float64 `json:"speed"`
	SizeText      string  `json:"size_text"`
	SpeedText     string  `json:"speed_text"`
}

// Percent returns the fraction as a whole percentage
func (s Snapshot) Percent() int {
	return int(s.Fraction * 100)
}

// Tracker numbers snapshots for one item. Seq starts at 1 and increases by
// one per Observe call.
type Tracker struct {
	mu   sync.Mutex
	item string
	seq  uint64
}

// NewTracker creates a tracker for the item with the given ID
func NewTracker(item string) *Tracker {
	return &Tracker{item: item}
}

// Observe converts u into the next snapshot
func (t *Tracker) Observe(u Update) Snapshot {
	t.mu.Lock()
	t.seq++
	seq := t.seq
	t.mu.Unlock()

	snap := Normalize(u)
	snap.Item = t.item
	snap.Seq = seq
	return snap
}

// Last returns the sequence number of the most recent snapshot, 0 if none
func (t *Tracker) Last() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.seq
}

// Normalize computes the fraction and texts for u without sequencing it
func Normalize(u Update) Snapshot {
	downloaded := u.Downloaded
	if downloaded < 0 {
		downloaded = 0
	}
	speed := u.Speed
	if speed < 0 {
		speed = 0
	}

	snap := Snapshot{
		Downloaded: downloaded,
		Total:      u.Total,
		Speed:      speed,
		SpeedText:  FormatSpeed(speed),
	}

	if u.Total <= 0 {
		snap.Total = 0
		snap.Indeterminate = true
		snap.SizeText = FormatSize(downloaded, 0)
		return snap
	}

	snap.Fraction = clamp(float64(downloaded) / float64(u.Total))
	snap.SizeText = FormatSize(downloaded, u.Total)
	return snap
}

// FormatSize renders "1.2 MB / 4.5 MB", or just the downloaded amount when
// the total is unknown, or PreparingText when nothing has arrived yet.
func FormatSize(downloaded, total int64) string {
	if downloaded <= 0 && total <= 0 {
		return PreparingText
	}
	if total <= 0 {
		return humanize.Bytes(uint64(downloaded))
	}
	if downloaded < 0 {
		downloaded = 0
	}
	return fmt.Sprintf("%s / %s", humanize.Bytes(uint64(downloaded)), humanize.Bytes(uint64(total)))
}

// FormatSpeed renders a bytes-per-second rate such as "312 kB/s"
func FormatSpeed(bytesPerSecond float64) string {
	if bytesPerSecond <= 0 {
		return CalculatingText
	}
	return humanize.Bytes(uint64(bytesPerSecond)) + "/s"
}

func clamp(v float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
