package stats

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"
)

const ringSize = 60

// Reader is the read side of a Collector used by presenters.
type Reader interface {
	Snapshot() Snapshot
	RollingSpeed(seconds int) float64
	SparklineData(n int) []float64
	ETA() time.Duration
}

// ReadTicker is a Reader that the presenter also ticks once per second.
type ReadTicker interface {
	Reader
	Tick()
}

// Collector tracks loading session statistics using lock-free atomic counters.
// Media bytes are written by the player goroutine; everything else by the
// session loop.
type Collector struct {
	mediaBytes     atomic.Int64
	mediaTotal     atomic.Int64
	tierSwitches   atomic.Int64
	strategyRuns   atomic.Int64
	progressFrames atomic.Int64
	startTime      time.Time

	// Ring buffer, written only by the presenter's Tick().
	mu         sync.Mutex
	throughput [ringSize]int64 // media bytes delta per second
	ringIdx    int
	ringCount  int // how many samples have been written (capped at ringSize)
	lastBytes  int64
}

// NewCollector creates a Collector with startTime set to now.
func NewCollector() *Collector {
	return &Collector{startTime: time.Now()}
}

// SetMediaTotal records the media size announced by the server, or 0 if unknown.
func (c *Collector) SetMediaTotal(bytes int64) { c.mediaTotal.Store(bytes) }

// Snapshot is a point-in-time read of all counters.
type Snapshot struct {
	MediaBytes     int64
	MediaTotal     int64
	TierSwitches   int64
	StrategyRuns   int64
	ProgressFrames int64
	Elapsed        time.Duration
}

func (c *Collector) AddMediaBytes(n int64)     { c.mediaBytes.Add(n) }
func (c *Collector) AddTierSwitches(n int64)   { c.tierSwitches.Add(n) }
func (c *Collector) AddStrategyRuns(n int64)   { c.strategyRuns.Add(n) }
func (c *Collector) AddProgressFrames(n int64) { c.progressFrames.Add(n) }

// Snapshot returns a consistent point-in-time read of all counters.
func (c *Collector) Snapshot() Snapshot {
	return Snapshot{
		MediaBytes:     c.mediaBytes.Load(),
		MediaTotal:     c.mediaTotal.Load(),
		TierSwitches:   c.tierSwitches.Load(),
		StrategyRuns:   c.strategyRuns.Load(),
		ProgressFrames: c.progressFrames.Load(),
		Elapsed:        c.Elapsed(),
	}
}

// Tick snapshots the media byte delta into the ring buffer. Called 1/sec by the presenter.
func (c *Collector) Tick() {
	current := c.mediaBytes.Load()

	c.mu.Lock()
	defer c.mu.Unlock()

	c.throughput[c.ringIdx] = current - c.lastBytes
	c.lastBytes = current
	c.ringIdx = (c.ringIdx + 1) % ringSize
	if c.ringCount < ringSize {
		c.ringCount++
	}
}

// RollingSpeed returns average media bytes/sec over the last n seconds of samples.
func (c *Collector) RollingSpeed(seconds int) float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	count := min(seconds, c.ringCount)
	if count <= 0 {
		return 0
	}
	var sum int64
	for i := range count {
		idx := (c.ringIdx - 1 - i + ringSize) % ringSize
		sum += c.throughput[idx]
	}
	return float64(sum) / float64(count)
}

// SparklineData returns the last n bytes/sec samples for rendering.
func (c *Collector) SparklineData(n int) []float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	count := min(n, c.ringCount)
	if count <= 0 {
		return nil
	}

	data := make([]float64, count)
	for i := range count {
		// oldest first
		idx := (c.ringIdx - count + i + ringSize) % ringSize
		data[i] = float64(c.throughput[idx])
	}
	return data
}

// ETA estimates the remaining media transfer time from the rolling speed.
// Returns 0 when the size is unknown or nothing is flowing.
func (c *Collector) ETA() time.Duration {
	speed := c.RollingSpeed(5)
	if speed <= 0 {
		return 0
	}
	remaining := c.mediaTotal.Load() - c.mediaBytes.Load()
	if remaining <= 0 {
		return 0
	}
	return time.Duration(float64(remaining)/speed) * time.Second
}

// Elapsed returns time since collector creation.
func (c *Collector) Elapsed() time.Duration {
	return time.Since(c.startTime)
}

func (s Snapshot) String() string {
	return fmt.Sprintf(
		"media=%d/%d switches=%d runs=%d frames=%d",
		s.MediaBytes, s.MediaTotal, s.TierSwitches, s.StrategyRuns, s.ProgressFrames,
	)
}

// FormatBytes returns a human-readable byte count.
func FormatBytes(b int64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := int64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(b)/float64(div), "KMGTPE"[exp])
}
