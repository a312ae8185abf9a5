package progress

import "sync/atomic"

// Sink receives byte-count updates from concurrent hashing workers.
// Implementations must be safe for concurrent use.
type Sink interface {
	// Add records n more bytes processed.
	Add(n int64)

	// FileDone records that one input finished (successfully or not).
	FileDone()
}

// Null is a Sink that discards all updates. Used when --progress is off.
type Null struct{}

func (Null) Add(int64) {}
func (Null) FileDone() {}

// Meter aggregates progress across workers with atomic counters, so
// concurrent updates never lose increments. The zero value is usable.
type Meter struct {
	bytes atomic.Int64
	files atomic.Int64

	totalBytes int64
	totalFiles int64
}

// NewMeter creates a meter with known totals. totalBytes may be negative
// when input sizes are unknown (e.g. standard input).
func NewMeter(totalBytes int64, totalFiles int) *Meter {
	return &Meter{totalBytes: totalBytes, totalFiles: int64(totalFiles)}
}

// Add records n more bytes processed.
func (m *Meter) Add(n int64) {
	m.bytes.Add(n)
}

// FileDone records one finished input.
func (m *Meter) FileDone() {
	m.files.Add(1)
}

// Bytes returns the cumulative bytes processed across all workers.
func (m *Meter) Bytes() int64 { return m.bytes.Load() }

// Files returns the number of finished inputs.
func (m *Meter) Files() int64 { return m.files.Load() }

// TotalBytes returns the expected byte total, or a negative value if unknown.
func (m *Meter) TotalBytes() int64 { return m.totalBytes }

// TotalFiles returns the number of inputs.
func (m *Meter) TotalFiles() int64 { return m.totalFiles }

// Fraction returns completion in [0, 1], or -1 when the total is unknown.
func (m *Meter) Fraction() float64 {
	if m.totalBytes <= 0 {
		return -1
	}
	f := float64(m.Bytes()) / float64(m.totalBytes)
	if f > 1 {
		f = 1
	}
	return f
}
