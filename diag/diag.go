package diag

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/xy-planning-network/render/logger"
)

// A Deprecation is a structured diagnostic event marking use of a surface
// slated for removal. A Deprecation carries advice, not control flow;
// the deprecated behavior is still honored by whatever reported it.
type Deprecation struct {
	ID      uuid.UUID `json:"id"`
	Message string    `json:"message"`
	Stamp   time.Time `json:"stamp"`
}

// NewDeprecation constructs a Deprecation carrying the provided advisory,
// stamping it with a unique ID and the current time.
func NewDeprecation(msg string) Deprecation {
	return Deprecation{
		ID:      uuid.New(),
		Message: msg,
		Stamp:   time.Now(),
	}
}

// A Reporter consumes Deprecations.
//
// Report must not panic and must be safe for concurrent use;
// it is called inline while handling HTTP requests.
type Reporter interface {
	Report(d Deprecation)
}

// A LogReporter emits Deprecations through a logger.Logger as warnings.
type LogReporter struct {
	l logger.Logger
}

// NewLogReporter constructs a *LogReporter wrapping the provided logger.Logger.
func NewLogReporter(l logger.Logger) *LogReporter {
	return &LogReporter{l: l}
}

// Report writes the Deprecation as a warning log,
// stashing its ID and timestamp in the LogContext.
func (lr *LogReporter) Report(d Deprecation) {
	if lr.l == nil {
		return
	}

	lr.l.Warn(d.Message, &logger.LogContext{Data: map[string]any{
		"deprecationID": d.ID.String(),
		"stamp":         d.Stamp.Format(time.RFC3339),
	}})
}

// A Recorder captures Deprecations for later inspection.
// It is the Reporter to hand to code under test.
type Recorder struct {
	mu     sync.Mutex
	events []Deprecation
}

// Report stores the Deprecation.
func (r *Recorder) Report(d Deprecation) {
	r.mu.Lock()
	r.events = append(r.events, d)
	r.mu.Unlock()
}

// Events returns a copy of all Deprecations reported so far.
func (r *Recorder) Events() []Deprecation {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Deprecation, len(r.events))
	copy(out, r.events)
	return out
}

// Reset drops all captured Deprecations.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.events = nil
	r.mu.Unlock()
}
