package progrock

import (
	"fmt"
	"sync"

	"github.com/vito/progrock"
	"go.trai.ch/nupin/internal/core/ports"
)

type vertexState int

const (
	stateRunning vertexState = iota
	stateChanged
	stateUnchanged
	stateFailed
)

// Counts tallies vertices by final state.
type Counts struct {
	Running   int
	Changed   int
	Unchanged int
	Failed    int
}

// Total returns the number of distinct vertices seen.
func (c Counts) Total() int {
	return c.Running + c.Changed + c.Unchanged + c.Failed
}

// Summary is a progrock.Writer that tracks vertex states and logs a one-line
// summary when closed.
type Summary struct {
	logger ports.Logger

	mu       sync.Mutex
	order    []string
	vertices map[string]vertexState
	closed   bool
}

var _ progrock.Writer = (*Summary)(nil)

// NewSummary returns a Summary reporting to logger. A nil logger disables the
// closing report.
func NewSummary(logger ports.Logger) *Summary {
	return &Summary{
		logger:   logger,
		vertices: make(map[string]vertexState),
	}
}

// WriteStatus folds an update into the tracked states.
func (s *Summary) WriteStatus(update *progrock.StatusUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, v := range update.Vertexes {
		if _, ok := s.vertices[v.Id]; !ok {
			s.order = append(s.order, v.Id)
		}
		s.vertices[v.Id] = stateOf(v)
	}
	return nil
}

func stateOf(v *progrock.Vertex) vertexState {
	switch {
	case v.Completed == nil:
		return stateRunning
	case v.Error != nil:
		return stateFailed
	case v.Cached:
		return stateUnchanged
	default:
		return stateChanged
	}
}

// Counts returns the current tally.
func (s *Summary) Counts() Counts {
	s.mu.Lock()
	defer s.mu.Unlock()

	var c Counts
	for _, id := range s.order {
		switch s.vertices[id] {
		case stateRunning:
			c.Running++
		case stateChanged:
			c.Changed++
		case stateUnchanged:
			c.Unchanged++
		case stateFailed:
			c.Failed++
		}
	}
	return c
}

// Close logs the summary once. Runs that recorded nothing stay silent.
func (s *Summary) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.mu.Unlock()

	c := s.Counts()
	if s.logger == nil || c.Total() < 2 {
		return nil
	}
	s.logger.Info(fmt.Sprintf("%d packages: %d pinned, %d unchanged, %d failed",
		c.Total(), c.Changed, c.Unchanged, c.Failed))
	return nil
}
