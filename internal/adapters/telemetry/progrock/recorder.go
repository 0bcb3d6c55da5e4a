// Package progrock records pin operations as progrock vertices.
package progrock

import (
	"context"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/nupin/internal/core/ports"
)

// Recorder implements ports.Telemetry with one vertex per recorded name.
type Recorder struct {
	w   progrock.Writer
	rec *progrock.Recorder
}

// New returns a Recorder that reports a run summary to logger on Close.
func New(logger ports.Logger) ports.Telemetry {
	return NewRecorder(NewSummary(logger))
}

// NewRecorder returns a Recorder writing status updates to w.
func NewRecorder(w progrock.Writer) *Recorder {
	return &Recorder{
		w:   w,
		rec: progrock.NewRecorder(w),
	}
}

// Record starts a vertex. The digest is derived from name, so recording the
// same archive path twice updates a single vertex.
func (r *Recorder) Record(_ context.Context, name string) ports.Vertex {
	return &Vertex{vertex: r.rec.Vertex(digest.FromString(name), name)}
}

// Close flushes the writer.
func (r *Recorder) Close() error {
	return r.w.Close()
}
