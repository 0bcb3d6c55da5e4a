package nuspec

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/nupin/internal/core/ports"
)

// NodeID is the unique identifier for the manifest editor Graft node.
const NodeID graft.ID = "adapter.manifest_editor"

func init() {
	graft.Register(graft.Node[ports.ManifestEditor]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ManifestEditor, error) {
			return NewEditor(), nil
		},
	})
}
