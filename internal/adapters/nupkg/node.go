package nupkg

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/nupin/internal/core/ports"
)

// NodeID is the unique identifier for the package opener Graft node.
const NodeID graft.ID = "adapter.package_opener"

func init() {
	graft.Register(graft.Node[ports.PackageOpener]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.PackageOpener, error) {
			return NewOpener(), nil
		},
	})
}
