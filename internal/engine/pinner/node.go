package pinner

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/nupin/internal/adapters/nupkg"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/nupin/internal/adapters/nuspec" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/nupin/internal/core/ports"
)

// NodeID is the unique identifier for the pinner Graft node.
const NodeID graft.ID = "engine.pinner"

func init() {
	graft.Register(graft.Node[*Pinner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			nupkg.NodeID,
			nuspec.NodeID,
		},
		Run: func(ctx context.Context) (*Pinner, error) {
			opener, err := graft.Dep[ports.PackageOpener](ctx)
			if err != nil {
				return nil, err
			}

			editor, err := graft.Dep[ports.ManifestEditor](ctx)
			if err != nil {
				return nil, err
			}

			return New(opener, editor), nil
		},
	})
}
