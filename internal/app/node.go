package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/nupin/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/nupin/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/nupin/internal/adapters/nupkg"              //nolint:depguard // Wired in app layer
	"go.trai.ch/nupin/internal/adapters/nuspec"             //nolint:depguard // Wired in app layer
	"go.trai.ch/nupin/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/nupin/internal/core/ports"
	"go.trai.ch/nupin/internal/engine/pinner"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			pinner.NodeID,
			config.NodeID,
			nupkg.NodeID,
			nuspec.NodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: a, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	p, err := graft.Dep[*pinner.Pinner](ctx)
	if err != nil {
		return nil, err
	}

	plans, err := graft.Dep[ports.PlanLoader](ctx)
	if err != nil {
		return nil, err
	}

	opener, err := graft.Dep[ports.PackageOpener](ctx)
	if err != nil {
		return nil, err
	}

	editor, err := graft.Dep[ports.ManifestEditor](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	return New(p, plans, opener, editor, log, telemetry), nil
}
