package progrock

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/nupin/internal/adapters/logger"
	"go.trai.ch/nupin/internal/core/ports"
)

// NodeID is the graft identifier of the telemetry adapter.
const NodeID graft.ID = "adapter.telemetry"

func init() {
	graft.Register(graft.Node[ports.Telemetry]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Telemetry, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(log), nil
		},
	})
}
