package scheduler

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/dispatch/internal/adapters/api"
	"go.trai.ch/dispatch/internal/adapters/logger"
	"go.trai.ch/dispatch/internal/adapters/telemetry"
	"go.trai.ch/dispatch/internal/core/ports"
)

// NodeID is the unique identifier for the scheduler Graft node.
const NodeID graft.ID = "engine.scheduler"

func init() {
	graft.Register(graft.Node[*Scheduler]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{api.NodeID, telemetry.TracerNodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Scheduler, error) {
			client, err := graft.Dep[*api.Client](ctx)
			if err != nil {
				return nil, err
			}
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewScheduler(client, tracer, log), nil
		},
	})
}
