package archive

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/dispatch/internal/adapters/api"
	"go.trai.ch/dispatch/internal/adapters/logger"
	"go.trai.ch/dispatch/internal/core/ports"
)

// NodeID is the unique identifier for the archive producer Graft node.
const NodeID graft.ID = "adapter.archive"

func init() {
	graft.Register(graft.Node[ports.ArchiveProducer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{api.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.ArchiveProducer, error) {
			client, err := graft.Dep[*api.Client](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewProducer(client, log), nil
		},
	})
}
