package history

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/dispatch/internal/core/domain"
	"go.trai.ch/dispatch/internal/core/ports"
)

// NodeID is the unique identifier for the build history Graft node.
const NodeID graft.ID = "adapter.build_history"

func init() {
	graft.Register(graft.Node[ports.BuildHistoryStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.BuildHistoryStore, error) {
			return NewStore(domain.DefaultHistoryPath()), nil
		},
	})
}
