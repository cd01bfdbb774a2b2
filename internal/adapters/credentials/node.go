package credentials

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/dispatch/internal/adapters/api"
	"go.trai.ch/dispatch/internal/adapters/logger"
	"go.trai.ch/dispatch/internal/adapters/prompt"
	"go.trai.ch/dispatch/internal/core/ports"
)

// NodeID is the unique identifier for the credential resolver Graft node.
const NodeID graft.ID = "adapter.credentials"

func init() {
	graft.Register(graft.Node[ports.CredentialResolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{api.NodeID, prompt.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.CredentialResolver, error) {
			client, err := graft.Dep[*api.Client](ctx)
			if err != nil {
				return nil, err
			}
			prompter, err := graft.Dep[ports.Prompter](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewResolver(client, prompter, log), nil
		},
	})
}
