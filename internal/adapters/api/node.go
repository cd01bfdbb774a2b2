package api

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/dispatch/internal/adapters/session"
	"go.trai.ch/dispatch/internal/core/domain"
	"go.trai.ch/dispatch/internal/core/ports"
)

// BaseURLEnv overrides the build service endpoint.
const BaseURLEnv = "DISPATCH_API_URL"

// NodeID is the unique identifier for the build service client Graft node.
const NodeID graft.ID = "adapter.api"

func init() {
	graft.Register(graft.Node[*Client]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{session.NodeID},
		Run: func(ctx context.Context) (*Client, error) {
			sessions, err := graft.Dep[ports.SessionStore](ctx)
			if err != nil {
				return nil, err
			}

			baseURL := os.Getenv(BaseURLEnv)
			if baseURL == "" {
				baseURL = domain.DefaultAPIBaseURL
			}
			return NewClient(baseURL, sessions), nil
		},
	})
}
