package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/dispatch/internal/adapters/api"         //nolint:depguard // Wired in app layer
	"go.trai.ch/dispatch/internal/adapters/archive"     //nolint:depguard // Wired in app layer
	"go.trai.ch/dispatch/internal/adapters/config"      //nolint:depguard // Wired in app layer
	"go.trai.ch/dispatch/internal/adapters/credentials" //nolint:depguard // Wired in app layer
	"go.trai.ch/dispatch/internal/adapters/history"     //nolint:depguard // Wired in app layer
	"go.trai.ch/dispatch/internal/adapters/logger"      //nolint:depguard // Wired in app layer
	"go.trai.ch/dispatch/internal/adapters/prompt"      //nolint:depguard // Wired in app layer
	"go.trai.ch/dispatch/internal/adapters/report"      //nolint:depguard // Wired in app layer
	"go.trai.ch/dispatch/internal/adapters/session"     //nolint:depguard // Wired in app layer
	"go.trai.ch/dispatch/internal/core/ports"
	"go.trai.ch/dispatch/internal/engine/scheduler"
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
			config.NodeID,
			session.NodeID,
			credentials.NodeID,
			prompt.NodeID,
			api.NodeID,
			archive.NodeID,
			history.NodeID,
			report.NodeID,
			logger.NodeID,
			scheduler.NodeID,
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
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewComponents(app, log), nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	var (
		deps Dependencies
		err  error
	)

	if deps.Loader, err = graft.Dep[ports.ProjectLoader](ctx); err != nil {
		return nil, err
	}
	if deps.Sessions, err = graft.Dep[ports.SessionStore](ctx); err != nil {
		return nil, err
	}
	if deps.Resolver, err = graft.Dep[ports.CredentialResolver](ctx); err != nil {
		return nil, err
	}
	if deps.Prompter, err = graft.Dep[ports.Prompter](ctx); err != nil {
		return nil, err
	}
	if deps.Client, err = graft.Dep[*api.Client](ctx); err != nil {
		return nil, err
	}
	if deps.Archiver, err = graft.Dep[ports.ArchiveProducer](ctx); err != nil {
		return nil, err
	}
	if deps.History, err = graft.Dep[ports.BuildHistoryStore](ctx); err != nil {
		return nil, err
	}
	if deps.Reporter, err = graft.Dep[ports.Reporter](ctx); err != nil {
		return nil, err
	}
	if deps.Logger, err = graft.Dep[ports.Logger](ctx); err != nil {
		return nil, err
	}
	if deps.Scheduler, err = graft.Dep[*scheduler.Scheduler](ctx); err != nil {
		return nil, err
	}

	return New(deps), nil
}
