package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/peek/internal/adapters/config" //nolint:depguard // Wired in app layer
	"go.trai.ch/peek/internal/adapters/fs"     //nolint:depguard // Wired in app layer
	"go.trai.ch/peek/internal/adapters/logger" //nolint:depguard // Wired in app layer
	"go.trai.ch/peek/internal/adapters/shell"  //nolint:depguard // Wired in app layer
	"go.trai.ch/peek/internal/core/ports"
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
			fs.ModTimeScannerNodeID,
			fs.DigestScannerNodeID,
			shell.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}

			modtime, err := graft.Dep[*fs.ModTimeScanner](ctx)
			if err != nil {
				return nil, err
			}

			digest, err := graft.Dep[*fs.DigestScanner](ctx)
			if err != nil {
				return nil, err
			}

			runner, err := graft.Dep[ports.Runner](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(loader, modtime, digest, runner, log), nil
		},
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
