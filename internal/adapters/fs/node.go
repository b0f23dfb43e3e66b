package fs

import (
	"context"

	"github.com/grindlemire/graft"
)

const (
	// WalkerNodeID is the unique identifier for the walker Graft node.
	WalkerNodeID graft.ID = "adapter.fs.walker"
	// ModTimeScannerNodeID is the unique identifier for the newest-mtime scanner node.
	ModTimeScannerNodeID graft.ID = "adapter.fs.scanner.modtime"
	// DigestScannerNodeID is the unique identifier for the tree-digest scanner node.
	DigestScannerNodeID graft.ID = "adapter.fs.scanner.digest"
)

func init() {
	graft.Register(graft.Node[*Walker]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Walker, error) {
			return NewWalker(), nil
		},
	})

	graft.Register(graft.Node[*ModTimeScanner]{
		ID:        ModTimeScannerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{WalkerNodeID},
		Run: func(ctx context.Context) (*ModTimeScanner, error) {
			walker, err := graft.Dep[*Walker](ctx)
			if err != nil {
				return nil, err
			}
			return NewModTimeScanner(walker), nil
		},
	})

	graft.Register(graft.Node[*DigestScanner]{
		ID:        DigestScannerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{WalkerNodeID},
		Run: func(ctx context.Context) (*DigestScanner, error) {
			walker, err := graft.Dep[*Walker](ctx)
			if err != nil {
				return nil, err
			}
			return NewDigestScanner(walker), nil
		},
	})
}
