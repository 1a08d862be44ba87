package fs

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/ConnectionMaster/restligen/internal/core/ports"
)

const (
	// WalkerNodeID is the graft node for the concrete Walker.
	WalkerNodeID graft.ID = "adapter.fs.walker"
	// ScannerNodeID is the graft node for the spec file scanner.
	ScannerNodeID graft.ID = "adapter.fs.scanner"
	// FingerprinterNodeID is the graft node for the fingerprinter.
	FingerprinterNodeID graft.ID = "adapter.fs.fingerprinter"
)

func init() {
	// Walker Node (concrete implementation needed by Scanner)
	graft.Register(graft.Node[*Walker]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (*Walker, error) {
			return NewWalker(), nil
		},
	})

	// Scanner Node
	graft.Register(graft.Node[ports.Scanner]{
		ID:        ScannerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{WalkerNodeID},
		Run: func(ctx context.Context) (ports.Scanner, error) {
			walker, err := graft.Dep[*Walker](ctx)
			if err != nil {
				return nil, err
			}
			return NewScanner(walker), nil
		},
	})

	// Fingerprinter Node
	graft.Register(graft.Node[ports.Fingerprinter]{
		ID:        FingerprinterNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.Fingerprinter, error) {
			return NewFingerprinter(), nil
		},
	})
}
