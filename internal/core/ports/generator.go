// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"github.com/ConnectionMaster/restligen/internal/core/domain"
)

// ClientGenerator defines the interface for the external Rest.li client
// builder generator.
//
//go:generate go run go.uber.org/mock/mockgen -source=generator.go -destination=mocks/mock_generator.go -package=mocks
type ClientGenerator interface {
	// Generate invokes the generator with the given request and returns the
	// file lists it reports. The returned error carries the generator's
	// failure unchanged; callers decide how to surface it.
	Generate(ctx context.Context, req domain.GenerationRequest) (domain.GenerationResult, error)
}
