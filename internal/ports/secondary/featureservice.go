package secondary

import (
	"context"

	"github.com/example/geobridge/internal/core/feature"
)

// FeatureService defines the secondary port for the hosted feature-service
// collaborator. Calls are blocking, sequential, and unretried; a failure
// surfaces as an error the caller records, never a process abort.
type FeatureService interface {
	// PushFeatures publishes a collection to the remote service.
	PushFeatures(ctx context.Context, col *feature.Collection) (*PushResult, error)

	// PullFeatures retrieves the current remote collection.
	PullFeatures(ctx context.Context) (*feature.Collection, error)
}

// PushResult describes a successful publish.
type PushResult struct {
	ItemID       string
	ItemURL      string
	FeatureCount int
}
