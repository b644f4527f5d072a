package primary

import "context"

// SyncService defines the primary port for feature-service push/pull.
type SyncService interface {
	// Push publishes a local collection to the hosted feature service.
	Push(ctx context.Context, req PushRequest) (*PushResponse, error)

	// Pull retrieves the remote collection and writes it locally.
	Pull(ctx context.Context, req PullRequest) (*PullResponse, error)
}

// PushRequest contains parameters for a push.
type PushRequest struct {
	InputPath string
}

// PushResponse summarizes a push. ServiceError carries a remote failure
// without aborting the caller's pipeline.
type PushResponse struct {
	ItemID       string
	ItemURL      string
	FeatureCount int
	ServiceError string
}

// PullRequest contains parameters for a pull.
type PullRequest struct {
	OutputPath string
}

// PullResponse summarizes a pull.
type PullResponse struct {
	OutputPath   string
	FeatureCount int
	ServiceError string
}
