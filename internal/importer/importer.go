package importer

import (
	"context"

	"storify-import/internal/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=importer.go -destination=mocks/mock.go -package=mocks

// Client runs the fetch -> normalize -> upsert pipeline. Each call is one
// synchronous batch; there is no background work and no retry. Stats are
// returned even when the run fails partway so callers can see how many
// records landed before the failure.
type Client interface {
	ImportUserStories(ctx context.Context, username string) (*domain.ImportStats, error)
	ImportStoryURL(ctx context.Context, rawURL string) (*domain.ImportStats, error)
	RefreshStoryElements(ctx context.Context, storyID int64) (*domain.ImportStats, error)
}
