package story

import (
	"context"
	"errors"

	"storify-import/internal/domain"
)

var (
	ErrNotFound     = errors.New("story not found")
	ErrCannotCreate = errors.New("error create story")
	ErrCannotUpdate = errors.New("error update story")
)

//go:generate go run go.uber.org/mock/mockgen -source=story.go -destination=mocks/mock.go -package=mocks

// Repository stores imported stories keyed by their remote slug.
type Repository interface {
	GetByID(ctx context.Context, id int64) (*domain.Story, error)
	// GetBySlug looks up a story by its natural key. Read-only.
	GetBySlug(ctx context.Context, slug string) (*domain.Story, error)
	Create(ctx context.Context, story domain.Story) (int64, error)
	// Update overwrites the imported fields of an existing story. The local
	// ID and the original imported_at are preserved; only updated_at moves.
	Update(ctx context.Context, id int64, story domain.Story) error
	// SetElementCount replaces (not increments) the stored element count.
	SetElementCount(ctx context.Context, id int64, count int) error
}
