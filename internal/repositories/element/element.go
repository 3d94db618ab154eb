package element

import (
	"context"
	"errors"

	"storify-import/internal/domain"
)

var (
	ErrNotFound     = errors.New("element not found")
	ErrCannotCreate = errors.New("error create element")
	ErrCannotUpdate = errors.New("error update element")
)

//go:generate go run go.uber.org/mock/mockgen -source=element.go -destination=mocks/mock.go -package=mocks

// Repository stores story elements keyed by their remote element ID.
type Repository interface {
	// GetByExternalID looks up an element by its natural key. Read-only.
	GetByExternalID(ctx context.Context, externalID string) (*domain.Element, error)
	Create(ctx context.Context, el domain.Element) (int64, error)
	Update(ctx context.Context, id int64, el domain.Element) error
	// ListByStory returns a story's elements ordered by added_at ascending.
	ListByStory(ctx context.Context, storyID int64) ([]*domain.Element, error)
}
