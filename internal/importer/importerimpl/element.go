package importerimpl

import (
	"context"
	"errors"
	"fmt"

	"storify-import/internal/domain"
	elementRepo "storify-import/internal/repositories/element"
	storyRepo "storify-import/internal/repositories/story"
	"storify-import/internal/storify"
	"storify-import/internal/storify/adapter"
)

// RefreshStoryElements re-fetches the elements of an already imported story
// and upserts them, keyed by remote element ID.
func (p *ImporterImpl) RefreshStoryElements(ctx context.Context, storyID int64) (*domain.ImportStats, error) {
	stats := &domain.ImportStats{}

	if storyID <= 0 {
		return stats, fmt.Errorf("no story ID supplied: %w", domain.ErrMissingInput)
	}

	st, err := p.StoryRepo.GetByID(ctx, storyID)
	if err != nil {
		if errors.Is(err, storyRepo.ErrNotFound) {
			return stats, fmt.Errorf("story %d was never imported: %w", storyID, domain.ErrMissingInput)
		}
		return stats, errors.Join(err, domain.ErrPersist)
	}

	p.Logger.Info("Refreshing story elements", "story_id", storyID, "slug", st.Slug)

	_, rawElements, err := p.Storify.StoryDetail(ctx, st.OwnerUsername, st.Slug)
	if err != nil {
		return stats, err
	}
	if len(rawElements) == 0 {
		return stats, fmt.Errorf("no elements returned for %s/%s: %w", st.OwnerUsername, st.Slug, domain.ErrEmptyResult)
	}

	stats.Fetched = len(rawElements)

	if err := p.importElements(ctx, storyID, rawElements, stats); err != nil {
		return stats, err
	}

	return stats, nil
}

// importElements upserts a batch of elements in page order and then replaces
// the parent story's element count with the batch size. A persist failure
// aborts the batch; earlier writes stay (no transaction wraps the batch) and
// the stats say how far we got.
func (p *ImporterImpl) importElements(ctx context.Context, storyID int64, raws []storify.ElementJSON, stats *domain.ImportStats) error {
	processed := 0
	for _, raw := range raws {
		el, err := adapter.ElementFromAPI(raw)
		if err != nil {
			stats.Failed++
			return err
		}
		el.StoryID = storyID

		if err := p.upsertElement(ctx, el, stats); err != nil {
			stats.Failed++
			return err
		}
		processed++
	}

	if err := p.StoryRepo.SetElementCount(ctx, storyID, processed); err != nil {
		return errors.Join(err, domain.ErrPersist)
	}

	p.Logger.Info("Element import completed",
		"story_id", storyID,
		"processed", processed,
		"created", stats.Created,
		"updated", stats.Updated,
	)

	return nil
}

func (p *ImporterImpl) upsertElement(ctx context.Context, el *domain.Element, stats *domain.ImportStats) error {
	el.ImportedBy = p.Config.Import.AuthorName
	el.ImportedByEmail = p.Config.Import.AuthorEmail

	existing, err := p.ElementRepo.GetByExternalID(ctx, el.ExternalID)
	if err != nil && !errors.Is(err, elementRepo.ErrNotFound) {
		return errors.Join(err, domain.ErrPersist)
	}

	if existing == nil {
		id, err := p.ElementRepo.Create(ctx, *el)
		if err != nil {
			return errors.Join(err, domain.ErrPersist)
		}
		stats.Created++
		p.Logger.Debug("Created element", "external_id", el.ExternalID, "id", id)
		return nil
	}

	if err := p.ElementRepo.Update(ctx, existing.ID, *el); err != nil {
		return errors.Join(err, domain.ErrPersist)
	}
	stats.Updated++
	p.Logger.Debug("Updated element", "external_id", el.ExternalID, "id", existing.ID)
	return nil
}
