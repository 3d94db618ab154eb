package importerimpl

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"storify-import/internal/domain"
	"storify-import/internal/repositories/story"
	"storify-import/internal/storify/adapter"
)

// ImportUserStories pulls every story owned by username and upserts each
// one locally, keyed by slug.
func (p *ImporterImpl) ImportUserStories(ctx context.Context, username string) (*domain.ImportStats, error) {
	stats := &domain.ImportStats{}

	username = strings.TrimSpace(username)
	if username == "" {
		return stats, fmt.Errorf("no username supplied: %w", domain.ErrMissingInput)
	}

	p.Logger.Info("Importing user stories", "username", username)

	raws, err := p.Storify.UserStories(ctx, username)
	if err != nil {
		return stats, err
	}
	if len(raws) == 0 {
		return stats, fmt.Errorf("no stories returned for %q: %w", username, domain.ErrEmptyResult)
	}

	stats.Fetched = len(raws)

	for _, raw := range raws {
		st, err := adapter.StoryFromAPI(raw, username)
		if err != nil {
			stats.Failed++
			return stats, err
		}
		if _, err := p.upsertStory(ctx, st, stats); err != nil {
			stats.Failed++
			return stats, err
		}
	}

	p.Logger.Info("User story import completed",
		"username", username,
		"fetched", stats.Fetched,
		"created", stats.Created,
		"updated", stats.Updated,
	)

	return stats, nil
}

// ImportStoryURL imports a single story, with its elements, from a
// storify.com story URL.
func (p *ImporterImpl) ImportStoryURL(ctx context.Context, rawURL string) (*domain.ImportStats, error) {
	stats := &domain.ImportStats{}

	username, slug, err := parseStoryURL(rawURL)
	if err != nil {
		return stats, err
	}

	p.Logger.Info("Importing story", "username", username, "slug", slug)

	rawStory, rawElements, err := p.Storify.StoryDetail(ctx, username, slug)
	if err != nil {
		return stats, err
	}
	if rawStory == nil || rawStory.Slug == "" {
		return stats, fmt.Errorf("story %s/%s not present in response: %w", username, slug, domain.ErrEmptyResult)
	}

	stats.Fetched = 1 + len(rawElements)

	st, err := adapter.StoryFromAPI(*rawStory, username)
	if err != nil {
		stats.Failed++
		return stats, err
	}

	storyID, err := p.upsertStory(ctx, st, stats)
	if err != nil {
		stats.Failed++
		return stats, err
	}

	if err := p.importElements(ctx, storyID, rawElements, stats); err != nil {
		return stats, err
	}

	return stats, nil
}

// upsertStory creates the story or updates the record already holding its
// slug. The existence check and the write are separate statements; the
// unique index on slug backstops the race two concurrent imports can run.
func (p *ImporterImpl) upsertStory(ctx context.Context, st *domain.Story, stats *domain.ImportStats) (int64, error) {
	st.ImportedBy = p.Config.Import.AuthorName
	st.ImportedByEmail = p.Config.Import.AuthorEmail

	existing, err := p.StoryRepo.GetBySlug(ctx, st.Slug)
	if err != nil && !errors.Is(err, story.ErrNotFound) {
		return 0, errors.Join(err, domain.ErrPersist)
	}

	if existing == nil {
		id, err := p.StoryRepo.Create(ctx, *st)
		if err != nil {
			return 0, errors.Join(err, domain.ErrPersist)
		}
		stats.Created++
		p.Logger.Debug("Created story", "slug", st.Slug, "id", id)
		return id, nil
	}

	if err := p.StoryRepo.Update(ctx, existing.ID, *st); err != nil {
		return 0, errors.Join(err, domain.ErrPersist)
	}
	stats.Updated++
	p.Logger.Debug("Updated story", "slug", st.Slug, "id", existing.ID)
	return existing.ID, nil
}

// parseStoryURL extracts username and slug from a story permalink such as
// https://storify.com/{username}/{slug}.
func parseStoryURL(rawURL string) (username, slug string, err error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return "", "", fmt.Errorf("no story URL supplied: %w", domain.ErrMissingInput)
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return "", "", fmt.Errorf("bad story URL %q: %w", rawURL, domain.ErrMissingInput)
	}

	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("story URL %q is not username/slug shaped: %w", rawURL, domain.ErrMissingInput)
	}

	return parts[0], parts[1], nil
}
