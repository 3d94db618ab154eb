// Package adapter converts raw Storify API records into domain records.
// All functions are pure; they fail instead of emitting partial records
// when a required field is missing or a date cannot be parsed.
package adapter

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"storify-import/internal/domain"
	"storify-import/internal/storify"
)

func StoryFromAPI(raw storify.StoryJSON, owner string) (*domain.Story, error) {
	if raw.Slug == "" {
		return nil, fmt.Errorf("story %q has no slug: %w", raw.SID, domain.ErrNormalization)
	}

	created, err := parseDate(raw.Date.Created)
	if err != nil {
		return nil, fmt.Errorf("story %q created date: %w", raw.Slug, errors.Join(err, domain.ErrNormalization))
	}
	published, err := parseDate(raw.Date.Published)
	if err != nil {
		return nil, fmt.Errorf("story %q published date: %w", raw.Slug, errors.Join(err, domain.ErrNormalization))
	}

	status := domain.StoryStatusDraft
	if raw.Status == "published" {
		status = domain.StoryStatusPublished
	}

	return &domain.Story{
		ExternalID:    raw.SID,
		Title:         raw.Title,
		Slug:          raw.Slug,
		Description:   raw.Description,
		Status:        status,
		OwnerUsername: owner,
		CreatedAt:     created,
		PublishedAt:   published,
	}, nil
}

func ElementFromAPI(raw storify.ElementJSON) (*domain.Element, error) {
	if raw.ID == "" || raw.EID == "" {
		return nil, fmt.Errorf("element missing id (%q) or eid (%q): %w", raw.ID, raw.EID, domain.ErrNormalization)
	}

	posted, err := parseDate(raw.PostedAt)
	if err != nil {
		return nil, fmt.Errorf("element %q posted date: %w", raw.ID, errors.Join(err, domain.ErrNormalization))
	}
	added, err := parseDate(raw.AddedAt)
	if err != nil {
		return nil, fmt.Errorf("element %q added date: %w", raw.ID, errors.Join(err, domain.ErrNormalization))
	}

	source := raw.Source.Name
	title, text := displayText(raw, source)

	return &domain.Element{
		ExternalID:  raw.ID,
		ExternalEID: raw.EID,
		Type:        raw.Type,
		Link:        NormalizeLink(raw.Permalink),
		Source:      source,
		Attribution: raw.Source.Username,
		Title:       title,
		Text:        text,
		PostedAt:    posted,
		AddedAt:     added,
	}, nil
}

// displayText resolves the element title and text. Twitter elements never
// carry either, regardless of what the nested objects hold. Everything else
// is tried in order: link data, video data, attribution.
func displayText(raw storify.ElementJSON, source string) (title, text string) {
	if source == "twitter" {
		return "", ""
	}
	if raw.Data.Link != nil && raw.Data.Link.Title != "" {
		return raw.Data.Link.Title, raw.Data.Link.Description
	}
	if raw.Data.Video != nil && raw.Data.Video.Title != "" {
		return raw.Data.Video.Title, ""
	}
	if raw.Attribution.Title != "" {
		return raw.Attribution.Title, ""
	}
	return "", ""
}

// NormalizeLink upgrades protocol-relative permalinks. Storify served most
// element links as "//host/path".
func NormalizeLink(link string) string {
	if strings.HasPrefix(link, "//") {
		return "https:" + link
	}
	return link
}

// parseDate accepts any timestamp layout the API is known to produce. An
// absent date is fine (zero time); a present but unparsable one is not.
func parseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	return dateparse.ParseAny(value)
}
