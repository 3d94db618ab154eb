package adapter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storify-import/internal/domain"
	"storify-import/internal/storify"
)

func TestStoryFromAPI_AllFields(t *testing.T) {
	raw := storify.StoryJSON{
		SID:         "1",
		Title:       "T",
		Slug:        "t",
		Status:      "published",
		Description: "d",
		Date: storify.StoryDates{
			Created:   "2020-01-01T00:00:00Z",
			Published: "2020-01-02T00:00:00Z",
		},
	}

	story, err := StoryFromAPI(raw, "someuser")
	require.NoError(t, err)

	assert.Equal(t, "1", story.ExternalID)
	assert.Equal(t, "T", story.Title)
	assert.Equal(t, "t", story.Slug)
	assert.Equal(t, "d", story.Description)
	assert.Equal(t, domain.StoryStatusPublished, story.Status)
	assert.Equal(t, "someuser", story.OwnerUsername)
	assert.Equal(t, time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), story.CreatedAt)
	assert.Equal(t, time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC), story.PublishedAt)
}

func TestStoryFromAPI_StatusMapping(t *testing.T) {
	for _, tc := range []struct {
		remote string
		want   domain.StoryStatus
	}{
		{"published", domain.StoryStatusPublished},
		{"draft", domain.StoryStatusDraft},
		{"unlisted", domain.StoryStatusDraft},
		{"", domain.StoryStatusDraft},
	} {
		story, err := StoryFromAPI(storify.StoryJSON{Slug: "s", Status: tc.remote}, "u")
		require.NoError(t, err)
		assert.Equal(t, tc.want, story.Status, "remote status %q", tc.remote)
	}
}

func TestStoryFromAPI_MissingSlug(t *testing.T) {
	_, err := StoryFromAPI(storify.StoryJSON{SID: "1", Title: "T"}, "u")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNormalization)
}

func TestStoryFromAPI_UnparsableDate(t *testing.T) {
	raw := storify.StoryJSON{
		Slug: "s",
		Date: storify.StoryDates{Created: "not a date"},
	}
	_, err := StoryFromAPI(raw, "u")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNormalization)
}

func validElement() storify.ElementJSON {
	return storify.ElementJSON{
		ID:        "el-1",
		EID:       "eid-1",
		Type:      "link",
		Permalink: "https://example.com/x",
		PostedAt:  "2020-03-01T10:00:00Z",
		AddedAt:   "2020-03-02T10:00:00Z",
	}
}

func TestElementFromAPI_AllFields(t *testing.T) {
	raw := validElement()
	raw.Source = storify.ElementSource{Name: "flickr", Username: "someone"}
	raw.Data.Link = &storify.LinkData{Title: "A title", Description: "A description"}

	el, err := ElementFromAPI(raw)
	require.NoError(t, err)

	assert.Equal(t, "el-1", el.ExternalID)
	assert.Equal(t, "eid-1", el.ExternalEID)
	assert.Equal(t, "link", el.Type)
	assert.Equal(t, "https://example.com/x", el.Link)
	assert.Equal(t, "flickr", el.Source)
	assert.Equal(t, "someone", el.Attribution)
	assert.Equal(t, "A title", el.Title)
	assert.Equal(t, "A description", el.Text)
	assert.Equal(t, time.Date(2020, 3, 1, 10, 0, 0, 0, time.UTC), el.PostedAt)
	assert.Equal(t, time.Date(2020, 3, 2, 10, 0, 0, 0, time.UTC), el.AddedAt)
}

func TestElementFromAPI_MissingIdentifiers(t *testing.T) {
	raw := validElement()
	raw.ID = ""
	_, err := ElementFromAPI(raw)
	assert.ErrorIs(t, err, domain.ErrNormalization)

	raw = validElement()
	raw.EID = ""
	_, err = ElementFromAPI(raw)
	assert.ErrorIs(t, err, domain.ErrNormalization)
}

func TestElementFromAPI_TwitterRuleWins(t *testing.T) {
	raw := validElement()
	raw.Source = storify.ElementSource{Name: "twitter", Username: "tweeter"}
	raw.Data.Link = &storify.LinkData{Title: "should be ignored", Description: "also ignored"}

	el, err := ElementFromAPI(raw)
	require.NoError(t, err)
	assert.Empty(t, el.Title)
	assert.Empty(t, el.Text)
}

func TestElementFromAPI_TitleFallbacks(t *testing.T) {
	raw := validElement()
	raw.Data.Video = &storify.VideoData{Title: "video title"}
	el, err := ElementFromAPI(raw)
	require.NoError(t, err)
	assert.Equal(t, "video title", el.Title)
	assert.Empty(t, el.Text)

	raw = validElement()
	raw.Attribution = storify.ElementAttribution{Title: "attribution title"}
	el, err = ElementFromAPI(raw)
	require.NoError(t, err)
	assert.Equal(t, "attribution title", el.Title)

	raw = validElement()
	el, err = ElementFromAPI(raw)
	require.NoError(t, err)
	assert.Empty(t, el.Title)
	assert.Empty(t, el.Text)
}

func TestElementFromAPI_UnparsableDate(t *testing.T) {
	raw := validElement()
	raw.AddedAt = "garbage"
	_, err := ElementFromAPI(raw)
	assert.ErrorIs(t, err, domain.ErrNormalization)
}

func TestNormalizeLink(t *testing.T) {
	assert.Equal(t, "https://example.com/x", NormalizeLink("//example.com/x"))
	assert.Equal(t, "https://example.com/x", NormalizeLink("https://example.com/x"))
	assert.Equal(t, "http://example.com/x", NormalizeLink("http://example.com/x"))
	assert.Equal(t, "", NormalizeLink(""))
}
