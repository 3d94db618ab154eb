package storify

import "context"

//go:generate go run go.uber.org/mock/mockgen -source=storify.go -destination=mocks/mock.go -package=mocks

// Client talks to the Storify v1 REST API. Implementations return fully
// merged result sets; pagination is an internal concern.
type Client interface {
	// UserStories fetches every story owned by username, across all pages.
	UserStories(ctx context.Context, username string) ([]StoryJSON, error)
	// StoryDetail fetches a single story plus every element it contains.
	StoryDetail(ctx context.Context, username, slug string) (*StoryJSON, []ElementJSON, error)
}

// StoryJSON is the raw story record as the API returns it.
type StoryJSON struct {
	SID         string     `json:"sid"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Status      string     `json:"status"`
	Description string     `json:"description"`
	Date        StoryDates `json:"date"`
}

type StoryDates struct {
	Created   string `json:"created"`
	Published string `json:"published"`
}

// ElementJSON is the raw element record. The display title and text live in
// different sub-objects depending on the element source.
type ElementJSON struct {
	ID          string             `json:"id"`
	EID         string             `json:"eid"`
	Type        string             `json:"type"`
	Permalink   string             `json:"permalink"`
	PostedAt    string             `json:"posted_at"`
	AddedAt     string             `json:"added_at"`
	Source      ElementSource      `json:"source"`
	Data        ElementData        `json:"data"`
	Attribution ElementAttribution `json:"attribution"`
}

type ElementSource struct {
	Name     string `json:"name"`
	Username string `json:"username"`
}

type ElementData struct {
	Link  *LinkData  `json:"link"`
	Video *VideoData `json:"video"`
}

type LinkData struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type VideoData struct {
	Title string `json:"title"`
}

type ElementAttribution struct {
	Title string `json:"title"`
}
