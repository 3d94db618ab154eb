package domain

import "time"

type StoryStatus string

const (
	StoryStatusPublished StoryStatus = "published"
	StoryStatusDraft     StoryStatus = "draft"
)

type Story struct {
	ID            int64
	ExternalID    string // Storify "sid"
	Title         string
	Slug          string // natural key, unique among imported stories
	Description   string
	Status        StoryStatus
	OwnerUsername string
	ElementCount  int

	// Operator who triggered the import; set on create, preserved on update.
	ImportedBy      string
	ImportedByEmail string

	CreatedAt     time.Time // remote creation date
	PublishedAt   time.Time
	ImportedAt    time.Time
	UpdatedAt     time.Time
}
