package domain

import "time"

// Element is a single curated content item (tweet, link, image, video)
// belonging to one Story. Storify handed out two identifiers per element;
// both are kept because embeds reference either one.
type Element struct {
	ID          int64
	StoryID     int64
	ExternalID  string // Storify "id", natural key
	ExternalEID string // Storify "eid"
	Type        string // remote-defined, no closed set
	Link        string
	Source      string // "twitter", "youtube", ...
	Attribution string // source username
	Title       string
	Text        string
	PostedAt    time.Time
	AddedAt     time.Time

	ImportedBy      string
	ImportedByEmail string

	ImportedAt time.Time
	UpdatedAt  time.Time
}
