package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upInit, downInit)
}

func upInit(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.Exec(`
	CREATE TABLE stories (
		id                  BIGSERIAL PRIMARY KEY,
		external_id         VARCHAR NOT NULL,
		title               VARCHAR NOT NULL,
		slug                VARCHAR NOT NULL,
		description         TEXT NOT NULL DEFAULT '',
		status              VARCHAR NOT NULL,
		owner_username      VARCHAR NOT NULL,
		element_count       INTEGER NOT NULL DEFAULT 0,
		imported_by         VARCHAR NOT NULL DEFAULT '',
		imported_by_email   VARCHAR NOT NULL DEFAULT '',
		remote_created_at   TIMESTAMP WITH TIME ZONE,
		remote_published_at TIMESTAMP WITH TIME ZONE,
		imported_at         TIMESTAMP WITH TIME ZONE NOT NULL,
		updated_at          TIMESTAMP WITH TIME ZONE NOT NULL
	);
	CREATE UNIQUE INDEX stories_slug_idx ON stories (slug);

	CREATE TABLE elements (
		id           BIGSERIAL PRIMARY KEY,
		story_id     BIGINT NOT NULL REFERENCES stories (id),
		external_id  VARCHAR NOT NULL,
		external_eid VARCHAR NOT NULL,
		element_type VARCHAR NOT NULL DEFAULT '',
		link         VARCHAR NOT NULL DEFAULT '',
		source       VARCHAR NOT NULL DEFAULT '',
		attribution  VARCHAR NOT NULL DEFAULT '',
		title        VARCHAR NOT NULL DEFAULT '',
		body         TEXT NOT NULL DEFAULT '',
		posted_at    TIMESTAMP WITH TIME ZONE,
		added_at     TIMESTAMP WITH TIME ZONE,
		imported_by       VARCHAR NOT NULL DEFAULT '',
		imported_by_email VARCHAR NOT NULL DEFAULT '',
		imported_at  TIMESTAMP WITH TIME ZONE NOT NULL,
		updated_at   TIMESTAMP WITH TIME ZONE NOT NULL
	);
	CREATE UNIQUE INDEX elements_external_id_idx ON elements (external_id);
	CREATE INDEX elements_story_added_idx ON elements (story_id, added_at);
	`)
	if err != nil {
		return err
	}
	return nil
}

func downInit(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.Exec(`
	DROP TABLE elements;
	DROP TABLE stories;
	`)
	if err != nil {
		return err
	}
	return nil
}
