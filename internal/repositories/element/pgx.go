package element

import (
	"context"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"storify-import/internal/domain"
	"storify-import/internal/repositories"
	"storify-import/pkg/logger"
)

func NewPgx(pg *pgxpool.Pool, log logger.Logger) *Pgx {
	return &Pgx{
		pg:     pg,
		logger: log.WithComponent("ElementRepo"),
	}
}

var _ Repository = (*Pgx)(nil)

type Pgx struct {
	pg     *pgxpool.Pool
	logger logger.Logger
}

var elementColumns = []string{
	"id", "story_id", "external_id", "external_eid", "element_type", "link",
	"source", "attribution", "title", "body", "posted_at", "added_at",
	"imported_by", "imported_by_email", "imported_at", "updated_at",
}

func (p *Pgx) GetByExternalID(ctx context.Context, externalID string) (*domain.Element, error) {
	query, args, err := repositories.SqBuilder.
		Select(elementColumns...).
		From("elements").
		Where(sq.Eq{"external_id": externalID}).
		ToSql()
	if err != nil {
		return nil, repositories.ErrBadQuery
	}

	e := domain.Element{}
	err = p.pg.QueryRow(ctx, query, args...).Scan(
		&e.ID, &e.StoryID, &e.ExternalID, &e.ExternalEID, &e.Type, &e.Link,
		&e.Source, &e.Attribution, &e.Title, &e.Text, &e.PostedAt, &e.AddedAt,
		&e.ImportedBy, &e.ImportedByEmail, &e.ImportedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &e, nil
}

func (p *Pgx) Create(ctx context.Context, el domain.Element) (int64, error) {
	now := time.Now()

	query, args, err := repositories.SqBuilder.
		Insert("elements").
		Columns(
			"story_id", "external_id", "external_eid", "element_type", "link",
			"source", "attribution", "title", "body", "posted_at", "added_at",
			"imported_by", "imported_by_email", "imported_at", "updated_at",
		).
		Values(
			el.StoryID, el.ExternalID, el.ExternalEID, el.Type, el.Link,
			el.Source, el.Attribution, el.Title, el.Text, el.PostedAt,
			el.AddedAt, el.ImportedBy, el.ImportedByEmail, now, now,
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, repositories.ErrBadQuery
	}

	var id int64
	if err := p.pg.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return 0, errors.Join(err, ErrCannotCreate)
	}

	return id, nil
}

func (p *Pgx) Update(ctx context.Context, id int64, el domain.Element) error {
	query, args, err := repositories.SqBuilder.
		Update("elements").
		Set("story_id", el.StoryID).
		Set("external_eid", el.ExternalEID).
		Set("element_type", el.Type).
		Set("link", el.Link).
		Set("source", el.Source).
		Set("attribution", el.Attribution).
		Set("title", el.Title).
		Set("body", el.Text).
		Set("posted_at", el.PostedAt).
		Set("added_at", el.AddedAt).
		Set("updated_at", time.Now()).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return repositories.ErrBadQuery
	}

	if _, err := p.pg.Exec(ctx, query, args...); err != nil {
		return errors.Join(err, ErrCannotUpdate)
	}

	return nil
}

func (p *Pgx) ListByStory(ctx context.Context, storyID int64) ([]*domain.Element, error) {
	query, args, err := repositories.SqBuilder.
		Select(elementColumns...).
		From("elements").
		Where(sq.Eq{"story_id": storyID}).
		OrderBy("added_at ASC").
		ToSql()
	if err != nil {
		return nil, repositories.ErrBadQuery
	}

	rows, err := p.pg.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var elements []*domain.Element
	for rows.Next() {
		e := domain.Element{}
		if err := rows.Scan(
			&e.ID, &e.StoryID, &e.ExternalID, &e.ExternalEID, &e.Type, &e.Link,
			&e.Source, &e.Attribution, &e.Title, &e.Text, &e.PostedAt,
			&e.AddedAt, &e.ImportedBy, &e.ImportedByEmail, &e.ImportedAt,
			&e.UpdatedAt,
		); err != nil {
			return nil, err
		}
		elements = append(elements, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return elements, nil
}
