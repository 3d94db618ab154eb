package story

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
		logger: log.WithComponent("StoryRepo"),
	}
}

var _ Repository = (*Pgx)(nil)

type Pgx struct {
	pg     *pgxpool.Pool
	logger logger.Logger
}

var storyColumns = []string{
	"id", "external_id", "title", "slug", "description", "status",
	"owner_username", "element_count", "imported_by", "imported_by_email",
	"remote_created_at", "remote_published_at", "imported_at", "updated_at",
}

func (p *Pgx) GetByID(ctx context.Context, id int64) (*domain.Story, error) {
	query, args, err := repositories.SqBuilder.
		Select(storyColumns...).
		From("stories").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, repositories.ErrBadQuery
	}

	return p.scanOne(ctx, query, args)
}

func (p *Pgx) GetBySlug(ctx context.Context, slug string) (*domain.Story, error) {
	query, args, err := repositories.SqBuilder.
		Select(storyColumns...).
		From("stories").
		Where(sq.Eq{"slug": slug}).
		ToSql()
	if err != nil {
		return nil, repositories.ErrBadQuery
	}

	return p.scanOne(ctx, query, args)
}

func (p *Pgx) scanOne(ctx context.Context, query string, args []any) (*domain.Story, error) {
	s := domain.Story{}
	err := p.pg.QueryRow(ctx, query, args...).Scan(
		&s.ID, &s.ExternalID, &s.Title, &s.Slug, &s.Description, &s.Status,
		&s.OwnerUsername, &s.ElementCount, &s.ImportedBy, &s.ImportedByEmail,
		&s.CreatedAt, &s.PublishedAt, &s.ImportedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (p *Pgx) Create(ctx context.Context, story domain.Story) (int64, error) {
	now := time.Now()

	query, args, err := repositories.SqBuilder.
		Insert("stories").
		Columns(
			"external_id", "title", "slug", "description", "status",
			"owner_username", "element_count", "imported_by",
			"imported_by_email", "remote_created_at", "remote_published_at",
			"imported_at", "updated_at",
		).
		Values(
			story.ExternalID, story.Title, story.Slug, story.Description,
			story.Status, story.OwnerUsername, 0, story.ImportedBy,
			story.ImportedByEmail, story.CreatedAt, story.PublishedAt,
			now, now,
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

func (p *Pgx) Update(ctx context.Context, id int64, story domain.Story) error {
	query, args, err := repositories.SqBuilder.
		Update("stories").
		Set("external_id", story.ExternalID).
		Set("title", story.Title).
		Set("slug", story.Slug).
		Set("description", story.Description).
		Set("status", story.Status).
		Set("owner_username", story.OwnerUsername).
		Set("remote_created_at", story.CreatedAt).
		Set("remote_published_at", story.PublishedAt).
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

func (p *Pgx) SetElementCount(ctx context.Context, id int64, count int) error {
	query, args, err := repositories.SqBuilder.
		Update("stories").
		Set("element_count", count).
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
