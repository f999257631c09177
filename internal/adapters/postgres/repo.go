package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/cheneysan/link-shortener/internal/app/links"
	"github.com/cheneysan/link-shortener/internal/domain"
)

var sqlLinkCols = []string{sqlColID, sqlColTargetURL, sqlColCreatedAt}

// Repo is the links half of the persistence gateway. Every operation runs
// under opTimeout; exceeding it surfaces domain.ErrStoreTimeout, never a
// silent block. Retry policy belongs to callers.
type Repo struct {
	db        *sql.DB
	opTimeout time.Duration
}

func NewRepo(db *sql.DB, opTimeout time.Duration) *Repo {
	return &Repo{db: db, opTimeout: opTimeout}
}

var _ links.Repo = (*Repo)(nil)

func (r *Repo) GetByID(ctx context.Context, id string) (domain.Link, error) {
	if id == "" {
		return domain.Link{}, domain.ErrNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, r.opTimeout)
	defer cancel()

	query, args, err := sq.Select(sqlLinkCols...).
		From(sqlTableLinks).
		Where(sq.Eq{sqlColID: id}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return domain.Link{}, fmt.Errorf("postgres: build get link: %w", err)
	}

	var link domain.Link

	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&link.ID, &link.TargetURL, &link.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Link{}, domain.ErrNotFound
		}

		return domain.Link{}, storeErr("get link", err)
	}

	return link, nil
}

func (r *Repo) Create(ctx context.Context, id, targetURL string) (domain.Link, error) {
	ctx, cancel := context.WithTimeout(ctx, r.opTimeout)
	defer cancel()

	query, args, err := sq.Insert(sqlTableLinks).
		Columns(sqlColID, sqlColTargetURL).
		Values(id, targetURL).
		Suffix("RETURNING " + sqlColID + ", " + sqlColTargetURL + ", " + sqlColCreatedAt).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return domain.Link{}, fmt.Errorf("postgres: build create link: %w", err)
	}

	var link domain.Link

	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&link.ID, &link.TargetURL, &link.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Link{}, domain.ErrIDConflict
		}

		return domain.Link{}, storeErr("create link", err)
	}

	return link, nil
}

func (r *Repo) Update(ctx context.Context, id, targetURL string) (domain.Link, error) {
	if id == "" {
		return domain.Link{}, domain.ErrNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, r.opTimeout)
	defer cancel()

	query, args, err := sq.Update(sqlTableLinks).
		Set(sqlColTargetURL, targetURL).
		Where(sq.Eq{sqlColID: id}).
		Suffix("RETURNING " + sqlColID + ", " + sqlColTargetURL + ", " + sqlColCreatedAt).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return domain.Link{}, fmt.Errorf("postgres: build update link: %w", err)
	}

	var link domain.Link

	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&link.ID, &link.TargetURL, &link.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Link{}, domain.ErrNotFound
		}

		return domain.Link{}, storeErr("update link", err)
	}

	return link, nil
}
