package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/cheneysan/link-shortener/internal/app/links"
	"github.com/cheneysan/link-shortener/internal/domain"
)

// VisitsRepo persists and aggregates per-redirect visit records.
type VisitsRepo struct {
	db        *sql.DB
	opTimeout time.Duration
}

func NewVisitsRepo(db *sql.DB, opTimeout time.Duration) *VisitsRepo {
	return &VisitsRepo{db: db, opTimeout: opTimeout}
}

var _ links.VisitsRepo = (*VisitsRepo)(nil)

func (r *VisitsRepo) Create(ctx context.Context, linkID string, visit domain.Visit) error {
	ctx, cancel := context.WithTimeout(ctx, r.opTimeout)
	defer cancel()

	query, args, err := sq.Insert(sqlTableStatistics).
		Columns(sqlColLinkID, sqlColReferer, sqlColUserAgent).
		Values(linkID, nullable(visit.Referer), nullable(visit.UserAgent)).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("postgres: build create visit: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return storeErr("create visit", err)
	}

	return nil
}

func (r *VisitsRepo) CountByLink(ctx context.Context, linkID string) ([]domain.CountedStatistic, error) {
	ctx, cancel := context.WithTimeout(ctx, r.opTimeout)
	defer cancel()

	query, args, err := sq.Select("count(*)", sqlColReferer, sqlColUserAgent).
		From(sqlTableStatistics).
		Where(sq.Eq{sqlColLinkID: linkID}).
		GroupBy(sqlColReferer, sqlColUserAgent).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("postgres: build count visits: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storeErr("count visits", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	out := make([]domain.CountedStatistic, 0)
	for rows.Next() {
		var item domain.CountedStatistic
		if err := rows.Scan(&item.Amount, &item.Referer, &item.UserAgent); err != nil {
			return nil, storeErr("count visits", err)
		}

		out = append(out, item)
	}

	if err := rows.Err(); err != nil {
		return nil, storeErr("count visits", err)
	}

	return out, nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
