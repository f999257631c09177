package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/cheneysan/link-shortener/internal/app/auth"
	"github.com/cheneysan/link-shortener/internal/domain"
)

// SettingsRepo reads the singleton settings row. A missing row is a
// provisioning fault, not an absence callers may tolerate, so it maps to
// ErrStoreFailure and the auth gate stays closed.
type SettingsRepo struct {
	db        *sql.DB
	opTimeout time.Duration
}

func NewSettingsRepo(db *sql.DB, opTimeout time.Duration) *SettingsRepo {
	return &SettingsRepo{db: db, opTimeout: opTimeout}
}

var _ auth.SettingsRepo = (*SettingsRepo)(nil)

func (r *SettingsRepo) GetGlobalKeyHash(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.opTimeout)
	defer cancel()

	query, args, err := sq.Select(sqlColGlobalAPIKey).
		From(sqlTableSettings).
		Where(sq.Eq{sqlColID: settingsRowID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("postgres: build get settings: %w", err)
	}

	var hash string

	err = r.db.QueryRowContext(ctx, query, args...).Scan(&hash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", fmt.Errorf("postgres: get settings: row %q missing: %w",
				settingsRowID, domain.ErrStoreFailure)
		}

		return "", storeErr("get settings", err)
	}

	return hash, nil
}
