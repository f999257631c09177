package links

import (
	"context"

	"github.com/cheneysan/link-shortener/internal/domain"
)

type Repo interface {
	GetByID(ctx context.Context, id string) (domain.Link, error)
	Create(ctx context.Context, id, targetURL string) (domain.Link, error)
	Update(ctx context.Context, id, targetURL string) (domain.Link, error)
}

type VisitsRepo interface {
	Create(ctx context.Context, linkID string, visit domain.Visit) error
	CountByLink(ctx context.Context, linkID string) ([]domain.CountedStatistic, error)
}
