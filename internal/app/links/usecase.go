package links

import (
	"context"

	"github.com/cheneysan/link-shortener/internal/domain"
)

// UseCase is the input port for the links application.
type UseCase interface {
	Create(ctx context.Context, targetURL string) (domain.Link, error)
	Update(ctx context.Context, id, targetURL string) (domain.Link, error)
	Resolve(ctx context.Context, id string, visit domain.Visit) (domain.Link, error)
	Statistics(ctx context.Context, linkID string) ([]domain.CountedStatistic, error)
}
