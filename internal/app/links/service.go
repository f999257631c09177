package links

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/cheneysan/link-shortener/internal/domain"
	"github.com/cheneysan/link-shortener/internal/platform/metrics"
)

const (
	createAttempts = 3

	createErrWrapFmt = "links create: %w"
)

type Service struct {
	repo   Repo
	visits VisitsRepo
	log    Logger

	// genID is swappable so tests can force collisions.
	genID func() string

	// pendingVisits tracks in-flight best-effort visit writes; tests use it
	// to observe their completion.
	pendingVisits sync.WaitGroup
}

func New(repo Repo, visits VisitsRepo, log Logger) *Service {
	if log == nil {
		log = NopLogger{}
	}

	return &Service{
		repo:   repo,
		visits: visits,
		log:    log,
		genID:  GenerateID,
	}
}

var _ UseCase = (*Service)(nil)

// Create provisions a short link for targetURL. Each attempt draws a fresh
// id; only a uniqueness conflict is worth another attempt. Infrastructure
// faults abort immediately so transient store trouble is never mistaken for
// a shrinking id space.
func (s *Service) Create(ctx context.Context, targetURL string) (domain.Link, error) {
	normalized, err := domain.NormalizeTargetURL(targetURL)
	if err != nil {
		return domain.Link{}, err
	}

	for range createAttempts {
		id := s.genID()

		link, err := s.repo.Create(ctx, id, normalized)
		if errors.Is(err, domain.ErrIDConflict) {
			s.log.Warn("short id collision", "id", id)
			continue
		}

		if err != nil {
			return domain.Link{}, fmt.Errorf(createErrWrapFmt, err)
		}

		s.log.Debug("created link", "id", link.ID, "target_url", link.TargetURL)

		return link, nil
	}

	metrics.IDExhausted()
	s.log.Error("exhausted all attempts to generate a unique short id")

	return domain.Link{}, fmt.Errorf(createErrWrapFmt, domain.ErrIDExhausted)
}

func (s *Service) Update(ctx context.Context, id, targetURL string) (domain.Link, error) {
	normalized, err := domain.NormalizeTargetURL(targetURL)
	if err != nil {
		return domain.Link{}, err
	}

	link, err := s.repo.Update(ctx, id, normalized)
	if err != nil {
		return domain.Link{}, fmt.Errorf("links update: %w", err)
	}

	s.log.Debug("updated link", "id", link.ID, "target_url", link.TargetURL)

	return link, nil
}

// Resolve looks up the link and records the visit best-effort. The visit
// write runs detached from the request: its outcome is counted and logged but
// can neither delay nor fail the redirect.
func (s *Service) Resolve(ctx context.Context, id string, visit domain.Visit) (domain.Link, error) {
	link, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Link{}, fmt.Errorf("links resolve: %w", err)
	}

	s.recordVisit(ctx, link.ID, visit)

	return link, nil
}

func (s *Service) Statistics(ctx context.Context, linkID string) ([]domain.CountedStatistic, error) {
	stats, err := s.visits.CountByLink(ctx, linkID)
	if err != nil {
		return nil, fmt.Errorf("links statistics: %w", err)
	}

	if stats == nil {
		stats = []domain.CountedStatistic{}
	}

	return stats, nil
}

func (s *Service) recordVisit(ctx context.Context, linkID string, visit domain.Visit) {
	// Survive the request context; the gateway applies its own deadline.
	ctx = context.WithoutCancel(ctx)

	s.pendingVisits.Add(1)
	go func() {
		defer s.pendingVisits.Done()

		if err := s.visits.Create(ctx, linkID, visit); err != nil {
			metrics.VisitWriteFailure()
			s.log.Error("record visit", "link_id", linkID, "err", err)

			return
		}

		s.log.Debug("recorded visit",
			"link_id", linkID,
			"referer", visit.Referer,
			"user_agent", visit.UserAgent,
		)
	}()
}
