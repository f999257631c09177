package links

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cheneysan/link-shortener/internal/domain"
)

type stubRepo struct {
	t testing.TB

	getByIDFunc func(context.Context, string) (domain.Link, error)
	createFunc  func(context.Context, string, string) (domain.Link, error)
	updateFunc  func(context.Context, string, string) (domain.Link, error)
}

func (s *stubRepo) GetByID(ctx context.Context, id string) (domain.Link, error) {
	s.t.Helper()
	if s.getByIDFunc == nil {
		s.t.Fatalf("unexpected GetByID call")
	}
	return s.getByIDFunc(ctx, id)
}

func (s *stubRepo) Create(ctx context.Context, id, targetURL string) (domain.Link, error) {
	s.t.Helper()
	if s.createFunc == nil {
		s.t.Fatalf("unexpected Create call")
	}
	return s.createFunc(ctx, id, targetURL)
}

func (s *stubRepo) Update(ctx context.Context, id, targetURL string) (domain.Link, error) {
	s.t.Helper()
	if s.updateFunc == nil {
		s.t.Fatalf("unexpected Update call")
	}
	return s.updateFunc(ctx, id, targetURL)
}

type stubVisitsRepo struct {
	t testing.TB

	createFunc func(context.Context, string, domain.Visit) error
	countFunc  func(context.Context, string) ([]domain.CountedStatistic, error)
}

func (s *stubVisitsRepo) Create(ctx context.Context, linkID string, visit domain.Visit) error {
	s.t.Helper()
	if s.createFunc == nil {
		s.t.Fatalf("unexpected visits Create call")
	}
	return s.createFunc(ctx, linkID, visit)
}

func (s *stubVisitsRepo) CountByLink(ctx context.Context, linkID string) ([]domain.CountedStatistic, error) {
	s.t.Helper()
	if s.countFunc == nil {
		s.t.Fatalf("unexpected CountByLink call")
	}
	return s.countFunc(ctx, linkID)
}

func TestServiceCreate_RetriesOnConflict(t *testing.T) {
	ctx := context.Background()

	var calls int
	seen := map[string]string{"taken": "https://example.com/old"}

	repo := &stubRepo{
		t: t,
		createFunc: func(ctx context.Context, id, targetURL string) (domain.Link, error) {
			calls++
			if _, ok := seen[id]; ok {
				return domain.Link{}, domain.ErrIDConflict
			}
			seen[id] = targetURL
			return domain.Link{ID: id, TargetURL: targetURL}, nil
		},
	}

	svc := New(repo, &stubVisitsRepo{t: t}, nil)

	ids := []string{"taken", "fresh"}
	svc.genID = func() string {
		id := ids[0]
		if len(ids) > 1 {
			ids = ids[1:]
		}
		return id
	}

	link, err := svc.Create(ctx, "https://example.com/a")
	require.NoError(t, err)
	require.Equal(t, 2, calls)
	require.Equal(t, "fresh", link.ID)
	require.Equal(t, "https://example.com/a", link.TargetURL)
}

func TestServiceCreate_ExhaustedIDSpace(t *testing.T) {
	ctx := context.Background()

	var calls int

	repo := &stubRepo{
		t: t,
		createFunc: func(ctx context.Context, id, targetURL string) (domain.Link, error) {
			calls++
			return domain.Link{}, domain.ErrIDConflict
		},
	}

	svc := New(repo, &stubVisitsRepo{t: t}, nil)

	// Only two distinct ids exist: every attempt must collide and the loop
	// must give up typed, never insert a duplicate.
	var n int
	svc.genID = func() string {
		n++
		if n%2 == 0 {
			return "even"
		}
		return "odd"
	}

	_, err := svc.Create(ctx, "https://example.com/a")
	require.ErrorIs(t, err, domain.ErrIDExhausted)
	require.Equal(t, createAttempts, calls)
}

func TestServiceCreate_InfrastructureFaultAborts(t *testing.T) {
	ctx := context.Background()

	var calls int

	repo := &stubRepo{
		t: t,
		createFunc: func(ctx context.Context, id, targetURL string) (domain.Link, error) {
			calls++
			return domain.Link{}, domain.ErrStoreTimeout
		},
	}

	svc := New(repo, &stubVisitsRepo{t: t}, nil)

	_, err := svc.Create(ctx, "https://example.com/a")
	require.ErrorIs(t, err, domain.ErrStoreTimeout)
	require.NotErrorIs(t, err, domain.ErrIDExhausted)
	require.Equal(t, 1, calls)
}

func TestServiceCreate_InvalidURLNoStoreCall(t *testing.T) {
	ctx := context.Background()

	svc := New(&stubRepo{t: t}, &stubVisitsRepo{t: t}, nil)

	_, err := svc.Create(ctx, "not-a-url")
	require.ErrorIs(t, err, domain.ErrInvalidURL)
}

func TestServiceUpdate_NotFoundNoWrite(t *testing.T) {
	ctx := context.Background()

	repo := &stubRepo{
		t: t,
		updateFunc: func(ctx context.Context, id, targetURL string) (domain.Link, error) {
			return domain.Link{}, domain.ErrNotFound
		},
	}

	svc := New(repo, &stubVisitsRepo{t: t}, nil)

	_, err := svc.Update(ctx, "missing", "https://example.com/new")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestServiceResolve_RoundTrip(t *testing.T) {
	ctx := context.Background()

	var recorded []domain.Visit

	repo := &stubRepo{
		t: t,
		getByIDFunc: func(ctx context.Context, id string) (domain.Link, error) {
			require.Equal(t, "abc", id)
			return domain.Link{ID: id, TargetURL: "https://example.com/a"}, nil
		},
	}
	visits := &stubVisitsRepo{
		t: t,
		createFunc: func(ctx context.Context, linkID string, visit domain.Visit) error {
			require.Equal(t, "abc", linkID)
			recorded = append(recorded, visit)
			return nil
		},
	}

	svc := New(repo, visits, nil)

	link, err := svc.Resolve(ctx, "abc", domain.Visit{Referer: "https://ref.example", UserAgent: "curl/8"})
	require.NoError(t, err)
	require.Equal(t, "https://example.com/a", link.TargetURL)

	svc.pendingVisits.Wait()
	require.Len(t, recorded, 1)
	require.Equal(t, "https://ref.example", recorded[0].Referer)
	require.Equal(t, "curl/8", recorded[0].UserAgent)
}

func TestServiceResolve_VisitWriteFailureDoesNotAffectRedirect(t *testing.T) {
	ctx := context.Background()

	repo := &stubRepo{
		t: t,
		getByIDFunc: func(ctx context.Context, id string) (domain.Link, error) {
			return domain.Link{ID: id, TargetURL: "https://example.com/a"}, nil
		},
	}
	visits := &stubVisitsRepo{
		t: t,
		createFunc: func(ctx context.Context, linkID string, visit domain.Visit) error {
			return domain.ErrStoreFailure
		},
	}

	svc := New(repo, visits, nil)

	link, err := svc.Resolve(ctx, "abc", domain.Visit{})
	require.NoError(t, err)
	require.Equal(t, "https://example.com/a", link.TargetURL)

	svc.pendingVisits.Wait()
}

func TestServiceResolve_UnknownLink(t *testing.T) {
	ctx := context.Background()

	repo := &stubRepo{
		t: t,
		getByIDFunc: func(ctx context.Context, id string) (domain.Link, error) {
			return domain.Link{}, domain.ErrNotFound
		},
	}

	svc := New(repo, &stubVisitsRepo{t: t}, nil)

	_, err := svc.Resolve(ctx, "missing", domain.Visit{})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestServiceStatistics_EmptyIsNotError(t *testing.T) {
	ctx := context.Background()

	visits := &stubVisitsRepo{
		t: t,
		countFunc: func(ctx context.Context, linkID string) ([]domain.CountedStatistic, error) {
			return nil, nil
		},
	}

	svc := New(&stubRepo{t: t}, visits, nil)

	stats, err := svc.Statistics(ctx, "abc")
	require.NoError(t, err)
	require.NotNil(t, stats)
	require.Empty(t, stats)
}

func TestServiceStatistics_StoreFault(t *testing.T) {
	ctx := context.Background()

	visits := &stubVisitsRepo{
		t: t,
		countFunc: func(ctx context.Context, linkID string) ([]domain.CountedStatistic, error) {
			return nil, errors.Join(domain.ErrStoreFailure)
		},
	}

	svc := New(&stubRepo{t: t}, visits, nil)

	_, err := svc.Statistics(ctx, "abc")
	require.ErrorIs(t, err, domain.ErrStoreFailure)
}
