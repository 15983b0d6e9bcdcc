package service

import (
	"context"
	"time"

	"github.com/bkerti/lycka-siteweb-sub000/internal/models"
	"github.com/bkerti/lycka-siteweb-sub000/internal/repository"
)

// AnalyticsService records site visits and aggregates them into
// time-bucketed summaries for the admin dashboard.
type AnalyticsService struct {
	repo repository.VisitRepository
	now  func() time.Time
}

// NewAnalyticsService creates a new AnalyticsService.
func NewAnalyticsService(repo repository.VisitRepository) *AnalyticsService {
	return &AnalyticsService{repo: repo, now: time.Now}
}

// RecordVisit stores one visit stamped with the current time.
func (s *AnalyticsService) RecordVisit(ctx context.Context) error {
	visit := &models.Visit{VisitedAt: s.now().UTC()}
	return s.repo.Create(ctx, visit)
}

// VisitsSummaryInput names the supported aggregation windows.
const (
	RangeDay   = "day"
	RangeWeek  = "week"
	RangeMonth = "month"
	RangeYear  = "year"
)

type bucketSpec struct {
	trunc  string // postgres date_trunc field
	layout string // map key layout, UTC
	count  int
	step   func(t time.Time) time.Time
}

// VisitsSummary aggregates visit counts over the requested range. All
// bucketing is done in UTC. Empty range defaults to month; an unknown
// range is rejected.
func (s *AnalyticsService) VisitsSummary(ctx context.Context, rng string) ([]models.VisitBucket, error) {
	if rng == "" {
		rng = RangeMonth
	}

	now := s.now().UTC()
	var spec bucketSpec
	var start time.Time

	switch rng {
	case RangeDay:
		spec = bucketSpec{
			trunc:  "hour",
			layout: "2006-01-02T15",
			count:  24,
			step:   func(t time.Time) time.Time { return t.Add(time.Hour) },
		}
		start = now.Truncate(time.Hour).Add(-23 * time.Hour)
	case RangeWeek:
		spec = bucketSpec{
			trunc:  "day",
			layout: "2006-01-02",
			count:  7,
			step:   func(t time.Time) time.Time { return t.AddDate(0, 0, 1) },
		}
		start = truncateDay(now).AddDate(0, 0, -6)
	case RangeMonth:
		spec = bucketSpec{
			trunc:  "day",
			layout: "2006-01-02",
			count:  30,
			step:   func(t time.Time) time.Time { return t.AddDate(0, 0, 1) },
		}
		start = truncateDay(now).AddDate(0, 0, -29)
	case RangeYear:
		spec = bucketSpec{
			trunc:  "month",
			layout: "2006-01",
			count:  12,
			step:   func(t time.Time) time.Time { return t.AddDate(0, 1, 0) },
		}
		start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -11, 0)
	default:
		return nil, models.NewValidationError("Invalid range; expected day, week, month or year")
	}

	rows, err := s.repo.CountBuckets(ctx, spec.trunc, start)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.Bucket.UTC().Format(spec.layout)] = r.Count
	}

	// Dense, ordered series; buckets with no visits are zero-filled.
	out := make([]models.VisitBucket, 0, spec.count)
	cursor := start
	for i := 0; i < spec.count; i++ {
		out = append(out, models.VisitBucket{
			Bucket: cursor,
			Count:  counts[cursor.Format(spec.layout)],
		})
		cursor = spec.step(cursor)
	}
	return out, nil
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
