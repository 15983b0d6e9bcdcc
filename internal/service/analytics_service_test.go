package service

import (
	"context"
	"testing"
	"time"

	"github.com/bkerti/lycka-siteweb-sub000/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type visitRepoStub struct {
	visits    []*models.Visit
	rows      []models.VisitBucket
	err       error
	gotTrunc  string
	gotSince  time.Time
	callCount int
}

func (s *visitRepoStub) Create(_ context.Context, visit *models.Visit) error {
	if s.err != nil {
		return s.err
	}
	s.visits = append(s.visits, visit)
	return nil
}

func (s *visitRepoStub) CountBuckets(_ context.Context, trunc string, since time.Time) ([]models.VisitBucket, error) {
	s.callCount++
	s.gotTrunc = trunc
	s.gotSince = since
	return s.rows, s.err
}

func fixedNow() time.Time {
	// Wednesday, mid-month, mid-day, with sub-hour noise to prove truncation.
	return time.Date(2025, 6, 18, 14, 37, 12, 0, time.UTC)
}

func newTestAnalyticsService(stub *visitRepoStub) *AnalyticsService {
	s := NewAnalyticsService(stub)
	s.now = fixedNow
	return s
}

func TestRecordVisit_StampsUTCNow(t *testing.T) {
	stub := &visitRepoStub{}
	s := newTestAnalyticsService(stub)

	require.NoError(t, s.RecordVisit(context.Background()))
	require.Len(t, stub.visits, 1)
	assert.Equal(t, fixedNow(), stub.visits[0].VisitedAt)
	assert.Equal(t, time.UTC, stub.visits[0].VisitedAt.Location())
}

func TestVisitsSummary_DayRange(t *testing.T) {
	stub := &visitRepoStub{
		rows: []models.VisitBucket{
			{Bucket: time.Date(2025, 6, 18, 14, 0, 0, 0, time.UTC), Count: 5},
			{Bucket: time.Date(2025, 6, 18, 9, 0, 0, 0, time.UTC), Count: 2},
		},
	}
	s := newTestAnalyticsService(stub)

	buckets, err := s.VisitsSummary(context.Background(), "day")
	require.NoError(t, err)

	assert.Equal(t, "hour", stub.gotTrunc)
	assert.Equal(t, time.Date(2025, 6, 17, 15, 0, 0, 0, time.UTC), stub.gotSince)

	require.Len(t, buckets, 24)
	assert.Equal(t, time.Date(2025, 6, 17, 15, 0, 0, 0, time.UTC), buckets[0].Bucket)
	assert.Equal(t, time.Date(2025, 6, 18, 14, 0, 0, 0, time.UTC), buckets[23].Bucket)
	assert.Equal(t, int64(5), buckets[23].Count)

	var total int64
	for _, b := range buckets {
		total += b.Count
	}
	assert.Equal(t, int64(7), total)
}

func TestVisitsSummary_WeekRange(t *testing.T) {
	stub := &visitRepoStub{
		rows: []models.VisitBucket{
			{Bucket: time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), Count: 11},
		},
	}
	s := newTestAnalyticsService(stub)

	buckets, err := s.VisitsSummary(context.Background(), "week")
	require.NoError(t, err)

	assert.Equal(t, "day", stub.gotTrunc)
	require.Len(t, buckets, 7)
	assert.Equal(t, time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC), buckets[0].Bucket)
	assert.Equal(t, time.Date(2025, 6, 18, 0, 0, 0, 0, time.UTC), buckets[6].Bucket)
	assert.Equal(t, int64(11), buckets[3].Count)
}

func TestVisitsSummary_DefaultsToMonth(t *testing.T) {
	stub := &visitRepoStub{}
	s := newTestAnalyticsService(stub)

	buckets, err := s.VisitsSummary(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, "day", stub.gotTrunc)
	assert.Equal(t, time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC), stub.gotSince)
	require.Len(t, buckets, 30)
	for _, b := range buckets {
		assert.Zero(t, b.Count)
	}
}

func TestVisitsSummary_YearRangeMonthBuckets(t *testing.T) {
	stub := &visitRepoStub{
		rows: []models.VisitBucket{
			{Bucket: time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC), Count: 100},
			{Bucket: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), Count: 42},
		},
	}
	s := newTestAnalyticsService(stub)

	buckets, err := s.VisitsSummary(context.Background(), "year")
	require.NoError(t, err)

	assert.Equal(t, "month", stub.gotTrunc)
	require.Len(t, buckets, 12)
	assert.Equal(t, time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC), buckets[0].Bucket)
	assert.Equal(t, int64(100), buckets[0].Count)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), buckets[11].Bucket)
	assert.Equal(t, int64(42), buckets[11].Count)
}

func TestVisitsSummary_BucketsAreDenseAndOrdered(t *testing.T) {
	stub := &visitRepoStub{}
	s := newTestAnalyticsService(stub)

	for _, rng := range []string{"day", "week", "month", "year"} {
		buckets, err := s.VisitsSummary(context.Background(), rng)
		require.NoError(t, err, rng)
		for i := 1; i < len(buckets); i++ {
			assert.True(t, buckets[i].Bucket.After(buckets[i-1].Bucket),
				"%s buckets out of order at %d", rng, i)
		}
	}
}

func TestVisitsSummary_UnknownRange(t *testing.T) {
	stub := &visitRepoStub{}
	s := newTestAnalyticsService(stub)

	_, err := s.VisitsSummary(context.Background(), "decade")
	require.Error(t, err)

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	assert.Zero(t, stub.callCount)
}
