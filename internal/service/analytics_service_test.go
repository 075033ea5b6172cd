package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"dashgate/internal/db/ent"
	"dashgate/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockClickRepository struct {
	repository.ClickRepository
	listBetweenFunc func(ctx context.Context, start, end time.Time) ([]*ent.ClickEvent, error)
	createFunc      func(ctx context.Context, dashboardID uint32, dashboardTitle, userEmail string) (*ent.ClickEvent, error)
}

func (m *mockClickRepository) Create(ctx context.Context, dashboardID uint32, dashboardTitle, userEmail string) (*ent.ClickEvent, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, dashboardID, dashboardTitle, userEmail)
	}
	return newTestClick(dashboardID, dashboardTitle, userEmail, time.Now()), nil
}

func (m *mockClickRepository) ListBetween(ctx context.Context, start, end time.Time) ([]*ent.ClickEvent, error) {
	if m.listBetweenFunc != nil {
		return m.listBetweenFunc(ctx, start, end)
	}
	return []*ent.ClickEvent{}, nil
}

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestDailyCounts(t *testing.T) {
	t.Run("buckets per day oldest first", func(t *testing.T) {
		clicks := []*ent.ClickEvent{
			newTestClick(1, "Revenue", "a@x.com", day("2026-03-02")),
			newTestClick(1, "Revenue", "b@x.com", day("2026-03-01")),
			newTestClick(2, "Churn", "a@x.com", day("2026-03-02")),
		}

		got := DailyCounts(clicks)
		require.Len(t, got, 2)
		assert.Equal(t, DailyCount{Date: "2026-03-01", Count: 1}, got[0])
		assert.Equal(t, DailyCount{Date: "2026-03-02", Count: 2}, got[1])
	})

	t.Run("keeps only the last 10 days with traffic", func(t *testing.T) {
		var clicks []*ent.ClickEvent
		base := day("2026-03-01")
		for i := 0; i < 14; i++ {
			clicks = append(clicks, newTestClick(1, "Revenue", "a@x.com", base.AddDate(0, 0, i)))
		}

		got := DailyCounts(clicks)
		require.Len(t, got, 10)
		assert.Equal(t, "2026-03-05", got[0].Date)
		assert.Equal(t, "2026-03-14", got[9].Date)
	})

	t.Run("empty input yields empty series", func(t *testing.T) {
		assert.Empty(t, DailyCounts(nil))
	})
}

func TestTopDashboards(t *testing.T) {
	t.Run("ranks by volume with label fallback", func(t *testing.T) {
		clicks := []*ent.ClickEvent{
			newTestClick(7, "", "a@x.com", day("2026-03-01")),
			newTestClick(7, "", "b@x.com", day("2026-03-02")),
			newTestClick(3, "Revenue", "a@x.com", day("2026-03-01")),
		}

		got := TopDashboards(clicks)
		require.Len(t, got, 2)
		assert.Equal(t, DashboardCount{Label: "Dashboard 7", Count: 2}, got[0])
		assert.Equal(t, DashboardCount{Label: "Revenue", Count: 1}, got[1])
	})

	t.Run("clicks sharing a label merge into one bucket", func(t *testing.T) {
		clicks := []*ent.ClickEvent{
			newTestClick(1, "Revenue", "a@x.com", day("2026-03-01")),
			newTestClick(2, "Revenue", "b@x.com", day("2026-03-01")),
			newTestClick(3, "Churn", "a@x.com", day("2026-03-02")),
		}

		got := TopDashboards(clicks)
		require.Len(t, got, 2)
		assert.Equal(t, DashboardCount{Label: "Revenue", Count: 2}, got[0])
		assert.Equal(t, DashboardCount{Label: "Churn", Count: 1}, got[1])
	})

	t.Run("ties keep first-encountered order", func(t *testing.T) {
		clicks := []*ent.ClickEvent{
			newTestClick(2, "Churn", "a@x.com", day("2026-03-01")),
			newTestClick(1, "Revenue", "a@x.com", day("2026-03-01")),
			newTestClick(2, "Churn", "b@x.com", day("2026-03-02")),
			newTestClick(1, "Revenue", "b@x.com", day("2026-03-02")),
		}

		got := TopDashboards(clicks)
		require.Len(t, got, 2)
		assert.Equal(t, "Churn", got[0].Label)
		assert.Equal(t, "Revenue", got[1].Label)
	})

	t.Run("caps at five entries", func(t *testing.T) {
		var clicks []*ent.ClickEvent
		for id := uint32(1); id <= 8; id++ {
			clicks = append(clicks, newTestClick(id, "", "a@x.com", day("2026-03-01")))
		}
		assert.Len(t, TopDashboards(clicks), 5)
	})
}

func TestMonthlyCounts(t *testing.T) {
	clicks := []*ent.ClickEvent{
		newTestClick(1, "Revenue", "a@x.com", day("2026-02-27")),
		newTestClick(2, "Churn", "a@x.com", day("2026-02-28")),
		newTestClick(1, "Revenue", "b@x.com", day("2026-03-01")),
		newTestClick(5, "Revenue", "b@x.com", day("2026-03-02")),
		newTestClick(1, "Revenue", "c@x.com", day("2026-03-15")),
	}

	got := MonthlyCounts(clicks)
	require.Len(t, got, 2)
	assert.Equal(t, MonthlyCount{Month: "2026-02", Count: 2, Dashboards: 2}, got[0])
	// Two ids share the "Revenue" label in March; distinct counts labels.
	assert.Equal(t, MonthlyCount{Month: "2026-03", Count: 3, Dashboards: 1}, got[1])
}

func TestSummarizeClicks(t *testing.T) {
	now := day("2026-03-02").Add(15 * time.Hour)

	t.Run("empty log", func(t *testing.T) {
		got := SummarizeClicks(nil, now)
		assert.Equal(t, ClickSummary{TopDashboard: "N/A"}, got)
	})

	t.Run("headline numbers", func(t *testing.T) {
		clicks := []*ent.ClickEvent{
			newTestClick(1, "Revenue", "a@x.com", day("2026-03-01")),
			newTestClick(1, "Revenue", "a@x.com", day("2026-03-02")),
			newTestClick(2, "Churn", "b@x.com", day("2026-03-02")),
		}

		got := SummarizeClicks(clicks, now)
		assert.Equal(t, 3, got.TotalClicks)
		assert.Equal(t, 2, got.UniqueUsers)
		assert.Equal(t, "Revenue", got.TopDashboard)
		assert.Equal(t, 2, got.ClicksToday)
	})
}

func TestAnalyticsReport(t *testing.T) {
	t.Run("rejects unknown range", func(t *testing.T) {
		svc := NewAnalyticsService(&mockClickRepository{})
		_, err := svc.Report(context.Background(), "365d")
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("defaults to 30 days", func(t *testing.T) {
		var gotStart, gotEnd time.Time
		svc := NewAnalyticsService(&mockClickRepository{
			listBetweenFunc: func(ctx context.Context, start, end time.Time) ([]*ent.ClickEvent, error) {
				gotStart, gotEnd = start, end
				return []*ent.ClickEvent{}, nil
			},
		})

		report, err := svc.Report(context.Background(), "")
		require.NoError(t, err)
		assert.Equal(t, RangeMonth, report.Range)
		assert.InDelta(t, 30*24, gotEnd.Sub(gotStart).Hours(), 1)
	})

	t.Run("propagates repository failure", func(t *testing.T) {
		svc := NewAnalyticsService(&mockClickRepository{
			listBetweenFunc: func(ctx context.Context, start, end time.Time) ([]*ent.ClickEvent, error) {
				return nil, errors.New("connection refused")
			},
		})

		_, err := svc.Report(context.Background(), RangeWeek)
		assert.Error(t, err)
	})
}
