package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"dashgate/internal/db/ent"
	"dashgate/internal/repository"
)

// Click-analytics window sizes accepted by the API. The default is 30 days.
const (
	RangeWeek    = "7d"
	RangeMonth   = "30d"
	RangeQuarter = "90d"
)

// DailyCount is one day of click volume in a time series.
type DailyCount struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Count int    `json:"count"`
}

// DashboardCount ranks one dashboard label by click volume.
type DashboardCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// MonthlyCount is one calendar month of click volume plus how many distinct
// dashboards were opened that month.
type MonthlyCount struct {
	Month      string `json:"month"` // YYYY-MM
	Count      int    `json:"count"`
	Dashboards int    `json:"dashboards"`
}

// ClickSummary is the headline card for the analytics panel.
type ClickSummary struct {
	TotalClicks  int    `json:"totalClicks"`
	UniqueUsers  int    `json:"uniqueUsers"`
	TopDashboard string `json:"topDashboard"`
	ClicksToday  int    `json:"clicksToday"`
}

// ClickReport bundles everything the analytics panel renders for one range.
type ClickReport struct {
	Range   string           `json:"range"`
	Summary ClickSummary     `json:"summary"`
	Daily   []DailyCount     `json:"daily"`
	Top     []DashboardCount `json:"top"`
	Monthly []MonthlyCount   `json:"monthly"`
}

// AnalyticsService aggregates the click log into dashboard-panel reports.
type AnalyticsService interface {
	// Report fetches clicks for the given range key and aggregates them.
	Report(ctx context.Context, rangeKey string) (*ClickReport, error)
}

type analyticsService struct {
	clickRepo repository.ClickRepository
}

// NewAnalyticsService creates a new AnalyticsService instance
func NewAnalyticsService(clickRepo repository.ClickRepository) AnalyticsService {
	return &analyticsService{
		clickRepo: clickRepo,
	}
}

func (s *analyticsService) Report(ctx context.Context, rangeKey string) (*ClickReport, error) {
	days, normalized, err := rangeDays(rangeKey)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	since := now.AddDate(0, 0, -days)
	clicks, err := s.clickRepo.ListBetween(ctx, since, now)
	if err != nil {
		return nil, fmt.Errorf("failed to load click events: %w", err)
	}

	return &ClickReport{
		Range:   normalized,
		Summary: SummarizeClicks(clicks, now),
		Daily:   DailyCounts(clicks),
		Top:     TopDashboards(clicks),
		Monthly: MonthlyCounts(clicks),
	}, nil
}

func rangeDays(rangeKey string) (int, string, error) {
	switch rangeKey {
	case RangeWeek:
		return 7, RangeWeek, nil
	case RangeQuarter:
		return 90, RangeQuarter, nil
	case RangeMonth, "":
		return 30, RangeMonth, nil
	default:
		return 0, "", fmt.Errorf("%w: unknown range %q", ErrValidation, rangeKey)
	}
}

// DailyCounts buckets clicks per calendar day and returns the last 10 days
// that saw any traffic, oldest first.
func DailyCounts(clicks []*ent.ClickEvent) []DailyCount {
	counts := make(map[string]int)
	for _, c := range clicks {
		counts[c.CreatedAt.Format("2006-01-02")]++
	}

	days := make([]string, 0, len(counts))
	for d := range counts {
		days = append(days, d)
	}
	sort.Strings(days)
	if len(days) > 10 {
		days = days[len(days)-10:]
	}

	out := make([]DailyCount, 0, len(days))
	for _, d := range days {
		out = append(out, DailyCount{Date: d, Count: counts[d]})
	}
	return out
}

// TopDashboards ranks dashboard labels by click volume and returns at most
// five. Buckets key on the title stored with the click, falling back to a
// generated label when the title was empty, so clicks sharing a label merge
// into one bucket. Ties keep the label that appeared first in the click log.
func TopDashboards(clicks []*ent.ClickEvent) []DashboardCount {
	counts := make(map[string]int)
	order := make([]string, 0)

	for _, c := range clicks {
		label := clickLabel(c)
		if _, seen := counts[label]; !seen {
			order = append(order, label)
		}
		counts[label]++
	}

	ranked := make([]DashboardCount, 0, len(order))
	for _, label := range order {
		ranked = append(ranked, DashboardCount{Label: label, Count: counts[label]})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	if len(ranked) > 5 {
		ranked = ranked[:5]
	}
	return ranked
}

// MonthlyCounts buckets clicks per calendar month, oldest first, tracking
// how many distinct dashboard labels were opened in each month.
func MonthlyCounts(clicks []*ent.ClickEvent) []MonthlyCount {
	counts := make(map[string]int)
	boards := make(map[string]map[string]struct{})
	for _, c := range clicks {
		month := c.CreatedAt.Format("2006-01")
		counts[month]++
		if boards[month] == nil {
			boards[month] = make(map[string]struct{})
		}
		boards[month][clickLabel(c)] = struct{}{}
	}

	months := make([]string, 0, len(counts))
	for m := range counts {
		months = append(months, m)
	}
	sort.Strings(months)

	out := make([]MonthlyCount, 0, len(months))
	for _, m := range months {
		out = append(out, MonthlyCount{Month: m, Count: counts[m], Dashboards: len(boards[m])})
	}
	return out
}

// clickLabel resolves the bucket label for one click: the title stored at
// click time, or a generated stand-in when that title was empty.
func clickLabel(c *ent.ClickEvent) string {
	if c.DashboardTitle != "" {
		return c.DashboardTitle
	}
	return fmt.Sprintf("Dashboard %d", c.DashboardID)
}

// SummarizeClicks computes the headline numbers for a click window. Days
// are compared in the local timezone of now.
func SummarizeClicks(clicks []*ent.ClickEvent, now time.Time) ClickSummary {
	summary := ClickSummary{TopDashboard: "N/A"}
	if len(clicks) == 0 {
		return summary
	}

	users := make(map[string]struct{})
	today := now.Format("2006-01-02")
	for _, c := range clicks {
		summary.TotalClicks++
		users[c.UserEmail] = struct{}{}
		if c.CreatedAt.Format("2006-01-02") == today {
			summary.ClicksToday++
		}
	}
	summary.UniqueUsers = len(users)

	if top := TopDashboards(clicks); len(top) > 0 {
		summary.TopDashboard = top[0].Label
	}
	return summary
}
