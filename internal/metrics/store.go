package metrics

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"diet-planner/internal/metrics/metrics_db"
	"diet-planner/internal/planner"
)

// GenerationMetric records metadata for a single plan generation.
type GenerationMetric struct {
	UserID       string
	Style        string
	CatalogSize  int
	EligibleSize int
	Degraded     bool
	MealCount    int
	LatencyMS    int64
	Timestamp    time.Time
}

// Store handles persistence of metrics to SQLite.
type Store struct {
	queries *metricsdb.Queries
}

// NewStore initializes the Store with an existing database connection.
func NewStore(db *sql.DB) *Store {
	return &Store{queries: metricsdb.New(db)}
}

// Record saves a metric to the database.
func (s *Store) Record(ctx context.Context, m GenerationMetric) error {
	ts := m.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}

	err := s.queries.InsertGenerationMetric(ctx, metricsdb.InsertGenerationMetricParams{
		UserID:       m.UserID,
		Style:        m.Style,
		CatalogSize:  int64(m.CatalogSize),
		EligibleSize: int64(m.EligibleSize),
		Degraded:     m.Degraded,
		MealCount:    int64(m.MealCount),
		LatencyMs:    m.LatencyMS,
		Timestamp:    ts.UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to record generation metric: %w", err)
	}
	return nil
}

// DailyUsage summarizes the generations of a single day.
type DailyUsage struct {
	Date         string
	Generations  int
	Degraded     int
	Meals        int
	AvgLatencyMS float64
}

// GetDailyUsage retrieves usage for the last N days, newest first.
func (s *Store) GetDailyUsage(ctx context.Context, days int) ([]DailyUsage, error) {
	since := time.Now().UTC().AddDate(0, 0, -days)
	rows, err := s.queries.GetDailyGenerations(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily usage: %w", err)
	}

	var results []DailyUsage
	for _, r := range rows {
		u := DailyUsage{
			Generations: int(r.Count),
		}

		if day, ok := r.Day.(string); ok {
			u.Date = day
		} else {
			u.Date = "Unknown"
		}

		if r.Sum.Valid {
			u.Degraded = int(r.Sum.Float64)
		}
		if r.Sum_2.Valid {
			u.Meals = int(r.Sum_2.Float64)
		}
		if r.Avg.Valid {
			u.AvgLatencyMS = r.Avg.Float64
		}

		results = append(results, u)
	}
	return results, nil
}

// Cleanup removes records older than the specified number of days and
// returns how many were removed.
func (s *Store) Cleanup(ctx context.Context, olderThanDays int) (int64, error) {
	threshold := time.Now().UTC().AddDate(0, 0, -olderThanDays)
	removed, err := s.queries.CleanupGenerationMetrics(ctx, threshold)
	if err != nil {
		return 0, fmt.Errorf("failed to clean up metrics: %w", err)
	}
	return removed, nil
}

// MapReport converts a generation report into a GenerationMetric.
func MapReport(userID, style string, report planner.Report, mealCount int, latency time.Duration) GenerationMetric {
	return GenerationMetric{
		UserID:       userID,
		Style:        style,
		CatalogSize:  report.CatalogSize,
		EligibleSize: report.EligibleSize,
		Degraded:     report.Degraded,
		MealCount:    mealCount,
		LatencyMS:    latency.Milliseconds(),
		Timestamp:    time.Now().UTC(),
	}
}
