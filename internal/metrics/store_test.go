package metrics

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"diet-planner/internal/database"
	"diet-planner/internal/planner"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	d, err := database.NewDB(filepath.Join(t.TempDir(), "metrics.db"))
	if err != nil {
		t.Fatalf("Failed to create database: %v", err)
	}
	t.Cleanup(func() { d.Close() })
	return NewStore(d.SQL)
}

func TestStore(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	now := time.Now().UTC()

	records := []GenerationMetric{
		{UserID: "u1", Style: "VEGAN", CatalogSize: 12, EligibleSize: 3, MealCount: 84, LatencyMS: 10, Timestamp: now},
		{UserID: "u2", Style: "KETO", CatalogSize: 12, EligibleSize: 12, Degraded: true, MealCount: 56, LatencyMS: 30, Timestamp: now},
		{UserID: "u1", Style: "VEGAN", CatalogSize: 12, EligibleSize: 3, MealCount: 84, LatencyMS: 5, Timestamp: now.AddDate(0, 0, -40)},
	}
	for _, m := range records {
		if err := store.Record(ctx, m); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
	}

	t.Run("GetDailyUsage", func(t *testing.T) {
		usage, err := store.GetDailyUsage(ctx, 7)
		if err != nil {
			t.Fatalf("GetDailyUsage failed: %v", err)
		}
		if len(usage) != 1 {
			t.Fatalf("Expected 1 day of usage, got %d", len(usage))
		}
		u := usage[0]
		if u.Date != now.Format("2006-01-02") {
			t.Errorf("Expected date %s, got %s", now.Format("2006-01-02"), u.Date)
		}
		if u.Generations != 2 || u.Degraded != 1 || u.Meals != 140 {
			t.Errorf("Unexpected usage %+v", u)
		}
		if u.AvgLatencyMS != 20 {
			t.Errorf("Expected average latency 20, got %f", u.AvgLatencyMS)
		}
	})

	t.Run("Cleanup", func(t *testing.T) {
		removed, err := store.Cleanup(ctx, 30)
		if err != nil {
			t.Fatalf("Cleanup failed: %v", err)
		}
		if removed != 1 {
			t.Errorf("Expected 1 record removed, got %d", removed)
		}
	})
}

func TestMapReport(t *testing.T) {
	report := planner.Report{CatalogSize: 10, EligibleSize: 10, Degraded: true, Cursor: 84}
	m := MapReport("u1", "KETO", report, 84, 1500*time.Millisecond)

	if m.UserID != "u1" || m.Style != "KETO" || !m.Degraded || m.MealCount != 84 {
		t.Errorf("Unexpected metric %+v", m)
	}
	if m.LatencyMS != 1500 {
		t.Errorf("Expected 1500ms, got %d", m.LatencyMS)
	}
	if m.Timestamp.IsZero() {
		t.Error("Expected a timestamp")
	}
}

func TestGetSysHealth(t *testing.T) {
	h := GetSysHealth(t.TempDir())
	if h.Goroutines == 0 {
		t.Error("Expected at least one goroutine")
	}
	if h.DataDiskSize != "0 B" {
		t.Errorf("Expected empty data dir, got %s", h.DataDiskSize)
	}
}

func TestFormatBytes(t *testing.T) {
	cases := map[int64]string{
		0:               "0 B",
		1023:            "1023 B",
		1536:            "1.5 KB",
		5 * 1024 * 1024: "5.0 MB",
	}
	for in, want := range cases {
		if got := formatBytes(in); got != want {
			t.Errorf("formatBytes(%d): expected %s, got %s", in, want, got)
		}
	}
}
