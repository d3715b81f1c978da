package planner

import (
	"errors"
	"fmt"
	"time"

	"diet-planner/internal/nutrition"
	"diet-planner/internal/profile"
	"diet-planner/internal/recipe"
)

var (
	// ErrIncompleteProfile is returned when the user's profile, goal or
	// preferences are missing or out of range.
	ErrIncompleteProfile = profile.ErrIncomplete
	// ErrEmptyCatalog is returned when there is not a single recipe to plan with.
	ErrEmptyCatalog = errors.New("recipe catalog is empty")
	// ErrInvalidWeek is returned for week indexes outside 1..4.
	ErrInvalidWeek = errors.New("week index must be between 1 and 4")
)

// Request holds everything a plan is computed from.
type Request struct {
	Snapshot  profile.Snapshot
	Catalog   []recipe.Recipe
	StartDate time.Time
}

// Report describes how a plan was produced.
type Report struct {
	TDEE         float64
	CatalogSize  int
	EligibleSize int
	// Degraded is set when no recipe passed the filters and the whole catalog was used.
	Degraded bool
	// Cursor is the rotation position after the last slot was filled.
	Cursor int
}

// GeneratePlan computes a complete 28-day cycle. It is a pure function of its
// request: identical requests yield identical cycles. The returned cycle has
// no IDs or user; those are assigned when it is stored.
func GeneratePlan(req Request) (*PlanCycle, Report, error) {
	var report Report

	if err := req.Snapshot.Validate(); err != nil {
		return nil, report, err
	}
	prefs := *req.Snapshot.Preferences

	targets, tdee := nutrition.DailyTargets(*req.Snapshot.Profile, *req.Snapshot.Goal)
	report.TDEE = tdee
	report.CatalogSize = len(req.Catalog)

	eligible, degraded := recipe.Eligible(req.Catalog, prefs)
	report.EligibleSize = len(eligible)
	report.Degraded = degraded
	if len(eligible) == 0 {
		return nil, report, ErrEmptyCatalog
	}

	start := startOfDay(req.StartDate)
	slots := MealSlots(prefs.MealsPerDay, prefs.Snacks)

	a := &assembler{
		recipes: eligible,
		slots:   slots,
		perMeal: targets.DivideEvenly(len(slots)),
		repeat:  prefs.RepeatMeals,
		start:   start,
	}
	weeks, cursor := a.cycle(0)
	report.Cursor = cursor

	return &PlanCycle{
		StartDate: start,
		EndDate:   start.AddDate(0, 0, CycleDays-1),
		Status:    StatusActive,
		Targets:   targets,
		Weeks:     weeks,
	}, report, nil
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// ParseStartDate parses a YYYY-MM-DD date in UTC. An empty value means today.
func ParseStartDate(value string, now time.Time) (time.Time, error) {
	if value == "" {
		return startOfDay(now), nil
	}
	t, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid start date %q: %w", value, err)
	}
	return t, nil
}
