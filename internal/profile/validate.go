package profile

import (
	"errors"
	"fmt"
	"strings"
)

// ErrIncomplete is returned when a snapshot is missing data needed to build a plan.
var ErrIncomplete = errors.New("incomplete profile")

// ValidationError names the first field that failed validation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("incomplete profile: %s %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrIncomplete
}

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// Validate checks that all three parts of the snapshot are present and inside
// the ranges accepted at onboarding.
func (s Snapshot) Validate() error {
	if s.Profile == nil {
		return invalid("profile", "is missing")
	}
	if s.Goal == nil {
		return invalid("goal", "is missing")
	}
	if s.Preferences == nil {
		return invalid("preferences", "is missing")
	}

	p := s.Profile
	if p.Age < 12 || p.Age > 90 {
		return invalid("age", "must be between 12 and 90")
	}
	if p.HeightCm < 120 || p.HeightCm > 230 {
		return invalid("height_cm", "must be between 120 and 230")
	}
	if p.WeightKg < 35 || p.WeightKg > 250 {
		return invalid("weight_kg", "must be between 35 and 250")
	}
	if len(strings.TrimSpace(p.Country)) < 2 {
		return invalid("country", "must have at least 2 characters")
	}

	switch s.Goal.GoalType {
	case GoalLoseFat, GoalGainMuscle, GoalMaintain, GoalRecomp:
	default:
		return invalid("goal_type", fmt.Sprintf("has unknown value %q", s.Goal.GoalType))
	}
	switch s.Goal.Pace {
	case PaceAggressive, PaceModerate, PaceGentle:
	default:
		return invalid("pace", fmt.Sprintf("has unknown value %q", s.Goal.Pace))
	}
	switch s.Goal.ActivityLevel {
	case ActivityLow, ActivityModerate, ActivityHigh, ActivityAthlete:
	default:
		return invalid("activity_level", fmt.Sprintf("has unknown value %q", s.Goal.ActivityLevel))
	}

	prefs := s.Preferences
	if prefs.MealsPerDay < 2 || prefs.MealsPerDay > 6 {
		return invalid("meals_per_day", "must be between 2 and 6")
	}
	switch prefs.Style {
	case StyleNormal, StyleLowCarb, StyleHighProtein, StyleVegetarian, StyleVegan, StyleKeto:
	default:
		return invalid("style", fmt.Sprintf("has unknown value %q", prefs.Style))
	}

	return nil
}
