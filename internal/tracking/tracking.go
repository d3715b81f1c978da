package tracking

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"diet-planner/internal/nutrition"
	"diet-planner/internal/planner"
)

// ErrInvalid is returned for check-ins and food log entries that cannot be stored.
var ErrInvalid = errors.New("invalid tracking data")

// Source tells how a food log entry was captured. Totals are always supplied by
// the caller; the source is kept for reporting only.
type Source string

const (
	SourceScan    Source = "SCAN"
	SourceBarcode Source = "BARCODE"
	SourceManual  Source = "MANUAL"
)

// Totals is the energy and macros eaten, in kcal and grams.
type Totals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein_grams"`
	Carbs    float64 `json:"carbs_grams"`
	Fat      float64 `json:"fat_grams"`
}

func (t Totals) validate() error {
	for name, v := range map[string]float64{"calories": t.Calories, "protein": t.Protein, "carbs": t.Carbs, "fat": t.Fat} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return fmt.Errorf("%w: %s must be a non-negative number", ErrInvalid, name)
		}
	}
	return nil
}

// DayCheck is the user's own record of how a plan day went.
type DayCheck struct {
	Date           string                    `json:"date"`
	IsCompleted    bool                      `json:"is_completed"`
	MealsCompleted map[planner.MealType]bool `json:"meals_completed"`
	Notes          string                    `json:"notes,omitempty"`
	UpdatedAt      time.Time                 `json:"updated_at"`
}

func (c DayCheck) validate() error {
	for mealType := range c.MealsCompleted {
		if !knownMealType(mealType) {
			return fmt.Errorf("%w: unknown meal type %q", ErrInvalid, mealType)
		}
	}
	return nil
}

// FoodLogEntry is one thing the user ate.
type FoodLogEntry struct {
	ID          int64            `json:"id,omitempty"`
	MealType    planner.MealType `json:"meal_type"`
	Source      Source           `json:"source"`
	Name        string           `json:"name,omitempty"`
	ServingText string           `json:"serving_text,omitempty"`
	Quantity    float64          `json:"quantity,omitempty"`
	Barcode     string           `json:"barcode,omitempty"`
	Items       json.RawMessage  `json:"items,omitempty"`
	Totals      Totals           `json:"totals"`
	CreatedAt   time.Time        `json:"created_at"`
}

func (e *FoodLogEntry) normalize() error {
	if e.Source == "" {
		e.Source = SourceManual
	}
	if !knownMealType(e.MealType) {
		return fmt.Errorf("%w: unknown meal type %q", ErrInvalid, e.MealType)
	}
	switch e.Source {
	case SourceScan, SourceBarcode, SourceManual:
	default:
		return fmt.Errorf("%w: unknown source %q", ErrInvalid, e.Source)
	}
	if e.Quantity < 0 {
		return fmt.Errorf("%w: quantity must not be negative", ErrInvalid)
	}
	if len(e.Items) > 0 && !json.Valid(e.Items) {
		return fmt.Errorf("%w: items must be valid JSON", ErrInvalid)
	}
	return e.Totals.validate()
}

// FoodLogDay is everything logged on one day, with running totals.
type FoodLogDay struct {
	Date    string         `json:"date"`
	Totals  Totals         `json:"totals"`
	Entries []FoodLogEntry `json:"entries"`
}

func knownMealType(t planner.MealType) bool {
	switch t {
	case planner.MealBreakfast, planner.MealLunch, planner.MealDinner, planner.MealSnack:
		return true
	}
	return false
}

// ParseDate normalizes a calendar date. It accepts YYYY-MM-DD or an RFC 3339
// timestamp, which is reduced to its date in its own offset.
func ParseDate(value string) (string, error) {
	value = strings.TrimSpace(value)
	if t, err := time.Parse(time.DateOnly, value); err == nil {
		return t.Format(time.DateOnly), nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.Format(time.DateOnly), nil
	}
	return "", fmt.Errorf("%w: date %q is not YYYY-MM-DD", ErrInvalid, value)
}

// Progress compares what the user ate and checked off on a day with what the
// active plan has for that day.
type Progress struct {
	Date         string             `json:"date"`
	Check        *DayCheck          `json:"check,omitempty"`
	FoodLog      *FoodLogDay        `json:"food_log,omitempty"`
	Logged       Totals             `json:"logged"`
	Planned      *planner.PlanDay   `json:"planned,omitempty"`
	Target       *nutrition.Targets `json:"target,omitempty"`
	Remaining    *Totals            `json:"remaining,omitempty"`
	MealsPlanned int                `json:"meals_planned"`
	MealsDone    int                `json:"meals_done"`
}

// NewProgress builds the progress of a day. cycle may be nil, and the date may
// fall outside it; then only the logged side is filled in. A negative
// remaining value means the target was exceeded.
func NewProgress(date string, check *DayCheck, log *FoodLogDay, cycle *planner.PlanCycle) Progress {
	p := Progress{Date: date, Check: check, FoodLog: log}
	if log != nil {
		p.Logged = log.Totals
	}
	if cycle == nil {
		return p
	}

	day, err := time.Parse(time.DateOnly, date)
	if err != nil {
		return p
	}
	planned := cycle.DayOn(day)
	if planned == nil {
		return p
	}

	target := cycle.Targets
	p.Planned = planned
	p.Target = &target
	p.Remaining = &Totals{
		Calories: float64(target.Calories) - p.Logged.Calories,
		Protein:  float64(target.Protein) - p.Logged.Protein,
		Carbs:    float64(target.Carbs) - p.Logged.Carbs,
		Fat:      float64(target.Fat) - p.Logged.Fat,
	}
	p.MealsPlanned = len(planned.Meals)
	if check != nil {
		for _, meal := range planned.Meals {
			if check.MealsCompleted[meal.Type] {
				p.MealsDone++
			}
		}
	}
	return p
}
