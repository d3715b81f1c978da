package tracking

import (
	"errors"
	"testing"
	"time"

	"diet-planner/internal/nutrition"
	"diet-planner/internal/planner"
)

func TestParseDate(t *testing.T) {
	cases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"2024-03-05", "2024-03-05", false},
		{" 2024-03-05 ", "2024-03-05", false},
		{"2024-03-05T23:30:00-03:00", "2024-03-05", false},
		{"2024-03-05T01:00:00Z", "2024-03-05", false},
		{"05/03/2024", "", true},
		{"", "", true},
	}

	for _, tc := range cases {
		got, err := ParseDate(tc.in)
		if tc.wantErr {
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("ParseDate(%q): expected ErrInvalid, got %v", tc.in, err)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Errorf("ParseDate(%q) = %q, %v; want %q", tc.in, got, err, tc.want)
		}
	}
}

func TestFoodLogEntryNormalize(t *testing.T) {
	t.Run("DefaultsToManual", func(t *testing.T) {
		e := FoodLogEntry{MealType: planner.MealLunch, Totals: Totals{Calories: 500}}
		if err := e.normalize(); err != nil {
			t.Fatalf("Expected valid entry, got %v", err)
		}
		if e.Source != SourceManual {
			t.Errorf("Expected MANUAL source, got %q", e.Source)
		}
	})

	invalid := map[string]FoodLogEntry{
		"UnknownMeal":      {MealType: "BRUNCH"},
		"UnknownSource":    {MealType: planner.MealLunch, Source: "GUESS"},
		"NegativeCalories": {MealType: planner.MealLunch, Totals: Totals{Calories: -1}},
		"NegativeQuantity": {MealType: planner.MealLunch, Quantity: -2},
		"BrokenItems":      {MealType: planner.MealLunch, Items: []byte(`[{`)},
	}
	for name, e := range invalid {
		t.Run(name, func(t *testing.T) {
			if err := e.normalize(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Expected ErrInvalid, got %v", err)
			}
		})
	}
}

func testCycle() *planner.PlanCycle {
	start := time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC)
	meals := []planner.Meal{
		{Type: planner.MealBreakfast, RecipeID: "oats"},
		{Type: planner.MealLunch, RecipeID: "rice"},
		{Type: planner.MealDinner, RecipeID: "salmon"},
	}
	return &planner.PlanCycle{
		StartDate: start,
		EndDate:   start.AddDate(0, 0, planner.CycleDays-1),
		Targets:   nutrition.Targets{Calories: 2000, Protein: 150, Carbs: 200, Fat: 60},
		Weeks: []planner.PlanWeek{{
			WeekIndex: 1,
			Days: []planner.PlanDay{
				{DayIndex: 1, Date: start, Meals: meals},
				{DayIndex: 2, Date: start.AddDate(0, 0, 1), Meals: meals},
			},
		}},
	}
}

func TestNewProgress(t *testing.T) {
	log := &FoodLogDay{Date: "2024-03-05", Totals: Totals{Calories: 2200, Protein: 100, Carbs: 150, Fat: 70}}
	check := &DayCheck{
		Date: "2024-03-05",
		MealsCompleted: map[planner.MealType]bool{
			planner.MealBreakfast: true,
			planner.MealLunch:     false,
			planner.MealSnack:     true,
		},
	}

	t.Run("AgainstPlan", func(t *testing.T) {
		p := NewProgress("2024-03-05", check, log, testCycle())
		if p.Planned == nil || p.Planned.DayIndex != 2 {
			t.Fatalf("Expected planned day 2, got %+v", p.Planned)
		}
		if p.Target == nil || p.Target.Calories != 2000 {
			t.Fatalf("Expected the cycle targets, got %+v", p.Target)
		}
		want := Totals{Calories: -200, Protein: 50, Carbs: 50, Fat: -10}
		if p.Remaining == nil || *p.Remaining != want {
			t.Errorf("Expected remaining %+v, got %+v", want, p.Remaining)
		}
		// The snack is not part of the plan and does not count.
		if p.MealsPlanned != 3 || p.MealsDone != 1 {
			t.Errorf("Expected 1 of 3 meals done, got %d of %d", p.MealsDone, p.MealsPlanned)
		}
	})

	t.Run("OutsideCycle", func(t *testing.T) {
		p := NewProgress("2024-06-01", nil, log, testCycle())
		if p.Planned != nil || p.Target != nil || p.Remaining != nil {
			t.Errorf("Expected no plan side, got %+v", p)
		}
		if p.Logged != log.Totals {
			t.Errorf("Expected logged totals %+v, got %+v", log.Totals, p.Logged)
		}
	})

	t.Run("NothingLogged", func(t *testing.T) {
		p := NewProgress("2024-03-04", nil, nil, testCycle())
		if p.Remaining == nil || p.Remaining.Calories != 2000 || p.MealsDone != 0 {
			t.Errorf("Expected the whole target remaining, got %+v", p)
		}
	})

	t.Run("WithoutCycle", func(t *testing.T) {
		p := NewProgress("2024-03-04", check, log, nil)
		if p.Planned != nil || p.Logged.Calories != 2200 {
			t.Errorf("Unexpected progress %+v", p)
		}
	})
}
