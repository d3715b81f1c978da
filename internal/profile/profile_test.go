package profile

import (
	"errors"
	"testing"
)

func validSnapshot() Snapshot {
	return Snapshot{
		Profile: &Profile{Age: 30, HeightCm: 170, WeightKg: 70, Sex: "male", Country: "DO"},
		Goal: &Goal{
			GoalType:      GoalLoseFat,
			Pace:          PaceModerate,
			ActivityLevel: ActivityModerate,
		},
		Preferences: &Preferences{MealsPerDay: 3, Style: StyleNormal},
	}
}

func TestNormalizeSex(t *testing.T) {
	cases := map[string]Sex{
		"female":     SexFemale,
		"Femenino":   SexFemale,
		"mujer":      SexFemale,
		"male":       SexMale,
		"Masculino":  SexMale,
		"HOMBRE":     SexMale,
		"":           SexUnspecified,
		"prefer not": SexUnspecified,
	}
	for raw, want := range cases {
		if got := NormalizeSex(raw); got != want {
			t.Errorf("NormalizeSex(%q): expected %s, got %s", raw, want, got)
		}
	}
}

func TestValidate(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		if err := validSnapshot().Validate(); err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
	})

	cases := []struct {
		name  string
		field string
		edit  func(s *Snapshot)
	}{
		{"MissingProfile", "profile", func(s *Snapshot) { s.Profile = nil }},
		{"MissingGoal", "goal", func(s *Snapshot) { s.Goal = nil }},
		{"MissingPreferences", "preferences", func(s *Snapshot) { s.Preferences = nil }},
		{"AgeTooLow", "age", func(s *Snapshot) { s.Profile.Age = 11 }},
		{"HeightTooHigh", "height_cm", func(s *Snapshot) { s.Profile.HeightCm = 231 }},
		{"WeightTooLow", "weight_kg", func(s *Snapshot) { s.Profile.WeightKg = 20 }},
		{"ShortCountry", "country", func(s *Snapshot) { s.Profile.Country = "D" }},
		{"UnknownGoal", "goal_type", func(s *Snapshot) { s.Goal.GoalType = "BULK" }},
		{"UnknownPace", "pace", func(s *Snapshot) { s.Goal.Pace = "" }},
		{"UnknownActivity", "activity_level", func(s *Snapshot) { s.Goal.ActivityLevel = "SEDENTARY" }},
		{"TooManyMeals", "meals_per_day", func(s *Snapshot) { s.Preferences.MealsPerDay = 7 }},
		{"UnknownStyle", "style", func(s *Snapshot) { s.Preferences.Style = "PALEO" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := validSnapshot()
			tc.edit(&s)

			err := s.Validate()
			if !errors.Is(err, ErrIncomplete) {
				t.Fatalf("Expected ErrIncomplete, got %v", err)
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Expected *ValidationError, got %T", err)
			}
			if verr.Field != tc.field {
				t.Errorf("Expected field %q, got %q", tc.field, verr.Field)
			}
		})
	}
}

func TestSplitList(t *testing.T) {
	got := SplitList(" mani, , mariscos ,lactosa,")
	want := []string{"mani", "mariscos", "lactosa"}
	if len(got) != len(want) {
		t.Fatalf("Expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Expected %q at %d, got %q", want[i], i, got[i])
		}
	}

	if SplitList("") != nil {
		t.Error("Expected nil for empty input")
	}
}
