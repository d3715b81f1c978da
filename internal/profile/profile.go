package profile

import "strings"

// Sex is the normalized biological sex used by the energy model.
type Sex string

const (
	SexFemale      Sex = "female"
	SexMale        Sex = "male"
	SexUnspecified Sex = "unspecified"
)

// NormalizeSex maps free-text input onto a Sex. Female tokens are checked
// first because "female" also contains "male".
func NormalizeSex(raw string) Sex {
	s := strings.ToLower(raw)
	switch {
	case strings.Contains(s, "fem") || strings.Contains(s, "mujer"):
		return SexFemale
	case strings.Contains(s, "male") || strings.Contains(s, "masc") || strings.Contains(s, "hombre"):
		return SexMale
	default:
		return SexUnspecified
	}
}

type GoalType string

const (
	GoalLoseFat    GoalType = "LOSE_FAT"
	GoalGainMuscle GoalType = "GAIN_MUSCLE"
	GoalMaintain   GoalType = "MAINTAIN"
	GoalRecomp     GoalType = "RECOMP"
)

type Pace string

const (
	PaceAggressive Pace = "AGGRESSIVE"
	PaceModerate   Pace = "MODERATE"
	PaceGentle     Pace = "GENTLE"
)

type ActivityLevel string

const (
	ActivityLow      ActivityLevel = "LOW"
	ActivityModerate ActivityLevel = "MODERATE"
	ActivityHigh     ActivityLevel = "HIGH"
	ActivityAthlete  ActivityLevel = "ATHLETE"
)

// DietStyle is the eating style selected during onboarding.
type DietStyle string

const (
	StyleNormal      DietStyle = "NORMAL"
	StyleLowCarb     DietStyle = "LOW_CARB"
	StyleHighProtein DietStyle = "HIGH_PROTEIN"
	StyleVegetarian  DietStyle = "VEGETARIAN"
	StyleVegan       DietStyle = "VEGAN"
	StyleKeto        DietStyle = "KETO"
)

// Profile is the biometric snapshot of a user.
type Profile struct {
	Age      int     `json:"age"`
	HeightCm float64 `json:"height_cm"`
	WeightKg float64 `json:"weight_kg"`
	Sex      string  `json:"sex,omitempty"`
	Country  string  `json:"country"`
}

// Goal is the user's single active goal.
type Goal struct {
	GoalType      GoalType      `json:"goal_type"`
	Pace          Pace          `json:"pace"`
	ActivityLevel ActivityLevel `json:"activity_level"`
}

// Preferences holds the dietary choices and restrictions of a user.
type Preferences struct {
	MealsPerDay          int       `json:"meals_per_day"`
	Style                DietStyle `json:"style"`
	Snacks               bool      `json:"snacks"`
	RepeatMeals          bool      `json:"repeat_meals"`
	FreeDay              bool      `json:"free_day"`
	DislikedFoods        []string  `json:"disliked_foods,omitempty"`
	Allergies            []string  `json:"allergies,omitempty"`
	Intolerances         []string  `json:"intolerances,omitempty"`
	CulturalRestrictions []string  `json:"cultural_restrictions,omitempty"`
	BudgetLevel          string    `json:"budget_level,omitempty"`
	CookingTimeLevel     string    `json:"cooking_time_level,omitempty"`
}

// Snapshot bundles everything plan generation reads about a user.
type Snapshot struct {
	Profile     *Profile     `json:"profile"`
	Goal        *Goal        `json:"goal"`
	Preferences *Preferences `json:"preferences"`
}

// SplitList turns a comma separated free-text answer into trimmed, non-empty tokens.
func SplitList(value string) []string {
	if value == "" {
		return nil
	}

	var items []string
	for _, item := range strings.Split(value, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}
