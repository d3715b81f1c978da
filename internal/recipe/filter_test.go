package recipe

import (
	"strings"
	"testing"

	"diet-planner/internal/profile"
)

func names(recipes []Recipe) []string {
	out := make([]string, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, r.ID)
	}
	return out
}

func sameIDs(t *testing.T, got []Recipe, want ...string) {
	t.Helper()
	ids := names(got)
	if strings.Join(ids, ",") != strings.Join(want, ",") {
		t.Errorf("Expected %v, got %v", want, ids)
	}
}

var testCatalog = []Recipe{
	{ID: "tofu", Name: "Tofu bowl", Tags: []string{TagVegan, TagQuick, TagBudget}, Ingredients: []string{"tofu", "rice"}},
	{ID: "omelette", Name: "Omelette", Description: "Eggs and cheese", Tags: []string{TagVegetarian, TagLowCarb, TagQuick}, Ingredients: []string{"eggs", "cheese"}},
	{ID: "steak", Name: "Steak", Tags: []string{TagKeto, TagHighProtein}, Ingredients: []string{"beef", "butter"}},
	{ID: "shrimp", Name: "Garlic shrimp", Tags: []string{TagLowCarb, TagHighProtein, TagBudget}, Ingredients: []string{"Shrimp", "garlic"}},
	{ID: "pasta", Name: "Pasta", Tags: []string{TagBudget}, Ingredients: []string{"pasta", "tomato", "PEANUT oil"}},
}

func TestFilterStyles(t *testing.T) {
	cases := []struct {
		style profile.DietStyle
		want  []string
	}{
		{profile.StyleNormal, []string{"tofu", "omelette", "steak", "shrimp", "pasta"}},
		{profile.StyleVegan, []string{"tofu"}},
		{profile.StyleVegetarian, []string{"tofu", "omelette"}},
		{profile.StyleKeto, []string{"omelette", "steak", "shrimp"}},
		{profile.StyleLowCarb, []string{"omelette", "steak", "shrimp"}},
		{profile.StyleHighProtein, []string{"steak", "shrimp"}},
	}

	for _, tc := range cases {
		t.Run(string(tc.style), func(t *testing.T) {
			got := Filter(testCatalog, profile.Preferences{Style: tc.style})
			sameIDs(t, got, tc.want...)
		})
	}
}

func TestFilterBannedTokens(t *testing.T) {
	prefs := profile.Preferences{
		Style:                profile.StyleNormal,
		Allergies:            []string{"Peanut"},
		Intolerances:         []string{"cheese"},
		CulturalRestrictions: []string{"shrimp"},
		DislikedFoods:        []string{"", "  "},
	}

	got := Filter(testCatalog, prefs)
	sameIDs(t, got, "tofu", "steak")

	banned := bannedTokens(prefs)
	for _, r := range got {
		text := r.searchText()
		for _, token := range banned {
			if strings.Contains(text, token) {
				t.Errorf("Recipe %s contains banned token %q", r.ID, token)
			}
		}
	}
}

func TestFilterSoftPreferences(t *testing.T) {
	t.Run("LowBudget", func(t *testing.T) {
		got := Filter(testCatalog, profile.Preferences{Style: profile.StyleNormal, BudgetLevel: "Bajo"})
		sameIDs(t, got, "tofu", "shrimp", "pasta")
	})

	t.Run("QuickCooking", func(t *testing.T) {
		got := Filter(testCatalog, profile.Preferences{Style: profile.StyleNormal, CookingTimeLevel: "rapido (15 min)"})
		sameIDs(t, got, "tofu", "omelette")
	})

	t.Run("Combined", func(t *testing.T) {
		got := Filter(testCatalog, profile.Preferences{
			Style:            profile.StyleHighProtein,
			BudgetLevel:      "low",
			CookingTimeLevel: "medium",
		})
		sameIDs(t, got, "shrimp")
	})
}

func TestHintsMatchWholeWords(t *testing.T) {
	cases := []struct {
		value string
		hints []string
		want  bool
	}{
		{"Bajo", lowBudgetHints, true},
		{"low-cost", lowBudgetHints, true},
		{"below average", lowBudgetHints, false},
		{"allow splurges", lowBudgetHints, false},
		{"slow cooker", lowBudgetHints, false},
		{"rápido (15 min)", quickCookHints, true},
		{"Quick!", quickCookHints, true},
		{"long breakfast", quickCookHints, false},
		{"", quickCookHints, false},
	}

	for _, tc := range cases {
		if got := hasWord(tc.value, tc.hints); got != tc.want {
			t.Errorf("hasWord(%q) = %v, want %v", tc.value, got, tc.want)
		}
	}

	t.Run("SlowCookingKeepsEveryRecipe", func(t *testing.T) {
		got := Filter(testCatalog, profile.Preferences{Style: profile.StyleNormal, CookingTimeLevel: "slow, big breakfast", BudgetLevel: "below 20"})
		sameIDs(t, got, "tofu", "omelette", "steak", "shrimp", "pasta")
	})
}

func TestEligible(t *testing.T) {
	t.Run("Match", func(t *testing.T) {
		got, degraded := Eligible(testCatalog, profile.Preferences{Style: profile.StyleVegan})
		if degraded {
			t.Error("Expected no fallback")
		}
		sameIDs(t, got, "tofu")
	})

	t.Run("FallbackToCatalog", func(t *testing.T) {
		got, degraded := Eligible(testCatalog, profile.Preferences{Style: profile.StyleVegan, Allergies: []string{"tofu"}})
		if !degraded {
			t.Error("Expected fallback to be reported")
		}
		sameIDs(t, got, "tofu", "omelette", "steak", "shrimp", "pasta")
	})

	t.Run("EmptyCatalog", func(t *testing.T) {
		got, degraded := Eligible(nil, profile.Preferences{Style: profile.StyleNormal})
		if degraded || len(got) != 0 {
			t.Errorf("Expected empty, non-degraded result, got %v (degraded=%v)", got, degraded)
		}
	})
}
