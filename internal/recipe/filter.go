package recipe

import (
	"strings"
	"unicode"

	"diet-planner/internal/profile"
)

// stylePredicates holds the tag rule of every diet style with a restriction.
// NORMAL has no entry and accepts everything.
var stylePredicates = map[profile.DietStyle]func(Recipe) bool{
	profile.StyleVegan: func(r Recipe) bool {
		return r.HasTag(TagVegan)
	},
	profile.StyleVegetarian: func(r Recipe) bool {
		return r.HasAnyTag(TagVegetarian, TagVegan)
	},
	profile.StyleKeto: func(r Recipe) bool {
		return r.HasAnyTag(TagKeto, TagLowCarb)
	},
	profile.StyleLowCarb: func(r Recipe) bool {
		return r.HasAnyTag(TagLowCarb, TagKeto)
	},
	profile.StyleHighProtein: func(r Recipe) bool {
		return r.HasTag(TagHighProtein)
	},
}

var (
	lowBudgetHints = []string{"bajo", "low"}
	quickCookHints = []string{"rapido", "rápido", "quick", "fast"}
)

// Filter returns the recipes that pass every active preference, in catalog order.
func Filter(catalog []Recipe, prefs profile.Preferences) []Recipe {
	banned := bannedTokens(prefs)
	checks := []func(Recipe) bool{
		func(r Recipe) bool { return !containsAny(r.searchText(), banned) },
	}
	if pred, ok := stylePredicates[prefs.Style]; ok {
		checks = append(checks, pred)
	}
	if hasWord(prefs.BudgetLevel, lowBudgetHints) {
		checks = append(checks, func(r Recipe) bool { return r.HasTag(TagBudget) })
	}
	if hasWord(prefs.CookingTimeLevel, quickCookHints) {
		checks = append(checks, func(r Recipe) bool { return r.HasTag(TagQuick) })
	}

	var eligible []Recipe
	for _, r := range catalog {
		if passesAll(r, checks) {
			eligible = append(eligible, r)
		}
	}
	return eligible
}

// Eligible filters the catalog and falls back to the full catalog when nothing
// matches. The second return value reports that fallback.
func Eligible(catalog []Recipe, prefs profile.Preferences) ([]Recipe, bool) {
	eligible := Filter(catalog, prefs)
	if len(eligible) == 0 {
		return catalog, len(catalog) > 0
	}
	return eligible, false
}

func bannedTokens(prefs profile.Preferences) []string {
	var tokens []string
	for _, list := range [][]string{prefs.DislikedFoods, prefs.Allergies, prefs.Intolerances, prefs.CulturalRestrictions} {
		for _, item := range list {
			// An empty token would match every recipe.
			if item = strings.ToLower(strings.TrimSpace(item)); item != "" {
				tokens = append(tokens, item)
			}
		}
	}
	return tokens
}

func containsAny(s string, tokens []string) bool {
	for _, token := range tokens {
		if strings.Contains(s, token) {
			return true
		}
	}
	return false
}

// hasWord reports whether any whole word of s equals one of words.
// "Bajo (ahorro)" has the word "bajo"; "below" does not have "low".
func hasWord(s string, words []string) bool {
	fields := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	for _, field := range fields {
		for _, word := range words {
			if field == word {
				return true
			}
		}
	}
	return false
}

func passesAll(r Recipe, checks []func(Recipe) bool) bool {
	for _, check := range checks {
		if !check(r) {
			return false
		}
	}
	return true
}
