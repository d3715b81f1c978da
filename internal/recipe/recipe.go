package recipe

import (
	"fmt"
	"slices"
	"strings"
)

// Macros are the nutrition facts of one serving.
type Macros struct {
	Calories     int `json:"calories"`
	ProteinGrams int `json:"protein_grams"`
	CarbsGrams   int `json:"carbs_grams"`
	FatGrams     int `json:"fat_grams"`
}

// Recipe is a catalog entry. The catalog is shared by every user and read-only
// to plan generation.
type Recipe struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Description    string   `json:"description,omitempty"`
	Tags           []string `json:"tags"`
	Ingredients    []string `json:"ingredients"`
	Instructions   []string `json:"instructions,omitempty"`
	Macros         Macros   `json:"macros"`
	DefaultServing string   `json:"default_serving,omitempty"`
	Source         string   `json:"source,omitempty"`
	UpdatedAt      string   `json:"updated_at,omitempty"`
}

// Where a catalog entry came from. Syncing one source never touches the others.
const (
	SourceSeed  = "seed"
	SourceGhost = "ghost"
	SourceClip  = "clip"
)

// Common tags understood by the eligibility filter.
const (
	TagVegan       = "vegan"
	TagVegetarian  = "vegetarian"
	TagKeto        = "keto"
	TagLowCarb     = "low_carb"
	TagHighProtein = "high_protein"
	TagQuick       = "quick"
	TagBudget      = "budget"
)

// HasTag reports whether the recipe carries the exact tag.
func (r Recipe) HasTag(tag string) bool {
	return slices.Contains(r.Tags, tag)
}

// HasAnyTag reports whether the recipe carries at least one of the tags.
func (r Recipe) HasAnyTag(tags ...string) bool {
	for _, tag := range tags {
		if r.HasTag(tag) {
			return true
		}
	}
	return false
}

// searchText is the lowercase text banned tokens are matched against.
func (r Recipe) searchText() string {
	return strings.ToLower(fmt.Sprintf("%s %s %s", r.Name, r.Description, strings.Join(r.Ingredients, " ")))
}
