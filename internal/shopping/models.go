package shopping

import (
	"fmt"

	"diet-planner/internal/recipe"
)

// Item is one line of a weekly grocery list.
type Item struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
}

// Assignment is a recipe served in a number of meal slots.
type Assignment struct {
	Recipe *recipe.Recipe
	Slots  int
}

func quantity(count int) string {
	return fmt.Sprintf("%dx", count)
}
