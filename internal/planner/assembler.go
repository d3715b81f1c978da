package planner

import (
	"time"

	"diet-planner/internal/nutrition"
	"diet-planner/internal/recipe"
	"diet-planner/internal/shopping"
)

// MealSlots resolves the ordered meal types of a day.
func MealSlots(mealsPerDay int, snacks bool) []MealType {
	switch {
	case mealsPerDay <= 2:
		return []MealType{MealBreakfast, MealDinner}
	case mealsPerDay == 3:
		return []MealType{MealBreakfast, MealLunch, MealDinner}
	case snacks:
		return []MealType{MealBreakfast, MealLunch, MealDinner, MealSnack}
	default:
		return []MealType{MealBreakfast, MealLunch, MealDinner}
	}
}

// assembler fills a cycle with recipes in strict round-robin order. It holds
// only immutable inputs; the rotation cursor is passed in and returned by
// every step so the whole cycle draws from one continuous sequence.
type assembler struct {
	recipes []recipe.Recipe
	slots   []MealType
	perMeal nutrition.Targets
	repeat  bool
	start   time.Time
}

// draw returns the recipe under the cursor and the advanced cursor.
func (a *assembler) draw(cursor int) (*recipe.Recipe, int) {
	return &a.recipes[cursor%len(a.recipes)], cursor + 1
}

func (a *assembler) meal(t MealType, r *recipe.Recipe) Meal {
	return Meal{
		Type:       t,
		RecipeID:   r.ID,
		RecipeName: r.Name,
		Targets:    a.perMeal,
	}
}

func (a *assembler) day(week, index, cursor int) (PlanDay, []shopping.Assignment, int) {
	d := PlanDay{
		DayIndex: index,
		Date:     a.start.AddDate(0, 0, DaysPerWeek*(week-1)+(index-1)),
		Meals:    make([]Meal, 0, len(a.slots)),
	}

	if a.repeat {
		var r *recipe.Recipe
		r, cursor = a.draw(cursor)
		for _, t := range a.slots {
			d.Meals = append(d.Meals, a.meal(t, r))
		}
		return d, []shopping.Assignment{{Recipe: r, Slots: len(a.slots)}}, cursor
	}

	assignments := make([]shopping.Assignment, 0, len(a.slots))
	for _, t := range a.slots {
		var r *recipe.Recipe
		r, cursor = a.draw(cursor)
		d.Meals = append(d.Meals, a.meal(t, r))
		assignments = append(assignments, shopping.Assignment{Recipe: r, Slots: 1})
	}
	return d, assignments, cursor
}

func (a *assembler) week(index, cursor int) (PlanWeek, int) {
	w := PlanWeek{
		WeekIndex: index,
		Days:      make([]PlanDay, 0, DaysPerWeek),
	}

	var assignments []shopping.Assignment
	for dayIndex := 1; dayIndex <= DaysPerWeek; dayIndex++ {
		var (
			d    PlanDay
			used []shopping.Assignment
		)
		d, used, cursor = a.day(index, dayIndex, cursor)
		w.Days = append(w.Days, d)
		assignments = append(assignments, used...)
	}

	w.GroceryItems = shopping.Aggregate(assignments)
	return w, cursor
}

// cycle builds the four weeks starting from cursor and returns the final cursor.
func (a *assembler) cycle(cursor int) ([]PlanWeek, int) {
	weeks := make([]PlanWeek, 0, WeeksPerCycle)
	for index := 1; index <= WeeksPerCycle; index++ {
		var w PlanWeek
		w, cursor = a.week(index, cursor)
		weeks = append(weeks, w)
	}
	return weeks, cursor
}
