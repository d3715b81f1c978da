package shopping

// Aggregate tallies, for every distinct ingredient, how many meal slots use a
// recipe listing it. Ingredients match by exact string; "egg" and "eggs" are
// separate lines. Items come out in the order they were first seen.
func Aggregate(assignments []Assignment) []Item {
	counts := make(map[string]int)
	var order []string

	for _, a := range assignments {
		if a.Recipe == nil || a.Slots <= 0 {
			continue
		}
		seen := make(map[string]struct{}, len(a.Recipe.Ingredients))
		for _, ingredient := range a.Recipe.Ingredients {
			if _, dup := seen[ingredient]; dup {
				continue
			}
			seen[ingredient] = struct{}{}

			if _, ok := counts[ingredient]; !ok {
				order = append(order, ingredient)
			}
			counts[ingredient] += a.Slots
		}
	}

	items := make([]Item, 0, len(order))
	for _, name := range order {
		items = append(items, Item{Name: name, Quantity: quantity(counts[name])})
	}
	return items
}
