package nutrition

import (
	"math"

	"diet-planner/internal/profile"
)

const (
	kcalPerGramProtein = 4
	kcalPerGramCarbs   = 4
	kcalPerGramFat     = 9

	fatPerKg       = 0.7
	minCarbsShare  = 0.2
	defaultProtein = 1.7
)

var deficitFactor = map[profile.Pace]float64{
	profile.PaceAggressive: 0.25,
	profile.PaceModerate:   0.15,
	profile.PaceGentle:     0.10,
}

var surplusFactor = map[profile.Pace]float64{
	profile.PaceAggressive: 0.15,
	profile.PaceModerate:   0.10,
	profile.PaceGentle:     0.05,
}

var proteinPerKg = map[profile.GoalType]float64{
	profile.GoalGainMuscle: 2.1,
	profile.GoalLoseFat:    1.9,
}

// Targets are daily energy and macronutrient goals, rounded to whole units.
type Targets struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein_grams"`
	Carbs    int `json:"carbs_grams"`
	Fat      int `json:"fat_grams"`
}

// Kcal returns the energy implied by the macro grams.
func (t Targets) Kcal() int {
	return t.Protein*kcalPerGramProtein + t.Carbs*kcalPerGramCarbs + t.Fat*kcalPerGramFat
}

// DivideEvenly splits the targets across n meals, rounding each component on its own.
func (t Targets) DivideEvenly(n int) Targets {
	if n <= 0 {
		return Targets{}
	}
	d := float64(n)
	return Targets{
		Calories: round(float64(t.Calories) / d),
		Protein:  round(float64(t.Protein) / d),
		Carbs:    round(float64(t.Carbs) / d),
		Fat:      round(float64(t.Fat) / d),
	}
}

// AdjustCalories applies the goal's deficit or surplus to the TDEE.
// Maintenance and recomposition keep the TDEE unchanged.
func AdjustCalories(tdee float64, goal profile.GoalType, pace profile.Pace) float64 {
	switch goal {
	case profile.GoalLoseFat:
		return tdee * (1 - deficitFactor[pace])
	case profile.GoalGainMuscle:
		return tdee * (1 + surplusFactor[pace])
	default:
		return tdee
	}
}

// AllocateMacros converts a calorie goal into protein, fat and carb grams.
// Carbs take whatever energy protein and fat leave, but never less than 20%
// of the total.
func AllocateMacros(calories, weightKg float64, goal profile.GoalType) Targets {
	perKg, ok := proteinPerKg[goal]
	if !ok {
		perKg = defaultProtein
	}

	protein := weightKg * perKg
	fat := weightKg * fatPerKg
	carbCalories := math.Max(
		calories-protein*kcalPerGramProtein-fat*kcalPerGramFat,
		calories*minCarbsShare,
	)

	return Targets{
		Calories: round(calories),
		Protein:  round(protein),
		Carbs:    round(carbCalories / kcalPerGramCarbs),
		Fat:      round(fat),
	}
}

// DailyTargets runs the full energy and macro pipeline for one snapshot.
func DailyTargets(p profile.Profile, g profile.Goal) (Targets, float64) {
	tdee := TDEE(EnergyInput{
		WeightKg:      p.WeightKg,
		HeightCm:      p.HeightCm,
		Age:           p.Age,
		Sex:           p.Sex,
		ActivityLevel: g.ActivityLevel,
	})
	calories := AdjustCalories(tdee, g.GoalType, g.Pace)
	return AllocateMacros(calories, p.WeightKg, g.GoalType), tdee
}

// round rounds half away from zero; all inputs here are positive.
func round(v float64) int {
	return int(math.Round(v))
}
