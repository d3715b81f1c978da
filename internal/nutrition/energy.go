package nutrition

import "diet-planner/internal/profile"

var activityFactor = map[profile.ActivityLevel]float64{
	profile.ActivityLow:      1.2,
	profile.ActivityModerate: 1.4,
	profile.ActivityHigh:     1.6,
	profile.ActivityAthlete:  1.8,
}

var sexOffset = map[profile.Sex]float64{
	profile.SexFemale:      -161,
	profile.SexMale:        5,
	profile.SexUnspecified: 0,
}

// EnergyInput is the subset of a profile the energy model reads.
type EnergyInput struct {
	WeightKg      float64
	HeightCm      float64
	Age           int
	Sex           string
	ActivityLevel profile.ActivityLevel
}

// BMR estimates basal metabolic rate with the Mifflin-St Jeor equation.
func BMR(in EnergyInput) float64 {
	return 10*in.WeightKg + 6.25*in.HeightCm - 5*float64(in.Age) + sexOffset[profile.NormalizeSex(in.Sex)]
}

// TDEE scales BMR by the activity factor of the given level.
// Unknown levels fall back to the sedentary factor.
func TDEE(in EnergyInput) float64 {
	factor, ok := activityFactor[in.ActivityLevel]
	if !ok {
		factor = activityFactor[profile.ActivityLow]
	}
	return BMR(in) * factor
}
