// internal/domain/plan.go
package domain

// NotApplicable marks a workout field that does not apply, e.g. sets for a
// steady-state run.
const NotApplicable = "-"

// Every routine and meal plan has exactly this many entries.
const PlanLength = 5

// WorkoutItem is one exercise in a routine. Fields are free-form display
// strings ("30 minutes", "12", "45 sec each") or NotApplicable.
type WorkoutItem struct {
	Exercise string `json:"exercise"`
	Duration string `json:"duration"`
	Sets     string `json:"sets"`
	Reps     string `json:"reps"`
}

// NutritionItem is one meal slot of a day's meal plan.
type NutritionItem struct {
	Meal     string `json:"meal"`
	Food     string `json:"food"`
	Calories string `json:"calories"` // e.g. "350 kcal"
	Protein  string `json:"protein"`  // e.g. "12g"
}

// WorkoutRoutine and MealPlan are fixed length so a short table row fails to
// compile instead of producing a short plan.
type WorkoutRoutine [PlanLength]WorkoutItem
type MealPlan [PlanLength]NutritionItem

// Plan is the transient response value for a profile. It has no identity and
// is never stored.
type Plan struct {
	Workout    []WorkoutItem   `json:"workout"`
	Nutrition  []NutritionItem `json:"nutrition"`
	Motivation string          `json:"motivation"`
}

// NewPlan copies the routine and meal plan so callers cannot reach back into
// catalog storage.
func NewPlan(routine WorkoutRoutine, meals MealPlan, motivation string) Plan {
	workout := make([]WorkoutItem, PlanLength)
	copy(workout, routine[:])
	nutrition := make([]NutritionItem, PlanLength)
	copy(nutrition, meals[:])
	return Plan{
		Workout:    workout,
		Nutrition:  nutrition,
		Motivation: motivation,
	}
}
