package repository

import (
	"alcyxob/fitness-coach/internal/domain"
)

// PlanCatalog is the read-only source of routines, meal plans and
// motivational templates. Lookups report presence explicitly; callers decide
// what to substitute when ok is false.
type PlanCatalog interface {
	Workout(goal domain.Goal, level domain.Level) (routine domain.WorkoutRoutine, ok bool)
	Nutrition(goal domain.Goal) (meals domain.MealPlan, ok bool)
	// Motivation returns a format string with exactly one %s for the name.
	Motivation(goal domain.Goal) (template string, ok bool)
}

// AssetCatalog is the read-only keyword table used for image selection.
type AssetCatalog interface {
	// Entries returns the table in match-priority order. The default entry
	// is always last.
	Entries() []domain.AssetEntry
	Default() domain.AssetEntry
}
