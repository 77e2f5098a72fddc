// Package static serves the compiled-in plan and asset tables. Nothing here
// is mutated after package initialization, so a single Catalog is safe to
// share across goroutines.
package static

import (
	"alcyxob/fitness-coach/internal/domain"
	"alcyxob/fitness-coach/internal/repository"
)

// Catalog implements both repository.PlanCatalog and repository.AssetCatalog.
type Catalog struct{}

var (
	_ repository.PlanCatalog  = Catalog{}
	_ repository.AssetCatalog = Catalog{}
)

// NewPlanCatalog returns the built-in plan tables.
func NewPlanCatalog() repository.PlanCatalog {
	return Catalog{}
}

// NewAssetCatalog returns the built-in image table.
func NewAssetCatalog() repository.AssetCatalog {
	return Catalog{}
}

func (Catalog) Workout(goal domain.Goal, level domain.Level) (domain.WorkoutRoutine, bool) {
	if !goal.Valid() || !level.Valid() {
		return domain.WorkoutRoutine{}, false
	}
	return workoutTable[goal][level], true
}

func (Catalog) Nutrition(goal domain.Goal) (domain.MealPlan, bool) {
	if !goal.Valid() {
		return domain.MealPlan{}, false
	}
	return nutritionTable[goal], true
}

func (Catalog) Motivation(goal domain.Goal) (string, bool) {
	if !goal.Valid() {
		return "", false
	}
	return motivationTable[goal], true
}

// Entries returns a copy of the asset table in match-priority order.
func (Catalog) Entries() []domain.AssetEntry {
	out := make([]domain.AssetEntry, len(assetTable))
	copy(out, assetTable)
	return out
}

func (Catalog) Default() domain.AssetEntry {
	return assetTable[len(assetTable)-1]
}
