package service

import (
	"fmt"

	"alcyxob/fitness-coach/internal/domain"
	"alcyxob/fitness-coach/internal/repository"
)

// Substitutions used when the catalog has no entry for a request.
const (
	fallbackGoal  = domain.GoalGeneralFitness
	fallbackLevel = domain.LevelBeginner

	genericMotivation = "%s, you've got this! Stay committed to your fitness journey! 🎯"
)

// PlanService turns a profile's goal and level into a plan.
type PlanService interface {
	// ResolvePlan never fails. Unknown goals or levels degrade to the
	// general-fitness/beginner defaults.
	ResolvePlan(name, goal, level string) domain.Plan
}

type planService struct {
	catalog repository.PlanCatalog
}

// NewPlanService creates a PlanService backed by catalog.
func NewPlanService(catalog repository.PlanCatalog) PlanService {
	return &planService{catalog: catalog}
}

func (s *planService) ResolvePlan(name, goal, level string) domain.Plan {
	g, goalKnown := domain.ParseGoal(goal)
	l, levelKnown := domain.ParseLevel(level)

	return domain.NewPlan(
		s.workout(g, goalKnown, l, levelKnown),
		s.nutrition(g, goalKnown),
		fmt.Sprintf(s.motivation(g, goalKnown), name),
	)
}

// workout falls back to the general-fitness beginner routine as a whole.
// A known goal with an unknown level does not keep the goal.
func (s *planService) workout(g domain.Goal, goalKnown bool, l domain.Level, levelKnown bool) domain.WorkoutRoutine {
	if goalKnown && levelKnown {
		if routine, ok := s.catalog.Workout(g, l); ok {
			return routine
		}
	}
	routine, _ := s.catalog.Workout(fallbackGoal, fallbackLevel)
	return routine
}

func (s *planService) nutrition(g domain.Goal, goalKnown bool) domain.MealPlan {
	if goalKnown {
		if meals, ok := s.catalog.Nutrition(g); ok {
			return meals
		}
	}
	meals, _ := s.catalog.Nutrition(fallbackGoal)
	return meals
}

func (s *planService) motivation(g domain.Goal, goalKnown bool) string {
	if goalKnown {
		if tmpl, ok := s.catalog.Motivation(g); ok {
			return tmpl
		}
	}
	return genericMotivation
}
