package service

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alcyxob/fitness-coach/internal/domain"
	"alcyxob/fitness-coach/internal/repository/static"
)

// sparseCatalog hides selected entries of the built-in tables.
type sparseCatalog struct {
	static.Catalog
	noWorkout    map[domain.Goal]bool
	noNutrition  map[domain.Goal]bool
	noMotivation map[domain.Goal]bool
}

func (c sparseCatalog) Workout(g domain.Goal, l domain.Level) (domain.WorkoutRoutine, bool) {
	if c.noWorkout[g] {
		return domain.WorkoutRoutine{}, false
	}
	return c.Catalog.Workout(g, l)
}

func (c sparseCatalog) Nutrition(g domain.Goal) (domain.MealPlan, bool) {
	if c.noNutrition[g] {
		return domain.MealPlan{}, false
	}
	return c.Catalog.Nutrition(g)
}

func (c sparseCatalog) Motivation(g domain.Goal) (string, bool) {
	if c.noMotivation[g] {
		return "", false
	}
	return c.Catalog.Motivation(g)
}

func newTestPlanService() PlanService {
	return NewPlanService(static.NewPlanCatalog())
}

func TestResolvePlanReturnsTableEntryForEveryPair(t *testing.T) {
	svc := newTestPlanService()
	catalog := static.Catalog{}

	for _, g := range domain.Goals() {
		for _, l := range domain.Levels() {
			plan := svc.ResolvePlan("Sam", g.String(), l.String())

			routine, _ := catalog.Workout(g, l)
			meals, _ := catalog.Nutrition(g)
			require.Len(t, plan.Workout, 5, "%s/%s", g, l)
			require.Len(t, plan.Nutrition, 5, "%s/%s", g, l)
			assert.Equal(t, routine[:], plan.Workout, "%s/%s", g, l)
			assert.Equal(t, meals[:], plan.Nutrition, "%s", g)
		}
	}
}

func TestResolvePlanMuscleGainAdvanced(t *testing.T) {
	plan := newTestPlanService().ResolvePlan("Alex", "muscle gain", "advanced")

	assert.Equal(t, "Heavy Bench Press", plan.Workout[0].Exercise)
	assert.Equal(t, "Breakfast", plan.Nutrition[0].Meal)
	assert.Equal(t, "Scrambled eggs with whole wheat toast and avocado", plan.Nutrition[0].Food)
	assert.Contains(t, plan.Motivation, "Alex")
	assert.Equal(t, "Alex, gains are made in the kitchen and the gym! Keep lifting heavy and eating right! 💪", plan.Motivation)
}

func TestResolvePlanIsCaseInsensitive(t *testing.T) {
	svc := newTestPlanService()
	assert.Equal(t,
		svc.ResolvePlan("Alex", "muscle gain", "advanced"),
		svc.ResolvePlan("Alex", "MUSCLE Gain", "Advanced"),
	)
}

func TestResolvePlanUnknownGoalFallsBack(t *testing.T) {
	svc := newTestPlanService()

	got := svc.ResolvePlan("Kim", "space travel", "beginner")
	want := svc.ResolvePlan("Kim", "general fitness", "beginner")

	assert.Equal(t, want.Workout, got.Workout)
	assert.Equal(t, want.Nutrition, got.Nutrition)
	assert.Equal(t, "Kim, you've got this! Stay committed to your fitness journey! 🎯", got.Motivation)
}

func TestResolvePlanPaddedValuesAreUnknown(t *testing.T) {
	svc := newTestPlanService()
	fallback := svc.ResolvePlan("A", "general fitness", "beginner")

	got := svc.ResolvePlan("A", "strength ", "beginner")
	assert.Equal(t, fallback.Workout, got.Workout)
	assert.Equal(t, "Walking", got.Workout[0].Exercise)
	assert.Equal(t, fallback.Nutrition, got.Nutrition)
	assert.Equal(t, fmt.Sprintf(genericMotivation, "A"), got.Motivation)

	got = svc.ResolvePlan("A", "strength", " advanced")
	assert.Equal(t, fallback.Workout, got.Workout)
}

func TestResolvePlanUnknownLevelUsesDefaultRoutine(t *testing.T) {
	svc := newTestPlanService()

	got := svc.ResolvePlan("Kim", "strength", "expert")
	fallback := svc.ResolvePlan("Kim", "general fitness", "beginner")
	strength := svc.ResolvePlan("Kim", "strength", "beginner")

	assert.Equal(t, fallback.Workout, got.Workout)
	assert.NotEqual(t, strength.Workout, got.Workout)
	// The goal is still known, so its meal plan and message are kept.
	assert.Equal(t, strength.Nutrition, got.Nutrition)
	assert.Equal(t, strength.Motivation, got.Motivation)
}

func TestResolvePlanMissingCatalogEntries(t *testing.T) {
	catalog := sparseCatalog{
		noWorkout:    map[domain.Goal]bool{domain.GoalEndurance: true},
		noNutrition:  map[domain.Goal]bool{domain.GoalEndurance: true},
		noMotivation: map[domain.Goal]bool{domain.GoalEndurance: true},
	}
	svc := NewPlanService(catalog)
	reference := newTestPlanService().ResolvePlan("Jo", "general fitness", "beginner")

	got := svc.ResolvePlan("Jo", "endurance", "advanced")

	assert.Equal(t, reference.Workout, got.Workout)
	assert.Equal(t, reference.Nutrition, got.Nutrition)
	assert.Equal(t, fmt.Sprintf(genericMotivation, "Jo"), got.Motivation)
}

func TestResolvePlanInsertsNameVerbatim(t *testing.T) {
	name := `<b>100% "Pat"</b>`
	plan := newTestPlanService().ResolvePlan(name, "endurance", "beginner")
	assert.True(t, strings.HasPrefix(plan.Motivation, name+", "))
}

func TestResolvePlanDeterministicUnderConcurrency(t *testing.T) {
	svc := newTestPlanService()
	want, err := json.Marshal(svc.ResolvePlan("Alex", "flexibility", "intermediate"))
	require.NoError(t, err)

	const workers = 32
	results := make([][]byte, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			b, err := json.Marshal(svc.ResolvePlan("Alex", "flexibility", "intermediate"))
			if err == nil {
				results[i] = b
			}
		}(i)
	}
	wg.Wait()

	for i, got := range results {
		assert.Equal(t, string(want), string(got), "worker %d", i)
	}
}

func TestResolvePlanResultsDoNotShareStorage(t *testing.T) {
	svc := newTestPlanService()
	first := svc.ResolvePlan("A", "strength", "advanced")
	first.Workout[0].Exercise = "changed"

	second := svc.ResolvePlan("A", "strength", "advanced")
	assert.Equal(t, "Heavy Squats", second.Workout[0].Exercise)
}
