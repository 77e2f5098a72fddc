package service

import (
	"fmt"
	"strings"

	"alcyxob/fitness-coach/internal/domain"
)

const defaultNarrationMotivation = "Stay strong and keep pushing!"

// Narrate renders plan as plain text for a screen reader or speech engine.
// Fields holding the not-applicable sentinel are left out of the sentence.
func Narrate(name string, plan domain.Plan) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Your personalized fitness plan for %s.\n\n", name)

	b.WriteString("Workout Plan: ")
	if len(plan.Workout) == 0 {
		b.WriteString("No workout data")
	} else {
		parts := make([]string, len(plan.Workout))
		for i, item := range plan.Workout {
			parts[i] = narrateWorkoutItem(i+1, item)
		}
		b.WriteString(strings.Join(parts, ". "))
	}
	b.WriteString("\n\n")

	b.WriteString("Nutrition Plan: ")
	if len(plan.Nutrition) == 0 {
		b.WriteString("No nutrition data")
	} else {
		parts := make([]string, len(plan.Nutrition))
		for i, item := range plan.Nutrition {
			parts[i] = fmt.Sprintf("Meal %d: %s. %s. %s calories, %s protein",
				i+1, item.Meal, item.Food, item.Calories, item.Protein)
		}
		b.WriteString(strings.Join(parts, ". "))
	}
	b.WriteString("\n\n")

	motivation := plan.Motivation
	if motivation == "" {
		motivation = defaultNarrationMotivation
	}
	b.WriteString("Motivation: ")
	b.WriteString(motivation)

	return b.String()
}

func narrateWorkoutItem(n int, item domain.WorkoutItem) string {
	words := []string{fmt.Sprintf("Exercise %d: %s.", n, item.Exercise)}
	if item.Sets != domain.NotApplicable {
		words = append(words, item.Sets+" sets")
	}
	if item.Reps != domain.NotApplicable {
		words = append(words, "of "+item.Reps+" reps")
	}
	if item.Duration != domain.NotApplicable {
		words = append(words, "for "+item.Duration)
	}
	return strings.Join(words, " ")
}
