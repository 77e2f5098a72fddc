// internal/domain/goal.go
package domain

import "strings"

// Goal is the user's fitness objective. The set is closed; values outside it
// never reach the catalog.
type Goal int

const (
	GoalWeightLoss Goal = iota
	GoalMuscleGain
	GoalGeneralFitness
	GoalEndurance
	GoalFlexibility
	GoalStrength

	NumGoals = iota
)

// Level is the user's self-reported training experience.
type Level int

const (
	LevelBeginner Level = iota
	LevelIntermediate
	LevelAdvanced

	NumLevels = iota
)

var goalKeys = [NumGoals]string{
	GoalWeightLoss:     "weight loss",
	GoalMuscleGain:     "muscle gain",
	GoalGeneralFitness: "general fitness",
	GoalEndurance:      "endurance",
	GoalFlexibility:    "flexibility",
	GoalStrength:       "strength",
}

var goalLabels = [NumGoals]string{
	GoalWeightLoss:     "Weight Loss",
	GoalMuscleGain:     "Muscle Gain",
	GoalGeneralFitness: "General Fitness",
	GoalEndurance:      "Endurance",
	GoalFlexibility:    "Flexibility",
	GoalStrength:       "Strength",
}

var levelKeys = [NumLevels]string{
	LevelBeginner:     "beginner",
	LevelIntermediate: "intermediate",
	LevelAdvanced:     "advanced",
}

var levelLabels = [NumLevels]string{
	LevelBeginner:     "Beginner",
	LevelIntermediate: "Intermediate",
	LevelAdvanced:     "Advanced",
}

// Canonicalize lower-cases a raw goal or level string. Surrounding
// whitespace is kept, so a padded value matches nothing.
func Canonicalize(s string) string {
	return strings.ToLower(s)
}

// ParseGoal maps a raw string onto the closed goal set. Matching is
// case-insensitive; ok is false for anything outside the set.
func ParseGoal(s string) (g Goal, ok bool) {
	key := Canonicalize(s)
	for i, k := range goalKeys {
		if k == key {
			return Goal(i), true
		}
	}
	return 0, false
}

// ParseLevel maps a raw string onto the closed level set.
func ParseLevel(s string) (l Level, ok bool) {
	key := Canonicalize(s)
	for i, k := range levelKeys {
		if k == key {
			return Level(i), true
		}
	}
	return 0, false
}

func (g Goal) Valid() bool  { return g >= 0 && g < NumGoals }
func (l Level) Valid() bool { return l >= 0 && l < NumLevels }

// String returns the canonical wire key, e.g. "muscle gain".
func (g Goal) String() string {
	if !g.Valid() {
		return ""
	}
	return goalKeys[g]
}

// Label is the human-facing name shown in the profile form.
func (g Goal) Label() string {
	if !g.Valid() {
		return ""
	}
	return goalLabels[g]
}

func (l Level) String() string {
	if !l.Valid() {
		return ""
	}
	return levelKeys[l]
}

func (l Level) Label() string {
	if !l.Valid() {
		return ""
	}
	return levelLabels[l]
}

// Goals lists every goal in declaration order.
func Goals() []Goal {
	out := make([]Goal, NumGoals)
	for i := range out {
		out[i] = Goal(i)
	}
	return out
}

// Levels lists every level in declaration order.
func Levels() []Level {
	out := make([]Level, NumLevels)
	for i := range out {
		out[i] = Level(i)
	}
	return out
}
