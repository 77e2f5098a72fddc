package static

import (
	"alcyxob/fitness-coach/internal/domain"
)

// w keeps the routine tables readable.
func w(exercise, duration, sets, reps string) domain.WorkoutItem {
	return domain.WorkoutItem{Exercise: exercise, Duration: duration, Sets: sets, Reps: reps}
}

func n(meal, food, calories, protein string) domain.NutritionItem {
	return domain.NutritionItem{Meal: meal, Food: food, Calories: calories, Protein: protein}
}

const na = domain.NotApplicable

var workoutTable = [domain.NumGoals][domain.NumLevels]domain.WorkoutRoutine{
	domain.GoalWeightLoss: {
		domain.LevelBeginner: {
			w("Brisk Walking", "30 minutes", na, na),
			w("Bodyweight Squats", "10 minutes", "3", "12"),
			w("Push-ups (Modified)", "5 minutes", "3", "8"),
			w("Plank Hold", "3 minutes", "3", "30 sec"),
			w("Jumping Jacks", "10 minutes", "3", "20"),
		},
		domain.LevelIntermediate: {
			w("Running", "30 minutes", na, na),
			w("Burpees", "15 minutes", "4", "15"),
			w("Mountain Climbers", "10 minutes", "4", "20"),
			w("Jump Squats", "10 minutes", "4", "15"),
			w("High Knees", "10 minutes", "4", "30 sec"),
		},
		domain.LevelAdvanced: {
			w("HIIT Sprints", "25 minutes", "6", "30 sec"),
			w("Box Jumps", "15 minutes", "5", "15"),
			w("Burpee Pull-ups", "15 minutes", "5", "12"),
			w("Kettlebell Swings", "15 minutes", "5", "20"),
			w("Battle Ropes", "10 minutes", "5", "45 sec"),
		},
	},
	domain.GoalMuscleGain: {
		domain.LevelBeginner: {
			w("Dumbbell Bench Press", "15 minutes", "3", "10"),
			w("Dumbbell Rows", "15 minutes", "3", "10"),
			w("Goblet Squats", "15 minutes", "3", "12"),
			w("Shoulder Press", "12 minutes", "3", "10"),
			w("Bicep Curls", "10 minutes", "3", "12"),
		},
		domain.LevelIntermediate: {
			w("Barbell Bench Press", "20 minutes", "4", "8"),
			w("Deadlifts", "20 minutes", "4", "8"),
			w("Barbell Squats", "20 minutes", "4", "8"),
			w("Pull-ups", "15 minutes", "4", "10"),
			w("Dips", "12 minutes", "4", "10"),
		},
		domain.LevelAdvanced: {
			w("Heavy Bench Press", "25 minutes", "5", "5"),
			w("Heavy Deadlifts", "25 minutes", "5", "5"),
			w("Heavy Squats", "25 minutes", "5", "5"),
			w("Weighted Pull-ups", "20 minutes", "5", "8"),
			w("Weighted Dips", "15 minutes", "5", "8"),
		},
	},
	domain.GoalGeneralFitness: {
		domain.LevelBeginner: {
			w("Walking", "30 minutes", na, na),
			w("Bodyweight Squats", "10 minutes", "3", "15"),
			w("Push-ups", "8 minutes", "3", "10"),
			w("Lunges", "10 minutes", "3", "10 each"),
			w("Plank", "5 minutes", "3", "30 sec"),
		},
		domain.LevelIntermediate: {
			w("Jogging", "30 minutes", na, na),
			w("Jump Squats", "12 minutes", "4", "15"),
			w("Diamond Push-ups", "10 minutes", "4", "12"),
			w("Walking Lunges", "12 minutes", "4", "15 each"),
			w("Side Plank", "8 minutes", "4", "45 sec each"),
		},
		domain.LevelAdvanced: {
			w("Running", "40 minutes", na, na),
			w("Pistol Squats", "15 minutes", "5", "10 each"),
			w("One-Arm Push-ups", "12 minutes", "5", "8 each"),
			w("Bulgarian Split Squats", "15 minutes", "5", "12 each"),
			w("Plank to Push-up", "10 minutes", "5", "15"),
		},
	},
	domain.GoalEndurance: {
		domain.LevelBeginner: {
			w("Light Jogging", "20 minutes", na, na),
			w("Cycling", "25 minutes", na, na),
			w("Jump Rope", "10 minutes", "3", "1 min"),
			w("Step-ups", "12 minutes", "3", "15 each"),
			w("Arm Circles", "5 minutes", "3", "30 sec"),
		},
		domain.LevelIntermediate: {
			w("Steady Running", "35 minutes", na, na),
			w("Rowing Machine", "20 minutes", na, na),
			w("Box Step-ups", "15 minutes", "4", "20 each"),
			w("Burpees", "12 minutes", "4", "15"),
			w("Mountain Climbers", "10 minutes", "4", "30 sec"),
		},
		domain.LevelAdvanced: {
			w("Long Distance Running", "50 minutes", na, na),
			w("Swimming", "30 minutes", na, na),
			w("HIIT Intervals", "20 minutes", "8", "1 min"),
			w("Stair Climbing", "25 minutes", na, na),
			w("Jump Rope Advanced", "15 minutes", "5", "2 min"),
		},
	},
	domain.GoalFlexibility: {
		domain.LevelBeginner: {
			w("Basic Stretching", "20 minutes", "2", "30 sec each"),
			w("Yoga Sun Salutations", "15 minutes", "3", "5"),
			w("Hip Flexor Stretch", "10 minutes", "3", "45 sec each"),
			w("Hamstring Stretch", "10 minutes", "3", "45 sec each"),
			w("Shoulder Rolls", "5 minutes", "3", "20"),
		},
		domain.LevelIntermediate: {
			w("Dynamic Stretching", "25 minutes", "3", "45 sec each"),
			w("Yoga Flow", "30 minutes", na, na),
			w("Pigeon Pose", "12 minutes", "3", "1 min each"),
			w("Splits Practice", "15 minutes", "3", "1 min"),
			w("Back Bends", "10 minutes", "3", "30 sec"),
		},
		domain.LevelAdvanced: {
			w("Advanced Yoga", "45 minutes", na, na),
			w("Full Splits", "20 minutes", "4", "2 min each"),
			w("Contortion Training", "25 minutes", "4", "1 min each"),
			w("Deep Back Bends", "15 minutes", "4", "1 min"),
			w("Advanced Hip Openers", "20 minutes", "4", "90 sec each"),
		},
	},
	domain.GoalStrength: {
		domain.LevelBeginner: {
			w("Bodyweight Squats", "12 minutes", "3", "15"),
			w("Wall Push-ups", "10 minutes", "3", "12"),
			w("Assisted Pull-ups", "10 minutes", "3", "8"),
			w("Dumbbell Rows", "12 minutes", "3", "10"),
			w("Plank Hold", "6 minutes", "3", "30 sec"),
		},
		domain.LevelIntermediate: {
			w("Barbell Squats", "20 minutes", "4", "10"),
			w("Bench Press", "20 minutes", "4", "10"),
			w("Pull-ups", "15 minutes", "4", "8"),
			w("Overhead Press", "15 minutes", "4", "10"),
			w("Deadlifts", "20 minutes", "4", "8"),
		},
		domain.LevelAdvanced: {
			w("Heavy Squats", "30 minutes", "5", "5"),
			w("Heavy Bench Press", "30 minutes", "5", "5"),
			w("Weighted Pull-ups", "20 minutes", "5", "6"),
			w("Heavy Deadlifts", "30 minutes", "5", "5"),
			w("Power Cleans", "25 minutes", "5", "5"),
		},
	},
}

var nutritionTable = [domain.NumGoals]domain.MealPlan{
	domain.GoalWeightLoss: {
		n("Breakfast", "Oatmeal with berries and almonds", "350 kcal", "12g"),
		n("Mid-Morning Snack", "Greek yogurt with honey", "150 kcal", "15g"),
		n("Lunch", "Grilled chicken salad with olive oil", "450 kcal", "35g"),
		n("Afternoon Snack", "Apple with peanut butter", "200 kcal", "8g"),
		n("Dinner", "Baked salmon with steamed vegetables", "500 kcal", "40g"),
	},
	domain.GoalMuscleGain: {
		n("Breakfast", "Scrambled eggs with whole wheat toast and avocado", "550 kcal", "30g"),
		n("Mid-Morning Snack", "Protein shake with banana", "350 kcal", "35g"),
		n("Lunch", "Grilled chicken breast with brown rice and broccoli", "650 kcal", "50g"),
		n("Afternoon Snack", "Cottage cheese with almonds", "300 kcal", "25g"),
		n("Dinner", "Lean beef steak with sweet potato and green beans", "700 kcal", "55g"),
	},
	domain.GoalGeneralFitness: {
		n("Breakfast", "Whole grain cereal with milk and banana", "400 kcal", "15g"),
		n("Mid-Morning Snack", "Mixed nuts and dried fruit", "200 kcal", "8g"),
		n("Lunch", "Turkey sandwich with vegetables", "500 kcal", "30g"),
		n("Afternoon Snack", "Hummus with carrot sticks", "180 kcal", "6g"),
		n("Dinner", "Grilled fish with quinoa and roasted vegetables", "550 kcal", "38g"),
	},
	domain.GoalEndurance: {
		n("Breakfast", "Banana pancakes with maple syrup", "450 kcal", "18g"),
		n("Mid-Morning Snack", "Energy bar with dates", "220 kcal", "10g"),
		n("Lunch", "Pasta with lean turkey meatballs", "600 kcal", "35g"),
		n("Afternoon Snack", "Trail mix with dark chocolate", "250 kcal", "8g"),
		n("Dinner", "Chicken stir-fry with brown rice", "580 kcal", "42g"),
	},
	domain.GoalFlexibility: {
		n("Breakfast", "Smoothie bowl with chia seeds and fruits", "380 kcal", "14g"),
		n("Mid-Morning Snack", "Almond butter on rice cakes", "190 kcal", "7g"),
		n("Lunch", "Buddha bowl with tofu and vegetables", "480 kcal", "22g"),
		n("Afternoon Snack", "Fresh fruit salad", "150 kcal", "3g"),
		n("Dinner", "Grilled salmon with asparagus and quinoa", "520 kcal", "40g"),
	},
	domain.GoalStrength: {
		n("Breakfast", "Steak and eggs with whole grain toast", "600 kcal", "45g"),
		n("Mid-Morning Snack", "Protein shake with peanut butter", "380 kcal", "40g"),
		n("Lunch", "Double chicken breast with rice and vegetables", "750 kcal", "65g"),
		n("Afternoon Snack", "Greek yogurt with granola and honey", "320 kcal", "28g"),
		n("Dinner", "Grilled ribeye with loaded sweet potato", "800 kcal", "60g"),
	},
}

// Each template takes the user's name exactly once.
var motivationTable = [domain.NumGoals]string{
	domain.GoalWeightLoss:     "%s, every step counts! You're on a journey to a healthier, lighter you. Stay consistent! 🔥",
	domain.GoalMuscleGain:     "%s, gains are made in the kitchen and the gym! Keep lifting heavy and eating right! 💪",
	domain.GoalGeneralFitness: "%s, fitness is a lifestyle, not a destination. You're doing amazing! 🌟",
	domain.GoalEndurance:      "%s, push your limits! Every mile makes you stronger! 🏃",
	domain.GoalFlexibility:    "%s, flexibility is the key to longevity. Keep stretching! 🧘",
	domain.GoalStrength:       "%s, strength doesn't come from what you can do, it comes from overcoming what you thought you couldn't! 💯",
}
