package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveTargetsBulk(t *testing.T) {
	target := DeriveTargets(TargetInput{
		WeightLbs:     150,
		HeightFt:      5,
		HeightIn:      10,
		Age:           20,
		Sex:           "male",
		ActivityLevel: "Moderate (3-5 days/week)",
		GoalType:      "Build Muscle / Bulk Up",
	})

	// BMR 1696.6, TDEE 2629.8, +300 bulk, truncated
	assert.Equal(t, 2929.0, target.Calories)
	assert.Equal(t, 150.0, target.Protein, "1 g per lb on a bulk")
	assert.Equal(t, 329.0, target.Carbs)
	assert.Equal(t, 81.0, target.Fat)
	assert.Equal(t, 30.0, target.Fiber)
	assert.Equal(t, 2300.0, target.Sodium)
}

func TestDeriveTargetsCutLowersCalories(t *testing.T) {
	in := TargetInput{
		WeightLbs:     150,
		HeightFt:      5,
		HeightIn:      10,
		Age:           20,
		Sex:           "female",
		ActivityLevel: "Moderate (3-5 days/week)",
	}

	in.GoalType = "Maintain Weight"
	maintain := DeriveTargets(in)

	in.GoalType = "Lose Fat / Cut"
	cut := DeriveTargets(in)

	assert.Equal(t, maintain.Calories-500, cut.Calories)
	assert.Equal(t, 120.0, maintain.Protein, "0.8 g per lb on maintenance")
	assert.Equal(t, 150.0, cut.Protein)
}

func TestDeriveTargetsUnknownGoalActsLikeGeneralHealth(t *testing.T) {
	in := TargetInput{
		WeightLbs: 150, HeightFt: 5, HeightIn: 10, Age: 20,
		Sex: "male", ActivityLevel: "Moderate (3-5 days/week)",
	}

	in.GoalType = "???"
	unknown := DeriveTargets(in)

	in.GoalType = "General Health"
	health := DeriveTargets(in)

	assert.Equal(t, health, unknown)
}
