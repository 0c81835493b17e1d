package services

import (
	"strings"
	"testing"

	"github.com/adilshaik/uga-nutrition-app/models"

	"github.com/stretchr/testify/assert"
)

func testAgentContext() AgentContext {
	return AgentContext{
		GoalType: "Build Muscle / Bulk Up",
		Targets: models.DailyTarget{
			Calories: 2900, Protein: 150, Carbs: 326, Fat: 80,
		},
		TodayTotals: models.MacroTotals{Calories: 1200, Protein: 60},
	}
}

func TestFallbackResponseProtein(t *testing.T) {
	resp := FallbackResponse("How much protein do I still need?", testAgentContext(), nil)

	assert.True(t, resp.Fallback)
	assert.Contains(t, resp.Message, "your daily protein target is 150g")
	assert.Contains(t, resp.Message, "90g remaining")
	assert.Equal(t, "UGA Dining Services Menu Data", resp.Citation)
}

func TestFallbackResponseProteinClampsAtZero(t *testing.T) {
	ctx := testAgentContext()
	ctx.TodayTotals.Protein = 200

	resp := FallbackResponse("protein", ctx, nil)
	assert.Contains(t, resp.Message, "0g remaining")
}

func TestFallbackResponseBreakfast(t *testing.T) {
	resp := FallbackResponse("what should I eat in the morning?", testAgentContext(), nil)

	assert.True(t, resp.Fallback)
	assert.Contains(t, resp.Message, "breakfast options")
}

func TestFallbackResponseMealPlan(t *testing.T) {
	resp := FallbackResponse("plan my dinner", testAgentContext(), nil)

	assert.True(t, resp.Fallback)
	assert.Contains(t, resp.Message, "meal plan")
	assert.Contains(t, resp.Message, "~1700 cal")
}

func TestFallbackResponseCalorieStatus(t *testing.T) {
	resp := FallbackResponse("am I over my calories?", testAgentContext(), nil)

	assert.Contains(t, resp.Message, "Consumed: 1200 kcal")
	assert.Contains(t, resp.Message, "Remaining: 1700 kcal")
	assert.Contains(t, resp.Message, "plenty of room")
}

func TestFallbackResponseOverBudget(t *testing.T) {
	ctx := testAgentContext()
	ctx.TodayTotals.Calories = 3200

	resp := FallbackResponse("calorie check", ctx, nil)
	assert.Contains(t, resp.Message, "over your target")
	assert.Contains(t, resp.Message, "Remaining: 0 kcal")
}

func TestFallbackResponseDefault(t *testing.T) {
	resp := FallbackResponse("hello there", testAgentContext(), nil)

	assert.True(t, resp.Fallback)
	assert.Contains(t, resp.Message, "What would you like to focus on?")
	assert.Contains(t, resp.Message, "Build Muscle / Bulk Up")
}

func TestFallbackResponseConfirmationContinuesOffer(t *testing.T) {
	history := []ChatMessage{
		{Role: "user", Content: "how much protein do I need?"},
		{Role: "assistant", Content: "Would you like me to suggest a meal plan to hit your protein target?"},
	}

	resp := FallbackResponse("yes", testAgentContext(), history)
	assert.Contains(t, resp.Message, "meal plan")
	assert.Contains(t, resp.Message, "Lunch at Bolton")
}

func TestFallbackResponseConfirmationWithoutOfferFallsThrough(t *testing.T) {
	history := []ChatMessage{
		{Role: "assistant", Content: "Here are breakfast options at UGA Dining"},
	}

	resp := FallbackResponse("sure", testAgentContext(), history)
	// last assistant turn offered nothing plan-related, so the generic
	// help response comes back
	assert.Contains(t, resp.Message, "What would you like to focus on?")
}

func TestCheckConcerningContent(t *testing.T) {
	msg := CheckConcerningContent("I've been starving myself all week")
	assert.True(t, strings.Contains(msg, "CAPS"))

	assert.Empty(t, CheckConcerningContent("what's a good lunch?"))
}

func TestBuildContextMessageIncludesTargetsAndLog(t *testing.T) {
	ctx := testAgentContext()
	ctx.TodayLog = []models.LogEntry{
		{Name: "Grilled Chicken Breast", Calories: 180, Protein: 34, Servings: 1},
	}

	msg := BuildContextMessage(ctx)
	assert.Contains(t, msg, "Build Muscle / Bulk Up")
	assert.Contains(t, msg, "Grilled Chicken Breast")
}
