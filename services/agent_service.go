package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/adilshaik/uga-nutrition-app/models"
)

const agentSystemPrompt = `You are a knowledgeable nutrition assistant for University of Georgia students.
Your role is to help students achieve their nutrition goals using UGA Dining Services options.

Guidelines:
- Ground meal recommendations in the ACTUAL UGA Dining options provided in the context
- Be direct and informative; do not compliment the user's questions
- Include specific items, dining halls, meal periods and approximate nutrition numbers
- When a user confirms a prior offer ("yes", "sure"), provide it instead of asking again
- You are NOT a medical professional; refer clinical questions to campus nutrition counseling
- Do NOT provide eating disorder coaching or extreme restriction advice`

// AgentContext is the structured state handed to the assistant with
// every message.
type AgentContext struct {
	Profile     *models.User       `json:"profile,omitempty"`
	GoalType    string             `json:"goal_type,omitempty"`
	Targets     models.DailyTarget `json:"targets"`
	TodayLog    []models.LogEntry  `json:"today_log"`
	TodayTotals models.MacroTotals `json:"today_totals"`
}

// ChatMessage mirrors the chat-completions message shape.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// AgentResponse is what the chat endpoint returns. Fallback answers
// carry Fallback=true so the UI can show an "assistant offline" note.
type AgentResponse struct {
	Message  string `json:"message"`
	Citation string `json:"citation,omitempty"`
	Fallback bool   `json:"fallback"`
}

type AgentService struct {
	client *http.Client
	apiKey string
	model  string
}

func NewAgentService() *AgentService {
	return &AgentService{
		client: &http.Client{Timeout: 20 * time.Second},
		apiKey: strings.Trim(strings.TrimSpace(os.Getenv("GROQ_API_KEY")), `"'`),
		model:  "llama-3.3-70b-versatile",
	}
}

func (a *AgentService) Available() bool { return a.apiKey != "" }

// BuildContextMessage flattens the context into the prompt block sent
// alongside the system prompt.
func BuildContextMessage(ctx AgentContext) string {
	var sb strings.Builder

	if ctx.Profile != nil {
		fmt.Fprintf(&sb, "## User Profile:\n- Weight: %.0f lbs\n- Activity Level: %s\n- Preferred Dining Halls: %s\n- Dietary Restrictions: %s\n\n",
			ctx.Profile.WeightLbs, ctx.Profile.ActivityLevel,
			orAny(ctx.Profile.DiningPreference), orNone(ctx.Profile.DietaryRestrictions))
	}

	fmt.Fprintf(&sb, "## Current Goals:\n- Primary Goal: %s\n- Daily Calorie Target: %.0f kcal\n- Daily Protein Target: %.0fg\n- Daily Carb Target: %.0fg\n- Daily Fat Target: %.0fg\n\n",
		orNotSet(ctx.GoalType), ctx.Targets.Calories, ctx.Targets.Protein,
		ctx.Targets.Carbs, ctx.Targets.Fat)

	sb.WriteString("## Today's Food Log:\n")
	if len(ctx.TodayLog) == 0 {
		sb.WriteString("No items logged yet\n")
	}
	for _, e := range ctx.TodayLog {
		fmt.Fprintf(&sb, "- %s (%.0f cal, %.0fg protein, %.0fg carbs, %.0fg fat, %.0fg fiber) at %s\n",
			e.Name, e.Calories, e.Protein, e.Carbs, e.Fat, e.Fiber, orNA(e.Hall))
	}

	fmt.Fprintf(&sb, "\n## Today's Totals:\n- Calories consumed: %.0f kcal\n- Protein consumed: %.0fg\n- Carbs consumed: %.0fg\n- Fat consumed: %.0fg\n- Fiber consumed: %.0fg\n",
		ctx.TodayTotals.Calories, ctx.TodayTotals.Protein,
		ctx.TodayTotals.Carbs, ctx.TodayTotals.Fat, ctx.TodayTotals.Fiber)

	return sb.String()
}

func orAny(s string) string {
	if s == "" {
		return "Any"
	}
	return s
}

func orNone(s string) string {
	if s == "" {
		return "None"
	}
	return s
}

func orNotSet(s string) string {
	if s == "" {
		return "Not set"
	}
	return s
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

type groqRequest struct {
	Model       string        `json:"model"`
	Messages    []ChatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
	TopP        float64       `json:"top_p"`
}

type groqResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// GetResponse answers a user message. Any failure on the hosted model
// (missing key, network, auth, quota) degrades to the local keyword
// fallback so the user always gets an answer.
func (a *AgentService) GetResponse(userMessage string, ctx AgentContext, history []ChatMessage) AgentResponse {
	if msg := CheckConcerningContent(userMessage); msg != "" {
		return AgentResponse{Message: msg, Citation: "UGA Student Care & Outreach"}
	}

	if !a.Available() {
		return FallbackResponse(userMessage, ctx, history)
	}

	messages := []ChatMessage{
		{Role: "system", Content: agentSystemPrompt},
		{Role: "system", Content: "## Current Context:\n" + BuildContextMessage(ctx)},
	}
	// last 10 messages to stay within limits
	if len(history) > 10 {
		history = history[len(history)-10:]
	}
	messages = append(messages, history...)
	messages = append(messages, ChatMessage{Role: "user", Content: userMessage})

	body, err := json.Marshal(groqRequest{
		Model:       a.model,
		Messages:    messages,
		Temperature: 0.7,
		MaxTokens:   1024,
		TopP:        0.9,
	})
	if err != nil {
		return FallbackResponse(userMessage, ctx, history)
	}

	req, err := http.NewRequest("POST",
		"https://api.groq.com/openai/v1/chat/completions", bytes.NewReader(body))
	if err != nil {
		return FallbackResponse(userMessage, ctx, history)
	}
	req.Header.Set("Authorization", "Bearer "+a.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return FallbackResponse(userMessage, ctx, history)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil || resp.StatusCode != http.StatusOK {
		return FallbackResponse(userMessage, ctx, history)
	}

	var out groqResponse
	if err := json.Unmarshal(respBytes, &out); err != nil || out.Error != nil || len(out.Choices) == 0 {
		return FallbackResponse(userMessage, ctx, history)
	}

	return AgentResponse{
		Message:  out.Choices[0].Message.Content,
		Citation: "UGA Dining Services Data & Nutrition Guidelines",
	}
}

var confirmations = map[string]bool{
	"yes": true, "yeah": true, "sure": true, "please": true,
	"ok": true, "okay": true, "yep": true, "y": true,
}

// FallbackResponse is the rule-based responder used when the hosted
// model is unavailable. Covers protein, breakfast, meal-plan and
// calorie-budget questions plus a generic default.
func FallbackResponse(userMessage string, ctx AgentContext, history []ChatMessage) AgentResponse {
	input := strings.ToLower(strings.TrimSpace(userMessage))
	goalType := orNotSet(ctx.GoalType)

	// A bare confirmation continues whatever was last offered.
	if confirmations[input] {
		for i := len(history) - 1; i >= 0; i-- {
			if history[i].Role != "assistant" {
				continue
			}
			last := strings.ToLower(history[i].Content)
			if strings.Contains(last, "meal plan") || strings.Contains(last, "protein") {
				return mealPlanResponse(ctx)
			}
			break
		}
	}

	switch {
	case containsAny(input, "protein", "muscle", "bulk"):
		remaining := ctx.Targets.Protein - ctx.TodayTotals.Protein
		if remaining < 0 {
			remaining = 0
		}
		return AgentResponse{
			Fallback: true,
			Citation: "UGA Dining Services Menu Data",
			Message: fmt.Sprintf(`Based on your goal of %s, your daily protein target is %.0fg.

You've logged %.0fg so far, leaving about %.0fg remaining.

High-protein options at UGA Dining:
- Grilled Chicken Breast (45g protein) - Bolton, Lunch
- Grilled Salmon (40g protein) - Bolton, Dinner
- Greek Yogurt Parfait (18g protein) - Bolton, Breakfast

Would you like me to suggest a meal plan to hit your protein target?`,
				goalType, ctx.Targets.Protein, ctx.TodayTotals.Protein, remaining),
		}

	case containsAny(input, "breakfast", "morning"):
		return AgentResponse{
			Fallback: true,
			Citation: "UGA Dining Services Menu",
			Message: `Here are breakfast options at UGA Dining:

High Protein:
- Scrambled Eggs - 180 cal, 14g protein (Bolton)
- Greek Yogurt Parfait - 220 cal, 18g protein (Bolton)

High Energy:
- Oatmeal with Berries - 280 cal, 8g protein, 52g carbs (Snelling)

Balanced Option:
- Eggs + Oatmeal combo gives you 22g protein and sustained energy.

What's your priority for breakfast - protein, energy, or a balance of both?`,
		}

	case containsAny(input, "lunch", "dinner", "meal", "plan"):
		return mealPlanResponse(ctx)

	case containsAny(input, "calories", "cal", "over", "under"):
		remaining := ctx.Targets.Calories - ctx.TodayTotals.Calories
		var status string
		switch {
		case remaining < 0:
			status = "You are over your target. Consider a lighter dinner or extra activity."
		case remaining > 500:
			status = "You have plenty of room for a full meal."
		default:
			status = "You are on track."
		}
		display := remaining
		if display < 0 {
			display = 0
		}
		return AgentResponse{
			Fallback: true,
			Citation: "Calculated from your food log",
			Message: fmt.Sprintf(`Here's your calorie status:

- Consumed: %.0f kcal
- Target: %.0f kcal
- Remaining: %.0f kcal

%s

Low-calorie, high-protein options:
- Grilled Chicken (280 cal) with vegetables
- Scrambled Eggs (180 cal) for a light meal

How can I help you adjust your remaining meals?`,
				ctx.TodayTotals.Calories, ctx.Targets.Calories, display, status),
		}

	default:
		return AgentResponse{
			Fallback: true,
			Message: fmt.Sprintf(`Here's what I can help with:

Your Current Setup:
- Goal: %s
- Calorie Target: %.0f kcal/day
- Protein Target: %.0fg/day
- Carb Target: %.0fg/day
- Fat Target: %.0fg/day

I can help you with:
1. Meal suggestions from UGA Dining halls
2. Protein optimization to hit your targets
3. Progress analysis based on your food log
4. Goal adjustments as you progress

What would you like to focus on?`,
				goalType, ctx.Targets.Calories, ctx.Targets.Protein,
				ctx.Targets.Carbs, ctx.Targets.Fat),
		}
	}
}

func mealPlanResponse(ctx AgentContext) AgentResponse {
	remainingCal := ctx.Targets.Calories - ctx.TodayTotals.Calories
	remainingProtein := ctx.Targets.Protein - ctx.TodayTotals.Protein
	if remainingCal < 0 {
		remainingCal = 0
	}
	if remainingProtein < 0 {
		remainingProtein = 0
	}

	return AgentResponse{
		Fallback: true,
		Citation: "UGA Dining Services Menu",
		Message: fmt.Sprintf(`Here's a meal plan for your %s goal:

Remaining targets: ~%.0f cal, ~%.0fg protein

Lunch at Bolton:
- Grilled Chicken Breast (280 cal, 45g protein)
- Side of Roasted Vegetables (120 cal, 4g protein, 6g fiber)

Dinner at Bolton:
- Grilled Salmon (350 cal, 40g protein)
- Baked Sweet Potato (180 cal, 4g protein, 6g fiber)
- Side Caesar Salad (220 cal, 8g protein, 4g fiber)

Snack:
- Greek Yogurt Parfait (220 cal, 18g protein)

Would you like me to adjust this plan or suggest alternatives for a specific meal?`,
			orNotSet(ctx.GoalType), remainingCal, remainingProtein),
	}
}

func containsAny(text string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}

var concerningPhrases = []string{
	"not eating", "starving", "purge", "binge", "hate my body",
	"too fat", "disgusting", "fast for days", "laxative",
	"make myself throw up", "eating disorder",
}

// CheckConcerningContent screens a message for signs of disordered
// eating and returns a support message when found, empty otherwise.
func CheckConcerningContent(userMessage string) string {
	lower := strings.ToLower(userMessage)
	for _, phrase := range concerningPhrases {
		if strings.Contains(lower, phrase) {
			return `I hear that you might be going through a difficult time with food and your body.

Your wellbeing matters more than any nutrition goal.

UGA has free, confidential support available:
- UGA Counseling & Psychiatric Services (CAPS): (706) 542-2273
- UGA Health Center Nutrition Services: (706) 542-8690

Would you like me to help you find more resources, or is there something else I can support you with today?`
		}
	}
	return ""
}
