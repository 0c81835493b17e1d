package controllers

import (
	"net/http"
	"time"

	"github.com/adilshaik/uga-nutrition-app/services"

	"github.com/gin-gonic/gin"
)

type ChatController struct {
	Agent *services.AgentService
}

func NewChatController(a *services.AgentService) *ChatController {
	return &ChatController{Agent: a}
}

type ChatRequest struct {
	Message string                 `json:"message" binding:"required"`
	History []services.ChatMessage `json:"history"`
}

// POST /chat: the client keeps the transcript and sends it back with
// each message; the server stays stateless.
func (cc *ChatController) Chat(c *gin.Context) {
	uid := c.GetUint("userID")

	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := services.GetUser(uid)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	target, err := services.GetTargets(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	today := time.Now().Format("2006-01-02")
	todayLog, err := services.ListLogEntries(uid, today)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx := services.AgentContext{
		Profile:     user,
		GoalType:    user.GoalType,
		Targets:     *target,
		TodayLog:    todayLog,
		TodayTotals: services.TotalsFor(todayLog, today),
	}

	c.JSON(http.StatusOK, cc.Agent.GetResponse(req.Message, ctx, req.History))
}
