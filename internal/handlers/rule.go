package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/withyourgoal-dev/withyourgoal/db"
	"github.com/withyourgoal-dev/withyourgoal/internal/models"
	"github.com/withyourgoal-dev/withyourgoal/internal/ownership"
	"github.com/withyourgoal-dev/withyourgoal/internal/utils"
)

type CreateRuleRequest struct {
	GoalID uint   `json:"goal_id" binding:"required"`
	Text   string `json:"text" binding:"required"`
}

func CreateRule(ctx *gin.Context) {
	var req CreateRuleRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	goal, err := ownership.VerifyGoalOwner(db.DB, req.GoalID, userID)

	if err != nil {
		respondOwnershipError(ctx, err, "Goal")
		return
	}

	rule := models.Rule{
		GoalID: goal.ID,
		Text:   req.Text,
	}

	if err := db.DB.Create(&rule).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create rule"})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"message": "Rule added", "rule_id": rule.ID})
}

// DeleteRule removes the i-th rule of a goal in ascending-id order.
// The index is positional: deleting index 0 twice removes the first
// two rules. Out-of-range indexes report the rule as missing.
func DeleteRule(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	goalID, err := utils.GetGoalIDParam(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	index, err := utils.GetIndexParam(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goal, err := ownership.VerifyGoalOwner(db.DB, goalID, userID)

	if err != nil {
		respondOwnershipError(ctx, err, "Goal")
		return
	}

	var rules []models.Rule

	if err := db.DB.Where("goal_id = ?", goal.ID).Order("id ASC").Find(&rules).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve rules"})
		return
	}

	if index >= len(rules) {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Rule not found"})
		return
	}

	if err := db.DB.Delete(&rules[index]).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete rule"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Rule deleted"})
}
