package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/withyourgoal-dev/withyourgoal/db"
	"github.com/withyourgoal-dev/withyourgoal/internal/models"
	"github.com/withyourgoal-dev/withyourgoal/internal/ownership"
	"github.com/withyourgoal-dev/withyourgoal/internal/utils"
	"gorm.io/gorm"
)

type CreateGoalRequest struct {
	CategoryName string `json:"category_name" binding:"required"`
	Title        string `json:"title" binding:"required"`
}

// UpdateGoalRequest is a partial update: only fields present in the
// body are touched, which is why both are pointers.
type UpdateGoalRequest struct {
	Title  *string `json:"title"`
	Hearts *int    `json:"hearts"`
}

type RuleSummary struct {
	ID     uint   `json:"id"`
	GoalID uint   `json:"goal_id"`
	Text   string `json:"text"`
}

type ProcessSummary struct {
	ID      uint   `json:"id"`
	GoalID  uint   `json:"goal_id"`
	Text    string `json:"text"`
	Checked bool   `json:"checked"`
}

type GoalSummary struct {
	ID           uint             `json:"id"`
	Title        string           `json:"title"`
	Hearts       int              `json:"hearts"`
	CategoryName string           `json:"category_name"`
	Rules        []RuleSummary    `json:"rules"`
	Processes    []ProcessSummary `json:"processes"`
}

// CreateGoal looks the category up by name scoped to the caller, so a
// category name owned by someone else is indistinguishable from a
// missing one.
func CreateGoal(ctx *gin.Context) {
	var req CreateGoalRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var category models.Category

	if err := db.DB.Where("name = ? AND user_id = ?", req.CategoryName, userID).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Category not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve category"})
		}
		return
	}

	goal := models.Goal{
		CategoryID: category.ID,
		Title:      req.Title,
		Hearts:     models.DefaultHearts,
	}

	if err := db.DB.Create(&goal).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create goal"})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"message": "Goal created", "goal_id": goal.ID})
}

// ListGoals returns every goal the caller owns with its category name
// and nested rules and processes. Children are fetched with one IN
// query per table and attached in memory.
func ListGoals(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var rows []struct {
		ID           uint
		Title        string
		Hearts       int
		CategoryName string
	}

	if err := db.DB.Model(&models.Goal{}).
		Select("goals.id, goals.title, goals.hearts, categories.name AS category_name").
		Joins("JOIN categories ON categories.id = goals.category_id").
		Where("categories.user_id = ?", userID).
		Order("goals.id ASC").
		Scan(&rows).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve goals"})
		return
	}

	goalIDs := make([]uint, 0, len(rows))

	for _, row := range rows {
		goalIDs = append(goalIDs, row.ID)
	}

	rulesByGoal := make(map[uint][]RuleSummary)
	processesByGoal := make(map[uint][]ProcessSummary)

	if len(goalIDs) > 0 {
		var rules []models.Rule

		if err := db.DB.Where("goal_id IN ?", goalIDs).Order("id ASC").Find(&rules).Error; err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve rules"})
			return
		}

		for _, rule := range rules {
			rulesByGoal[rule.GoalID] = append(rulesByGoal[rule.GoalID], RuleSummary{
				ID:     rule.ID,
				GoalID: rule.GoalID,
				Text:   rule.Text,
			})
		}

		var processes []models.Process

		if err := db.DB.Where("goal_id IN ?", goalIDs).Order("id ASC").Find(&processes).Error; err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve processes"})
			return
		}

		for _, process := range processes {
			processesByGoal[process.GoalID] = append(processesByGoal[process.GoalID], ProcessSummary{
				ID:      process.ID,
				GoalID:  process.GoalID,
				Text:    process.Text,
				Checked: process.Checked,
			})
		}
	}

	response := make([]GoalSummary, 0, len(rows))

	for _, row := range rows {
		summary := GoalSummary{
			ID:           row.ID,
			Title:        row.Title,
			Hearts:       row.Hearts,
			CategoryName: row.CategoryName,
			Rules:        rulesByGoal[row.ID],
			Processes:    processesByGoal[row.ID],
		}

		if summary.Rules == nil {
			summary.Rules = []RuleSummary{}
		}

		if summary.Processes == nil {
			summary.Processes = []ProcessSummary{}
		}

		response = append(response, summary)
	}

	ctx.JSON(http.StatusOK, response)
}

func UpdateGoal(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	goalID, err := utils.GetIDParam(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req UpdateGoalRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if req.Title == nil && req.Hearts == nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "No fields to update"})
		return
	}

	if req.Hearts != nil && (*req.Hearts < 0 || *req.Hearts > models.MaxHearts) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Hearts must be between 0 and 3"})
		return
	}

	goal, err := ownership.VerifyGoalOwner(db.DB, goalID, userID)

	if err != nil {
		respondOwnershipError(ctx, err, "Goal")
		return
	}

	updates := make(map[string]interface{})

	if req.Title != nil {
		updates["title"] = *req.Title
	}

	if req.Hearts != nil {
		updates["hearts"] = *req.Hearts
	}

	if err := db.DB.Model(goal).Updates(updates).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update goal"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Goal updated"})
}

func DeleteGoal(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	goalID, err := utils.GetIDParam(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := ownership.DeleteGoalCascade(db.DB, goalID, userID); err != nil {
		respondOwnershipError(ctx, err, "Goal")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Goal deleted"})
}
