package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/withyourgoal-dev/withyourgoal/db"
	"github.com/withyourgoal-dev/withyourgoal/internal/models"
	"github.com/withyourgoal-dev/withyourgoal/internal/ownership"
	"github.com/withyourgoal-dev/withyourgoal/internal/utils"
)

type CreateProcessRequest struct {
	GoalID uint   `json:"goal_id" binding:"required"`
	Text   string `json:"text" binding:"required"`
}

type UpdateProcessRequest struct {
	Checked *bool `json:"checked" binding:"required"`
}

type ProcessStatsResponse struct {
	Completed int64 `json:"completed"`
	Pending   int64 `json:"pending"`
}

func CreateProcess(ctx *gin.Context) {
	var req CreateProcessRequest

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

	process := models.Process{
		GoalID:  goal.ID,
		UserID:  userID,
		Text:    req.Text,
		Checked: false,
	}

	if err := db.DB.Create(&process).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create process"})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"message": "Process added", "process_id": process.ID})
}

func UpdateProcess(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	processID, err := utils.GetIDParam(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req UpdateProcessRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	process, err := ownership.VerifyProcessOwner(db.DB, processID, userID)

	if err != nil {
		respondOwnershipError(ctx, err, "Process")
		return
	}

	if err := db.DB.Model(process).Update("checked", *req.Checked).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update process"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Process updated"})
}

func DeleteProcess(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	processID, err := utils.GetIDParam(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	process, err := ownership.VerifyProcessOwner(db.DB, processID, userID)

	if err != nil {
		respondOwnershipError(ctx, err, "Process")
		return
	}

	if err := db.DB.Delete(process).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete process"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Process deleted"})
}

// ProcessStats aggregates completion counts over the caller's process
// rows, using the redundant user_id column to avoid the goal join.
func ProcessStats(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var completed, pending int64

	if err := db.DB.Model(&models.Process{}).Where("user_id = ? AND checked = ?", userID, true).Count(&completed).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve stats"})
		return
	}

	if err := db.DB.Model(&models.Process{}).Where("user_id = ? AND checked = ?", userID, false).Count(&pending).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve stats"})
		return
	}

	ctx.JSON(http.StatusOK, ProcessStatsResponse{
		Completed: completed,
		Pending:   pending,
	})
}
