package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/withyourgoal-dev/withyourgoal/db"
	"github.com/withyourgoal-dev/withyourgoal/internal/models"
	"github.com/withyourgoal-dev/withyourgoal/internal/ownership"
	"github.com/withyourgoal-dev/withyourgoal/internal/utils"
)

type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

type CategoryResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func ListCategories(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var categories []models.Category

	if err := db.DB.Where("user_id = ?", userID).Order("id ASC").Find(&categories).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve categories"})
		return
	}

	response := make([]CategoryResponse, 0, len(categories))

	for _, category := range categories {
		response = append(response, CategoryResponse{
			ID:   category.ID,
			Name: category.Name,
		})
	}

	ctx.JSON(http.StatusOK, response)
}

func CreateCategory(ctx *gin.Context) {
	var body CreateCategoryRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	category := models.Category{
		Name:   body.Name,
		UserID: userID,
	}

	if err := db.DB.Create(&category).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
		return
	}

	ctx.JSON(http.StatusCreated, CategoryResponse{
		ID:   category.ID,
		Name: category.Name,
	})
}

// DeleteCategory removes the category and everything under it. The
// cascade runs in a single transaction with ownership re-verified
// inside it.
func DeleteCategory(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	categoryID, err := utils.GetIDParam(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := ownership.DeleteCategoryCascade(db.DB, categoryID, userID); err != nil {
		respondOwnershipError(ctx, err, "Category")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Category and related data deleted"})
}
