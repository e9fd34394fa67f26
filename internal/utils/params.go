package utils

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

func GetIDParam(ctx *gin.Context) (uint, error) {
	return parseUintParam(ctx, "id", "ID")
}

func GetGoalIDParam(ctx *gin.Context) (uint, error) {
	return parseUintParam(ctx, "goal_id", "Goal ID")
}

// GetIndexParam parses the positional rule index. Unlike the id params
// it is zero-based and only needs to be a non-negative integer.
func GetIndexParam(ctx *gin.Context) (int, error) {
	indexStr := ctx.Param("index")

	if indexStr == "" {
		return 0, errors.New("Index not found")
	}

	index, err := strconv.Atoi(indexStr)

	if err != nil || index < 0 {
		return 0, errors.New("Invalid index")
	}

	return index, nil
}

func parseUintParam(ctx *gin.Context, name string, label string) (uint, error) {
	valueStr := ctx.Param(name)

	if valueStr == "" {
		return 0, errors.New(label + " not found")
	}

	value, err := strconv.ParseUint(valueStr, 10, 32)

	if err != nil {
		return 0, errors.New("Invalid " + label)
	}

	return uint(value), nil
}
