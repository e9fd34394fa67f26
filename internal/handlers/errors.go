package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/withyourgoal-dev/withyourgoal/internal/ownership"
)

// respondOwnershipError maps the ownership sentinels onto the HTTP
// taxonomy: absent row -> 404, wrong owner -> 403, anything else is a
// storage failure.
func respondOwnershipError(ctx *gin.Context, err error, resource string) {
	switch {
	case errors.Is(err, ownership.ErrNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": resource + " not found"})
	case errors.Is(err, ownership.ErrForbidden):
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Not allowed"})
	default:
		log.Printf("Ownership check failed for %s: %v", resource, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
