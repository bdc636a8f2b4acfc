package middleware

import (
	"github.com/Kas-Kady/bbq/internal/planner"
	"github.com/gin-gonic/gin"
)

func CommitterMiddleware(committer *planner.Committer) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("committer", committer)
		c.Next()
	}
}

func GetCommitter(c *gin.Context) *planner.Committer {
	committer, exists := c.Get("committer")
	if !exists {
		return nil
	}
	return committer.(*planner.Committer)
}
