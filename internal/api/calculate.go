package api

import (
	"net/http" // HTTP status codes

	"retirement_planner/internal/retirement" // Projection and Roth analysis

	"github.com/gin-gonic/gin" // Gin web framework
)

// CalculateHandler projects an unsaved scenario
func CalculateHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var in retirement.ScenarioInput // Bind JSON request to struct
		if err := c.ShouldBindJSON(&in); err != nil {
			respondBindError(c, err)
			return
		}
		if err := in.Validate(); err != nil {
			respondInvalid(c, err)
			return
		}
		res := retirement.Project(in)
		c.JSON(http.StatusOK, gin.H{
			"result":          res,                           // Full projection
			"recommendations": retirement.Recommend(in, res), // Rule-based advice
			"schedule":        retirement.GrowthSchedule(in), // Balance per year until retirement
		})
	}
}

// RothCalculateHandler compares a conversion without saving it
func RothCalculateHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var in retirement.RothInput // Bind JSON request to struct
		if err := c.ShouldBindJSON(&in); err != nil {
			respondBindError(c, err)
			return
		}
		if err := in.Validate(); err != nil {
			respondInvalid(c, err)
			return
		}
		c.JSON(http.StatusOK, retirement.AnalyzeRoth(in))
	}
}
