package api

import (
	"errors"   // Error matching
	"net/http" // HTTP status codes

	"retirement_planner/internal/advisor" // LLM recommendations
	"retirement_planner/internal/report"  // Excel export

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportScenarioHandler downloads an owned scenario as an Excel workbook
func ExportScenarioHandler(scenarios ScenarioRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c)
		if !ok {
			return
		}
		id, ok := pathID(c)
		if !ok {
			return
		}
		fields := logrus.Fields{"user_id": userID, "scenario_id": id}
		sc, err := scenarios.Get(c.Request.Context(), id, userID)
		if err != nil {
			respondStoreError(c, err, "Scenario not found", "Failed to fetch scenario", fields)
			return
		}
		// Render fully before writing so a failure can still return JSON
		f, err := report.Workbook(sc)
		if err != nil {
			fields["error"] = err.Error()
			logrus.WithFields(fields).Error("Export failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Export failed"})
			return
		}
		defer f.Close()
		buf, err := f.WriteToBuffer()
		if err != nil {
			fields["error"] = err.Error()
			logrus.WithFields(fields).Error("Export failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Export failed"})
			return
		}
		c.Header("Content-Disposition", `attachment; filename="`+report.Filename(sc)+`"`)
		c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
	}
}

// ReportScenarioHandler combines an owned scenario, its rule-based advice and
// model-written recommendations
func ReportScenarioHandler(scenarios ScenarioRepository, adv Advisor) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c)
		if !ok {
			return
		}
		id, ok := pathID(c)
		if !ok {
			return
		}
		if adv == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "AI recommendations are not configured"})
			return
		}
		ctx := c.Request.Context()
		fields := logrus.Fields{"user_id": userID, "scenario_id": id}
		sc, err := scenarios.Get(ctx, id, userID)
		if err != nil {
			respondStoreError(c, err, "Scenario not found", "Failed to fetch scenario", fields)
			return
		}
		ai, err := adv.Recommend(ctx, sc)
		if err != nil {
			if errors.Is(err, advisor.ErrUnavailable) {
				c.JSON(http.StatusServiceUnavailable, gin.H{"error": "AI recommendations are not configured"})
				return
			}
			fields["error"] = err.Error()
			logrus.WithFields(fields).Error("AI recommendations failed")
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to generate recommendations"})
			return
		}
		d := detail(sc)
		logrus.WithFields(fields).Info("Report generated")
		c.JSON(http.StatusOK, gin.H{
			"scenario":          d.Scenario,        // Stored row
			"result":            d.Result,          // Full projection
			"recommendations":   d.Recommendations, // Rule-based advice
			"aiRecommendations": ai,                // Model-written advice
		})
	}
}
