package api

import (
	"net/http" // HTTP status codes

	"retirement_planner/internal/domain"     // Domain models
	"retirement_planner/internal/retirement" // Roth analysis
	"retirement_planner/internal/utils"      // Cache

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// RothRequest is a Roth analysis, optionally linked to an owned scenario
type RothRequest struct {
	retirement.RothInput
	ScenarioID *uint `json:"scenarioId"` // Linked scenario
}

// rothList is the cached list payload
type rothList struct {
	Conversions []domain.RothConversion `json:"conversions"` // One page of analyses
	Pagination
	Cached bool `json:"cached"` // Served from cache
}

// CreateRothHandler analyzes a conversion and records it for the caller
func CreateRothHandler(roth RothRepository, scenarios ScenarioRepository, cache utils.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c)
		if !ok {
			return
		}
		var req RothRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindError(c, err)
			return
		}
		if err := req.RothInput.Validate(); err != nil {
			respondInvalid(c, err)
			return
		}
		ctx := c.Request.Context()
		fields := logrus.Fields{"user_id": userID}
		// A linked scenario must belong to the caller
		if req.ScenarioID != nil {
			fields["scenario_id"] = *req.ScenarioID
			if _, err := scenarios.Get(ctx, *req.ScenarioID, userID); err != nil {
				respondStoreError(c, err, "Scenario not found", "Failed to fetch scenario", fields)
				return
			}
		}
		res := retirement.AnalyzeRoth(req.RothInput)
		rc := domain.NewRothConversion(userID, req.ScenarioID, req.RothInput, res)
		if err := roth.Create(ctx, rc); err != nil {
			respondStoreError(c, err, "Scenario not found", "Failed to save analysis", fields)
			return
		}
		invalidate(ctx, cache, rothListPrefix(userID)) // List changed
		fields["conversion_id"] = rc.ID
		fields["net_benefit"] = rc.NetBenefit
		logrus.WithFields(fields).Info("Roth conversion analyzed")
		c.JSON(http.StatusCreated, gin.H{"conversion": rc, "result": res})
	}
}

// ListRothHandler lists the caller's analyses, newest first
func ListRothHandler(roth RothRepository, cache utils.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c)
		if !ok {
			return
		}
		ctx := c.Request.Context()
		page := pageFromQuery(c)
		cacheKey := pageKey(rothListPrefix(userID), page) // Cache key for this page
		var cached rothList
		if cacheGet(ctx, cache, cacheKey, &cached) {
			cached.Cached = true // Indicate response is from cache
			c.JSON(http.StatusOK, cached)
			return
		}
		rows, total, err := roth.ListByUser(ctx, userID, page)
		if err != nil {
			respondStoreError(c, err, "Analysis not found", "Failed to fetch analyses", logrus.Fields{"user_id": userID})
			return
		}
		resp := rothList{Conversions: rows, Pagination: newPagination(page, total)}
		cacheSet(ctx, cache, cacheKey, resp) // Cache the response for future requests
		c.JSON(http.StatusOK, resp)
	}
}
