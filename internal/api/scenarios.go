package api

import (
	"net/http" // HTTP status codes

	"retirement_planner/internal/domain"     // Domain models
	"retirement_planner/internal/retirement" // Projection and recommendations
	"retirement_planner/internal/utils"      // Cache

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// ScenarioRequest is the body for creating a scenario. Money may carry cents;
// it is rounded to whole dollars before validation.
type ScenarioRequest struct {
	Name                    string   `json:"name" binding:"required,max=255"` // Scenario label
	CurrentAge              int      `json:"currentAge"`                      // Age today
	RetirementAge           int      `json:"retirementAge"`                   // Planned retirement age
	LifeExpectancy          int      `json:"lifeExpectancy"`                  // Zero means 90
	CurrentSavings          float64  `json:"currentSavings"`                  // Savings today
	MonthlyExpenses         float64  `json:"monthlyExpenses"`                 // Expected spend in retirement
	SocialSecurityAge       int      `json:"socialSecurityAge"`               // Claiming age
	EstimatedSocialSecurity float64  `json:"estimatedSocialSecurity"`         // Monthly benefit at 67
	HasSpouse               bool     `json:"hasSpouse"`                       // Model a spouse
	SpouseAge               *int     `json:"spouseAge"`                       // Spouse age today
	SpouseRetirementAge     *int     `json:"spouseRetirementAge"`             // Spouse retirement age
	SpouseSocialSecurityAge *int     `json:"spouseSocialSecurityAge"`         // Spouse claiming age
	SpouseSocialSecurity    *float64 `json:"spouseSocialSecurity"`            // Spouse monthly benefit at 67
}

func (r ScenarioRequest) toScenario(userID uint) *domain.Scenario {
	sc := &domain.Scenario{
		UserID:                  userID,
		Name:                    r.Name,
		CurrentAge:              r.CurrentAge,
		RetirementAge:           r.RetirementAge,
		LifeExpectancy:          r.LifeExpectancy,
		CurrentSavings:          retirement.WholeDollars(r.CurrentSavings),
		MonthlyExpenses:         retirement.WholeDollars(r.MonthlyExpenses),
		SocialSecurityAge:       r.SocialSecurityAge,
		EstimatedSocialSecurity: retirement.WholeDollars(r.EstimatedSocialSecurity),
		HasSpouse:               r.HasSpouse,
	}
	if r.HasSpouse {
		sc.SpouseAge = r.SpouseAge
		sc.SpouseRetirementAge = r.SpouseRetirementAge
		sc.SpouseSocialSecurityAge = r.SpouseSocialSecurityAge
		sc.SpouseSocialSecurity = dollars(r.SpouseSocialSecurity)
	}
	return sc
}

// ScenarioUpdateRequest is a partial update; nil fields are left unchanged
type ScenarioUpdateRequest struct {
	Name                    *string  `json:"name" binding:"omitempty,min=1,max=255"`
	CurrentAge              *int     `json:"currentAge"`
	RetirementAge           *int     `json:"retirementAge"`
	LifeExpectancy          *int     `json:"lifeExpectancy"`
	CurrentSavings          *float64 `json:"currentSavings"`
	MonthlyExpenses         *float64 `json:"monthlyExpenses"`
	SocialSecurityAge       *int     `json:"socialSecurityAge"`
	EstimatedSocialSecurity *float64 `json:"estimatedSocialSecurity"`
	HasSpouse               *bool    `json:"hasSpouse"`
	SpouseAge               *int     `json:"spouseAge"`
	SpouseRetirementAge     *int     `json:"spouseRetirementAge"`
	SpouseSocialSecurityAge *int     `json:"spouseSocialSecurityAge"`
	SpouseSocialSecurity    *float64 `json:"spouseSocialSecurity"`
}

func (r ScenarioUpdateRequest) apply(sc *domain.Scenario) {
	set(&sc.Name, r.Name)
	set(&sc.CurrentAge, r.CurrentAge)
	set(&sc.RetirementAge, r.RetirementAge)
	set(&sc.LifeExpectancy, r.LifeExpectancy)
	set(&sc.CurrentSavings, dollars(r.CurrentSavings))
	set(&sc.MonthlyExpenses, dollars(r.MonthlyExpenses))
	set(&sc.SocialSecurityAge, r.SocialSecurityAge)
	set(&sc.EstimatedSocialSecurity, dollars(r.EstimatedSocialSecurity))
	set(&sc.HasSpouse, r.HasSpouse)
	if r.SpouseAge != nil {
		sc.SpouseAge = r.SpouseAge
	}
	if r.SpouseRetirementAge != nil {
		sc.SpouseRetirementAge = r.SpouseRetirementAge
	}
	if r.SpouseSocialSecurityAge != nil {
		sc.SpouseSocialSecurityAge = r.SpouseSocialSecurityAge
	}
	if r.SpouseSocialSecurity != nil {
		sc.SpouseSocialSecurity = dollars(r.SpouseSocialSecurity)
	}
	// Turning the spouse off drops the spouse columns
	if !sc.HasSpouse {
		sc.SpouseAge, sc.SpouseRetirementAge, sc.SpouseSocialSecurityAge, sc.SpouseSocialSecurity = nil, nil, nil, nil
	}
}

func set[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

// dollars rounds an optional amount to the whole-dollar column type
func dollars(v *float64) *int64 {
	if v == nil {
		return nil
	}
	n := retirement.WholeDollars(*v)
	return &n
}

// ScenarioDetail is a stored scenario with its live projection
type ScenarioDetail struct {
	Scenario        *domain.Scenario            `json:"scenario"`        // Stored row
	Result          retirement.ScenarioResult   `json:"result"`          // Full projection
	Recommendations []retirement.Recommendation `json:"recommendations"` // Rule-based advice
}

func detail(sc *domain.Scenario) ScenarioDetail {
	in := sc.ProjectionInput()
	res := retirement.Project(in)
	return ScenarioDetail{Scenario: sc, Result: res, Recommendations: retirement.Recommend(in, res)}
}

// evaluate validates sc, fills the default life expectancy and stores the
// rounded score and shortfall on it
func evaluate(sc *domain.Scenario) error {
	in := sc.ProjectionInput()
	if err := in.Validate(); err != nil {
		return err
	}
	sc.LifeExpectancy = in.TerminalAge()
	sc.ApplyResult(retirement.Project(in))
	return nil
}

// scenarioList is the cached list payload
type scenarioList struct {
	Scenarios []domain.Scenario `json:"scenarios"` // One page of scenarios
	Pagination
	Cached bool `json:"cached"` // Served from cache
}

// ListScenariosHandler lists the caller's scenarios, most recently updated first
func ListScenariosHandler(scenarios ScenarioRepository, cache utils.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c)
		if !ok {
			return
		}
		ctx := c.Request.Context()
		page := pageFromQuery(c)
		cacheKey := pageKey(scenarioListPrefix(userID), page) // Cache key for this page
		var cached scenarioList
		// If cached data found, return it
		if cacheGet(ctx, cache, cacheKey, &cached) {
			cached.Cached = true // Indicate response is from cache
			c.JSON(http.StatusOK, cached)
			return
		}
		rows, total, err := scenarios.ListByUser(ctx, userID, page)
		if err != nil {
			respondStoreError(c, err, "Scenario not found", "Failed to fetch scenarios", logrus.Fields{"user_id": userID})
			return
		}
		resp := scenarioList{Scenarios: rows, Pagination: newPagination(page, total)}
		cacheSet(ctx, cache, cacheKey, resp) // Cache the response for future requests
		c.JSON(http.StatusOK, resp)
	}
}

// CreateScenarioHandler validates, scores and saves a new scenario
func CreateScenarioHandler(scenarios ScenarioRepository, cache utils.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c)
		if !ok {
			return
		}
		var req ScenarioRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindError(c, err)
			return
		}
		sc := req.toScenario(userID)
		if err := evaluate(sc); err != nil {
			respondInvalid(c, err)
			return
		}
		ctx := c.Request.Context()
		if err := scenarios.Create(ctx, sc); err != nil {
			respondStoreError(c, err, "Scenario not found", "Failed to create scenario", logrus.Fields{"user_id": userID})
			return
		}
		invalidate(ctx, cache, scenarioListPrefix(userID)) // List changed
		logrus.WithFields(logrus.Fields{
			"user_id":         userID,                 // Owner
			"scenario_id":     sc.ID,                  // New scenario
			"readiness_score": *sc.ReadinessScore,     // Stored score
			"shortfall":       *sc.ProjectedShortfall, // Stored shortfall
		}).Info("Scenario created")
		c.JSON(http.StatusCreated, detail(sc))
	}
}

// GetScenarioHandler returns one owned scenario with its projection
func GetScenarioHandler(scenarios ScenarioRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c)
		if !ok {
			return
		}
		id, ok := pathID(c)
		if !ok {
			return
		}
		sc, err := scenarios.Get(c.Request.Context(), id, userID)
		if err != nil {
			respondStoreError(c, err, "Scenario not found", "Failed to fetch scenario", logrus.Fields{"user_id": userID, "scenario_id": id})
			return
		}
		c.JSON(http.StatusOK, detail(sc))
	}
}

// UpdateScenarioHandler applies a partial update and re-scores the scenario
func UpdateScenarioHandler(scenarios ScenarioRepository, cache utils.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c)
		if !ok {
			return
		}
		id, ok := pathID(c)
		if !ok {
			return
		}
		var req ScenarioUpdateRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindError(c, err)
			return
		}
		ctx := c.Request.Context()
		fields := logrus.Fields{"user_id": userID, "scenario_id": id}
		sc, err := scenarios.Get(ctx, id, userID)
		if err != nil {
			respondStoreError(c, err, "Scenario not found", "Failed to fetch scenario", fields)
			return
		}
		req.apply(sc)
		if err := evaluate(sc); err != nil {
			respondInvalid(c, err)
			return
		}
		if err := scenarios.Update(ctx, userID, sc); err != nil {
			respondStoreError(c, err, "Scenario not found", "Failed to update scenario", fields)
			return
		}
		invalidate(ctx, cache, scenarioListPrefix(userID)) // List order and scores changed
		fields["readiness_score"] = *sc.ReadinessScore
		logrus.WithFields(fields).Info("Scenario updated")
		c.JSON(http.StatusOK, detail(sc))
	}
}

// DeleteScenarioHandler removes an owned scenario
func DeleteScenarioHandler(scenarios ScenarioRepository, cache utils.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c)
		if !ok {
			return
		}
		id, ok := pathID(c)
		if !ok {
			return
		}
		ctx := c.Request.Context()
		fields := logrus.Fields{"user_id": userID, "scenario_id": id}
		if err := scenarios.Delete(ctx, id, userID); err != nil {
			respondStoreError(c, err, "Scenario not found", "Failed to delete scenario", fields)
			return
		}
		invalidate(ctx, cache, scenarioListPrefix(userID)) // List changed
		logrus.WithFields(fields).Info("Scenario deleted")
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

// CompareRequest lists the scenarios to put side by side
type CompareRequest struct {
	IDs []uint `json:"ids" binding:"required,min=1,max=20"` // Scenario ids in display order
}

// CompareScenariosHandler returns the owned, existing subset of the requested
// ids in request order
func CompareScenariosHandler(scenarios ScenarioRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c)
		if !ok {
			return
		}
		var req CompareRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		rows, err := scenarios.Compare(c.Request.Context(), userID, req.IDs)
		if err != nil {
			respondStoreError(c, err, "Scenario not found", "Failed to compare scenarios", logrus.Fields{"user_id": userID})
			return
		}
		out := make([]ScenarioDetail, len(rows))
		for i := range rows {
			out[i] = detail(&rows[i])
		}
		c.JSON(http.StatusOK, gin.H{"scenarios": out})
	}
}
