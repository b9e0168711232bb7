package api

import (
	"retirement_planner/internal/middleware" // Auth and logging middleware
	"retirement_planner/internal/utils"      // Cache

	"github.com/gin-gonic/gin" // Gin web framework
)

// Dependencies are the collaborators the routes are wired to
type Dependencies struct {
	Users     UserRepository         // Accounts
	Scenarios ScenarioRepository     // Retirement scenarios
	Roth      RothRepository         // Roth analyses
	Cache     utils.Cache            // List cache, nil disables caching
	Advisor   Advisor                // LLM recommendations, nil disables reports
	Auth      AuthSettings           // Token and cookie settings
	Health    map[string]HealthCheck // Dependency checks for /healthz
}

// RegisterRoutes mounts every endpoint on r
func RegisterRoutes(r gin.IRouter, d Dependencies) {
	cache := d.Cache
	if cache == nil {
		cache = utils.NoopCache{}
	}
	requireAuth := middleware.JWTAuthMiddleware(d.Auth.JWTSecret, d.Auth.CookieName)

	r.GET("/healthz", HealthHandler(d.Health)) // Liveness endpoint

	// Auth routes
	auth := r.Group("/auth")
	auth.POST("/register", RegisterHandler(d.Users, cache, d.Auth)) // Registration endpoint
	auth.POST("/login", LoginHandler(d.Users, d.Auth))              // Login endpoint
	auth.POST("/logout", LogoutHandler(d.Auth))                     // Logout endpoint
	auth.GET("/me", requireAuth, MeHandler(d.Users))                // Current user endpoint

	// Stateless calculators
	r.POST("/calculate", CalculateHandler())          // Projection endpoint
	r.POST("/roth/calculate", RothCalculateHandler()) // Quick Roth endpoint

	// Scenario routes (protected by JWT)
	scenarios := r.Group("/scenarios", requireAuth)
	scenarios.GET("", ListScenariosHandler(d.Scenarios, cache))                  // List endpoint
	scenarios.POST("", CreateScenarioHandler(d.Scenarios, cache))                // Create endpoint
	scenarios.POST("/compare", CompareScenariosHandler(d.Scenarios))             // Compare endpoint
	scenarios.GET("/:id", GetScenarioHandler(d.Scenarios))                       // Get endpoint
	scenarios.PUT("/:id", UpdateScenarioHandler(d.Scenarios, cache))             // Update endpoint
	scenarios.DELETE("/:id", DeleteScenarioHandler(d.Scenarios, cache))          // Delete endpoint
	scenarios.GET("/:id/export", ExportScenarioHandler(d.Scenarios))             // Excel export endpoint
	scenarios.POST("/:id/report", ReportScenarioHandler(d.Scenarios, d.Advisor)) // AI report endpoint

	// Roth routes (protected by JWT)
	roth := r.Group("/roth", requireAuth)
	roth.POST("", CreateRothHandler(d.Roth, d.Scenarios, cache)) // Analyze endpoint
	roth.GET("", ListRothHandler(d.Roth, cache))                 // History endpoint

	// Admin routes (protected, admin only)
	admin := r.Group("/admin", requireAuth, middleware.AdminOnlyMiddleware(d.Users))
	admin.GET("/users", ListUsersHandler(d.Users, cache)) // List users endpoint
}
