package domain

import (
	"time"

	"retirement_planner/internal/retirement"
)

// Scenario Model. Currency columns hold whole dollars.
type Scenario struct {
	ID     uint   `gorm:"primaryKey" json:"id"`          // Primary key
	UserID uint   `gorm:"index;not null" json:"userId"`  // Owning user
	Name   string `gorm:"size:255;not null" json:"name"` // Scenario label

	// Personal info
	CurrentAge     int `gorm:"not null" json:"currentAge"`
	RetirementAge  int `gorm:"not null" json:"retirementAge"`
	LifeExpectancy int `gorm:"not null" json:"lifeExpectancy"`

	// Financial data
	CurrentSavings          int64 `gorm:"not null" json:"currentSavings"`
	MonthlyExpenses         int64 `gorm:"not null" json:"monthlyExpenses"`
	SocialSecurityAge       int   `gorm:"not null" json:"socialSecurityAge"`
	EstimatedSocialSecurity int64 `gorm:"not null" json:"estimatedSocialSecurity"` // monthly amount

	// Spouse data (optional)
	HasSpouse               bool   `gorm:"not null;default:false" json:"hasSpouse"`
	SpouseAge               *int   `json:"spouseAge,omitempty"`
	SpouseRetirementAge     *int   `json:"spouseRetirementAge,omitempty"`
	SpouseSocialSecurityAge *int   `json:"spouseSocialSecurityAge,omitempty"`
	SpouseSocialSecurity    *int64 `json:"spouseSocialSecurity,omitempty"`

	// Results (calculated)
	ReadinessScore     *int   `json:"readinessScore"`     // 0-100
	ProjectedShortfall *int64 `json:"projectedShortfall"` // positive means a deficit

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `gorm:"index" json:"updatedAt"`
}

// ProjectionInput maps the stored row onto the calculator input
func (s *Scenario) ProjectionInput() retirement.ScenarioInput {
	in := retirement.ScenarioInput{
		CurrentAge:              s.CurrentAge,
		RetirementAge:           s.RetirementAge,
		LifeExpectancy:          s.LifeExpectancy,
		CurrentSavings:          float64(s.CurrentSavings),
		MonthlyExpenses:         float64(s.MonthlyExpenses),
		SocialSecurityAge:       s.SocialSecurityAge,
		EstimatedSocialSecurity: float64(s.EstimatedSocialSecurity),
	}
	// Spouse is only modeled when flagged and given a claiming age
	if s.HasSpouse && s.SpouseSocialSecurityAge != nil {
		sp := &retirement.SpouseInput{SocialSecurityAge: *s.SpouseSocialSecurityAge}
		if s.SpouseAge != nil {
			sp.Age = *s.SpouseAge
		}
		if s.SpouseRetirementAge != nil {
			sp.RetirementAge = *s.SpouseRetirementAge
		}
		if s.SpouseSocialSecurity != nil {
			sp.SocialSecurity = float64(*s.SpouseSocialSecurity)
		}
		in.Spouse = sp
	}
	return in
}

// ApplyResult stores the rounded score and shortfall of a projection
func (s *Scenario) ApplyResult(res retirement.ScenarioResult) {
	score := res.ReadinessScore
	shortfall := retirement.WholeDollars(res.ProjectedShortfall)
	s.ReadinessScore = &score
	s.ProjectedShortfall = &shortfall
}
