package domain

import (
	"time"

	"retirement_planner/internal/retirement"
)

// RothConversion Model
type RothConversion struct {
	ID         uint  `gorm:"primaryKey" json:"id"`         // Primary key
	UserID     uint  `gorm:"index;not null" json:"userId"` // Owning user
	ScenarioID *uint `gorm:"index" json:"scenarioId"`      // Optional linked scenario

	// Input data
	CurrentAge            int     `gorm:"not null" json:"currentAge"`
	TraditionalIRABalance int64   `gorm:"column:traditional_ira_balance;not null" json:"traditionalIraBalance"`
	CurrentTaxBracket     float64 `gorm:"not null" json:"currentTaxBracket"`    // percentage
	RetirementTaxBracket  float64 `gorm:"not null" json:"retirementTaxBracket"` // percentage
	ConversionAmount      int64   `gorm:"not null" json:"conversionAmount"`
	ConversionYear        int     `gorm:"not null" json:"conversionYear"`

	// Results
	TaxesPaidNow    int64  `json:"taxesPaidNow"`
	TaxesSavedLater int64  `json:"taxesSavedLater"`
	NetBenefit      int64  `json:"netBenefit"`
	Recommendation  string `gorm:"type:text" json:"recommendation"`

	CreatedAt time.Time `gorm:"index" json:"createdAt"`
}

// NewRothConversion builds the persisted row for an analysis
func NewRothConversion(userID uint, scenarioID *uint, in retirement.RothInput, res retirement.RothResult) *RothConversion {
	return &RothConversion{
		UserID:                userID,
		ScenarioID:            scenarioID,
		CurrentAge:            in.CurrentAge,
		TraditionalIRABalance: retirement.WholeDollars(in.TraditionalBalance),
		CurrentTaxBracket:     in.CurrentTaxBracket,
		RetirementTaxBracket:  in.RetirementTaxBracket,
		ConversionAmount:      retirement.WholeDollars(in.ConversionAmount),
		ConversionYear:        in.ConversionYear,
		TaxesPaidNow:          res.TaxesPaidNow,
		TaxesSavedLater:       res.TaxesSavedLater,
		NetBenefit:            res.NetBenefit,
		Recommendation:        res.Recommendation,
	}
}
