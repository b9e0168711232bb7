package advisor

import (
	"fmt"
	"strings"

	"retirement_planner/internal/domain"
	"retirement_planner/internal/retirement"

	"github.com/google/generative-ai-go/genai"
)

const systemPrompt = "You are a retirement planning expert. Provide specific, actionable advice."

var responseSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"recommendations": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"title":       {Type: genai.TypeString},
					"description": {Type: genai.TypeString},
					"impact":      {Type: genai.TypeString, Format: "enum", Enum: []string{"High", "Medium", "Low"}},
					"category":    {Type: genai.TypeString},
				},
				Required: []string{"title", "description", "impact", "category"},
			},
		},
	},
	Required: []string{"recommendations"},
}

// BuildPrompt describes sc for the model and asks for five recommendations.
func BuildPrompt(sc *domain.Scenario) string {
	var b strings.Builder
	b.WriteString("Analyze this retirement scenario and provide 5 specific, actionable recommendations:\n\n")
	fmt.Fprintf(&b, "Current Age: %d\n", sc.CurrentAge)
	fmt.Fprintf(&b, "Retirement Age: %d\n", sc.RetirementAge)
	fmt.Fprintf(&b, "Life Expectancy: %d\n", sc.ProjectionInput().TerminalAge())
	fmt.Fprintf(&b, "Current Savings: %s\n", dollars(sc.CurrentSavings))
	fmt.Fprintf(&b, "Monthly Expenses: %s\n", dollars(sc.MonthlyExpenses))
	fmt.Fprintf(&b, "Social Security Age: %d\n", sc.SocialSecurityAge)
	fmt.Fprintf(&b, "Estimated Social Security: %s/month\n", dollars(sc.EstimatedSocialSecurity))
	if sc.ReadinessScore != nil {
		fmt.Fprintf(&b, "Readiness Score: %d/100\n", *sc.ReadinessScore)
	}
	if sc.ProjectedShortfall != nil {
		fmt.Fprintf(&b, "Projected Shortfall: %s\n", dollars(*sc.ProjectedShortfall))
	}
	if sc.HasSpouse {
		b.WriteString("\n")
		if sc.SpouseAge != nil {
			fmt.Fprintf(&b, "Spouse Age: %d\n", *sc.SpouseAge)
		}
		if sc.SpouseRetirementAge != nil {
			fmt.Fprintf(&b, "Spouse Retirement Age: %d\n", *sc.SpouseRetirementAge)
		}
		if sc.SpouseSocialSecurityAge != nil {
			fmt.Fprintf(&b, "Spouse Social Security Age: %d\n", *sc.SpouseSocialSecurityAge)
		}
		if sc.SpouseSocialSecurity != nil {
			fmt.Fprintf(&b, "Spouse Social Security: %s/month\n", dollars(*sc.SpouseSocialSecurity))
		}
	}
	b.WriteString("\nEach recommendation needs a title, a detailed description, an impact of High, Medium or Low, ")
	b.WriteString("and a category such as Social Security, Tax Strategy, Savings, Healthcare or RMD.")
	return b.String()
}

func dollars(v int64) string {
	return retirement.FormatDollars(float64(v))
}
