package advisor

import (
	"context"
	"errors"
	"testing"

	"retirement_planner/internal/domain"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGenerator struct {
	reply  string
	err    error
	prompt string
}

func (f *fakeGenerator) GenerateContent(_ context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error) {
	if len(parts) > 0 {
		if t, ok := parts[0].(genai.Text); ok {
			f.prompt = string(t)
		}
	}
	if f.err != nil {
		return nil, f.err
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: &genai.Content{Parts: []genai.Part{genai.Text(f.reply)}}}},
	}, nil
}

func scenario() *domain.Scenario {
	score, shortfall := 95, int64(74416)
	spouseAge, spouseClaim, spouseBenefit := 60, 67, int64(1800)
	return &domain.Scenario{
		CurrentAge:              62,
		RetirementAge:           67,
		LifeExpectancy:          90,
		CurrentSavings:          500000,
		MonthlyExpenses:         5000,
		SocialSecurityAge:       67,
		EstimatedSocialSecurity: 2500,
		ReadinessScore:          &score,
		ProjectedShortfall:      &shortfall,
		HasSpouse:               true,
		SpouseAge:               &spouseAge,
		SpouseSocialSecurityAge: &spouseClaim,
		SpouseSocialSecurity:    &spouseBenefit,
	}
}

func TestRecommendParsesModelJSON(t *testing.T) {
	gen := &fakeGenerator{reply: `{"recommendations":[{"title":"Delay","description":"Wait to 70","impact":"High","category":"Social Security"}]}`}

	recs, err := New(gen).Recommend(context.Background(), scenario())

	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, Recommendation{Title: "Delay", Description: "Wait to 70", Impact: "High", Category: "Social Security"}, recs[0])
	assert.Contains(t, gen.prompt, "Current Savings: $500,000")
	assert.Contains(t, gen.prompt, "Readiness Score: 95/100")
	assert.Contains(t, gen.prompt, "Projected Shortfall: $74,416")
	assert.Contains(t, gen.prompt, "Spouse Social Security: $1,800/month")
}

func TestRecommendStripsCodeFence(t *testing.T) {
	gen := &fakeGenerator{reply: "```json\n{\"recommendations\":[]}\n```"}

	recs, err := New(gen).Recommend(context.Background(), scenario())

	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestRecommendSurfacesFailures(t *testing.T) {
	boom := errors.New("quota exceeded")
	_, err := New(&fakeGenerator{err: boom}).Recommend(context.Background(), scenario())
	assert.ErrorIs(t, err, boom)

	_, err = New(&fakeGenerator{reply: "   "}).Recommend(context.Background(), scenario())
	assert.ErrorIs(t, err, ErrEmptyResponse)

	_, err = New(&fakeGenerator{reply: "not json"}).Recommend(context.Background(), scenario())
	assert.ErrorContains(t, err, "decode model response")
}

func TestNilAdvisorIsUnavailable(t *testing.T) {
	var a *Advisor
	_, err := a.Recommend(context.Background(), scenario())
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.NoError(t, a.Close())

	_, err = NewGemini(context.Background(), "", "gemini-1.5-flash")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestBuildPromptWithoutSpouse(t *testing.T) {
	sc := scenario()
	sc.HasSpouse = false
	sc.LifeExpectancy = 0

	prompt := BuildPrompt(sc)

	assert.Contains(t, prompt, "Life Expectancy: 90")
	assert.NotContains(t, prompt, "Spouse")
}
