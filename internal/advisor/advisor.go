// Package advisor asks a language model for free-text retirement advice.
// Its output is advisory prose only; scores and shortfalls always come from
// the retirement package.
package advisor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"retirement_planner/internal/domain"

	json "github.com/goccy/go-json"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

var (
	// ErrUnavailable means no model is configured.
	ErrUnavailable = errors.New("recommendation service unavailable")
	// ErrEmptyResponse means the model answered without usable text.
	ErrEmptyResponse = errors.New("empty model response")
)

// Recommendation is one model-written suggestion.
type Recommendation struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Impact      string `json:"impact"` // High, Medium or Low
	Category    string `json:"category"`
}

// Generator is the part of *genai.GenerativeModel the advisor uses.
type Generator interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

// Advisor produces recommendations for stored scenarios.
type Advisor struct {
	gen    Generator
	closer io.Closer
}

// New wraps an existing generator.
func New(gen Generator) *Advisor {
	return &Advisor{gen: gen}
}

// NewGemini connects to the Gemini API and configures model for JSON output.
func NewGemini(ctx context.Context, apiKey, model string) (*Advisor, error) {
	if apiKey == "" {
		return nil, ErrUnavailable
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("unable to create Gemini client: %w", err)
	}
	m := client.GenerativeModel(model)
	m.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(systemPrompt)}}
	m.ResponseMIMEType = "application/json"
	m.ResponseSchema = responseSchema
	m.SetTemperature(0.4)
	return &Advisor{gen: m, closer: client}, nil
}

// Close releases the underlying client, if any.
func (a *Advisor) Close() error {
	if a == nil || a.closer == nil {
		return nil
	}
	return a.closer.Close()
}

// Recommend sends one request for sc. Failures are returned as-is; there is
// no retry.
func (a *Advisor) Recommend(ctx context.Context, sc *domain.Scenario) ([]Recommendation, error) {
	if a == nil || a.gen == nil {
		return nil, ErrUnavailable
	}
	resp, err := a.gen.GenerateContent(ctx, genai.Text(BuildPrompt(sc)))
	if err != nil {
		return nil, fmt.Errorf("generate recommendations: %w", err)
	}
	text := responseText(resp)
	if text == "" {
		return nil, ErrEmptyResponse
	}
	return parse(text)
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	var sb strings.Builder
	for _, cand := range resp.Candidates {
		if cand == nil || cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if t, ok := part.(genai.Text); ok {
				sb.WriteString(string(t))
			}
		}
		break // first candidate only
	}
	return strings.TrimSpace(sb.String())
}

func parse(text string) ([]Recommendation, error) {
	// Some models wrap JSON in a markdown fence even when asked not to
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")

	var body struct {
		Recommendations []Recommendation `json:"recommendations"`
	}
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &body); err != nil {
		return nil, fmt.Errorf("decode model response: %w", err)
	}
	if body.Recommendations == nil {
		body.Recommendations = []Recommendation{}
	}
	return body.Recommendations, nil
}
