package clue

import (
	"context"
	"encoding/json"
	"fmt"

	"google.golang.org/genai"

	"github.com/bodul/crossgen/internal/puzzle"
)

const (
	defaultRegion = "europe-west1"
	defaultModel  = "gemini-2.5-flash"
)

const cluePrompt = `You are a crossword clue writer.

Write ONE clue for the answer %q.
Theme: %s.
Difficulty: %s (easy = direct definition, medium = light wordplay, hard = cryptic or oblique).

Rules:
- The clue must not contain the answer or any of its word forms.
- Keep it under 12 words.
- Respond ONLY with JSON in the form {"clue": "..."}, no commentary or markdown.`

// GeminiSource authors clues with Gemini over Vertex AI. It is opt-in:
// the batch uses it only when GCP_PROJECT_ID is set, and any per-word
// failure falls back to the template source.
type GeminiSource struct {
	client    *genai.Client
	modelName string
}

// NewGeminiSource creates a source using Application Default
// Credentials. Set GOOGLE_APPLICATION_CREDENTIALS to the service
// account key file path.
func NewGeminiSource(ctx context.Context, projectID, region string) (*GeminiSource, error) {
	if region == "" {
		region = defaultRegion
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		Project:  projectID,
		Location: region,
		Backend:  genai.BackendVertexAI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &GeminiSource{
		client:    client,
		modelName: defaultModel,
	}, nil
}

// Close releases resources held by the client.
func (g *GeminiSource) Close() error {
	return nil
}

// ClueFor asks Gemini for one clue and parses the JSON response.
func (g *GeminiSource) ClueFor(ctx context.Context, word, theme string, d puzzle.Difficulty) (string, error) {
	if theme == "" {
		theme = "general knowledge"
	}
	prompt := fmt.Sprintf(cluePrompt, word, theme, d)

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName,
		[]*genai.Content{{
			Role:  "user",
			Parts: []*genai.Part{{Text: prompt}},
		}},
		&genai.GenerateContentConfig{
			Temperature:      genai.Ptr(float32(0.7)),
			TopP:             genai.Ptr(float32(1)),
			ResponseMIMEType: "application/json",
		},
	)
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("empty gemini response")
	}

	var out struct {
		Clue string `json:"clue"`
	}
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		return "", fmt.Errorf("parse clue JSON: %w\nraw response: %s", err, text)
	}
	if out.Clue == "" {
		return "", fmt.Errorf("gemini returned no clue for %q", word)
	}
	return out.Clue, nil
}
