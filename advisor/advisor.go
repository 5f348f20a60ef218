// Package advisor produces a short AI commentary over the engine's reports.
//
// It is a thin, single-shot layer: the reports are computed and rendered
// first, then handed to the model as plain markdown. The advisor never
// computes numbers itself and nothing downstream depends on its output.
package advisor

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const defaultModel = "gemini-2.5-flash"

const systemPrompt = `You are a sober financial analyst reviewing a personal
investment portfolio. You receive markdown reports: current holdings with
allocation targets, the monthly performance history, risk statistics, and a
macro sentiment gauge. Comment briefly on allocation gaps versus targets,
risk, and what the sentiment gauge suggests. Do not invent numbers that are
not in the reports. Do not give personalized investment advice; stick to
describing what the data shows.`

// Advisor requests a commentary from a generative model.
type Advisor struct {
	ModelName string
}

// New creates an Advisor using the default model.
func New() *Advisor {
	return &Advisor{ModelName: defaultModel}
}

// Comment sends the rendered reports to the model and returns its
// commentary. The caller owns the client and its credentials.
func (a *Advisor) Comment(ctx context.Context, client *genai.Client, reports ...string) (string, error) {
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: systemPrompt}},
		},
	}
	chat, err := client.Chats.Create(ctx, a.ModelName, config, nil)
	if err != nil {
		return "", fmt.Errorf("cannot start advisor session: %w", err)
	}

	prompt := strings.Join(reports, "\n\n---\n\n")
	resp, err := chat.Send(ctx, &genai.Part{Text: prompt})
	if err != nil {
		return "", fmt.Errorf("advisor request failed: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from model %s", a.ModelName)
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}
