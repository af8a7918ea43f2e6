package research

import (
	"context"
	"fmt"
	"strings"

	"agentic_roi/pkg/core/amount"
	"agentic_roi/pkg/core/prompt"
	"agentic_roi/pkg/core/utils"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// RevenueExtractor pulls an annual-revenue estimate out of research
// context. Nil result without error means no figure was found.
type RevenueExtractor interface {
	ExtractRevenue(ctx context.Context, entity string, contextText string) (*float64, error)
}

// GeminiClient is the direct research-side Gemini client. Unlike the
// provider behind the agent manager it holds a persistent SDK client,
// created once at service construction.
type GeminiClient struct {
	modelName string
	client    *genai.Client
}

// NewGeminiClient connects the research client. Model defaults to the
// flash tier; research calls are extraction, not reasoning.
func NewGeminiClient(ctx context.Context, apiKey string, modelName string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable not set")
	}
	if modelName == "" {
		modelName = "gemini-2.0-flash"
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %v", err)
	}

	return &GeminiClient{
		modelName: modelName,
		client:    client,
	}, nil
}

// generateText runs one completion with the system text prepended,
// mirroring how the debate-style direct agents drive this SDK.
func (g *GeminiClient) generateText(ctx context.Context, systemPrompt, userPrompt string, temperature float32) (string, error) {
	model := g.client.GenerativeModel(g.modelName)
	model.SetTemperature(temperature)

	fullPrompt := userPrompt
	if systemPrompt != "" {
		fullPrompt = fmt.Sprintf("%s\n\nTask: %s", systemPrompt, userPrompt)
	}

	resp, err := model.GenerateContent(ctx, genai.Text(fullPrompt))
	if err != nil {
		return "", err
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("empty response from model")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}
	return sb.String(), nil
}

// revenuePayload is the strict shape the extraction prompt demands.
type revenuePayload struct {
	AnnualRevenueUSD interface{} `json:"annual_revenue_usd"`
}

// ExtractRevenue asks the model for the annual revenue figure present in
// the research snippets. Returns nil when the model reports none, the
// figure is non-positive, or anything fails to parse.
func (g *GeminiClient) ExtractRevenue(ctx context.Context, entity string, contextText string) (*float64, error) {
	if strings.TrimSpace(contextText) == "" {
		return nil, nil
	}

	pt, err := prompt.Get().GetPrompt(prompt.PromptIDs.ResearchRevenue)
	if err != nil {
		return nil, err
	}

	userPrompt, err := prompt.RenderUserPrompt(pt, prompt.NewContext().
		Set("ClientName", entity).
		Set("Snippets", contextText))
	if err != nil {
		return nil, err
	}

	raw, err := g.generateText(ctx, pt.SystemPrompt, userPrompt, 0.0)
	if err != nil {
		return nil, err
	}

	var payload revenuePayload
	if _, err := utils.SmartParse(utils.ExtractJSONBlock(raw), &payload); err != nil {
		return nil, err
	}
	if payload.AnnualRevenueUSD == nil {
		return nil, nil
	}

	v := amount.Extract(payload.AnnualRevenueUSD)
	if v <= 0 {
		return nil, nil
	}
	return &v, nil
}
