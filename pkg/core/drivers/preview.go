package drivers

import (
	"fmt"

	"agentic_roi/pkg/core/knowledge"
	"agentic_roi/pkg/models"
)

// previewImpact returns the analysis prompt that would have been sent,
// labeled as a preview, with zero-cost placeholder financials. Reached
// before any external call; preview requests never bill.
func (s *Source) previewImpact(req Request, product *knowledge.Product, scenario knowledge.Scenario) models.ProductImpact {
	systemPrompt, userPrompt, err := buildAnalysisPrompt(req, product, scenario)
	if err != nil {
		systemPrompt = ""
		userPrompt = fmt.Sprintf("prompt construction failed: %v", err)
	}

	payload := &models.PreviewPayload{
		Agent:        AgentAnalysis,
		SystemPrompt: systemPrompt,
		UserPrompt:   userPrompt,
	}
	if s.Agents != nil {
		payload.Model = s.Agents.ModelFor(AgentAnalysis)
	}

	return models.ProductImpact{
		Product:       product.Name,
		ScenarioTitle: scenario.Title,
		ImpactSummary: "Preview request. No content was generated and no external call was made.",
		Bullets:       []string{},
		Components:    []models.ValueDriver{},
		Preview:       payload,
	}
}
