// Package research enriches a report request before generation starts:
// industry challenge insights, an optional homepage text harvest, an
// annual-revenue estimate for size classing, and the project focus area
// when the form leaves it blank. Every sub-step is best-effort; a fully
// unconfigured service still returns usable static context.
package research

import (
	"context"
	"fmt"
	"strings"
	"time"

	"agentic_roi/pkg/core/agent"
	"agentic_roi/pkg/core/config"
	"agentic_roi/pkg/core/prompt"
	"agentic_roi/pkg/models"
)

// Agent names as configured in config/models.yaml.
const (
	AgentResearch = "research"
	AgentFocus    = "focus"
)

// defaultTimeout bounds each external research call.
const defaultTimeout = 60 * time.Second

// focusAreas are the only values the focus deduction may return.
var focusAreas = []string{"Migration", "DevOps", "Operations", "CX"}

// Service bundles the research collaborators.
type Service struct {
	Search  Searcher
	Agents  *agent.Manager
	Revenue RevenueExtractor
	Harvest *SiteHarvester
	Timeout time.Duration

	// grounded marks that a Gemini key exists, enabling the
	// search-grounded insight tier when Tavily is absent.
	grounded bool
}

// NewService wires the research step from the app config. Collaborators
// without credentials stay nil and their tiers are skipped.
func NewService(ctx context.Context, cfg *config.Config, agents *agent.Manager) *Service {
	svc := &Service{
		Agents:  agents,
		Harvest: NewSiteHarvester(),
		Timeout: defaultTimeout,
	}
	if cfg == nil {
		return svc
	}

	if cfg.SearchAPIKey != "" {
		svc.Search = NewTavilyClient(cfg.SearchAPIKey)
	}
	if cfg.GeminiAPIKey != "" {
		svc.grounded = true
		client, err := NewGeminiClient(ctx, cfg.GeminiAPIKey, "")
		if err != nil {
			fmt.Printf("[RESEARCH] Revenue extractor unavailable: %v\n", err)
		} else {
			svc.Revenue = client
		}
	}
	return svc
}

// Run executes the research step for one request.
func (s *Service) Run(ctx context.Context, req models.ReportRequest) models.ResearchContext {
	rc := models.ResearchContext{}

	insightCtx, cancel := context.WithTimeout(ctx, s.timeout())
	rc.Insights = s.insightLines(insightCtx, req.ClientName, req.Industry)
	cancel()

	if req.ClientURL != "" && s.Harvest != nil {
		harvestCtx, cancel := context.WithTimeout(ctx, s.timeout())
		summary, err := s.Harvest.Harvest(harvestCtx, req.ClientURL)
		cancel()
		if err != nil {
			fmt.Printf("[RESEARCH] Homepage harvest failed for %s: %v\n", req.ClientURL, err)
		} else {
			rc.SiteSummary = summary
		}
	}

	if s.Revenue != nil {
		snippets := strings.Join(rc.Insights, "\n")
		if rc.SiteSummary != "" {
			snippets += "\n" + rc.SiteSummary
		}
		revenueCtx, cancel := context.WithTimeout(ctx, s.timeout())
		estimate, err := s.Revenue.ExtractRevenue(revenueCtx, req.ClientName, snippets)
		cancel()
		if err != nil {
			fmt.Printf("[RESEARCH] Revenue extraction failed for %s: %v\n", req.ClientName, err)
		} else {
			rc.RevenueEstimate = estimate
		}
	}

	rc.ProjectType = s.projectFocus(ctx, req.ClientName, req.Industry, req.ProjectType)
	return rc
}

// insightQuery builds the challenge-research query, with the year kept
// current.
func insightQuery(clientName, industry string) string {
	return fmt.Sprintf("Top 3 strategic challenges for %s in %s contact centers %d",
		clientName, industry, time.Now().Year())
}

// insightLines resolves the industry-context lines through three tiers:
// live search, search-grounded generation, static lists.
func (s *Service) insightLines(ctx context.Context, clientName, industry string) []string {
	attempted := false

	if s.Search != nil {
		attempted = true
		results, err := s.Search.Search(ctx, insightQuery(clientName, industry))
		if err != nil {
			fmt.Printf("[RESEARCH] Insight search failed: %v\n", err)
		} else if len(results) > 0 {
			lines := make([]string, 0, 3)
			for _, r := range results {
				lines = append(lines, truncateSnippet(r.Content))
				if len(lines) >= 3 {
					break
				}
			}
			return lines
		}
	}

	if s.grounded && s.Agents != nil {
		attempted = true
		if lines := s.groundedInsights(ctx, clientName, industry); len(lines) > 0 {
			return lines
		}
	}

	return fallbackInsights(industry, attempted)
}

// groundedInsights asks the configured research agent with the Google
// Search grounding tool enabled. Empty slice on any failure.
func (s *Service) groundedInsights(ctx context.Context, clientName, industry string) []string {
	pt, err := prompt.Get().GetPrompt(prompt.PromptIDs.ResearchChallenges)
	if err != nil {
		return nil
	}

	userPrompt, err := prompt.RenderUserPrompt(pt, prompt.NewContext().
		Set("ClientName", clientName).
		Set("Industry", industry).
		Set("Year", time.Now().Year()))
	if err != nil {
		return nil
	}

	resp, err := s.Agents.ExecutePrompt(ctx, AgentResearch, userPrompt, pt.SystemPrompt, map[string]interface{}{"google_search": true})
	if err != nil {
		fmt.Printf("[RESEARCH] Grounded insight generation failed: %v\n", err)
		return nil
	}
	return splitInsightLines(resp)
}

// truncateSnippet keeps search snippets to 150 characters plus ellipsis.
func truncateSnippet(content string) string {
	if len(content) > 150 {
		return content[:150] + "..."
	}
	return content
}

// splitInsightLines turns generated text into at most three clean
// insight lines. Citation blocks appended by the grounding path are
// dropped.
func splitInsightLines(text string) []string {
	if idx := strings.Index(text, "**Sources:**"); idx >= 0 {
		text = text[:idx]
	}

	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "-*0123456789. ")
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
		if len(lines) >= 3 {
			break
		}
	}
	return lines
}

// fallbackInsights returns the static context lines. The two variants
// are distinct on purpose: "error" means research was attempted and
// failed, "unconfigured" means no research collaborator exists.
func fallbackInsights(industry string, attempted bool) []string {
	if attempted {
		return []string{
			fmt.Sprintf("Increasing operational efficiency in %s", industry),
			"Reducing customer churn",
			"Migrating legacy systems to cloud",
		}
	}
	return []string{
		fmt.Sprintf("Standard %s efficiency drivers", industry),
		"Cost reduction initiatives",
		"Customer Experience (CX) optimization",
	}
}

// projectFocus keeps the submitted project type, or deduces one from
// the client and industry. Deduction failure means "Operations".
func (s *Service) projectFocus(ctx context.Context, clientName, industry, submitted string) string {
	if v := strings.TrimSpace(submitted); v != "" {
		return v
	}
	if s.Agents == nil {
		return "Operations"
	}

	pt, err := prompt.Get().GetPrompt(prompt.PromptIDs.ResearchFocus)
	if err != nil {
		return "Operations"
	}

	userPrompt, err := prompt.RenderUserPrompt(pt, prompt.NewContext().
		Set("ClientName", clientName).
		Set("Industry", industry))
	if err != nil {
		return "Operations"
	}

	focusCtx, cancel := context.WithTimeout(ctx, s.timeout())
	defer cancel()

	resp, err := s.Agents.ExecutePrompt(focusCtx, AgentFocus, userPrompt, pt.SystemPrompt, map[string]interface{}{"temperature": 0.0})
	if err != nil {
		fmt.Printf("[RESEARCH] Focus deduction failed: %v. Defaulting to Operations.\n", err)
		return "Operations"
	}
	return normalizeFocus(resp)
}

// normalizeFocus validates the model's one-word answer against the
// allowed focus areas. Anything else reads as Operations.
func normalizeFocus(resp string) string {
	word := strings.TrimSpace(resp)
	word = strings.Trim(word, ".\"'` \n\t")
	for _, allowed := range focusAreas {
		if strings.EqualFold(word, allowed) {
			return allowed
		}
	}
	return "Operations"
}

func (s *Service) timeout() time.Duration {
	if s.Timeout > 0 {
		return s.Timeout
	}
	return defaultTimeout
}
