package prompt

// Hardcoded default prompts. RegisterDefaults seeds the registry at
// startup; LoadFromDirectory may overwrite individual entries when a
// prompt directory is shipped alongside the binary.

// PromptIDs contains all known prompt identifiers
var PromptIDs = struct {
	// ROI content generation
	ROITriage   string
	ROIAnalysis string

	// Research
	ResearchFocus      string
	ResearchRevenue    string
	ResearchChallenges string
}{
	ROITriage:   "roi.triage",
	ROIAnalysis: "roi.analysis",

	ResearchFocus:      "research.focus",
	ResearchRevenue:    "research.revenue",
	ResearchChallenges: "research.challenges",
}

// GetROIPrompt returns an ROI stage's system prompt ("triage", "analysis")
func GetROIPrompt(stage string) (string, error) {
	id := "roi." + stage
	return Get().GetSystemPrompt(id)
}

// GetResearchPrompt returns a research prompt's system prompt by name
func GetResearchPrompt(name string) (string, error) {
	id := "research." + name
	return Get().GetSystemPrompt(id)
}

var defaultTemplates = []*PromptTemplate{
	{
		ID:          PromptIDs.ROITriage,
		Name:        "ROI Scenario Triage",
		Category:    "roi",
		Description: "Cheap first pass: picks the ROI scenario whose logic fits the stated problem",
		SystemPrompt: "You are a pre-sales triage assistant for Hammer's ROI practice. " +
			"Given a client problem statement and a menu of ROI scenarios for one product, " +
			"you pick the single scenario whose logic best matches the problem. Respond with JSON only.",
		UserPromptTmpl: `CLIENT: {{.ClientName}} ({{.Industry}})
PROBLEM STATEMENT: {{.ProblemStatement}}
PRODUCT: {{.ProductName}}

SCENARIO MENU:
{{.ScenarioMenu}}

TASK:
Select the one scenario key from the menu that best addresses the problem statement.

OUTPUT JSON FORMAT (Do not include markdown ` + "```" + `json tags):
{"scenario_key": "String", "scenario_title": "String", "reason": "String"}`,
		Variables: []PromptVariable{
			{Name: "ClientName", Type: "string", Required: true},
			{Name: "Industry", Type: "string", Required: true},
			{Name: "ProblemStatement", Type: "string", Required: true},
			{Name: "ProductName", Type: "string", Required: true},
			{Name: "ScenarioMenu", Type: "string", Description: "One scenario per line: key | title | logic", Required: true},
		},
		Version: "1.0",
	},
	{
		ID:          PromptIDs.ROIAnalysis,
		Name:        "ROI Financial Analysis",
		Category:    "roi",
		Description: "Expensive second pass: fills the three value drivers with benchmark-backed math",
		SystemPrompt: "You are a Senior Solutions Consultant for Hammer. You map client risks to " +
			"Hammer solutions using internal playbooks and industry benchmark data. You write " +
			"concise, CFO-ready financial justifications. Respond with JSON only.",
		UserPromptTmpl: `CONTEXT DATA:
Client: {{.ClientName}} ({{.Industry}}, {{.SizeClass}} enterprise)
Problem Statement: {{.ProblemStatement}}
Research Insights: {{.Insights}}
Benchmark Profile: {{.BenchmarkJSON}}
Product: {{.ProductName}} - {{.Tagline}}
Scenario Framing: {{.ScenarioTitle}}
Scenario Math Variables: {{.MathVariables}}
Formula Template (three drivers): {{.FormulaTemplate}}

TASK:
1. Write a 2-3 sentence 'impact_summary' tying {{.ProductName}} to the client's stated problem.
2. Write 3 short bullets on operational impact.
3. Fill in the three value drivers from the formula template using the benchmark profile numbers.
   Each driver needs a short label, a one-line human-readable calculation, and an annual
   savings_value in USD. Savings are annual figures regardless of contract term.

OUTPUT JSON FORMAT (Do not include markdown ` + "```" + `json tags):
{
  "impact_summary": "String",
  "bullets": ["String", "String", "String"],
  "roi_components": [
    {"label": "String", "calculation": "String", "savings_value": 0.00}
  ]
}`,
		Variables: []PromptVariable{
			{Name: "ClientName", Type: "string", Required: true},
			{Name: "Industry", Type: "string", Required: true},
			{Name: "SizeClass", Type: "string", Required: true},
			{Name: "ProblemStatement", Type: "string", Required: true},
			{Name: "Insights", Type: "string", Description: "Joined research insight lines", Required: false},
			{Name: "BenchmarkJSON", Type: "object", Description: "Benchmark profile serialized as JSON", Required: true},
			{Name: "ProductName", Type: "string", Required: true},
			{Name: "Tagline", Type: "string", Required: false},
			{Name: "ScenarioTitle", Type: "string", Description: "Framing picked by the triage stage", Required: true},
			{Name: "MathVariables", Type: "object", Required: true},
			{Name: "FormulaTemplate", Type: "string", Required: true},
		},
		Version: "1.0",
	},
	{
		ID:          PromptIDs.ResearchFocus,
		Name:        "Project Focus Deduction",
		Category:    "research",
		Description: "Deduces the likely IT focus area when the form leaves it blank",
		UserPromptTmpl: `Based on the company '{{.ClientName}}' in the '{{.Industry}}' sector, ` +
			`what is the most likely IT focus area: 'Migration', 'DevOps', 'Operations', or 'CX'? ` +
			`Reply with just the one word.`,
		Variables: []PromptVariable{
			{Name: "ClientName", Type: "string", Required: true},
			{Name: "Industry", Type: "string", Required: true},
		},
		Version: "1.0",
	},
	{
		ID:          PromptIDs.ResearchRevenue,
		Name:        "Revenue Extraction",
		Category:    "research",
		Description: "Pulls an annual revenue estimate out of research snippets",
		SystemPrompt: `You are a financial data extractor. Given research snippets about a company, extract its estimated annual revenue in USD.

Respond ONLY with valid JSON matching this schema:
{
  "annual_revenue_usd": 2500000000
}

Rules:
- Use the most recent full-year revenue figure mentioned.
- Convert abbreviations ($2.5B, $300M) to full integers.
- If no revenue figure is present, return {"annual_revenue_usd": null}.
- Do not include markdown formatting or commentary.`,
		UserPromptTmpl: `COMPANY: {{.ClientName}}

RESEARCH SNIPPETS:
{{.Snippets}}`,
		Variables: []PromptVariable{
			{Name: "ClientName", Type: "string", Required: true},
			{Name: "Snippets", Type: "string", Description: "Concatenated search result content", Required: true},
		},
		Version: "1.0",
	},
	{
		ID:          PromptIDs.ResearchChallenges,
		Name:        "Industry Challenge Research",
		Category:    "research",
		Description: "Search-grounded fallback for industry challenge insights",
		UserPromptTmpl: `Top 3 strategic challenges for {{.ClientName}} in {{.Industry}} contact centers {{.Year}}. ` +
			`Reply with exactly three short lines, one challenge per line, no numbering.`,
		Variables: []PromptVariable{
			{Name: "ClientName", Type: "string", Required: true},
			{Name: "Industry", Type: "string", Required: true},
			{Name: "Year", Type: "int", Description: "Current calendar year", Required: true},
		},
		Version: "1.0",
	},
}

// RegisterDefaults seeds the global registry with the hardcoded prompt
// set. Safe to call more than once.
func RegisterDefaults() error {
	registry := Get()
	for _, pt := range defaultTemplates {
		if err := registry.Register(pt); err != nil {
			return err
		}
	}
	return nil
}
