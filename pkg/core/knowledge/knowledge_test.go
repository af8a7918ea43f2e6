package knowledge

import (
	"math"
	"testing"
)

func TestCatalogCompleteness(t *testing.T) {
	catalog := NewCatalog()

	products := catalog.List()
	if len(products) != 6 {
		t.Fatalf("expected 6 products, got %d", len(products))
	}

	for _, p := range products {
		if p.Tagline == "" {
			t.Errorf("product '%s' missing tagline", p.Name)
		}
		if len(p.HardROI) != 3 {
			t.Errorf("product '%s' expected 3 hard ROI points, got %d", p.Name, len(p.HardROI))
		}
		if p.SoftROI == "" {
			t.Errorf("product '%s' missing soft ROI", p.Name)
		}
		if p.Math.CostPerUnitValue <= 0 {
			t.Errorf("product '%s' missing scenario math", p.Name)
		}
		if menu := catalog.Scenarios(p.Name); len(menu) == 0 {
			t.Errorf("product '%s' missing scenario menu", p.Name)
		}
	}
}

func TestCatalog_Get(t *testing.T) {
	catalog := NewCatalog()

	p, err := catalog.Get("Hammer QA")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Tagline != "Automated Functional Testing" {
		t.Errorf("expected QA tagline, got '%s'", p.Tagline)
	}

	if _, err := catalog.Get("Hammer Nonexistent"); err == nil {
		t.Error("expected error for unknown product, got nil")
	}
}

func TestCatalog_MatchFuzzy(t *testing.T) {
	catalog := NewCatalog()

	// Exact, case-insensitive, and substring forms all resolve.
	cases := map[string]string{
		"Hammer VoiceExplorer":   "Hammer VoiceExplorer",
		"hammer voiceexplorer":   "Hammer VoiceExplorer",
		"VoiceExplorer":          "Hammer VoiceExplorer",
		"Ativa":                  "Ativa Enterprise",
		"  Hammer QA  ":          "Hammer QA",
		"Hammer Edge (Endpoint)": "Hammer Edge",
	}
	for input, want := range cases {
		p := catalog.Match(input)
		if p == nil {
			t.Errorf("expected match for '%s', got nil", input)
			continue
		}
		if p.Name != want {
			t.Errorf("input '%s': expected '%s', got '%s'", input, want, p.Name)
		}
	}

	if catalog.Match("Acme Widget Suite") != nil {
		t.Error("expected nil for unknown product")
	}
	if catalog.Match("") != nil {
		t.Error("expected nil for empty name")
	}
}

func TestScenarioMathAnnualSavings(t *testing.T) {
	catalog := NewCatalog()

	// VoiceExplorer: (1200 - 200) engineer hours * $85 = $85,000.
	p, _ := catalog.Get("Hammer VoiceExplorer")
	if math.Abs(p.Math.AnnualSavings()-85000) > 0.0001 {
		t.Errorf("expected 85000, got %f", p.Math.AnnualSavings())
	}

	// Performance: (8 - 0.5) downtime hours * $45,000 = $337,500.
	p, _ = catalog.Get("Hammer Performance")
	if math.Abs(p.Math.AnnualSavings()-337500) > 0.0001 {
		t.Errorf("expected 337500, got %f", p.Math.AnnualSavings())
	}

	// VoiceWatch goes to zero after: 1000 * $55 = $55,000.
	p, _ = catalog.Get("Hammer VoiceWatch")
	if math.Abs(p.Math.AnnualSavings()-55000) > 0.0001 {
		t.Errorf("expected 55000, got %f", p.Math.AnnualSavings())
	}
}

func TestCatalog_Register(t *testing.T) {
	catalog := NewCatalog()

	p := &Product{
		Name:    "Hammer Test Product",
		Tagline: "Testing",
		Math:    ScenarioMath{CostPerUnitValue: 10, BeforeQty: 100, AfterQty: 50},
	}
	if err := catalog.Register(p, []Scenario{{Key: "demo", Title: "Demo", Logic: "a -> b"}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(catalog.List()) != 7 {
		t.Errorf("expected 7 products after register, got %d", len(catalog.List()))
	}
	if menu := catalog.Scenarios("Hammer Test Product"); len(menu) != 1 {
		t.Errorf("expected 1 scenario, got %d", len(menu))
	}

	if err := catalog.Register(nil, nil); err == nil {
		t.Error("expected error for nil product, got nil")
	}
}

func TestCatalog_ScenarioMenuContents(t *testing.T) {
	catalog := NewCatalog()

	menu := catalog.Scenarios("Hammer VoiceWatch")
	if len(menu) != 3 {
		t.Fatalf("expected 3 VoiceWatch scenarios, got %d", len(menu))
	}
	if menu[0].Key != "outage_avoidance" {
		t.Errorf("expected outage_avoidance first, got '%s'", menu[0].Key)
	}

	// Fuzzy product labels resolve menus too.
	menu = catalog.Scenarios("ativa")
	if len(menu) != 2 || menu[0].Key != "sla_credits" {
		t.Errorf("expected Ativa menu via fuzzy match, got %v", menu)
	}
}
