package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"agentic_roi/pkg/core/agent"
	"agentic_roi/pkg/core/config"
	"agentic_roi/pkg/core/delivery"
	"agentic_roi/pkg/core/drivers"
	"agentic_roi/pkg/core/knowledge"
	"agentic_roi/pkg/core/pipeline"
	"agentic_roi/pkg/core/prompt"
	"agentic_roi/pkg/core/research"
	"agentic_roi/pkg/models"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

// Headless one-shot generator: reads the request from the environment,
// runs the full pipeline, writes the PDF to disk, and optionally emails
// it. Mirrors the hosted endpoint minus the access gate, which only
// guards the public form.
func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, assuming environment variables are set.")
	}

	cfg := config.Load()

	clientName := envOr("USER_NAME", "Valued Client")
	clientURL := os.Getenv("USER_URL")
	userEmail := os.Getenv("USER_EMAIL")
	industry := os.Getenv("USER_INDUSTRY")
	statedRevenue := os.Getenv("USER_REVENUE")
	problem := os.Getenv("USER_PROBLEM")
	outputPath := envOr("OUTPUT_PATH", "Hammer_ROI_Report.pdf")

	rawSpend := os.Getenv("USER_SPEND")
	if strings.TrimSpace(rawSpend) == "" {
		rawSpend = "0"
	}
	rawTerm := os.Getenv("USER_TERM")

	fmt.Println("--- Starting Hammer ROI Report Generator ---")
	fmt.Printf("Target: %s (%s)\n", clientName, clientURL)
	fmt.Printf("Spend Input: %s\n", rawSpend)

	if err := prompt.RegisterDefaults(); err != nil {
		fmt.Printf("[WARNING] Failed to register built-in prompts: %v\n", err)
	}

	configData, _ := os.ReadFile("config/models.yaml")
	var agentCfg agent.Config
	yaml.Unmarshal(configData, &agentCfg)
	agentMgr := agent.NewManager(agentCfg)

	catalog := knowledge.NewCatalog()
	researcher := research.NewService(context.Background(), cfg, agentMgr)
	source := drivers.NewSource(agentMgr, catalog)
	orchestrator := pipeline.NewOrchestrator(researcher, source, catalog)

	req := models.ReportRequest{
		ClientName:       clientName,
		ClientURL:        clientURL,
		Industry:         industry,
		StatedRevenue:    statedRevenue,
		ProblemStatement: problem,
		Products:         productSelections(catalog, os.Getenv("USER_PRODUCTS"), rawSpend, rawTerm),
	}

	result, pdf, err := orchestrator.Run(context.Background(), req)
	if err != nil {
		log.Fatalf("Report generation failed: %v", err)
	}
	fmt.Printf("Payback: %s | ROI defined: %t\n", result.Payback, result.Totals.ROIDefined)

	if err := os.WriteFile(outputPath, pdf, 0644); err != nil {
		log.Fatalf("Failed to write %s: %v", outputPath, err)
	}
	fmt.Printf("✅ PDF Saved: %s\n", outputPath)

	mailer := delivery.NewMailer(cfg.SMTP)
	mailer.Send(userEmail, clientName, pdf)

	fmt.Println("\n[Done] Report Complete.")
}

// productSelections builds the selection list. USER_PRODUCTS is a
// comma-separated list of catalog names; empty means the whole catalog.
// The monthly spend is split evenly across the selected products so the
// aggregate investment matches the entered figure.
func productSelections(catalog *knowledge.Catalog, rawProducts, rawSpend, rawTerm string) []models.ProductSelection {
	var names []string
	for _, p := range strings.Split(rawProducts, ",") {
		if p = strings.TrimSpace(p); p != "" {
			names = append(names, p)
		}
	}
	if len(names) == 0 {
		names = catalog.Names()
	}

	spend, err := strconv.ParseFloat(strings.TrimSpace(rawSpend), 64)
	if err != nil || spend < 0 {
		spend = 0
	}
	term, err := strconv.ParseFloat(strings.TrimSpace(rawTerm), 64)
	if err != nil || term <= 0 {
		term = 12
	}

	perProduct := spend / float64(len(names))
	out := make([]models.ProductSelection, 0, len(names))
	for _, name := range names {
		out = append(out, models.ProductSelection{
			Name:       name,
			Cost:       perProduct,
			TermMonths: term,
		})
	}
	return out
}

func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
