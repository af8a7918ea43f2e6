package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	apiConfig "agentic_roi/pkg/api/config"
	"agentic_roi/pkg/api/products"
	"agentic_roi/pkg/api/report"
	"agentic_roi/pkg/core/agent"
	"agentic_roi/pkg/core/config"
	"agentic_roi/pkg/core/drivers"
	"agentic_roi/pkg/core/knowledge"
	"agentic_roi/pkg/core/pipeline"
	"agentic_roi/pkg/core/prompt"
	"agentic_roi/pkg/core/research"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

var agentMgr *agent.Manager

func main() {
	// Load environment variables
	godotenv.Load()

	cfg := config.Load()
	if missing := cfg.Missing(); len(missing) > 0 {
		fmt.Printf("[WARNING] Missing configuration: %v. Dependent features run on fallbacks.\n", missing)
	}

	// Initialize Prompt Library
	if err := prompt.RegisterDefaults(); err != nil {
		fmt.Printf("[WARNING] Failed to register built-in prompts: %v\n", err)
	}
	// Prompt overrides on disk win over the built-in set.
	resourcesPath := "resources"
	if _, err := os.Stat(resourcesPath); os.IsNotExist(err) {
		// Try from executable directory
		exePath, _ := os.Executable()
		resourcesPath = filepath.Join(filepath.Dir(exePath), "resources")
	}
	if err := prompt.LoadFromDirectory(resourcesPath); err != nil {
		fmt.Println("[PROMPT] No prompt overrides on disk. Using built-in prompts.")
	}

	// Initialize manager from config
	configData, _ := os.ReadFile("config/models.yaml")
	var agentCfg agent.Config
	yaml.Unmarshal(configData, &agentCfg)
	agentMgr = agent.NewManager(agentCfg)

	// Wire the report pipeline
	catalog := knowledge.NewCatalog()
	researcher := research.NewService(context.Background(), cfg, agentMgr)
	source := drivers.NewSource(agentMgr, catalog)
	orchestrator := pipeline.NewOrchestrator(researcher, source, catalog)

	// Report endpoint
	reportHandler := report.NewHandler(orchestrator, cfg)
	http.HandleFunc("/api/report/generate", reportHandler.HandleGenerate)

	// Catalog endpoint for the intake form
	productsHandler := products.NewHandler(catalog)
	http.HandleFunc("/api/products", productsHandler.HandleList)

	// Config endpoints
	configHandler := apiConfig.NewHandler(agentMgr, cfg)
	http.HandleFunc("/api/config", configHandler.HandleConfig)
	http.HandleFunc("/api/config/switch", configHandler.HandleSwitch)
	http.HandleFunc("/api/config/status", configHandler.HandleStatus)

	http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"status":"ok"}`)
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	fmt.Printf("API server starting on %s...\n", addr)
	fmt.Println("  - POST /api/report/generate")
	fmt.Println("  - GET  /api/products")
	fmt.Println("  - GET  /api/config")
	fmt.Println("  - POST /api/config/switch")
	fmt.Println("  - GET  /api/config/status")
	fmt.Println("  - GET  /health")

	// Use os.Exit(1) so the failure reason is printed (e.g. port in use)
	if err := http.ListenAndServe(addr, nil); err != nil {
		fmt.Printf("[FATAL] Server failed to start: %v\n", err)
		os.Exit(1)
	}
}
