// Package config exposes the runtime-configuration endpoints: which LLM
// provider is active, switching it without a restart, and the status of
// the external integrations.
package config

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"

	"agentic_roi/pkg/core/agent"
	coreConfig "agentic_roi/pkg/core/config"
)

// Response describes the active provider and the selectable set.
type Response struct {
	ActiveProvider string   `json:"active_provider"`
	Available      []string `json:"available"`
}

type SwitchRequest struct {
	Provider string `json:"provider"`
}

// Handler serves the config endpoints.
type Handler struct {
	AgentMgr *agent.Manager
	Cfg      *coreConfig.Config
}

func NewHandler(agentMgr *agent.Manager, cfg *coreConfig.Config) *Handler {
	return &Handler{
		AgentMgr: agentMgr,
		Cfg:      cfg,
	}
}

// HandleConfig reports the active provider and the registered set, sorted
// so the form renders a stable list.
func (h *Handler) HandleConfig(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.Header().Set("Content-Type", "application/json")

	available := h.AgentMgr.ProviderNames()
	sort.Strings(available)

	json.NewEncoder(w).Encode(Response{
		ActiveProvider: h.AgentMgr.GetActiveProvider(),
		Available:      available,
	})
}

// HandleStatus reports which external integrations are usable. Secrets
// themselves never leave the process.
func (h *Handler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.Header().Set("Content-Type", "application/json")

	json.NewEncoder(w).Encode(h.Cfg.Status())
}

// HandleSwitch changes the global provider for subsequent generations.
func (h *Handler) HandleSwitch(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req SwitchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if err := h.AgentMgr.SetGlobalProvider(req.Provider); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	fmt.Fprintf(w, "Success: Switched to %s", req.Provider)
}
