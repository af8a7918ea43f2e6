package config

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"agentic_roi/pkg/core/agent"
	coreConfig "agentic_roi/pkg/core/config"
)

func testHandler() *Handler {
	mgr := agent.NewManager(agent.Config{ActiveProvider: "openai"})
	cfg := &coreConfig.Config{
		GeminiAPIKey: "key",
		AccessCode:   coreConfig.DefaultAccessCode,
	}
	return NewHandler(mgr, cfg)
}

func TestHandleConfigListsProviders(t *testing.T) {
	h := testHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/config", nil)
	rec := httptest.NewRecorder()
	h.HandleConfig(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp Response
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.ActiveProvider != "openai" {
		t.Errorf("expected active provider openai, got %q", resp.ActiveProvider)
	}
	if len(resp.Available) != 2 || resp.Available[0] != "gemini" || resp.Available[1] != "openai" {
		t.Errorf("expected sorted provider list [gemini openai], got %v", resp.Available)
	}
}

func TestHandleStatus(t *testing.T) {
	h := testHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/config/status", nil)
	rec := httptest.NewRecorder()
	h.HandleStatus(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var status map[string]bool
	if err := json.NewDecoder(rec.Body).Decode(&status); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !status["gemini_configured"] {
		t.Error("expected gemini_configured true")
	}
	if status["openai_configured"] {
		t.Error("expected openai_configured false")
	}
	if status["access_code_set"] {
		t.Error("expected access_code_set false for default code")
	}
}

func TestHandleSwitch(t *testing.T) {
	h := testHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/config/switch", strings.NewReader(`{"provider":"gemini"}`))
	rec := httptest.NewRecorder()
	h.HandleSwitch(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "Switched to gemini") {
		t.Errorf("expected switch confirmation, got %q", rec.Body.String())
	}
	if got := h.AgentMgr.GetActiveProvider(); got != "gemini" {
		t.Errorf("expected active provider gemini after switch, got %q", got)
	}
}

func TestHandleSwitchUnknownProvider(t *testing.T) {
	h := testHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/config/switch", strings.NewReader(`{"provider":"bogus"}`))
	rec := httptest.NewRecorder()
	h.HandleSwitch(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown provider, got %d", rec.Code)
	}
	if got := h.AgentMgr.GetActiveProvider(); got != "openai" {
		t.Errorf("expected active provider unchanged, got %q", got)
	}
}

func TestHandleSwitchBadBody(t *testing.T) {
	h := testHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/config/switch", strings.NewReader(`{bad`))
	rec := httptest.NewRecorder()
	h.HandleSwitch(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
