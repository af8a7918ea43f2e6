package products

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"agentic_roi/pkg/core/knowledge"
)

func TestHandleList(t *testing.T) {
	h := NewHandler(knowledge.NewCatalog())

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	rec := httptest.NewRecorder()
	h.HandleList(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got != "application/json" {
		t.Errorf("expected application/json, got %q", got)
	}

	var resp Response
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Products) != 6 {
		t.Fatalf("expected 6 products, got %d", len(resp.Products))
	}
	if resp.Products[0].Name != "Hammer VoiceExplorer" {
		t.Errorf("expected catalog order to start with Hammer VoiceExplorer, got %q", resp.Products[0].Name)
	}

	found := false
	for _, p := range resp.Products {
		if p.Name == "Hammer QA" {
			found = true
			if p.Tagline != "Automated Functional Testing" {
				t.Errorf("expected Hammer QA tagline, got %q", p.Tagline)
			}
			if len(p.HardROI) != 3 {
				t.Errorf("expected 3 hard-roi bullets, got %d", len(p.HardROI))
			}
		}
	}
	if !found {
		t.Error("expected Hammer QA in catalog listing")
	}
}
