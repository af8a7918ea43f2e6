// Package products serves the read-only product catalog behind the
// intake form.
package products

import (
	"encoding/json"
	"net/http"

	"agentic_roi/pkg/core/knowledge"
)

type Response struct {
	Products []*knowledge.Product `json:"products"`
}

// Handler holds dependencies for catalog endpoints.
type Handler struct {
	Catalog *knowledge.Catalog
}

// NewHandler creates a new products handler.
func NewHandler(catalog *knowledge.Catalog) *Handler {
	return &Handler{
		Catalog: catalog,
	}
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	// Add CORS headers for local dev
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	resp := Response{
		Products: h.Catalog.List(),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
