// Package report exposes the report-generation endpoint: access gate,
// request parsing, pipeline invocation, PDF streaming.
package report

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"agentic_roi/pkg/core/config"
	"agentic_roi/pkg/models"
)

// downloadName is the attachment filename for the streamed document.
const downloadName = "Hammer_ROI_Report.pdf"

// defaultTermMonths applies when a product's term is absent or unparsable.
const defaultTermMonths = 12

// Runner produces a finished report for one request. Satisfied by
// pipeline.Orchestrator.
type Runner interface {
	Run(ctx context.Context, req models.ReportRequest) (*models.ReportResult, []byte, error)
}

// Handler holds dependencies for the report endpoint.
type Handler struct {
	runner Runner
	cfg    *config.Config
}

// NewHandler creates a new report handler.
func NewHandler(runner Runner, cfg *config.Config) *Handler {
	return &Handler{
		runner: runner,
		cfg:    cfg,
	}
}

// productInput mirrors models.ProductSelection with loosely typed pricing
// fields. The form may post cost and term as strings; a non-numeric value
// degrades to the default instead of rejecting the request.
type productInput struct {
	Name       string      `json:"name"`
	Cost       interface{} `json:"cost"`
	TermMonths interface{} `json:"term_months"`
}

type GenerateRequest struct {
	AccessCode       string         `json:"access_code"`
	ClientName       string         `json:"client_name"`
	ClientURL        string         `json:"client_url"`
	Industry         string         `json:"industry"`
	StatedRevenue    string         `json:"stated_revenue"`
	ProjectType      string         `json:"project_type"`
	ProblemStatement string         `json:"problem_statement"`
	Products         []productInput `json:"products"`
	Preview          bool           `json:"preview"`
}

func (h *Handler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	// CORS
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

	var in GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// Security check runs before any pipeline work.
	if in.AccessCode != h.cfg.AccessCode {
		http.Error(w, "Invalid Access Code", http.StatusForbidden)
		return
	}

	req := buildRequest(in)
	fmt.Printf("[REPORT] Request: %s / %s (%d products, preview=%t)\n", req.ClientName, req.Industry, len(req.Products), req.Preview)

	ctxWithTimeout, cancel := context.WithTimeout(r.Context(), 120*time.Second)
	defer cancel()

	result, pdf, err := h.runner.Run(ctxWithTimeout, req)
	if err != nil {
		http.Error(w, fmt.Sprintf("Report generation failed: %v", err), http.StatusInternalServerError)
		return
	}

	if req.Preview {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(result)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", downloadName))
	w.Write(pdf)
}

// buildRequest converts the wire shape into the pipeline request,
// applying the lenient pricing semantics: unnamed products are dropped,
// non-numeric costs become zero, non-numeric terms get the default.
func buildRequest(in GenerateRequest) models.ReportRequest {
	req := models.ReportRequest{
		AccessCode:       in.AccessCode,
		ClientName:       strings.TrimSpace(in.ClientName),
		ClientURL:        strings.TrimSpace(in.ClientURL),
		Industry:         strings.TrimSpace(in.Industry),
		StatedRevenue:    strings.TrimSpace(in.StatedRevenue),
		ProjectType:      strings.TrimSpace(in.ProjectType),
		ProblemStatement: strings.TrimSpace(in.ProblemStatement),
		Preview:          in.Preview,
	}
	if req.ClientName == "" {
		req.ClientName = "Valued Client"
	}
	for _, p := range in.Products {
		name := strings.TrimSpace(p.Name)
		if name == "" {
			continue
		}
		req.Products = append(req.Products, models.ProductSelection{
			Name:       name,
			Cost:       asNumber(p.Cost, 0),
			TermMonths: asNumber(p.TermMonths, defaultTermMonths),
		})
	}
	return req
}

// asNumber coerces a loosely typed pricing field. JSON numbers pass
// through; strings are parsed after stripping currency formatting;
// anything else, including a string that fails to parse, yields the
// default so the request still proceeds.
func asNumber(v interface{}, def float64) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case string:
		s := strings.TrimSpace(t)
		s = strings.TrimPrefix(s, "$")
		s = strings.ReplaceAll(s, ",", "")
		if s == "" {
			return def
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return def
		}
		return f
	default:
		return def
	}
}
