package research

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const harvestUserAgent = "Mozilla/5.0 (compatible; HammerROI/1.0)"

// SiteHarvester pulls visible text off a client homepage for research
// context. Chrome elements are stripped so the summary is body copy,
// not navigation labels.
type SiteHarvester struct {
	MaxLen int
	client *http.Client
}

// NewSiteHarvester returns a harvester with a 2000-character summary cap.
func NewSiteHarvester() *SiteHarvester {
	return &SiteHarvester{
		MaxLen: 2000,
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

// Harvest fetches a URL and returns its visible text, whitespace
// collapsed and truncated to MaxLen.
func (h *SiteHarvester) Harvest(ctx context.Context, rawURL string) (string, error) {
	target := normalizeURL(rawURL)
	if target == "" {
		return "", nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", harvestUserAgent)
	req.Header.Set("Accept", "text/html")

	resp, err := h.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("script, style, nav, noscript, header, footer, iframe").Remove()

	text := collapseWhitespace(doc.Find("body").Text())
	if text == "" {
		text = collapseWhitespace(doc.Text())
	}

	maxLen := h.MaxLen
	if maxLen <= 0 {
		maxLen = 2000
	}
	if len(text) > maxLen {
		text = text[:maxLen]
	}
	return text, nil
}

// normalizeURL defaults bare hostnames to https.
func normalizeURL(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	if !strings.HasPrefix(s, "http://") && !strings.HasPrefix(s, "https://") {
		s = "https://" + s
	}
	return s
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
