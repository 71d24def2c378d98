package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// ScanAPI triggers folder scans and manages scan exclusions. The scanning
// itself runs server-side; the client only initiates and inspects it.
type ScanAPI struct {
	c *Client
}

// Start scans the given library folder. useAI enables AI metadata
// generation for newly discovered products.
func (s *ScanAPI) Start(ctx context.Context, path string, useAI bool) (*ScanResult, error) {
	body := map[string]any{"path": path, "use_ai": useAI}
	var out ScanResult
	if err := s.c.postJSON(ctx, "scan/start", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RegenerateMetadata re-runs AI metadata generation for one product.
func (s *ScanAPI) RegenerateMetadata(ctx context.Context, productID int) (*MessageResponse, error) {
	var out MessageResponse
	if err := s.c.postJSON(ctx, fmt.Sprintf("scan/regenerate-metadata/%d", productID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Exclusions returns the glob patterns excluded from scanning.
func (s *ScanAPI) Exclusions(ctx context.Context) ([]string, error) {
	var out struct {
		Exclusions []string `json:"exclusions"`
	}
	if err := s.c.getJSON(ctx, "scan/exclusions", nil, &out); err != nil {
		return nil, err
	}
	return out.Exclusions, nil
}

// SaveExclusions replaces the exclusion pattern list.
func (s *ScanAPI) SaveExclusions(ctx context.Context, exclusions []string) error {
	body := map[string][]string{"exclusions": exclusions}
	return s.c.postJSON(ctx, "scan/exclusions", body, nil)
}

// AddExclusion appends one pattern of the given type.
func (s *ScanAPI) AddExclusion(ctx context.Context, pattern, patternType string) error {
	body := map[string]string{"pattern": pattern, "type": patternType}
	return s.c.postJSON(ctx, "scan/exclusions/add", body, nil)
}

// Info reports the configured library path and the time of the last scan.
func (s *ScanAPI) Info(ctx context.Context) (map[string]any, error) {
	var out map[string]any
	if err := s.c.getJSON(ctx, "scan/info", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Preview lists what a scan of path would pick up, without importing.
func (s *ScanAPI) Preview(ctx context.Context, path string, limit int) (map[string]any, error) {
	q := url.Values{
		"path":  []string{path},
		"limit": []string{strconv.Itoa(limit)},
	}
	var out map[string]any
	if err := s.c.getJSON(ctx, "scan/preview", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// TestAI checks that the backend's AI provider is reachable and configured.
func (s *ScanAPI) TestAI(ctx context.Context) (map[string]any, error) {
	var out map[string]any
	if err := s.c.getJSON(ctx, "scan/test-api", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
