package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/shelfhub/shelfhub/internal/common"
)

// ViolationsAPI manages filename-rule violations flagged by the server-side
// scanner: listing, resolving, renaming (single and batch), and triggering
// AI re-matching. All state lives on the server; every method is a single
// fire-and-forget request whose failure propagates unchanged.
type ViolationsAPI struct {
	c *Client
}

// List returns violations filtered by resolution state: resolved=false
// (the default view) returns only the outstanding ones.
func (v *ViolationsAPI) List(ctx context.Context, resolved bool) ([]Violation, error) {
	q := url.Values{"resolved": []string{strconv.FormatBool(resolved)}}
	var out []Violation
	if err := v.c.getJSON(ctx, "filename-violations/", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Stats returns summary counts grouped by violation type.
func (v *ViolationsAPI) Stats(ctx context.Context) (*ViolationStats, error) {
	var out ViolationStats
	if err := v.c.getJSON(ctx, "filename-violations/stats", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Resolve marks one violation as handled without touching the file.
func (v *ViolationsAPI) Resolve(ctx context.Context, id int) (*MessageResponse, error) {
	var out MessageResponse
	if err := v.c.putJSON(ctx, fmt.Sprintf("filename-violations/%d/resolve", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes one violation record.
func (v *ViolationsAPI) Delete(ctx context.Context, id int) (*MessageResponse, error) {
	var out MessageResponse
	if err := v.c.delete(ctx, fmt.Sprintf("filename-violations/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Clear bulk-deletes violation records; with resolvedOnly it keeps the
// outstanding ones.
func (v *ViolationsAPI) Clear(ctx context.Context, resolvedOnly bool) (*ClearResult, error) {
	q := url.Values{"resolved_only": []string{strconv.FormatBool(resolvedOnly)}}
	var out ClearResult
	if err := v.c.delete(ctx, "filename-violations/", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Rename changes the violating file's name to newFilename. An empty target
// is a caller error and is rejected before any network I/O.
func (v *ViolationsAPI) Rename(ctx context.Context, id int, newFilename string) (*RenameResult, error) {
	if newFilename == "" {
		return nil, common.ErrorEmptyTargetFilename
	}
	body := map[string]string{"new_filename": newFilename}
	var out RenameResult
	if err := v.c.putJSON(ctx, fmt.Sprintf("filename-violations/%d/rename", id), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// BatchRename applies each violation's suggested filename. The server
// processes ids independently and reports per-item results, which are
// returned verbatim. An empty id set is a caller error.
func (v *ViolationsAPI) BatchRename(ctx context.Context, ids []int) (*BatchRenameResult, error) {
	if len(ids) == 0 {
		return nil, common.ErrorNoViolationIDs
	}
	body := map[string][]int{"violation_ids": ids}
	var out BatchRenameResult
	if err := v.c.postJSON(ctx, "filename-violations/batch-rename", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateProduct triggers AI-assisted product creation from the scan match.
// The work is asynchronous on the server; this call only initiates it.
func (v *ViolationsAPI) CreateProduct(ctx context.Context, id int) (*MessageResponse, error) {
	var out MessageResponse
	if err := v.c.postJSON(ctx, fmt.Sprintf("filename-violations/%d/create-product", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
