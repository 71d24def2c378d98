package api

import "time"

// Violation is a scanned filename that fails the naming-convention rules.
// The record is owned by the server; the client only reads snapshots and
// issues mutation requests against them.
type Violation struct {
	ID               int        `json:"id"`
	FolderPath       string     `json:"folder_path"`
	FileName         string     `json:"file_name"`
	ViolationType    string     `json:"violation_type"`
	ViolationDetails string     `json:"violation_details,omitempty"`
	Suggestion       string     `json:"suggestion,omitempty"`
	CreatedAt        *time.Time `json:"created_at,omitempty"`
	IsResolved       bool       `json:"is_resolved"`
	ProductID        *int       `json:"product_id,omitempty"`
	VersionID        *int       `json:"version_id,omitempty"`
}

// ViolationStats is the summary returned by filename-violations/stats.
type ViolationStats struct {
	Total      int            `json:"total"`
	Scanned    int            `json:"scanned"`
	Mismatched int            `json:"mismatched"`
	ByType     map[string]int `json:"by_type"`
}

// MessageResponse is the generic {"message": ...} acknowledgment several
// mutation endpoints return.
type MessageResponse struct {
	Message     string `json:"message"`
	ViolationID int    `json:"violation_id,omitempty"`
}

// ClearResult reports how many violation records a bulk clear removed.
type ClearResult struct {
	Message      string `json:"message"`
	DeletedCount int    `json:"deleted_count"`
}

// RenameResult is the outcome of a single rename.
type RenameResult struct {
	Message     string `json:"message"`
	OldFilename string `json:"old_filename"`
	NewFilename string `json:"new_filename"`
	FilePath    string `json:"file_path"`
	ProductID   *int   `json:"product_id"`
}

// BatchRenameItem is one per-violation outcome inside a batch rename.
// Error is empty for successful items.
type BatchRenameItem struct {
	ID          int    `json:"id"`
	Filename    string `json:"filename,omitempty"`
	OldFilename string `json:"old_filename,omitempty"`
	NewFilename string `json:"new_filename,omitempty"`
	ProductID   *int   `json:"product_id,omitempty"`
	Error       string `json:"error,omitempty"`
}

// BatchRenameResult is the server's verbatim per-item report. The server
// applies each rename independently, so partial success is normal.
type BatchRenameResult struct {
	Message string `json:"message"`
	Results struct {
		Success []BatchRenameItem `json:"success"`
		Failed  []BatchRenameItem `json:"failed"`
	} `json:"results"`
}

// TokenResponse is the credential-exchange result of auth/login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// SetupStatus reports whether the instance still needs its first admin
// account.
type SetupStatus struct {
	NeedsSetup bool `json:"needs_setup"`
}

// RegistrationStatus reports whether self-registration is open.
type RegistrationStatus struct {
	RegistrationOpen bool `json:"registration_open"`
}

// ScanResult summarizes a completed folder scan.
type ScanResult struct {
	NewProducts     int      `json:"new_products"`
	NewVersions     int      `json:"new_versions"`
	UpdatedProducts int      `json:"updated_products"`
	AIGenerated     int      `json:"ai_generated"`
	IconsCached     int      `json:"icons_cached"`
	Errors          []string `json:"errors"`
}

// Product is a catalog entry. Only the fields the CLI presents are mapped.
type Product struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle,omitempty"`
	Description string `json:"description,omitempty"`
	Vendor      string `json:"vendor,omitempty"`
	Category    string `json:"category,omitempty"`
	IconURL     string `json:"icon_url,omitempty"`
	FolderPath  string `json:"folder_path"`
	IsPortable  bool   `json:"is_portable"`
}

// ProductList is a page of catalog entries with the unpaged total.
type ProductList struct {
	Total    int       `json:"total"`
	Products []Product `json:"products"`
}

// Post is a knowledge-base article. Tags travel as the comma-separated
// string the backend stores; only the fields the CLI presents are mapped.
type Post struct {
	ID             int        `json:"id"`
	Category       string     `json:"category"`
	Title          string     `json:"title"`
	Content        string     `json:"content"`
	Tags           string     `json:"tags,omitempty"`
	IsNotice       bool       `json:"is_notice"`
	AuthorID       int        `json:"author_id"`
	AuthorUsername string     `json:"author_username"`
	Views          int        `json:"views"`
	CommentsCount  int        `json:"comments_count"`
	CreatedAt      *time.Time `json:"created_at,omitempty"`
	UpdatedAt      *time.Time `json:"updated_at,omitempty"`
}

// Comment is one reply under a post.
type Comment struct {
	ID             int        `json:"id"`
	PostID         int        `json:"post_id"`
	Content        string     `json:"content"`
	AuthorID       int        `json:"author_id"`
	AuthorUsername string     `json:"author_username"`
	CreatedAt      *time.Time `json:"created_at,omitempty"`
}

// Favorite marks a product pinned by the current user. Product is the
// joined catalog entry, nil when the product has since been removed.
type Favorite struct {
	ID        int        `json:"id"`
	ProductID int        `json:"product_id"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
	Product   *Product   `json:"product,omitempty"`
}

// Scrap bookmarks a post. The backend keys scraps by a string post id and
// caches the title for listing without a join.
type Scrap struct {
	ID        int        `json:"id"`
	PostID    string     `json:"post_id"`
	PostTitle string     `json:"post_title,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}
