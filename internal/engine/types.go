package engine

import "github.com/danhyun/wsfold/internal/workspace"

// HideRequest represents a request to hide a visible folder.
type HideRequest struct {
	// Location is the descriptor file path; empty triggers discovery from CWD.
	Location string

	// CWD is the working directory used for discovery and to resolve a
	// relative Path.
	CWD string

	// Path identifies the folder to hide.
	Path string

	// DryRun applies the transformation without writing the descriptor.
	DryRun bool
}

// HideResult represents the result of hiding a folder.
type HideResult struct {
	// Location is the descriptor file that was operated on.
	Location string `json:"location"`

	// Hidden is the folder entry path as stored in the descriptor.
	Hidden string `json:"hidden"`

	// VisibleCount is the number of visible folders after the operation.
	VisibleCount int `json:"visibleCount"`

	// HiddenCount is the number of hidden folders after the operation.
	HiddenCount int `json:"hiddenCount"`

	// DryRun indicates no write occurred.
	DryRun bool `json:"dryRun,omitempty"`
}

// ShowRequest represents a request to restore a hidden folder.
type ShowRequest struct {
	// Location is the descriptor file path; empty triggers discovery from CWD.
	Location string

	// CWD is the working directory used for discovery and to resolve a
	// relative Path.
	CWD string

	// Path identifies the hidden folder to restore; empty restores the most
	// recently hidden one.
	Path string

	// DryRun applies the transformation without writing the descriptor.
	DryRun bool
}

// ShowResult represents the result of restoring a folder.
type ShowResult struct {
	// Location is the descriptor file that was operated on.
	Location string `json:"location"`

	// Restored is the folder entry path that was made visible again; empty
	// when the operation was a no-op.
	Restored string `json:"restored,omitempty"`

	// NoHidden indicates the hidden list was empty and nothing happened.
	NoHidden bool `json:"noHidden,omitempty"`

	// VisibleCount is the number of visible folders after the operation.
	VisibleCount int `json:"visibleCount"`

	// HiddenCount is the number of hidden folders after the operation.
	HiddenCount int `json:"hiddenCount"`

	// DryRun indicates no write occurred.
	DryRun bool `json:"dryRun,omitempty"`
}

// ListRequest represents a request for the visibility listing.
type ListRequest struct {
	// Location is the descriptor file path; empty triggers discovery from CWD.
	Location string

	// CWD is the working directory used for discovery.
	CWD string
}

// ListResult represents the visible and hidden folder lists.
type ListResult struct {
	// Location is the descriptor file that was read.
	Location string `json:"location"`

	// Visible is the ordered list of visible folders.
	Visible []workspace.FolderEntry `json:"visible"`

	// Hidden is the ordered list of hidden folders, oldest first.
	Hidden []workspace.HiddenFolder `json:"hidden"`
}
