package api

import (
	"osm2lanes/pkg/diag"
	"osm2lanes/pkg/lanes"
)

// LocaleJSON is the wire form of a locale.Locale. DrivingSide may be left
// empty, in which case it is inferred from Country via locale.SideForCountry.
type LocaleJSON struct {
	Country     string `json:"country"`
	Subdivision string `json:"subdivision,omitempty"`
	DrivingSide string `json:"driving_side,omitempty"` // "left" or "right"
}

// TransformRequest is the JSON body for POST /api/v1/transform.
type TransformRequest struct {
	Tags   map[string]string `json:"tags"`
	Locale LocaleJSON        `json:"locale"`
}

// TransformResponse is the JSON response for a successful transform.
type TransformResponse struct {
	Road        lanes.Road        `json:"road"`
	Diagnostics []diag.Diagnostic `json:"diagnostics,omitempty"`
}

// ProjectRequest is the JSON body for POST /api/v1/project.
type ProjectRequest struct {
	Road         lanes.Road        `json:"road"`
	Locale       LocaleJSON        `json:"locale"`
	OriginalTags map[string]string `json:"original_tags,omitempty"`
}

// ProjectResponse is the JSON response for a successful project.
type ProjectResponse struct {
	Tags        map[string]string `json:"tags"`
	Diagnostics []diag.Diagnostic `json:"diagnostics,omitempty"`
}

// ErrorResponse is the JSON response for errors.
type ErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// HealthResponse is the JSON response for GET /api/v1/health.
type HealthResponse struct {
	Status string `json:"status"`
}
