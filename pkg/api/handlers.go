package api

import (
	"encoding/json"
	"mime"
	"net/http"

	"osm2lanes/pkg/config"
	"osm2lanes/pkg/diag"
	"osm2lanes/pkg/locale"
	"osm2lanes/pkg/transform"
)

// Handlers holds the HTTP handlers and their dependencies.
type Handlers struct {
	cfg config.Config
}

// NewHandlers creates handlers that run the transform pipeline under cfg.
func NewHandlers(cfg config.Config) *Handlers {
	return &Handlers{cfg: cfg}
}

// HandleTransform handles POST /api/v1/transform.
func (h *Handlers) HandleTransform(w http.ResponseWriter, r *http.Request) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "application/json" {
		writeError(w, http.StatusBadRequest, "invalid_request", "")
		return
	}

	var req TransformRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "")
		return
	}
	if req.Locale.Country == "" {
		writeError(w, http.StatusBadRequest, "invalid_locale", "locale.country")
		return
	}

	loc := resolveLocale(req.Locale)
	road, ds, err := transform.TagsToLanes(req.Tags, loc, h.cfg)
	if err != nil {
		var de *diag.Err
		if diag.As(err, &de) {
			writeError(w, http.StatusUnprocessableEntity, string(de.Code), joinKeys(de.OffendingKeys))
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", "")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(TransformResponse{Road: road, Diagnostics: ds})
}

// HandleProject handles POST /api/v1/project.
func (h *Handlers) HandleProject(w http.ResponseWriter, r *http.Request) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "application/json" {
		writeError(w, http.StatusBadRequest, "invalid_request", "")
		return
	}

	var req ProjectRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "")
		return
	}
	if req.Locale.Country == "" {
		writeError(w, http.StatusBadRequest, "invalid_locale", "locale.country")
		return
	}

	loc := resolveLocale(req.Locale)
	tagMap, ds := transform.LanesToTags(req.Road, loc, h.cfg, req.OriginalTags)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ProjectResponse{Tags: tagMap, Diagnostics: ds})
}

// HandleHealth handles GET /api/v1/health.
func (h *Handlers) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(HealthResponse{Status: "ok"})
}

func resolveLocale(l LocaleJSON) locale.Locale {
	side := locale.SideForCountry(l.Country)
	switch l.DrivingSide {
	case "left":
		side = locale.Left
	case "right":
		side = locale.Right
	}
	return locale.New(l.Country, l.Subdivision, side)
}

func joinKeys(keys []string) string {
	if len(keys) == 0 {
		return ""
	}
	return keys[0]
}

func writeError(w http.ResponseWriter, status int, code, field string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{Error: code, Field: field})
}
