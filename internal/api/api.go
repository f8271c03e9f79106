// Package api serves the cutout pipeline over HTTP.
//
//	POST /cut     {"original_url": "...", "mask_url": "...", ...overrides}
//	GET  /health
//
// A successful cut streams the PNG back with Content-Type image/png.
package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/ironsheep/mask-cutout/internal/cutout"
	"github.com/ironsheep/mask-cutout/internal/fetch"
)

const maxRequestBytes = 1 << 20

// Handler serves the cutout routes.
type Handler struct {
	fetcher  fetch.Fetcher
	defaults cutout.Settings
	debug    bool
}

// NewHandler creates a Handler that downloads through fetcher and applies
// defaults to every request that does not override them.
func NewHandler(fetcher fetch.Fetcher, defaults cutout.Settings, debug bool) *Handler {
	return &Handler{
		fetcher:  fetcher,
		defaults: defaults,
		debug:    debug,
	}
}

// CutRequest is the body of POST /cut. Settings fields are optional and
// override the server defaults for this request only.
type CutRequest struct {
	OriginalURL string `json:"original_url"`
	MaskURL     string `json:"mask_url"`
	cutout.Overrides
}

// ErrorResponse is the JSON body of every non-2xx response.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// Router wires the routes and the request logging middleware.
func (h *Handler) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/cut", h.handleCut).Methods(http.MethodPost)
	r.HandleFunc("/health", h.handleHealth).Methods(http.MethodGet)
	r.Use(requestLogger)
	return r
}

func (h *Handler) handleCut(w http.ResponseWriter, r *http.Request) {
	var req CutRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxRequestBytes)).Decode(&req); err != nil {
		sendErrorResponse(w, "invalid_request", "request body must be a JSON object", err.Error(), http.StatusBadRequest)
		return
	}
	if req.OriginalURL == "" || req.MaskURL == "" {
		sendErrorResponse(w, "missing_url", "original_url and mask_url required", "", http.StatusBadRequest)
		return
	}

	opts, err := h.defaults.Apply(req.Overrides).Options()
	if err != nil {
		sendErrorResponse(w, "invalid_config", "invalid cutout settings", err.Error(), http.StatusBadRequest)
		return
	}

	fetchStart := time.Now()
	original, mask, err := fetch.FetchPair(r.Context(), h.fetcher, req.OriginalURL, req.MaskURL)
	if err != nil {
		sendErrorResponse(w, "download_failed", "Download failed", err.Error(), http.StatusBadRequest)
		return
	}
	fetchTime := time.Since(fetchStart)

	png, res, err := cutout.Cut(original, mask, opts)
	if err != nil {
		status := http.StatusInternalServerError
		code := "processing_error"
		if errors.Is(err, cutout.ErrDecode) {
			code = "invalid_image"
		}
		sendErrorResponse(w, code, "Failed to cut image", err.Error(), status)
		return
	}

	if h.debug {
		log.Printf("[DEBUG] RequestID: %s - %s %dx%d kept=%d cropped=%v\n"+
			"\tFetch:     %v\n"+
			"\tAlign:     %v\n"+
			"\tClassify:  %v\n"+
			"\tClean:     %v\n"+
			"\tComposite: %v\n"+
			"\tCrop:      %v",
			w.Header().Get(requestIDHeader), res.Strategy, res.Width, res.Height, res.Kept, res.Cropped,
			fetchTime,
			res.Timings.Align,
			res.Timings.Classify,
			res.Timings.Clean,
			res.Timings.Composite,
			res.Timings.Crop)
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, bytes.NewReader(png)); err != nil {
		log.Printf("Failed to write response: %v", err)
	}
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func sendErrorResponse(w http.ResponseWriter, code, message, details string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{
		Code:    code,
		Message: message,
		Details: details,
	})
}
