package api

import (
	"encoding/json"
	"net/http"

	"github.com/Jyhwenchai/Tools-sub004/internal/api/respond"
	"github.com/Jyhwenchai/Tools-sub004/timeconv"
)

// maxBatchSize bounds a single batch request body.
const maxBatchSize = 10000

// ConvertRequest is the JSON body of POST /api/convert.
type ConvertRequest struct {
	Input             string `json:"input"`
	SourceKind        string `json:"sourceKind,omitempty"`
	TargetKind        string `json:"targetKind"`
	SourceZone        string `json:"sourceZone,omitempty"`
	TargetZone        string `json:"targetZone,omitempty"`
	Pattern           string `json:"pattern,omitempty"`
	FractionalSeconds bool   `json:"fractionalSeconds,omitempty"`
	AutoDetect        bool   `json:"autoDetect,omitempty"`
	Validate          bool   `json:"validate,omitempty"`
	RecordHistory     bool   `json:"recordHistory,omitempty"`
}

// BatchRequest is the JSON body of POST /api/convert/batch. All inputs
// share one option set.
type BatchRequest struct {
	Inputs []string `json:"inputs"`
	ConvertRequest
}

// options translates the request into engine options. A missing
// sourceKind turns auto-detection on.
func (req *ConvertRequest) options() (timeconv.Options, error) {
	opts := timeconv.Options{
		SourceZone:               req.SourceZone,
		TargetZone:               req.TargetZone,
		Pattern:                  req.Pattern,
		IncludeFractionalSeconds: req.FractionalSeconds,
		AutoDetectFormat:         req.AutoDetect,
		ValidateInput:            req.Validate,
		RecordHistory:            req.RecordHistory,
	}
	if req.SourceKind == "" {
		opts.AutoDetectFormat = true
	} else {
		k, err := timeconv.ParseKind(req.SourceKind)
		if err != nil {
			return opts, err
		}
		opts.SourceKind = k
	}
	if req.TargetKind != "" {
		k, err := timeconv.ParseKind(req.TargetKind)
		if err != nil {
			return opts, err
		}
		opts.TargetKind = k
	}
	return opts, nil
}

// ConvertHandler serves the one-shot and batch conversion endpoints.
type ConvertHandler struct {
	engine *timeconv.Engine
}

// NewConvertHandler creates a conversion handler backed by engine.
func NewConvertHandler(engine *timeconv.Engine) *ConvertHandler {
	return &ConvertHandler{engine: engine}
}

// Convert handles POST /api/convert. Conversion failures are part of the
// domain, so they come back as 200 with ok=false; only malformed
// requests produce a 4xx.
func (h *ConvertHandler) Convert(w http.ResponseWriter, r *http.Request) {
	var req ConvertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "invalid json")
		return
	}
	opts, err := req.options()
	if err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	out := h.engine.Convert(r.Context(), req.Input, opts)
	respond.WriteJSON(w, http.StatusOK, out)
}

// ConvertBatch handles POST /api/convert/batch. The response array is
// index-aligned with the request inputs.
func (h *ConvertHandler) ConvertBatch(w http.ResponseWriter, r *http.Request) {
	var req BatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "invalid json")
		return
	}
	if len(req.Inputs) > maxBatchSize {
		respond.WriteBadRequest(w, "too many inputs")
		return
	}
	opts, err := req.options()
	if err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	results := h.engine.BatchConvert(r.Context(), req.Inputs, opts)
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"results": results,
		"count":   len(results),
	})
}
