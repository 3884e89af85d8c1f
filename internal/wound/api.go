package wound

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/kumkum-thakur/recovery-pilot-sub011/internal/shared/errors"
	"github.com/kumkum-thakur/recovery-pilot-sub011/internal/shared/metrics"
)

// Handler provides HTTP handlers for the wound module
type Handler struct {
	classifier *Classifier
}

// NewHandler creates a new wound handler
func NewHandler(classifier *Classifier) *Handler {
	return &Handler{classifier: classifier}
}

// Routes registers the wound routes
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/assess", h.Assess)
	r.Post("/wagner", h.Wagner)
	r.Post("/braden", h.Braden)
	r.Post("/push", h.PUSH)
	r.Post("/phase", h.Phase)

	r.Post("/corrections", h.RecordCorrection)
	r.Get("/corrections", h.ListCorrections)
	r.Get("/corrections/stats", h.CorrectionStats)
	r.Delete("/corrections", h.ResetLearning)

	return r
}

// --- Request types ---

type AssessRequest struct {
	Wound  Assessment   `json:"wound"`
	Braden *BradenInput `json:"braden,omitempty"`
}

type WoundRequest struct {
	Wound Assessment `json:"wound"`
}

type BradenRequest struct {
	Braden BradenInput `json:"braden"`
}

type CorrectionRequest struct {
	WoundID        string       `json:"wound_id"`
	PredictedPhase HealingPhase `json:"predicted_phase"`
	CorrectedPhase HealingPhase `json:"corrected_phase"`
	CorrectedBy    string       `json:"corrected_by"`
}

// --- Handlers ---

// Assess runs the full composite assessment
func (h *Handler) Assess(w http.ResponseWriter, r *http.Request) {
	var req AssessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.BadRequest("invalid request body"))
		return
	}

	result, err := h.classifier.AssessWound(r.Context(), req.Wound, req.Braden)
	if err != nil {
		writeError(w, err)
		return
	}

	metrics.RecordWoundAssessment(string(result.HealingPhase.Phase))
	writeJSON(w, http.StatusOK, result)
}

// Wagner grades wound severity 0-5
func (h *Handler) Wagner(w http.ResponseWriter, r *http.Request) {
	var req WoundRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.BadRequest("invalid request body"))
		return
	}

	result, err := ClassifyWagner(req.Wound)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// Braden scores pressure-injury risk
func (h *Handler) Braden(w http.ResponseWriter, r *http.Request) {
	var req BradenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.BadRequest("invalid request body"))
		return
	}

	result, err := ComputeBraden(req.Braden)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// PUSH computes the healing progress score
func (h *Handler) PUSH(w http.ResponseWriter, r *http.Request) {
	var req WoundRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.BadRequest("invalid request body"))
		return
	}

	result, err := ComputePUSH(req.Wound)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// Phase classifies the healing phase with correction-adjusted confidence
func (h *Handler) Phase(w http.ResponseWriter, r *http.Request) {
	var req WoundRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.BadRequest("invalid request body"))
		return
	}

	result, err := h.classifier.ClassifyHealingPhase(r.Context(), req.Wound)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// RecordCorrection appends a clinician phase override
func (h *Handler) RecordCorrection(w http.ResponseWriter, r *http.Request) {
	var req CorrectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.BadRequest("invalid request body"))
		return
	}

	err := h.classifier.RecordCorrection(r.Context(), CorrectionRecord{
		WoundID:        req.WoundID,
		PredictedPhase: req.PredictedPhase,
		CorrectedPhase: req.CorrectedPhase,
		CorrectedBy:    req.CorrectedBy,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	metrics.RecordWoundCorrection()
	writeJSON(w, http.StatusCreated, map[string]string{"status": "recorded"})
}

// ListCorrections returns the correction log in append order
func (h *Handler) ListCorrections(w http.ResponseWriter, r *http.Request) {
	records, err := h.classifier.GetCorrections(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"corrections": records,
		"count":       len(records),
	})
}

// CorrectionStats summarizes corrections by predicted phase
func (h *Handler) CorrectionStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.classifier.GetCorrectionStats(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

// ResetLearning clears the correction log
func (h *Handler) ResetLearning(w http.ResponseWriter, r *http.Request) {
	if err := h.classifier.ResetLearning(r.Context()); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "reset"})
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")

	if appErr, ok := err.(*errors.AppError); ok {
		w.WriteHeader(appErr.HTTPStatus)
		json.NewEncoder(w).Encode(map[string]any{
			"error":   appErr.Message,
			"code":    appErr.Code,
			"details": appErr.Details,
		})
		return
	}

	w.WriteHeader(http.StatusInternalServerError)
	json.NewEncoder(w).Encode(map[string]string{"error": "internal server error"})
}
