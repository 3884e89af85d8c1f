package readmission

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/kumkum-thakur/recovery-pilot-sub011/internal/shared/errors"
	"github.com/kumkum-thakur/recovery-pilot-sub011/internal/shared/metrics"
)

// Handler provides HTTP handlers for the readmission module
type Handler struct {
	predictor *Predictor
}

// NewHandler creates a new readmission handler
func NewHandler(predictor *Predictor) *Handler {
	return &Handler{predictor: predictor}
}

// Routes registers the readmission routes
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/predict", h.Predict)
	r.Post("/hospital", h.Hospital)
	r.Post("/lace", h.LACE)
	r.Post("/logistic", h.Logistic)

	r.Post("/outcomes", h.RecordOutcome)
	r.Get("/outcomes", h.OutcomeLog)
	r.Get("/metrics", h.Metrics)

	r.Post("/train", h.Train)
	r.Delete("/model", h.ResetModel)

	return r
}

// --- Request types ---

type PredictRequest struct {
	Patient PatientProfile `json:"patient"`
}

type OutcomeRequest struct {
	PatientID            string          `json:"patient_id"`
	PredictedProbability float64         `json:"predicted_probability"`
	ActualReadmitted     bool            `json:"actual_readmitted"`
	DaysToReadmission    *int            `json:"days_to_readmission,omitempty"`
	UpdateWeights        bool            `json:"update_weights"`
	Patient              *PatientProfile `json:"patient,omitempty"`
}

type TrainRequest struct {
	Epochs int `json:"epochs"`
}

// --- Handlers ---

// Predict runs the full three-model ensemble
func (h *Handler) Predict(w http.ResponseWriter, r *http.Request) {
	var req PredictRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.BadRequest("invalid request body"))
		return
	}

	result, err := h.predictor.Predict(req.Patient)
	if err != nil {
		writeError(w, err)
		return
	}

	metrics.RecordReadmissionPrediction(string(result.RiskLevel))
	writeJSON(w, http.StatusOK, result)
}

// Hospital computes the HOSPITAL score alone
func (h *Handler) Hospital(w http.ResponseWriter, r *http.Request) {
	var req PredictRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.BadRequest("invalid request body"))
		return
	}

	result, err := ComputeHOSPITALScore(req.Patient)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// LACE computes the LACE index alone
func (h *Handler) LACE(w http.ResponseWriter, r *http.Request) {
	var req PredictRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.BadRequest("invalid request body"))
		return
	}

	result, err := ComputeLACEIndex(req.Patient)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// Logistic scores the profile with the linear model alone
func (h *Handler) Logistic(w http.ResponseWriter, r *http.Request) {
	var req PredictRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.BadRequest("invalid request body"))
		return
	}

	result, err := h.predictor.PredictLogistic(req.Patient)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// RecordOutcome logs a confirmed outcome, optionally folding it into
// the model weights when the caller supplies the discharge profile.
func (h *Handler) RecordOutcome(w http.ResponseWriter, r *http.Request) {
	var req OutcomeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.BadRequest("invalid request body"))
		return
	}

	err := h.predictor.RecordOutcome(r.Context(), OutcomeRecord{
		PatientID:            req.PatientID,
		PredictedProbability: req.PredictedProbability,
		ActualReadmitted:     req.ActualReadmitted,
		DaysToReadmission:    req.DaysToReadmission,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	if req.UpdateWeights && req.Patient != nil {
		if err := h.predictor.UpdateFromPatientOutcome(r.Context(), *req.Patient, req.ActualReadmitted); err != nil {
			writeError(w, err)
			return
		}
	}

	metrics.RecordReadmissionOutcome(req.ActualReadmitted)
	writeJSON(w, http.StatusCreated, map[string]string{"status": "recorded"})
}

// OutcomeLog returns the full outcome log in append order
func (h *Handler) OutcomeLog(w http.ResponseWriter, r *http.Request) {
	records, err := h.predictor.GetOutcomeLog(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"outcomes": records,
		"count":    len(records),
	})
}

// Metrics reports Brier score and AUC over the outcome log
func (h *Handler) Metrics(w http.ResponseWriter, r *http.Request) {
	result, err := h.predictor.GetPerformanceMetrics(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// Train fits the logistic model against the synthetic dataset
func (h *Handler) Train(w http.ResponseWriter, r *http.Request) {
	var req TrainRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.BadRequest("invalid request body"))
		return
	}

	result, err := h.predictor.TrainOnSyntheticData(r.Context(), req.Epochs)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// ResetModel clears the outcome log and restores default weights
func (h *Handler) ResetModel(w http.ResponseWriter, r *http.Request) {
	if err := h.predictor.ResetModel(r.Context()); err != nil {
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
