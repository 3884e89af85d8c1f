package lab

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/kumkum-thakur/recovery-pilot-sub011/internal/shared/errors"
	"github.com/kumkum-thakur/recovery-pilot-sub011/internal/shared/metrics"
)

// Handler provides HTTP handlers for the lab module
type Handler struct {
	interp *Interpreter
}

// NewHandler creates a new lab handler
func NewHandler(interp *Interpreter) *Handler {
	return &Handler{interp: interp}
}

// Routes registers the lab routes
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/interpret", h.Interpret)
	r.Post("/interpret-personalized", h.InterpretPersonalized)
	r.Post("/delta", h.DeltaCheck)
	r.Post("/trend", h.AnalyzeTrend)
	r.Post("/anion-gap", h.AnionGap)
	r.Post("/corrected-calcium", h.CorrectedCalcium)
	r.Post("/egfr", h.EGFR)
	r.Post("/hepatic-panel", h.HepaticPanel)
	r.Post("/correlations", h.Correlations)

	r.Route("/baseline/{patientID}", func(r chi.Router) {
		r.Post("/", h.UpdateBaseline)
		r.Get("/{testCode}", h.GetPersonalizedRange)
	})

	return r
}

// --- Request types ---

type InterpretRequest struct {
	Value        LabValue     `json:"value"`
	Demographics Demographics `json:"demographics"`
}

type DeltaRequest struct {
	Current  LabValue `json:"current"`
	Previous LabValue `json:"previous"`
}

type TrendRequest struct {
	Values []LabValue `json:"values"`
}

type AnionGapRequest struct {
	Sodium      float64 `json:"sodium"`
	Chloride    float64 `json:"chloride"`
	Bicarbonate float64 `json:"bicarbonate"`
}

type CorrectedCalciumRequest struct {
	TotalCalcium float64 `json:"total_calcium"`
	Albumin      float64 `json:"albumin"`
}

type EGFRRequest struct {
	Creatinine float64 `json:"creatinine"`
	Age        int     `json:"age"`
	Sex        Sex     `json:"sex"`
}

type PanelRequest struct {
	Values       []LabValue   `json:"values"`
	Demographics Demographics `json:"demographics"`
}

type BaselineUpdateRequest struct {
	Value LabValue `json:"value"`
}

// --- Handlers ---

// Interpret flags a single lab value
func (h *Handler) Interpret(w http.ResponseWriter, r *http.Request) {
	var req InterpretRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.BadRequest("invalid request body"))
		return
	}

	result, err := h.interp.Interpret(req.Value, req.Demographics)
	if err != nil {
		writeError(w, err)
		return
	}

	metrics.RecordLabInterpretation(string(result.Flag))
	if result.IsCritical {
		metrics.RecordCriticalValue(result.TestCode)
	}

	writeJSON(w, http.StatusOK, result)
}

// InterpretPersonalized flags a value against population and personal bands
func (h *Handler) InterpretPersonalized(w http.ResponseWriter, r *http.Request) {
	var req InterpretRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.BadRequest("invalid request body"))
		return
	}

	result, err := h.interp.InterpretPersonalized(r.Context(), req.Value, req.Demographics)
	if err != nil {
		writeError(w, err)
		return
	}

	metrics.RecordLabInterpretation(string(result.Flag))
	if result.IsCritical {
		metrics.RecordCriticalValue(result.TestCode)
	}

	writeJSON(w, http.StatusOK, result)
}

// DeltaCheck compares two consecutive values
func (h *Handler) DeltaCheck(w http.ResponseWriter, r *http.Request) {
	var req DeltaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.BadRequest("invalid request body"))
		return
	}

	result, err := h.interp.DeltaCheck(req.Current, req.Previous)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// AnalyzeTrend fits a trend over an ordered series
func (h *Handler) AnalyzeTrend(w http.ResponseWriter, r *http.Request) {
	var req TrendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.BadRequest("invalid request body"))
		return
	}

	result, err := h.interp.AnalyzeTrend(req.Values)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// AnionGap computes and interprets the anion gap
func (h *Handler) AnionGap(w http.ResponseWriter, r *http.Request) {
	var req AnionGapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.BadRequest("invalid request body"))
		return
	}

	writeJSON(w, http.StatusOK, h.interp.AnionGap(req.Sodium, req.Chloride, req.Bicarbonate))
}

// CorrectedCalcium adjusts calcium for albumin
func (h *Handler) CorrectedCalcium(w http.ResponseWriter, r *http.Request) {
	var req CorrectedCalciumRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.BadRequest("invalid request body"))
		return
	}

	writeJSON(w, http.StatusOK, h.interp.CorrectedCalcium(req.TotalCalcium, req.Albumin))
}

// EGFR estimates glomerular filtration rate
func (h *Handler) EGFR(w http.ResponseWriter, r *http.Request) {
	var req EGFRRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.BadRequest("invalid request body"))
		return
	}

	result, err := h.interp.EGFR(req.Creatinine, req.Age, req.Sex)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// HepaticPanel interprets a liver function panel
func (h *Handler) HepaticPanel(w http.ResponseWriter, r *http.Request) {
	var req PanelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.BadRequest("invalid request body"))
		return
	}

	result, err := h.interp.InterpretHepaticPanel(req.Values)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// Correlations interprets a value set and evaluates the correlation rules
func (h *Handler) Correlations(w http.ResponseWriter, r *http.Request) {
	var req PanelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.BadRequest("invalid request body"))
		return
	}

	interpreted := make([]InterpretedResult, 0, len(req.Values))
	for _, v := range req.Values {
		result, err := h.interp.Interpret(v, req.Demographics)
		if err != nil {
			writeError(w, err)
			return
		}
		interpreted = append(interpreted, *result)
	}

	findings := h.interp.FindCorrelations(interpreted)

	writeJSON(w, http.StatusOK, map[string]any{
		"results":      interpreted,
		"correlations": findings,
	})
}

// UpdateBaseline folds a new observation into a patient's baseline
func (h *Handler) UpdateBaseline(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, "patientID")

	var req BaselineUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.BadRequest("invalid request body"))
		return
	}
	req.Value.PatientID = patientID

	if err := h.interp.UpdateBaseline(r.Context(), req.Value); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "recorded"})
}

// GetPersonalizedRange returns a patient's personal band for a test
func (h *Handler) GetPersonalizedRange(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, "patientID")
	testCode := chi.URLParam(r, "testCode")

	personal, err := h.interp.GetPersonalizedRange(r.Context(), patientID, testCode)
	if err != nil {
		writeError(w, err)
		return
	}
	if personal == nil {
		writeJSON(w, http.StatusOK, map[string]any{
			"personalized_range": nil,
			"reason":             "insufficient samples",
		})
		return
	}

	writeJSON(w, http.StatusOK, personal)
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
