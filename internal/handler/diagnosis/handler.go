package diagnosis

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kissandost/backend/internal/i18n"
	diagnosisservice "github.com/kissandost/backend/internal/service/diagnosis"
	"github.com/kissandost/backend/pkg/utils"
)

// Handler exposes the crop-image diagnosis.
type Handler struct {
	diagSvc *diagnosisservice.Service
}

// New creates the diagnosis handler.
func New(diagSvc *diagnosisservice.Service) *Handler {
	return &Handler{diagSvc: diagSvc}
}

// RegisterRoutes mounts the diagnosis route.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/diagnosis", h.handleDiagnose)
}

func (h *Handler) handleDiagnose(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Image    string `json:"image"`
		Language string `json:"language"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if payload.Image == "" {
		utils.RespondError(w, http.StatusBadRequest, "image is required")
		return
	}

	lang := i18n.Parse(payload.Language)

	report, err := h.diagSvc.AnalyzeCropImage(r.Context(), payload.Image, lang)
	if err != nil {
		if errors.Is(err, diagnosisservice.ErrAnalysisFailed) {
			utils.RespondError(w, http.StatusUnprocessableEntity, "Could not analyze image. Please try a clearer photo.")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "diagnosis failed")
		return
	}

	utils.RespondJSON(w, http.StatusOK, report)
}
