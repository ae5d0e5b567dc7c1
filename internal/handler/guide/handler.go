package guide

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kissandost/backend/internal/analysis/symptom"
	guidemodel "github.com/kissandost/backend/internal/model/guide"
	"github.com/kissandost/backend/pkg/utils"
)

// Handler serves the offline reference library and the symptom checker
// tables. Content ships in all languages so the client can cache it.
type Handler struct {
	guides  guidemodel.Store
	matcher *symptom.Matcher
}

// New creates the guide handler.
func New(guides guidemodel.Store, matcher *symptom.Matcher) *Handler {
	return &Handler{guides: guides, matcher: matcher}
}

// RegisterRoutes mounts the library routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/guides", h.handleListGuides)
	r.Get("/guides/{id}", h.handleGetGuide)
	r.Get("/symptoms", h.handleListSymptoms)
	r.Get("/symptoms/{crop}", h.handleCropSymptoms)
	r.Get("/symptoms/{crop}/{symptomID}", h.handleMatch)
}

func (h *Handler) handleListGuides(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.guides.List())
}

func (h *Handler) handleGetGuide(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	g, ok := h.guides.FindByID(id)
	if !ok {
		utils.RespondError(w, http.StatusNotFound, "guide not found")
		return
	}
	utils.RespondJSON(w, http.StatusOK, g)
}

func (h *Handler) handleListSymptoms(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.matcher.Crops())
}

func (h *Handler) handleCropSymptoms(w http.ResponseWriter, r *http.Request) {
	crop := chi.URLParam(r, "crop")
	c, ok := h.matcher.FindCrop(crop)
	if !ok {
		utils.RespondError(w, http.StatusNotFound, "crop not found")
		return
	}
	utils.RespondJSON(w, http.StatusOK, c)
}

func (h *Handler) handleMatch(w http.ResponseWriter, r *http.Request) {
	crop := chi.URLParam(r, "crop")
	symptomID := chi.URLParam(r, "symptomID")

	s, ok := h.matcher.Match(crop, symptomID)
	if !ok {
		utils.RespondError(w, http.StatusNotFound, "symptom not found")
		return
	}
	utils.RespondJSON(w, http.StatusOK, s)
}
