package locale

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kissandost/backend/internal/i18n"
	"github.com/kissandost/backend/pkg/utils"
)

// Handler serves the UI translation tables.
type Handler struct{}

// New creates the locale handler.
func New() *Handler {
	return &Handler{}
}

// RegisterRoutes mounts the translation routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/translations", h.handleListLanguages)
	r.Get("/translations/{lang}", h.handleGetTranslations)
}

type languageInfo struct {
	Code string `json:"code"`
	Name string `json:"name"`
	RTL  bool   `json:"rtl"`
}

func (h *Handler) handleListLanguages(w http.ResponseWriter, r *http.Request) {
	langs := []languageInfo{}
	for _, l := range i18n.Languages() {
		langs = append(langs, languageInfo{Code: string(l), Name: l.Name(), RTL: l.RTL()})
	}
	utils.RespondJSON(w, http.StatusOK, langs)
}

func (h *Handler) handleGetTranslations(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "lang")
	if !i18n.Valid(code) {
		utils.RespondError(w, http.StatusNotFound, "unsupported language")
		return
	}
	utils.RespondJSON(w, http.StatusOK, i18n.T(i18n.Language(code)))
}
