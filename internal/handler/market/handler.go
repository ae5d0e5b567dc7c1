package market

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	marketmodel "github.com/kissandost/backend/internal/model/market"
	"github.com/kissandost/backend/pkg/utils"
)

// Handler serves the market/weather dashboard data.
type Handler struct {
	markets marketmodel.Store
}

// New creates the market handler.
func New(markets marketmodel.Store) *Handler {
	return &Handler{markets: markets}
}

// RegisterRoutes mounts the dashboard routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/market/rates", h.handleRates)
	r.Get("/weather/alerts", h.handleAlerts)
	r.Get("/weather/forecast", h.handleForecast)
}

func (h *Handler) handleRates(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.markets.Rates())
}

func (h *Handler) handleAlerts(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.markets.Alerts())
}

func (h *Handler) handleForecast(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.markets.Forecast())
}
