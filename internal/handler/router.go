package handler

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/kissandost/backend/internal/analysis/symptom"
	chatHandler "github.com/kissandost/backend/internal/handler/chat"
	diagnosisHandler "github.com/kissandost/backend/internal/handler/diagnosis"
	guideHandler "github.com/kissandost/backend/internal/handler/guide"
	localeHandler "github.com/kissandost/backend/internal/handler/locale"
	marketHandler "github.com/kissandost/backend/internal/handler/market"
	streamHandler "github.com/kissandost/backend/internal/handler/stream"
	middlewarePkg "github.com/kissandost/backend/internal/middleware"
	guideModel "github.com/kissandost/backend/internal/model/guide"
	marketModel "github.com/kissandost/backend/internal/model/market"
	chatService "github.com/kissandost/backend/internal/service/chat"
	diagnosisService "github.com/kissandost/backend/internal/service/diagnosis"
	"github.com/kissandost/backend/pkg/utils"
)

// NewRouter wires HTTP routes to core services.
func NewRouter(
	markets marketModel.Store,
	guides guideModel.Store,
	matcher *symptom.Matcher,
	chatSvc *chatService.Service,
	diagSvc *diagnosisService.Service,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS)

	chatH := chatHandler.New(chatSvc)
	wsH := chatHandler.NewWebSocketHandler(chatSvc)
	marketH := marketHandler.New(markets)
	guideH := guideHandler.New(guides, matcher)
	localeH := localeHandler.New()
	streamH := streamHandler.New(chatSvc)

	r.Route("/api", func(api chi.Router) {
		api.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			utils.RespondJSON(w, http.StatusOK, map[string]any{
				"status":    "ok",
				"ai":        chatSvc.AdvisorReady(),
				"diagnosis": diagSvc != nil,
			})
		})

		chatH.RegisterRoutes(api)
		wsH.RegisterRoutes(api)
		marketH.RegisterRoutes(api)
		guideH.RegisterRoutes(api)
		localeH.RegisterRoutes(api)

		// Streaming variant of the send flow.
		api.Get("/chat/stream", func(w http.ResponseWriter, r *http.Request) {
			userMessage := r.URL.Query().Get("message")
			if userMessage == "" {
				utils.RespondError(w, http.StatusBadRequest, "message query parameter is required")
				return
			}

			if err := streamH.HandleStreamRequest(r.Context(), w, userMessage); err != nil {
				log.Printf("[stream] error handling request: %v", err)
				utils.RespondError(w, http.StatusInternalServerError, "streaming failed")
			}
		})

		// Crop doctor is only mounted when a vision-capable model is
		// configured.
		if diagSvc != nil {
			diagnosisHandler.New(diagSvc).RegisterRoutes(api)
		} else {
			api.Post("/diagnosis", func(w http.ResponseWriter, r *http.Request) {
				utils.RespondError(w, http.StatusServiceUnavailable, "image diagnosis unavailable")
			})
		}
	})

	return r
}
