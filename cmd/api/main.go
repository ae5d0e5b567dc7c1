package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/kissandost/backend/internal/analysis/symptom"
	"github.com/kissandost/backend/internal/config"
	"github.com/kissandost/backend/internal/handler"
	"github.com/kissandost/backend/internal/model/guide"
	"github.com/kissandost/backend/internal/model/market"
	"github.com/kissandost/backend/internal/service/ai"
	"github.com/kissandost/backend/internal/service/chat"
	"github.com/kissandost/backend/internal/service/diagnosis"
	"github.com/kissandost/backend/internal/storage"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	// Seed the reference data stores
	marketStore := market.NewMemoryStore(market.SeedRates(), market.SeedAlerts(), market.SeedForecast())
	guideStore := guide.NewMemoryStore(guide.Seed())
	matcher := symptom.NewMatcher(symptom.Seed())

	// Chat snapshots persist across restarts
	var kv storage.KV
	fileStore, err := storage.NewFileStore(cfg.Storage.Dir)
	if err != nil {
		log.Printf("warning: failed to open data dir: %v", err)
		log.Println("falling back to in-memory session storage")
		kv = storage.NewMemoryStore()
	} else {
		kv = fileStore
	}

	// Initialize AI advisor
	var aiService *ai.Service
	if cfg.AI.Enabled() {
		aiService, err = ai.NewService(ctx, marketStore, cfg.AI)
		if err != nil {
			log.Printf("warning: failed to initialize AI service: %v", err)
			log.Println("continuing without AI functionality - check GEMINI_API_KEY / ARK_* environment variables")
		} else {
			log.Println("AI service initialized successfully")
		}
	} else {
		log.Println("AI credentials not configured, skipping advisor initialization")
	}

	// Initialize crop-image diagnosis
	var diagService *diagnosis.Service
	if cfg.AI.VisionEnabled() {
		diagService, err = diagnosis.NewService(ctx, cfg.AI)
		if err != nil {
			log.Printf("warning: failed to initialize diagnosis service: %v", err)
			diagService = nil
		} else {
			log.Println("Diagnosis service initialized successfully")
		}
	} else {
		log.Println("Vision model not configured, skipping diagnosis initialization")
	}

	var advisor chat.ReplyGenerator
	if aiService != nil {
		advisor = aiService
	}
	chatService := chat.NewService(kv, advisor, cfg.Locale.Default)
	chatService.Initialize()

	router := handler.NewRouter(marketStore, guideStore, matcher, chatService, diagService)

	startServer(ctx, cfg.Server, router)
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	addr := serverCfg.Addr
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("Kissan Dost backend listening on %s", addr)
	if err := runServer(ctx, srv); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
