package main

import (
	"career-advisor/internal/api/handlers"
	"career-advisor/internal/auth"
	"career-advisor/internal/catalog"
	"career-advisor/internal/config"
	"career-advisor/internal/identity"
	"career-advisor/internal/logger"
	"career-advisor/internal/service/account"
	chatService "career-advisor/internal/service/chat"
	"career-advisor/internal/service/llm"
	"career-advisor/internal/store"
	"context"
	"net/http"

	"github.com/joho/godotenv"
)

func enableCORS(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	}
}

func main() {
	// .env is optional; real deployments set the environment directly
	if err := godotenv.Load(); err != nil {
		logger.Log.Debug("No .env file found")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Log.WithError(err).Fatal("Failed to load configuration")
	}

	ctx := context.Background()

	st, err := store.NewFirestoreStore(ctx, cfg.Firebase)
	if err != nil {
		logger.Log.WithError(err).Fatal("Failed to initialize document store")
	}
	defer st.Close()

	provider, err := identity.NewFirebaseProvider(ctx, cfg.Firebase)
	if err != nil {
		logger.Log.WithError(err).Fatal("Failed to initialize identity provider")
	}

	// Seed course recommendations on first boot
	if _, err := st.SeedCourses(ctx, catalog.DefaultCourses()); err != nil {
		logger.Log.WithError(err).Fatal("Failed to seed courses")
	}

	gateway := llm.NewGroqGateway(&cfg.LLM)
	tokens := auth.NewTokenManager(cfg.Auth)

	accounts := account.NewAccountService(provider, st)
	chat := chatService.NewChatService(st, gateway, &cfg.Chat, cfg.LLM.SystemPrompt)

	authHandlers := handlers.NewAuthHandlers(accounts, tokens)
	chatHandlers := handlers.NewChatHandlers(chat, st)

	mux := http.NewServeMux()

	corsHandler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.WriteHeader(http.StatusOK)
	}

	// Public routes
	mux.HandleFunc("POST /api/register", enableCORS(authHandlers.RegisterHandler))
	mux.HandleFunc("OPTIONS /api/register", corsHandler)
	mux.HandleFunc("POST /api/login", enableCORS(authHandlers.LoginHandler))
	mux.HandleFunc("OPTIONS /api/login", corsHandler)
	mux.HandleFunc("GET /api/health", enableCORS(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}))
	mux.HandleFunc("OPTIONS /api/health", corsHandler)

	// Protected routes
	mux.HandleFunc("POST /api/chat", enableCORS(tokens.Middleware(chatHandlers.ChatHandler)))
	mux.HandleFunc("OPTIONS /api/chat", corsHandler)
	mux.HandleFunc("GET /api/history", enableCORS(tokens.Middleware(chatHandlers.HistoryHandler)))
	mux.HandleFunc("OPTIONS /api/history", corsHandler)
	mux.HandleFunc("GET /api/industries", enableCORS(tokens.Middleware(chatHandlers.IndustriesHandler)))
	mux.HandleFunc("OPTIONS /api/industries", corsHandler)
	mux.HandleFunc("POST /api/industries/overview", enableCORS(tokens.Middleware(chatHandlers.IndustryOverviewHandler)))
	mux.HandleFunc("OPTIONS /api/industries/overview", corsHandler)
	mux.HandleFunc("GET /api/courses", enableCORS(tokens.Middleware(chatHandlers.CoursesHandler)))
	mux.HandleFunc("OPTIONS /api/courses", corsHandler)

	logger.Log.WithField("port", cfg.Server.Port).Info("Server starting")

	if err := http.ListenAndServe(":"+cfg.Server.Port, mux); err != nil {
		logger.Log.WithError(err).Fatal("Server failed to start")
	}
}
