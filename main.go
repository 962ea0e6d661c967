package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"time"

	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"weekupAPI/handlers"
	"weekupAPI/internal/gemini"
	"weekupAPI/internal/supabase"
	"weekupAPI/middleware"
	"weekupAPI/services"
)

var (
	dbPool         *pgxpool.Pool
	authClient     *supabase.Client
	geminiService  *gemini.Service
	entryService   *services.EntryService
	profileService *services.ProfileService
	reportService  *services.ReportService
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	supabaseURL := os.Getenv("SUPABASE_URL")
	supabaseKey := os.Getenv("SUPABASE_ANON_KEY")
	var err error
	authClient, err = supabase.NewClient(supabaseURL, supabaseKey)
	if err != nil {
		log.Fatal("Failed to initialize Supabase auth client:", err)
	}
	log.Println("Supabase auth client initialized successfully")

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL environment variable is not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	poolConfig, err := pgxpool.ParseConfig(dbURL)
	if err != nil {
		log.Fatal("Failed to parse database URL:", err)
	}

	poolConfig.MaxConns = 25
	poolConfig.MinConns = 5
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = 30 * time.Minute
	poolConfig.HealthCheckPeriod = time.Minute

	dbPool, err = pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		log.Fatal("Failed to create connection pool:", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Fatal("Failed to ping database:", err)
	}

	log.Println("Successfully connected to database")

	geminiService, err = gemini.NewService(context.Background(), os.Getenv("GEMINI_API_KEY"))
	if err != nil {
		log.Fatal("Failed to initialize Gemini client:", err)
	}
	log.Println("Gemini client initialized successfully")

	entryService = services.NewEntryService(dbPool)
	profileService = services.NewProfileService(dbPool)
	reportService = services.NewReportService(dbPool, geminiService)

	middleware.InitPrometheus()
}

func main() {
	defer func() {
		log.Println("Closing database connection pool...")
		dbPool.Close()
		geminiService.Close()
	}()

	authHandler := handlers.NewAuthHandler(authClient, profileService)
	entryHandler := handlers.NewEntryHandler(entryService, profileService)
	reportHandler := handlers.NewReportHandler(reportService)

	r := mux.NewRouter()

	go middleware.CleanupVisitors()

	r.Use(middleware.RateLimitMiddleware)
	r.Use(middleware.MonitorMiddleware)

	r.Handle("/metrics", middleware.BasicAuthMiddleware(promhttp.Handler()))

	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"msg": "Automatic Weekly Update Generator backend is running."}`))
	}).Methods("GET")

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := dbPool.Ping(ctx); err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"status": "unhealthy", "error": "database connection failed"}`))
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy", "service": "weekup-api"}`))
	}).Methods("GET")

	auth := r.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/signup", authHandler.Signup).Methods("POST")
	auth.HandleFunc("/me", authHandler.Me).Methods("GET")

	entries := r.PathPrefix("/entries").Subrouter()
	entries.HandleFunc("/", entryHandler.CreateEntry).Methods("POST")
	entries.HandleFunc("/", entryHandler.ListEntries).Methods("GET")
	entries.HandleFunc("/", entryHandler.UpdateEntry).Methods("PUT")
	entries.HandleFunc("/settings/{user_id}", entryHandler.GetSettings).Methods("GET")
	entries.HandleFunc("/settings/{user_id}", entryHandler.UpdateSettings).Methods("PUT")
	entries.HandleFunc("/weekly/{user_id}", entryHandler.GetWeeklyEntries).Methods("GET")
	entries.HandleFunc("/gemini/summary", reportHandler.GenerateSummary).Methods("POST")
	entries.HandleFunc("/weekly_reports/{user_id}", reportHandler.ListReports).Methods("GET")

	corsOrigins := []string{"http://localhost:3000"}
	if env := os.Getenv("CORS_ORIGINS"); env != "" {
		corsOrigins = strings.Split(env, ",")
	}

	corsHandler := gorillaHandlers.CORS(
		gorillaHandlers.AllowedOrigins(corsOrigins),
		gorillaHandlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		gorillaHandlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
		gorillaHandlers.ExposedHeaders([]string{"Content-Length"}),
		gorillaHandlers.AllowCredentials(),
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	port = ":" + port

	server := http.Server{
		Addr:         port,
		Handler:      corsHandler(r),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("Starting server on port %s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Error starting server:", err)
		}
	}()

	// Graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt)

	sig := <-sigChan
	log.Println("Got signal:", sig)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	log.Println("Server shutdown complete")
}
