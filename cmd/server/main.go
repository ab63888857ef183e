package main

import (
	"database/sql"
	"log"
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"turnero/internal/api"
	"turnero/internal/config"
	"turnero/internal/db"
	"turnero/internal/jobs"
	"turnero/internal/repository"
	"turnero/internal/service"
	"turnero/internal/tool"
	"turnero/internal/tool/booking"
)

func main() {
	godotenv.Load()

	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}

	logger, err := newLogger(cfg.DevMode)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	conn, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("failed to open DB", zap.Error(err))
	}
	defer conn.Close()
	if err := conn.Ping(); err != nil {
		logger.Fatal("failed to connect to DB", zap.Error(err))
	}
	if err := db.Migrate(conn); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	repo := repository.NewReservationRepository(conn)
	reservations := service.NewReservationService(repo, logger)
	availability := service.NewAvailabilityService(repo, logger)
	catalog := service.NewCatalogService(service.DefaultCatalog())

	registry := tool.NewRegistry()
	if err := booking.Register(registry, reservations, availability, catalog); err != nil {
		logger.Fatal("failed to register tools", zap.Error(err))
	}
	dispatcher := tool.NewDispatcher(registry, cfg.PermissiveArgs, logger)

	retention := jobs.NewRetention(repo, cfg.RetentionDays, logger)
	if err := retention.Start(); err != nil {
		logger.Fatal("failed to start retention job", zap.Error(err))
	}
	defer retention.Stop()

	server := api.NewServer(dispatcher, registry, reservations, logger)

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)
	handler := handlers.RecoveryHandler()(cors(server.Router()))

	logger.Info("server running", zap.String("addr", cfg.HTTPAddr),
		zap.Bool("permissive_args", cfg.PermissiveArgs))
	if err := http.ListenAndServe(cfg.HTTPAddr, handler); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func newLogger(devMode bool) (*zap.Logger, error) {
	if devMode {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
