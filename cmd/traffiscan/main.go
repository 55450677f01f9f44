package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shenikar/traffiscan/internal/config"
	"github.com/shenikar/traffiscan/internal/feed"
	v1 "github.com/shenikar/traffiscan/internal/handler/http/v1"
	"github.com/shenikar/traffiscan/internal/observability"
	"github.com/shenikar/traffiscan/internal/poller"
	"github.com/shenikar/traffiscan/internal/repository"
	"github.com/shenikar/traffiscan/internal/service"
	"github.com/shenikar/traffiscan/internal/simulator"
	"github.com/shenikar/traffiscan/internal/weather/openmeteo"
	"github.com/shenikar/traffiscan/internal/webhook"
	"github.com/shenikar/traffiscan/pkg/logger"
	"github.com/shenikar/traffiscan/pkg/postgres"
	redisclient "github.com/shenikar/traffiscan/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/traffiscan/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// incidentFeed - лента изменений, которую нужно закрыть при остановке
type incidentFeed interface {
	service.IncidentFeed
	Close() error
}

// @title TraffiScan API
// @version 1.0
// @description Traffic incident ranking, weather impact and predictive alerts.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(cfg.MigrationsPath, migrationURL)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

func newFeed(cfg *config.Config, log *logrus.Logger, metrics *observability.Metrics) incidentFeed {
	if len(cfg.KafkaBrokers) == 0 {
		log.Info("KAFKA_BROKERS not set, incident change feed disabled")
		return feed.Noop{}
	}
	log.WithField("topic", cfg.KafkaIncidentTopic).Info("Incident change feed enabled")
	return feed.NewWriter(cfg, log, metrics)
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := runMigrations(cfg, log); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// Подключение к PostgreSQL
	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	metrics := observability.NewMetrics()
	clock := clockwork.NewRealClock()

	// Очередь вебхуков и воркер доставки
	webhookQueue := webhook.NewRedisQueue(redisClient)
	webhookWorker := webhook.NewWebhookWorker(webhookQueue, log, cfg, metrics)
	webhookWorker.Start(ctx)

	incidentFeed := newFeed(cfg, log, metrics)

	// Репозитории
	incidentRepo := repository.NewIncidentRepository(dbpool, redisClient)
	weatherCache := repository.NewWeatherCache(redisClient, cfg.WeatherCacheTTL)
	gameRepo := repository.NewGameRepository(dbpool)

	// Сервисы
	weatherProvider := openmeteo.NewClient(cfg.OpenMeteoURL, cfg.WeatherTimeout, log, metrics)
	weatherService := service.NewWeatherService(weatherProvider, weatherCache, log, metrics)
	incidentService := service.NewIncidentService(incidentRepo, log, cfg, webhookQueue, incidentFeed, metrics)

	alertService, err := service.NewAlertService(incidentService, weatherService, log, cfg, clock)
	if err != nil {
		log.Fatalf("Failed to create alert service: %v", err)
	}

	var sim service.IncidentSimulator
	if cfg.SimulatorEnabled {
		seed := uint64(time.Now().UnixNano())
		sim = simulator.NewGenerator(rand.New(rand.NewPCG(seed, seed>>1)), clock)
		log.Warn("Incident simulator enabled, traffic scans include generated incidents")
	}
	trafficService := service.NewTrafficService(incidentService, sim, log, clock)
	gameService := service.NewGameService(gameRepo, log, clock, metrics)

	// Фоновый опрос погоды для точки по умолчанию
	weatherPoller := poller.NewWeatherPoller(weatherService, webhookQueue, log, metrics, clock, cfg.DefaultLocation(), cfg.WeatherPollInterval)
	weatherPoller.Start(ctx)

	handler := v1.NewHandler(incidentService, weatherService, alertService, trafficService, gameService, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.CORSOrigins,
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", "X-API-Key"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	api := router.Group("/api/v1", v1.RateLimitMiddleware(cfg.RateLimitRPS))
	handler.RegisterRoutes(api)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Server forced to shutdown")
	}

	// Фоновые задачи останавливаем после HTTP-сервера
	cancel()
	weatherPoller.Stop()
	webhookWorker.Stop()

	if err := incidentFeed.Close(); err != nil {
		log.WithError(err).Error("Failed to close incident feed")
	}

	log.Info("Server gracefully stopped")
}
