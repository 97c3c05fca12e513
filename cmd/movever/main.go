package main

import (
	"fmt"
	"log"

	"github.com/labstack/echo/v4"

	"github.com/movever/movever/internal/pkg/config"
	"github.com/movever/movever/internal/pkg/database"
	"github.com/movever/movever/internal/pkg/health"
	"github.com/movever/movever/internal/pkg/logger"
	"github.com/movever/movever/internal/pkg/nats"
	billingGateway "github.com/movever/movever/services/billing/gateway"
	billingHandler "github.com/movever/movever/services/billing/handler"
	billingRepository "github.com/movever/movever/services/billing/repository"
	billingUsecase "github.com/movever/movever/services/billing/usecase"
	"github.com/movever/movever/services/geo"
	matchGateway "github.com/movever/movever/services/match/gateway"
	matchHandler "github.com/movever/movever/services/match/handler"
	matchRepository "github.com/movever/movever/services/match/repository"
	matchUsecase "github.com/movever/movever/services/match/usecase"
	tripGateway "github.com/movever/movever/services/trip/gateway"
	tripHandler "github.com/movever/movever/services/trip/handler"
	tripRepository "github.com/movever/movever/services/trip/repository"
	tripUsecase "github.com/movever/movever/services/trip/usecase"
)

func main() {
	appName := "movever"
	configPath := "config/movever.env"
	configs := config.InitConfig(configPath)

	appLogger, err := logger.NewAppLogger(appName, configs.Logger)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Close()
	logger.SetGlobalLogger(appLogger)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	// Initialize NATS
	natsClient, err := nats.NewClient(configs.NATS.URL)
	if err != nil {
		log.Fatalf("Failed to connect to NATS: %v", err)
	}
	defer natsClient.Close()

	// Geospatial resolver with Redis-backed cache
	geoResolver := geo.NewClient(configs.Geo, redisClient)

	// Billing service
	billingRepo := billingRepository.NewBillingRepository(configs, postgresClient.GetDB())
	paystackGW := billingGateway.NewPaystackGW(configs.Payment)
	billingGW := billingGateway.NewBillingGW(natsClient)
	billingUC := billingUsecase.NewBillingUC(configs, billingRepo, paystackGW, billingGW)

	// Match service
	matchRepo := matchRepository.NewMatchRepository(configs, postgresClient.GetDB())
	otcRepo := matchRepository.NewOTCRepository(configs, redisClient)
	matchGW := matchGateway.NewMatchGW(natsClient)
	matchUC := matchUsecase.NewMatchUC(configs, matchRepo, otcRepo, billingUC, matchGW, geoResolver)

	// Trip service
	tripRepo := tripRepository.NewTripRepository(configs, postgresClient.GetDB())
	tripGW := tripGateway.NewTripGW(natsClient)
	tripUC := tripUsecase.NewTripUC(configs, tripRepo, tripGW)

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true
	e.Use(logger.EchoMiddleware(appLogger))

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName)

	// Register service routes
	matchHandler.NewHandler(matchUC, configs).RegisterRoutes(e)
	billingHandler.NewHandler(billingUC, configs).RegisterRoutes(e)
	tripHandler.NewHandler(tripUC, configs).RegisterRoutes(e)

	// Start server
	log.Printf("Starting %s on port %d", appName, configs.Server.Port)
	if err := e.Start(fmt.Sprintf(":%d", configs.Server.Port)); err != nil {
		log.Fatalf("Failed to start %s: %v", appName, err)
	}
}
