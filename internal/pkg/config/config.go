package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/movever/movever/internal/pkg/models"
)

func InitConfig(configPath string) *models.Config {
	local := GetEnv("APP_ENV", "local")
	if local == "local" {
		// Load config from file
		err := godotenv.Load(configPath)
		if err != nil {
			log.Println("error loading config from file", err)
		}
	}
	// Create config from environment variables
	return loadConfigFromEnv()
}

func loadConfigFromEnv() *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = GetEnv("APP_NAME", "movever")
	configs.App.Environment = GetEnv("APP_ENV", "")
	configs.App.Debug = GetEnvAsBool("APP_DEBUG", true)
	configs.App.Version = GetEnv("APP_VERSION", "")

	// Server config
	configs.Server.Host = GetEnv("SERVER_HOST", "")
	configs.Server.Port = GetEnvAsInt("SERVER_PORT", 9990)
	configs.Server.ReadTimeout = GetEnvAsInt("SERVER_READ_TIMEOUT", 0)
	configs.Server.WriteTimeout = GetEnvAsInt("SERVER_WRITE_TIMEOUT", 0)
	configs.Server.ShutdownTimeout = GetEnvAsInt("SERVER_SHUTDOWN_TIMEOUT", 0)

	// Database config
	configs.Database.Host = GetEnv("DB_HOST", "")
	configs.Database.Port = GetEnvAsInt("DB_PORT", 5432)
	configs.Database.Username = GetEnv("DB_USERNAME", "")
	configs.Database.Password = GetEnv("DB_PASSWORD", "")
	configs.Database.Database = GetEnv("DB_DATABASE", "")
	configs.Database.SSLMode = GetEnv("DB_SSL_MODE", "disable")
	configs.Database.MaxConns = GetEnvAsInt("DB_MAX_CONNS", 0)
	configs.Database.IdleConns = GetEnvAsInt("DB_IDLE_CONNS", 0)

	// Redis config
	configs.Redis.Host = GetEnv("REDIS_HOST", "")
	configs.Redis.Port = GetEnvAsInt("REDIS_PORT", 6379)
	configs.Redis.Password = GetEnv("REDIS_PASSWORD", "")
	configs.Redis.DB = GetEnvAsInt("REDIS_DB", 0)
	configs.Redis.PoolSize = GetEnvAsInt("REDIS_POOL_SIZE", 0)

	// NATS config
	configs.NATS.URL = GetEnv("NATS_URL", "")

	// JWT config
	configs.JWT.Secret = GetEnv("JWT_SECRET", "")
	configs.JWT.Expiration = GetEnvAsInt("JWT_EXPIRATION", 0)
	configs.JWT.Issuer = GetEnv("JWT_ISSUER", "")

	// Geo config
	configs.Geo.NominatimURL = GetEnv("GEO_NOMINATIM_URL", "https://nominatim.openstreetmap.org")
	configs.Geo.OSRMURL = GetEnv("GEO_OSRM_URL", "http://router.project-osrm.org")
	configs.Geo.UserAgent = GetEnv("GEO_USER_AGENT", "MoveVer-App/1.0")
	configs.Geo.TimeoutSeconds = GetEnvAsInt("GEO_TIMEOUT_SECONDS", 5)
	configs.Geo.CacheTTLHours = GetEnvAsInt("GEO_CACHE_TTL_HOURS", 24)
	configs.Geo.RouteBufferKm = GetEnvAsFloat("GEO_ROUTE_BUFFER_KM", 25.0)

	// Match ranking config
	configs.Match.OriginWeight = GetEnvAsFloat("MATCH_ORIGIN_WEIGHT", 30.0)
	configs.Match.DestWeight = GetEnvAsFloat("MATCH_DEST_WEIGHT", 30.0)
	configs.Match.RouteBoost = GetEnvAsFloat("MATCH_ROUTE_BOOST", 40.0)
	configs.Match.DateWeight = GetEnvAsFloat("MATCH_DATE_WEIGHT", 20.0)
	configs.Match.TimeWeight = GetEnvAsFloat("MATCH_TIME_WEIGHT", 20.0)
	configs.Match.SpaceWeight = GetEnvAsFloat("MATCH_SPACE_WEIGHT", 10.0)
	configs.Match.VerifiedBonus = GetEnvAsFloat("MATCH_VERIFIED_BONUS", 5.0)
	configs.Match.FlexDays = GetEnvAsInt("MATCH_FLEX_DAYS", 3)
	configs.Match.MinTripScore = GetEnvAsFloat("MATCH_MIN_TRIP_SCORE", 20.0)
	configs.Match.MinRequestScore = GetEnvAsFloat("MATCH_MIN_REQUEST_SCORE", 30.0)

	// OTC config
	configs.OTC.CodeLength = GetEnvAsInt("OTC_CODE_LENGTH", 6)
	configs.OTC.ExpiryMinutes = GetEnvAsInt("OTC_EXPIRY_MINUTES", 10)
	configs.OTC.CooldownMinutes = GetEnvAsInt("OTC_COOLDOWN_MINUTES", 5)

	// Payment config
	configs.Payment.GatewayURL = GetEnv("PAYMENT_GATEWAY_URL", "https://api.paystack.co")
	configs.Payment.SecretKey = GetEnv("PAYMENT_SECRET_KEY", "")
	configs.Payment.CommissionRate = GetEnvAsFloat("PAYMENT_COMMISSION_RATE", 0.05)
	configs.Payment.MockMode = GetEnvAsBool("PAYMENT_MOCK_MODE", false)

	// Logger config
	configs.Logger.Level = GetEnv("LOG_LEVEL", "info")
	configs.Logger.FilePath = GetEnv("LOG_FILE_PATH", "logs/movever.log")
	configs.Logger.Type = GetEnv("LOG_TYPE", "console")

	return configs
}

// Helper functions to get environment variables with different types
func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid float value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}
