package models

// Config holds all configuration for the application
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	JWT      JWTConfig
	Geo      GeoConfig
	Match    MatchConfig
	OTC      OTCConfig
	Payment  PaymentConfig
	Logger   LoggerConfig
}

// AppConfig holds application-level configuration
type AppConfig struct {
	Name        string `json:"name"`
	Environment string `json:"environment"`
	Debug       bool   `json:"debug"`
	Version     string `json:"version"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host            string `json:"host"`
	Port            int    `json:"port"`
	ReadTimeout     int    `json:"read_timeout"`
	WriteTimeout    int    `json:"write_timeout"`
	ShutdownTimeout int    `json:"shutdown_timeout"`
}

// DatabaseConfig holds PostgreSQL configuration
type DatabaseConfig struct {
	Host      string `json:"host"`
	Port      int    `json:"port"`
	Username  string `json:"username"`
	Password  string `json:"password"`
	Database  string `json:"database"`
	SSLMode   string `json:"ssl_mode"`
	MaxConns  int    `json:"max_conns"`
	IdleConns int    `json:"idle_conns"`
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Password string `json:"password"`
	DB       int    `json:"db"`
	PoolSize int    `json:"pool_size"`
}

// NATSConfig holds NATS configuration
type NATSConfig struct {
	URL string `json:"url"`
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret     string `json:"secret"`
	Expiration int    `json:"expiration"` // minutes
	Issuer     string `json:"issuer"`
}

// GeoConfig holds geocoding and routing provider configuration
type GeoConfig struct {
	NominatimURL   string  `json:"nominatim_url"`
	OSRMURL        string  `json:"osrm_url"`
	UserAgent      string  `json:"user_agent"`
	TimeoutSeconds int     `json:"timeout_seconds"`
	CacheTTLHours  int     `json:"cache_ttl_hours"`
	RouteBufferKm  float64 `json:"route_buffer_km"`
}

// MatchConfig holds the ranking weights and thresholds for candidate search.
// Weights are isolated here so they can be tuned and tested independently of
// the scoring algorithm shape.
type MatchConfig struct {
	OriginWeight    float64 `json:"origin_weight"`
	DestWeight      float64 `json:"dest_weight"`
	RouteBoost      float64 `json:"route_boost"`
	DateWeight      float64 `json:"date_weight"`
	TimeWeight      float64 `json:"time_weight"`
	SpaceWeight     float64 `json:"space_weight"`
	VerifiedBonus   float64 `json:"verified_bonus"`
	FlexDays        int     `json:"flex_days"`
	MinTripScore    float64 `json:"min_trip_score"`
	MinRequestScore float64 `json:"min_request_score"`
}

// OTCConfig holds one-time-code issuance configuration
type OTCConfig struct {
	CodeLength      int `json:"code_length"`
	ExpiryMinutes   int `json:"expiry_minutes"`
	CooldownMinutes int `json:"cooldown_minutes"`
}

// PaymentConfig holds payment gateway configuration
type PaymentConfig struct {
	GatewayURL     string  `json:"gateway_url"`
	SecretKey      string  `json:"secret_key"`
	CommissionRate float64 `json:"commission_rate"`
	MockMode       bool    `json:"mock_mode"`
}

// LoggerConfig holds logger configuration
type LoggerConfig struct {
	Level    string `json:"level"`
	FilePath string `json:"file_path"`
	Type     string `json:"type"` // file, console, or both
}
