package constants

// Redis key formats
const (
	// One-time codes
	KeyOTCCode     = "otc:code:%s:%s"     // Format: otc:code:{match_id}:{phase}
	KeyOTCCooldown = "otc:cooldown:%s:%s" // Format: otc:cooldown:{match_id}:{phase}

	// Geospatial resolver cache
	KeyGeoPlace = "geo:place:%s" // Format: geo:place:{normalized_name}
	KeyGeoRoute = "geo:route:%s" // Format: geo:route:{geohash_pair}
)
