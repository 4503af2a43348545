// Package config manages application configuration for the Yatube API.
//
// The config package loads and validates configuration from environment variables.
// All configuration is centralized here to provide a single source of truth.
//
// # Configuration Loading
//
// Configuration is loaded from environment variables:
//
//	cfg, err := config.Load()
//
// # Configuration Groups
//
// Configuration is organized into logical groups:
//
//   - ServerConfig: HTTP server settings (port, timeouts)
//   - DatabaseConfig: SurrealDB connection settings
//   - JWTConfig: JWT signing and validation settings
//   - CacheConfig: Redis page cache settings
//   - MediaConfig: MinIO object storage for post images
//
// # Environment Variables
//
// Key environment variables:
//
//	SERVER_PORT         - HTTP server port (default: 8080)
//	DB_HOST, DB_PORT    - SurrealDB endpoint
//	DB_NAMESPACE, DB_DATABASE - SurrealDB namespace and database
//	JWT_PRIVATE_KEY_PATH - RSA private key for token signing
//	CACHE_ENABLED       - enable the Redis index page cache
//	CACHE_INDEX_TTL     - index page cache lifetime (default: 20s)
//	MEDIA_ENABLED       - enable MinIO image uploads
//
// # Default Values
//
// Sensible defaults are provided for development:
//
//	func getEnv(key, defaultValue string) string {
//	    if value := os.Getenv(key); value != "" {
//	        return value
//	    }
//	    return defaultValue
//	}
package config
