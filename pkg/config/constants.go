package config

const EnvPrefix = ""

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

const (
	StorageBackendMemory = "memory"
	StorageBackendRedis  = "redis"
	StorageBackendSQLite = "sqlite"
)

const (
	EnvAppEnv         = "STOREFRONT_APP_ENV"
	EnvPort           = "STOREFRONT_APP_PORT"
	EnvLogLevel       = "STOREFRONT_LOG_LEVEL"
	EnvStorageBackend = "STOREFRONT_STORAGE_BACKEND"
	EnvSQLitePath     = "STOREFRONT_STORAGE_SQLITE_PATH"
	EnvRedisURL       = "STOREFRONT_REDIS_URL"
	EnvCatalogPath    = "STOREFRONT_CATALOG_PATH"
	EnvTaxRate        = "STOREFRONT_CHECKOUT_TAX_RATE"
	EnvClampTotal     = "STOREFRONT_CHECKOUT_CLAMP_TOTAL"
)
