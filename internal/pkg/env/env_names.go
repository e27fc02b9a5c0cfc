package env

const (
	EnvHttpPort = "HTTP_PORT"

	EnvDatabaseHost         = "DB_HOST"
	EnvDatabasePort         = "DB_PORT"
	EnvDatabaseUser         = "DB_USER"
	EnvDatabasePassword     = "DB_PASSWORD"
	EnvDatabaseName         = "DB_NAME"
	EnvDatabaseSSL          = "DB_SSL_ENABLED"
	EnvDatabaseMigrate      = "DB_AUTO_MIGRATE"
	EnvDatabaseSerializable = "DB_SERIALIZABLE"

	EnvJwtSecret = "JWT_SECRET"

	EnvLogFormat = "LOG_FORMAT"

	EnvRetryAttempts     = "TX_RETRY_ATTEMPTS"
	EnvRetryInitialDelay = "TX_RETRY_INITIAL_DELAY"
	EnvRetryMaxDelay     = "TX_RETRY_MAX_DELAY"

	EnvAuditBufferSize = "AUDIT_BUFFER_SIZE"

	EnvHashMemoryKiB  = "PASSWORD_HASH_MEMORY_KIB"
	EnvHashIterations = "PASSWORD_HASH_ITERATIONS"
)
