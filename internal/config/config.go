package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// It contains settings for the environment, HTTP server, database and file
// storage connections, tokens, the AI assistant, the background pipelines and
// graceful shutdown behavior.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout bounds writing the response. It must exceed assistant.timeout plus requestTimeout
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"3m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request. Routes waiting for the AI assistant get assistant.timeout on top
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"10s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		// AllowedOrigins lists the web origins allowed by CORS, any origin when empty
		AllowedOrigins []string `env:"HTTP_ALLOWED_ORIGINS" env-separator:"," yaml:"allowedOrigins"`
	} `yaml:"http"`

	// Database contains all database connection related configurations
	Database struct {
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"myuser" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"mypassword" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"easyrent" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// Mongo holds the connection used for GridFS file storage
	Mongo struct {
		// URI is the MongoDB connection string
		URI string `env:"MONGO_URI" env-default:"mongodb://localhost:27017" yaml:"uri"`
		// Database is the database holding the GridFS bucket
		Database string `env:"MONGO_DATABASE" env-default:"easyrent" yaml:"database"`
		// Bucket is the GridFS bucket name
		Bucket string `env:"MONGO_BUCKET" env-default:"files" yaml:"bucket"`
	} `yaml:"mongo"`

	// JWT configures bearer tokens
	JWT struct {
		// PublicKey is the PEM encoded RSA public key used to verify tokens
		PublicKey string `env:"JWT_PUBLIC_KEY" yaml:"publicKey"`
		// PrivateKey is the PEM encoded RSA private key used to sign tokens
		PrivateKey string `env:"JWT_PRIVATE_KEY" yaml:"privateKey"`
		// TTL is the lifetime of issued tokens
		TTL time.Duration `env:"JWT_TTL" env-default:"720h" yaml:"ttl"`
	} `yaml:"jwt"`

	// Assistant selects and configures the AI provider used for verification
	Assistant struct {
		// Provider is either "openai" or "gemini"
		Provider string `env:"ASSISTANT_PROVIDER" env-default:"openai" yaml:"provider"`
		// Timeout bounds a single check including polling
		Timeout time.Duration `env:"ASSISTANT_TIMEOUT" env-default:"2m" yaml:"timeout"`

		OpenAI struct {
			BaseURL      string `env:"OPENAI_BASE_URL" env-default:"https://api.openai.com/v1" yaml:"baseURL"`
			APIKey       string `env:"OPENAI_API_KEY" yaml:"apiKey"`
			Organization string `env:"OPENAI_ORGANIZATION" yaml:"organization"`
			// ModeratorAssistantID checks listing and review content
			ModeratorAssistantID string `env:"OPENAI_MODERATOR_ASSISTANT_ID" yaml:"moderatorAssistantID"`
			// OwnershipAssistantID checks ownership documents
			OwnershipAssistantID string `env:"OPENAI_OWNERSHIP_ASSISTANT_ID" yaml:"ownershipAssistantID"`
			// IdentityAssistantID checks passports
			IdentityAssistantID string `env:"OPENAI_IDENTITY_ASSISTANT_ID" yaml:"identityAssistantID"`
			// PollInterval is the delay between run status checks
			PollInterval time.Duration `env:"OPENAI_POLL_INTERVAL" env-default:"200ms" yaml:"pollInterval"`
		} `yaml:"openai"`

		Gemini struct {
			APIKey            string `env:"GEMINI_API_KEY" yaml:"apiKey"`
			Model             string `env:"GEMINI_MODEL" env-default:"gemini-2.5-flash" yaml:"model"`
			RequestsPerMinute int    `env:"GEMINI_REQUESTS_PER_MINUTE" env-default:"10" yaml:"requestsPerMinute"`
		} `yaml:"gemini"`
	} `yaml:"assistant"`

	// Moderation configures the listing moderation pipeline
	Moderation struct {
		// SweepInterval is how often listings waiting in moderation are enqueued
		SweepInterval time.Duration `env:"MODERATION_SWEEP_INTERVAL" env-default:"1m" yaml:"sweepInterval"`
		// MaxImages limits how many listing images are sent to the content check
		MaxImages int `env:"MODERATION_MAX_IMAGES" env-default:"4" yaml:"maxImages"`
		// BatchSize limits how many listings a single sweep enqueues
		BatchSize uint `env:"MODERATION_BATCH_SIZE" env-default:"500" yaml:"batchSize"`
	} `yaml:"moderation"`

	// Relevance configures archiving of stale listings
	Relevance struct {
		// MaxAge is how long an active listing may stay without activity
		MaxAge time.Duration `env:"RELEVANCE_MAX_AGE" env-default:"360h" yaml:"maxAge"`
		// Schedule is a standard cron expression
		Schedule string `env:"RELEVANCE_SCHEDULE" env-default:"0 12 * * *" yaml:"schedule"`
		// BatchSize limits how many listings are loaded at once
		BatchSize uint `env:"RELEVANCE_BATCH_SIZE" env-default:"100" yaml:"batchSize"`
	} `yaml:"relevance"`

	// Mail configures the SMTP relay. Mails are only logged when Host is empty.
	Mail struct {
		Host     string `env:"MAIL_HOST" yaml:"host"`
		Port     int    `env:"MAIL_PORT" env-default:"587" yaml:"port"`
		Username string `env:"MAIL_USERNAME" yaml:"username"`
		Password string `env:"MAIL_PASSWORD" yaml:"password"`
		From     string `env:"MAIL_FROM" yaml:"from"`
		Insecure bool   `env:"MAIL_INSECURE" env-default:"false" yaml:"insecure"`
	} `yaml:"mail"`

	// Worker configures the background job runner
	Worker struct {
		// MaxWorkers is the number of jobs processed concurrently
		MaxWorkers int `env:"WORKER_MAX_WORKERS" env-default:"20" yaml:"maxWorkers"`
		// MaxAttempts bounds retries of failing jobs
		MaxAttempts int `env:"WORKER_MAX_ATTEMPTS" env-default:"10" yaml:"maxAttempts"`
		// UI mounts the River dashboard on the API server
		UI bool `env:"WORKER_UI" env-default:"true" yaml:"ui"`
	} `yaml:"worker"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
