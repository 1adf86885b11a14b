package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	TMDB     TMDBConfig     `yaml:"tmdb"`
	Edit     EditConfig     `yaml:"edit"`
	Log      LogConfig      `yaml:"log"`
	CORS     CORSConfig     `yaml:"cors"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`

	// TrustProxy takes the client address from X-Forwarded-For.
	TrustProxy bool `yaml:"trust_proxy" env:"SERVER_TRUST_PROXY" env-default:"false"`
}

// DatabaseConfig holds PostgreSQL connection settings. None of the
// connection fields is required at load time: the server starts without a
// database and reports the problem through /db-status.
type DatabaseConfig struct {
	URLNonPooling string `yaml:"url_non_pooling" env:"POSTGRES_URL_NON_POOLING"`
	URL           string `yaml:"url"             env:"POSTGRES_URL"`
	PrismaURL     string `yaml:"prisma_url"      env:"POSTGRES_PRISMA_URL"`
	Host          string `yaml:"host"            env:"POSTGRES_HOST"`
	Port          int    `yaml:"port"            env:"POSTGRES_PORT"     env-default:"5432"`
	User          string `yaml:"user"            env:"POSTGRES_USER"`
	Password      string `yaml:"password"        env:"POSTGRES_PASSWORD"`
	Name          string `yaml:"database"        env:"POSTGRES_DATABASE"`
	SSLMode       string `yaml:"sslmode"         env:"POSTGRES_SSLMODE"`

	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"1"`
	ConnectTimeout  time.Duration `yaml:"connect_timeout"    env:"DATABASE_CONNECT_TIMEOUT"    env-default:"10s"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"20s"`
}

// TMDBConfig holds settings for the movie metadata catalog.
type TMDBConfig struct {
	APIKey       string        `yaml:"api_key"        env:"TMDB_API_KEY"`
	BaseURL      string        `yaml:"base_url"       env:"TMDB_BASE_URL"       env-default:"https://api.themoviedb.org/3"`
	ImageBaseURL string        `yaml:"image_base_url" env:"TMDB_IMAGE_BASE_URL" env-default:"https://image.tmdb.org/t/p"`
	Timeout      time.Duration `yaml:"timeout"        env:"TMDB_TIMEOUT"        env-default:"10s"`

	// LookupTimeout bounds each enrichment lookup. Zero means no bound
	// beyond the HTTP client timeout.
	LookupTimeout     time.Duration `yaml:"lookup_timeout"     env:"TMDB_LOOKUP_TIMEOUT"     env-default:"0s"`
	EnrichLimit       int           `yaml:"enrich_limit"       env:"TMDB_ENRICH_LIMIT"       env-default:"10"`
	EnrichConcurrency int           `yaml:"enrich_concurrency" env:"TMDB_ENRICH_CONCURRENCY" env-default:"20"`
}

// EditConfig holds the edit-mode unlock settings.
type EditConfig struct {
	// Password is either plain text or a bcrypt hash.
	Password        string `yaml:"password"          env:"EDIT_PASSWORD"`
	UnlockPerMinute int    `yaml:"unlock_per_minute" env:"EDIT_UNLOCK_PER_MINUTE" env-default:"10"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`

	// File enables an additional rotating file sink.
	File       string `yaml:"file"        env:"LOG_FILE"`
	MaxSizeMB  int    `yaml:"max_size_mb" env:"LOG_MAX_SIZE_MB" env-default:"50"`
	MaxBackups int    `yaml:"max_backups" env:"LOG_MAX_BACKUPS" env-default:"3"`
	MaxAgeDays int    `yaml:"max_age_days" env:"LOG_MAX_AGE_DAYS" env-default:"28"`
}
