package config

import (
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Auth       AuthConfig       `yaml:"auth"`
	Pagination PaginationConfig `yaml:"pagination"`
	Posts      PostsConfig      `yaml:"posts"`
	Media      MediaConfig      `yaml:"media"`
	Log        LogConfig        `yaml:"log"`
	CORS       CORSConfig       `yaml:"cors"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:""`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// Origins splits AllowedOrigins on commas. An empty setting disables CORS.
func (c CORSConfig) Origins() []string { return splitList(c.AllowedOrigins) }

// Methods splits AllowedMethods on commas.
func (c CORSConfig) Methods() []string { return splitList(c.AllowedMethods) }

// Headers splits AllowedHeaders on commas.
func (c CORSConfig) Headers() []string { return splitList(c.AllowedHeaders) }

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8000"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// AuthConfig holds session cookie and login settings.
type AuthConfig struct {
	SessionSecret      string        `yaml:"session_secret"        env:"AUTH_SESSION_SECRET"        env-required:"true"`
	SessionIssuer      string        `yaml:"session_issuer"        env:"AUTH_SESSION_ISSUER"        env-default:"yatube"`
	SessionTTL         time.Duration `yaml:"session_ttl"           env:"AUTH_SESSION_TTL"           env-default:"336h"`
	CookieName         string        `yaml:"cookie_name"           env:"AUTH_COOKIE_NAME"           env-default:"sessionid"`
	CookieSecure       bool          `yaml:"cookie_secure"         env:"AUTH_COOKIE_SECURE"         env-default:"false"`
	LoginURL           string        `yaml:"login_url"             env:"AUTH_LOGIN_URL"             env-default:"/auth/login/"`
	PasswordHashCost   int           `yaml:"password_hash_cost"    env:"AUTH_PASSWORD_HASH_COST"    env-default:"10"`
	LoginRatePerMinute int           `yaml:"login_rate_per_minute" env:"AUTH_LOGIN_RATE_PER_MINUTE" env-default:"20"`
}

// PaginationConfig holds listing page sizes.
type PaginationConfig struct {
	PostsPerPage int `yaml:"posts_per_page" env:"PAGINATION_POSTS_PER_PAGE" env-default:"10"`
}

// Non-author edit modes.
const (
	NonAuthorEditRedirect  = "redirect"
	NonAuthorEditForbidden = "forbidden"
)

// PostsConfig holds post authoring rules.
type PostsConfig struct {
	// NonAuthorEdit selects what a non-author editing a post gets: a silent
	// redirect to the post (the historical behaviour) or a 403 page.
	NonAuthorEdit string `yaml:"non_author_edit" env:"POSTS_NON_AUTHOR_EDIT" env-default:"redirect"`
}

// MediaConfig holds uploaded file storage settings.
type MediaConfig struct {
	Root           string `yaml:"root"             env:"MEDIA_ROOT"             env-default:"./media"`
	URL            string `yaml:"url"              env:"MEDIA_URL"              env-default:"/media/"`
	Serve          bool   `yaml:"serve"            env:"MEDIA_SERVE"            env-default:"true"`
	MaxUploadBytes int64  `yaml:"max_upload_bytes" env:"MEDIA_MAX_UPLOAD_BYTES" env-default:"5242880"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

func splitList(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
