package configuration

import (
	"fmt"
	"io"
	"log"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/logging"
)

const Production = "production"

var singleton = sync.OnceValue(func() *Configuration {
	c, err := Load(".env", ".env.local")
	if err != nil {
		panic(err)
	}
	return c
})

// LoadEnv loads the given dotenv files from the working directory. When none
// of them exist there, it retries from the nearest directory holding a go.mod.
func LoadEnv(envFiles []string) (int, error) {
	existing := existingFiles("", envFiles)
	if len(existing) == 0 {
		if root := findModuleRoot(); root != "" {
			existing = existingFiles(root, envFiles)
		}
	}
	if len(existing) == 0 {
		return 0, nil
	}
	return len(existing), godotenv.Load(existing...)
}

func existingFiles(dir string, envFiles []string) []string {
	out := make([]string, 0, len(envFiles))
	for _, file := range envFiles {
		path := file
		if dir != "" {
			path = filepath.Join(dir, file)
		}
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			out = append(out, path)
		}
	}
	return out
}

func findModuleRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

type APIOptions struct {
	BaseURL        string        `env:"ADMIN_API_BASE_URL" envDefault:"https://admin-dashboard-for-main-website.onrender.com"`
	LoginPath      string        `env:"ADMIN_LOGIN_PATH" envDefault:"/auth/login"`
	RequestTimeout time.Duration `env:"ADMIN_REQUEST_TIMEOUT" envDefault:"30s"`
}

// Validate checks that the API base URL is absolute.
func (a *APIOptions) Validate() error {
	u, err := url.Parse(strings.TrimSpace(a.BaseURL))
	if err != nil {
		return fmt.Errorf("invalid ADMIN_API_BASE_URL=%q: %w", a.BaseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid ADMIN_API_BASE_URL=%q (expected http or https)", a.BaseURL)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid ADMIN_API_BASE_URL=%q (missing host)", a.BaseURL)
	}
	if !strings.HasPrefix(a.LoginPath, "/") {
		return fmt.Errorf("invalid ADMIN_LOGIN_PATH=%q (must start with /)", a.LoginPath)
	}
	if a.RequestTimeout < 0 {
		return fmt.Errorf("ADMIN_REQUEST_TIMEOUT must be non-negative, got %s", a.RequestTimeout)
	}
	a.BaseURL = strings.TrimRight(strings.TrimSpace(a.BaseURL), "/")
	return nil
}

type UploadOptions struct {
	Path    string `env:"ADMIN_UPLOAD_PATH" envDefault:"/admin/uploads/image"`
	MaxSize int64  `env:"ADMIN_MAX_UPLOAD_SIZE" envDefault:"1048576"`
}

type SessionOptions struct {
	// Empty means <user config dir>/leafclutch-admin/session.json.
	File string `env:"ADMIN_SESSION_FILE"`
}

type OpenTelemetryOptions struct {
	Enabled     bool   `env:"OTEL_ENABLED" envDefault:"false"`
	TempoURL    string `env:"OTEL_TEMPO_URL" envDefault:"localhost:4318"`
	ServiceName string `env:"OTEL_SERVICE_NAME" envDefault:"leafclutch-admin"`
}

type PrometheusOptions struct {
	Enabled bool   `env:"PROMETHEUS_METRICS_ENABLED" envDefault:"false"`
	Addr    string `env:"PROMETHEUS_METRICS_ADDR" envDefault:"localhost:9464"`
	Path    string `env:"PROMETHEUS_METRICS_PATH" envDefault:"/metrics"`
}

type Configuration struct {
	API           APIOptions
	Upload        UploadOptions
	Session       SessionOptions
	OpenTelemetry OpenTelemetryOptions
	Prometheus    PrometheusOptions

	TrainingsPageSize int    `env:"ADMIN_TRAININGS_PAGE_SIZE" envDefault:"100"`
	GoAppEnvironment  string `env:"GO_APP_ENV" envDefault:"development"`
	LogLevel          string `env:"LOG_LEVEL" envDefault:"error"`
	// Empty means log to stderr.
	LogPath string `env:"LOG_PATH"`

	logCloser io.Closer
	logger    *logrus.Logger
}

func (c *Configuration) Logger() *logrus.Logger {
	return c.logger
}

func (c *Configuration) LogrusLogLevel() logrus.Level {
	switch c.LogLevel {
	case "silent":
		return logrus.PanicLevel
	case "error":
		return logrus.ErrorLevel
	case "warn":
		return logrus.WarnLevel
	case "info":
		return logrus.InfoLevel
	case "debug":
		return logrus.DebugLevel
	default:
		return logrus.ErrorLevel
	}
}

// SessionFile returns the configured token file or the per-user default.
func (c *Configuration) SessionFile() string {
	if f := strings.TrimSpace(c.Session.File); f != "" {
		return f
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "leafclutch-admin", "session.json")
}

func Use() *Configuration {
	return singleton()
}

// Load builds a Configuration from the process environment after applying
// the given dotenv files. Most callers want Use.
func Load(envFiles ...string) (*Configuration, error) {
	c := &Configuration{}
	if err := c.load(envFiles); err != nil {
		c.Unload()
		return nil, err
	}
	return c, nil
}

func (c *Configuration) load(envFiles []string) error {
	n, err := LoadEnv(envFiles)
	if err != nil {
		return err
	}
	if n == 0 && len(envFiles) > 0 {
		wd, _ := os.Getwd()
		log.Println("No .env files found. Tried:")
		for _, file := range envFiles {
			log.Println(filepath.Join(wd, file))
		}
	}
	if err := env.Parse(c); err != nil {
		return err
	}

	if err := c.API.Validate(); err != nil {
		return fmt.Errorf("api configuration error: %w", err)
	}
	if c.Upload.MaxSize <= 0 {
		return fmt.Errorf("ADMIN_MAX_UPLOAD_SIZE must be positive, got %d", c.Upload.MaxSize)
	}
	if c.TrainingsPageSize <= 0 {
		return fmt.Errorf("ADMIN_TRAININGS_PAGE_SIZE must be positive, got %d", c.TrainingsPageSize)
	}

	if strings.TrimSpace(c.LogPath) == "" {
		c.logger = logging.ConsoleLogger(c.LogrusLogLevel())
		return nil
	}
	closer, logger, err := logging.FileLogger(c.LogrusLogLevel(), c.LogPath)
	if err != nil {
		return err
	}
	c.logCloser = closer
	c.logger = logger
	return nil
}

// Unload releases the log file, if any.
func (c *Configuration) Unload() {
	if c.logCloser != nil {
		if err := c.logCloser.Close(); err != nil {
			log.Printf("Failed to close log file: %v", err)
		}
	}
}
