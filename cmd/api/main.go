package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	appConfig "github.com/mSchlettig/qevo-server/internal/config"
	"github.com/mSchlettig/qevo-server/internal/jsonlog"
	"github.com/mSchlettig/qevo-server/internal/router"
	"github.com/mSchlettig/qevo-server/internal/validator"
	"github.com/mSchlettig/qevo-server/internal/vcs"
)

const (
	defaultBasePath       = "/qevo-server"
	defaultAllowedMethods = "GET,POST,PATCH,DELETE,OPTIONS"
	defaultAllowedHeaders = "Content-Type,Authorization"
)

var version = vcs.Version()

type config struct {
	port     int
	env      string
	debug    bool
	basePath string
	metrics  bool
	cors     struct {
		origins []string
		methods []string
		headers []string
	}
}

type application struct {
	logger     *jsonlog.Logger
	cfg        config
	dispatcher *router.Dispatcher
	now        func() time.Time
}

func main() {
	envFile := appConfig.Get("APP_ENV_FILE", ".env")
	loadErr := appConfig.Load(envFile)

	var cfg config
	flag.IntVar(&cfg.port, "port", appConfig.Int("APP_PORT", 8080), "API server's port")
	flag.StringVar(&cfg.env, "env", appConfig.Get("APP_ENV", ""), "Environment reported by the health check")
	flag.BoolVar(&cfg.debug, "debug", appConfig.Bool("APP_DEBUG", false), "Verbose logging and stack traces in error responses")
	flag.StringVar(&cfg.basePath, "base-path", appConfig.Get("APP_BASE_PATH", defaultBasePath), "Path prefix stripped before routing")
	flag.BoolVar(&cfg.metrics, "metrics", appConfig.Bool("APP_METRICS", false), "Expose expvar metrics on /debug/vars")
	displayVersion := flag.Bool("version", false, "Display version and exit")
	flag.Parse()

	if *displayVersion {
		fmt.Printf("Version:\t%s\n", version)
		os.Exit(0)
	}

	if cfg.env == "" {
		cfg.env = "unknown"
	}
	cfg.basePath = strings.TrimRight(cfg.basePath, "/")
	cfg.cors.origins = appConfig.List("CORS_ALLOWED_ORIGINS", "*")
	cfg.cors.methods = appConfig.List("CORS_ALLOWED_METHODS", defaultAllowedMethods)
	cfg.cors.headers = appConfig.List("CORS_ALLOWED_HEADERS", defaultAllowedHeaders)

	level := jsonlog.InfoLevel
	if cfg.debug {
		level = jsonlog.DebugLevel
	}
	logger := jsonlog.New(os.Stdout, level)

	if loadErr != nil {
		logger.FatalErr(loadErr, map[string]string{"env_file": envFile})
	}

	err := validateConfig(cfg)
	if err != nil {
		logger.FatalErr(err, nil)
	}

	app := newApplication(cfg, logger)

	err = app.serve()
	if err != nil {
		logger.FatalErr(err, nil)
	}
}

func newApplication(cfg config, logger *jsonlog.Logger) *application {
	app := &application{
		logger: logger,
		cfg:    cfg,
		now:    time.Now,
	}
	app.dispatcher = router.New(app.table()...)

	return app
}

func validateConfig(cfg config) error {
	v := validator.New()

	v.CheckError(validator.InRange(cfg.port, 1, 65535), "port", "must be between 1 and 65535")
	v.CheckError(validator.Matches(cfg.basePath, validator.PathRX), "base_path", "must be empty or an absolute path without a trailing slash")
	v.CheckError(len(cfg.cors.origins) > 0, "cors_allowed_origins", "must not be empty")
	v.CheckError(validator.AllPermitted(cfg.cors.methods, "GET", "HEAD", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"), "cors_allowed_methods", "must only list upper case HTTP methods")

	return v.Err()
}
