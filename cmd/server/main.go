// Command server runs the public content API: the published snapshot,
// rendered pages, and contact message intake.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	cms "github.com/kallosgym/cms"
)

// envConfig maps environment variables onto the module config.
type envConfig struct {
	Port string `env:"PORT" env-default:"8080"`

	DatabaseDSN string `env:"DATABASE_DSN" env-default:"file:kallos.db?_fk=1"`

	MediaBackend   string `env:"MEDIA_BACKEND" env-default:"fs"`
	MediaBaseDir   string `env:"MEDIA_BASE_DIR" env-default:"data/media"`
	MediaURLPrefix string `env:"MEDIA_URL_PREFIX" env-default:"/media"`
	S3Region       string `env:"S3_REGION" env-default:""`
	S3Bucket       string `env:"S3_BUCKET" env-default:""`
	S3AccessKey    string `env:"S3_ACCESS_KEY_ID" env-default:""`
	S3SecretKey    string `env:"S3_SECRET_ACCESS_KEY" env-default:""`
	S3Endpoint     string `env:"S3_ENDPOINT" env-default:""`
	S3PathStyle    bool   `env:"S3_USE_PATH_STYLE" env-default:"false"`
	S3PublicURL    string `env:"S3_PUBLIC_URL" env-default:""`

	LogLevel  string `env:"LOG_LEVEL" env-default:"info"`
	LogFormat string `env:"LOG_FORMAT" env-default:"json"`

	SeedDefaults bool `env:"SEED_DEFAULTS" env-default:"true"`
}

func (e envConfig) moduleConfig() cms.Config {
	cfg := cms.DefaultConfig()
	cfg.Database.DSN = e.DatabaseDSN
	cfg.Media.Backend = e.MediaBackend
	cfg.Media.BaseDir = e.MediaBaseDir
	cfg.Media.URLPrefix = e.MediaURLPrefix
	cfg.Media.Region = e.S3Region
	cfg.Media.Bucket = e.S3Bucket
	cfg.Media.AccessKeyID = e.S3AccessKey
	cfg.Media.SecretAccessKey = e.S3SecretKey
	cfg.Media.Endpoint = e.S3Endpoint
	cfg.Media.UsePathStyle = e.S3PathStyle
	cfg.Media.PublicURL = e.S3PublicURL
	cfg.Logging.Level = e.LogLevel
	cfg.Logging.Format = e.LogFormat
	cfg.SeedDefaults = e.SeedDefaults
	return cfg
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	var env envConfig
	if err := cleanenv.ReadEnv(&env); err != nil {
		return fmt.Errorf("read configuration: %w", err)
	}

	module, err := cms.New(env.moduleConfig())
	if err != nil {
		return err
	}
	defer module.Dispose()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := module.Init(ctx); err != nil {
		return fmt.Errorf("init: %w", err)
	}

	srv := &http.Server{
		Addr:              ":" + env.Port,
		Handler:           module.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
	}
	return nil
}
