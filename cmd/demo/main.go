package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dmitrymomot/apivalidate/pkg/config"
	"github.com/dmitrymomot/apivalidate/pkg/httpvalidate"
	"github.com/dmitrymomot/apivalidate/pkg/logger"
	"github.com/dmitrymomot/apivalidate/pkg/validator"
)

type serverConfig struct {
	Addr            string        `env:"HTTP_ADDR" envDefault:":8080"`
	ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

func main() {
	var (
		logCfg   logger.Config
		srvCfg   serverConfig
		bindCfg  httpvalidate.Config
		validCfg validator.Config
	)
	config.MustLoad(&logCfg)
	config.MustLoad(&srvCfg)
	config.MustLoad(&bindCfg)
	config.MustLoad(&validCfg)

	log, err := logger.NewFromConfig(logCfg, logger.WithContextExtractors(httpvalidate.RequestIDExtractor()))
	if err != nil {
		slog.Error("invalid logger configuration", logger.Error(err))
		os.Exit(1)
	}
	logger.SetAsDefault(log)

	binder := httpvalidate.NewFromConfig(bindCfg,
		httpvalidate.WithLogger(log),
		httpvalidate.WithMetrics(httpvalidate.NewMetrics(prometheus.DefaultRegisterer)),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, log, srvCfg, newRouter(binder, newUserStore(), validCfg, log)); err != nil {
		log.Error("server stopped", logger.Error(err))
		os.Exit(1)
	}
}

func newRouter(b *httpvalidate.Binder, store *userStore, vcfg validator.Config, log *slog.Logger) http.Handler {
	api := &userAPI{binder: b, store: store}
	rules := func(rules ...validator.FieldRule) func(http.Handler) http.Handler {
		return b.Validate(validator.NewFromConfig(vcfg, rules, validator.WithLogger(log)))
	}

	r := chi.NewRouter()
	r.Use(httpvalidate.RequestID, middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ALIVE"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/users", func(r chi.Router) {
		r.With(rules(
			validator.QueryEnum("role", roles, false),
		)).Get("/", api.list)

		r.With(rules(
			validator.BodyString("name", true),
			validator.BodyEmail("email", true),
			validator.BodyEnum("role", roles, true),
			validator.BodyPin("pin", false),
			validator.BodyDateOrNull("birthday", false),
			validator.BodyArray("tags", allowedTags, false),
			validator.BodyObject("address", false),
			validator.BodyString("address.city", false),
			validator.ForbidBodyItem("id"),
		)).Post("/", api.create)

		r.With(rules(
			validator.ParamsID("id", true),
		)).Get("/{id}", api.get)

		r.With(rules(
			validator.ParamsID("id", true),
			validator.BodyString("name", false),
			validator.BodyEmailOrNull("email", false),
			validator.BodyEnum("role", roles, false),
			validator.ForbidBodyItem("id"),
		)).Patch("/{id}", api.update)
	})

	return r
}

// run serves h until ctx is done, then shuts down gracefully.
func run(ctx context.Context, log *slog.Logger, cfg serverConfig, h http.Handler) error {
	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      h,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()
	log.Info("server started", slog.String("addr", cfg.Addr))

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	log.Info("server stopped gracefully")
	return nil
}
