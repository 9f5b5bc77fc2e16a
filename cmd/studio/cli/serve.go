package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/atelier-interiors/studio-cms/internal/api"
	"github.com/atelier-interiors/studio-cms/internal/api/handler"
	"github.com/atelier-interiors/studio-cms/internal/core/service"
	"github.com/atelier-interiors/studio-cms/internal/infrastructure/db/mongo"
	"github.com/atelier-interiors/studio-cms/internal/infrastructure/db/redis"
	"github.com/atelier-interiors/studio-cms/internal/infrastructure/queue"
	"github.com/atelier-interiors/studio-cms/pkg/logger"
)

func newServeCmd() *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, port)
		},
	}

	cmd.Flags().StringVar(&port, "port", "", "Listen port (overrides PORT)")

	return cmd
}

func runServe(ctx context.Context, port string) error {
	rt, err := openRuntime(ctx)
	if err != nil {
		return err
	}
	cfg, log := rt.cfg, rt.log
	if port == "" {
		port = cfg.Port
	}

	rdb, err := redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
	if err != nil {
		rt.Close(context.Background())
		return err
	}
	defer rdb.Close()

	// Audit writes outlive the request that produced them; workers drain on
	// shutdown after the HTTP server has stopped accepting requests.
	auditCtx, stopAudit := context.WithCancel(context.Background())
	dispatcher := queue.NewAuditDispatcher(cfg.Audit.Workers, rt.repos.Audit, logger.Component("audit"))
	dispatcher.Start(auditCtx)

	throttle := redis.NewLoginThrottle(rdb, cfg.Auth.LoginMaxAttempts, cfg.Auth.LoginWindow)
	auth := rt.newAuthService(throttle, dispatcher)

	cache := service.CacheConfig{Size: cfg.Cache.Size, TTL: cfg.Cache.TTL}
	content := logger.Component("content")

	router := api.NewRouter(api.Services{
		Auth:         auth,
		Verifier:     auth,
		Founder:      service.NewFounderService(rt.repos.Founder, content),
		Portfolio:    service.NewPortfolioService(rt.repos.Portfolio, cache, content),
		Categories:   service.NewCategoryService(rt.repos.Categories, cache, content),
		Videos:       service.NewVideoService(rt.repos.Videos, cache, content),
		Testimonials: service.NewTestimonialService(rt.repos.Testimonials, cache, content),
		Statistics:   service.NewStatisticsService(rt.repos.Statistics, content),
		Dependencies: map[string]handler.Pinger{
			"mongo": mongo.Pinger{Client: rt.client},
			"redis": redis.Pinger{Client: rdb},
		},
	}, api.Options{
		Log:         logger.Component("http"),
		CORSOrigins: cfg.CORSOrigins,
		Version:     appVersion,
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", port).Str("env", cfg.Env).Msg("http server listening")
		if err := router.Start(":" + port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	var serveErr error
	select {
	case <-ctx.Done():
		log.Info().Msg("shutdown signal received")
	case serveErr = <-errCh:
		log.Error().Err(serveErr).Msg("http server failed")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := router.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http shutdown")
	}

	stopAudit()
	dispatcher.Wait()
	rt.Close(shutdownCtx)

	log.Info().Msg("server stopped")
	return serveErr
}
