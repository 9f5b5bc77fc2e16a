package cli

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	mongodriver "go.mongodb.org/mongo-driver/mongo"

	"github.com/atelier-interiors/studio-cms/internal/core/ports"
	"github.com/atelier-interiors/studio-cms/internal/core/service"
	"github.com/atelier-interiors/studio-cms/internal/infrastructure/config"
	"github.com/atelier-interiors/studio-cms/internal/infrastructure/db/mongo"
	"github.com/atelier-interiors/studio-cms/pkg/logger"
)

const serviceName = "studio-cms"

// runtimeDeps is what every command needs: configuration, a logger and the
// Mongo-backed repositories.
type runtimeDeps struct {
	cfg    *config.Config
	log    zerolog.Logger
	client *mongodriver.Client
	repos  *mongo.Repositories
}

func (d *runtimeDeps) Close(ctx context.Context) {
	if err := d.client.Disconnect(ctx); err != nil {
		d.log.Warn().Err(err).Msg("mongo disconnect")
	}
}

// openRuntime loads the environment, initialises the logger and connects to
// Mongo. Indexes are ensured so the bootstrap invariant holds for any command.
func openRuntime(ctx context.Context) (*runtimeDeps, error) {
	cfg, err := config.Load(ctx)
	if err != nil {
		return nil, err
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: serviceName,
	})

	client, db, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		return nil, err
	}

	repos := mongo.NewRepositories(db)
	if err := repos.EnsureIndexes(ctx, cfg.Audit.Retention); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ensure indexes: %w", err)
	}

	return &runtimeDeps{cfg: cfg, log: log, client: client, repos: repos}, nil
}

// newAuthService wires the account service. Optional collaborators are only
// attached when given.
func (d *runtimeDeps) newAuthService(throttle ports.LoginThrottle, audit ports.AuditSink) *service.AuthService {
	opts := []service.AuthOption{}
	if throttle != nil {
		opts = append(opts, service.WithLoginThrottle(throttle))
	}
	if audit != nil {
		opts = append(opts, service.WithAuditSink(audit))
	}
	return service.NewAuthService(
		d.repos.Accounts,
		service.NewPasswordHasher(d.cfg.Auth.BcryptCost),
		service.NewTokenManager(d.cfg.Auth.JWTSecret, d.cfg.Auth.TokenTTL),
		logger.Component("auth"),
		opts...,
	)
}
