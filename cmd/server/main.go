// Command server runs the car registry service: a token-authenticated HTTP
// API for cars and owners with login and registration endpoints.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/skillsenselab/carhub/auth"
	"github.com/skillsenselab/carhub/auth/password"
	"github.com/skillsenselab/carhub/auth/token"
	"github.com/skillsenselab/carhub/authz"
	"github.com/skillsenselab/carhub/config"
	"github.com/skillsenselab/carhub/fleet"
	fleetmemory "github.com/skillsenselab/carhub/fleet/memory"
	"github.com/skillsenselab/carhub/identity"
	identitymemory "github.com/skillsenselab/carhub/identity/memory"
	"github.com/skillsenselab/carhub/identity/postgres"
	"github.com/skillsenselab/carhub/logger"
	"github.com/skillsenselab/carhub/observability"
	"github.com/skillsenselab/carhub/server"
	"github.com/skillsenselab/carhub/server/endpoint"
	"github.com/skillsenselab/carhub/server/middleware"
	"github.com/skillsenselab/carhub/util"
	"github.com/skillsenselab/carhub/version"
)

const serviceName = "carhub"

func main() {
	if err := run(); err != nil {
		logger.Error("Service failed", logger.ErrorFields("run", err))
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var cfg config.Config
	if err := config.Load(serviceName, &cfg); err != nil {
		return err
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger.Init(cfg.Logging)
	log := logger.WithComponent("main")
	log.Info("Starting service", logger.Fields(
		"service", cfg.Name,
		"environment", cfg.Environment,
		"version", version.GetShortVersion(),
		"token_secret", util.MaskSecret(cfg.Auth.Token.Secret, 4),
	))

	// Observability providers are optional; the metrics handle below is
	// nil-safe when disabled.
	var metrics *observability.AuthMetrics
	if cfg.Observability.Enabled {
		mp, err := observability.InitMeter(ctx, &cfg.Observability)
		if err != nil {
			return err
		}
		defer func() {
			if err := mp.Shutdown(context.Background()); err != nil {
				log.Warn("Meter shutdown error", logger.ErrorFields("meter", err))
			}
		}()

		tp, err := observability.InitTracer(ctx, &cfg.Observability)
		if err != nil {
			return err
		}
		defer func() {
			if err := tp.Shutdown(context.Background()); err != nil {
				log.Warn("Tracer shutdown error", logger.ErrorFields("tracer", err))
			}
		}()

		metrics, err = observability.NewAuthMetrics(observability.Meter(serviceName))
		if err != nil {
			return err
		}
	}

	// Credential store: Postgres when a URL is configured, in-memory otherwise.
	var store identity.Store
	checks := map[string]endpoint.CheckFunc{}
	if cfg.Database.URL != "" {
		db, err := postgres.Open(ctx, cfg.Database.URL)
		if err != nil {
			return err
		}
		defer db.Close()
		if err := postgres.Migrate(ctx, db); err != nil {
			return err
		}
		pgStore := postgres.New(db)
		store = pgStore
		checks["database"] = pgStore.Ping
		log.Info("Using postgres credential store")
	} else {
		store = identitymemory.New()
		log.Info("Using in-memory credential store")
	}

	hasher := password.NewHasher(cfg.Auth.Password)

	if cfg.Seed.Enabled {
		if err := auth.SeedUser(ctx, store, hasher, cfg.Seed.Username, cfg.Seed.Password); err != nil {
			return err
		}
		log.Info("Seed user ensured", logger.Fields(logger.FieldUsername, cfg.Seed.Username))
	}

	tokens, err := token.NewService(&cfg.Auth.Token)
	if err != nil {
		return err
	}

	authenticator, err := auth.NewAuthenticator(store, hasher)
	if err != nil {
		return err
	}

	srv := server.New(cfg.Server, logger.GetGlobalLogger())
	srv.ApplyMiddleware()
	engine := srv.GinEngine()

	// Roles are re-resolved from the store on every request, so role changes
	// take effect without waiting for tokens to expire.
	resolveRoles := func(ctx context.Context, username string) ([]string, bool) {
		id, err := store.FindByUsername(ctx, username)
		if err != nil {
			return nil, false
		}
		return id.RoleSet(), true
	}

	rules := authz.DefaultRules()
	engine.Use(middleware.Authenticate(tokens, resolveRoles, metrics))
	engine.Use(middleware.Authorize(authz.NewClassifier(rules...)))

	engine.GET("/health", endpoint.Health(cfg.Name, checks))
	engine.GET("/alive", endpoint.Liveness(cfg.Name))
	engine.GET("/ready", endpoint.Readiness(cfg.Name, checks))
	engine.GET("/info", endpoint.Info(cfg.Name))
	engine.GET("/docs", endpoint.Docs(cfg.Name, rules))

	authHandler := auth.NewHandler(authenticator, tokens, store, hasher, metrics, logger.GetGlobalLogger())
	if cfg.Server.LoginRateLimit > 0 {
		engine.POST("/auth/login", middleware.RateLimit(ctx, middleware.RateLimitConfig{
			RequestsPerMinute: cfg.Server.LoginRateLimit,
		}), authHandler.Login)
		engine.POST("/auth/register", authHandler.Register)
	} else {
		authHandler.RegisterRoutes(engine)
	}

	fleetHandler := fleet.NewHandler(fleetmemory.New(), logger.GetGlobalLogger())
	fleetHandler.RegisterRoutes(engine)

	if err := srv.Start(ctx); err != nil {
		return err
	}

	<-ctx.Done()
	log.Info("Shutdown signal received")
	return srv.Stop(context.Background())
}
