package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/condiments/condiments-api/internal/adapters/db/postgres"
	"github.com/condiments/condiments-api/internal/adapters/transport/http/handler"
	httpmw "github.com/condiments/condiments-api/internal/adapters/transport/http/middleware"
	"github.com/condiments/condiments-api/internal/app/auth/jwt"
	"github.com/condiments/condiments-api/internal/app/auth/password"
	authsvc "github.com/condiments/condiments-api/internal/app/auth/service"
	entitysvc "github.com/condiments/condiments-api/internal/app/entity/service"
	"github.com/condiments/condiments-api/internal/infra/config"
	infraDB "github.com/condiments/condiments-api/internal/infra/db"
	lg "github.com/condiments/condiments-api/internal/infra/log"
	"github.com/condiments/condiments-api/internal/infra/server"
)

func main() {
	zapLog := lg.Must(os.Getenv("LOG_LEVEL"))
	defer zapLog.Sync()

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("failed to load config", zap.Error(err))
	}

	db, err := infraDB.Open(cfg)
	if err != nil {
		zapLog.Fatal("failed to connect to database", zap.Error(err))
	}
	sqlDB, err := db.DB()
	if err != nil {
		zapLog.Fatal("db handle", zap.Error(err))
	}
	defer sqlDB.Close()

	tokens, err := jwt.NewTokenManager(cfg)
	if err != nil {
		zapLog.Fatal("failed to init token manager", zap.Error(err))
	}

	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	validate := validator.New()
	hasher := password.NewArgon2idHasher(password.DefaultParams, cfg.PasswordPepper)
	auth := authsvc.New(postgres.NewPostgresUserRepo(db), hasher, tokens, validate)
	entities := entitysvc.New(postgres.NewPostgresEntityRepo(db), validate)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	router := handler.NewRouter(
		handler.NewHandler(auth, entities, tokens, zapLog),
		handler.RouterOptions{
			AllowedOrigins:   cfg.AllowedOrigins,
			AllowCredentials: cfg.AllowCredentials,
			Metrics:          httpmw.NewMetrics(reg),
		},
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	g, ctx := errgroup.WithContext(ctx)

	zapLog.Info("starting condiments api",
		zap.String("driver", cfg.DatabaseDriver),
		zap.Bool("tls", cfg.TLSEnabled()),
		zap.Duration("token_ttl", cfg.AccessTokenTTL),
	)
	g.Go(func() error {
		return server.Serve(ctx, server.Options{
			Addr:            cfg.HTTPAddress,
			CertFile:        cfg.HTTPSCertFile,
			KeyFile:         cfg.HTTPSKeyFile,
			ShutdownTimeout: cfg.ShutdownTimeout,
		}, router, zapLog)
	})

	if cfg.MetricsAddress != "" {
		g.Go(func() error {
			return server.Serve(ctx, server.Options{
				Addr:            cfg.MetricsAddress,
				ShutdownTimeout: cfg.ShutdownTimeout,
			}, promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}), zapLog)
		})
	}

	if err := g.Wait(); err != nil {
		zapLog.Error("server terminated", zap.Error(err))
	}
	zapLog.Info("shutdown complete")
}
