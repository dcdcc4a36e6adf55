package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/dmitrymomot/pixkit/internal/api"
	"github.com/dmitrymomot/pixkit/internal/transaction"
	"github.com/dmitrymomot/pixkit/internal/user"
	"github.com/dmitrymomot/pixkit/migrations"
	"github.com/dmitrymomot/pixkit/pkg/clientip"
	"github.com/dmitrymomot/pixkit/pkg/config"
	"github.com/dmitrymomot/pixkit/pkg/file"
	"github.com/dmitrymomot/pixkit/pkg/httpserver"
	"github.com/dmitrymomot/pixkit/pkg/i18n"
	"github.com/dmitrymomot/pixkit/pkg/logger"
	"github.com/dmitrymomot/pixkit/pkg/pg"
	"github.com/dmitrymomot/pixkit/pkg/ratelimiter"
	"github.com/dmitrymomot/pixkit/pkg/requestid"
)

type appConfig struct {
	Log        logger.Config
	HTTP       httpserver.Config
	API        api.Config
	Postgres   pg.Config
	Storage    file.Config
	LoginRate  ratelimiter.Config `envPrefix:"LOGIN_RATE_"`
	BcryptCost int                `env:"BCRYPT_COST" envDefault:"12"`
}

func main() {
	if err := run(); err != nil {
		slog.Error("server stopped", logger.Error(err))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load[appConfig]()
	if err != nil {
		return err
	}

	log, err := logger.NewFromConfig(cfg.Log, logger.WithContextExtractors(
		requestid.LoggerExtractor(),
		clientip.LoggerExtractor(),
	))
	if err != nil {
		return err
	}
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := pg.Connect(ctx, cfg.Postgres)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := pg.Migrate(ctx, pool, migrations.FS, cfg.Postgres, log); err != nil {
		return err
	}

	storage, err := file.New(ctx, cfg.Storage)
	if err != nil {
		return err
	}

	translator, err := i18n.Default(i18n.WithLogger(log))
	if err != nil {
		return err
	}

	users := user.NewService(user.NewRepository(pool), storage,
		user.WithLogger(log),
		user.WithBcryptCost(cfg.BcryptCost),
	)
	transactions := transaction.NewService(transaction.NewRepository(pool),
		transaction.WithLogger(log),
	)

	rateStore := ratelimiter.NewMemoryStore()
	defer rateStore.Close()
	loginLimiter, err := ratelimiter.NewBucket(rateStore, cfg.LoginRate)
	if err != nil {
		return err
	}

	opts := []api.Option{
		api.WithLogger(log),
		api.WithConfig(cfg.API),
		api.WithReadinessCheck("postgres", pg.Healthcheck(pool)),
		api.WithLoginLimiter(loginLimiter),
	}
	isLocal := cfg.Storage.Driver == file.DriverLocal || cfg.Storage.Driver == ""
	if isLocal && strings.HasPrefix(cfg.Storage.LocalBaseURL, "/") {
		prefix := "/" + strings.Trim(cfg.Storage.LocalBaseURL, "/")
		opts = append(opts, api.WithMedia(prefix, http.FileServer(http.Dir(cfg.Storage.LocalDir))))
	}

	router := api.New(users, transactions, translator, opts...).Router()

	log.Info("starting server", slog.String("addr", cfg.HTTP.Addr))
	return httpserver.New(cfg.HTTP, log).Run(ctx, router)
}
