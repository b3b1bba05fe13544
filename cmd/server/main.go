package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/localmart/storefront/internal/app"
	"github.com/localmart/storefront/internal/config"
	"github.com/localmart/storefront/internal/events"
	"github.com/localmart/storefront/internal/handler"
	"github.com/localmart/storefront/internal/postgres"
	"github.com/localmart/storefront/internal/pricing"
	"github.com/localmart/storefront/internal/repo"
	"github.com/localmart/storefront/internal/service"
	"github.com/localmart/storefront/pkg/cache"
	"github.com/localmart/storefront/pkg/trm"

	"github.com/joho/godotenv"
)

func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	orderRepo := repo.NewOrderRepo(db)
	productRepo := repo.NewProductRepo(db)
	cartRepo := repo.NewCartRepo(db)
	txManager := trm.NewManager(db)
	orderCache := cache.NewLRUCache(conf.Cache.Capacity, conf.Cache.TTL)

	publisher := events.NewKafkaPublisher(conf.Kafka)
	defer publisher.Close()

	policy := pricing.Policy{
		CGSTRate:          conf.Pricing.CGSTRate,
		SGSTRate:          conf.Pricing.SGSTRate,
		FreeDeliveryAbove: conf.Pricing.FreeDeliveryAbove,
		DeliveryFee:       conf.Pricing.DeliveryFee,
	}

	orderService := service.NewOrderService(
		logger, txManager, orderRepo, productRepo, cartRepo, orderCache, publisher, policy,
	)

	kafkaHandler := handler.NewKafkaHandler(logger, conf.Kafka, orderService)
	httpHandler := handler.NewHTTPHandler(logger, orderService)

	app := app.New(logger, conf)

	app.SetHTTPHandlers(httpHandler)
	app.SetConsumers(kafkaHandler)
	app.SetStarters(orderCache)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	panicIfErr("failed to start app", app.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", app.Stop())
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}
