package main

import (
	"context"
	"log"

	customerapp "github.com/Sir-Wagyu/e-commerce-app/internal/application/customer"
	productapp "github.com/Sir-Wagyu/e-commerce-app/internal/application/product"
	transactionapp "github.com/Sir-Wagyu/e-commerce-app/internal/application/transaction"
	"github.com/Sir-Wagyu/e-commerce-app/internal/config"
	ginserver "github.com/Sir-Wagyu/e-commerce-app/internal/infrastructure/http/gin"
	kafkainfra "github.com/Sir-Wagyu/e-commerce-app/internal/infrastructure/messaging/kafka"
	"github.com/Sir-Wagyu/e-commerce-app/internal/infrastructure/persistence/postgres"
	"github.com/Sir-Wagyu/e-commerce-app/internal/interfaces/http/handler"
	"github.com/Sir-Wagyu/e-commerce-app/internal/interfaces/http/router"
	"github.com/Sir-Wagyu/e-commerce-app/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config failed: %v", err)
	}

	logg, err := logger.NewZapLogger(cfg.App.Env)
	if err != nil {
		log.Fatalf("init logger failed: %v", err)
	}
	defer func() {
		_ = logg.Sync()
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := postgres.NewPool(cfg.DB)
	if err != nil {
		logg.Fatal("postgres connection failed", logger.Error(err))
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		logg.Fatal("schema bootstrap failed", logger.Error(err))
	}

	customerRepo := postgres.NewCustomerRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	transactionRepo := postgres.NewTransactionRepository(pool)

	producer, err := kafkainfra.NewPlacedProducer(cfg.Kafka, logg)
	if err != nil {
		logg.Fatal("kafka producer failed", logger.Error(err))
	}
	defer producer.Close(ctx)

	customerService := customerapp.NewService(customerRepo, logg)
	productService := productapp.NewService(productRepo, logg)
	transactionService := transactionapp.NewService(transactionRepo, transactionRepo, producer, logg)

	consumer := kafkainfra.NewFulfillmentConsumer(cfg.Kafka, transactionService, logg)
	go func() {
		if err := consumer.Start(ctx); err != nil {
			logg.Warn("fulfillment consumer stopped", logger.Error(err))
		}
	}()
	defer consumer.Close()

	transactionHandler := handler.NewTransactionHandler(transactionService)
	customerHandler := handler.NewCustomerHandler(customerService)
	productHandler := handler.NewProductHandler(productService)

	engine := ginserver.NewEngine()
	router.RegisterRoutes(engine, transactionHandler, customerHandler, productHandler)

	server := ginserver.NewServer(cfg.Server, engine)
	logg.Info("server starting", logger.String("addr", cfg.Server.Address()))
	if err := server.Run(); err != nil {
		logg.Fatal("server run failed", logger.Error(err))
	}
}
