package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"coolpay/config"
	"coolpay/internal/cache"
	"coolpay/internal/database"
	"coolpay/internal/events"
	"coolpay/internal/repository"
	"coolpay/internal/router"
	"coolpay/internal/service"
)

func main() {
	cfg := config.Load()

	db, err := database.NewDB(&cfg.Database)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	gatewaySvc := service.NewGatewayConfigService(repository.NewSettingRepository(db))
	if err := gatewaySvc.EnsureDefaults(); err != nil {
		log.Fatalf("gateway settings: %v", err)
	}
	if gcfg, err := gatewaySvc.Load(); err == nil {
		log.Printf("[Gateway] callback path: /api/v1/callback/%s", gcfg.CallbackToken)
	}

	replay := cache.NewReplayCache(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if replay == nil {
		log.Printf("[Cache] callback replay cache disabled: set REDIS_ADDR to enable")
	}

	publisher, err := events.NewPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
	if err != nil {
		log.Fatalf("kafka: %v", err)
	}
	if publisher == nil {
		log.Printf("[Events] publishing disabled: set KAFKA_BROKERS to enable")
	}
	defer publisher.Close()

	engine := router.Setup(cfg, db, replay, publisher)
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	go func() {
		log.Printf("server listening on :%s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("server shutdown:", err)
	}
	log.Println("server stopped")
}
