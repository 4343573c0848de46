package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"datagen-service/config"
	"datagen-service/internal/broker"
	"datagen-service/internal/export"
	"datagen-service/internal/gen"
	"datagen-service/internal/store"
	"datagen-service/internal/util"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	if err := util.InitLogger(cfg.Env); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer util.SyncLogger()

	logger := util.GetLogger()
	logger.Info("Starting data generation",
		zap.Int64("seed", cfg.Generator.Seed),
		zap.Time("reference_date", cfg.Generator.ReferenceDate))

	tp, err := util.InitTracer("datagen-service", cfg.Observ.JaegerEndpoint)
	if err != nil {
		log.Fatalf("Failed to initialize tracer: %v", err)
	}
	if tp != nil {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tp.Shutdown(ctx); err != nil {
				log.Printf("Error shutting down tracer: %v", err)
			}
		}()
	}

	if port := cfg.Observ.PrometheusPort; port != "" {
		go func() {
			log.Printf("Serving metrics on port %s", port)
			if err := http.ListenAndServe(fmt.Sprintf(":%s", port), promhttp.Handler()); err != nil {
				log.Printf("Metrics server error: %v", err)
			}
		}()
	}

	if err := os.MkdirAll(cfg.Output.Dir, 0o755); err != nil {
		logger.Fatal("Failed to create output directory", zap.Error(err))
	}

	ctx := context.Background()
	generator := gen.NewGenerator(cfg.Generator)

	ds, err := generator.Generate(ctx)
	if err != nil {
		logger.Fatal("Generation failed", zap.Error(err))
	}

	if err := export.WriteCSVFiles(cfg.Output.Dir, ds); err != nil {
		logger.Fatal("CSV export failed", zap.Error(err))
	}
	if err := export.WriteJSONFiles(cfg.Output.Dir, ds); err != nil {
		logger.Fatal("JSON export failed", zap.Error(err))
	}
	if err := export.WriteCypher(cfg.Output.Dir, ds.GraphScript); err != nil {
		logger.Fatal("Cypher export failed", zap.Error(err))
	}

	if cfg.Database.URL != "" {
		db, err := store.NewStore(cfg.Database.URL)
		if err != nil {
			logger.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer db.Close()
		if err := db.LoadDataset(ctx, ds); err != nil {
			logger.Fatal("Relational load failed", zap.Error(err))
		}
	}

	if cfg.Kafka.Enabled {
		producer := broker.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.TopicEvents)
		defer producer.Close()
		if err := producer.PublishUserEvents(ctx, ds.Events); err != nil {
			logger.Fatal("Event publish failed", zap.Error(err))
		}
	}

	logger.Info("Data generation complete",
		zap.String("output_dir", cfg.Output.Dir),
		zap.Int("users", len(ds.Users)),
		zap.Int("addresses", len(ds.Addresses)),
		zap.Int("products", len(ds.Products)),
		zap.Int("catalog_documents", len(ds.Catalog)),
		zap.Int("carts", len(ds.Carts)),
		zap.Int("cart_items", len(ds.CartItems)),
		zap.Int("orders", len(ds.Orders)),
		zap.Int("order_items", len(ds.OrderItems)),
		zap.Int("payments", len(ds.Payments)),
		zap.Int("returns", len(ds.Returns)),
		zap.Int("return_items", len(ds.ReturnItems)),
		zap.Int("user_events", len(ds.Events)))
}
