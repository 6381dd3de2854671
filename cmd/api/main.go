package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/TPFLegionaire/Nvidia-docs-MCP-server/internal/modules/docs"
	"github.com/TPFLegionaire/Nvidia-docs-MCP-server/internal/modules/health"
	"github.com/TPFLegionaire/Nvidia-docs-MCP-server/internal/modules/ingest"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on environment")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// ── MongoDB ─────────────────────────────────────────────
	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(envOr("MONGODB_URL", "mongodb://localhost:27017")).
		SetMaxPoolSize(100).
		SetMinPoolSize(10).
		SetRetryWrites(true).
		SetSocketTimeout(30*time.Second).
		SetConnectTimeout(10*time.Second).
		SetServerSelectionTimeout(10*time.Second))
	if err != nil {
		log.Fatal(err)
	}
	defer client.Disconnect(context.Background())

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		log.Fatal(err)
	}
	log.Println("connected to MongoDB")

	coll := client.Database("nvidia_docs").Collection("nvidia_docs")
	if err := docs.EnsureIndexes(ctx, coll); err != nil {
		log.Fatalf("creating indexes: %v", err)
	}

	// ── Redis ───────────────────────────────────────────────
	// Redis being down is not fatal: the cache adapter reports every
	// operation as unavailable and reads fall through to the store.
	cache := docs.NewUnavailableCache()
	if opts, err := redis.ParseURL(envOr("REDIS_URL", "redis://localhost:6379")); err != nil {
		log.Printf("invalid REDIS_URL, running without cache: %v", err)
	} else {
		redisClient := redis.NewClient(opts)
		defer redisClient.Close()
		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Printf("Redis unreachable at startup: %v", err)
		} else {
			log.Println("connected to Redis")
		}
		cache = docs.NewRedisCache(redisClient)
	}

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)

	repo := docs.NewMongoRepository(coll)
	docsService := docs.NewService(repo, cache)
	docs.NewHandler(docsService).RegisterRoutes(router)

	ingestService := ingest.NewService(ingest.NewScraper(), repo)
	ingest.NewHandler(ingestService).RegisterRoutes(router)

	mongoPing := health.PingerFunc(func(ctx context.Context) error {
		return client.Ping(ctx, readpref.Primary())
	})
	health.NewHandler(mongoPing, cache).RegisterRoutes(router)

	// ── Scheduler ───────────────────────────────────────────
	scheduler := ingest.NewScheduler(ingestService)
	scheduler.Start(os.Getenv("INGESTION_SCHEDULE"))
	defer scheduler.Stop()

	// ── Start Server ────────────────────────────────────────
	port := envOr("APP_PORT", "8000")
	log.Printf("NVIDIA docs API server starting on :%s", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
