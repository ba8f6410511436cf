package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/agebook/agebook/handlers"
	"github.com/agebook/agebook/internal/auth"
	"github.com/agebook/agebook/internal/config"
	"github.com/agebook/agebook/internal/database"
	"github.com/agebook/agebook/internal/friend/repository"
	"github.com/agebook/agebook/internal/friend/service"
	"github.com/agebook/agebook/pkg/logger"
	"github.com/agebook/agebook/pkg/metrics"
	"github.com/agebook/agebook/pkg/middleware"
)

var startTime = time.Now()

func main() {
	log := logger.NewWithService(os.Getenv("LOG_LEVEL"), "agebook")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.WithError(err).Fatal("failed to load config")
	}
	log.WithField("environment", cfg.Server.Environment).Info("config loaded")

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	// Lightweight CORS middleware for dev/test: set common headers and
	// respond to OPTIONS. Production should use a stricter policy.
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(200)
			return
		}
		c.Next()
	})

	ctx := context.Background()

	// Connect to Redis early so the rate limiter can use it when configured
	var redisClient *redis.Client
	if cfg.Redis.Host != "" {
		redisClient = redis.NewClient(&redis.Options{Addr: cfg.Redis.Host + ":" + cfg.Redis.Port, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.WithError(err).Warnf("failed to connect to Redis (%s:%s)", cfg.Redis.Host, cfg.Redis.Port)
			redisClient = nil
		} else {
			log.Infof("connected to Redis at %s:%s", cfg.Redis.Host, cfg.Redis.Port)
		}
	}

	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.UseRedis && redisClient != nil {
			win := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
			r.Use(middleware.RedisRateLimitMiddleware(redisClient, cfg.RateLimit.RPS, cfg.RateLimit.Burst, win))
		} else {
			r.Use(middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
		}
	}

	// Connect to MongoDB with retry/backoff to tolerate startup races;
	// fall back to the in-memory repository when no database is configured
	// or reachable.
	var repo repository.Repository
	var mongoOK bool
	if cfg.MongoDB.URI != "" {
		const maxAttempts = 5
		backoff := time.Second
		for attempt := 1; attempt <= maxAttempts; attempt++ {
			client, errConn := database.ConnectMongo(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout)
			if errConn == nil {
				defer func() { _ = client.Disconnect(ctx) }()
				col := client.Database(cfg.MongoDB.Database).Collection("friends")
				repo = repository.NewMongoRepo(col)
				mongoOK = true
				break
			}
			log.WithError(errConn).Warnf("attempt %d/%d: failed to connect to MongoDB", attempt, maxAttempts)
			if attempt < maxAttempts {
				time.Sleep(backoff)
				backoff *= 2
			}
		}
	}
	if repo == nil {
		log.Warn("no MongoDB available; using in-memory friend store")
		repo = repository.NewMemoryRepo()
	}

	svc := service.New(repo, log, cfg.MongoDB.OpTimeout)

	schema, err := handlers.NewSchema(svc)
	if err != nil {
		log.WithError(err).Fatal("failed to build GraphQL schema")
	}

	// Optional bearer-token gate in front of /graphql
	var verifier middleware.Verifier
	switch {
	case cfg.Auth.OIDCIssuer != "":
		v, err := auth.NewOIDCVerifier(ctx, cfg.Auth.OIDCIssuer, cfg.Auth.OIDCClientID)
		if err != nil {
			log.WithError(err).Warn("failed to initialize OIDC verifier; /graphql stays open")
		} else {
			verifier = v
		}
	case cfg.Auth.JWTSecret != "":
		verifier = auth.NewHMACVerifier(cfg.Auth.JWTSecret)
	}

	if verifier != nil {
		handlers.RegisterGraphQL(r.Group("/", middleware.AuthMiddleware(verifier)), schema)
	} else {
		handlers.RegisterGraphQL(r, schema)
	}
	handlers.RegisterPlayground(r)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "healthy")
	})

	r.GET("/ready", func(c *gin.Context) {
		deps := map[string]bool{
			// the in-memory store keeps the service usable without Mongo
			"storage": true,
			"mongo":   mongoOK || cfg.MongoDB.URI == "",
			"redis":   redisClient != nil || cfg.Redis.Host == "",
		}
		ready := true
		for _, ok := range deps {
			if !ok {
				ready = false
			}
		}
		status := http.StatusOK
		body := gin.H{"status": "ready", "deps": deps, "uptime": time.Since(startTime).String()}
		if !ready {
			status = http.StatusServiceUnavailable
			body["status"] = "not_ready"
		}
		c.JSON(status, body)
	})

	// Expose Prometheus metrics
	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	log.Infof("starting agebook service on %s", addr)
	if err := r.Run(addr); err != nil {
		log.WithError(err).Fatal("server failed")
	}
}
