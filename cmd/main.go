package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	_ "github.com/lib/pq"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/ahmedzein1234/legaldocs-sub005/config"
	_ "github.com/ahmedzein1234/legaldocs-sub005/docs"
	"github.com/ahmedzein1234/legaldocs-sub005/internal/handler"
	"github.com/ahmedzein1234/legaldocs-sub005/internal/model"
	"github.com/ahmedzein1234/legaldocs-sub005/internal/ports"
	"github.com/ahmedzein1234/legaldocs-sub005/internal/ratelimit"
	"github.com/ahmedzein1234/legaldocs-sub005/internal/repository"
	"github.com/ahmedzein1234/legaldocs-sub005/internal/security"
	"github.com/ahmedzein1234/legaldocs-sub005/internal/service"
)

// @title Legal Documents Platform API
// @version 1.0
// @description REST API for the legal-document platform: accounts, tokens, rate-limited access

// @host localhost:8080

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.LoadConfig("config.yaml")
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	db, err := config.SetupDatabase(cfg.DatabaseConfig.DSN)
	if err != nil {
		log.Fatalf("failed to connect to the database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("failed to close the database: %v", err)
		}
	}()

	limiter, stopLimiter, err := setupLimiter(cfg)
	if err != nil {
		log.Fatalf("failed to set up the rate limiter: %v", err)
	}
	defer stopLimiter()

	userRepo := repository.NewUserRepository(db)
	tokenService := security.NewTokenService(&cfg.JWT)

	authService := service.NewAuthenticationService(userRepo, tokenService)
	userService := service.NewUserService(userRepo, tokenService)

	authHandler := handler.NewAuthenticationHandler(authService)
	userHandler := handler.NewUserHandler(userService)

	classes, err := buildRateClasses(&cfg.RateLimit)
	if err != nil {
		log.Fatalf("failed to parse rate limit configuration: %v", err)
	}

	srv, router := config.SetupServer(cfg.ServerAddr)

	router.Get("/swagger/*", httpSwagger.WrapHandler)

	setupAuthRoutes(router, authHandler, tokenService, userRepo, limiter, classes)
	setupUserRoutes(router, userHandler, tokenService, userRepo, limiter, classes)

	runServer(ctx, srv)
}

type rateClasses struct {
	Auth      ratelimit.Class
	API       ratelimit.Class
	Sensitive ratelimit.Class
}

func buildRateClasses(cfg *config.RateLimitConfig) (rateClasses, error) {
	authWindow, err := time.ParseDuration(cfg.Auth.Window)
	if err != nil {
		return rateClasses{}, err
	}
	apiWindow, err := time.ParseDuration(cfg.API.Window)
	if err != nil {
		return rateClasses{}, err
	}
	sensitiveWindow, err := time.ParseDuration(cfg.Sensitive.Window)
	if err != nil {
		return rateClasses{}, err
	}

	return rateClasses{
		// Auth endpoints key by IP: brute-force defense must hold before
		// any identity exists.
		Auth: ratelimit.Class{Name: "auth", Window: authWindow, Max: cfg.Auth.Max, Key: ratelimit.KeyByIP("auth")},
		// Per-user endpoints key by authenticated user id.
		API: ratelimit.Class{Name: "api", Window: apiWindow, Max: cfg.API.Max, Key: ratelimit.KeyByUser("api")},
		// Sensitive operations key by (IP, user) jointly.
		Sensitive: ratelimit.Class{Name: "sensitive", Window: sensitiveWindow, Max: cfg.Sensitive.Max, Key: ratelimit.KeyByIPAndUser("sensitive")},
	}, nil
}

// setupLimiter picks the counter backend. "redis" shares state across
// replicas; anything else falls back to the process-local map, which only
// approximates a global limit under horizontal scaling.
func setupLimiter(cfg *config.AppConfig) (ports.Limiter, func(), error) {
	if cfg.RateLimit.Backend == "redis" {
		redisClient, err := config.SetupRedis(&cfg.RedisConfig)
		if err != nil {
			return nil, nil, err
		}
		stop := func() {
			if err := redisClient.Close(); err != nil {
				log.Printf("failed to close redis: %v", err)
			}
		}
		return ratelimit.NewStoreLimiter(repository.NewCacheRepository(redisClient)), stop, nil
	}

	sweepInterval := time.Minute
	if cfg.RateLimit.SweepInterval != "" {
		parsed, err := time.ParseDuration(cfg.RateLimit.SweepInterval)
		if err != nil {
			return nil, nil, err
		}
		sweepInterval = parsed
	}

	local := ratelimit.NewLocalLimiter(sweepInterval)
	return local, local.Stop, nil
}

func setupAuthRoutes(r chi.Router, h *handler.AuthenticationHandler, tokens *security.TokenService, users *repository.UserRepository, limiter ports.Limiter, classes rateClasses) {
	r.Route("/api/auth", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(ratelimit.Middleware(limiter, classes.Auth))
			r.Post("/login", h.Login)
			r.Post("/refresh", h.Refresh)
		})
		r.Group(func(r chi.Router) {
			r.Use(security.Authenticate(tokens, users, true))
			r.Use(ratelimit.Middleware(limiter, classes.API))
			r.Get("/me", h.Me)
			r.Post("/logout", h.Logout)
		})
	})
}

func setupUserRoutes(r chi.Router, h *handler.UserHandler, tokens *security.TokenService, users *repository.UserRepository, limiter ports.Limiter, classes rateClasses) {
	r.Route("/api/users", func(r chi.Router) {
		r.With(ratelimit.Middleware(limiter, classes.Auth)).Post("/register", h.Register)

		r.Group(func(r chi.Router) {
			r.Use(security.Authenticate(tokens, users, true))
			r.Use(ratelimit.Middleware(limiter, classes.API))

			r.With(security.RequireRole(model.RoleAdmin)).Get("/", h.ListUsers)

			r.Route("/{uuid}", func(r chi.Router) {
				r.Get("/", h.GetUser)
				r.Put("/language", h.UpdateLanguage)
				r.With(ratelimit.Middleware(limiter, classes.Sensitive)).Put("/password", h.UpdatePassword)
			})
		})
	})
}

func runServer(ctx context.Context, server *http.Server) {
	serverErrors := make(chan error, 1)
	go func() {
		log.Println("server listening on " + server.Addr)
		serverErrors <- server.ListenAndServe()
	}()

	signalChannel := make(chan os.Signal, 1)
	signal.Notify(signalChannel, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil {
			log.Fatalf("server error: %v", err)
		}
	case sig := <-signalChannel:
		log.Printf("received signal %v, shutting down", sig)
	}

	shutDownCtx, shutDownCancel := context.WithTimeout(ctx, 5*time.Second)
	defer shutDownCancel()

	if err := server.Shutdown(shutDownCtx); err != nil {
		log.Printf("failed to shut down the server: %v", err)
	} else {
		log.Println("server stopped")
	}
}
