// Package main is the entry point for the solkit API server.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"solkit/internal/domain/auth"
	"solkit/internal/domain/catalog/kit"
	"solkit/internal/domain/catalog/product"
	"solkit/internal/domain/project"
	v1 "solkit/internal/infrastructure/http/v1"
	"solkit/internal/infrastructure/storage/postgres"
	"solkit/internal/infrastructure/storage/postgres/auth_repo"
	"solkit/internal/infrastructure/storage/postgres/catalog_repo"
	"solkit/internal/infrastructure/storage/postgres/project_repo"
	"solkit/internal/migrations"
	"solkit/pkg/logger"
)

func main() {
	log, err := logger.New(logger.Config{
		Level:       getEnv("LOG_LEVEL", "info"),
		Development: getEnv("APP_ENV", "development") == "development",
	})
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	log.Info("starting solkit server")

	// --- Database ---
	dsn := mustEnv("DATABASE_URL")
	poolCfg := postgres.DefaultPoolConfig(dsn)
	if maxConns := getEnvInt("DB_MAX_CONNS", 0); maxConns > 0 {
		poolCfg.MaxConns = int32(maxConns)
	}

	pool, err := postgres.NewPool(ctx, poolCfg)
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()
	log.Info("database connection established")

	if getEnv("RUN_MIGRATIONS", "true") == "true" {
		if err := migrations.Up(pool.Unwrap()); err != nil {
			log.Fatalw("failed to run migrations", "error", err)
		}
		log.Info("migrations applied")
	}

	txManager := postgres.NewTxManager(pool)

	// --- History ---
	historyService, err := postgres.NewHistoryService(txManager)
	if err != nil {
		log.Fatalw("failed to create history service", "error", err)
	}

	// --- Repositories ---
	productRepo := catalog_repo.NewProductRepo(txManager)
	kitRepo := catalog_repo.NewKitRepo(txManager, productRepo)
	projectRepo := project_repo.NewProjectRepo(txManager, kitRepo)
	userRepo := auth_repo.NewUserRepo(txManager)
	tokenRepo := auth_repo.NewTokenRepo(txManager)

	// --- Services ---
	productService := product.NewService(productRepo, txManager)
	kitService := kit.NewService(kitRepo, txManager)
	projectService := project.NewService(projectRepo, txManager)

	registerHistoryHooks(productService, kitService, projectService, historyService, log)

	// --- JWT / Auth ---
	jwtSecret := mustEnv("JWT_SECRET")
	jwtService := auth.NewJWTService(auth.DefaultJWTConfig(jwtSecret))

	authService := auth.NewService(
		userRepo,
		tokenRepo,
		txManager,
		jwtService,
		auth.DefaultServiceConfig(),
	)

	// --- Router ---
	router := v1.NewRouter(v1.RouterConfig{
		Pool:           pool,
		Logger:         log,
		JWTValidator:   jwtService,
		AuthService:    authService,
		ProductService: productService,
		KitService:     kitService,
		ProjectService: projectService,
		HistoryService: historyService,
	})

	// --- HTTP Server ---
	port := getEnv("APP_PORT", "8080")
	server := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Infow("server starting", "port", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalw("server failed", "error", err)
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	// Give outstanding requests 30 seconds to complete
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalw("server forced to shutdown", "error", err)
	}

	log.Info("server stopped")
}

// registerHistoryHooks records every catalog and project write in the entity
// history. Recording happens after the write and never fails the request.
func registerHistoryHooks(
	productService *product.Service,
	kitService *kit.Service,
	projectService *project.Service,
	history *postgres.HistoryService,
	log *logger.Logger,
) {
	productService.Hooks().OnAfterCreate(func(ctx context.Context, p *product.Product) error {
		if err := history.LogChange(ctx, "product", p.ID, postgres.HistoryActionCreate, postgres.StructToMap(p)); err != nil {
			log.WithContext(ctx).Warnw("history record failed", "entity", "product", "error", err)
		}
		return nil
	})
	productService.Hooks().OnAfterUpdate(func(ctx context.Context, p *product.Product) error {
		if err := history.LogChange(ctx, "product", p.ID, postgres.HistoryActionUpdate, postgres.StructToMap(p)); err != nil {
			log.WithContext(ctx).Warnw("history record failed", "entity", "product", "error", err)
		}
		return nil
	})

	kitService.Hooks().OnAfterCreate(func(ctx context.Context, k *kit.Kit) error {
		if err := history.LogChange(ctx, "kit", k.ID, postgres.HistoryActionCreate, postgres.StructToMap(k)); err != nil {
			log.WithContext(ctx).Warnw("history record failed", "entity", "kit", "error", err)
		}
		return nil
	})
	kitService.Hooks().OnAfterUpdate(func(ctx context.Context, k *kit.Kit) error {
		if err := history.LogChange(ctx, "kit", k.ID, postgres.HistoryActionUpdate, postgres.StructToMap(k)); err != nil {
			log.WithContext(ctx).Warnw("history record failed", "entity", "kit", "error", err)
		}
		return nil
	})

	projectService.OnChange(func(ctx context.Context, p *project.Project, action project.ChangeAction) {
		if err := history.LogChange(ctx, "project", p.ID, postgres.HistoryAction(action), postgres.StructToMap(p)); err != nil {
			log.WithContext(ctx).Warnw("history record failed", "entity", "project", "error", err)
		}
	})
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func mustEnv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		fmt.Printf("required environment variable %s not set\n", key)
		os.Exit(1)
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		var result int
		if _, err := fmt.Sscanf(value, "%d", &result); err == nil {
			return result
		}
	}
	return defaultValue
}
