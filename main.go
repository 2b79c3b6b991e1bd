package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"h3llo-cms/config"
	"h3llo-cms/handlers"
	"h3llo-cms/helper"
	"h3llo-cms/logging"
	"h3llo-cms/repositories"
	"h3llo-cms/services"
	"h3llo-cms/store"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		fmt.Fprintln(os.Stderr, "No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format)
	gin.SetMode(gin.ReleaseMode)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize store
	kv, err := config.InitStore(ctx, cfg.Store)
	if err != nil {
		return fmt.Errorf("init store: %w", err)
	}
	defer kv.Close()
	logger.Info("connected to store", "driver", cfg.Store.Driver)

	router := handlers.SetupRouter(buildHandlers(ctx, cfg, kv, logger), logger)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowedHeaders: []string{"Origin", "Content-Type", "Accept"},
	})

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      corsHandler.Handler(router),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case sig := <-sigCh:
		logger.Info("received signal, shutting down", "signal", sig)
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("error shutting down http server", "error", err)
	}
	return nil
}

func buildHandlers(ctx context.Context, cfg config.Config, kv store.Store, logger *slog.Logger) handlers.Handlers {
	httpHelper := helper.NewHTTPHelper(logger)

	// Initialize repositories
	articleRepo := repositories.NewArticleRepository(kv, logger)
	tagRepo := repositories.NewTagRepository(kv)
	publicationIndex := repositories.NewPublicationIndex(kv)
	pageRepo := repositories.NewPageRepository(kv)
	demoUserRepo := repositories.NewDemoUserRepository(kv)

	var completer services.TextCompleter
	if cfg.OpenAI.APIKey != "" {
		completer = services.NewOpenAICompleter(cfg.OpenAI.APIKey, cfg.OpenAI.Model)
	} else {
		logger.Warn("OPENAI_API_KEY not set; post generation disabled")
	}

	var sheetReader services.ColumnReader
	if cfg.Signup.CredentialsJSON != "" && cfg.Signup.SheetID != "" {
		reader, err := services.NewSheetsColumnReader(ctx, cfg.Signup.CredentialsJSON, cfg.Signup.SheetID, cfg.Signup.Range)
		if err != nil {
			logger.Error("sheets client unavailable; signup counter disabled", "error", err)
		} else {
			sheetReader = reader
		}
	} else {
		logger.Warn("signup sheet not configured; signup counter disabled")
	}

	// Initialize services
	articleService := services.NewArticleService(articleRepo, tagRepo, publicationIndex, cfg.Articles.MaxPageSize, logger)
	linkingService := services.NewLinkingService(articleRepo, publicationIndex,
		cfg.Articles.DefaultCandidateLimit, cfg.Articles.MaxCandidateLimit, logger)
	sitemapService := services.NewSitemapService(articleRepo, publicationIndex, cfg.Sitemap)
	pageService := services.NewPageService(pageRepo, logger)
	demoUserService := services.NewDemoUserService(demoUserRepo, logger)
	postService := services.NewPostService(completer, logger)
	signupService := services.NewSignupService(sheetReader, cfg.Signup.BaseCount, cfg.Signup.Capacity, logger)

	return handlers.Handlers{
		Article:  handlers.NewArticleHandler(articleService, httpHelper),
		Linking:  handlers.NewLinkingHandler(linkingService, httpHelper),
		Sitemap:  handlers.NewSitemapHandler(sitemapService, httpHelper),
		Page:     handlers.NewPageHandler(pageService, httpHelper),
		DemoUser: handlers.NewDemoUserHandler(demoUserService, httpHelper),
		Post:     handlers.NewPostHandler(postService, httpHelper),
		Signup:   handlers.NewSignupHandler(signupService, httpHelper),
		Health:   handlers.NewHealthHandler(kv),
	}
}
