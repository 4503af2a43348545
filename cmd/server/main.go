package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/yatube/api/internal/cache"
	"github.com/yatube/api/internal/config"
	"github.com/yatube/api/internal/database"
	"github.com/yatube/api/internal/handler"
	"github.com/yatube/api/internal/middleware"
	"github.com/yatube/api/internal/repository"
	"github.com/yatube/api/internal/service"
	"github.com/yatube/api/pkg/jwt"
)

func main() {
	// Initialize structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize database connection
	db := database.NewSurrealDB(database.Config{
		Host:      cfg.Database.Host,
		Port:      cfg.Database.Port,
		User:      cfg.Database.User,
		Password:  cfg.Database.Password,
		Namespace: cfg.Database.Namespace,
		Database:  cfg.Database.Database,
	})

	ctx := context.Background()
	if err := db.Connect(ctx); err != nil {
		slog.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	slog.Info("connected to database",
		slog.String("host", cfg.Database.Host),
		slog.String("database", cfg.Database.Database),
	)

	// Initialize JWT service
	jwtService, err := jwt.NewService(jwt.Config{
		PrivateKeyPath: cfg.JWT.PrivateKeyPath,
		PublicKeyPath:  cfg.JWT.PublicKeyPath,
		Issuer:         cfg.JWT.Issuer,
		ExpirationMins: cfg.JWT.ExpirationMins,
	})
	if err != nil {
		slog.Error("failed to initialize JWT service", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize feed cache. Disabled cache means every page hits the
	// database, which is fine for development.
	feedCache := cache.NewFeedCache(cfg.Cache)
	if feedCache != nil {
		if err := feedCache.Ping(ctx); err != nil {
			slog.Warn("feed cache unreachable, continuing without it", slog.String("error", err.Error()))
			feedCache = nil
		} else {
			defer func() { _ = feedCache.Close() }()
			slog.Info("feed cache enabled",
				slog.String("addr", cfg.Cache.Addr),
				slog.Duration("ttl", cfg.Cache.IndexTTL),
			)
		}
	}

	// Initialize media storage for post images
	mediaService, err := service.NewMediaService(cfg.Media)
	if err != nil {
		slog.Error("failed to initialize media storage", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if mediaService != nil {
		if err := mediaService.EnsureBucket(ctx); err != nil {
			slog.Error("failed to prepare media bucket", slog.String("error", err.Error()))
			os.Exit(1)
		}
		slog.Info("media storage enabled", slog.String("bucket", cfg.Media.Bucket))
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	groupRepo := repository.NewGroupRepository(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	followRepo := repository.NewFollowRepository(db)

	// Initialize services
	authService := service.NewAuthService(service.AuthServiceConfig{
		UserRepo: userRepo,
		Signer:   jwtService,
	})

	groupService := service.NewGroupService(service.GroupServiceConfig{
		GroupRepo: groupRepo,
	})

	postService := service.NewPostService(service.PostServiceConfig{
		PostRepo:    postRepo,
		UserRepo:    userRepo,
		GroupRepo:   groupRepo,
		CommentRepo: commentRepo,
	})

	commentService := service.NewCommentService(service.CommentServiceConfig{
		CommentRepo: commentRepo,
		PostRepo:    postRepo,
		UserRepo:    userRepo,
	})

	followService := service.NewFollowService(service.FollowServiceConfig{
		FollowRepo: followRepo,
		UserRepo:   userRepo,
	})

	feedCfg := service.FeedServiceConfig{
		PostRepo:   postRepo,
		UserRepo:   userRepo,
		GroupRepo:  groupRepo,
		FollowRepo: followRepo,
	}
	if feedCache != nil {
		feedCfg.Cache = feedCache
	}
	feedService := service.NewFeedService(feedCfg)

	// Initialize rate limiter
	rateLimiter := middleware.NewRateLimiter(middleware.RateLimitConfig{
		Rate:   100,
		Window: time.Minute,
		Burst:  20,
	})
	defer rateLimiter.Stop()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, cfg.IsProduction())
	feedHandler := handler.NewFeedHandler(feedService, groupService)
	profileHandler := handler.NewProfileHandler(feedService)
	var uploader handler.MediaUploader
	if mediaService != nil {
		uploader = mediaService
	}
	postHandler := handler.NewPostHandler(postService, uploader)
	commentHandler := handler.NewCommentHandler(commentService)
	followHandler := handler.NewFollowHandler(followService)
	adminHandler := handler.NewAdminHandler(groupService)
	healthHandler := handler.NewHealthHandler(db)

	// Create router and register routes. Literal segments take precedence
	// over the {username} wildcards, so /new/, /follow/ and /auth/... are
	// never shadowed by profile routes.
	mux := http.NewServeMux()

	optionalAuth := middleware.OptionalAuth(jwtService)
	loginRequired := middleware.LoginRequired(jwtService)
	apiAuth := middleware.Auth(jwtService)

	// Health check endpoint
	mux.HandleFunc("GET /health", healthHandler.Check)

	// Auth endpoints
	mux.HandleFunc("POST /auth/signup/", authHandler.Signup)
	mux.HandleFunc("POST /auth/login/", authHandler.Login)
	mux.HandleFunc("POST /auth/logout/", authHandler.Logout)
	mux.Handle("GET /auth/me", apiAuth(http.HandlerFunc(authHandler.Me)))

	// Feed endpoints
	mux.Handle("GET /{$}", optionalAuth(http.HandlerFunc(feedHandler.Index)))
	mux.Handle("GET /group/{slug}/", optionalAuth(http.HandlerFunc(feedHandler.Group)))
	mux.Handle("GET /groups/", optionalAuth(http.HandlerFunc(feedHandler.Groups)))
	mux.Handle("GET /follow/", loginRequired(http.HandlerFunc(feedHandler.Following)))

	// Post endpoints
	mux.Handle("GET /new/", loginRequired(http.HandlerFunc(postHandler.CreateForm)))
	mux.Handle("POST /new/", loginRequired(http.HandlerFunc(postHandler.Create)))
	mux.Handle("GET /{username}/{postID}/", optionalAuth(http.HandlerFunc(postHandler.Detail)))
	mux.Handle("GET /{username}/{postID}/edit/", loginRequired(http.HandlerFunc(postHandler.EditForm)))
	mux.Handle("POST /{username}/{postID}/edit/", loginRequired(http.HandlerFunc(postHandler.Edit)))
	mux.Handle("DELETE /{username}/{postID}/", apiAuth(http.HandlerFunc(postHandler.Delete)))
	mux.Handle("POST /{username}/{postID}/comment/", loginRequired(http.HandlerFunc(commentHandler.Add)))

	// Profile and follow endpoints
	mux.Handle("GET /{username}/", optionalAuth(http.HandlerFunc(profileHandler.Profile)))
	mux.Handle("POST /{username}/follow/", loginRequired(http.HandlerFunc(followHandler.Follow)))
	mux.Handle("POST /{username}/unfollow/", loginRequired(http.HandlerFunc(followHandler.Unfollow)))

	// Admin endpoints - requires admin role
	mux.Handle("POST /admin/groups", apiAuth(middleware.RequireAdmin(http.HandlerFunc(adminHandler.CreateGroup))))

	// Apply global middleware
	wrapped := middleware.Chain(
		mux,
		middleware.RequestID,
		middleware.Logger,
		middleware.Recovery,
		middleware.RateLimit(rateLimiter),
	)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      wrapped,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Server.Port),
			slog.String("env", cfg.Server.Env),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", slog.String("error", err.Error()))
	}

	slog.Info("server exited")
}
