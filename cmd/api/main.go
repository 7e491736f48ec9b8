package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/chevoisiatesalvati/guess-what/internal/config"
	"github.com/chevoisiatesalvati/guess-what/internal/handlers"
	"github.com/chevoisiatesalvati/guess-what/internal/logging"
	"github.com/chevoisiatesalvati/guess-what/internal/middleware"
	"github.com/chevoisiatesalvati/guess-what/internal/services"
	"github.com/chevoisiatesalvati/guess-what/internal/sharing"
	"github.com/chevoisiatesalvati/guess-what/internal/units"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "guess-what api: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logBackend, ok := logging.NewLogBackend(os.Stdout, cfg.LogLevel)
	log := logBackend.Logger(logging.SubsystemAPI)
	if !ok {
		log.Warnf("Unknown LOG_LEVEL %q, using info", cfg.LogLevel)
	}
	if envErr != nil {
		log.Debugf("No .env file found, using environment variables")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	net, err := services.ResolveNetwork(cfg)
	if err != nil {
		return err
	}

	client, eth, err := services.DialContract(ctx, cfg, net, logBackend.Logger(logging.SubsystemContract))
	if err != nil {
		return err
	}
	defer eth.Close()
	log.Infof("Using %s (chain %d), contract %s", net.Name, net.ChainID, net.ContractAddress.Hex())

	redisService, err := services.NewRedisService(cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}
	defer redisService.Close()

	jwtService := services.NewJWTService(cfg)
	verifier, err := services.NewQuickAuthVerifier(cfg)
	if err != nil {
		return err
	}
	if verifier == nil {
		log.Warnf("QUICK_AUTH_PUBLIC_KEY is not set, sign in is unverified outside production")
	}

	contractService := services.NewContractService(client, logBackend.Logger(logging.SubsystemContract))
	shareBuilder := sharing.New(cfg.AppURL)
	resolver := &services.PrizeResolver{
		DisplayFeePercent: cfg.DisplayPlatformFeePercent,
		Fees:              contractService,
		Sharing:           shareBuilder,
		Log:               logBackend.Logger(logging.SubsystemGame),
	}

	wsHandler := handlers.NewWebSocketHandler(logBackend.Logger(logging.SubsystemAPI))
	defer wsHandler.Close()

	relay := services.NewGuessRelay(services.GuessRelayConfig{
		Contract:    contractService,
		Locks:       redisService,
		Winnings:    redisService,
		Resolver:    resolver,
		Broadcaster: wsHandler,
		Log:         logBackend.Logger(logging.SubsystemGame),
	})
	adminService := services.NewAdminService(contractService, wsHandler, logBackend.Logger(logging.SubsystemAdmin))
	watcher := services.NewGameWatcher(client, wsHandler, cfg.WatchInterval, logBackend.Logger(logging.SubsystemWatcher))

	authHandler := handlers.NewAuthHandler(redisService, jwtService, verifier, !cfg.IsProduction(), logBackend.Logger(logging.SubsystemAuth))
	userHandler := handlers.NewUserHandler(redisService)
	gameHandler := handlers.NewGameHandler(contractService, relay, redisService, net, logBackend.Logger(logging.SubsystemAPI))
	adminHandler := handlers.NewAdminHandler(adminService, net, logBackend.Logger(logging.SubsystemAdmin))
	ogHandler := handlers.NewOGHandler(shareBuilder, sharing.AccountAssociation{
		Header:    cfg.FarcasterHeader,
		Payload:   cfg.FarcasterPayload,
		Signature: cfg.FarcasterSignature,
	}, logBackend.Logger(logging.SubsystemOG))

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":   "ok",
			"network":  net.Name,
			"chain_id": net.ChainID,
			"backend":  cfg.GameBackend,
		})
	})
	router.GET("/.well-known/farcaster.json", ogHandler.Manifest)
	router.POST("/auth/sign-in", authHandler.SignIn)

	public := router.Group("/api")
	{
		public.GET("/og/game-win", ogHandler.GameWin)
		public.GET("/share/:kind", ogHandler.ShareLinks)
		public.GET("/games/active/count", gameHandler.GetActiveCount)
		public.GET("/games/random", gameHandler.GetRandomGame)
		public.GET("/games/:id", gameHandler.GetGame)
		public.GET("/players/:address/stats", gameHandler.GetPlayerStats)
		public.GET("/leaderboard", gameHandler.GetLeaderboard)
	}

	protected := router.Group("/api")
	protected.Use(middleware.AuthMiddleware(jwtService), middleware.RateLimitMiddleware(redisService))
	{
		protected.GET("/me", userHandler.GetCurrentUser)
		protected.POST("/logout", userHandler.Logout)
		protected.GET("/me/stats", gameHandler.GetMyStats)

		protected.GET("/ws", wsHandler.HandleWebSocket)

		protected.GET("/games/:id/calldata", gameHandler.GetGuessCallData)
		protected.POST("/games/:id/guesses", gameHandler.SubmitGuess)

		admin := protected.Group("/admin")
		{
			admin.GET("/access", adminHandler.GetAccess)
			admin.GET("/admins", adminHandler.GetAdmins)
			admin.GET("/treasury", adminHandler.GetTreasury)
			admin.POST("/games/calldata", adminHandler.CreateGameCallData)
			admin.POST("/tx", adminHandler.RelayTx)
		}

		if cfg.GameBackend == config.BackendLocal {
			entryFee, err := units.ParseEther(cfg.LocalEntryFee)
			if err != nil {
				return fmt.Errorf("invalid LOCAL_ENTRY_FEE: %w", err)
			}

			playHandler := handlers.NewPlayHandler(func() *services.LocalBackend {
				return services.NewLocalBackend(services.LocalBackendConfig{
					EntryFee:  entryFee,
					TimeLimit: cfg.LocalTimeLimit,
					Log:       logBackend.Logger(logging.SubsystemGame),
				})
			}, &services.PrizeResolver{
				DisplayFeePercent: cfg.DisplayPlatformFeePercent,
				Sharing:           shareBuilder,
				Log:               logBackend.Logger(logging.SubsystemGame),
			}, logBackend.Logger(logging.SubsystemGame))

			play := protected.Group("/play")
			{
				play.GET("", playHandler.GetView)
				play.POST("/start", playHandler.Start)
				play.POST("/guess", playHandler.Guess)
				play.GET("/stats", playHandler.GetStats)
			}
		}
	}

	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Infof("Server starting on port %s", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		err := watcher.Run(gctx)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Infof("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
