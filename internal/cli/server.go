package cli

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"carv-arcade-service/internal/app"
	"carv-arcade-service/internal/auth"
	"carv-arcade-service/internal/config"
	"carv-arcade-service/internal/content"
	"carv-arcade-service/internal/infra/memory"
	pgloader "carv-arcade-service/internal/infra/postgres"
	infraredis "carv-arcade-service/internal/infra/redis"
	transport "carv-arcade-service/internal/transport/http"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

const defaultNonceTTL = 5 * time.Minute

// NewServerCmd builds the CLI subcommand to start the server.
func NewServerCmd(configPath, port *string) *cobra.Command {
	return &cobra.Command{
		Use:   "server",
		Short: "Start the arcade points server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), *configPath, *port)
		},
	}
}

func runServer(ctx context.Context, configPath, portFlag string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if cfg.Postgres.URL != "" {
		if err := runMigrationsWithConfig(ctx, cfg); err != nil {
			return err
		}
	}

	finalPort := portFlag
	if finalPort == "" {
		finalPort = cfg.Server.Port
	}
	if finalPort == "" {
		finalPort = "8080"
	}

	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	}

	var pool *pgxpool.Pool
	if cfg.Postgres.URL != "" {
		pool, err = pgxpool.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			return err
		}
		defer pool.Close()
	}

	var loader memory.QuestionLoader = memory.NewStaticQuestionLoader(content.Questions())
	if pool != nil {
		loader = pgloader.NewQuestionLoader(pool)
	}
	questionTTL := config.TTLDuration(cfg.Questions.TTL, 10*time.Minute)
	bank := memory.NewQuestionBank(loader, questionTTL)

	nonceTTL := config.TTLDuration(cfg.Auth.NonceTTL, defaultNonceTTL)
	var nonces app.NonceRegistry = memory.NewNonceStore(nonceTTL)
	var ledger app.Ledger = memory.NewLedger()
	if redisClient != nil {
		nonces = infraredis.NewNonceStore(redisClient, nonceTTL)
		ledger = infraredis.NewLedger(redisClient)
	}

	var verifier app.SignatureVerifier = auth.NewAcceptAll()
	if cfg.Auth.VerifySignatures {
		verifier = auth.NewEd25519Verifier()
	} else {
		log.Printf("signature verification disabled; do not run this mode in production")
	}

	service := app.NewArcadeService(nonces, bank, ledger, verifier)
	handler := transport.NewHandler(service)
	wsHandler := transport.NewWSHandler(service)

	server := &http.Server{
		Addr:         ":" + finalPort,
		Handler:      transport.NewRouter(handler, wsHandler),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		log.Printf("starting arcade service on :%s", finalPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("failed to start server: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		log.Println("shutting down server...")
	case <-ctx.Done():
		log.Println("context canceled, shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
