// cmd/server/main.go
package main

import (
	"context"
	"fmt"
	"io"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/crypto/bcrypt"

	g "github.com/mahabubulhasibshawon/grpc-kiosk-cart/internal/adapters/grpc"
	"github.com/mahabubulhasibshawon/grpc-kiosk-cart/internal/adapters/redis"
	"github.com/mahabubulhasibshawon/grpc-kiosk-cart/internal/adapters/repository"
	"github.com/mahabubulhasibshawon/grpc-kiosk-cart/internal/application"
	"github.com/mahabubulhasibshawon/grpc-kiosk-cart/internal/config"
	"github.com/mahabubulhasibshawon/grpc-kiosk-cart/internal/ports"
	"github.com/mahabubulhasibshawon/grpc-kiosk-cart/pkg/auth"
)

var (
	envFile  string
	addr     string
	seedFile string
	verbose  bool

	logger *zap.Logger
	level  = zap.NewAtomicLevelAt(zapcore.InfoLevel)
)

var rootCmd = &cobra.Command{
	Use:   "server",
	Short: "Kiosk shopping-cart service",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zcfg := zap.NewProductionConfig()
		if verbose {
			level.SetLevel(zapcore.DebugLevel)
		}
		zcfg.Level = level
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the gRPC kiosk service",
	RunE:  serve,
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the admin checkout scenario against an in-process store",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDemo(cmd.Context(), cmd.OutOrStdout())
	},
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Print order and contact events published to redis",
	RunE:  watch,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "config", ".env", "dotenv file to load")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	serveCmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides SHOP_LISTEN_ADDR)")
	serveCmd.Flags().StringVar(&seedFile, "seed-file", "", "YAML seed users (overrides SHOP_SEED_FILE)")
	rootCmd.AddCommand(serveCmd, demoCmd, watchCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serve(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(envFile)
	if err != nil {
		return err
	}
	if addr != "" {
		cfg.ListenAddr = addr
	}
	if seedFile != "" {
		if cfg.Seeds, err = config.LoadSeeds(seedFile); err != nil {
			return err
		}
	}
	if lvl, err := zapcore.ParseLevel(cfg.LogLevel); err == nil && !verbose {
		level.SetLevel(lvl)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var publisher ports.PublisherPort
	if cfg.RedisAddr != "" {
		feed := redis.NewFeed(cfg.RedisAddr, cfg.RedisUsername, cfg.RedisPassword, cfg.RedisDB, cfg.RedisChannelPrefix)
		defer feed.Close()
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		err := feed.Ping(pingCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("failed to connect to Redis: %w", err)
		}
		publisher = feed
		logger.Info("publishing kiosk events", zap.String("redis", cfg.RedisAddr), zap.String("prefix", cfg.RedisChannelPrefix))
	}

	hasher := auth.NewBcryptHasher(cfg.BcryptCost)
	factory, err := application.NewStoreFactory(repository.NewMemoryCredentialRepository, repository.NewMemoryCartRepository, hasher, cfg.Seeds)
	if err != nil {
		return err
	}
	terminals := application.NewTerminalService(factory, application.TerminalLimits{TTL: cfg.TokenTTL, MaxOpen: cfg.MaxTerminals}, publisher, logger)
	srv := g.NewServer(terminals, auth.NewTokenIssuer(cfg.TokenSecret, cfg.TokenTTL), logger)
	grpcServer := srv.NewGRPCServer()

	lis, err := net.Listen("tcp", cfg.ListenAddr)
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	go func() {
		<-ctx.Done()
		logger.Info("shutting down", zap.Int("open_terminals", terminals.Count()))
		grpcServer.GracefulStop()
	}()

	logger.Info("gRPC server listening", zap.String("addr", cfg.ListenAddr), zap.Int("seed_users", len(cfg.Seeds)))
	if err := grpcServer.Serve(lis); err != nil {
		return fmt.Errorf("failed to serve: %w", err)
	}
	return nil
}

func watch(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(envFile)
	if err != nil {
		return err
	}
	if cfg.RedisAddr == "" {
		return fmt.Errorf("REDIS_ADDR is required to watch the feed")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	feed := redis.NewFeed(cfg.RedisAddr, cfg.RedisUsername, cfg.RedisPassword, cfg.RedisDB, cfg.RedisChannelPrefix)
	defer feed.Close()

	sub := feed.Subscribe(ctx, application.TopicOrders, application.TopicContact)
	defer sub.Close()
	if _, err := sub.Receive(ctx); err != nil {
		return fmt.Errorf("failed to subscribe: %w", err)
	}
	logger.Info("watching kiosk events", zap.String("redis", cfg.RedisAddr), zap.String("prefix", cfg.RedisChannelPrefix))

	return runWatch(ctx, sub.Channel(), cmd.OutOrStdout())
}

// runWatch prints each message as "<channel> <payload>" until ctx ends or
// msgs is closed.
func runWatch(ctx context.Context, msgs <-chan *goredis.Message, out io.Writer) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-msgs:
			if !ok {
				return nil
			}
			fmt.Fprintf(out, "%s %s\n", msg.Channel, msg.Payload)
		}
	}
}

func runDemo(ctx context.Context, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	store := application.NewSessionCartStore(
		repository.NewMemoryCredentialRepository(),
		repository.NewMemoryCartRepository(),
		auth.NewBcryptHasher(bcrypt.MinCost),
	)
	if err := store.Seed(ctx, config.DefaultSeeds()); err != nil {
		return err
	}

	steps := []struct {
		label string
		event application.Event
	}{
		{"login admin/1234", application.LoginSubmitted{Username: "admin", Password: "1234"}},
		{"add Book $10", application.AddToCartClicked{Item: "Book", Price: 10}},
		{"add Pen $2", application.AddToCartClicked{Item: "Pen", Price: 2}},
		{"render", application.RenderRequested{}},
		{"place order", application.OrderSubmitted{}},
		{"place order again", application.OrderSubmitted{}},
	}
	for _, step := range steps {
		fmt.Fprintf(out, "> %s\n", step.label)
		res, err := store.Handle(ctx, step.event)
		if err != nil {
			fmt.Fprintf(out, "  error: %v\n", err)
			continue
		}
		if res.Message != "" {
			fmt.Fprintf(out, "  %s\n", res.Message)
		}
		if res.Cart != nil {
			for _, line := range res.Cart.Lines {
				fmt.Fprintf(out, "  %s\n", line)
			}
			fmt.Fprintf(out, "  %s\n", res.Cart.TotalLine)
		}
	}
	return nil
}
