package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/WilliamWisten/DatabasteknikInl-mning/internal/adapter/storage"
	"github.com/WilliamWisten/DatabasteknikInl-mning/internal/adapter/terminal"
	"github.com/WilliamWisten/DatabasteknikInl-mning/internal/config"
	"github.com/WilliamWisten/DatabasteknikInl-mning/internal/core/service"
	"github.com/WilliamWisten/DatabasteknikInl-mning/internal/database"
	"github.com/WilliamWisten/DatabasteknikInl-mning/internal/logging"
	"github.com/WilliamWisten/DatabasteknikInl-mning/internal/port"
)

// runSession never returns an error: every failure is printed for the
// customer and the process exits normally.
func runSession(cmd *cobra.Command, opts *rootOptions) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	cfg, err := opts.load()
	if err != nil {
		fmt.Fprintf(out, "Could not load configuration: %v\n", err)
		return nil
	}
	logger := logging.New(cfg.Log.Level, cfg.Log.Format, cmd.ErrOrStderr())

	db, err := database.NewConnection(ctx, &cfg.DB)
	if err != nil {
		fmt.Fprintf(out, "Could not connect to the database: %v\n", err)
		return nil
	}
	defer db.Close()

	conn, err := db.Conn(ctx)
	if err != nil {
		fmt.Fprintf(out, "Could not connect to the database: %v\n", err)
		return nil
	}
	defer conn.Close()

	fmt.Fprintln(out, "Connected to the database.")

	guard, closeGuard := newSubmissionGuard(ctx, cfg.Redis, logger)
	defer closeGuard()

	store := storage.NewMySQLAdapter(conn)
	session := service.NewSession(
		service.NewAuthService(store, logger),
		service.NewCatalogService(store, logger),
		service.NewOrderService(store, guard, logger),
		terminal.NewConsole(cmd.InOrStdin(), out),
		logger,
	)

	state, err := session.Run(ctx)
	logger.Debug("session finished", "session", session.ID(), "state", state.String(), "halted", err != nil)
	return nil
}

// newSubmissionGuard falls back to a guard that accepts everything when no
// Redis is configured or it does not answer.
func newSubmissionGuard(ctx context.Context, cfg config.RedisConfig, logger *slog.Logger) (port.SubmissionGuard, func()) {
	if cfg.Addr == "" {
		return storage.NoopGuard{}, func() {}
	}

	client := redis.NewClient(&redis.Options{Addr: cfg.Addr})
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("redis unavailable, cart submissions are not deduplicated", "addr", cfg.Addr, "error", err)
		client.Close()
		return storage.NoopGuard{}, func() {}
	}

	return storage.NewRedisAdapter(client, cfg.SubmissionTTL), func() { client.Close() }
}
