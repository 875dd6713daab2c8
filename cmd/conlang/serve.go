package main

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/conlang-backend/internal/adapter/postgres"
	"github.com/heartmarshall/conlang-backend/internal/app"
	"github.com/heartmarshall/conlang-backend/internal/auth"
)

func serveCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API until SIGINT or SIGTERM",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			logger := app.NewLogger(cfg.Log)

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return app.Serve(ctx, cfg, logger)
		},
	}
}

func migrateCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	run := func(fn func(ctx context.Context, m *postgres.Migrator, cmd *cobra.Command) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			logger := app.NewLogger(cfg.Log)

			ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Minute)
			defer cancel()

			pool, err := postgres.NewPool(ctx, cfg.Database)
			if err != nil {
				logger.Error("connect to database", slog.String("error", err.Error()))
				return err
			}
			defer pool.Close()

			m, err := postgres.NewMigrator(pool)
			if err != nil {
				return err
			}
			defer m.Close() //nolint:errcheck
			return fn(ctx, m, cmd)
		}
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply every pending migration",
			Args:  cobra.NoArgs,
			RunE: run(func(ctx context.Context, m *postgres.Migrator, cmd *cobra.Command) error {
				results, err := m.Up(ctx)
				if err != nil {
					return err
				}
				for _, r := range results {
					fmt.Fprintf(cmd.OutOrStdout(), "applied %d %s (%s)\n", r.Source.Version, r.Source.Path, r.Duration)
				}
				if len(results) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "schema is up to date")
				}
				return nil
			}),
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back the most recent migration",
			Args:  cobra.NoArgs,
			RunE: run(func(ctx context.Context, m *postgres.Migrator, cmd *cobra.Command) error {
				r, err := m.Down(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "rolled back %d %s\n", r.Source.Version, r.Source.Path)
				return nil
			}),
		},
		&cobra.Command{
			Use:   "status",
			Short: "List migrations and whether they are applied",
			Args:  cobra.NoArgs,
			RunE: run(func(ctx context.Context, m *postgres.Migrator, cmd *cobra.Command) error {
				statuses, err := m.Status(ctx)
				if err != nil {
					return err
				}
				for _, s := range statuses {
					applied := "pending"
					if !s.AppliedAt.IsZero() {
						applied = s.AppliedAt.UTC().Format(time.RFC3339)
					}
					fmt.Fprintf(cmd.OutOrStdout(), "%-6d %-40s %s\n", s.Source.Version, s.Source.Path, applied)
				}
				return nil
			}),
		},
	)
	return cmd
}

func tokenCmd(opts *options) *cobra.Command {
	var (
		editor string
		role   string
		name   string
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint an editor bearer token",
		Long: `token signs a bearer token with the configured secret. Mutation routes
require one; read routes never do. A random editor id is used unless
--editor is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}

			editorID := uuid.New()
			if editor != "" {
				if editorID, err = uuid.Parse(editor); err != nil {
					return fmt.Errorf("--editor: %w", err)
				}
			}

			mgr := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.TokenTTL)
			token, err := mgr.GenerateToken(editorID, auth.Role(role), name)
			if err != nil {
				return err
			}

			if opts.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), map[string]string{
					"editor_id": editorID.String(),
					"role":      role,
					"token":     token,
					"expires":   time.Now().Add(cfg.Auth.TokenTTL).UTC().Format(time.RFC3339),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&editor, "editor", "", "Editor id (UUID)")
	cmd.Flags().StringVar(&role, "role", string(auth.RoleEditor), "Role: editor or admin")
	cmd.Flags().StringVar(&name, "name", "", "Display name stored in the token")
	return cmd
}
