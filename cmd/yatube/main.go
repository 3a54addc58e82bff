// Command yatube runs the Yatube blog and its administrative tasks.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Kirill2434/yatube/internal/app"
	"github.com/Kirill2434/yatube/internal/config"
	"github.com/Kirill2434/yatube/internal/domain"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:           "yatube",
		Short:         "Yatube blog server",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (YAML); defaults to $CONFIG_PATH or ./config.yaml")

	load := func() (*config.Config, error) {
		if configPath == "" {
			return config.Load()
		}
		return config.LoadFrom(configPath)
	}

	cmd.AddCommand(serveCmd(load), migrateCmd(load), groupCmd(load), versionCmd())
	return cmd
}

type loader func() (*config.Config, error)

func serveCmd(load loader) *cobra.Command {
	var migrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the site over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			return app.Run(cmd.Context(), cfg, app.NewLogger(cfg.Log), app.Options{Migrate: migrate})
		},
	}
	cmd.Flags().BoolVar(&migrate, "migrate", false, "Apply pending migrations before serving")
	return cmd
}

func migrateCmd(load loader) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage database migrations",
	}
	for _, direction := range []struct{ name, short string }{
		{app.MigrateUp, "Apply all pending migrations"},
		{app.MigrateDown, "Roll back the most recent migration"},
		{app.MigrateStatus, "List migrations and whether they are applied"},
	} {
		cmd.AddCommand(&cobra.Command{
			Use:   direction.name,
			Short: direction.short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg, err := load()
				if err != nil {
					return err
				}
				return app.Migrate(cmd.Context(), cfg, app.NewLogger(cfg.Log), direction.name)
			},
		})
	}
	return cmd
}

func groupCmd(load loader) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "group",
		Short: "Administer post groups",
	}

	var g domain.Group
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a group",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			created, err := app.CreateGroup(cmd.Context(), cfg, app.NewLogger(cfg.Log), g)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created group %d (%s)\n", created.ID, created.Slug)
			return nil
		},
	}
	create.Flags().StringVar(&g.Title, "title", "", "Group title")
	create.Flags().StringVar(&g.Slug, "slug", "", "Unique URL slug")
	create.Flags().StringVar(&g.Description, "description", "", "Group description")
	_ = create.MarkFlagRequired("title")
	_ = create.MarkFlagRequired("slug")

	cmd.AddCommand(create)
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "yatube %s\n", app.BuildVersion())
		},
	}
}
