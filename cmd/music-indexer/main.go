package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/rsperl/google-drive-music-indexer/internal"
	pkgconfig "github.com/rsperl/google-drive-music-indexer/pkg/config"
)

func run(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")

	cfg := internal.NewDefaultConfig()
	if err := pkgconfig.Load(configPath, cfg); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}

	opts := []internal.Option{
		internal.WithConfig(cfg),
		internal.WithPreview(cmd.Bool("preview")),
	}

	if err := internal.Run(ctx, opts...); err != nil {
		return fmt.Errorf("app run error: %w", err)
	}

	return nil
}

func main() {
	cmd := &cli.Command{
		Name:   "music-indexer",
		Usage:  "Index a Google Drive music library into SQLite and a Google Sheet",
		Action: run,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Path to config file",
				DefaultText: ".music_indexer.yaml",
				Value:       ".music_indexer.yaml",
				Sources:     cli.EnvVars("MUSIC_INDEXER_CONFIG_FILE"),
			},
			&cli.BoolFlag{
				Name:  "preview",
				Usage: "Render the catalog as a table instead of publishing to the sheet",
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
