package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vforvitorio/portfolio/internal/config"
	"github.com/vforvitorio/portfolio/internal/content"
	"github.com/vforvitorio/portfolio/internal/export"
	"github.com/vforvitorio/portfolio/internal/logging"
	"github.com/vforvitorio/portfolio/internal/web"
)

var exportDir string

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Personal portfolio site",
	Long: `portfolio serves a single-page portfolio with expandable project cards,
or exports it as static HTML.

Content comes from the embedded catalog unless CONTENT_FILE points at a
YAML file. Settings are read from the environment and an optional .env file.`,
	SilenceUsage: true,
	RunE:         runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the site over HTTP",
	RunE:  runServe,
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the site as static HTML",
	Long: `Write index.html, one page per project with that project expanded, and
the stylesheet into the output directory. The pages link to each other, so
the cards still open and close without a server.

Examples:
  portfolio export --out public`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportDir, "out", "o", "public", "output directory")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(exportCmd)
}

func setup() (*config.Config, *zap.Logger, *content.Store, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, err
	}
	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, nil, nil, err
	}
	store, err := content.NewStore(cfg.Content.File, logger)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load content: %w", err)
	}
	return cfg, logger, store, nil
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, logger, store, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	gin.SetMode(cfg.Server.GinMode)

	var metrics *web.Metrics
	if cfg.Server.MetricsEnabled {
		metrics = web.NewMetrics()
	}
	srv, err := web.NewServer(web.Options{
		Store:          store,
		Logger:         logger,
		Metrics:        metrics,
		ServiceName:    cfg.App.Name,
		Version:        cfg.App.Version,
		ToggleRate:     cfg.Server.ToggleRate,
		ToggleBurst:    cfg.Server.ToggleBurst,
		TrustedProxies: cfg.Server.TrustedProxies,
		WatchContent:   cfg.Content.Watch,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting portfolio",
		zap.String("version", cfg.App.Version),
		zap.Int("projects", store.Current().Catalog.Len()),
		zap.Bool("metrics", cfg.Server.MetricsEnabled))
	return srv.Serve(ctx, cfg.Addr())
}

func runExport(cmd *cobra.Command, _ []string) error {
	_, logger, store, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	res, err := export.Write(exportDir, store.Current(), logger)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %d pages and %d assets to %s\n", len(res.Pages), len(res.Assets), exportDir)
	return nil
}
