package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/glydose/glydose/internal/config"
	"github.com/glydose/glydose/internal/domain/recommendation"
	"github.com/glydose/glydose/internal/platform/dosetable"
	"github.com/glydose/glydose/internal/platform/middleware"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "glydose-server",
		Short: "Insulin dose advisory server",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(recommendCmd())
	rootCmd.AddCommand(tableCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the advisory API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

// recommendCmd runs the pipeline once against a request read from a file or
// stdin and prints the recommendation, without starting a server.
func recommendCmd() *cobra.Command {
	var inputFile string

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Produce a single recommendation from a JSON request",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			var in io.Reader = os.Stdin
			if inputFile != "" {
				f, err := os.Open(inputFile)
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}

			var raw map[string]any
			if err := json.NewDecoder(in).Decode(&raw); err != nil {
				return fmt.Errorf("decode request: %w", err)
			}

			holder := dosetable.NewHolder(dosetable.Load(cfg.AlgorithmConfig, logger))
			svc := recommendation.NewService(holder, logger)

			rec, err := svc.Recommend(raw)
			if err != nil {
				out, _ := json.MarshalIndent(map[string]string{"error": fmt.Sprintf("Invalid input: %s", err)}, "", "  ")
				fmt.Println(string(out))
				return nil
			}

			out, err := json.MarshalIndent(rec, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputFile, "file", "f", "", "JSON request file (defaults to stdin)")
	return cmd
}

// tableCmd prints the resolved dose table so operators can verify what a
// CSV source actually loaded.
func tableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "table",
		Short: "Print the resolved dose table",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			t := dosetable.Load(cfg.AlgorithmConfig, logger)
			for _, kind := range []dosetable.Kind{dosetable.KindIV, dosetable.KindBasal} {
				fmt.Printf("%s:\n", kind)
				for _, level := range t.Levels(kind) {
					entries, _ := t.Entries(kind, level)
					for _, e := range entries {
						fmt.Printf("  level %d  %4.0f-%-4.0f  %g\n", level, e.Min, e.Max, e.Dose)
					}
				}
			}
			return nil
		},
	}
}

func newLogger() zerolog.Logger {
	if os.Getenv("ENV") == "development" || os.Getenv("ENV") == "" {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}
	return zerolog.New(os.Stdout).With().Timestamp().Logger()
}

func runServer() error {
	// Logger
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("ENV") == "development" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}

	// Config
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}

	// Dose table, published behind an atomic holder so a SIGHUP reload can
	// swap it without disturbing in-flight requests.
	holder := dosetable.NewHolder(dosetable.Load(cfg.AlgorithmConfig, logger))

	// Echo server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{"Content-Type", "X-Request-ID"},
	}))

	// Health check
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"version": "0.1.0",
		})
	})

	// Recommendation endpoint
	svc := recommendation.NewService(holder, logger)
	recommendation.NewHandler(svc).RegisterRoutes(e.Group(""))

	// Reload the dose table on SIGHUP
	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	go func() {
		for range hup {
			holder.Store(dosetable.Load(cfg.AlgorithmConfig, logger))
			logger.Info().Msg("dose table reloaded")
		}
	}()

	// Start server
	go func() {
		logger.Info().Str("port", cfg.Port).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	signal.Stop(hup)

	logger.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(ctx)
}
