package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/the-horizon-dev/fast-language-guesser/config"
	"github.com/the-horizon-dev/fast-language-guesser/controller"
	"github.com/the-horizon-dev/fast-language-guesser/guesser"
	"github.com/the-horizon-dev/fast-language-guesser/utils"
)

var logger = utils.Logger

func readConfig(configFile string) (*viper.Viper, *config.Envelope) {
	viperInstance := viper.New()
	viperInstance.SetConfigName("config")
	viperInstance.SetConfigType("yaml")
	if configFile != "" {
		viperInstance.SetConfigFile(configFile)
	} else {
		viperInstance.AddConfigPath("/etc/fast-language-guesser/")
		viperInstance.AddConfigPath("$HOME/.fast-language-guesser")
		viperInstance.AddConfigPath("./config")
	}
	viperInstance.SetEnvPrefix("FLG")
	viperInstance.AutomaticEnv()
	// Set default values
	viperInstance.SetDefault("server.address", ":8080")
	viperInstance.SetDefault("detection.min_length", guesser.DefaultMinLength)
	viperInstance.SetDefault("detection.limit", guesser.DefaultLimit)

	envelope := &config.Envelope{}
	if err := viperInstance.ReadInConfig(); err != nil {
		// The server is fully usable without a config file.
		logger.WithError(err).Warn("No config file loaded, using defaults")
	} else {
		logger.Infof("Using config file: %s", viperInstance.ConfigFileUsed())
		parsed, err := config.LoadConfigFromFile(viperInstance.ConfigFileUsed())
		if err != nil {
			logger.WithError(err).Fatal("Failed to parse configuration")
		}
		envelope = parsed
	}
	if envelope.Server.Address == "" {
		envelope.Server.Address = viperInstance.GetString("server.address")
	}
	if envelope.Detection.MinLength <= 0 {
		envelope.Detection.MinLength = viperInstance.GetInt("detection.min_length")
	}
	if envelope.Detection.Limit <= 0 {
		envelope.Detection.Limit = viperInstance.GetInt("detection.limit")
	}
	return viperInstance, envelope
}

func NewServerCommand() *cobra.Command {
	var configFile string

	serverCommand := &cobra.Command{
		Use:   "server",
		Short: "Starting server",
		Run: func(cmd *cobra.Command, args []string) {
			echoServer := echo.New()
			_, envelope := readConfig(configFile)

			c := controller.NewController(guesser.NewDetector(), envelope.Detection)

			echoServer.Use(echoprometheus.NewMiddleware("flg"))
			// Set routes
			echoServer.GET("/metrics", echoprometheus.NewHandler())
			echoServer.GET("/health", func(c echo.Context) error {
				return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
			})
			echoServer.Use(middleware.CORS()) // Enable CORS for all origins

			// RESTful API routes
			apiGroup := echoServer.Group("/api/v1")
			apiGroup.Use(middleware.Logger())

			// Apply Bearer Token authentication if tokens are configured
			tokens := envelope.Server.Tokens
			if len(tokens) > 0 {
				logger.Infof("Bearer token authentication enabled with %d token(s)", len(tokens))
				apiGroup.Use(utils.CreateBearerTokenMiddleware(tokens))
			} else {
				logger.Warn("Bearer token authentication disabled - no tokens configured")
			}

			apiGroup.GET("/guess", c.GuessText)
			apiGroup.GET("/guess/mixed", c.GuessMixed)
			apiGroup.GET("/languages", c.ListLanguages)

			// Start server in a goroutine
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			go func() {
				addr := envelope.Server.Address
				logger.Infof("Starting server on %s", addr)
				if err := echoServer.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.WithError(err).Error("Server start error")
				}
			}()

			// Wait for interrupt signal to gracefully shutdown the server with a timeout
			<-ctx.Done()
			stop()
			logger.Info("Shutting down server gracefully, press Ctrl+C again to force")

			// Graceful shutdown with timeout
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := echoServer.Shutdown(shutdownCtx); err != nil {
				logger.WithError(err).Error("Server forced to shutdown")
			}

			logger.Info("Server stopped gracefully")
		},
	}
	serverCommand.Flags().StringVar(&configFile, "config", "", "Path to config file")
	return serverCommand
}
