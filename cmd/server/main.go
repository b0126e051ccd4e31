/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

// Package main is the entry point for starting the payout widget server.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/asgardeo/payoutwidget/internal/managers"
	"github.com/asgardeo/payoutwidget/internal/system/cert"
	"github.com/asgardeo/payoutwidget/internal/system/config"
	serverconst "github.com/asgardeo/payoutwidget/internal/system/constants"
	"github.com/asgardeo/payoutwidget/internal/system/log"
	"github.com/asgardeo/payoutwidget/internal/system/middleware"
)

const shutdownTimeout = 10 * time.Second

type cli struct {
	serverHome string
}

func main() {
	c := &cli{}

	rootCmd := &cobra.Command{
		Use:   "payoutwidget",
		Short: "Payout onboarding flow server",
	}
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the payout flow HTTP server",
		RunE:  c.serve,
	}
	serveCmd.Flags().StringVar(&c.serverHome, "home", "", "Path to the server home directory")
	rootCmd.AddCommand(serveCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func (c *cli) serve(cmd *cobra.Command, args []string) error {
	logger := log.GetLogger()
	defer log.Sync()

	serverHome, err := c.getServerHome(logger)
	if err != nil {
		return err
	}

	cfg, err := initConfigurations(serverHome)
	if err != nil {
		return err
	}

	router := chi.NewRouter()
	serviceManager := managers.NewServiceManager(router, cfg)
	defer serviceManager.Close()
	if err := serviceManager.RegisterServices(); err != nil {
		logger.Error("Failed to register the services", log.Error(err))
		return err
	}

	return startServer(logger, cfg, router, serverHome)
}

// getServerHome returns the server home directory, defaulting to the working directory.
func (c *cli) getServerHome(logger *log.Logger) (string, error) {
	if c.serverHome != "" {
		logger.Info("Using server home from command line argument", log.String("home", c.serverHome))
		return c.serverHome, nil
	}
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	return dir, nil
}

// initConfigurations loads the deployment configuration and initializes the runtime.
func initConfigurations(serverHome string) (*config.Config, error) {
	cfg, err := config.LoadConfig(path.Join(serverHome, serverconst.DeploymentConfigPath))
	if err != nil {
		return nil, fmt.Errorf("load configurations: %w", err)
	}
	if err := config.InitializePayoutRuntime(serverHome, cfg); err != nil {
		return nil, fmt.Errorf("initialize payout runtime: %w", err)
	}
	return cfg, nil
}

// startServer serves requests until SIGINT or SIGTERM and then drains in-flight requests.
// TLS is used unless the server runs in HTTP only mode.
func startServer(logger *log.Logger, cfg *config.Config, router chi.Router, serverHome string) error {
	handler := chimiddleware.Recoverer(router)
	handler = middleware.WithCORS(middleware.CORSOptions{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   "GET, POST, PUT, DELETE, OPTIONS",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	})(handler)
	handler = log.AccessLogHandler(logger)(handler)

	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Hostname, cfg.Server.Port)
	server := &http.Server{
		Addr:              serverAddr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if !cfg.Server.HTTPOnly {
		tlsConfig, err := cert.GetTLSConfig(cfg, serverHome)
		if err != nil {
			logger.Error("Failed to load TLS configuration", log.Error(err))
			return err
		}
		server.TLSConfig = tlsConfig
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("Payout widget server started", log.String("address", serverAddr),
			log.String("mode", cfg.Server.Mode), log.Bool("tls", server.TLSConfig != nil))
		if server.TLSConfig != nil {
			serveErr <- server.ListenAndServeTLS("", "")
			return
		}
		serveErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Failed to serve requests", log.Error(err))
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down payout widget server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Failed to shut down the server gracefully", log.Error(err))
		return err
	}
	return nil
}
