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

// Package main is the entry point for starting the plan documentation server.
package main

import (
	"crypto/tls"
	"flag"
	"fmt"
	"net/http"
	"os"
	"path"
	"time"

	"github.com/vtomdoc/vtomdoc/internal/system/cert"
	"github.com/vtomdoc/vtomdoc/internal/system/config"
	"github.com/vtomdoc/vtomdoc/internal/system/log"
)

func main() {
	logger := log.GetLogger()

	serverHome := getServerHome(logger)

	cfg := initConfigurations(logger, serverHome)
	if cfg == nil {
		logger.Fatal("Failed to initialize configurations")
	}

	mux := http.NewServeMux()
	registerServices(mux, cfg, serverHome)

	if cfg.Server.HTTPOnly {
		logger.Info("TLS is not enabled, starting server without TLS")
		startHTTPServer(logger, cfg, mux)
	} else {
		startTLSServer(logger, cfg, mux, serverHome)
	}
}

// getServerHome retrieves and returns the server home directory.
func getServerHome(logger *log.Logger) string {
	serverHome := ""
	serverHomeFlag := flag.String("serverHome", "", "Path to the server home directory")
	flag.Parse()

	if *serverHomeFlag != "" {
		logger.Info("Using serverHome from command line argument", log.String("serverHome", *serverHomeFlag))
		serverHome = *serverHomeFlag
	} else {
		dir, dirErr := os.Getwd()
		if dirErr != nil {
			logger.Fatal("Failed to get current working directory", log.Error(dirErr))
		}
		serverHome = dir
	}

	return serverHome
}

// initConfigurations loads the deployment configuration and initializes the runtime.
func initConfigurations(logger *log.Logger, serverHome string) *config.Config {
	configFilePath := path.Join(serverHome, "repository/conf/deployment.yaml")
	cfg, err := config.LoadConfig(configFilePath)
	if err != nil {
		logger.Fatal("Failed to load configurations", log.Error(err))
	}

	if err := config.InitializeRuntime(serverHome, cfg); err != nil {
		logger.Fatal("Failed to initialize server runtime", log.Error(err))
	}

	return cfg
}

// startTLSServer starts the HTTPS server with TLS configuration.
func startTLSServer(logger *log.Logger, cfg *config.Config, mux *http.ServeMux, serverHome string) {
	server, serverAddr := createHTTPServer(logger, cfg, mux)

	tlsConfig, err := cert.GetTLSConfig(cfg, serverHome)
	if err != nil {
		logger.Fatal("Failed to load TLS configuration", log.Error(err))
	}

	ln, err := tls.Listen("tcp", serverAddr, tlsConfig)
	if err != nil {
		logger.Fatal("Failed to start TLS listener", log.Error(err))
	}

	logger.Info("Plan documentation server started (HTTPS)...", log.String("address", serverAddr))

	if err := server.Serve(ln); err != nil {
		logger.Fatal("Failed to serve requests", log.Error(err))
	}
}

// startHTTPServer starts the HTTP server without TLS.
func startHTTPServer(logger *log.Logger, cfg *config.Config, mux *http.ServeMux) {
	server, serverAddr := createHTTPServer(logger, cfg, mux)

	logger.Info("Plan documentation server started (HTTP)...", log.String("address", serverAddr))

	if err := server.ListenAndServe(); err != nil {
		logger.Fatal("Failed to serve HTTP requests", log.Error(err))
	}
}

// createHTTPServer creates and configures an HTTP server with common settings.
func createHTTPServer(logger *log.Logger, cfg *config.Config, mux *http.ServeMux) (*http.Server, string) {
	wrappedMux := log.AccessLogHandler(logger, mux)

	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Hostname, cfg.Server.Port)

	// The write timeout outlasts the scheduler call timeout.
	writeTimeout := time.Duration(cfg.VTOM.Timeout)*time.Second + 20*time.Second

	server := &http.Server{
		Addr:              serverAddr,
		Handler:           wrappedMux,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       120 * time.Second,
	}

	return server, serverAddr
}
