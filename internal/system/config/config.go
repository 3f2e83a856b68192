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

// Package config provides structures and functions for loading and managing server configurations.
package config

import (
	"os"
	"path/filepath"

	"github.com/vtomdoc/vtomdoc/internal/system/log"

	yaml "gopkg.in/yaml.v3"
)

const (
	// DefaultServerPort is the port used when the configuration does not define one.
	DefaultServerPort = 8009
	// DefaultVTOMTimeout is the upstream call timeout in seconds.
	DefaultVTOMTimeout = 10
	// DefaultMaxImportFileSize is the largest export file accepted by the importer.
	DefaultMaxImportFileSize int64 = 10 * 1024 * 1024
	// DefaultImportExtension is the only file extension accepted when none are configured.
	DefaultImportExtension = ".xml"
	// DefaultPlanDataFile is the bundled default plan, relative to the server home.
	DefaultPlanDataFile = "repository/resources/plan-data.json"
	// VTOMAPIKeyEnvironmentVariable overrides the configured scheduler API key.
	VTOMAPIKeyEnvironmentVariable = "VTOM_API_KEY"
)

// ServerConfig holds the server configuration details.
type ServerConfig struct {
	Hostname string `yaml:"hostname"`
	Port     int    `yaml:"port"`
	HTTPOnly bool   `yaml:"http_only"`
}

// SecurityConfig holds the security configuration details.
type SecurityConfig struct {
	CertFile string `yaml:"cert_file"`
	KeyFile  string `yaml:"key_file"`
}

// CORSConfig holds the allowed origins for cross origin requests.
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// VTOMConfig holds the scheduler REST API connection details.
type VTOMConfig struct {
	BaseURL   string `yaml:"base_url"`
	APIKey    string `yaml:"api_key"`
	Timeout   int    `yaml:"timeout"`
	VerifyTLS bool   `yaml:"verify_tls"`
}

// ImportConfig holds the limits applied to uploaded export files.
type ImportConfig struct {
	MaxFileSize       int64    `yaml:"max_file_size"`
	AllowedExtensions []string `yaml:"allowed_extensions"`
}

// PlanConfig holds the location of the default plan payload.
type PlanConfig struct {
	DataFile string `yaml:"data_file"`
}

// Config holds the complete configuration details of the server.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Security SecurityConfig `yaml:"security"`
	CORS     CORSConfig     `yaml:"cors"`
	VTOM     VTOMConfig     `yaml:"vtom"`
	Import   ImportConfig   `yaml:"import"`
	Plan     PlanConfig     `yaml:"plan"`
}

// LoadConfig loads the configurations from the specified YAML file.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	path = filepath.Clean(path)

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if ferr := file.Close(); ferr != nil {
			log.GetLogger().Error("Failed to close config file", log.Error(ferr))
		}
	}()

	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	cfg.applyEnvironmentOverrides()
	return &cfg, nil
}

// applyDefaults fills zero valued settings with their defaults.
func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = DefaultServerPort
	}
	if c.VTOM.Timeout <= 0 {
		c.VTOM.Timeout = DefaultVTOMTimeout
	}
	if c.Import.MaxFileSize <= 0 {
		c.Import.MaxFileSize = DefaultMaxImportFileSize
	}
	if len(c.Import.AllowedExtensions) == 0 {
		c.Import.AllowedExtensions = []string{DefaultImportExtension}
	}
	if c.Plan.DataFile == "" {
		c.Plan.DataFile = DefaultPlanDataFile
	}
}

func (c *Config) applyEnvironmentOverrides() {
	if apiKey := os.Getenv(VTOMAPIKeyEnvironmentVariable); apiKey != "" {
		c.VTOM.APIKey = apiKey
	}
}
