package main

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/goccy/go-yaml"
	"go.lsp.dev/protocol"
	"go.uber.org/zap"
)

// Config holds server settings. Defaults can be overridden by a config file
// and again by workspace/didChangeConfiguration settings from the client.
type Config struct {
	MaxDiagnostics int  `json:"maxDiagnostics" yaml:"maxDiagnostics"`
	SemanticTokens bool `json:"semanticTokens" yaml:"semanticTokens"`
	HoverText      bool `json:"hoverText" yaml:"hoverText"`
}

func defaultConfig() *Config {
	return &Config{
		MaxDiagnostics: 16,
		SemanticTokens: true,
		HoverText:      true,
	}
}

func configPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "morph-lsp", "config.yaml")
}

func loadConfig(logger *zap.Logger) *Config {
	cfg := defaultConfig()
	path := configPath()
	if path == "" {
		return cfg
	}
	d, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}
	if err := yaml.Unmarshal(d, cfg); err != nil {
		logger.Warn("config", zap.String("path", path), zap.Error(err))
		return defaultConfig()
	}
	logger.Info("config loaded", zap.String("path", path))
	return cfg
}

// merge applies client settings as a JSON merge patch over the current
// config.
func (c *Config) merge(settings interface{}) error {
	patch, err := json.Marshal(settings)
	if err != nil {
		return err
	}
	base, err := json.Marshal(c)
	if err != nil {
		return err
	}
	merged, err := jsonpatch.MergePatch(base, patch)
	if err != nil {
		return err
	}
	return json.Unmarshal(merged, c)
}

func (s *Server) DidChangeConfiguration(ctx context.Context, params *protocol.DidChangeConfigurationParams) error {
	if params.Settings == nil {
		return nil
	}
	if err := s.config.merge(params.Settings); err != nil {
		s.logger.Warn("didChangeConfiguration", zap.Error(err))
	}
	return nil
}
