package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const (
	configFileName = "config.toml"
	envFileName    = ".env"
)

type Config struct {
	RootDir       string `toml:"-"`
	DistPath      string `toml:"dist"`
	PostsPath     string `toml:"posts"`
	TemplatesPath string `toml:"templates"`
}

// loadConfig resolves the site directories. Environment variables win over
// variables from <root>/.env, which win over <root>/config.toml, which wins
// over the <root>/dist, <root>/posts and <root>/templates defaults.
func loadConfig(rootPath string) (Config, error) {
	cfg := Config{RootDir: rootPath}

	if err := parseConfig(&cfg, filepath.Join(rootPath, configFileName)); err != nil {
		return cfg, err
	}

	envFile := filepath.Join(rootPath, envFileName)
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("error reading %s: %w", envFile, err)
	}

	cfg.DistPath = getEnv("DIST_PATH", cfg.resolve(cfg.DistPath, "dist"))
	cfg.PostsPath = getEnv("POSTS_PATH", cfg.resolve(cfg.PostsPath, "posts"))
	cfg.TemplatesPath = getEnv("TEMPLATES_PATH", cfg.resolve(cfg.TemplatesPath, "templates"))

	return cfg, nil
}

// parseConfig reads the optional TOML configuration file
func parseConfig(cfg *Config, file string) error {
	_, err := toml.DecodeFile(file, cfg)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("error reading %s: %w", file, err)
	}
	return nil
}

func (c Config) resolve(path string, fallback string) string {
	if path == "" {
		path = fallback
	}
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.RootDir, path)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
