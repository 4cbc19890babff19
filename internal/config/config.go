// Package config 读取 guizhanlint 的默认参数。
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Config 对应 ~/.guizhanlint.toml。
type Config struct {
	Dir      string `toml:"dir"`
	Base     string `toml:"base"`
	Fail     bool   `toml:"fail"`
	LogLevel string `toml:"log_level"`
	Source   string `toml:"-"`
}

func Default() Config {
	return Config{
		Dir:      "./lang",
		LogLevel: "info",
	}
}

func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".guizhanlint.toml")
}

// Load 读取配置文件，文件不存在时使用默认值；环境变量优先于文件。
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultPath()
	}

	if path != "" {
		content, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := toml.Unmarshal(content, &cfg); err != nil {
				return cfg, err
			}
			cfg.Source = path
		case !errors.Is(err, os.ErrNotExist):
			return cfg, err
		}
	}

	if env := strings.TrimSpace(os.Getenv("GUIZHANLINT_DIR")); env != "" {
		cfg.Dir = env
	}
	if env := strings.TrimSpace(os.Getenv("GUIZHANLINT_BASE")); env != "" {
		cfg.Base = env
	}
	return cfg, nil
}
