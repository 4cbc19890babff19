package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lifei6671/guizhanlib/internal/config"
	"github.com/lifei6671/guizhanlib/internal/logger"
)

var errIssuesFound = errors.New("issues found")

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errIssuesFound) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string
	cfg := config.Default()

	root := &cobra.Command{
		Use:           "guizhanlint",
		Short:         "Minecraft 插件语言文件检查与名称翻译工具",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			cfg = loaded
			logger.SetOutput(cmd.ErrOrStderr())
			if err := logger.SetLevel(cfg.LogLevel); err != nil {
				return err
			}
			if cfg.Source != "" {
				logger.Named("lint").WithField("config", cfg.Source).Debug("config loaded")
			}
			return nil
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.guizhanlint.toml)")

	root.AddCommand(
		newCheckCmd(&cfg),
		newHumanizeCmd(),
		newDehumanizeCmd(),
		newLabelCmd(),
	)
	return root
}
