package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/yoonjl-svg/exhibition-report-generator-v3/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "exhibit",
	Short: "Comparative analysis for exhibition operating statistics",
	Long:  "Compares one exhibition's operating statistics against a historical corpus and produces ranked Korean-language insights, evaluation drafts, and a similar-exhibition table.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
