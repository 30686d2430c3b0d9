package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle-api/internal/config"
)

func newDotenvCmd() *cobra.Command {
	var outDir string
	cmd := &cobra.Command{
		Use:   "dotenv",
		Short: "Write the default settings to .env.default",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := writeDefaultEnv(outDir)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}
	cmd.Flags().StringVarP(&outDir, "output", "o", ".", "output directory")
	return cmd
}

func writeDefaultEnv(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create %s: %w", dir, err)
	}
	env := make(map[string]string, len(config.Defaults))
	for _, d := range config.Defaults {
		env[d.Key] = d.Value
	}
	path := filepath.Join(dir, ".env.default")
	if err := godotenv.Write(env, path); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
