// main.go
//
// Entry point for the wordle API.
//   - `wordle-api` / `wordle-api serve`: run the HTTP server.
//   - `wordle-api dotenv -o DIR`: write the default settings to DIR/.env.default.

package main

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	serve := newServeCmd()
	root := &cobra.Command{
		Use:           "wordle-api",
		Short:         "Word guessing game API",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          serve.RunE,
	}
	root.AddCommand(serve, newDotenvCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal().Err(err).Msg("wordle-api exited")
	}
}
