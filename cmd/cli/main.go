package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	host   string
	gameID uint32
)

var rootCmd = &cobra.Command{
	Use:   "gm-cli",
	Short: "A CLI to interact with the guess-the-gm server",
	Long: `A command-line interface for making requests to the various endpoints
of the guess-the-gm application.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&host, "host", "http://localhost:8080", "The host address of the server")
	rootCmd.PersistentFlags().Uint32Var(&gameID, "game", 1337, "The game id to play")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Whoops. There was an error while executing your command '%s'", err)
		os.Exit(1)
	}
}

func main() {
	Execute()
}
