package main

import (
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(revealCmd)
	rootCmd.AddCommand(skipCmd)
	rootCmd.AddCommand(predictCmd)
	rootCmd.AddCommand(answerCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(metricsCmd)
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/health")
	},
}

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start a new game",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest(fmt.Sprintf("/start_game?game_id=%d", gameID))
	},
}

var revealCmd = &cobra.Command{
	Use:   "reveal",
	Short: "Reveal the next hint category",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest(fmt.Sprintf("/category?game_id=%d", gameID))
	},
}

var skipCmd = &cobra.Command{
	Use:   "skip",
	Short: "Give up and reveal the answer",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest(fmt.Sprintf("/skip?game_id=%d", gameID))
	},
}

var predictCmd = &cobra.Command{
	Use:   "predict [partial name]",
	Short: "Complete a partial player name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/prediction?name=" + url.QueryEscape(args[0]))
	},
}

var answerCmd = &cobra.Command{
	Use:   "answer [name]",
	Short: "Submit a guess for the current game",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest(fmt.Sprintf("/answer?game_id=%d&name=%s", gameID, url.QueryEscape(args[0])))
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Get answer tallies and the live session count",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/stats")
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/metrics")
	},
}

func performGetRequest(endpoint string) error {
	url := host + endpoint
	fmt.Printf("Making request to %s\n", url)

	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	fmt.Printf("Status Code: %d\n", resp.StatusCode)
	fmt.Println("Response Body:")
	fmt.Println(string(body))

	return nil
}
