// Package main implements the rfctl CLI for manual operations against
// the reflectd HTTP server.
package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	// serverURL is the base URL for the reflectd HTTP server
	serverURL string
	// version information
	version = "dev"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "rfctl",
	Short: "CLI for reflectd HTTP server operations",
	Long: `rfctl is a command-line interface for interacting with the reflectd HTTP server.
It translates reflections, runs interpretive lenses, fetches cultural guidance,
and reports accumulation trends.`,
	Version: version,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "http://localhost:9310", "reflectd server URL")
	rootCmd.AddCommand(translateCmd)
	rootCmd.AddCommand(lensCmd)
	rootCmd.AddCommand(guidanceCmd)
	rootCmd.AddCommand(trendCmd)
	rootCmd.AddCommand(timelineCmd)
	rootCmd.AddCommand(healthCmd)
}

// HealthResponse matches internal/httpapi HealthResponse.
type HealthResponse struct {
	Status string `json:"status"`
}

// healthCmd checks server health
var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check reflectd server health",
	Long: `Check the health status of the reflectd HTTP server.

Examples:
  # Check health
  rfctl health

  # Check health on a different server
  rfctl health --server http://localhost:8080`,
	RunE: runHealth,
}

func runHealth(cmd *cobra.Command, args []string) error {
	url := fmt.Sprintf("%s/health", serverURL)

	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Get(url)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: Failed to connect to %s: %v\n", url, err)
		return err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return err
	}

	var healthResp HealthResponse
	if err := json.NewDecoder(resp.Body).Decode(&healthResp); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	fmt.Printf("Server Status: %s\n", healthResp.Status)
	fmt.Printf("Server URL: %s\n", serverURL)

	return nil
}
