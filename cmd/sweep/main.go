// Command sweep triggers the due-goal check against a running server. It is
// meant to be run by an external scheduler, e.g.:
//
//	0 9 * * * /usr/local/bin/sweep
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type sweepResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

func main() {
	_ = godotenv.Load()

	baseURL := os.Getenv("APP_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8090"
	}

	slog.Info("checking due goals", "url", baseURL)

	client := &http.Client{Timeout: 60 * time.Second}
	resp, err := client.Get(baseURL + "/api/check-due-goals")
	if err != nil {
		slog.Error("sweep request failed", "error", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	var result sweepResponse
	err = json.NewDecoder(resp.Body).Decode(&result)
	if err != nil {
		slog.Error("failed to decode sweep response", "error", err, "status", resp.StatusCode)
		os.Exit(1)
	}

	if resp.StatusCode != http.StatusOK || !result.Success {
		slog.Error("sweep failed", "status", resp.StatusCode, "error", result.Error)
		os.Exit(1)
	}

	fmt.Println(result.Message)
}
