package main

import (
	"net/http"
	"os"
	"time"
)

// Container HEALTHCHECK probe: exit 0 when /health answers 200, 1 otherwise.
func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	client := &http.Client{Timeout: 3 * time.Second}
	resp, err := client.Get("http://localhost:" + port + "/health")
	if err != nil || resp.StatusCode != http.StatusOK {
		os.Exit(1)
	}
	os.Exit(0)
}
