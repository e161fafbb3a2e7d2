// Package network provides a pre-configured, optimized HTTP client for catalog API and manifest requests.
package network

import (
	"net/http"
	"time"

	"github.com/contar-cli/contar/key"
	"github.com/spf13/viper"
)

// Client is the singleton HTTP client shared across the application for efficient resource utilization.
// It is configured with increased concurrency limits and a timeout tailored for metadata resolution workflows.
var Client = &http.Client{
	Timeout:   30 * time.Second,
	Transport: newTransport(),
}

// Setup applies the configured per-request timeout to the shared client.
// Must run after config setup and before the first request.
func Setup() {
	if seconds := viper.GetInt(key.NetTimeout); seconds > 0 {
		Client.Timeout = time.Duration(seconds) * time.Second
	}
}

// newTransport initializes a tuned http.Transport with optimized pool and timeout parameters.
func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 100
	t.MaxIdleConnsPerHost = 100
	t.MaxConnsPerHost = 200
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 30 * time.Second
	return t
}
