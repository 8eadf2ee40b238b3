package seedroster

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"sync"
	"sync/atomic"
	"time"
)

// HTTPClient wraps http.Client with timeout
type HTTPClient struct {
	client  *http.Client
	timeout time.Duration
}

// newHTTPClient creates a new HTTP client with timeout
func newHTTPClient(timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		client: &http.Client{
			Timeout: timeout,
		},
		timeout: timeout,
	}
}

// Get performs a GET request
func (c *HTTPClient) Get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	return c.client.Do(req)
}

// Post performs a POST request with JSON body
func (c *HTTPClient) Post(ctx context.Context, url string, body interface{}) (*http.Response, error) {
	var buf io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		buf = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, buf)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	return c.client.Do(req)
}

// readResponseBody reads and closes the response body
func readResponseBody(resp *http.Response) ([]byte, error) {
	defer resp.Body.Close()
	return io.ReadAll(resp.Body)
}

// submitProfiles submits profiles concurrently using worker pools
func submitProfiles(ctx context.Context, config *Config, profiles []Profile, stats *Stats) error {
	log.Printf("📤 Submitting %d profiles with %d workers...", len(profiles), config.Workers)

	client := newHTTPClient(config.Timeout)
	url := config.BaseURL + "/profiles"

	// Counters for statistics
	var (
		successful int64
		failed     int64
		submitted  int64
	)

	// Progress reporting
	var lastReport time.Time
	reportInterval := 1 * time.Second

	// Create worker pool
	profileChan := make(chan Profile, config.Workers*WorkerChannelMultiplier)
	var wg sync.WaitGroup

	// Start workers
	for i := 0; i < config.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for profile := range profileChan {
				select {
				case <-ctx.Done():
					return
				default:
					atomic.AddInt64(&submitted, 1)
					if submitSingleProfile(ctx, client, url, profile) {
						atomic.AddInt64(&successful, 1)
					} else {
						atomic.AddInt64(&failed, 1)
					}

					// Progress reporting
					if time.Since(lastReport) >= reportInterval {
						lastReport = time.Now()
						total := atomic.LoadInt64(&submitted)
						succ := atomic.LoadInt64(&successful)
						fail := atomic.LoadInt64(&failed)

						if config.Verbose {
							log.Printf("📊 Progress: %d/%d submitted (success: %d, failed: %d)",
								total, len(profiles), succ, fail)
						} else {
							fmt.Printf("\r📤 Submitted: %d/%d (success: %d, failed: %d)",
								total, len(profiles), succ, fail)
						}
					}
				}
			}
		}()
	}

	// Send profiles to workers
	go func() {
		defer close(profileChan)
		for _, profile := range profiles {
			select {
			case <-ctx.Done():
				return
			case profileChan <- profile:
			}
		}
	}()

	// Wait for all workers to complete
	wg.Wait()

	// Final progress report
	if !config.Verbose {
		fmt.Println() // New line after progress indicator
	}

	// Update stats
	stats.ProfilesSubmitted = int(atomic.LoadInt64(&submitted))
	stats.ProfilesSuccessful = int(atomic.LoadInt64(&successful))
	stats.ProfilesFailed = int(atomic.LoadInt64(&failed))

	log.Printf(`✅ Profile submission completed:
   Successful: %d
   Failed: %d
`, stats.ProfilesSuccessful, stats.ProfilesFailed)

	return nil
}

// submitSingleProfile submits one profile and reports success
func submitSingleProfile(ctx context.Context, client *HTTPClient, url string, profile Profile) bool {
	resp, err := client.Post(ctx, url, profile)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	return resp.StatusCode == StatusCreated
}

// formTeams asks the service to partition the roster into teams
func formTeams(ctx context.Context, config *Config, client *HTTPClient, stats *Stats) ([]TeamView, error) {
	url := fmt.Sprintf("%s/teams/form?size=%d", config.BaseURL, config.TeamSize)

	resp, err := client.Post(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to form teams: %w", err)
	}

	body, err := readResponseBody(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to read formation response: %w", err)
	}
	if resp.StatusCode != StatusOK {
		return nil, fmt.Errorf("team formation failed with status: %d", resp.StatusCode)
	}

	var teams []TeamView
	if err := json.Unmarshal(body, &teams); err != nil {
		return nil, fmt.Errorf("failed to decode teams: %w", err)
	}

	stats.TeamsFormed = len(teams)
	for _, t := range teams {
		stats.ParticipantsPlaced += len(t.Members)
	}
	return teams, nil
}

// fetchCatalog retrieves the roster's interest and skill catalog
func fetchCatalog(ctx context.Context, config *Config, client *HTTPClient) (Catalog, error) {
	resp, err := client.Get(ctx, config.BaseURL+"/catalog")
	if err != nil {
		return Catalog{}, fmt.Errorf("failed to fetch catalog: %w", err)
	}

	body, err := readResponseBody(resp)
	if err != nil {
		return Catalog{}, fmt.Errorf("failed to read catalog response: %w", err)
	}
	if resp.StatusCode != StatusOK {
		return Catalog{}, fmt.Errorf("catalog fetch failed with status: %d", resp.StatusCode)
	}

	var c Catalog
	if err := json.Unmarshal(body, &c); err != nil {
		return Catalog{}, fmt.Errorf("failed to decode catalog: %w", err)
	}
	return c, nil
}
