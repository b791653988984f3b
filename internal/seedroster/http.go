package seedroster

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/talentscan/talentscan/internal/domain/model"
	"github.com/talentscan/talentscan/pkg/logger"
)

// httpClient wraps http.Client with a request timeout.
type httpClient struct {
	client *http.Client
}

func newHTTPClient(timeout time.Duration) *httpClient {
	return &httpClient{client: &http.Client{Timeout: timeout}}
}

func (c *httpClient) get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	return c.client.Do(req)
}

func (c *httpClient) postJSON(ctx context.Context, url string, body any) (*http.Response, error) {
	raw, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.client.Do(req)
}

func drainAndClose(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}

// submitRoster posts candidates concurrently with a bounded worker set.
func submitRoster(ctx context.Context, config *Config, roster []*model.Candidate, stats *Stats) error {
	log := logger.Get()
	log.Info(ctx, "submitting roster",
		logger.Int("candidates", len(roster)),
		logger.Int("workers", config.Workers))

	client := newHTTPClient(config.Timeout)
	url := config.BaseURL + "/candidates"

	var created, duplicate, failed int64

	jobs := make(chan *model.Candidate)
	var wg sync.WaitGroup
	for w := 0; w < config.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for cand := range jobs {
				resp, err := client.postJSON(ctx, url, cand)
				if err != nil {
					atomic.AddInt64(&failed, 1)
					if config.Verbose {
						log.Warn(ctx, "candidate submission failed",
							logger.String("candidate_id", cand.ID),
							logger.Error(err))
					}
					continue
				}
				switch resp.StatusCode {
				case http.StatusCreated:
					atomic.AddInt64(&created, 1)
				case http.StatusConflict:
					atomic.AddInt64(&duplicate, 1)
				default:
					atomic.AddInt64(&failed, 1)
				}
				drainAndClose(resp)
			}
		}()
	}

	for _, cand := range roster {
		select {
		case jobs <- cand:
		case <-ctx.Done():
			close(jobs)
			wg.Wait()
			return ctx.Err()
		}
	}
	close(jobs)
	wg.Wait()

	stats.CandidatesSubmitted = len(roster)
	stats.CandidatesCreated = int(created)
	stats.CandidatesDuplicate = int(duplicate)
	stats.CandidatesFailed = int(failed)

	if failed > 0 {
		return fmt.Errorf("%d of %d submissions failed", failed, len(roster))
	}
	return nil
}

// runSearch exercises the loaded roster with one ranked query.
func runSearch(ctx context.Context, config *Config, stats *Stats) (*searchResponse, error) {
	client := newHTTPClient(config.Timeout)

	resp, err := client.postJSON(ctx, config.BaseURL+"/search", map[string]any{
		"query": config.SearchQuery,
	})
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search returned status %d", resp.StatusCode)
	}

	var result searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}

	stats.SearchResults = len(result.Candidates)
	return &result, nil
}

// fetchTopTalent reads the talent index head.
func fetchTopTalent(ctx context.Context, config *Config, stats *Stats) ([]indexEntry, error) {
	client := newHTTPClient(config.Timeout)

	url := fmt.Sprintf("%s/talent/top?limit=%d", config.BaseURL, config.TopN)
	resp, err := client.get(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("talent index request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("talent index returned status %d", resp.StatusCode)
	}

	var body struct {
		Entries []indexEntry `json:"entries"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode talent index response: %w", err)
	}

	stats.IndexEntries = len(body.Entries)
	return body.Entries, nil
}
