package simulate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math/rand"
	"net/http"
	"sync"
	"sync/atomic"
	"time"
)

// HTTP status code constants.
const (
	statusOK = 200
)

// httpClient wraps http.Client with a per-request timeout.
type httpClient struct {
	client *http.Client
}

func newHTTPClient(timeout time.Duration) *httpClient {
	return &httpClient{
		client: &http.Client{Timeout: timeout},
	}
}

func (c *httpClient) get(ctx context.Context, url string, out interface{}) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("create request: %w", err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, fmt.Errorf("read body: %w", err)
	}
	if out != nil && resp.StatusCode == statusOK {
		if err := json.Unmarshal(body, out); err != nil {
			return resp.StatusCode, fmt.Errorf("decode body: %w", err)
		}
	}
	return resp.StatusCode, nil
}

func (c *httpClient) post(ctx context.Context, url string, in, out interface{}) (int, error) {
	var buf bytes.Buffer
	if in != nil {
		if err := json.NewEncoder(&buf).Encode(in); err != nil {
			return 0, fmt.Errorf("encode body: %w", err)
		}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &buf)
	if err != nil {
		return 0, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, fmt.Errorf("read body: %w", err)
	}
	if out != nil && resp.StatusCode == statusOK {
		if err := json.Unmarshal(body, out); err != nil {
			return resp.StatusCode, fmt.Errorf("decode body: %w", err)
		}
	}
	return resp.StatusCode, nil
}

// submitVotes drives the battle loop concurrently: each worker draws a
// matchup, picks a winner at random, and submits the vote.
func submitVotes(ctx context.Context, config *Config, stats *Stats) error {
	log.Printf("submitting %d votes with %d workers...", config.NumVotes, config.Workers)

	client := newHTTPClient(config.Timeout)
	battleURL := config.BaseURL + "/api/battle"
	voteURL := config.BaseURL + "/api/vote"

	var (
		submitted  int64
		successful int64
		failed     int64
		drawn      int64
	)

	jobs := make(chan struct{}, config.Workers*2)
	var wg sync.WaitGroup

	for i := 0; i < config.Workers; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(time.Now().UnixNano() + int64(workerID)))

			for range jobs {
				select {
				case <-ctx.Done():
					return
				default:
				}

				var matchup Matchup
				status, err := client.get(ctx, battleURL, &matchup)
				if err != nil || status != statusOK {
					atomic.AddInt64(&submitted, 1)
					atomic.AddInt64(&failed, 1)
					continue
				}
				atomic.AddInt64(&drawn, 1)

				winner, loser := matchup.Model1, matchup.Model2
				if rng.Intn(2) == 1 {
					winner, loser = loser, winner
				}

				var ack AckResponse
				status, err = client.post(ctx, voteURL, VoteRequest{WinnerID: winner.ID, LoserID: loser.ID}, &ack)
				atomic.AddInt64(&submitted, 1)
				if err == nil && status == statusOK && ack.Success {
					atomic.AddInt64(&successful, 1)
					if config.Verbose {
						log.Printf("vote: %s beats %s", winner.Name, loser.Name)
					}
				} else {
					atomic.AddInt64(&failed, 1)
				}
			}
		}(i)
	}

	go func() {
		defer close(jobs)
		for i := 0; i < config.NumVotes; i++ {
			select {
			case <-ctx.Done():
				return
			case jobs <- struct{}{}:
			}
		}
	}()

	wg.Wait()

	stats.VotesSubmitted = int(atomic.LoadInt64(&submitted))
	stats.VotesSuccessful = int(atomic.LoadInt64(&successful))
	stats.VotesFailed = int(atomic.LoadInt64(&failed))
	stats.BattlesDrawn = int(atomic.LoadInt64(&drawn))

	log.Printf("vote submission completed: successful=%d failed=%d", stats.VotesSuccessful, stats.VotesFailed)
	return nil
}
