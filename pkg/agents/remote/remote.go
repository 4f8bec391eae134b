// Package remote implements the HTTP side of delegation: a client that
// speaks to an agent hosted in another process. The wire surface is small on
// purpose: a query endpoint and a static agent card served at a well-known
// path for capability discovery. The client satisfies agents.Agent, so a
// roster can mix local shells and remote agents freely.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/germanamz/relay/pkg/telemetry"
)

// WellKnownCardPath is where a hosted agent serves its card.
const WellKnownCardPath = "/.well-known/agent-card.json"

// HeaderParentHop carries the caller's hop id across process boundaries so
// delegated hops stay linked in exported telemetry.
const HeaderParentHop = "X-Relay-Parent-Hop"

// Card is an agent's static self-description.
type Card struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Version     string   `json:"version"`
	Skills      []string `json:"skills,omitempty"`
}

// QueryRequest is the body of a query POST.
type QueryRequest struct {
	Query string `json:"query"`
}

// QueryResponse is the body of a query reply.
type QueryResponse struct {
	Response string `json:"response"`
}

// Client calls an agent hosted at a base URL. It implements agents.Agent.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a Client for the agent at baseURL.
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// FetchCard retrieves the agent's card from the well-known path.
func (c *Client) FetchCard(ctx context.Context) (Card, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+WellKnownCardPath, nil)
	if err != nil {
		return Card{}, fmt.Errorf("remote: build card request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return Card{}, fmt.Errorf("remote: fetch card: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Card{}, fmt.Errorf("remote: fetch card: unexpected status %d", resp.StatusCode)
	}

	var card Card
	if err := json.NewDecoder(resp.Body).Decode(&card); err != nil {
		return Card{}, fmt.Errorf("remote: decode card: %w", err)
	}

	return card, nil
}

// Handle forwards the query to the remote agent and returns its text
// response. The current hop id, if any, is propagated so the remote hop is
// recorded as a child of this one.
func (c *Client) Handle(ctx context.Context, query string) (string, error) {
	body, err := json.Marshal(QueryRequest{Query: query})
	if err != nil {
		return "", fmt.Errorf("remote: encode query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/query", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("remote: build query request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	if hop := telemetry.HopFromContext(ctx); hop != "" {
		req.Header.Set(HeaderParentHop, hop)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("remote: query %s: %w", c.baseURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Read a little of the body for the error, but never fail on it.
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return "", fmt.Errorf("remote: query %s: status %d: %s", c.baseURL, resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	var qr QueryResponse
	if err := json.NewDecoder(resp.Body).Decode(&qr); err != nil {
		return "", fmt.Errorf("remote: decode response: %w", err)
	}

	return qr.Response, nil
}
