package pokeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"battletower/internal/domain"
)

// Client talks to a PokeAPI-compatible listing/detail service
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// New creates a client for baseURL with the given request timeout
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// ListPage fetches one page of the listing: GET /pokemon?limit=&offset=
func (c *Client) ListPage(ctx context.Context, limit, offset int) (*Page, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))
	query.Set("offset", strconv.Itoa(offset))

	var body listResponse
	if err := c.getJSON(ctx, "/pokemon?"+query.Encode(), &body); err != nil {
		return nil, fmt.Errorf("list page offset=%d: %w", offset, err)
	}
	return body.toPage(), nil
}

// Detail fetches one record: GET /pokemon/<nameOrId>
func (c *Client) Detail(ctx context.Context, nameOrID string) (*domain.Creature, error) {
	if nameOrID == "" {
		return nil, fmt.Errorf("detail: empty name")
	}

	var body detailResponse
	if err := c.getJSON(ctx, "/pokemon/"+url.PathEscape(strings.ToLower(nameOrID)), &body); err != nil {
		return nil, fmt.Errorf("detail %s: %w", nameOrID, err)
	}
	return body.toCreature(), nil
}

// Close releases idle keep-alive connections
func (c *Client) Close() {
	c.HTTPClient.CloseIdleConnections()
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return &APIError{StatusCode: resp.StatusCode, Status: resp.Status, Path: path}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	return nil
}
