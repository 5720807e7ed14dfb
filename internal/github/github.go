package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"splatradar/internal/models"
)

const searchEndpoint = "https://api.github.com/search/repositories"

// Client is a thin wrapper around the GitHub repository search API.
type Client struct {
	token      string
	endpoint   string
	httpClient *http.Client
}

func NewClient(token string) *Client {
	return &Client{
		token:      token,
		endpoint:   searchEndpoint,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// SearchItem is the raw repository record as returned by the search API.
// Nullable fields are pointers so normalization can tell absent from empty.
type SearchItem struct {
	FullName        string   `json:"full_name"`
	Description     *string  `json:"description"`
	HTMLURL         string   `json:"html_url"`
	StargazersCount int      `json:"stargazers_count"`
	Language        *string  `json:"language"`
	CreatedAt       string   `json:"created_at"`
	Topics          []string `json:"topics"`
}

type searchResponse struct {
	TotalCount int          `json:"total_count"`
	Items      []SearchItem `json:"items"`
}

// SearchRepos performs one page (up to 100 items) of a repository search
// for repos created after the given date (YYYY-MM-DD), newest first,
// forks excluded. No retries and no pagination beyond the first page.
func (c *Client) SearchRepos(ctx context.Context, query, createdAfter string) ([]SearchItem, error) {
	params := url.Values{}
	params.Set("q", fmt.Sprintf("%s created:>%s fork:false", query, createdAfter))
	params.Set("sort", "created")
	params.Set("order", "desc")
	params.Set("per_page", "100")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "token "+c.token)
	req.Header.Set("Accept", "application/vnd.github.v3+json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GitHub API returned %d: %s", resp.StatusCode, string(body))
	}

	var sr searchResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return nil, fmt.Errorf("parsing response: %w", err)
	}
	return sr.Items, nil
}

// ItemToRepo projects a raw search result into the normalized record.
// Total: every field gets an explicit default when the source field is
// absent or empty, so downstream code never sees a missing value.
func ItemToRepo(item SearchItem) models.Repo {
	r := models.Repo{
		Name:        item.FullName,
		Description: "No description",
		URL:         item.HTMLURL,
		Stars:       item.StargazersCount,
		Language:    "Unknown",
		CreatedAt:   item.CreatedAt,
		Topics:      []string{},
	}
	if r.Name == "" {
		r.Name = "Unknown"
	}
	if item.Description != nil && *item.Description != "" {
		r.Description = *item.Description
	}
	if item.Language != nil && *item.Language != "" {
		r.Language = *item.Language
	}
	if len(item.Topics) > 0 {
		r.Topics = append([]string(nil), item.Topics...)
	}
	return r
}
