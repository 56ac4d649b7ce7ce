package news

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
)

const DefaultSearchURL = "https://newsapi.org"

// SearchClient talks to a NewsAPI compatible "everything" endpoint.
type SearchClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	userAgent  string
	timeout    time.Duration
}

type SearchRequest struct {
	Query    string
	From     time.Time
	PageSize int
}

type searchResponse struct {
	Status       string          `json:"status"`
	TotalResults int             `json:"totalResults"`
	Articles     []searchArticle `json:"articles"`
	Code         string          `json:"code"`
	Message      string          `json:"message"`
}

type searchArticle struct {
	Source struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"source"`
	Author      string  `json:"author"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	URL         string  `json:"url"`
	URLToImage  *string `json:"urlToImage"`
	PublishedAt string  `json:"publishedAt"`
	Content     string  `json:"content"`
}

func NewSearchClient(httpClient *http.Client, baseURL, apiKey, userAgent string, timeout time.Duration) *SearchClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if baseURL == "" {
		baseURL = DefaultSearchURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &SearchClient{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		userAgent:  userAgent,
		timeout:    timeout,
	}
}

func (c *SearchClient) Configured() bool {
	return c.apiKey != ""
}

// Search runs one query and returns the provider's articles in order.
func (c *SearchClient) Search(ctx context.Context, req SearchRequest) ([]Candidate, error) {
	if !c.Configured() {
		return nil, ErrMissingAPIKey
	}

	params := url.Values{}
	params.Set("q", req.Query)
	params.Set("language", "en")
	params.Set("sortBy", "publishedAt")
	params.Set("apiKey", c.apiKey)
	if !req.From.IsZero() {
		params.Set("from", req.From.UTC().Format(time.DateOnly))
	}
	if req.PageSize > 0 {
		params.Set("pageSize", strconv.Itoa(req.PageSize))
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(timeoutCtx, "GET", c.baseURL+"/v2/everything?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if c.userAgent != "" {
		httpReq.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, ErrRateLimited
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if payload.Status == "error" {
		return nil, fmt.Errorf("provider error %s: %s", payload.Code, payload.Message)
	}

	candidates := make([]Candidate, 0, len(payload.Articles))
	for _, a := range payload.Articles {
		candidates = append(candidates, Candidate{
			Title:       a.Title,
			Description: a.Description,
			URL:         a.URL,
			PublishedAt: a.PublishedAt,
			SourceID:    a.Source.ID,
			SourceName:  a.Source.Name,
			Author:      a.Author,
			Content:     a.Content,
			URLToImage:  a.URLToImage,
		})
	}

	return candidates, nil
}
