package news

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	json "github.com/goccy/go-json"
	"github.com/vntrade/tariff-calculator/pkg/dateutil"
)

const (
	// DefaultNewsAPIEndpoint is the NewsAPI "everything" search endpoint.
	DefaultNewsAPIEndpoint = "https://newsapi.org/v2/everything"
	// DefaultNewsAPIQuery is the search used by the news page.
	DefaultNewsAPIQuery = "trade tariff"
)

// NewsAPISource searches NewsAPI for recent articles.
type NewsAPISource struct {
	Endpoint string
	APIKey   string
	Query    string
	client   *Client
}

// NewNewsAPISource creates a NewsAPI source using the default endpoint and query.
func NewNewsAPISource(apiKey string, opts ...Option) *NewsAPISource {
	return &NewsAPISource{
		Endpoint: DefaultNewsAPIEndpoint,
		APIKey:   apiKey,
		Query:    DefaultNewsAPIQuery,
		client:   NewClient(opts...),
	}
}

func (s *NewsAPISource) Name() string { return "newsapi" }

type newsAPIResponse struct {
	Status   string `json:"status"`
	Code     string `json:"code"`
	Message  string `json:"message"`
	Articles []struct {
		Source struct {
			Name string `json:"name"`
		} `json:"source"`
		Title       string `json:"title"`
		Description string `json:"description"`
		URL         string `json:"url"`
		PublishedAt string `json:"publishedAt"`
	} `json:"articles"`
}

// Fetch queries the endpoint sorted by publication date.
func (s *NewsAPISource) Fetch(ctx context.Context, limit int) ([]Item, error) {
	limit = normalizeLimit(limit)

	q := url.Values{}
	q.Set("q", s.Query)
	q.Set("sortBy", "publishedAt")
	q.Set("pageSize", strconv.Itoa(limit))

	header := http.Header{}
	header.Set("Accept", "application/json")
	header.Set("X-Api-Key", s.APIKey)

	body, err := s.client.Get(ctx, s.Endpoint+"?"+q.Encode(), header)
	if err != nil {
		return nil, err
	}

	var resp newsAPIResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrFeedUnavailable, err)
	}
	if resp.Status != "ok" {
		return nil, fmt.Errorf("%w: %s: %s", ErrFeedUnavailable, resp.Code, resp.Message)
	}

	items := make([]Item, 0, limit)
	for i, a := range resp.Articles {
		if len(items) == limit {
			break
		}
		source := a.Source.Name
		if source == "" {
			source = hostSource(a.URL)
		}
		if source == "" {
			source = unknownSource
		}
		var published time.Time
		if t, err := dateutil.ParseFeedTime(a.PublishedAt); err == nil {
			published = t.UTC()
		}
		items = append(items, Item{
			ID:          itemID("", a.URL, i),
			Title:       a.Title,
			Link:        a.URL,
			Source:      source,
			PublishedAt: published,
			Excerpt:     sanitizeExcerpt(a.Description),
		})
	}
	return items, nil
}
