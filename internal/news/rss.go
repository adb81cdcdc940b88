package news

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/vntrade/tariff-calculator/pkg/dateutil"
)

// DefaultFeedURL is the Google News search feed for Vietnam-US tariff coverage.
const DefaultFeedURL = "https://news.google.com/rss/search?q=vietnam+us+tariff&hl=en-US&gl=US&ceid=US:en"

// RSSSource reads an RSS or Atom feed.
type RSSSource struct {
	URL    string
	client *Client
}

// NewRSSSource creates a feed source for url.
func NewRSSSource(url string, opts ...Option) *RSSSource {
	if url == "" {
		url = DefaultFeedURL
	}
	return &RSSSource{URL: url, client: NewClient(opts...)}
}

func (s *RSSSource) Name() string { return "rss" }

// Fetch downloads the feed and converts up to limit entries.
func (s *RSSSource) Fetch(ctx context.Context, limit int) ([]Item, error) {
	header := http.Header{}
	header.Set("Accept", "application/rss+xml, application/atom+xml, application/xml;q=0.9, */*;q=0.8")
	body, err := s.client.Get(ctx, s.URL, header)
	if err != nil {
		return nil, err
	}

	feed, err := gofeed.NewParser().Parse(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse feed: %v", ErrFeedUnavailable, err)
	}

	limit = normalizeLimit(limit)
	items := make([]Item, 0, limit)
	for i, entry := range feed.Items {
		if len(items) == limit {
			break
		}
		items = append(items, fromFeedItem(entry, i))
	}
	return items, nil
}

func fromFeedItem(entry *gofeed.Item, index int) Item {
	title, source := splitTitle(entry.Title)
	if source == "" {
		source = hostSource(entry.Link)
	}
	if source == "" {
		source = unknownSource
	}

	excerpt := entry.Description
	if excerpt == "" {
		excerpt = entry.Content
	}

	return Item{
		ID:          itemID(strings.TrimSpace(entry.GUID), strings.TrimSpace(entry.Link), index),
		Title:       title,
		Link:        entry.Link,
		Source:      source,
		PublishedAt: publishedAt(entry),
		Excerpt:     sanitizeExcerpt(excerpt),
	}
}

func publishedAt(entry *gofeed.Item) time.Time {
	switch {
	case entry.PublishedParsed != nil:
		return entry.PublishedParsed.UTC()
	case entry.UpdatedParsed != nil:
		return entry.UpdatedParsed.UTC()
	}
	if t, err := dateutil.ParseFeedTime(entry.Published); err == nil {
		return t.UTC()
	}
	return time.Time{}
}
