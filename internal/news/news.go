// Package news fetches trade news headlines from RSS feeds and NewsAPI.
package news

import (
	"context"
	"errors"
	"html"
	"net/url"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
	"github.com/vntrade/tariff-calculator/pkg/dateutil"
)

// ErrFeedUnavailable is returned when an upstream feed cannot be fetched or decoded.
var ErrFeedUnavailable = errors.New("news feed unavailable")

// DefaultLimit is the number of items returned when a caller passes a non-positive limit.
const DefaultLimit = 5

const (
	excerptLength = 240
	unknownSource = "Unknown"
)

// Item is a single headline.
type Item struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Link        string    `json:"link"`
	Source      string    `json:"source"`
	PublishedAt time.Time `json:"published_at"`
	Excerpt     string    `json:"excerpt,omitempty"`
}

// Age describes how long before now the item was published.
func (i Item) Age(now time.Time) string {
	if i.PublishedAt.IsZero() {
		return ""
	}
	return dateutil.TimeAgo(i.PublishedAt, now)
}

// Source yields at most limit items, newest first as the upstream orders them.
type Source interface {
	Name() string
	Fetch(ctx context.Context, limit int) ([]Item, error)
}

var stripPolicy = bluemonday.StrictPolicy()

// sanitizeExcerpt strips markup, decodes entities, collapses whitespace and
// truncates to excerptLength runes. The result is plain text, not HTML.
func sanitizeExcerpt(raw string) string {
	plain := html.UnescapeString(stripPolicy.Sanitize(raw))
	text := strings.Join(strings.Fields(plain), " ")
	if utf8.RuneCountInString(text) <= excerptLength {
		return text
	}
	runes := []rune(text)
	return strings.TrimSpace(string(runes[:excerptLength])) + "..."
}

// splitTitle separates a trailing " - Publisher" suffix from an aggregator headline.
func splitTitle(title string) (headline, source string) {
	title = strings.TrimSpace(title)
	idx := strings.LastIndex(title, " - ")
	if idx <= 0 {
		return title, ""
	}
	return strings.TrimSpace(title[:idx]), strings.TrimSpace(title[idx+3:])
}

// hostSource derives a publisher name from a link, dropping a leading "www.".
func hostSource(link string) string {
	u, err := url.Parse(link)
	if err != nil || u.Hostname() == "" {
		return ""
	}
	return strings.TrimPrefix(u.Hostname(), "www.")
}

func itemID(guid, link string, index int) string {
	switch {
	case guid != "":
		return guid
	case link != "":
		return link
	default:
		return strconv.Itoa(index)
	}
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	return limit
}
