package dateutil

import (
	"fmt"
	"time"
)

// ShortDateLayout is the display layout for article dates.
const ShortDateLayout = "Jan 2, 2006"

// TimeAgo describes how long before now t was: "just now", "N minutes ago",
// "N hours ago" under a day, then "N days ago". Future times read as "just now".
func TimeAgo(t, now time.Time) string {
	diff := now.Sub(t)
	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return plural(int(diff/time.Minute), "minute")
	case diff < 24*time.Hour:
		return plural(int(diff/time.Hour), "hour")
	default:
		return plural(int(diff/(24*time.Hour)), "day")
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}

// FormatShortDate formats t as "Jan 2, 2006"; the zero time yields "".
func FormatShortDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(ShortDateLayout)
}

// ParseFeedTime parses the timestamp layouts seen in RSS and NewsAPI payloads.
func ParseFeedTime(value string) (time.Time, error) {
	layouts := []string{
		time.RFC3339,
		time.RFC1123Z,
		time.RFC1123,
		"2006-01-02 15:04:05",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time format: %q", value)
}
