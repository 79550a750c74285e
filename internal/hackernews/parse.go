package hackernews

import (
	"encoding/json"
	"fmt"
	"math"
	"time"

	"last30days/internal/model"
)

// DiscussionBaseURL prefixes an objectID to form its HN discussion page.
const DiscussionBaseURL = "https://news.ycombinator.com/item?id="

// Relevance is assigned to every hit: the index pre-filters by query but
// reports no score of its own.
const Relevance = 0.7

const captionTitleRunes = 50

// Parse maps a search response to normalized items, preserving hit order.
// Hits with neither title nor story_title are dropped; ids are numbered over
// the input position, so they are only stable within one call.
func (c *Client) Parse(r *Response) []model.Item {
	return parseResponse(r, c.loc)
}

// Parse normalizes r using the local time zone for dates.
func Parse(r *Response) []model.Item {
	return parseResponse(r, time.Local)
}

func parseResponse(r *Response, loc *time.Location) []model.Item {
	if r == nil || r.Failed() {
		return []model.Item{}
	}
	items := make([]model.Item, 0, len(r.Hits))
	for i, h := range r.Hits {
		title := h.Title
		if title == "" {
			title = h.StoryTitle
		}
		if title == "" {
			continue
		}
		discussion := DiscussionBaseURL + h.ObjectID
		link := h.URL
		if link == "" {
			link = discussion
		}
		items = append(items, model.Item{
			ID:            fmt.Sprintf("HN%d", i+1),
			Title:         title,
			URL:           link,
			DiscussionURL: discussion,
			Author:        h.Author,
			Date:          calendarDate(h.CreatedAtI, loc),
			Engagement: model.Engagement{
				Score:       h.Points,
				NumComments: h.NumComments,
			},
			Relevance:   Relevance,
			WhyRelevant: "Hacker News discussion about " + truncateRunes(title, captionTitleRunes),
		})
	}
	return items
}

// maxEpochSeconds bounds float timestamps before conversion to int64.
const maxEpochSeconds = 1 << 62

// calendarDate formats an epoch timestamp as YYYY-MM-DD in loc. Missing,
// zero, malformed and out-of-range timestamps yield "".
func calendarDate(raw Timestamp, loc *time.Location) string {
	if raw == "" {
		return ""
	}
	n := json.Number(raw)
	secs, err := n.Int64()
	if err != nil {
		f, ferr := n.Float64()
		if ferr != nil || math.IsNaN(f) || math.Abs(f) >= maxEpochSeconds {
			return ""
		}
		secs = int64(math.Trunc(f))
	}
	if secs == 0 {
		return ""
	}
	t := time.Unix(secs, 0).In(loc)
	if y := t.Year(); y < 1 || y > 9999 {
		return ""
	}
	return t.Format(dateLayout)
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
