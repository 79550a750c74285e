package hackernews

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// DefaultSearchURL is the Algolia-hosted Hacker News search, newest first.
// Docs: https://hn.algolia.com/api
const DefaultSearchURL = "https://hn.algolia.com/api/v1/search_by_date"

const (
	requestTimeout = 30 * time.Second
	dateLayout     = "2006-01-02"
	secondsPerDay  = 86400
)

// Config configures a Client. Zero values select the defaults.
type Config struct {
	BaseURL  string         // search endpoint, defaults to DefaultSearchURL
	Location *time.Location // zone used for date boundaries, defaults to time.Local
	Logger   *slog.Logger   // diagnostics sink, defaults to slog.Default()
}

// Client searches Hacker News stories within a date window.
type Client struct {
	baseURL string
	client  *http.Client
	loc     *time.Location
	log     *slog.Logger
}

// NewClient creates a search client.
func NewClient(cfg Config) *Client {
	base := strings.TrimSpace(cfg.BaseURL)
	if base == "" {
		base = DefaultSearchURL
	}
	loc := cfg.Location
	if loc == nil {
		loc = time.Local
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL: base,
		client:  &http.Client{Timeout: requestTimeout},
		loc:     loc,
		log:     logger,
	}
}

// Query describes one date-bounded search.
type Query struct {
	Topic string
	From  string // YYYY-MM-DD, inclusive
	To    string // YYYY-MM-DD, inclusive
	Depth Depth
}

// Hit mirrors the subset of Algolia hit fields we consume.
type Hit struct {
	Title       string      `json:"title,omitempty"`
	StoryTitle  string      `json:"story_title,omitempty"`
	URL         string      `json:"url,omitempty"`
	ObjectID    string      `json:"objectID"`
	Author      string      `json:"author,omitempty"`
	CreatedAtI  Timestamp   `json:"created_at_i,omitempty"`
	Points      *int        `json:"points,omitempty"`
	NumComments *int        `json:"num_comments,omitempty"`
}

// Timestamp holds the raw created_at_i value. Decoding never fails so one
// malformed hit cannot reject the whole response; conversion happens in Parse.
type Timestamp string

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		*t = ""
		return nil
	}
	if uq, err := strconv.Unquote(s); err == nil {
		s = uq
	}
	*t = Timestamp(strings.TrimSpace(s))
	return nil
}

// Response is the raw search payload. A non-empty Error marks a failed
// search whose Hits are always empty.
type Response struct {
	Hits        []Hit  `json:"hits"`
	Error       string `json:"error,omitempty"`
	NbHits      int    `json:"nbHits,omitempty"`
	Page        int    `json:"page,omitempty"`
	NbPages     int    `json:"nbPages,omitempty"`
	HitsPerPage int    `json:"hitsPerPage,omitempty"`
}

// Failed reports whether r is an error sentinel.
func (r *Response) Failed() bool {
	return r != nil && r.Error != ""
}

func failure(err error) *Response {
	return &Response{Error: err.Error(), Hits: []Hit{}}
}

// Search runs q against the search endpoint. When mock is non-nil it is
// returned as-is and no request is made. Failures never propagate: they are
// logged and reported through Response.Error.
func (c *Client) Search(ctx context.Context, q Query, mock *Response) *Response {
	if mock != nil {
		return mock
	}
	endpoint, err := c.searchURL(q)
	if err != nil {
		c.log.Error("hackernews: invalid query", "topic", q.Topic, "error", err)
		return failure(err)
	}
	c.log.Debug("hackernews: searching", "topic", q.Topic, "from", q.From, "to", q.To, "depth", DepthFor(string(q.Depth)))

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		c.log.Error("hackernews: build request", "error", err)
		return failure(err)
	}
	req.Header.Set("Accept", "application/json")
	resp, err := c.client.Do(req)
	if err != nil {
		c.log.Error("hackernews: search request failed", "error", err)
		return failure(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		err := fmt.Errorf("hackernews: search status %d", resp.StatusCode)
		c.log.Error("hackernews: API error", "status", resp.StatusCode, "error", err)
		return failure(err)
	}
	var out Response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		c.log.Error("hackernews: decode response", "error", err)
		return failure(err)
	}
	if out.Hits == nil {
		out.Hits = []Hit{}
	}
	return &out
}

// searchURL builds the request URL for q.
func (c *Client) searchURL(q Query) (string, error) {
	fromTS, err := c.midnight(q.From)
	if err != nil {
		return "", fmt.Errorf("from date: %w", err)
	}
	toTS, err := c.midnight(q.To)
	if err != nil {
		return "", fmt.Errorf("to date: %w", err)
	}
	// the end date covers its whole day
	toTS += secondsPerDay

	params := url.Values{}
	params.Set("query", q.Topic)
	params.Set("tags", "story")
	params.Set("numericFilters", fmt.Sprintf("created_at_i>=%d,created_at_i<=%d", fromTS, toTS))
	params.Set("hitsPerPage", strconv.Itoa(DepthFor(string(q.Depth)).PageSize()))
	return c.baseURL + "?" + params.Encode(), nil
}

// midnight converts a YYYY-MM-DD date to epoch seconds at 00:00 in c.loc.
func (c *Client) midnight(date string) (int64, error) {
	t, err := time.ParseInLocation(dateLayout, strings.TrimSpace(date), c.loc)
	if err != nil {
		return 0, err
	}
	return t.Unix(), nil
}
