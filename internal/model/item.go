package model

// Engagement carries the raw counters reported by a source. Nil means the
// source did not report the value.
type Engagement struct {
	Score       *int `json:"score" yaml:"score"`
	NumComments *int `json:"num_comments" yaml:"num_comments"`
}

// Item is a normalized search result handed to downstream processing.
type Item struct {
	ID            string     `json:"id" yaml:"id"`
	Title         string     `json:"title" yaml:"title"`
	URL           string     `json:"url" yaml:"url"`
	DiscussionURL string     `json:"hn_url" yaml:"hn_url"`
	Author        string     `json:"author" yaml:"author"`
	Date          string     `json:"date,omitempty" yaml:"date,omitempty"` // YYYY-MM-DD, empty when unknown
	Engagement    Engagement `json:"engagement" yaml:"engagement"`
	Relevance     float64    `json:"relevance" yaml:"relevance"`
	WhyRelevant   string     `json:"why_relevant" yaml:"why_relevant"`
}

// HasDate reports whether the item carries a calendar date.
func (it Item) HasDate() bool {
	return it.Date != ""
}
