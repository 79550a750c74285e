package ui

import "math/rand"

// MessagePools holds the status lines a ProgressDisplay picks from per phase.
// Empty pools fall back to the defaults.
type MessagePools struct {
	Reddit     []string
	Enrich     []string
	External   []string
	Processing []string
}

// DefaultMessages returns the built-in status lines.
func DefaultMessages() MessagePools {
	return MessagePools{
		Reddit: []string{
			"Diving into Reddit threads...",
			"Scanning subreddits for gold...",
			"Reading what Redditors are saying...",
			"Exploring the front page of the internet...",
			"Finding the good discussions...",
			"Upvoting mentally...",
			"Scrolling through comments...",
		},
		Enrich: []string{
			"Getting the juicy details...",
			"Fetching engagement metrics...",
			"Reading top comments...",
			"Extracting insights...",
			"Analyzing discussions...",
		},
		External: []string{
			"Checking what people are buzzing about...",
			"Reading the timeline...",
			"Finding the hot takes...",
			"Scanning posts and threads...",
			"Discovering trending insights...",
			"Following the conversation...",
			"Reading between the posts...",
		},
		Processing: []string{
			"Crunching the data...",
			"Scoring and ranking...",
			"Finding patterns...",
			"Removing duplicates...",
			"Organizing findings...",
		},
	}
}

func (p MessagePools) withDefaults() MessagePools {
	d := DefaultMessages()
	if len(p.Reddit) == 0 {
		p.Reddit = d.Reddit
	}
	if len(p.Enrich) == 0 {
		p.Enrich = d.Enrich
	}
	if len(p.External) == 0 {
		p.External = d.External
	}
	if len(p.Processing) == 0 {
		p.Processing = d.Processing
	}
	return p
}

// Pick returns a random entry of pool using rng, or "" for an empty pool.
func Pick(pool []string, rng *rand.Rand) string {
	switch len(pool) {
	case 0:
		return ""
	case 1:
		return pool[0]
	}
	return pool[rng.Intn(len(pool))]
}
