package hackernews

import "strings"

// Depth controls how many hits are requested from the search index.
type Depth string

const (
	DepthQuick   Depth = "quick"
	DepthDefault Depth = "default"
	DepthDeep    Depth = "deep"
)

// depthLimits maps each depth to its (min, max) result counts. Only max is
// sent to the endpoint; min documents the expected yield.
var depthLimits = map[Depth][2]int{
	DepthQuick:   {8, 12},
	DepthDefault: {20, 30},
	DepthDeep:    {50, 70},
}

// DepthFor parses a depth name. Unknown names fall back to DepthDefault.
func DepthFor(s string) Depth {
	d := Depth(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := depthLimits[d]; ok {
		return d
	}
	return DepthDefault
}

// Limits returns the (min, max) result counts for d.
func (d Depth) Limits() (min, max int) {
	l, ok := depthLimits[d]
	if !ok {
		l = depthLimits[DepthDefault]
	}
	return l[0], l[1]
}

// PageSize is the hitsPerPage value requested for d.
func (d Depth) PageSize() int {
	_, max := d.Limits()
	return max
}
