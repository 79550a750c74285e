package ui

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"
)

// Options configures a ProgressDisplay. Zero values select the defaults.
type Options struct {
	Out         io.Writer // defaults to os.Stderr
	Interactive bool      // animate spinners and use colors
	ShowBanner  bool
	Messages    MessagePools
	Rand        *rand.Rand
	Now         func() time.Time

	// ExternalLabel and ExternalNoun name the external-source phase,
	// e.g. "X"/"posts" or "HN"/"stories".
	ExternalLabel string
	ExternalNoun  string
}

// ProgressDisplay prints research phase progress to the error stream. At
// most one spinner is active at a time; starting a phase stops the previous
// one.
type ProgressDisplay struct {
	topic       string
	out         io.Writer
	interactive bool
	msgs        MessagePools
	rng         *rand.Rand
	now         func() time.Time
	started     time.Time
	extLabel    string
	extNoun     string

	spinner *Spinner
}

// NewProgressDisplay creates a display for topic and prints the banner if
// requested.
func NewProgressDisplay(topic string, opts Options) *ProgressDisplay {
	p := &ProgressDisplay{
		topic:       topic,
		out:         opts.Out,
		interactive: opts.Interactive,
		msgs:        opts.Messages.withDefaults(),
		rng:         opts.Rand,
		now:         opts.Now,
		extLabel:    opts.ExternalLabel,
		extNoun:     opts.ExternalNoun,
	}
	if p.out == nil {
		p.out = os.Stderr
	}
	if p.rng == nil {
		p.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if p.now == nil {
		p.now = time.Now
	}
	if p.extLabel == "" {
		p.extLabel = "X"
	}
	if p.extNoun == "" {
		p.extNoun = "posts"
	}
	p.started = p.now()
	if opts.ShowBanner {
		p.showBanner()
	}
	return p
}

func (p *ProgressDisplay) showBanner() {
	if p.interactive {
		fmt.Fprintln(p.out, miniBanner)
		fmt.Fprintf(p.out, "%sTopic: %s%s%s%s\n\n", Dim, Reset, Bold, p.topic, Reset)
		return
	}
	fmt.Fprintf(p.out, "/last30days · researching: %s\n", p.topic)
}

// paint wraps s in color when writing to a terminal.
func (p *ProgressDisplay) paint(color, s string) string {
	if !p.interactive {
		return s
	}
	return color + s + Reset
}

func (p *ProgressDisplay) begin(color, message string) {
	if p.spinner != nil {
		p.spinner.Stop("")
	}
	p.spinner = NewSpinner(p.out, message, color, p.interactive)
	p.spinner.Start()
}

func (p *ProgressDisplay) end(final string) {
	if p.spinner == nil {
		return
	}
	p.spinner.Stop(final)
	p.spinner = nil
}

// StartReddit begins the Reddit search phase.
func (p *ProgressDisplay) StartReddit() {
	p.begin(Yellow, p.paint(Yellow, "Reddit")+" "+Pick(p.msgs.Reddit, p.rng))
}

// EndReddit finishes the Reddit search phase.
func (p *ProgressDisplay) EndReddit(count int) {
	p.end(fmt.Sprintf("%s Found %d threads", p.paint(Yellow, "Reddit"), count))
}

// StartRedditEnrich begins fetching engagement data for Reddit threads.
func (p *ProgressDisplay) StartRedditEnrich(current, total int) {
	p.begin(Yellow, p.enrichMessage(current, total))
}

// UpdateRedditEnrich reports enrichment progress on the running spinner.
func (p *ProgressDisplay) UpdateRedditEnrich(current, total int) {
	if p.spinner == nil {
		return
	}
	p.spinner.Update(p.enrichMessage(current, total))
}

func (p *ProgressDisplay) enrichMessage(current, total int) string {
	return fmt.Sprintf("%s [%d/%d] %s", p.paint(Yellow, "Reddit"), current, total, Pick(p.msgs.Enrich, p.rng))
}

// EndRedditEnrich finishes the enrichment phase.
func (p *ProgressDisplay) EndRedditEnrich() {
	p.end(p.paint(Yellow, "Reddit") + " Enriched with engagement data")
}

// StartExternal begins the external-source search phase.
func (p *ProgressDisplay) StartExternal() {
	p.begin(Cyan, p.paint(Cyan, p.extLabel)+" "+Pick(p.msgs.External, p.rng))
}

// EndExternal finishes the external-source phase.
func (p *ProgressDisplay) EndExternal(count int) {
	p.end(fmt.Sprintf("%s Found %d %s", p.paint(Cyan, p.extLabel), count, p.extNoun))
}

// StartProcessing begins the local processing phase.
func (p *ProgressDisplay) StartProcessing() {
	p.begin(Purple, p.paint(Purple, "Processing")+" "+Pick(p.msgs.Processing, p.rng))
}

// EndProcessing finishes the processing phase without a summary line.
func (p *ProgressDisplay) EndProcessing() {
	p.end("")
}

// ShowComplete prints the elapsed time and final counts.
func (p *ProgressDisplay) ShowComplete(redditCount, externalCount int) {
	elapsed := p.now().Sub(p.started).Seconds()
	if p.interactive {
		fmt.Fprintf(p.out, "\n%s%s✓ Research complete%s %s(%.1fs)%s\n", Green, Bold, Reset, Dim, elapsed, Reset)
		fmt.Fprintf(p.out, "  %sReddit:%s %d threads  %s%s:%s %d %s\n\n",
			Yellow, Reset, redditCount, Cyan, p.extLabel, Reset, externalCount, p.extNoun)
		return
	}
	fmt.Fprintf(p.out, "✓ Research complete (%.1fs) - Reddit: %d threads, %s: %d %s\n",
		elapsed, redditCount, p.extLabel, externalCount, p.extNoun)
}

// ShowCached reports that cached results are used. A non-positive age is
// treated as unknown and omitted.
func (p *ProgressDisplay) ShowCached(age time.Duration) {
	ageStr := ""
	if age > 0 {
		ageStr = fmt.Sprintf(" (%.1fh old)", age.Hours())
	}
	fmt.Fprintf(p.out, "%s %s\n\n", p.paint(Green, "⚡"), p.paint(Dim, "Using cached results"+ageStr+" - use --refresh for fresh data"))
}

// ShowError reports a terminal failure.
func (p *ProgressDisplay) ShowError(message string) {
	if p.spinner != nil {
		p.end("")
	}
	fmt.Fprintf(p.out, "%s %s\n", p.paint(Red, "✗ Error:"), message)
}

var phaseColors = map[string]string{
	"reddit":  Yellow,
	"x":       Cyan,
	"hn":      Cyan,
	"process": Purple,
	"done":    Green,
	"error":   Red,
}

// PrintPhase writes a one-off "▸ message" line colored by phase name.
func PrintPhase(w io.Writer, phase, message string) {
	color, ok := phaseColors[phase]
	if !ok {
		color = Reset
	}
	fmt.Fprintf(w, "%s▸%s %s\n", color, Reset, message)
}
