package report

import (
	"bytes"
	_ "embed"
	"strconv"
	"text/template"
	"time"

	"last30days/internal/model"

	"gopkg.in/yaml.v3"
)

// Meta describes the search that produced a report.
type Meta struct {
	Topic     string    `yaml:"topic"`
	From      string    `yaml:"from"`
	To        string    `yaml:"to"`
	Depth     string    `yaml:"depth"`
	Source    string    `yaml:"source"`
	Count     int       `yaml:"count"`
	Generated time.Time `yaml:"generated"`
}

type data struct {
	Meta
	Frontmatter string
	Items       []model.Item
}

//go:embed report.tmpl
var reportTpl string

var compiled = template.Must(template.New("report").Funcs(template.FuncMap{
	"points":   func(it model.Item) string { return optInt(it.Engagement.Score) },
	"comments": func(it model.Item) string { return optInt(it.Engagement.NumComments) },
}).Parse(reportTpl))

func optInt(v *int) string {
	if v == nil {
		return "?"
	}
	return strconv.Itoa(*v)
}

// Render produces a markdown document with YAML frontmatter for items.
func Render(meta Meta, items []model.Item) (string, error) {
	meta.Count = len(items)
	fm, err := yaml.Marshal(meta)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := compiled.Execute(&buf, data{Meta: meta, Frontmatter: string(fm), Items: items}); err != nil {
		return "", err
	}
	return buf.String(), nil
}
