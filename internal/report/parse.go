package report

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Document is a markdown file split into YAML frontmatter and body.
type Document struct {
	Frontmatter map[string]any
	Body        string
}

// ParseFile reads a rendered report from disk.
func ParseFile(path string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return Document{}, err
	}
	defer f.Close()
	return Parse(f)
}

// Parse splits r into frontmatter and body. Frontmatter is expected at the
// top, between two lines containing only "---".
func Parse(r io.Reader) (Document, error) {
	br := bufio.NewReader(r)
	peek, err := br.Peek(3)
	if err != nil && !errors.Is(err, io.EOF) {
		return Document{}, err
	}
	hasFM := string(peek) == "---"

	var fmBuf, bodyBuf strings.Builder
	if hasFM {
		// opening delimiter
		if _, err := br.ReadString('\n'); err != nil && !errors.Is(err, io.EOF) {
			return Document{}, err
		}
		for {
			l, err := br.ReadString('\n')
			if err != nil && !errors.Is(err, io.EOF) {
				return Document{}, err
			}
			if strings.TrimSpace(l) == "---" {
				break
			}
			fmBuf.WriteString(l)
			if errors.Is(err, io.EOF) {
				break
			}
		}
	}
	if _, err := io.Copy(&bodyBuf, br); err != nil {
		return Document{}, err
	}

	d := Document{Frontmatter: map[string]any{}, Body: bodyBuf.String()}
	if hasFM {
		if err := yaml.Unmarshal([]byte(fmBuf.String()), &d.Frontmatter); err != nil {
			return Document{}, err
		}
		if d.Frontmatter == nil {
			d.Frontmatter = map[string]any{}
		}
	}
	return d, nil
}
