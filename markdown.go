package main

import (
	"bytes"
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/adrg/frontmatter"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
	"gopkg.in/yaml.v3"
)

var frontMatterFormats = []*frontmatter.Format{
	frontmatter.NewFormat("---", "---", yaml.Unmarshal),
	frontmatter.NewFormat("+++", "+++", toml.Unmarshal),
}

// Metadata holds the front-matter fields of a post. Missing keys read as "".
type Metadata map[string]string

func (m Metadata) Page() string             { return m["page"] }
func (m Metadata) Title() string            { return m["title"] }
func (m Metadata) ShortDescription() string { return m["short_description"] }
func (m Metadata) PublishedAt() string      { return m["published_at"] }
func (m Metadata) UpdatedAt() string        { return m["updated_at"] }
func (m Metadata) PublishedBy() string      { return m["published_by"] }

type Post struct {
	HTML     string
	Meta     Metadata
	Filepath string
}

// Converter turns a Markdown document with optional front matter into a Post.
// It keeps no state between calls.
type Converter struct {
	md goldmark.Markdown
}

func NewConverter() *Converter {
	return &Converter{
		md: goldmark.New(
			goldmark.WithRendererOptions(
				html.WithUnsafe(),
			),
			goldmark.WithExtensions(extension.GFM, extension.Footnote),
		),
	}
}

func (c *Converter) Convert(source []byte) (Post, error) {
	var raw map[string]any
	body, err := frontmatter.Parse(bytes.NewReader(source), &raw, frontMatterFormats...)
	if err != nil {
		return Post{}, err
	}

	var buf bytes.Buffer
	if err := c.md.Convert(body, &buf); err != nil {
		return Post{}, err
	}

	return Post{
		HTML: buf.String(),
		Meta: normalizeMetadata(raw),
	}, nil
}

func normalizeMetadata(raw map[string]any) Metadata {
	meta := make(Metadata, len(raw))
	for key, value := range raw {
		meta[key] = metadataString(value)
	}
	return meta
}

func metadataString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case time.Time:
		if v.Hour() == 0 && v.Minute() == 0 && v.Second() == 0 && v.Nanosecond() == 0 {
			return v.Format("2006-01-02")
		}
		return v.Format(time.RFC3339)
	default:
		return fmt.Sprint(v)
	}
}
