package main

import (
	"strings"
)

const placeholderPrefix = '$'

type segment struct {
	text        string
	placeholder bool
}

// Template is a page template split into literal text and $name placeholders.
// A placeholder name is the longest run of ASCII letters, digits and underscores
// following the '$', so $post and $posts are distinct placeholders.
type Template struct {
	name     string
	segments []segment
	size     int
}

func parseTemplate(name string, text string) *Template {
	t := &Template{name: name, size: len(text)}

	start := 0
	for i := 0; i < len(text); i++ {
		if text[i] != placeholderPrefix {
			continue
		}

		end := i + 1
		for end < len(text) && isPlaceholderChar(text[end]) {
			end++
		}
		if end == i+1 {
			continue
		}

		if i > start {
			t.segments = append(t.segments, segment{text: text[start:i]})
		}
		t.segments = append(t.segments, segment{text: text[i+1 : end], placeholder: true})
		start = end
		i = end - 1
	}

	if start < len(text) {
		t.segments = append(t.segments, segment{text: text[start:]})
	}

	return t
}

func isPlaceholderChar(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}

func (t *Template) Name() string {
	return t.name
}

// Placeholders returns the distinct placeholder names in order of first appearance.
func (t *Template) Placeholders() []string {
	var names []string
	seen := map[string]bool{}
	for _, s := range t.segments {
		if s.placeholder && !seen[s.text] {
			seen[s.text] = true
			names = append(names, s.text)
		}
	}
	return names
}

// Execute replaces every placeholder that has an entry in fields with its value.
// Values are written as-is and never scanned for further placeholders.
// Placeholders without an entry are written back unchanged.
func (t *Template) Execute(fields map[string]string) string {
	var sb strings.Builder
	sb.Grow(t.size)

	for _, s := range t.segments {
		if !s.placeholder {
			sb.WriteString(s.text)
			continue
		}

		if value, ok := fields[s.text]; ok {
			sb.WriteString(value)
		} else {
			sb.WriteByte(placeholderPrefix)
			sb.WriteString(s.text)
		}
	}

	return sb.String()
}
