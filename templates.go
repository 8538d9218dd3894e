package main

import (
	"os"
	"path/filepath"
)

const (
	homeTemplateFile  = "home.template.html"
	postTemplateFile  = "post.template.html"
	postComponentFile = "post.component.html"
)

type Templates struct {
	Home          *Template
	Post          *Template
	PostComponent *Template
}

func loadTemplates(dir string) (*Templates, error) {
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return nil, missingDirectory(dir)
	}

	var tmpl Templates
	for _, t := range []struct {
		file     string
		dest     **Template
		expected []string
	}{
		{homeTemplateFile, &tmpl.Home, []string{"posts"}},
		{postTemplateFile, &tmpl.Post, []string{"post", "title", "updated_at", "published_at", "published_by"}},
		{postComponentFile, &tmpl.PostComponent, []string{"page", "title", "updated_at", "short_description"}},
	} {
		path := filepath.Join(dir, t.file)
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, missingFile(path)
		}

		*t.dest = parseTemplate(t.file, string(content))
		for _, name := range missingPlaceholders(*t.dest, t.expected) {
			log.Warn("Template %s has no $%s placeholder\n", path, name)
		}
	}

	return &tmpl, nil
}

// missingPlaceholders returns the expected names that do not occur in t
func missingPlaceholders(t *Template, expected []string) []string {
	found := map[string]bool{}
	for _, name := range t.Placeholders() {
		found[name] = true
	}

	var missing []string
	for _, name := range expected {
		if !found[name] {
			missing = append(missing, name)
		}
	}
	return missing
}
