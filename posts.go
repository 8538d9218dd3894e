package main

import (
	"os"
	"path/filepath"
	"strings"
)

const markdownFileSuffix = ".md"

// loadPosts converts every .md file in dir, in directory listing order.
// os.ReadDir sorts entries by filename, so the order is stable across platforms.
func loadPosts(dir string, conv *Converter) ([]Post, error) {
	defer measure("loadPosts")()

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, missingDirectory(dir)
	}

	posts := make([]Post, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), markdownFileSuffix) {
			continue
		}

		path := filepath.Join(dir, e.Name())
		source, err := os.ReadFile(path)
		if err != nil {
			return nil, missingFile(path)
		}

		p, err := conv.Convert(source)
		if err != nil {
			return nil, err
		}
		p.Filepath = path

		posts = append(posts, p)
	}

	return posts, nil
}

// isPublished reports whether the post carries a non-empty published_at field
func isPublished(p Post) bool {
	return strings.TrimSpace(p.Meta.PublishedAt()) != ""
}

func publishedPosts(posts []Post) []Post {
	published := make([]Post, 0, len(posts))
	for _, p := range posts {
		if !isPublished(p) {
			log.Info("Skipping unpublished post %s\n", p.Filepath)
			continue
		}
		published = append(published, p)
	}
	return published
}
