package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tdewolff/minify/v2"
)

const (
	homeOutputFile   = "index.html"
	postsPlaceholder = "posts"
)

type Site struct {
	config    Config
	templates *Templates
	converter *Converter
	minifier  *minify.M
}

func NewSite(cfg Config, templates *Templates) *Site {
	return &Site{
		config:    cfg,
		templates: templates,
		converter: NewConverter(),
		minifier:  newMinifier(),
	}
}

// Build regenerates the output directory from scratch. If any step fails the
// output directory is removed and the error is returned unchanged.
func (s *Site) Build() (err error) {
	defer measure("build")()

	dist := s.config.DistPath
	if err := os.RemoveAll(dist); err != nil {
		return err
	}

	defer func() {
		if err != nil {
			if rmErr := os.RemoveAll(dist); rmErr != nil {
				log.Err("Error removing %s: %s\n", dist, rmErr)
			}
		}
	}()

	if err := os.MkdirAll(dist, 0755); err != nil {
		return err
	}

	posts, err := loadPosts(s.config.PostsPath, s.converter)
	if err != nil {
		return err
	}
	posts = publishedPosts(posts)

	pages := make(map[string]string, len(posts))
	for _, p := range posts {
		if prev, ok := pages[p.Meta.Page()]; ok {
			return fmt.Errorf("%w: %q used by both %s and %s", ErrInvalidPage, p.Meta.Page(), prev, p.Filepath)
		}
		pages[p.Meta.Page()] = p.Filepath

		if err := s.renderPost(p); err != nil {
			return err
		}
	}

	if err := s.renderHome(posts); err != nil {
		return err
	}

	log.Info("Built site containing %d posts in %s\n", len(posts), dist)
	return nil
}

func (s *Site) renderPost(p Post) error {
	dest, err := s.postPath(p)
	if err != nil {
		return err
	}

	content, err := s.render(s.templates.Post, map[string]string{
		"post":         p.HTML,
		"title":        p.Meta.Title(),
		"updated_at":   p.Meta.UpdatedAt(),
		"published_at": p.Meta.PublishedAt(),
		"published_by": p.Meta.PublishedBy(),
	})
	if err != nil {
		return err
	}

	return writeFile(dest, content)
}

func (s *Site) renderHome(posts []Post) error {
	var components strings.Builder
	for _, p := range posts {
		component, err := s.render(s.templates.PostComponent, map[string]string{
			"page":              p.Meta.Page(),
			"title":             p.Meta.Title(),
			"updated_at":        p.Meta.UpdatedAt(),
			"short_description": p.Meta.ShortDescription(),
		})
		if err != nil {
			return err
		}
		components.WriteString(component)
	}

	content, err := s.render(s.templates.Home, map[string]string{
		postsPlaceholder: components.String(),
	})
	if err != nil {
		return err
	}

	return writeFile(filepath.Join(s.config.DistPath, homeOutputFile), content)
}

func (s *Site) render(t *Template, fields map[string]string) (string, error) {
	return optimizeHTML(s.minifier, t.Execute(fields))
}

// postPath joins the post's page identifier to the output directory. The
// identifier must be a plain filename that does not shadow the index page.
func (s *Site) postPath(p Post) (string, error) {
	page := p.Meta.Page()
	switch {
	case page == "":
		return "", fmt.Errorf("%w: missing page field in %s", ErrInvalidPage, p.Filepath)
	case page == "." || page == "..",
		strings.ContainsAny(page, `/\`),
		filepath.Base(page) != page:
		return "", fmt.Errorf("%w: %q in %s is not a plain filename", ErrInvalidPage, page, p.Filepath)
	case page == homeOutputFile:
		return "", fmt.Errorf("%w: %q in %s collides with the index page", ErrInvalidPage, page, p.Filepath)
	}

	return filepath.Join(s.config.DistPath, page), nil
}
